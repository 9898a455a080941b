package aggregate

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/require"

	"evalvault/pkg/core"
	"evalvault/pkg/taxonomy"
)

func fail(id string, primary int) core.Record {
	return core.Record{
		TestCaseID:         id,
		Date:               "2026-08-30",
		Outcome:            core.OutcomeFail,
		PrimaryFailureMode: null.IntFrom(int64(primary)),
		Dimensions: map[core.Dimension]core.DimensionScore{
			core.DimensionFactuality: {Score: 1, Findings: []int{primary}},
		},
	}
}

func pass(id string) core.Record {
	return core.Record{
		TestCaseID: id,
		Date:       "2026-08-30",
		Outcome:    core.OutcomePass,
		Dimensions: map[core.Dimension]core.DimensionScore{
			core.DimensionFactuality: {Score: 3},
		},
	}
}

func TestSummarizeExample(t *testing.T) {
	// tc1 FAIL primary=10, tc2 PASS, tc3 FAIL primary=10 gives pass rate
	// 1/3, category C frequency 2, top failure mode id 10.
	registry := taxonomy.NewRegistry()
	records := []core.Record{fail("tc1", 10), pass("tc2"), fail("tc3", 10)}

	summary, err := Summarize(registry, records, Options{})
	require.NoError(t, err)

	require.Equal(t, 3, summary.Total)
	require.Equal(t, 1, summary.Passed)
	require.Equal(t, 2, summary.Failed)
	require.True(t, summary.PassRate.Valid)
	require.InDelta(t, 1.0/3.0, summary.PassRate.Float64, 1e-9)

	require.Equal(t, 2, summary.ByCategory[core.CategoryFactuality])
	require.Equal(t, 2, summary.ByFailureMode[10])
	require.Equal(t, 2, summary.BySeverity[core.SeverityS1])

	require.NotEmpty(t, summary.TopFailures)
	require.Equal(t, 10, summary.TopFailures[0].ID)
	require.Equal(t, "Fabricated Facts", summary.TopFailures[0].Name)
}

func TestSummarizeEmptyInput(t *testing.T) {
	registry := taxonomy.NewRegistry()

	summary, err := Summarize(registry, nil, Options{})
	require.NoError(t, err)
	require.Equal(t, 0, summary.Total)
	require.False(t, summary.PassRate.Valid)
	require.Empty(t, summary.ByCategory)
	require.Empty(t, summary.ByFailureMode)
	require.Empty(t, summary.TopFailures)
}

func TestSummarizeEmptyInputRequired(t *testing.T) {
	registry := taxonomy.NewRegistry()

	_, err := Summarize(registry, nil, Options{RequireRecords: true})
	require.Error(t, err)
	require.True(t, errors.Is(err, core.EmptyInputError))
}

func TestSummarizeOrderInvariant(t *testing.T) {
	registry := taxonomy.NewRegistry()

	records := []core.Record{fail("tc1", 10), pass("tc2"), fail("tc3", 23), fail("tc4", 10)}
	reversed := []core.Record{records[3], records[2], records[1], records[0]}

	a, err := Summarize(registry, records, Options{})
	require.NoError(t, err)
	b, err := Summarize(registry, reversed, Options{})
	require.NoError(t, err)

	require.Empty(t, cmp.Diff(a, b))
}

func TestSummarizeTieBreakByLowerID(t *testing.T) {
	registry := taxonomy.NewRegistry()

	records := []core.Record{fail("tc1", 23), fail("tc2", 10)}

	summary, err := Summarize(registry, records, Options{TopN: 2})
	require.NoError(t, err)
	require.Len(t, summary.TopFailures, 2)
	require.Equal(t, 10, summary.TopFailures[0].ID)
	require.Equal(t, 23, summary.TopFailures[1].ID)
}

func TestSummarizeTopNBounds(t *testing.T) {
	registry := taxonomy.NewRegistry()

	records := []core.Record{fail("tc1", 10), fail("tc2", 11), fail("tc3", 12)}

	summary, err := Summarize(registry, records, Options{TopN: 2})
	require.NoError(t, err)
	require.Len(t, summary.TopFailures, 2)
}

func TestSummarizeWindow(t *testing.T) {
	registry := taxonomy.NewRegistry()

	early := fail("tc1", 10)
	early.Date = "2026-01-15"
	late := pass("tc2")
	late.Date = "2026-08-01"

	from, _ := time.Parse(core.DateLayout, "2026-06-01")
	window := &Window{From: from}

	summary, err := Summarize(registry, []core.Record{early, late}, Options{Window: window})
	require.NoError(t, err)
	require.Equal(t, 1, summary.Total)
	require.Equal(t, 1, summary.Passed)
}

func TestSummarizeWindowedEmptyRequired(t *testing.T) {
	registry := taxonomy.NewRegistry()

	rec := pass("tc1")
	from, _ := time.Parse(core.DateLayout, "2027-01-01")

	_, err := Summarize(registry, []core.Record{rec}, Options{
		Window:         &Window{From: from},
		RequireRecords: true,
	})
	require.True(t, errors.Is(err, core.EmptyInputError))
}

func TestPassingRecordFindingsNotCounted(t *testing.T) {
	registry := taxonomy.NewRegistry()

	// A passing record can carry a finding on a dimension scored 2 or 3.
	// It must not show up in the failure counts.
	rec := pass("tc1")
	rec.Dimensions[core.DimensionHelpfulness] = core.DimensionScore{Score: 2, Findings: []int{23}}

	summary, err := Summarize(registry, []core.Record{rec, fail("tc2", 10)}, Options{})
	require.NoError(t, err)

	require.Equal(t, 2, summary.Total)
	require.Equal(t, 1, summary.Passed)
	require.Equal(t, 0, summary.ByFailureMode[23])
	require.Equal(t, 0, summary.ByCategory[core.CategoryRobustness])
	require.Equal(t, 0, summary.BySeverity[core.SeverityS2])
	require.Len(t, summary.TopFailures, 1)
	require.Equal(t, 10, summary.TopFailures[0].ID)
}

func TestFailureModesCountedOncePerRecord(t *testing.T) {
	registry := taxonomy.NewRegistry()

	rec := fail("tc1", 10)
	rec.SecondaryFailureModes = []int{10, 11}

	summary, err := Summarize(registry, []core.Record{rec}, Options{})
	require.NoError(t, err)
	require.Equal(t, 1, summary.ByFailureMode[10])
	require.Equal(t, 1, summary.ByFailureMode[11])
	require.Equal(t, 1, summary.ByCategory[core.CategoryFactuality])
}
