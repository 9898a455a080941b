package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/require"

	"evalvault/pkg/aggregate"
	"evalvault/pkg/core"
	"evalvault/pkg/taxonomy"
)

func sampleSummary() aggregate.Summary {
	return aggregate.Summary{
		Total:    3,
		Passed:   1,
		Failed:   2,
		PassRate: null.FloatFrom(1.0 / 3.0),
		ByCategory: map[core.Category]int{
			core.CategoryFactuality: 2,
		},
		ByFailureMode: map[int]int{10: 2},
		BySeverity:    map[core.Severity]int{core.SeverityS1: 2},
		TopFailures: []aggregate.FailureCount{
			{ID: 10, Name: "Fabricated Facts", Category: core.CategoryFactuality, Count: 2},
		},
	}
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	rep := JSONReporter{Writer: &buf, Pretty: true}
	require.NoError(t, rep.Report(sampleSummary()))

	var decoded aggregate.Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, 3, decoded.Total)
	require.Equal(t, 2, decoded.ByFailureMode[10])
}

func TestMarkdownReporter(t *testing.T) {
	var buf bytes.Buffer
	rep := MarkdownReporter{Writer: &buf}
	require.NoError(t, rep.Report(sampleSummary()))

	out := buf.String()
	require.Contains(t, out, "# Evaluation Summary")
	require.Contains(t, out, "Pass rate: **33.3%**")
	require.Contains(t, out, "| C. Hallucination & Factuality | 2 |")
	require.Contains(t, out, "| S1 | 2 |")
	require.Contains(t, out, "10. Fabricated Facts")
}

func TestCSVReporter(t *testing.T) {
	var buf bytes.Buffer
	rep := CSVReporter{Writer: &buf, Registry: taxonomy.NewRegistry()}
	require.NoError(t, rep.Report(sampleSummary()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "failure_mode_id,name,category,count", lines[0])
	require.Equal(t, "10,Fabricated Facts,C,2", lines[1])
}

func TestTableReporter(t *testing.T) {
	var buf bytes.Buffer
	rep := TableReporter{Writer: &buf}
	require.NoError(t, rep.Report(sampleSummary()))
	require.Contains(t, buf.String(), "33.3%")
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := New("xml", &bytes.Buffer{}, taxonomy.NewRegistry())
	require.Error(t, err)
}

func TestNewKnownFormats(t *testing.T) {
	registry := taxonomy.NewRegistry()
	for _, format := range []string{FormatJSON, FormatTable, FormatMarkdown, FormatCSV} {
		rep, err := New(format, &bytes.Buffer{}, registry)
		require.NoError(t, err)
		require.NotNil(t, rep)
	}
}
