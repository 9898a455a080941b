// Package aggregate computes summary statistics over evaluation records.
// Everything here is a pure function of its inputs.
package aggregate

import (
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"

	"evalvault/pkg/core"
	"evalvault/pkg/taxonomy"
)

// Window is an inclusive date filter on Record.Date. A zero From or To
// leaves that bound open.
type Window struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the window. Records without a
// parseable date never match a bounded window.
func (w Window) Contains(t time.Time) bool {
	if t.IsZero() {
		return w.From.IsZero() && w.To.IsZero()
	}
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && t.After(w.To) {
		return false
	}
	return true
}

// Options controls Summarize.
type Options struct {
	// Window filters records by date; nil disables filtering.
	Window *Window
	// TopN bounds the ranked failure list. Zero means default (5).
	TopN int
	// RequireRecords makes an empty (post-window) input an EmptyInputError
	// instead of a zeroed summary.
	RequireRecords bool
}

const defaultTopN = 5

// FailureCount is one entry of the ranked failure list.
type FailureCount struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Category core.Category `json:"category"`
	Count    int           `json:"count"`
}

// Summary is the aggregation result, serializable as a nested mapping for
// downstream report rendering.
type Summary struct {
	Total    int        `json:"total"`
	Passed   int        `json:"passed"`
	Failed   int        `json:"failed"`
	PassRate null.Float `json:"pass_rate"`

	ByCategory    map[core.Category]int `json:"by_category"`
	ByFailureMode map[int]int           `json:"by_failure_mode"`
	BySeverity    map[core.Severity]int `json:"by_severity"`

	TopFailures []FailureCount `json:"top_failures"`
}

// Summarize aggregates records: pass rate, per-category and per-failure-mode
// frequency over failing records, severity distribution, and a ranked top-N
// failure list with ties broken by lower taxonomy id. Counts are invariant
// under input reordering.
func Summarize(registry *taxonomy.Registry, records []core.Record, opts Options) (Summary, error) {
	topN := opts.TopN
	if topN <= 0 {
		topN = defaultTopN
	}

	filtered := records
	if opts.Window != nil {
		filtered = make([]core.Record, 0, len(records))
		for _, rec := range records {
			at, err := rec.EvaluatedAt()
			if err != nil {
				continue
			}
			if opts.Window.Contains(at) {
				filtered = append(filtered, rec)
			}
		}
	}

	summary := Summary{
		ByCategory:    make(map[core.Category]int),
		ByFailureMode: make(map[int]int),
		BySeverity:    make(map[core.Severity]int),
		TopFailures:   []FailureCount{},
	}

	if len(filtered) == 0 {
		if opts.RequireRecords {
			return Summary{}, errors.Wrap(core.EmptyInputError, "summarize")
		}
		return summary, nil
	}

	for _, rec := range filtered {
		summary.Total++
		if rec.Outcome == core.OutcomePass {
			summary.Passed++
			// A passing record may carry findings on a non-failing
			// dimension; those do not enter the failure counts.
			continue
		}
		summary.Failed++

		categories := make(map[core.Category]bool)
		for _, id := range rec.FailureModes() {
			entry, err := registry.Lookup(id)
			if err != nil {
				// Records come from a validating store; an unknown id
				// here means the caller bypassed it. Count nothing.
				continue
			}
			summary.ByFailureMode[id]++
			categories[entry.Category] = true
		}
		for cat := range categories {
			summary.ByCategory[cat]++
		}

		if sev, ok := rec.WorstSeverity(); ok {
			summary.BySeverity[sev]++
		}
	}

	summary.PassRate = null.FloatFrom(float64(summary.Passed) / float64(summary.Total))
	summary.TopFailures = rankFailures(registry, summary.ByFailureMode, topN)
	return summary, nil
}

func rankFailures(registry *taxonomy.Registry, counts map[int]int, topN int) []FailureCount {
	ranked := make([]FailureCount, 0, len(counts))
	for id, count := range counts {
		entry, err := registry.Lookup(id)
		if err != nil {
			continue
		}
		ranked = append(ranked, FailureCount{
			ID:       id,
			Name:     entry.Name,
			Category: entry.Category,
			Count:    count,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].ID < ranked[j].ID
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
