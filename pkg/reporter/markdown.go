package reporter

import (
	"fmt"
	"io"

	"evalvault/pkg/aggregate"
	"evalvault/pkg/core"
)

type MarkdownReporter struct {
	Writer io.Writer
	Title  string
}

func (r MarkdownReporter) Report(summary aggregate.Summary) error {
	title := r.Title
	if title == "" {
		title = "Evaluation Summary"
	}
	if _, err := fmt.Fprintf(r.Writer, "# %s\n\n", title); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(r.Writer,
		"- Records scored: **%d**\n- PASS: **%d**\n- FAIL: **%d**\n- Pass rate: **%s**\n\n",
		summary.Total, summary.Passed, summary.Failed, formatPassRate(summary)); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(r.Writer, "## By Category\n\n| Category | Failing Records |\n|---|---:|\n"); err != nil {
		return err
	}
	for _, cat := range core.Categories {
		count := summary.ByCategory[cat]
		if count == 0 {
			continue
		}
		if _, err := fmt.Fprintf(r.Writer, "| %s | %d |\n", cat.Title(), count); err != nil {
			return err
		}
	}

	if len(summary.BySeverity) > 0 {
		if _, err := fmt.Fprintf(r.Writer, "\n## Severity Observed\n\n| Severity | Count |\n|---|---:|\n"); err != nil {
			return err
		}
		for _, sev := range core.Severities {
			count, ok := summary.BySeverity[sev]
			if !ok {
				continue
			}
			if _, err := fmt.Fprintf(r.Writer, "| %s | %d |\n", sev, count); err != nil {
				return err
			}
		}
	}

	if len(summary.TopFailures) > 0 {
		if _, err := fmt.Fprintf(r.Writer, "\n## Top Failure Modes\n\n| Failure Mode | Category | Count |\n|---|---|---:|\n"); err != nil {
			return err
		}
		for _, failure := range summary.TopFailures {
			if _, err := fmt.Fprintf(r.Writer, "| %d. %s | %s | %d |\n",
				failure.ID, failure.Name, failure.Category.Title(), failure.Count); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(r.Writer)
	return err
}
