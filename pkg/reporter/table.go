package reporter

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"evalvault/pkg/aggregate"
	"evalvault/pkg/core"
)

type TableReporter struct {
	Writer io.Writer
}

func (r TableReporter) Report(summary aggregate.Summary) error {
	table := tablewriter.NewWriter(r.Writer)
	table.Header([]string{"Metric", "Value"})
	table.Append([]string{"Records", fmt.Sprintf("%d", summary.Total)})
	table.Append([]string{"Passed", fmt.Sprintf("%d", summary.Passed)})
	table.Append([]string{"Failed", fmt.Sprintf("%d", summary.Failed)})
	table.Append([]string{"Pass rate", formatPassRate(summary)})
	for _, sev := range core.Severities {
		if count := summary.BySeverity[sev]; count > 0 {
			table.Append([]string{string(sev) + " findings", fmt.Sprintf("%d", count)})
		}
	}
	table.Render()

	if len(summary.TopFailures) > 0 {
		failures := tablewriter.NewWriter(r.Writer)
		failures.Header([]string{"#", "Failure Mode", "Category", "Count"})
		for rank, failure := range summary.TopFailures {
			failures.Append([]string{
				fmt.Sprintf("%d", rank+1),
				fmt.Sprintf("%d. %s", failure.ID, failure.Name),
				failure.Category.Title(),
				fmt.Sprintf("%d", failure.Count),
			})
		}
		failures.Render()
	}
	return nil
}

func formatPassRate(summary aggregate.Summary) string {
	if !summary.PassRate.Valid {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", summary.PassRate.Float64*100)
}
