package reporter

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"evalvault/pkg/aggregate"
	"evalvault/pkg/taxonomy"
)

type CSVReporter struct {
	Writer   io.Writer
	Registry *taxonomy.Registry
}

func (r CSVReporter) Report(summary aggregate.Summary) error {
	writer := csv.NewWriter(r.Writer)
	header := []string{"failure_mode_id", "name", "category", "count"}
	if err := writer.Write(header); err != nil {
		return err
	}

	ids := make([]int, 0, len(summary.ByFailureMode))
	for id := range summary.ByFailureMode {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		name, category := "", ""
		if r.Registry != nil {
			if entry, err := r.Registry.Lookup(id); err == nil {
				name = entry.Name
				category = string(entry.Category)
			}
		}
		row := []string{
			strconv.Itoa(id),
			name,
			category,
			strconv.Itoa(summary.ByFailureMode[id]),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
