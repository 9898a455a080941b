package reporter

import (
	"io"

	"github.com/cockroachdb/errors"

	"evalvault/pkg/aggregate"
	"evalvault/pkg/taxonomy"
)

// Reporter writes an aggregation summary.
type Reporter interface {
	Report(summary aggregate.Summary) error
}

const (
	FormatJSON     = "json"
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

// New builds the reporter for format writing to w.
func New(format string, w io.Writer, registry *taxonomy.Registry) (Reporter, error) {
	switch format {
	case FormatJSON:
		return JSONReporter{Writer: w, Pretty: true}, nil
	case FormatTable:
		return TableReporter{Writer: w}, nil
	case FormatMarkdown:
		return MarkdownReporter{Writer: w}, nil
	case FormatCSV:
		return CSVReporter{Writer: w, Registry: registry}, nil
	default:
		return nil, errors.Newf("unknown format: %s", format)
	}
}
