package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/AdamyanRobert/csv-processor/query"
)

// GridFormatter renders results as an aligned text table
type GridFormatter struct {
	writer io.Writer
}

// NewGridFormatter creates a new grid formatter
func NewGridFormatter(w io.Writer) *GridFormatter {
	return &GridFormatter{writer: w}
}

// SetOutput sets the output writer
func (g *GridFormatter) SetOutput(w io.Writer) {
	g.writer = w
}

// Format writes the result as a bordered grid with a header row. A scalar
// renders as a single labeled line, e.g. "avg(rating) = 4.2". An empty
// table renders a placeholder line instead of a bare border.
func (g *GridFormatter) Format(result *query.Result) error {
	if result.Scalar != nil {
		_, err := fmt.Fprintf(g.writer, "%s = %s\n", result.Scalar.Label(), result.Scalar.FormatValue())
		return err
	}

	t := result.Table
	if len(t.Records) == 0 {
		_, err := fmt.Fprintln(g.writer, "no data to display")
		return err
	}

	grid := tablewriter.NewWriter(g.writer)
	grid.SetHeader(t.Columns)
	grid.SetAutoFormatHeaders(false)
	for _, rec := range t.Records {
		row := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			if v, ok := rec[col]; ok {
				row[i] = v.String()
			}
		}
		grid.Append(row)
	}
	grid.Render()

	return nil
}
