package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/AdamyanRobert/csv-processor/query"
)

// CSVFormatter renders results as CSV
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the result as CSV with a header row. Columns keep the
// table's declared order. A scalar emits a one-column header with its
// label and a single value row.
func (c *CSVFormatter) Format(result *query.Result) error {
	csvWriter := csv.NewWriter(c.writer)

	if result.Scalar != nil {
		if err := csvWriter.Write([]string{result.Scalar.Label()}); err != nil {
			return err
		}
		if err := csvWriter.Write([]string{result.Scalar.FormatValue()}); err != nil {
			return err
		}
		csvWriter.Flush()
		return csvWriter.Error()
	}

	t := result.Table
	if err := csvWriter.Write(t.Columns); err != nil {
		return err
	}

	for _, rec := range t.Records {
		row := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			if v, ok := rec[col]; ok {
				row[i] = v.String()
			}
		}
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}
