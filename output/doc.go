// Package output renders pipeline results as text.
//
// Supported formats:
//   - Grid: aligned table with header row (scalars print as one labeled line)
//   - CSV: comma-separated values with header row
//   - JSON Lines: one JSON object per record
//
// Example usage:
//
//	formatter := output.NewGridFormatter(os.Stdout)
//	if err := formatter.Format(result); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"io"

	"github.com/AdamyanRobert/csv-processor/query"
)

// Formatter defines the interface for result renderers.
//
// Implementers must handle both result shapes: a table of records and a
// single aggregated scalar. Formatting is purely presentational.
type Formatter interface {
	// Format writes the result in the formatter's specific format
	Format(result *query.Result) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
