package output

import (
	"encoding/json"
	"io"

	"github.com/AdamyanRobert/csv-processor/query"
)

// JSONFormatter renders results as JSON Lines
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes the result as JSON Lines: one object per record with
// numbers and strings preserved. A scalar emits a single object keyed by
// its label.
func (j *JSONFormatter) Format(result *query.Result) error {
	encoder := json.NewEncoder(j.writer)

	if result.Scalar != nil {
		return encoder.Encode(map[string]float64{
			result.Scalar.Label(): result.Scalar.Value,
		})
	}

	for _, rec := range result.Table.Records {
		obj := make(map[string]interface{}, len(rec))
		for col, v := range rec {
			if v.IsNumber() {
				obj[col] = v.Num
			} else {
				obj[col] = v.Str
			}
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}

	return nil
}
