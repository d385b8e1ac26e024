package reader

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/AdamyanRobert/csv-processor/query"
)

// Load reads a tabular file into memory, dispatching on the file
// extension: .parquet files go through the parquet reader, everything
// else is parsed as CSV.
func Load(path string) (*query.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return LoadParquet(path)
	}
	return LoadCSV(path)
}

// LoadCSV reads a comma-delimited UTF-8 file into a table. The first line
// is the header; each subsequent line becomes one record with cells
// coerced to numbers when they match the numeric literal grammar.
//
// Returns a *LoadError when the file is missing, has no header row, or a
// data row's field count differs from the header's.
func LoadCSV(path string) (*query.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, loadErrorf(path, "file not found")
		}
		return nil, loadErrorf(path, "%v", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, loadErrorf(path, "empty file: missing header row")
		}
		return nil, loadErrorf(path, "reading header: %v", err)
	}

	columns := make([]string, len(header))
	copy(columns, header)

	var records []query.Record
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// encoding/csv enforces the header's field count after the
			// first row, so mismatched rows surface here
			return nil, loadErrorf(path, "%v", err)
		}

		rec := make(query.Record, len(columns))
		for i, col := range columns {
			rec[col] = query.Coerce(fields[i])
		}
		records = append(records, rec)
	}

	return &query.Table{Columns: columns, Records: records}, nil
}
