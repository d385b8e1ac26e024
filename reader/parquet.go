package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/AdamyanRobert/csv-processor/query"
)

// LoadParquet reads a parquet file into a table. Column order follows the
// file schema. Numeric physical types become numbers; every other value is
// kept as text via its string form.
//
// The entire file is loaded into memory, so this is not suitable for very
// large files.
func LoadParquet(path string) (*query.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, loadErrorf(path, "file not found")
		}
		return nil, loadErrorf(path, "%v", err)
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, loadErrorf(path, "stat: %v", err)
	}

	pqFile, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, loadErrorf(path, "not a valid parquet file: %v", err)
	}

	columns := make([]string, 0, len(pqFile.Schema().Fields()))
	for _, field := range pqFile.Schema().Fields() {
		columns = append(columns, field.Name())
	}

	rows := parquet.NewReader(pqFile)
	defer func() { _ = rows.Close() }()

	var records []query.Record
	for {
		row := make(map[string]interface{})
		if err := rows.Read(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, loadErrorf(path, "reading row: %v", err)
		}

		rec := make(query.Record, len(columns))
		for col, val := range row {
			rec[col] = toValue(val)
		}
		records = append(records, rec)
	}

	return &query.Table{Columns: columns, Records: records}, nil
}

// toValue converts a decoded parquet value into the tagged value model
func toValue(v interface{}) query.Value {
	switch val := v.(type) {
	case nil:
		return query.Text("")
	case float64:
		return query.Number(val)
	case float32:
		return query.Number(float64(val))
	case int:
		return query.Number(float64(val))
	case int32:
		return query.Number(float64(val))
	case int64:
		return query.Number(float64(val))
	case uint32:
		return query.Number(float64(val))
	case uint64:
		return query.Number(float64(val))
	case string:
		return query.Text(val)
	case []byte:
		return query.Text(string(val))
	case bool:
		if val {
			return query.Text("true")
		}
		return query.Text("false")
	default:
		return query.Text(fmt.Sprintf("%v", val))
	}
}
