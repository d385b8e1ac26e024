package reader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdamyanRobert/csv-processor/query"
)

// writeTestCSV creates a CSV file with the given content in a temp dir
func writeTestCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleCSV = `name,brand,price,rating
iphone 15 pro,apple,999,4.9
galaxy s23 ultra,samsung,1199,4.8
redmi note 12,xiaomi,199,4.6
poco x5 pro,xiaomi,299,4.4
`

func TestLoadCSV(t *testing.T) {
	path := writeTestCSV(t, sampleCSV)

	table, err := LoadCSV(path)
	require.NoError(t, err)

	require.Equal(t, []string{"name", "brand", "price", "rating"}, table.Columns)
	require.Len(t, table.Records, 4)
	require.Equal(t, query.Text("iphone 15 pro"), table.Records[0]["name"])
	require.Equal(t, query.Text("apple"), table.Records[0]["brand"])
}

func TestLoadCSV_TypeCoercion(t *testing.T) {
	path := writeTestCSV(t, sampleCSV)

	table, err := LoadCSV(path)
	require.NoError(t, err)

	rec := table.Records[0]
	require.True(t, rec["price"].IsNumber(), "price should coerce to a number")
	require.Equal(t, 999.0, rec["price"].Num)
	require.True(t, rec["rating"].IsNumber(), "rating should coerce to a number")
	require.Equal(t, 4.9, rec["rating"].Num)
	require.False(t, rec["name"].IsNumber(), "name should stay text")
}

func TestLoadCSV_RowCountMatchesDataLines(t *testing.T) {
	path := writeTestCSV(t, "a,b\n1,2\n3,4\n5,6\n")

	table, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, table.Records, 3)
}

func TestLoadCSV_HeaderOnly(t *testing.T) {
	path := writeTestCSV(t, "a,b\n")

	table, err := LoadCSV(path)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, table.Columns)
	require.Empty(t, table.Records)
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrLoad)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Contains(t, loadErr.Msg, "not found")
}

func TestLoadCSV_EmptyFile(t *testing.T) {
	path := writeTestCSV(t, "")

	_, err := LoadCSV(path)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrLoad)
}

func TestLoadCSV_FieldCountMismatch(t *testing.T) {
	path := writeTestCSV(t, "a,b,c\n1,2,3\n4,5\n")

	_, err := LoadCSV(path)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrLoad)
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	path := writeTestCSV(t, sampleCSV)

	table, err := Load(path)
	require.NoError(t, err)
	require.Len(t, table.Records, 4)
}

func TestLoadCSV_ErrorIsTerminal(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	// The load kind is distinct from the other error kinds
	require.False(t, errors.Is(err, query.ErrParse))
	require.False(t, errors.Is(err, query.ErrAggregate))
}
