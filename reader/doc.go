// Package reader loads tabular files into in-memory tables.
//
// CSV is the primary input format: the first line is the header, each
// subsequent line one record, field count matching the header. Parquet
// files are supported as an alternative input and produce the same table
// shape. Every cell is type-coerced on load: numeric literals become
// numbers, everything else stays text.
//
// Example usage:
//
//	table, err := reader.Load("products.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// All load failures are reported as a *LoadError wrapping ErrLoad.
package reader
