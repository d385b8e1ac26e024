package query

// Validation constants to prevent resource exhaustion from hostile input
const (
	// MaxSpecLength is the maximum allowed specification string length
	MaxSpecLength = 4096

	// MaxColumnNameLength is the maximum length for a column name
	MaxColumnNameLength = 256
)

// validateSpec checks the raw specification string before parsing
func validateSpec(spec string) error {
	if len(spec) > MaxSpecLength {
		return parseErrorf(spec[:32]+"...", "specification too long: %d bytes (max %d)", len(spec), MaxSpecLength)
	}
	return nil
}

// validateColumn checks a parsed column name
func validateColumn(spec, column string) error {
	if column == "" {
		return parseErrorf(spec, "missing column name")
	}
	if len(column) > MaxColumnNameLength {
		return parseErrorf(spec, "column name too long: %d chars (max %d)", len(column), MaxColumnNameLength)
	}
	return nil
}
