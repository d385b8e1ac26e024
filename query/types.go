package query

import (
	"fmt"
	"strconv"
)

// Kind distinguishes the two value variants
type Kind int

const (
	// KindText is a plain string value
	KindText Kind = iota
	// KindNumber is a numeric value stored as float64
	KindNumber
)

// Value is a single cell value, either a number or text.
//
// The variant is fixed when the value is created; there is no implicit
// coercion afterwards. Comparison semantics depend on both variants:
// two numbers compare numerically, anything else compares lexicographically
// over the text forms.
type Value struct {
	Kind Kind
	Num  float64
	Str  string
}

// Number creates a numeric value
func Number(n float64) Value {
	return Value{Kind: KindNumber, Num: n}
}

// Text creates a text value
func Text(s string) Value {
	return Value{Kind: KindText, Str: s}
}

// IsNumber reports whether the value is numeric
func (v Value) IsNumber() bool {
	return v.Kind == KindNumber
}

// String returns the text form of the value
func (v Value) String() string {
	if v.Kind == KindNumber {
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	}
	return v.Str
}

// Compare returns -1, 0 or +1 ordering v against o.
// Numeric when both values are numbers, lexicographic otherwise.
func (v Value) Compare(o Value) int {
	if v.Kind == KindNumber && o.Kind == KindNumber {
		switch {
		case v.Num < o.Num:
			return -1
		case v.Num > o.Num:
			return 1
		default:
			return 0
		}
	}

	vs, os := v.String(), o.String()
	switch {
	case vs < os:
		return -1
	case vs > os:
		return 1
	default:
		return 0
	}
}

// Equal reports whether v and o are equal under matching coercion:
// numeric equality when both are numbers, text equality otherwise.
func (v Value) Equal(o Value) bool {
	return v.Compare(o) == 0
}

// Record is one row of the table, mapping column names to values.
// Records are treated as immutable once loaded.
type Record map[string]Value

// Table is an ordered sequence of records sharing a set of column names.
// Column order and row order are preserved through every operation except
// an explicit order stage.
type Table struct {
	Columns []string
	Records []Record
}

// Operator is a comparison operator in a filter predicate
type Operator int

const (
	// OpGreater is the > operator
	OpGreater Operator = iota
	// OpLess is the < operator
	OpLess
	// OpEqual is the = operator
	OpEqual
)

// String returns the operator character
func (op Operator) String() string {
	switch op {
	case OpGreater:
		return ">"
	case OpLess:
		return "<"
	case OpEqual:
		return "="
	default:
		return fmt.Sprintf("Operator(%d)", int(op))
	}
}

// AggregateFunc names an aggregate function
type AggregateFunc string

const (
	// AggAvg computes the arithmetic mean
	AggAvg AggregateFunc = "avg"
	// AggMin computes the minimum
	AggMin AggregateFunc = "min"
	// AggMax computes the maximum
	AggMax AggregateFunc = "max"
)

// Predicate is a parsed filter condition: column OP literal
type Predicate struct {
	Column   string
	Operator Operator
	Literal  Value
}

// AggregateRequest is a parsed request to reduce a column to one scalar
type AggregateRequest struct {
	Column   string
	Function AggregateFunc
}

// OrderKey is a parsed sort specification
type OrderKey struct {
	Column string
	Desc   bool // descending vs ascending (default)
}

// Plan holds the optional operations of one run. Each stage is applied by
// Run in fixed order: Where, then Aggregate, then OrderBy.
type Plan struct {
	Where     *Predicate
	Aggregate *AggregateRequest
	OrderBy   *OrderKey
}

// Scalar is the result of an aggregation
type Scalar struct {
	Column   string
	Function AggregateFunc
	Value    float64
}

// Label returns the display name for the scalar, e.g. "avg(rating)"
func (s *Scalar) Label() string {
	return fmt.Sprintf("%s(%s)", s.Function, s.Column)
}

// FormatValue returns the text form of the scalar value
func (s *Scalar) FormatValue() string {
	return strconv.FormatFloat(s.Value, 'g', -1, 64)
}

// Result is the output of a run: either a table or a scalar, never both
type Result struct {
	Table  *Table
	Scalar *Scalar
}
