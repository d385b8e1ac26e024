package query

import (
	"strconv"
	"strings"
)

// operatorChars are the characters that can split a predicate specification.
// The first occurrence of any of them is taken as the operator.
const operatorChars = "><="

// ParseWhere parses a filter specification of the form "column OP value"
// where OP is one of >, < or =. Surrounding whitespace on the column and
// value is ignored. The value is coerced to a number when it matches the
// numeric literal grammar, else kept as text.
func ParseWhere(spec string) (*Predicate, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}

	i := strings.IndexAny(spec, operatorChars)
	if i < 0 {
		return nil, parseErrorf(spec, "expected an operator (>, < or =)")
	}

	column := strings.TrimSpace(spec[:i])
	if err := validateColumn(spec, column); err != nil {
		return nil, err
	}

	var op Operator
	switch spec[i] {
	case '>':
		op = OpGreater
	case '<':
		op = OpLess
	case '=':
		op = OpEqual
	}

	value := strings.TrimSpace(spec[i+1:])

	return &Predicate{
		Column:   column,
		Operator: op,
		Literal:  Coerce(value),
	}, nil
}

// ParseAggregate parses an aggregation specification of the form
// "column=function" where function is one of avg, min or max
// (case-insensitive).
func ParseAggregate(spec string) (*AggregateRequest, error) {
	column, arg, err := splitOnEquals(spec)
	if err != nil {
		return nil, err
	}

	switch AggregateFunc(strings.ToLower(arg)) {
	case AggAvg:
		return &AggregateRequest{Column: column, Function: AggAvg}, nil
	case AggMin:
		return &AggregateRequest{Column: column, Function: AggMin}, nil
	case AggMax:
		return &AggregateRequest{Column: column, Function: AggMax}, nil
	default:
		return nil, parseErrorf(spec, "unsupported function %q (expected avg, min or max)", arg)
	}
}

// ParseOrderBy parses a sort specification of the form "column=direction"
// where direction is asc or desc (case-insensitive). A bare column name
// sorts ascending.
func ParseOrderBy(spec string) (*OrderKey, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}

	if !strings.Contains(spec, "=") {
		column := strings.TrimSpace(spec)
		if err := validateColumn(spec, column); err != nil {
			return nil, err
		}
		return &OrderKey{Column: column}, nil
	}

	column, arg, err := splitOnEquals(spec)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(arg) {
	case "asc":
		return &OrderKey{Column: column}, nil
	case "desc":
		return &OrderKey{Column: column, Desc: true}, nil
	default:
		return nil, parseErrorf(spec, "sort direction must be asc or desc, got %q", arg)
	}
}

// splitOnEquals splits "column=argument" specifications shared by the
// aggregate and order parsers.
func splitOnEquals(spec string) (column, arg string, err error) {
	if err := validateSpec(spec); err != nil {
		return "", "", err
	}

	i := strings.Index(spec, "=")
	if i < 0 {
		return "", "", parseErrorf(spec, "expected column=argument")
	}

	column = strings.TrimSpace(spec[:i])
	if err := validateColumn(spec, column); err != nil {
		return "", "", err
	}

	return column, strings.TrimSpace(spec[i+1:]), nil
}

// Coerce converts raw cell or literal text to a Value: a number when the
// text matches the numeric literal grammar (optional sign, digits, optional
// single decimal point), else text.
func Coerce(s string) Value {
	if n, ok := parseNumber(s); ok {
		return Number(n)
	}
	return Text(s)
}

// parseNumber reports whether s matches the numeric literal grammar and
// returns its value. The grammar is deliberately narrower than
// strconv.ParseFloat: no exponents, no hex, no inf/NaN.
func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}

	i := 0
	if s[0] == '+' || s[0] == '-' {
		i++
	}

	digits := false
	dot := false
	for ; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits = true
		case s[i] == '.' && !dot:
			dot = true
		default:
			return 0, false
		}
	}
	if !digits {
		return 0, false
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
