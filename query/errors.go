package query

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is the kind of all specification parsing failures
	ErrParse = errors.New("invalid specification")

	// ErrAggregate is the kind of all aggregation failures
	ErrAggregate = errors.New("aggregation failed")
)

// ParseError reports a malformed --where/--aggregate/--order-by specification.
type ParseError struct {
	Spec string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid specification %q: %s", e.Spec, e.Msg)
}

func (e *ParseError) Unwrap() error { return ErrParse }

func parseErrorf(spec, format string, args ...interface{}) error {
	return &ParseError{Spec: spec, Msg: fmt.Sprintf(format, args...)}
}

// AggregateError reports an aggregate requested on a missing, empty, or
// non-numeric column.
type AggregateError struct {
	Column string
	Msg    string
}

func (e *AggregateError) Error() string {
	return fmt.Sprintf("cannot aggregate column %q: %s", e.Column, e.Msg)
}

func (e *AggregateError) Unwrap() error { return ErrAggregate }

func aggregateErrorf(column, format string, args ...interface{}) error {
	return &AggregateError{Column: column, Msg: fmt.Sprintf(format, args...)}
}
