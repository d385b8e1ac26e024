package reader

import (
	"errors"
	"fmt"
)

// ErrLoad is the kind of all table loading failures
var ErrLoad = errors.New("load failed")

// LoadError reports a missing, empty, or malformed input file.
type LoadError struct {
	Path string
	Msg  string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load %s: %s", e.Path, e.Msg)
}

func (e *LoadError) Unwrap() error { return ErrLoad }

func loadErrorf(path, format string, args ...interface{}) error {
	return &LoadError{Path: path, Msg: fmt.Sprintf(format, args...)}
}
