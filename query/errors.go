package query

import (
	"errors"
	"fmt"
)

var (
	// ErrBuildFailed is the only error returned by Build and BuildQuery. The
	// underlying cause is not exposed to callers; it is logged at debug level.
	ErrBuildFailed = errors.New("query: build failed")

	ErrUnsupportedType = errors.New("query: unsupported type")
	ErrMissingArgument = errors.New("query: missing argument")
	ErrUnclosedBlock   = errors.New("query: unclosed conditional block")
)

// UnsupportedTypeError is raised when a value does not fit the formatter its
// placeholder selects.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("query: type %s is not supported", e.Type)
}

func (e *UnsupportedTypeError) Is(err error) bool {
	return err == ErrUnsupportedType
}

func unsupported(v any) error {
	if IsSkip(v) {
		return &UnsupportedTypeError{Type: "skip"}
	}
	return &UnsupportedTypeError{Type: fmt.Sprintf("%T", v)}
}

// MissingArgumentError reports a placeholder with no argument left for it.
type MissingArgumentError struct {
	Index int
	Count int
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("query: no argument at position %d (%d given)", e.Index, e.Count)
}

func (e *MissingArgumentError) Is(err error) bool {
	return err == ErrMissingArgument
}
