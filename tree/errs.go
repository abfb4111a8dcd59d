package tree

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput    = errors.New("empty input")
	ErrMissingName   = errors.New("missing name")
	ErrMissingProp   = errors.New("missing property")
	ErrMultipleRoots = errors.New("multiple roots")

	// ErrFormat matches every *FormatError under errors.Is.
	ErrFormat = errors.New("format error")
)

// FormatError reports a violation specific to the surface syntax being
// decoded. Msg is meant for the end user.
type FormatError struct {
	Msg string
	Err error
}

func NewFormatError(msg string) *FormatError {
	return &FormatError{Msg: msg}
}

func FormatErrorf(format string, args ...any) *FormatError {
	return &FormatError{Msg: fmt.Sprintf(format, args...)}
}

// WrapFormatError makes a FormatError whose message is that of err.
func WrapFormatError(err error) *FormatError {
	return &FormatError{Msg: err.Error(), Err: err}
}

func (e *FormatError) Error() string {
	return e.Msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
