package kpath

import (
	"errors"
	"fmt"
)

var (
	ErrParse = errors.New("path parse error")

	ErrEmptyPath           = errors.New("empty path")
	ErrEmptySegment        = errors.New("empty field segment")
	ErrUnterminatedBracket = errors.New("unterminated bracket")
	ErrNonNumericIndex     = errors.New("non-numeric index")
	ErrUnexpectedChar      = errors.New("unexpected character")
)

// ParseError reports where parsing a path failed.  It matches both ErrParse
// and its specific cause with errors.Is.
type ParseError struct {
	Path   string
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v at offset %d in path %q", e.Err, e.Offset, e.Path)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

func parseErr(path string, off int, err error) error {
	return &ParseError{Path: path, Offset: off, Err: err}
}
