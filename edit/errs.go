package edit

import (
	"errors"
	"fmt"
)

var (
	ErrPathNotFound      = errors.New("path not found")
	ErrNotASequence      = errors.New("not a sequence")
	ErrIndexOutOfBounds  = errors.New("index out of bounds")
	ErrMissingValue      = errors.New("missing value")
	ErrUnsupportedAction = errors.New("unsupported action")
	ErrInternal          = errors.New("internal error")
)

// PathError reports a failure to resolve or mutate a path.  Path is the
// prefix of the requested path at which the failure was detected.
type PathError struct {
	Path   string
	Err    error
	Detail string
}

func (e *PathError) Error() string {
	msg := e.Err.Error()
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// IndexError reports an array index beyond the end of the array.  It
// matches ErrIndexOutOfBounds.
type IndexError struct {
	Path  string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: %s (index %d, length %d)", ErrIndexOutOfBounds, e.Path, e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfBounds
}
