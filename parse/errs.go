package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/cvtool/ir"
)

var (
	ErrParse     = ir.ErrParse
	ErrEmpty     = fmt.Errorf("%w: empty document", ErrParse)
	ErrNotObject = errors.New("document is not an object")
	ErrKey       = fmt.Errorf("%w: unsupported key", ErrParse)
)
