package eval

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/cvtool/debug"
	"github.com/signadot/cvtool/ir"
)

var ErrEval = errors.New("eval error")

type Env map[string]any

// DocVar is the variable holding the whole document.
const DocVar = "doc"

// NewEnv returns the variables an expression over doc sees.  Values are
// copies; expressions cannot change doc.
func NewEnv(doc *ir.Node) Env {
	env := Env{}
	if doc != nil && doc.Type == ir.ObjectType {
		for i, f := range doc.Fields {
			env[f.String] = ir.ToAny(doc.Values[i])
		}
	}
	env[DocVar] = ir.ToAny(doc)
	return env
}

// Query evaluates input against doc.  Unknown variables evaluate to nil.
func Query(doc *ir.Node, input string) (*ir.Node, error) {
	env := NewEnv(doc)
	opts := append(exprOpts(doc), expr.Env(map[string]any(env)), expr.AllowUndefinedVariables())
	program, err := expr.Compile(input, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, input, err)
	}
	val, err := vm.Run(program, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("%w: evaluating %q: %w", ErrEval, input, err)
	}
	if debug.Dispatch() {
		debug.Logf("query %q -> %v\n", input, val)
	}
	res, err := ir.FromAny(val)
	if err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrEval, input, err)
	}
	return res, nil
}

// Truth reports whether input evaluates to a true value: true, a non-zero
// number, or a non-empty string, array or object.
func Truth(doc *ir.Node, input string) (bool, error) {
	res, err := Query(doc, input)
	if err != nil {
		return false, err
	}
	return ir.Truth(res), nil
}
