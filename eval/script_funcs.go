package eval

import (
	"errors"

	"github.com/expr-lang/expr"

	"github.com/signadot/cvtool/edit"
	"github.com/signadot/cvtool/ir"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			res, err := edit.Lookup(doc, path)
			if err != nil {
				return nil, err
			}
			return ir.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			path := params[0].(string)
			_, err := edit.Lookup(doc, path)
			switch {
			case err == nil:
				return true, nil
			case errors.Is(err, edit.ErrPathNotFound),
				errors.Is(err, edit.ErrIndexOutOfBounds),
				errors.Is(err, edit.ErrNotASequence):
				return false, nil
			}
			return nil, err
		},
			new(func(string) bool)),
	}
}
