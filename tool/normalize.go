package tool

import (
	"github.com/signadot/cvtool/edit"
	"github.com/signadot/cvtool/ir"
)

// Normalizer converts a value supplied by an agent into the shape the
// document stores at a path.  It must not retain v.
type Normalizer interface {
	Normalize(v *ir.Node) (*ir.Node, error)
}

type NormalizerFunc func(v *ir.Node) (*ir.Node, error)

func (f NormalizerFunc) Normalize(v *ir.Node) (*ir.Node, error) {
	return f(v)
}

// normalizerKey is a canonical path together with an action.  Paths are
// matched exactly, after alias rewriting.
type normalizerKey struct {
	path   string
	action edit.Action
}

type normalizers map[normalizerKey]Normalizer

func (n normalizers) lookup(path string, action edit.Action) Normalizer {
	return n[normalizerKey{path: path, action: action}]
}
