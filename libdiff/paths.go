package libdiff

import (
	"github.com/signadot/cvtool/ir"
	"github.com/signadot/cvtool/ir/kpath"
)

// Paths returns the paths at which from and to differ, outermost first and
// in document order.  A value present on one side only is reported at its
// own path; arrays of different lengths report each index past the shorter
// one.
func Paths(from, to *ir.Node) []*kpath.KPath {
	return diffPaths(nil, from, to, nil)
}

func diffPaths(at *kpath.KPath, from, to *ir.Node, dst []*kpath.KPath) []*kpath.KPath {
	if ir.Equal(from, to) {
		return dst
	}
	if from == nil || to == nil || from.Type != to.Type || from.Type.IsLeaf() {
		if at == nil {
			return dst
		}
		return append(dst, at)
	}
	switch from.Type {
	case ir.ArrayType:
		n := max(len(from.Values), len(to.Values))
		for i := range n {
			var a, b *ir.Node
			if i < len(from.Values) {
				a = from.Values[i]
			}
			if i < len(to.Values) {
				b = to.Values[i]
			}
			dst = diffPaths(at.Append(kpath.Index(i)), a, b, dst)
		}
	case ir.ObjectType:
		for i, f := range from.Fields {
			dst = diffPaths(at.Append(kpath.Field(f.String)), from.Values[i], ir.Get(to, f.String), dst)
		}
		for _, f := range to.Fields {
			if from.FieldIndex(f.String) == -1 {
				dst = append(dst, at.Append(kpath.Field(f.String)))
			}
		}
	}
	return dst
}
