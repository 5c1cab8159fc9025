package edit

import (
	"fmt"

	"github.com/signadot/cvtool/debug"
	"github.com/signadot/cvtool/ir"
	"github.com/signadot/cvtool/ir/kpath"
)

// Location is a resolved path: the chain of containers from the document
// root down to the immediate parent of the final segment, the final segment
// itself and the value found there.  Mutations go through the Location
// rather than walking the document again.
type Location struct {
	Path *kpath.KPath
	// Trail holds the containers visited from the root; its last element is
	// Parent.
	Trail  []*ir.Node
	Parent *ir.Node
	Key    *kpath.KPath
	// Index is the position of the value in Parent.Values, or -1 when the
	// key is absent from an object parent.
	Index int
	// Value is nil when the key is absent.
	Value *ir.Node
}

// Exists reports whether the final key is present.
func (l *Location) Exists() bool {
	return l.Value != nil
}

// TopLevel reports whether the location is a field of the document root.
func (l *Location) TopLevel() bool {
	return len(l.Trail) == 1
}

// InSequence reports whether the parent is an object held in an array.
func (l *Location) InSequence() bool {
	n := len(l.Trail)
	return n >= 2 && l.Parent.Type == ir.ObjectType && l.Trail[n-2].Type == ir.ArrayType
}

func (l *Location) set(v *ir.Node) {
	switch l.Parent.Type {
	case ir.ArrayType:
		l.Parent.Values[l.Index] = v
	case ir.ObjectType:
		l.Parent.Set(*l.Key.Field, v)
		l.Index = l.Parent.FieldIndex(*l.Key.Field)
	}
	l.Value = v
}

// Get resolves kp against doc.  The final key may be absent from an
// existing object, in which case the returned Location has a nil Value.
// Everything before the final key must exist.
func Get(doc *ir.Node, kp *kpath.KPath) (*Location, error) {
	return resolve(doc, kp, false)
}

// Lookup returns the value at path, failing with ErrPathNotFound when the
// final key is absent.
func Lookup(doc *ir.Node, path string) (*ir.Node, error) {
	kp, err := kpath.Parse(path)
	if err != nil {
		return nil, err
	}
	loc, err := Get(doc, kp)
	if err != nil {
		return nil, err
	}
	if !loc.Exists() {
		return nil, &PathError{Path: kp.String(), Err: ErrPathNotFound}
	}
	return loc.Value, nil
}

// resolve walks kp.  With createParent, a missing immediate parent held
// under a field of an object is created as an empty object when the final
// segment is a field.  Nothing deeper is ever created.
func resolve(doc *ir.Node, kp *kpath.KPath, createParent bool) (*Location, error) {
	if kp == nil {
		return nil, &PathError{Err: ErrPathNotFound, Detail: "empty path"}
	}
	segs := kp.Segments()
	n := len(segs)
	trail := make([]*ir.Node, 0, n)
	cur := doc
	for i, seg := range segs {
		last := i == n-1
		if cur.IsNull() {
			if !(createParent && last && i > 0 && seg.Field != nil) {
				return nil, &PathError{Path: kp.Prefix(i).String(), Err: ErrPathNotFound}
			}
			holder := trail[len(trail)-1]
			if holder.Type != ir.ObjectType || segs[i-1].Field == nil {
				return nil, &PathError{Path: kp.Prefix(i).String(), Err: ErrPathNotFound}
			}
			cur = ir.EmptyObject()
			holder.Set(*segs[i-1].Field, cur)
			if debug.Path() {
				debug.Logf("created parent object at %s\n", kp.Prefix(i))
			}
		}
		trail = append(trail, cur)
		switch cur.Type {
		case ir.ArrayType:
			idx, ok := seg.AsIndex()
			if !ok {
				return nil, &PathError{
					Path:   kp.Prefix(i + 1).String(),
					Err:    ErrPathNotFound,
					Detail: fmt.Sprintf("field %q of an array", *seg.Field),
				}
			}
			if idx >= len(cur.Values) {
				return nil, &IndexError{Path: kp.Prefix(i + 1).String(), Index: idx, Len: len(cur.Values)}
			}
			if last {
				return &Location{Path: kp, Trail: trail, Parent: cur, Key: seg, Index: idx, Value: cur.Values[idx]}, nil
			}
			cur = cur.Values[idx]

		case ir.ObjectType:
			if seg.IsIndex() {
				return nil, &PathError{Path: kp.Prefix(i).String(), Err: ErrNotASequence, Detail: "object"}
			}
			j := cur.FieldIndex(*seg.Field)
			if last {
				loc := &Location{Path: kp, Trail: trail, Parent: cur, Key: seg, Index: j}
				if j != -1 {
					loc.Value = cur.Values[j]
				}
				return loc, nil
			}
			if j == -1 {
				cur = nil
				continue
			}
			cur = cur.Values[j]

		default:
			if seg.IsIndex() {
				return nil, &PathError{Path: kp.Prefix(i).String(), Err: ErrNotASequence, Detail: cur.Type.String()}
			}
			return nil, &PathError{
				Path:   kp.Prefix(i + 1).String(),
				Err:    ErrPathNotFound,
				Detail: fmt.Sprintf("field %q of %s", *seg.Field, cur.Type),
			}
		}
	}
	panic("unreachable")
}
