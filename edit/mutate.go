package edit

import (
	"fmt"

	"github.com/signadot/cvtool/debug"
	"github.com/signadot/cvtool/ir"
	"github.com/signadot/cvtool/ir/kpath"
)

type Action string

const (
	Update Action = "update"
	Add    Action = "add"
	Delete Action = "delete"
)

func Actions() []Action {
	return []Action{Update, Add, Delete}
}

func (a Action) Valid() bool {
	switch a {
	case Update, Add, Delete:
		return true
	}
	return false
}

// Op is a single edit: an action at a path, with a value for update and
// add.  A nil Value means no value was given; a json null is a NullType
// node.
type Op struct {
	Path   string
	Action Action
	Value  *ir.Node
}

// Outcome describes an applied edit.  Value is what the path now holds for
// update, the appended element for add, the cleared value for a top-level
// delete and nil for a nested delete.
type Outcome struct {
	Path   string
	Action Action
	Value  *ir.Node
}

// Apply performs op on doc in place.
//
// Update replaces the value at the path.  Add appends to the array at the
// path, first replacing whatever is there with an empty array when it is
// absent or not an array.  Delete of a top-level field resets it to the
// empty value of its kind, while delete of a nested path removes the
// entry, splicing arrays.
//
// For update and add, a missing immediate parent held under an object
// field is created as an empty object.  Update cannot add a field to an
// object that is an element of an array.
func Apply(doc *ir.Node, op *Op) (*Outcome, error) {
	if !op.Action.Valid() {
		return nil, &PathError{Path: op.Path, Err: ErrUnsupportedAction, Detail: fmt.Sprintf("%q", op.Action)}
	}
	kp, err := kpath.Parse(op.Path)
	if err != nil {
		return nil, err
	}
	var v *ir.Node
	switch op.Action {
	case Update:
		v, err = update(doc, kp, op.Value)
	case Add:
		v, err = add(doc, kp, op.Value)
	case Delete:
		v, err = remove(doc, kp)
	}
	if err != nil {
		return nil, err
	}
	return &Outcome{Path: kp.String(), Action: op.Action, Value: v}, nil
}

func update(doc *ir.Node, kp *kpath.KPath, v *ir.Node) (*ir.Node, error) {
	if v == nil {
		return nil, &PathError{Path: kp.String(), Err: ErrMissingValue, Detail: "update requires a value"}
	}
	loc, err := resolve(doc, kp, true)
	if err != nil {
		return nil, err
	}
	if !loc.Exists() && loc.InSequence() {
		return nil, &PathError{
			Path:   kp.String(),
			Err:    ErrPathNotFound,
			Detail: "update cannot add fields to an array element",
		}
	}
	if debug.Edit() {
		debug.Logf("update %s: %v -> %v\n", kp, loc.Value, v)
	}
	loc.set(v)
	return v, nil
}

func add(doc *ir.Node, kp *kpath.KPath, v *ir.Node) (*ir.Node, error) {
	if v == nil {
		return nil, &PathError{Path: kp.String(), Err: ErrMissingValue, Detail: "add requires a value"}
	}
	loc, err := resolve(doc, kp, true)
	if err != nil {
		return nil, err
	}
	target := loc.Value
	if target == nil || target.Type != ir.ArrayType {
		if debug.Edit() && target != nil {
			debug.Logf("add %s: replacing %s value with an empty array\n", kp, target.Type)
		}
		target = ir.EmptyArray()
		loc.set(target)
	}
	if debug.Edit() {
		debug.Logf("add %s[%d]: %v\n", kp, len(target.Values), v)
	}
	target.Append(v)
	return v, nil
}

func remove(doc *ir.Node, kp *kpath.KPath) (*ir.Node, error) {
	loc, err := resolve(doc, kp, false)
	if err != nil {
		return nil, err
	}
	if !loc.Exists() {
		return nil, &PathError{Path: kp.String(), Err: ErrPathNotFound}
	}
	if loc.TopLevel() {
		// top-level fields stay, holding an empty value of the same kind
		empty := ir.EmptyLike(loc.Value)
		if debug.Edit() {
			debug.Logf("delete %s: clearing %s\n", kp, loc.Value.Type)
		}
		loc.set(empty)
		return empty, nil
	}
	if debug.Edit() {
		debug.Logf("delete %s: removing from %s\n", kp, loc.Parent.Type)
	}
	switch loc.Parent.Type {
	case ir.ArrayType:
		loc.Parent.Splice(loc.Index)
	case ir.ObjectType:
		loc.Parent.Delete(*loc.Key.Field)
	}
	return nil, nil
}
