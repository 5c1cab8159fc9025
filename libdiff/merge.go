package libdiff

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/cvtool/ir"
)

// MergePatch returns the RFC 7386 merge patch that takes from to to.  Keys
// of the patch are not in document order.
func MergePatch(from, to *ir.Node) (*ir.Node, error) {
	a, err := from.MarshalJSON()
	if err != nil {
		return nil, err
	}
	b, err := to.MarshalJSON()
	if err != nil {
		return nil, err
	}
	d, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("creating merge patch: %w", err)
	}
	return ir.FromJSON(d)
}

// ApplyMergePatch applies an RFC 7386 merge patch to doc, returning a new
// document.
func ApplyMergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	a, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	p, err := patch.MarshalJSON()
	if err != nil {
		return nil, err
	}
	d, err := jsonpatch.MergePatch(a, p)
	if err != nil {
		return nil, fmt.Errorf("applying merge patch: %w", err)
	}
	return ir.FromJSON(d)
}
