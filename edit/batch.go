package edit

import (
	"fmt"

	"github.com/signadot/cvtool/debug"
	"github.com/signadot/cvtool/ir"
)

type OpResult struct {
	Op      *Op
	Outcome *Outcome
	Err     error
}

type BatchOutcome struct {
	Total     int
	Succeeded int
	Failed    int
	Results   []OpResult
}

// ApplyAll applies ops to doc in order.  Each op sees the effects of the
// ones before it.  A failing op is recorded and the remaining ops are still
// applied; nothing is rolled back.
func ApplyAll(doc *ir.Node, ops []*Op) *BatchOutcome {
	res := &BatchOutcome{
		Total:   len(ops),
		Results: make([]OpResult, len(ops)),
	}
	for i, op := range ops {
		out, err := applyIsolated(doc, op)
		res.Results[i] = OpResult{Op: op, Outcome: out, Err: err}
		if err != nil {
			res.Failed++
			if debug.Batch() {
				debug.Logf("batch op %d/%d %s %s failed: %v\n", i+1, len(ops), op.Action, op.Path, err)
			}
			continue
		}
		res.Succeeded++
	}
	return res
}

func applyIsolated(doc *ir.Node, op *Op) (out *Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()
	if op == nil {
		return nil, &PathError{Err: ErrMissingValue, Detail: "nil operation"}
	}
	return Apply(doc, op)
}
