package tool

import (
	"errors"
	"fmt"

	"github.com/signadot/cvtool/edit"
	"github.com/signadot/cvtool/ir/kpath"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

var (
	ErrUnknownTool = errors.New("unknown tool")
	ErrBadParams   = errors.New("bad params")
)

// DispatchError reports a call that could not be routed to a tool.
type DispatchError struct {
	Name Name
	Err  error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%v %q", e.Err, e.Name)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// Result is the answer to a tool call.  Data holds the value read, the
// value written, or a *BatchData for CVBatchEditor.
type Result struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Path    string `json:"path,omitempty"`

	// Err is the error behind an error Result.
	Err error `json:"-"`
}

func (r *Result) OK() bool {
	return r.Status == StatusSuccess
}

type BatchData struct {
	Total     int       `json:"total"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	Results   []*Result `json:"results"`
}

func success(path, msg string, data any) *Result {
	return &Result{Status: StatusSuccess, Message: msg, Data: data, Path: path}
}

func failure(path string, err error) *Result {
	return &Result{Status: StatusError, Message: errorMessage(err), Path: path, Err: err}
}

// errorMessage renders err for an agent, naming the error class first.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, kpath.ErrParse):
		return "invalid path: " + err.Error()
	case errors.Is(err, edit.ErrPathNotFound),
		errors.Is(err, edit.ErrNotASequence),
		errors.Is(err, edit.ErrIndexOutOfBounds):
		return "cannot access path: " + err.Error()
	case errors.Is(err, edit.ErrMissingValue),
		errors.Is(err, edit.ErrUnsupportedAction):
		return "cannot edit: " + err.Error()
	}
	return err.Error()
}

func fromBatch(out *edit.BatchOutcome, paths []string) *Result {
	data := &BatchData{
		Total:     out.Total,
		Succeeded: out.Succeeded,
		Failed:    out.Failed,
		Results:   make([]*Result, len(out.Results)),
	}
	for i := range out.Results {
		data.Results[i] = fromOp(&out.Results[i], paths[i])
	}
	res := &Result{Data: data}
	if out.Failed == 0 {
		res.Status = StatusSuccess
		res.Message = fmt.Sprintf("applied %d of %d operations", out.Succeeded, out.Total)
	} else {
		res.Status = StatusError
		res.Message = fmt.Sprintf("applied %d of %d operations, %d failed", out.Succeeded, out.Total, out.Failed)
	}
	return res
}

// fromOp converts one edit result.  path is the path as the caller wrote
// it, before alias rewriting.
func fromOp(r *edit.OpResult, path string) *Result {
	if r.Err != nil {
		return failure(path, r.Err)
	}
	msg := fmt.Sprintf("%s %s", pastTense(r.Outcome.Action), r.Outcome.Path)
	if r.Outcome.Value == nil {
		return success(path, msg, nil)
	}
	return success(path, msg, r.Outcome.Value)
}

func pastTense(a edit.Action) string {
	switch a {
	case edit.Update:
		return "updated"
	case edit.Add:
		return "added to"
	case edit.Delete:
		return "deleted"
	}
	return string(a)
}
