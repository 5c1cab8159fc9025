package tool

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/cvtool/debug"
	"github.com/signadot/cvtool/edit"
	"github.com/signadot/cvtool/ir"
)

// Dispatcher routes tool calls to a document.  It holds configuration only
// and may be shared; the documents it is handed are not locked.
type Dispatcher struct {
	aliases     Aliases
	normalizers normalizers
	newID       func() string
}

type Option func(*Dispatcher)

// WithAliases replaces the alias table.
func WithAliases(a Aliases) Option {
	return func(d *Dispatcher) {
		d.aliases = a
	}
}

// WithNormalizer registers n for values given to action at the canonical
// path, replacing any normalizer already registered there.
func WithNormalizer(path string, action edit.Action, n Normalizer) Option {
	return func(d *Dispatcher) {
		d.normalizers[normalizerKey{path: path, action: action}] = n
	}
}

// WithIDFunc sets how the experience normalizer makes record ids.
func WithIDFunc(f func() string) Option {
	return func(d *Dispatcher) {
		d.newID = f
	}
}

// New returns a Dispatcher with the default aliases and the experience
// normalizer, adjusted by opts.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		aliases:     DefaultAliases(),
		normalizers: normalizers{},
		newID:       NewID,
	}
	for _, o := range opts {
		o(d)
	}
	key := normalizerKey{path: ExperiencePath, action: edit.Add}
	if _, ok := d.normalizers[key]; !ok {
		d.normalizers[key] = ExperienceNormalizer(d.newID)
	}
	return d
}

func (d *Dispatcher) Aliases() Aliases {
	return d.aliases
}

// Dispatch runs call against doc.  doc is modified in place by the editing
// tools.
func (d *Dispatcher) Dispatch(doc *ir.Node, call *Call) (res *Result) {
	defer func() {
		if r := recover(); r != nil {
			res = failure("", fmt.Errorf("%w: %v", edit.ErrInternal, r))
		}
	}()
	if call == nil {
		return failure("", &DispatchError{Err: ErrUnknownTool})
	}
	if debug.Dispatch() {
		debug.Logf("dispatch %s %s\n", call.Name, string(call.Params))
	}
	switch call.Name {
	case CVReader:
		p := &ReadParams{}
		if err := decodeParams(call.Params, p); err != nil {
			return failure("", err)
		}
		return d.Read(doc, p)
	case CVEditor:
		p := &EditParams{}
		if err := decodeParams(call.Params, p); err != nil {
			return failure("", err)
		}
		return d.Edit(doc, p)
	case CVBatchEditor:
		p := &BatchParams{}
		if err := decodeParams(call.Params, p); err != nil {
			return failure("", err)
		}
		return d.Batch(doc, p)
	}
	return failure("", &DispatchError{Name: call.Name, Err: ErrUnknownTool})
}

// Read returns the value at p.Path, or the whole document when the path is
// empty.  The returned data shares structure with doc.
func (d *Dispatcher) Read(doc *ir.Node, p *ReadParams) *Result {
	if p.Path == "" {
		return success("", "read document", doc)
	}
	path := d.aliases.Rewrite(p.Path)
	v, err := edit.Lookup(doc, path)
	if err != nil {
		return failure(p.Path, err)
	}
	return success(p.Path, "read "+path, v)
}

// Edit applies a single edit.
func (d *Dispatcher) Edit(doc *ir.Node, p *EditParams) *Result {
	op, err := d.prepareIsolated(p)
	if err != nil {
		return failure(p.Path, err)
	}
	out := edit.ApplyAll(doc, []*edit.Op{op})
	return fromOp(&out.Results[0], p.Path)
}

// Batch applies p.Operations in order.  An operation that cannot be
// prepared counts as failed like one that fails to apply, and does not stop
// the rest.
func (d *Dispatcher) Batch(doc *ir.Node, p *BatchParams) *Result {
	if err := p.check(); err != nil {
		return failure("", err)
	}
	n := len(p.Operations)
	paths := make([]string, n)
	prepErrs := make([]error, n)
	ops := make([]*edit.Op, 0, n)
	index := make([]int, 0, n)
	for i, ep := range p.Operations {
		if err := p.decodeErr(i); err != nil {
			prepErrs[i] = err
			continue
		}
		if ep == nil {
			prepErrs[i] = fmt.Errorf("%w: operation %d is null", ErrBadParams, i)
			continue
		}
		paths[i] = ep.Path
		op, err := d.prepareIsolated(ep)
		if err != nil {
			prepErrs[i] = err
			continue
		}
		ops = append(ops, op)
		index = append(index, i)
	}
	applied := edit.ApplyAll(doc, ops)

	out := &edit.BatchOutcome{Total: n, Results: make([]edit.OpResult, n)}
	for i, err := range prepErrs {
		if err != nil {
			out.Results[i] = edit.OpResult{Err: err}
		}
	}
	for j, r := range applied.Results {
		out.Results[index[j]] = r
	}
	for i := range out.Results {
		if out.Results[i].Err != nil {
			out.Failed++
		} else {
			out.Succeeded++
		}
	}
	if debug.Batch() {
		debug.Logf("batch: %d ok, %d failed\n", out.Succeeded, out.Failed)
	}
	return fromBatch(out, paths)
}

// prepareIsolated is prepare with a panic turned into an error.
func (d *Dispatcher) prepareIsolated(p *EditParams) (op *edit.Op, err error) {
	defer func() {
		if r := recover(); r != nil {
			op = nil
			err = fmt.Errorf("%w: %v", edit.ErrInternal, r)
		}
	}()
	return d.prepare(p)
}

// prepare validates p, rewrites its path and normalizes its value.
func (d *Dispatcher) prepare(p *EditParams) (*edit.Op, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	op := p.Op()
	op.Path = d.aliases.Rewrite(p.Path)
	if n := d.normalizers.lookup(op.Path, op.Action); n != nil && op.Value != nil {
		v, err := n.Normalize(op.Value)
		if err != nil {
			return nil, fmt.Errorf("normalizing value for %s: %w", op.Path, err)
		}
		op.Value = v
	}
	return op, nil
}

// MarshalCall encodes a call with the given params.
func MarshalCall(name Name, params any) (*Call, error) {
	d, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	return &Call{Name: name, Params: d}, nil
}
