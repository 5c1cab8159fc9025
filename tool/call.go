package tool

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/signadot/cvtool/edit"
	"github.com/signadot/cvtool/ir"
	"github.com/signadot/cvtool/ir/kpath"
)

type Name string

const (
	CVReader      Name = "CVReader"
	CVEditor      Name = "CVEditor"
	CVBatchEditor Name = "CVBatchEditor"
)

func Names() []Name {
	return []Name{CVReader, CVEditor, CVBatchEditor}
}

// Call is a tool invocation as received from an agent.  Params is decoded
// according to Name.
type Call struct {
	Name   Name            `json:"name"`
	Params json.RawMessage `json:"params,omitempty"`
}

// ReadParams addresses the value to read; an empty Path reads the whole
// document.
type ReadParams struct {
	Path string `json:"path,omitempty"`
}

// EditParams is a single edit.  Value is nil when the "value" key is absent
// and an ir.NullType node when it is present as null.
type EditParams struct {
	Path   string      `json:"path" validate:"required"`
	Action edit.Action `json:"action" validate:"required,oneof=update add delete"`
	Value  *ir.Node    `json:"value,omitempty" validate:"-"`
}

func (p *EditParams) UnmarshalJSON(d []byte) error {
	var raw struct {
		Path   string          `json:"path"`
		Action edit.Action     `json:"action"`
		Value  json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(d, &raw); err != nil {
		return err
	}
	p.Path = raw.Path
	p.Action = raw.Action
	p.Value = nil
	if raw.Value == nil {
		return nil
	}
	// json.Unmarshal hands "null" to RawMessage as the literal bytes
	v, err := ir.FromJSON(bytes.TrimSpace(raw.Value))
	if err != nil {
		return fmt.Errorf("value: %w", err)
	}
	p.Value = v
	return nil
}

func (p *EditParams) MarshalJSON() ([]byte, error) {
	out := ir.FromKeyVals([]ir.KeyVal{
		{Key: "path", Val: ir.FromString(p.Path)},
		{Key: "action", Val: ir.FromString(string(p.Action))},
	})
	if p.Value != nil {
		out.Set("value", p.Value)
	}
	return out.MarshalJSON()
}

// Op converts p into an edit.Op.
func (p *EditParams) Op() *edit.Op {
	return &edit.Op{Path: p.Path, Action: p.Action, Value: p.Value}
}

type BatchParams struct {
	Operations []*EditParams `json:"operations" validate:"required"`

	// decodeErrs[i] is why Operations[i] could not be decoded.
	decodeErrs []error
}

// UnmarshalJSON decodes each operation on its own, so that a malformed
// entry fails alone when the batch runs.
func (p *BatchParams) UnmarshalJSON(d []byte) error {
	var raw struct {
		Operations []json.RawMessage `json:"operations"`
	}
	if err := json.Unmarshal(d, &raw); err != nil {
		return err
	}
	p.Operations, p.decodeErrs = nil, nil
	if raw.Operations == nil {
		return nil
	}
	p.Operations = make([]*EditParams, len(raw.Operations))
	p.decodeErrs = make([]error, len(raw.Operations))
	for i, op := range raw.Operations {
		if bytes.Equal(bytes.TrimSpace(op), []byte("null")) {
			continue
		}
		ep := &EditParams{}
		if err := json.Unmarshal(op, ep); err != nil {
			p.decodeErrs[i] = fmt.Errorf("%w: operation %d: %w", ErrBadParams, i, err)
			continue
		}
		p.Operations[i] = ep
	}
	return nil
}

func (p *BatchParams) decodeErr(i int) error {
	if i < len(p.decodeErrs) {
		return p.decodeErrs[i]
	}
	return nil
}

var validate = validator.New()

func (p *BatchParams) check() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: operations are required", ErrBadParams)
	}
	return nil
}

// check validates the envelope of p, mapping validation failures onto the
// errors the engine would have produced for the same input.
func (p *EditParams) check() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fe := verrs[0]
	switch fe.Field() {
	case "Path":
		_, err := kpath.Parse(p.Path)
		return err
	case "Action":
		return &edit.PathError{Path: p.Path, Err: edit.ErrUnsupportedAction, Detail: fmt.Sprintf("%q", p.Action)}
	}
	return fmt.Errorf("invalid %s: %s", fe.Field(), fe.Tag())
}

// decodeParams decodes raw into dst.  Empty params decode as the zero value.
func decodeParams(raw json.RawMessage, dst any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrBadParams, err)
	}
	return nil
}
