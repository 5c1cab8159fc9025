package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cvtool/edit"
	"github.com/signadot/cvtool/ir"
	"github.com/signadot/cvtool/libdiff"
	"github.com/signadot/cvtool/parse"
	"github.com/signadot/cvtool/tool"
)

type applyFlags struct {
	write, diff, patch bool
}

func editCmd(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Edit.Parse(cc, args)
	if err != nil {
		cfg.Edit.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: edit requires 1 file, got %v", cli.ErrUsage, args)
	}
	p, err := editParams(cfg.Path, cfg.Action, cfg.Value, optSet(cfg.Edit, "v"))
	if err != nil {
		return err
	}
	call, err := tool.MarshalCall(tool.CVEditor, p)
	if err != nil {
		return err
	}
	return runCall(cfg.MainConfig, cc, applyFlags{cfg.Write, cfg.Diff, cfg.Patch}, args[0], call)
}

// editParams builds the parameters of an edit from the command line.  The
// value is yaml; an empty value given explicitly is the empty string.
func editParams(path, action, value string, valueSet bool) (*tool.EditParams, error) {
	p := &tool.EditParams{Path: path, Action: edit.Action(action)}
	if !valueSet {
		return p, nil
	}
	v, err := parse.Parse([]byte(value))
	switch {
	case err == nil:
		p.Value = v
	case value == "":
		p.Value = ir.FromString("")
	default:
		return nil, fmt.Errorf("%w: bad value %q: %w", cli.ErrUsage, value, err)
	}
	return p, nil
}

func batch(cfg *BatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Batch.Parse(cc, args)
	if err != nil {
		cfg.Batch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: batch requires an operations file and a file, got %v", cli.ErrUsage, args)
	}
	ops, err := readDoc(cc.In, args[0], cfg.parseOpts(args[0])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	call, err := batchCall(ops)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return runCall(cfg.MainConfig, cc, applyFlags{cfg.Write, cfg.Diff, cfg.Patch}, args[1], call)
}

// batchCall makes a CVBatchEditor call from a list of edits or an object
// holding them under "operations".
func batchCall(ops *ir.Node) (*tool.Call, error) {
	switch ops.Type {
	case ir.ArrayType:
		ops = ir.FromKeyVals([]ir.KeyVal{{Key: "operations", Val: ops}})
	case ir.ObjectType:
		if ir.Get(ops, "operations") == nil {
			return nil, fmt.Errorf("%w: no operations", cli.ErrUsage)
		}
	default:
		return nil, fmt.Errorf("%w: operations must be a list or an object, got %s", cli.ErrUsage, ops.Type)
	}
	d, err := ops.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return &tool.Call{Name: tool.CVBatchEditor, Params: d}, nil
}

func callCmd(cfg *CallConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Call.Parse(cc, args)
	if err != nil {
		cfg.Call.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: call requires a call file and a file, got %v", cli.ErrUsage, args)
	}
	node, err := readDoc(cc.In, args[0], cfg.parseOpts(args[0])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	call, err := decodeCall(node)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return runCall(cfg.MainConfig, cc, applyFlags{cfg.Write, cfg.Diff, cfg.Patch}, args[1], call)
}

func decodeCall(node *ir.Node) (*tool.Call, error) {
	d, err := node.MarshalJSON()
	if err != nil {
		return nil, err
	}
	call := &tool.Call{}
	if err := json.Unmarshal(d, call); err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return call, nil
}

func runCall(cfg *MainConfig, cc *cli.Context, af applyFlags, file string, call *tool.Call) error {
	if af.write && file == "-" {
		return fmt.Errorf("%w: -w needs a file", cli.ErrUsage)
	}
	doc, err := readDoc(cc.In, file, cfg.parseOpts(file)...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	res, err := apply(cfg, cc.Out, af, doc, call)
	if err != nil {
		return err
	}
	if af.write && res.changed {
		if err := writeDoc(file, doc, cfg.inFormat(file)); err != nil {
			return fmt.Errorf("error writing %s: %w", file, err)
		}
	}
	if !res.OK() {
		return cli.ExitCodeErr(1)
	}
	return nil
}

type applied struct {
	*tool.Result
	changed bool
}

// apply dispatches call against doc, which is edited in place, and prints
// the result followed by the diff and merge patch asked for.
func apply(cfg *MainConfig, w io.Writer, af applyFlags, doc *ir.Node, call *tool.Call) (*applied, error) {
	before := doc.Clone()
	res := &applied{Result: cfg.dispatcher().Dispatch(doc, call)}
	res.changed = !ir.Equal(before, doc)
	if err := writeValue(cfg, w, res.Result); err != nil {
		return nil, fmt.Errorf("error encoding result: %w", err)
	}
	if af.diff {
		lines, err := libdiff.Lines(before, doc)
		if err != nil {
			return nil, fmt.Errorf("error diffing: %w", err)
		}
		if err := libdiff.Write(w, lines, libdiff.WithColors(cfg.colors(w)), libdiff.WithContext(3)); err != nil {
			return nil, err
		}
	}
	if af.patch {
		p, err := libdiff.MergePatch(before, doc)
		if err != nil {
			return nil, err
		}
		if err := encodeNode(cfg, w, p); err != nil {
			return nil, fmt.Errorf("error encoding patch: %w", err)
		}
	}
	return res, nil
}
