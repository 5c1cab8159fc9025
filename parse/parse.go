package parse

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/signadot/cvtool/format"
	"github.com/signadot/cvtool/ir"
)

// Parse decodes d into a node.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.YAMLFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, ErrEmpty
	}
	var (
		res *ir.Node
		err error
	)
	switch pOpts.format {
	case format.JSONFormat:
		res, err = ir.FromJSON(d)
	case format.YAMLFormat:
		res, err = parseYAML(d)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, pOpts.format)
	}
	if err != nil {
		return nil, err
	}
	if pOpts.document && res.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: got %s", ErrNotObject, res.Type)
	}
	return res, nil
}

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return fromYAML(v)
}

// fromYAML converts a value decoded with yaml.UseOrderedMap.
func fromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := ir.EmptyObject()
		for _, item := range x {
			k, err := yamlKey(item.Key)
			if err != nil {
				return nil, err
			}
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(k, val)
		}
		return res, nil
	case []any:
		res := ir.EmptyArray()
		for _, e := range x {
			val, err := fromYAML(e)
			if err != nil {
				return nil, err
			}
			res.Append(val)
		}
		return res, nil
	}
	return ir.FromAny(v)
}

func yamlKey(k any) (string, error) {
	switch x := k.(type) {
	case string:
		return x, nil
	case nil:
		return "null", nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(x), nil
	}
	return "", fmt.Errorf("%w %T", ErrKey, k)
}
