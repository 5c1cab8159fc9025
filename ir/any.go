package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// FromAny converts a Go value of the shape produced by encoding/json (maps,
// slices, strings, numbers, bools, nil) into a Node.  Maps produce objects
// with sorted keys.  Other values are round tripped through encoding/json.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case []*Node:
		return FromSlice(x), nil
	case map[string]*Node:
		return FromMap(x), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		if x > 1<<63-1 {
			return FromFloat(float64(x)), nil
		}
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		return FromNumber(string(x)), nil
	case []any:
		res := EmptyArray()
		for i, elt := range x {
			y, err := FromAny(elt)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			res.Append(y)
		}
		return res, nil
	case map[string]any:
		res := EmptyObject()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			y, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			res.Set(k, y)
		}
		return res, nil
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %T: %w", ErrUnsupported, v, err)
	}
	return FromJSON(d)
}

// ToAny converts a Node into plain Go values: map[string]any, []any,
// string, int, float64, bool and nil.
func ToAny(node *Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return node.Number
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}
