package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/cvtool/format"
	"github.com/signadot/cvtool/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		buf := bytes.NewBuffer(nil)
		if err := encodeJSON(node, buf, es); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err := w.Write(buf.Bytes())
		return err
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	}
	return fmt.Errorf("%w: %w: %s", ErrEncoding, format.ErrBadFormat, es.format)
}

func encodeJSON(node *ir.Node, buf *bytes.Buffer, es *EncState) error {
	if node == nil {
		buf.WriteString(applyValueColor(es, ir.NullType, "null"))
		return nil
	}
	switch node.Type {
	case ir.NullType:
		buf.WriteString(applyValueColor(es, node.Type, "null"))
	case ir.BoolType:
		buf.WriteString(applyValueColor(es, node.Type, strconv.FormatBool(node.Bool)))
	case ir.NumberType:
		if node.Float64 != nil && (math.IsNaN(*node.Float64) || math.IsInf(*node.Float64, 0)) {
			return fmt.Errorf("%w: %v is not representable in json", ErrEncoding, *node.Float64)
		}
		buf.WriteString(applyValueColor(es, node.Type, node.NumberString()))
	case ir.StringType:
		buf.WriteString(applyValueColor(es, node.Type, quote(node.String)))
	case ir.ArrayType:
		return encodeJSONList(node, buf, es, "[", "]", func(i int) error {
			return encodeJSON(node.Values[i], buf, es)
		})
	case ir.ObjectType:
		return encodeJSONList(node, buf, es, "{", "}", func(i int) error {
			buf.WriteString(applyColor(es, ir.ObjectType, FieldColor, quote(node.Fields[i].String)))
			buf.WriteString(applyColor(es, ir.ObjectType, SepColor, ":"))
			if !es.wire {
				buf.WriteByte(' ')
			}
			return encodeJSON(node.Values[i], buf, es)
		})
	default:
		return fmt.Errorf("%w: type %s", ErrEncoding, node.Type)
	}
	return nil
}

// encodeJSONList writes the delimiters and separators of an array or
// object, calling elt for each element.
func encodeJSONList(node *ir.Node, buf *bytes.Buffer, es *EncState, open, end string, elt func(int) error) error {
	buf.WriteString(applyColor(es, node.Type, SepColor, open))
	n := len(node.Values)
	if n == 0 {
		buf.WriteString(applyColor(es, node.Type, SepColor, end))
		return nil
	}
	es.depth++
	for i := range n {
		if i > 0 {
			buf.WriteString(applyColor(es, node.Type, SepColor, ","))
		}
		writeNL(buf, es)
		if err := elt(i); err != nil {
			return err
		}
	}
	es.depth--
	writeNL(buf, es)
	buf.WriteString(applyColor(es, node.Type, SepColor, end))
	return nil
}

func writeNL(buf *bytes.Buffer, es *EncState) {
	if es.wire {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", es.indent*es.depth))
}

func quote(s string) string {
	buf := bytes.NewBuffer(nil)
	ir.QuoteTo(buf, s)
	return buf.String()
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := toYAML(node)
	if err != nil {
		return err
	}
	yOpts := []yaml.EncodeOption{yaml.Indent(es.indent), yaml.IndentSequence(true)}
	if es.wire {
		yOpts = append(yOpts, yaml.Flow(true))
	}
	d, err := yaml.MarshalWithOptions(v, yOpts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if len(d) == 0 || d[len(d)-1] != '\n' {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

// toYAML converts node into values goccy/go-yaml encodes in order.
func toYAML(node *ir.Node) (any, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.StringType:
		return node.String, nil
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64, nil
		case node.Float64 != nil:
			return *node.Float64, nil
		}
		f, err := strconv.ParseFloat(node.Number, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: number %q: %w", ErrEncoding, node.Number, err)
		}
		return f, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			y, err := toYAML(elt)
			if err != nil {
				return nil, err
			}
			res[i] = y
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Values))
		for i, f := range node.Fields {
			y, err := toYAML(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: f.String, Value: y}
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: type %s", ErrEncoding, node.Type)
}

// Color application helpers

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func applyValueColor(es *EncState, nodeType ir.Type, v string) string {
	return applyColor(es, nodeType, ValueColor, v)
}
