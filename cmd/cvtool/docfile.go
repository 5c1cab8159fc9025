package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/cvtool/encode"
	"github.com/signadot/cvtool/format"
	"github.com/signadot/cvtool/ir"
	"github.com/signadot/cvtool/parse"
)

// readDoc reads and decodes the document at path, "-" being r.
func readDoc(r io.Reader, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, opts...)
}

// writeDoc replaces the file at path with doc encoded in f.
func writeDoc(path string, doc *ir.Node, f format.Format) error {
	buf := &bytes.Buffer{}
	if err := encode.Encode(doc, buf, encode.EncodeFormat(f)); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), info.Mode().Perm())
}

// writeValue encodes any json marshallable value to w.
func writeValue(cfg *MainConfig, w io.Writer, v any) error {
	d, err := json.Marshal(v)
	if err != nil {
		return err
	}
	node, err := ir.FromJSON(d)
	if err != nil {
		return err
	}
	return encodeNode(cfg, w, node)
}

func encodeNode(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	return encode.Encode(node, w, cfg.encOpts(w)...)
}
