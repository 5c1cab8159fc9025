package libdiff

import (
	"bytes"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/cvtool/encode"
	"github.com/signadot/cvtool/ir"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) Prefix() string {
	switch o {
	case Insert:
		return "+ "
	case Delete:
		return "- "
	}
	return "  "
}

type Line struct {
	Op   Op
	Text string
}

// Lines diffs the indented JSON renderings of from and to line by line.
func Lines(from, to *ir.Node) ([]Line, error) {
	a, err := render(from)
	if err != nil {
		return nil, err
	}
	b, err := render(to)
	if err != nil {
		return nil, err
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(ln, "\n")})
		}
	}
	return res, nil
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for _, ln := range lines {
		if ln.Op != Equal {
			return true
		}
	}
	return false
}

type WriteOption func(*writeOpts)

type writeOpts struct {
	colors  bool
	context int
}

// WithColors colors inserted and deleted lines.
func WithColors(v bool) WriteOption {
	return func(o *writeOpts) { o.colors = v }
}

// WithContext limits unchanged lines to n around each change.  A negative
// n shows all lines, which is the default.
func WithContext(n int) WriteOption {
	return func(o *writeOpts) { o.context = n }
}

// Write prints lines to w, one per line, prefixed by "+ ", "- " or "  ".
func Write(w io.Writer, lines []Line, opts ...WriteOption) error {
	wo := &writeOpts{context: -1}
	for _, o := range opts {
		o(wo)
	}
	show := visible(lines, wo.context)
	ins := color.New(color.FgGreen).SprintFunc()
	del := color.New(color.FgRed).SprintFunc()
	buf := bytes.NewBuffer(nil)
	skipped := false
	for i, ln := range lines {
		if !show[i] {
			skipped = true
			continue
		}
		if skipped {
			buf.WriteString("  ...\n")
			skipped = false
		}
		s := ln.Op.Prefix() + ln.Text
		if wo.colors {
			switch ln.Op {
			case Insert:
				s = ins(s)
			case Delete:
				s = del(s)
			}
		}
		buf.WriteString(s)
		buf.WriteByte('\n')
	}
	if skipped {
		buf.WriteString("  ...\n")
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func visible(lines []Line, context int) []bool {
	show := make([]bool, len(lines))
	for i, ln := range lines {
		if context < 0 || ln.Op != Equal {
			show[i] = true
			continue
		}
	}
	if context < 0 {
		return show
	}
	for i, ln := range lines {
		if ln.Op == Equal {
			continue
		}
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			show[j] = true
		}
	}
	return show
}

func render(n *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
