package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cvtool/edit"
	"github.com/signadot/cvtool/encode"
	"github.com/signadot/cvtool/ir"
	"github.com/signadot/cvtool/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := readDoc(cc.In, args[0], cfg.parseOpts(args[0])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	to, err := readDoc(cc.In, args[1], cfg.parseOpts(args[1])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffDocs(cfg, cc.Out, from, to)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffDocs writes the difference between from and to and reports whether
// there is one.
func diffDocs(cfg *DiffConfig, w io.Writer, from, to *ir.Node) (bool, error) {
	if cfg.Reverse {
		from, to = to, from
	}
	switch {
	case cfg.Paths:
		paths := libdiff.Paths(from, to)
		for _, p := range paths {
			v, err := edit.Lookup(to, p.String())
			if err != nil || v == nil {
				fmt.Fprintf(w, "%s removed\n", p)
				continue
			}
			fmt.Fprintf(w, "%s = %s\n", p, encode.MustString(v))
		}
		return len(paths) != 0, nil
	case cfg.Patch:
		p, err := libdiff.MergePatch(from, to)
		if err != nil {
			return false, err
		}
		if err := encodeNode(cfg.MainConfig, w, p); err != nil {
			return false, fmt.Errorf("error encoding patch: %w", err)
		}
		return !ir.Equal(from, to), nil
	}
	lines, err := libdiff.Lines(from, to)
	if err != nil {
		return false, err
	}
	if err := libdiff.Write(w, lines, libdiff.WithColors(cfg.colors(w)), libdiff.WithContext(cfg.Context)); err != nil {
		return false, err
	}
	return libdiff.Changed(lines), nil
}
