package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cvtool/libdiff"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires a patch file and a file, got %v", cli.ErrUsage, args)
	}
	file := args[1]
	if cfg.Write && file == "-" {
		return fmt.Errorf("%w: -w needs a file", cli.ErrUsage)
	}
	p, err := readDoc(cc.In, args[0], cfg.parseOpts(args[0])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	doc, err := readDoc(cc.In, file, cfg.parseOpts(file)...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	res, err := libdiff.ApplyMergePatch(doc, p)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	if cfg.Write {
		return writeDoc(file, res, cfg.inFormat(file))
	}
	return encodeNode(cfg.MainConfig, cc.Out, res)
}
