package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cvtool/eval"
	"github.com/signadot/cvtool/ir"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	file := "-"
	switch len(args) {
	case 1:
	case 2:
		file = args[1]
	default:
		return fmt.Errorf("%w: query requires an expression and at most one file, got %v", cli.ErrUsage, args)
	}
	doc, err := readDoc(cc.In, file, cfg.parseOpts(file)...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	if cfg.Test {
		ok, err := eval.Truth(doc, args[0])
		if err != nil {
			return err
		}
		if err := encodeNode(cfg.MainConfig, cc.Out, ir.FromBool(ok)); err != nil {
			return err
		}
		if !ok {
			return cli.ExitCodeErr(1)
		}
		return nil
	}
	res, err := eval.Query(doc, args[0])
	if err != nil {
		return err
	}
	return encodeNode(cfg.MainConfig, cc.Out, res)
}
