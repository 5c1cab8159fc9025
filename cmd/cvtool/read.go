package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cvtool/tool"
)

func read(cfg *ReadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Read.Parse(cc, args)
	if err != nil {
		cfg.Read.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	file := "-"
	switch len(args) {
	case 0:
	case 1:
		file = args[0]
	default:
		return fmt.Errorf("%w: read takes at most one file, got %v", cli.ErrUsage, args)
	}
	doc, err := readDoc(cc.In, file, cfg.parseOpts(file)...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	call, err := tool.MarshalCall(tool.CVReader, &tool.ReadParams{Path: cfg.Path})
	if err != nil {
		return err
	}
	res := cfg.dispatcher().Dispatch(doc, call)
	if cfg.Data && res.OK() {
		err = writeValue(cfg.MainConfig, cc.Out, res.Data)
	} else {
		err = writeValue(cfg.MainConfig, cc.Out, res)
	}
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if !res.OK() {
		return cli.ExitCodeErr(1)
	}
	return nil
}
