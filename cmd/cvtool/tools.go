package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cvtool/tool"
)

func tools(cfg *ToolsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tools.Parse(cc, args)
	if err != nil {
		cfg.Tools.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: tools takes no arguments, got %v", cli.ErrUsage, args)
	}
	if cfg.Name == "" {
		return writeValue(cfg.MainConfig, cc.Out, tool.Definitions())
	}
	def, ok := tool.Lookup(tool.Name(cfg.Name))
	if !ok {
		return fmt.Errorf("%w: no tool %q, have %v", cli.ErrUsage, cfg.Name, tool.Names())
	}
	return writeValue(cfg.MainConfig, cc.Out, def)
}
