package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/cvtool/ir"
	"github.com/signadot/cvtool/tool"
)

func aliases(cfg *AliasesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Aliases.Parse(cc, args)
	if err != nil {
		cfg.Aliases.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: aliases takes no arguments, got %v", cli.ErrUsage, args)
	}
	return encodeNode(cfg.MainConfig, cc.Out, aliasTable(cfg.dispatcher().Aliases()))
}

func aliasTable(a tool.Aliases) *ir.Node {
	names := a.Names()
	kvs := make([]ir.KeyVal, len(names))
	for i, name := range names {
		kvs[i] = ir.KeyVal{Key: name, Val: ir.FromString(a[name])}
	}
	return ir.FromKeyVals(kvs)
}
