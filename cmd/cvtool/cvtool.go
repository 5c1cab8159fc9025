package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/cvtool/tool"
)

func cvMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) aliasesOpt(_ *cli.Context, a string) (any, error) {
	d, err := os.ReadFile(a)
	if err != nil {
		return nil, err
	}
	extra, err := loadAliases(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", a, err)
	}
	cfg.AliasTable = tool.DefaultAliases().Merge(extra)
	return nil, nil
}

// loadAliases decodes a yaml object of alias to canonical field name.
func loadAliases(d []byte) (tool.Aliases, error) {
	a := tool.Aliases{}
	if err := yaml.Unmarshal(d, &a); err != nil {
		return nil, err
	}
	for k, v := range a {
		if k == "" || v == "" {
			return nil, fmt.Errorf("%w: empty alias %q: %q", cli.ErrUsage, k, v)
		}
	}
	return a, nil
}
