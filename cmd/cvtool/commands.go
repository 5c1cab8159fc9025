package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}, &cli.Opt{
			Name:        "aliases",
			Description: "yaml file of path aliases added to the defaults",
			Type:        cli.NamedFuncOpt(cfg.aliasesOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "cvtool").
		WithSynopsis("cvtool [opts] command [opts]").
		WithDescription("cvtool reads and edits resume documents with the tools given to resume agents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cvMain(cfg, cc, args)
		}).
		WithSubs(
			ReadCommand(cfg),
			EditCommand(cfg),
			BatchCommand(cfg),
			CallCommand(cfg),
			ToolsCommand(cfg),
			QueryCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			AliasesCommand(cfg))
}

func ReadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReadConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Read, "read").
		WithAliases("r").
		WithSynopsis("read [-p path] [file]").
		WithDescription("read a resume or the value at a path of it").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return read(cfg, cc, args)
		})
}

func EditCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Edit, "edit").
		WithAliases("e").
		WithSynopsis("edit -p path -a action [-v value] [-w] [-diff] [-patch] file").
		WithDescription(editDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return editCmd(cfg, cc, args)
		})
}

const editDescription = `edit makes one change to a resume.

Actions

  update  replace the value at the path, creating missing parent objects
  add     append the value to the array at the path
  delete  remove the value at the path; top-level fields are emptied

The value is given in yaml, so -v 3 is a number and -v '"3"' a string.
Adding to the experience section fills in missing record fields.

The result of the edit is printed.  With -w the document is written back to
its file in its own format.`

func BatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Batch, "batch").
		WithAliases("b").
		WithSynopsis("batch [-w] [-diff] [-patch] opsfile file").
		WithDescription("apply the edits in opsfile in order; opsfile holds a list of edits or an object with operations").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return batch(cfg, cc, args)
		})
}

func CallCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CallConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Call, "call").
		WithAliases("c").
		WithSynopsis("call [-w] [-diff] [-patch] callfile file").
		WithDescription("run a tool call {name, params} from callfile against a resume").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return callCmd(cfg, cc, args)
		})
}

func ToolsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ToolsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tools, "tools").
		WithSynopsis("tools [-n name]").
		WithDescription("print the tool definitions").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tools(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query [-t] <expr> [file]").
		WithDescription(queryDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
}

const queryDescription = `query evaluates an expression over a resume.

Top-level fields are variables and doc is the whole document, so

  len(experience)
  basic.name
  haspath("education[1].school")
  getpath("experience[0]").company

are all queries.  getpath and haspath take paths as the tools do, without
aliases.  With -t the exit code is 1 unless the result is true.`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: -1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [-r] [-paths|-patch] [-context n] a b").
		WithDescription("diff two resumes; the exit code is 1 when they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch [-w] patchfile file").
		WithDescription("apply a json merge patch, as printed by edit -patch or diff -patch, to a resume").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func AliasesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AliasesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Aliases, "aliases").
		WithSynopsis("aliases").
		WithDescription("print the path aliases in effect").
		WithRun(func(cc *cli.Context, args []string) error {
			return aliases(cfg, cc, args)
		})
}
