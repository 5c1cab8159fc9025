package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/cvtool/encode"
	"github.com/signadot/cvtool/format"
	"github.com/signadot/cvtool/parse"
	"github.com/signadot/cvtool/tool"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Indent  int  `cli:"name=indent desc='indentation width of json and yaml output'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	// AliasTable is the defaults merged with any -aliases file.
	AliasTable tool.Aliases

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat is the format of the document at path.  Flags win, then the
// file suffix, and yaml otherwise.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	switch {
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	if f, ok := format.FromPath(path); ok {
		return f
	}
	return format.YAMLFormat
}

func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFormat(cfg.inFormat(path))}
}

func (cfg *MainConfig) outFormat() format.Format {
	var fmt format.Format
	switch {
	case cfg.Y:
		fmt = format.YAMLFormat
	case cfg.J:
		fmt = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmt = *cfg.OutFormat
	}
	return fmt
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colors reports whether output to w is colored: -color decides when
// given, otherwise colors are used on terminals.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if optSet(cfg.Main, "color") {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) dispatcher() *tool.Dispatcher {
	if cfg.AliasTable == nil {
		return tool.New()
	}
	return tool.New(tool.WithAliases(cfg.AliasTable))
}

// optSet reports whether the option name was given to cmd.
func optSet(cmd *cli.Command, name string) bool {
	if cmd == nil {
		return false
	}
	for _, opt := range cmd.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

type ReadConfig struct {
	*MainConfig

	Path string `cli:"name=p aliases=path desc='path to read, the whole document when empty'"`
	Data bool   `cli:"name=d aliases=data desc='print only the data of the result'"`

	Read *cli.Command
}

type EditConfig struct {
	*MainConfig

	Path   string `cli:"name=p aliases=path desc='path to edit'"`
	Action string `cli:"name=a aliases=action desc='update, add or delete'"`
	Value  string `cli:"name=v aliases=value desc='the value, in yaml'"`

	Write bool `cli:"name=w desc='write the edited document back to its file'"`
	Diff  bool `cli:"name=diff desc='show a line diff of the document'"`
	Patch bool `cli:"name=patch desc='show the json merge patch of the edit'"`

	Edit *cli.Command
}

type BatchConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write the edited document back to its file'"`
	Diff  bool `cli:"name=diff desc='show a line diff of the document'"`
	Patch bool `cli:"name=patch desc='show the json merge patch of the edit'"`

	Batch *cli.Command
}

type CallConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write the edited document back to its file'"`
	Diff  bool `cli:"name=diff desc='show a line diff of the document'"`
	Patch bool `cli:"name=patch desc='show the json merge patch of the edit'"`

	Call *cli.Command
}

type ToolsConfig struct {
	*MainConfig

	Name string `cli:"name=n aliases=name desc='show only the named tool'"`

	Tools *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Test bool `cli:"name=t aliases=test desc='exit 1 unless the expression is true'"`

	Query *cli.Command
}

type AliasesConfig struct {
	*MainConfig

	Aliases *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Paths   bool `cli:"name=paths desc='list the paths that differ with their new values'"`
	Patch   bool `cli:"name=patch desc='show the json merge patch instead of lines'"`
	Context int  `cli:"name=context desc='unchanged lines shown around changes, all when negative'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='write the patched document back to its file'"`

	Patch *cli.Command
}
