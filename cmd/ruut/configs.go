package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/ruut"
	"github.com/signadot/ruut/decode"
	"github.com/signadot/ruut/encode"
	"github.com/signadot/ruut/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Template    string `cli:"name=t aliases=template desc='name template, e.g. {kind}: {id}'"`
	NameKey     string `cli:"name=n aliases=name desc='property naming each object when there is no template'"`
	ChildrenKey string `cli:"name=c aliases=children desc='property holding the children of each object'"`
	Color       bool   `cli:"name=color desc='render with color'"`
	Verbose     bool   `cli:"name=v aliases=verbose desc='log decoding details to stderr'"`
	Debug       bool   `cli:"name=debug desc='trace tokens, templates and trees to stderr'"`

	Format  format.Format
	Default *string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Format = f
		return f, nil
	})
}

func (cfg *MainConfig) defaultFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		cfg.Default = &v
		return v, nil
	})
}

func (cfg *MainConfig) templateConfig() decode.TemplateConfig {
	return decode.TemplateConfig{
		Template:    cfg.Template,
		NameKey:     cfg.NameKey,
		ChildrenKey: cfg.ChildrenKey,
		Default:     cfg.Default,
	}
}

func (cfg *MainConfig) options() []ruut.Option {
	return []ruut.Option{
		ruut.WithFormat(cfg.Format),
		ruut.WithTemplateConfig(cfg.templateConfig()),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.useColor(w) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

// useColor is true with -color, false with -color=false, and otherwise
// true when w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return false
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type DiffConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='consider args as trees rather than file paths'"`

	Diff *cli.Command
}
