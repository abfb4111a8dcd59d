package main

import (
	"github.com/signadot/ruut/decode"

	"github.com/scott-cotton/cli"
)

const mainDescription = `ruut renders a tree described in text as a box-drawing diagram.

The tree is read from the first argument or, when stdin is not a terminal,
from stdin. For example

  $ ruut 'root(a(grandchild), b)'
  root
  ├── a
  │   └── grandchild
  └── b

Formats:
  parens (lisp, p)        name(child, child(grandchild))
  json (j)                {"root": {"child": null}}
  jsonprop (jt)           {"name": "root", "children": [{"name": "child"}]}
  yaml (y)                like json, in yaml
  yamlprop (yt)           like jsonprop, in yaml

For jsonprop and yamlprop, -t gives a template such as '{kind}: {id}' which
names each object from its properties; without -t the name is the string
property given by -n, "name" by default. Children are read from the property given by -c, either
an array or an object whose values are the children.

Exit status is 64 when there is no input and 65 when the input is invalid.`

func MainCommand() *cli.Command {
	cfg := &MainConfig{
		NameKey:     decode.DefaultNameKey,
		ChildrenKey: decode.DefaultChildrenKey,
	}
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
			Name:        "f",
			Aliases:     []string{"format"},
			Description: "input format: parens/lisp/p, json/j, jsonprop/jt, yaml/y, yamlprop/yt",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(), "(format)"),
		},
		&cli.Opt{
			Name:        "d",
			Aliases:     []string{"default"},
			Description: "value used for missing properties (jsonprop/yamlprop)",
			Type:        cli.NamedFuncOpt(cfg.defaultFunc(), "(value)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "ruut").
		WithSynopsis("ruut [opts] [tree] | ruut [opts] diff [opts] a b").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ruutMain(cfg, cc, args)
		}).
		WithSubs(DiffCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-s] a b").
		WithDescription("diff the renderings of two trees, read from files ('-' is stdin) or given as strings with -s").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
