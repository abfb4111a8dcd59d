package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/ruut"
	"github.com/signadot/ruut/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if err := cfg.check(); err != nil {
		return err
	}
	var renders [2]string
	for i, arg := range args {
		in, err := cfg.input(cc, arg)
		if err != nil {
			return err
		}
		out, err := ruut.Prettify(in, cfg.options()...)
		if err != nil {
			fmt.Fprintf(stderr, "%s: ", arg)
			return cli.ExitCodeErr(report(stderr, err))
		}
		renders[i] = out
	}
	if diffInputs(cc.Out, renders[0], renders[1], cfg.useColor(cc.Out)) {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func (cfg *DiffConfig) input(cc *cli.Context, arg string) (string, error) {
	if cfg.String {
		return arg, nil
	}
	var r io.Reader
	if arg == "-" {
		r = cc.In
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading %q: %w", arg, err)
	}
	return string(d), nil
}

// diffInputs writes the line diff of a and b to w when they differ and
// reports whether they do.
func diffInputs(w io.Writer, a, b string, useColor bool) bool {
	lines := libdiff.DiffLines(a, b)
	if !libdiff.Changed(lines) {
		return false
	}
	del, ins := fmt.Sprint, fmt.Sprint
	if useColor {
		del = color.New(color.FgRed).Sprint
		ins = color.New(color.FgGreen).Sprint
	}
	for _, ln := range lines {
		switch ln.Op {
		case libdiff.Delete:
			fmt.Fprintln(w, del(ln.String()))
		case libdiff.Insert:
			fmt.Fprintln(w, ins(ln.String()))
		default:
			fmt.Fprintln(w, ln.String())
		}
	}
	return true
}
