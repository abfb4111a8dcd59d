package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/ruut"
	"github.com/signadot/ruut/debug"
	"github.com/signadot/ruut/encode"
	"github.com/signadot/ruut/tree"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

var stderr io.Writer = os.Stderr

func ruutMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Debug {
		debug.Enable()
	}
	if len(args) > 0 {
		if sub := cfg.Main.FindSub(cc, args[0]); sub != nil {
			err = sub.Run(cc, args[1:])
			if errors.Is(err, cli.ErrUsage) {
				sub.Usage(cc, err)
				os.Exit(sub.Exit(cc, err))
			}
			return err
		}
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: expected at most one tree, got %d args", cli.ErrUsage, len(args))
	}
	if err := cfg.check(); err != nil {
		return err
	}
	in, ok, err := readInput(args, cc.In)
	if err != nil {
		return err
	}
	if !ok {
		return cli.ExitCodeErr(report(stderr, errNoInput))
	}
	root, err := cfg.run(cc.Out, in)
	if err != nil {
		if errors.Is(err, errOutput) {
			return err
		}
		return cli.ExitCodeErr(report(stderr, err))
	}
	if cfg.Verbose {
		leaves := 0
		root.Visit(func(n *tree.Node, _ int) error {
			if n.IsLeaf() {
				leaves++
			}
			return nil
		})
		newLogger(stderr).Info("rendered", "format", cfg.Format, "bytes", len(in), "nodes", root.Size(), "leaves", leaves, "depth", root.Depth())
	}
	return nil
}

// readInput gives the tree text from the first argument, or from in when
// in is not a terminal. ok is false when neither has anything.
func readInput(args []string, in io.Reader) (string, bool, error) {
	if len(args) > 0 {
		return args[0], true, nil
	}
	if in == nil {
		return "", false, nil
	}
	if f, isFile := in.(*os.File); isFile {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return "", false, nil
		}
	}
	d, err := io.ReadAll(in)
	if err != nil {
		return "", false, fmt.Errorf("error reading stdin: %w", err)
	}
	if len(d) == 0 {
		return "", false, nil
	}
	return string(d), true, nil
}

var errOutput = errors.New("output error")

// run renders in and only then opens the -o file, so a decode error leaves
// any existing file untouched.
func (cfg *MainConfig) run(stdout io.Writer, in string) (*tree.Node, error) {
	root, err := ruut.Decode(in, cfg.options()...)
	if err != nil {
		return nil, err
	}
	w, err := cfg.output(stdout)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errOutput, err)
	}
	if err := encode.Encode(root, w, cfg.encOpts(w)...); err != nil {
		return nil, fmt.Errorf("%w: %w", errOutput, err)
	}
	return root, nil
}

// check rejects options which the selected format ignores.
func (cfg *MainConfig) check() error {
	if cfg.Format.IsTemplate() {
		return nil
	}
	if cfg.Template != "" || cfg.Default != nil {
		return fmt.Errorf("%w: -t and -d apply only to jsonprop and yamlprop, not %s", cli.ErrUsage, cfg.Format)
	}
	return nil
}

func (cfg *MainConfig) output(stdout io.Writer) (io.Writer, error) {
	if cfg.Out == "" || cfg.Out == "-" {
		return stdout, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	cfg.CloseOut = f.Close
	return f, nil
}

func (cfg *MainConfig) outOpt(_ *cli.Context, a string) (any, error) {
	cfg.Out = a
	return nil, nil
}
