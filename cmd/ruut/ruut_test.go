package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/ruut/format"
	"github.com/signadot/ruut/tree"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

func TestDescribe(t *testing.T) {
	cases := []struct {
		err  error
		msg  string
		code int
	}{
		{
			err:  errNoInput,
			msg:  "no input -- structure must be passed as the first argument or via stdin",
			code: exitUsage,
		},
		{
			err:  tree.ErrEmptyInput,
			msg:  "empty input -- structure must be passed as the first argument or via stdin",
			code: exitUsage,
		},
		{
			err:  fmt.Errorf("%w: '(' 1:3", tree.ErrMissingName),
			msg:  "invalid input -- an item is missing a name",
			code: exitDataErr,
		},
		{
			err:  fmt.Errorf("%w %q at $", tree.ErrMissingProp, "name"),
			msg:  "invalid input -- an item is missing a property",
			code: exitDataErr,
		},
		{
			err:  tree.ErrMultipleRoots,
			msg:  "invalid input -- must only have one root in structure",
			code: exitDataErr,
		},
		{
			err:  tree.NewFormatError("root item must be an object"),
			msg:  "invalid input -- root item must be an object",
			code: exitDataErr,
		},
		{
			err:  errors.New("boom"),
			msg:  "invalid input -- boom",
			code: exitDataErr,
		},
	}
	for _, c := range cases {
		msg, code := describe(c.err)
		if msg != c.msg {
			t.Errorf("describe(%v) msg: got %q want %q", c.err, msg, c.msg)
		}
		if code != c.code {
			t.Errorf("describe(%v) code: got %d want %d", c.err, code, c.code)
		}
	}
}

func TestReport(t *testing.T) {
	buf := &bytes.Buffer{}
	code := report(buf, tree.ErrMultipleRoots)
	if code != exitDataErr {
		t.Errorf("got code %d", code)
	}
	want := "Error: invalid input -- must only have one root in structure\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestReadInput(t *testing.T) {
	in, ok, err := readInput([]string{"a(b)"}, strings.NewReader("ignored"))
	if err != nil || !ok || in != "a(b)" {
		t.Errorf("arg: got %q %v %v", in, ok, err)
	}
	in, ok, err = readInput(nil, strings.NewReader("a(b)\n"))
	if err != nil || !ok || in != "a(b)\n" {
		t.Errorf("stdin: got %q %v %v", in, ok, err)
	}
	_, ok, err = readInput(nil, strings.NewReader(""))
	if err != nil || ok {
		t.Errorf("empty stdin: got %v %v", ok, err)
	}
	_, ok, err = readInput(nil, nil)
	if err != nil || ok {
		t.Errorf("no stdin: got %v %v", ok, err)
	}
}

func TestRun(t *testing.T) {
	cases := []struct {
		cfg  *MainConfig
		in   string
		want string
	}{
		{
			cfg:  &MainConfig{},
			in:   "root(a(grandchild), b)",
			want: "root\n├── a\n│   └── grandchild\n└── b\n",
		},
		{
			cfg:  &MainConfig{Format: format.JSONFormat},
			in:   `{"root": {"a": null, "b": {"c": null}}}`,
			want: "root\n├── a\n└── b\n    └── c\n",
		},
		{
			cfg: &MainConfig{
				Format:      format.JSONTemplateFormat,
				Template:    "{kind}: {id}",
				ChildrenKey: "kids",
			},
			in:   `{"kind": "svc", "id": 1, "kids": [{"kind": "pod", "id": 2}]}`,
			want: "svc: 1\n└── pod: 2\n",
		},
		{
			cfg: &MainConfig{
				Format:      format.YAMLTemplateFormat,
				NameKey:     "name",
				ChildrenKey: "children",
			},
			in:   "name: top\nchildren:\n- name: leaf\n",
			want: "top\n└── leaf\n",
		},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		root, err := c.cfg.run(buf, c.in)
		if err != nil {
			t.Errorf("run(%q): %v", c.in, err)
			continue
		}
		if root == nil {
			t.Errorf("run(%q): nil root", c.in)
			continue
		}
		if diff := cmp.Diff(c.want, buf.String()); diff != "" {
			t.Errorf("run(%q) (-want +got):\n%s", c.in, diff)
		}
	}
}

func TestRunDefault(t *testing.T) {
	dflt := "?"
	cfg := &MainConfig{
		Format:      format.JSONTemplateFormat,
		Template:    "{name} ({size})",
		ChildrenKey: "children",
		Default:     &dflt,
	}
	buf := &bytes.Buffer{}
	if _, err := cfg.run(buf, `{"name": "a"}`); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "a (?)\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestRunError(t *testing.T) {
	buf := &bytes.Buffer{}
	_, err := (&MainConfig{}).run(buf, "a, b")
	if !errors.Is(err, tree.ErrMultipleRoots) {
		t.Errorf("got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %q on error", buf.String())
	}
}

func TestRunOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("previous\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := &MainConfig{Out: path}
	stdout := &bytes.Buffer{}
	if _, err := cfg.run(stdout, "(no name)"); !errors.Is(err, tree.ErrMissingName) {
		t.Fatalf("got %v", err)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "previous\n" {
		t.Errorf("decode error changed the output file to %q", d)
	}

	if _, err := cfg.run(stdout, "a(b)"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.CloseOut(); err != nil {
		t.Fatal(err)
	}
	d, err = os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(d), "a\n└── b\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if stdout.Len() != 0 {
		t.Errorf("wrote %q to stdout", stdout.String())
	}
}

func TestCheck(t *testing.T) {
	dflt := "x"
	cases := []struct {
		cfg *MainConfig
		ok  bool
	}{
		{cfg: &MainConfig{}, ok: true},
		{cfg: &MainConfig{Format: format.JSONTemplateFormat, Template: "{id}"}, ok: true},
		{cfg: &MainConfig{Format: format.YAMLTemplateFormat, Default: &dflt}, ok: true},
		{cfg: &MainConfig{Template: "{id}"}},
		{cfg: &MainConfig{Format: format.JSONFormat, Default: &dflt}},
	}
	for _, c := range cases {
		err := c.cfg.check()
		if c.ok && err != nil {
			t.Errorf("%+v: %v", c.cfg, err)
		}
		if !c.ok && !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%+v: got %v want usage error", c.cfg, err)
		}
	}
}

func TestDiffInputs(t *testing.T) {
	buf := &bytes.Buffer{}
	if diffInputs(buf, "a\n└── b", "a\n└── b", false) {
		t.Errorf("equal inputs reported as different")
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %q for equal inputs", buf.String())
	}
	if !diffInputs(buf, "a\n└── b", "a\n└── c", false) {
		t.Fatalf("different inputs reported as equal")
	}
	want := " a\n-└── b\n+└── c\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	newLogger(buf).Info("rendered", "nodes", 3)
	if got, want := buf.String(), "msg=rendered nodes=3\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
