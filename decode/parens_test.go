package decode

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/ruut/encode"
	"github.com/signadot/ruut/token"
	"github.com/signadot/ruut/tree"
)

type decodeTest struct {
	in  string
	out *tree.Node
	err error
}

func TestParens(t *testing.T) {
	dts := []decodeTest{
		{
			in:  "solo",
			out: tree.New("solo"),
		},
		{
			in: "papa(bebe(gege), fefe)",
			out: tree.New("papa",
				tree.New("bebe", tree.New("gege")),
				tree.New("fefe")),
		},
		{
			in: "root(a(grandchild),b)",
			out: tree.New("root",
				tree.New("a", tree.New("grandchild")),
				tree.New("b")),
		},
		{
			in:  "cool beans ( with spaces , inside names )",
			out: tree.New("cool beans", tree.New("with spaces"), tree.New("inside names")),
		},
		{
			in:  "a(b)(c)",
			out: tree.New("a", tree.New("b"), tree.New("c")),
		},
		{
			in:  "a()",
			out: tree.New("a"),
		},
		{
			in:  "a(b,,c,)",
			out: tree.New("a", tree.New("b"), tree.New("c")),
		},
		{
			in:  "a(b(c",
			out: tree.New("a", tree.New("b", tree.New("c"))),
		},
		{
			in:  "a) ignored(x)",
			out: tree.New("a"),
		},
		{
			in:  "",
			err: tree.ErrEmptyInput,
		},
		{
			in:  "  \n ",
			err: tree.ErrEmptyInput,
		},
		{
			in:  ",,",
			err: tree.ErrEmptyInput,
		},
		{
			in:  ")",
			err: tree.ErrEmptyInput,
		},
		{
			in:  "(a)",
			err: tree.ErrMissingName,
		},
		{
			in:  "a((c))",
			err: tree.ErrMissingName,
		},
		{
			in:  "a(b, (c))",
			out: tree.New("a", tree.New("b", tree.New("c"))),
		},
		{
			in:  "papa(bebe) popo(bubu)",
			err: tree.ErrMultipleRoots,
		},
		{
			in:  "a, b",
			err: tree.ErrMultipleRoots,
		},
	}
	for _, dt := range dts {
		got, err := Parens(dt.in)
		if dt.err != nil {
			if !errors.Is(err, dt.err) {
				t.Errorf("Parens(%q): got err %v want %v", dt.in, err, dt.err)
			}
			if got != nil {
				t.Errorf("Parens(%q): partial result %v", dt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parens(%q): %v", dt.in, err)
			continue
		}
		if diff := cmp.Diff(dt.out, got); diff != "" {
			t.Errorf("Parens(%q) (-want +got):\n%s", dt.in, diff)
		}
	}
}

func TestParseTokensEmpty(t *testing.T) {
	if _, err := ParseTokens(nil); !errors.Is(err, tree.ErrEmptyInput) {
		t.Errorf("got %v", err)
	}
}

func TestParseTokensMultipleRoots(t *testing.T) {
	toks := []token.Token{
		{Type: token.TName, Name: "papa"},
		{Type: token.TOpen},
		{Type: token.TName, Name: "bebe"},
		{Type: token.TClose},
		{Type: token.TName, Name: "popo"},
		{Type: token.TOpen},
		{Type: token.TName, Name: "bubu"},
		{Type: token.TClose},
	}
	if _, err := ParseTokens(toks); !errors.Is(err, tree.ErrMultipleRoots) {
		t.Errorf("got %v", err)
	}
}

func TestParensWhitespaceInsensitive(t *testing.T) {
	pairs := [][2]string{
		{"root(a(grandchild),b)", "  root (\n  a ( grandchild ) ,\n  b\n)\n"},
		{"x(y,z(w))", "x\t(y ,z(   w ))"},
	}
	for _, p := range pairs {
		a, err := Parens(p[0])
		if err != nil {
			t.Fatal(err)
		}
		b, err := Parens(p[1])
		if err != nil {
			t.Fatal(err)
		}
		if encode.MustString(a) != encode.MustString(b) {
			t.Errorf("%q and %q render differently:\n%s\n---\n%s",
				p[0], p[1], encode.MustString(a), encode.MustString(b))
		}
	}
}
