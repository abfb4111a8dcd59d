// Package template compiles name templates such as "{kind}: {id}" and fills
// them from a lookup of placeholder names.
package template

import (
	"strings"

	"github.com/signadot/ruut/debug"
	"github.com/signadot/ruut/tree"
)

const (
	BraceOpen  = '{'
	BraceClose = '}'
)

var (
	ErrNestedBrace  = tree.NewFormatError(`template placeholder cannot contain "{"`)
	ErrMissingClose = tree.NewFormatError(`template placeholder missing closing "}"`)
)

// Template is a compiled template. There is always one more fragment than
// there are placeholder names; fragments may be empty.
type Template struct {
	fragments []string
	names     []string
}

func Compile(s string) (*Template, error) {
	t := &Template{}
	var (
		cur           strings.Builder
		inPlaceholder bool
	)
	for _, c := range s {
		switch c {
		case BraceOpen:
			if inPlaceholder {
				return nil, ErrNestedBrace
			}
			t.fragments = append(t.fragments, cur.String())
			cur.Reset()
			inPlaceholder = true
		case BraceClose:
			// a '}' outside a placeholder is dropped
			if inPlaceholder {
				t.names = append(t.names, cur.String())
				cur.Reset()
				inPlaceholder = false
			}
		default:
			cur.WriteRune(c)
		}
	}
	if inPlaceholder {
		return nil, ErrMissingClose
	}
	t.fragments = append(t.fragments, cur.String())
	if debug.Template() {
		debug.Logf("template %q: fragments %q names %q\n", s, t.fragments, t.names)
	}
	return t, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(s string) *Template {
	t, err := Compile(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Template) Fragments() []string {
	return t.fragments
}

// Names returns the placeholder names in order of appearance, including
// duplicates.
func (t *Template) Names() []string {
	return t.names
}

// Fill resolves every placeholder with lookup and concatenates the result.
// The first lookup error is returned as is.
func (t *Template) Fill(lookup func(name string) (string, error)) (string, error) {
	vals := make([]string, len(t.names))
	for i, name := range t.names {
		v, err := lookup(name)
		if err != nil {
			return "", err
		}
		vals[i] = v
	}
	var b strings.Builder
	for i, frag := range t.fragments {
		b.WriteString(frag)
		if i < len(vals) {
			b.WriteString(vals[i])
		}
	}
	return b.String(), nil
}

// String gives back a template text which compiles to t.
func (t *Template) String() string {
	var b strings.Builder
	for i, frag := range t.fragments {
		b.WriteString(frag)
		if i < len(t.names) {
			b.WriteRune(BraceOpen)
			b.WriteString(t.names[i])
			b.WriteRune(BraceClose)
		}
	}
	return b.String()
}
