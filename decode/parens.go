package decode

import (
	"fmt"

	"github.com/signadot/ruut/debug"
	"github.com/signadot/ruut/token"
	"github.com/signadot/ruut/tree"
)

// Parens decodes the parenthesis notation.
func Parens(src string) (*tree.Node, error) {
	toks := token.Tokenize(src)
	if debug.Tokens() {
		token.PrintTokens(debug.Out, toks, "parens")
	}
	return ParseTokens(toks)
}

// ParseTokens builds the tree described by toks.
//
// A ')' at the top level ends parsing; tokens after it are ignored.
func ParseTokens(toks []token.Token) (*tree.Node, error) {
	if len(toks) == 0 {
		return nil, tree.ErrEmptyInput
	}
	i := 0
	nodes, err := parseLevel(toks, &i)
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 0:
		return nil, tree.ErrEmptyInput
	case 1:
		if debug.Decode() {
			debug.Logf("parens: decoded %v\n", nodes[0])
		}
		return nodes[0], nil
	default:
		return nil, tree.ErrMultipleRoots
	}
}

// parseLevel consumes tokens up to and including the ')' closing the
// current level, or to the end, and returns the siblings found.
func parseLevel(toks []token.Token, pi *int) ([]*tree.Node, error) {
	var nodes []*tree.Node
	cur := -1
	for *pi < len(toks) {
		t := &toks[*pi]
		*pi++
		switch t.Type {
		case token.TName:
			nodes = append(nodes, tree.New(t.Name))
			cur = len(nodes) - 1
		case token.TOpen:
			if cur < 0 {
				return nil, fmt.Errorf("%w: '(' %s", tree.ErrMissingName, t.Pos)
			}
			children, err := parseLevel(toks, pi)
			if err != nil {
				return nil, err
			}
			nodes[cur].Children = append(nodes[cur].Children, children...)
		case token.TClose:
			return nodes, nil
		case token.TSep:
		}
	}
	return nodes, nil
}
