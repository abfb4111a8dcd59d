package encode

import (
	"io"
	"strings"

	"github.com/signadot/ruut/tree"
)

const (
	Branch     = "├── "
	LastBranch = "└── "
	Pipe       = "│   "
	Space      = "    "
)

type EncState struct {
	depth int

	Color func(ColorAttr, string) string
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

// Lines renders node depth first, one line per node.
func Lines(node *tree.Node) []string {
	return lines(node, &EncState{})
}

// String renders node with lines joined by newlines, without a trailing
// newline.
func String(node *tree.Node, opts ...EncodeOption) string {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return strings.Join(lines(node, es), "\n")
}

// Encode writes the rendering of node followed by a newline to w.
func Encode(node *tree.Node, w io.Writer, opts ...EncodeOption) error {
	s := String(node, opts...)
	return writeString(w, s+"\n")
}

func lines(node *tree.Node, es *EncState) []string {
	attr := NameColor
	if node.IsLeaf() {
		attr = LeafColor
	}
	if es.depth == 0 {
		attr = RootColor
	}
	res := []string{es.color(attr, node.Name)}
	n := len(node.Children)
	if n == 0 {
		return res
	}
	es.depth++
	defer func() { es.depth-- }()
	for i, child := range node.Children {
		first, rest := Branch, Pipe
		if i == n-1 {
			first, rest = LastBranch, Space
		}
		first = es.color(ConnectorColor, first)
		rest = es.color(ConnectorColor, rest)
		for j, ln := range lines(child, es) {
			if j == 0 {
				res = append(res, first+ln)
				continue
			}
			res = append(res, rest+ln)
		}
	}
	return res
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
