package decode

import (
	"strings"

	"github.com/signadot/ruut/debug"
	"github.com/signadot/ruut/ir"
	"github.com/signadot/ruut/parse"
	"github.com/signadot/ruut/tree"
)

// JSON decodes a JSON document whose root is an object with exactly one
// key.
func JSON(src string) (*tree.Node, error) {
	return keyed(src, parse.ParseJSON())
}

// YAML is like JSON for a YAML document.
func YAML(src string) (*tree.Node, error) {
	return keyed(src, parse.ParseYAML())
}

func keyed(src string, opts ...parse.ParseOption) (*tree.Node, error) {
	doc, err := parseDoc(src, opts...)
	if err != nil {
		return nil, err
	}
	if doc.Type != ir.ObjectType {
		return nil, tree.NewFormatError("root item must be an object")
	}
	switch len(doc.Fields) {
	case 0:
		return nil, tree.ErrEmptyInput
	case 1:
	default:
		return nil, tree.ErrMultipleRoots
	}
	res := keyedNode(doc.Fields[0], doc.Values[0])
	if debug.Decode() {
		debug.Logf("keyed: decoded %v\n", res)
	}
	return res, nil
}

func keyedNode(name string, v *ir.Node) *tree.Node {
	res := tree.New(name)
	if v.Type != ir.ObjectType {
		return res
	}
	res.Children = make([]*tree.Node, len(v.Fields))
	for i, f := range v.Fields {
		res.Children[i] = keyedNode(f, v.Values[i])
	}
	return res
}

// parseDoc rejects blank input before parsing and reports parse failures
// as format errors.
func parseDoc(src string, opts ...parse.ParseOption) (*ir.Node, error) {
	if strings.TrimSpace(src) == "" {
		return nil, tree.ErrEmptyInput
	}
	doc, err := parse.Parse([]byte(src), opts...)
	if err != nil {
		return nil, tree.WrapFormatError(err)
	}
	if debug.Decode() {
		debug.LogAny(doc)
	}
	return doc, nil
}
