package decode

import (
	"fmt"

	"github.com/signadot/ruut/debug"
	"github.com/signadot/ruut/ir"
	"github.com/signadot/ruut/parse"
	"github.com/signadot/ruut/template"
	"github.com/signadot/ruut/tree"
)

var (
	ErrMissingValue = tree.NewFormatError("missing template value")
	ErrRootShape    = tree.NewFormatError("root item must be a root object or an array containing a root object")
)

// JSONTemplate decodes a JSON object, or an array holding exactly one
// object, into a tree named by cfg.
//
// Child candidates which are not objects are dropped.
func JSONTemplate(src string, cfg TemplateConfig) (*tree.Node, error) {
	return templated(src, cfg, parse.ParseJSON())
}

// YAMLTemplate is like JSONTemplate for a YAML document.
func YAMLTemplate(src string, cfg TemplateConfig) (*tree.Node, error) {
	return templated(src, cfg, parse.ParseYAML())
}

func templated(src string, cfg TemplateConfig, opts ...parse.ParseOption) (*tree.Node, error) {
	doc, err := parseDoc(src, opts...)
	if err != nil {
		return nil, err
	}
	nm, err := newNamer(cfg)
	if err != nil {
		return nil, err
	}
	var root *ir.Node
	switch doc.Type {
	case ir.ArrayType:
		switch len(doc.Values) {
		case 0:
			return nil, tree.ErrEmptyInput
		case 1:
			root = doc.Values[0]
		default:
			return nil, tree.ErrMultipleRoots
		}
	case ir.ObjectType:
		root = doc
	default:
		return nil, ErrRootShape
	}
	res, err := templateNode(root, nm, cfg.ChildrenKey)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, tree.ErrEmptyInput
	}
	if debug.Decode() {
		debug.Logf("template: decoded %v\n", res)
	}
	return res, nil
}

// templateNode returns nil for anything but an object.
func templateNode(obj *ir.Node, nm *namer, childrenKey string) (*tree.Node, error) {
	if obj.Type != ir.ObjectType {
		return nil, nil
	}
	name, err := nm.name(obj)
	if err != nil {
		return nil, err
	}
	res := tree.New(name)
	kids := ir.Get(obj, childrenKey)
	if kids == nil {
		return res, nil
	}
	switch kids.Type {
	case ir.ObjectType, ir.ArrayType:
	default:
		return res, nil
	}
	for _, kid := range kids.Values {
		child, err := templateNode(kid, nm, childrenKey)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		res.Children = append(res.Children, child)
	}
	return res, nil
}

// namer builds node names, either from a compiled template or from a
// single name property.
type namer struct {
	tmpl    *template.Template
	nameKey string
	dflt    *string
}

func newNamer(cfg TemplateConfig) (*namer, error) {
	nm := &namer{nameKey: cfg.NameKey, dflt: cfg.Default}
	if cfg.byNameKey() {
		return nm, nil
	}
	tmpl, err := template.Compile(cfg.Template)
	if err != nil {
		return nil, err
	}
	nm.tmpl = tmpl
	return nm, nil
}

func (nm *namer) name(obj *ir.Node) (string, error) {
	if nm.tmpl != nil {
		return nm.tmpl.Fill(func(prop string) (string, error) {
			v := ir.Get(obj, prop)
			if v != nil {
				return stringify(v)
			}
			if nm.dflt != nil {
				return *nm.dflt, nil
			}
			if debug.Decode() {
				debug.Logf("template: no %q at %s\n", prop, obj.Path())
			}
			return "", ErrMissingValue
		})
	}
	v := ir.Get(obj, nm.nameKey)
	if v == nil {
		if nm.dflt != nil {
			return *nm.dflt, nil
		}
		return "", fmt.Errorf("%w %q at %s", tree.ErrMissingProp, nm.nameKey, obj.Path())
	}
	if v.Type != ir.StringType {
		return "", tree.FormatErrorf("non-string name property %q at %s", nm.nameKey, v.Path())
	}
	return v.String, nil
}

// stringify gives strings verbatim and anything else as compact JSON.
func stringify(v *ir.Node) (string, error) {
	if v.Type == ir.StringType {
		return v.String, nil
	}
	d, err := ir.ToJSON(v)
	if err != nil {
		return "", tree.WrapFormatError(err)
	}
	return string(d), nil
}
