package ruut

import (
	"fmt"

	"github.com/signadot/ruut/decode"
	"github.com/signadot/ruut/encode"
	"github.com/signadot/ruut/format"
	"github.com/signadot/ruut/tree"
)

// Prettify decodes raw in the selected format, parenthesis notation by
// default, and renders the tree. Lines are joined by "\n" with no trailing
// newline.
func Prettify(raw string, options ...Option) (string, error) {
	o := newOpts(options)
	root, err := decodeWith(raw, o)
	if err != nil {
		return "", err
	}
	return encode.String(root), nil
}

// Decode decodes raw without rendering it.
func Decode(raw string, options ...Option) (*tree.Node, error) {
	return decodeWith(raw, newOpts(options))
}

func decodeWith(raw string, o *opts) (*tree.Node, error) {
	switch o.format {
	case format.ParensFormat:
		return decode.Parens(raw)
	case format.JSONFormat:
		return decode.JSON(raw)
	case format.JSONTemplateFormat:
		return decode.JSONTemplate(raw, o.tmpl)
	case format.YAMLFormat:
		return decode.YAML(raw)
	case format.YAMLTemplateFormat:
		return decode.YAMLTemplate(raw, o.tmpl)
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, o.format)
	}
}
