package parse

import (
	"fmt"

	"github.com/signadot/ruut/ir"
)

// Parse parses d as a single JSON document, or YAML document when given
// ParseYAML.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	var (
		res *ir.Node
		err error
	)
	if pOpts.yaml {
		res, err = parseYAML(d)
	} else {
		res, err = parseJSON(d)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return res, nil
}
