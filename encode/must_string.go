package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/ruut/tree"
)

func MustString(node *tree.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
