package debug

import (
	"fmt"
	"strings"

	"github.com/signadot/ruut/encode"
	"github.com/signadot/ruut/tree"
)

// Logf writes a trace line; *tree.Node arguments are rendered as diagrams.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *tree.Node:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			args[i] = "\n" + strings.Join(encode.Lines(x), "\n")
		}
	}
	fmt.Fprintf(Out, msg, args...)
}
