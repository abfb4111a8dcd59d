// Package debug provides environment controlled tracing to stderr.
//
// Tracing is off unless one of these variables parses as true:
//
//	RUUT_DEBUG_TOKENS    tokens of the parenthesis notation
//	RUUT_DEBUG_DECODE    trees produced by decoders
//	RUUT_DEBUG_TEMPLATE  compiled name templates
package debug

import (
	"fmt"
	"io"
	"os"
	"strconv"

	json "github.com/goccy/go-json"
)

type debug struct {
	Tokens   bool
	Decode   bool
	Template bool
}

var (
	d *debug

	// Out is where traces are written.
	Out io.Writer = os.Stderr
)

func init() {
	d = &debug{}
	d.Tokens = boolEnv("RUUT_DEBUG_TOKENS")
	d.Decode = boolEnv("RUUT_DEBUG_DECODE")
	d.Template = boolEnv("RUUT_DEBUG_TEMPLATE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Decode() bool {
	return d.Decode
}
func Template() bool {
	return d.Template
}

// Enable turns on all traces. The cli uses it for -debug.
func Enable() {
	d.Tokens = true
	d.Decode = true
	d.Template = true
}

// LogAny writes v as a line of JSON, or with %v when it does not marshal.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(Out, "%v\n", v)
		return
	}
	Out.Write(append(d, '\n'))
}
