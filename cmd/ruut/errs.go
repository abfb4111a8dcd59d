package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/ruut/tree"
)

// exit codes from sysexits.h
const (
	exitUsage   = 64
	exitDataErr = 65
)

var errNoInput = errors.New("no input")

const inputHint = "structure must be passed as the first argument or via stdin"

// describe gives the message and exit code reported for err.
func describe(err error) (string, int) {
	var fe *tree.FormatError
	switch {
	case errors.Is(err, errNoInput):
		return "no input -- " + inputHint, exitUsage
	case errors.Is(err, tree.ErrEmptyInput):
		return "empty input -- " + inputHint, exitUsage
	case errors.Is(err, tree.ErrMissingName):
		return "invalid input -- an item is missing a name", exitDataErr
	case errors.Is(err, tree.ErrMissingProp):
		return "invalid input -- an item is missing a property", exitDataErr
	case errors.Is(err, tree.ErrMultipleRoots):
		return "invalid input -- must only have one root in structure", exitDataErr
	case errors.As(err, &fe):
		return "invalid input -- " + fe.Msg, exitDataErr
	default:
		return "invalid input -- " + err.Error(), exitDataErr
	}
}

// report writes the message for err to w and returns its exit code.
func report(w io.Writer, err error) int {
	msg, code := describe(err)
	fmt.Fprintf(w, "Error: %s\n", msg)
	return code
}
