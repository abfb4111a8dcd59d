// Package format names the surface syntaxes a tree description can be
// written in.
//
// # Usage
//
//	f, err := format.ParseFormat("jsonprop")
//	if err != nil {
//	    return err
//	}
//	out, err := ruut.Prettify(in, ruut.WithFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/ruut/decode - Decode text into a tree
//   - github.com/signadot/ruut/encode - Render a tree as text
package format
