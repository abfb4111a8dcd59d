// Package ruut renders serialized tree descriptions as box-drawing
// diagrams.
//
// # Usage
//
//	out, err := ruut.Prettify("root(a(grandchild), b)")
//	// root
//	// ├── a
//	// │   └── grandchild
//	// └── b
//
//	out, err = ruut.Prettify(`{"title": "root", "kids": [{"title": "leaf"}]}`,
//	    ruut.WithFormat(format.JSONTemplateFormat),
//	    ruut.WithTemplate("{title}"),
//	    ruut.WithChildrenKey("kids"))
//
// # Related Packages
//
//   - github.com/signadot/ruut/decode - Decoders for each format
//   - github.com/signadot/ruut/encode - Diagram rendering
//   - github.com/signadot/ruut/tree - Tree and error types
package ruut
