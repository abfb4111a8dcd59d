// Package decode turns serialized tree descriptions into a [tree.Node].
//
// There is one decoder per surface syntax:
//
//   - [Parens]: the parenthesis notation, e.g. "root(a(grandchild), b)"
//   - [JSON], [YAML]: a single-key object whose key names the root; object
//     values become children, any other value a leaf
//   - [JSONTemplate], [YAMLTemplate]: objects whose names are built from a
//     template over their own properties, with children listed under a
//     configurable key
//
// Every decoder fails with one of the errors documented in package tree and
// never returns a partial tree.
package decode
