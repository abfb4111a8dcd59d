// Package ir holds generic JSON and YAML documents as a tree of nodes.
//
// Unlike map[string]any, an object node keeps its fields in document order:
// Fields[i] is the key for Values[i]. The decoders in package decode rely on
// this order for the order of children in the trees they build.
//
// # Node Types
//
//   - NullType: null value
//   - BoolType: boolean
//   - NumberType: number, kept in Number as written
//   - StringType: string
//   - ArrayType: ordered list of nodes in Values
//   - ObjectType: key-value pairs in Fields and Values
//
// # Navigating Nodes
//
// Nodes know their parent:
//
//   - Parent: parent node (nil for root)
//   - ParentIndex: index in parent's array/object
//   - ParentField: field name if parent is object
//
// Path gives a JSONPath-style path such as "$.children[0].name".
//
// # Related Packages
//
//   - github.com/signadot/ruut/parse - Parses JSON and YAML into IR nodes
package ir
