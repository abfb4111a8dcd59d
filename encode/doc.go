// Package encode renders a tree as a box-drawing diagram.
//
// # Usage
//
//	root := tree.New("root",
//	    tree.New("a", tree.New("grandchild")),
//	    tree.New("b"))
//	err := encode.Encode(root, os.Stdout)
//
// prints
//
//	root
//	├── a
//	│   └── grandchild
//	└── b
//
// # Related Packages
//
//   - github.com/signadot/ruut/tree - Tree representation
//   - github.com/signadot/ruut/decode - Decode text into a tree
package encode
