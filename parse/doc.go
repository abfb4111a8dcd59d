// Package parse parses JSON and YAML text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "root", "children": []}`))
//	if err != nil {
//	    return err
//	}
//
//	// YAML
//	node, err := parse.Parse(data, parse.ParseYAML())
//
// Object fields keep their document order in the result.
//
// # Related Packages
//
//   - github.com/signadot/ruut/ir - IR representation
//   - github.com/signadot/ruut/decode - Project IR documents into trees
package parse
