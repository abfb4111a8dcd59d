// Package token splits the parenthesis tree notation into tokens.
//
// The notation has three control characters: '(' opens the children of the
// preceding name, ')' closes them and ',' separates siblings. Everything
// else is name text. For example
//
//	root(a(grandchild), b)
//
// [Tokenize] never fails; checking that the tokens describe a tree is left
// to the parser in package decode.
package token
