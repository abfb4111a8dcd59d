// Package tree defines the labeled tree produced by every decoder and the
// closed set of errors a decode can fail with.
//
// A tree has exactly one root. Each [Node] owns its children, which are kept
// in document order. Decoders build trees and hand them to the renderer; a
// tree is not modified after the decoder returns it.
//
// # Errors
//
// Decoders fail with one of:
//
//   - [ErrEmptyInput]: nothing to decode, or no root was produced
//   - [ErrMissingName]: a group was opened without a name before it
//   - [ErrMissingProp]: an object lacks the property naming it
//   - [ErrMultipleRoots]: more than one top level item
//   - [*FormatError]: any other violation of the surface syntax
//
// Use errors.Is and errors.As to tell them apart.
package tree
