// Package interp implements the embedded expression interpreter: a
// Pratt parser and evaluator operating over [value.Value] tokens rather
// than characters, plus the tree scan that locates embedded expressions
// inside Array values and replaces them with their evaluated result.
//
// An embedded expression is marked by one of the sentinel Text tokens
// "_i", "_ii", "_fi", "_ti" immediately followed by a one-character "("
// token; [Expand] locates the balanced ")" that closes it, Pratt-parses
// and evaluates the enclosed tokens, and replaces the whole sentinel-
// through-paren span with a single result Value.
package interp
