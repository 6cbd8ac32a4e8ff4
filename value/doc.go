// Package value defines the Value/Pair tree that every other package in
// this module parses into, transforms, or serializes out of: TML and BTML
// both produce and consume the same tree, and the transform pipeline
// (include, template, translation, interpreter) mutates it in place.
//
// A [Value] is a tagged union (see [Tag]) carrying provenance (a shared
// [Filename] handle plus 1-based line/column), and, for numeric tags, all
// three of its bool/float/int projections computed up front so downstream
// code can read whichever it needs without re-parsing. A [Pair] couples a
// name Value and a value Value and classifies itself by [Pair.Shape].
//
// Order matters for array elements and object pairs, so both are backed
// by slices rather than maps.
package value
