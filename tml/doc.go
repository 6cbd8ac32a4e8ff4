// Package tml implements the TML indentation-based markup language:
// a line-driven parser and its inverse serializer, both operating on
// [value.Value] trees.
//
// Parsing proceeds line by line. The first indented line fixes the
// document's indent unit (one tab, or a fixed run of spaces); every later
// line's indentation is checked against that unit, and its depth is used to
// drive a stack-based tree assembly.
//
// [Serialize] is the parser's inverse: for a tree the parser produced,
// given the same options used when quoting was recorded, re-parsing
// serialized output yields an equivalent tree. Empty objects and complex
// arrays, which the parser never produces, serialize to "{}" and "[]"
// forms that the parser does not read back as an object or array.
package tml
