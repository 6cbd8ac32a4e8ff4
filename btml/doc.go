// Package btml implements BTML, the binary encoding of the same
// [value.Value] tree TML parses. It is little-endian and byte-oriented:
// a 6-byte optional header (magic, version, a flag byte signaling an
// optional deduplicated string table), followed by length-prefixed,
// type-tagged values.
//
// [Encode] and [Decode] are inverses for any tree Decode can produce,
// excepting TagInt's parse base, which BTML does not encode; compare
// decoded trees with [value.Value.Equal]'s includeBase set to false.
package btml
