// Package translate implements the substitution engine shared by
// translations, profiles, and variables: three keyword/prefix variants
// of the same mechanism. A block named by a keyword ("translations",
// "profiles", "variables") holds entries keyed by a 1- or 2-element
// array name (id, optional language id); [Collect] builds a lookup table
// from that block, and [Substitute] rewrites Text values of the form
// "<prefix><id>)" found anywhere else in the tree to the entry's stored
// value.
package translate
