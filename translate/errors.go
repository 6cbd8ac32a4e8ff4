package translate

import "errors"

var (
	// ErrMalformedName is returned when an entry's name side isn't text
	// or a 1- or 2-element array of text.
	ErrMalformedName = errors.New("translate: malformed entry name")
	// ErrDuplicateID is returned when two entries under the same
	// language id share a translation/variable id.
	ErrDuplicateID = errors.New("translate: duplicate id")
	// ErrUnknownID is returned by [Substitute] in strict mode when a
	// reference names an id with no stored value.
	ErrUnknownID = errors.New("translate: unknown id")
	// ErrDepthExceeded is returned when a chain of substitutions (one
	// stored value itself containing a reference) nests more than 50
	// deep.
	ErrDepthExceeded = errors.New("translate: substitution depth exceeded")
)
