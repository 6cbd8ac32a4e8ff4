package include

import "errors"

var (
	// ErrDepthExceeded is returned when resolving an include would nest
	// more than 50 levels deep.
	ErrDepthExceeded = errors.New("include: recursion depth exceeded")
	// ErrNotFound is returned by a [Loader] when the resolved path has no
	// backing content.
	ErrNotFound = errors.New("include: file not found")
	// ErrGraftTargetNotEmpty is returned when an include pair carries child
	// entries but the included document's last pair already has a value.
	ErrGraftTargetNotEmpty = errors.New("include: graft target already has a value")
	// ErrGraftOntoEmptyDocument is returned when an include pair carries
	// child entries but the included document expanded to zero pairs,
	// leaving nothing to graft onto.
	ErrGraftOntoEmptyDocument = errors.New("include: graft target document is empty")
	// ErrNotAnObject is returned when a loaded document's root is not an
	// object tree.
	ErrNotAnObject = errors.New("include: included document is not an object")
	// ErrUnknownMarker is returned for an --include-once-marker value
	// that isn't one of the recognized names.
	ErrUnknownMarker = errors.New("include: unknown once-marker")
)
