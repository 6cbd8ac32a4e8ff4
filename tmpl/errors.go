package tmpl

import "errors"

var (
	// ErrDuplicateName is returned when two templates share a name.
	ErrDuplicateName = errors.New("tmpl: duplicate template name")
	// ErrUnknownTemplate is returned when a use-template site names a
	// template Collect did not record.
	ErrUnknownTemplate = errors.New("tmpl: unknown template")
	// ErrArgCount is returned when a use-template site's argument count
	// does not match the template's parameter count.
	ErrArgCount = errors.New("tmpl: argument count mismatch")
	// ErrCycle is returned when expanding a template would re-enter a
	// template already on the current expansion stack.
	ErrCycle = errors.New("tmpl: cyclic template expansion")
	// ErrDepthExceeded is returned when recursive expansion would nest
	// more than 50 levels deep.
	ErrDepthExceeded = errors.New("tmpl: recursion depth exceeded")
	// ErrSimpleReplacementShape is returned when a use-template appearing
	// inside a value or sub-expression does not expand to exactly one
	// non-empty, non-object pair.
	ErrSimpleReplacementShape = errors.New("tmpl: simple replacement requires exactly one scalar pair")
	// ErrTemplateGraftUnsupported is returned when a use-template site
	// carries a non-empty value with child pairs: expanding those
	// children onto the template body is not implemented.
	ErrTemplateGraftUnsupported = errors.New("tmpl: use-template with child pairs is unsupported")
	// ErrMalformedDefinition is returned when a "template" entry is
	// missing a name or parameters field, or its body is not an object.
	ErrMalformedDefinition = errors.New("tmpl: malformed template definition")
)
