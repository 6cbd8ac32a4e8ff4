package interp

import "errors"

var (
	// ErrUnterminatedExpression is returned when a sentinel's opening
	// "(" has no balancing ")" before the array ends.
	ErrUnterminatedExpression = errors.New("interp: unterminated embedded expression")
	// ErrParse is returned for a token sequence the Pratt parser cannot
	// make sense of; wrap with the parser's message.
	ErrParse = errors.New("interp: parse error")
	// ErrTypeMismatch is returned when an operator or builtin receives
	// an operand of the wrong kind (e.g. arithmetic on a non-number).
	ErrTypeMismatch = errors.New("interp: type mismatch")
	// ErrUnknownFunction is returned for a call naming a function outside
	// the builtin whitelist.
	ErrUnknownFunction = errors.New("interp: unknown function")
	// ErrArgCount is returned when a builtin call's argument count
	// doesn't match what the builtin expects.
	ErrArgCount = errors.New("interp: argument count mismatch")
	// ErrNotImplemented is returned by float(), str(), int() on Text,
	// conditional evaluation, and postfix evaluation: grammar the
	// parser accepts but the evaluator does not yet carry out.
	ErrNotImplemented = errors.New("interp: not implemented")
)
