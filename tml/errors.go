package tml

import (
	"errors"
	"fmt"

	"go.tmlkit.dev/tml/value"
)

// Sentinel errors for the lexical and structural failures a parse can hit.
// Wrap with [*ParseError] to attach provenance.
var (
	ErrUnterminatedQuote = errors.New("unterminated quoted text")
	ErrMixedIndent       = errors.New("mixed indentation characters")
	ErrInvalidIndent     = errors.New("indentation is not a multiple of the indent unit")
	ErrMisplacedEquals   = errors.New("'=' at start or end of line")
	ErrTooManyEquals     = errors.New("more than one '=' on a line")
	ErrDepthJump         = errors.New("indentation depth increased by more than one level")
	ErrParentAlreadySet  = errors.New("parent pair already has a value")
)

// ParseError wraps Err with the file position at which it occurred.
type ParseError struct {
	Pos value.Position
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func perr(pos value.Position, err error) error {
	return &ParseError{Pos: pos, Err: err}
}
