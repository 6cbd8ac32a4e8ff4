package schema

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"go.tmlkit.dev/tml/value"
)

// Validate checks doc against schema, converting doc via [ToAny] first.
// It wraps any validation failure with ErrValidation so callers can
// distinguish a schema mismatch from a malformed schema document.
func Validate(doc value.Value, s *jsonschema.Schema) error {
	resolved, err := s.Resolve(nil)
	if err != nil {
		return fmt.Errorf("resolving schema: %w", err)
	}

	if err := resolved.Validate(ToAny(doc)); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}
