package schema

import "errors"

// ErrValidation wraps any schema validation failure reported by
// [github.com/google/jsonschema-go].
var ErrValidation = errors.New("schema: validation failed")
