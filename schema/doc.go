// Package schema validates a [value.Value] document tree against a JSON
// Schema, using [github.com/google/jsonschema-go]. This package only
// consumes schemas; it does not generate them.
package schema
