package schema_test

import (
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.tmlkit.dev/tml/schema"
	"go.tmlkit.dev/tml/tml"
)

func TestToAnyConvertsScalarsArraysAndObjects(t *testing.T) {
	t.Parallel()

	root, err := tml.ParseString(""+
		"name = alice\n"+
		"age = 30\n"+
		"tags = a b c\n", tml.DefaultOptions())
	require.NoError(t, err)

	got := schema.ToAny(root).(map[string]any)

	assert.Equal(t, "alice", got["name"])
	assert.Equal(t, int64(30), got["age"])
	assert.Equal(t, []any{"a", "b", "c"}, got["tags"])
}

func TestToAnyDropsCommentsAndEmptyLines(t *testing.T) {
	t.Parallel()

	root, err := tml.ParseString(""+
		"# a comment\n"+
		"\n"+
		"x = 1\n", tml.DefaultOptions())
	require.NoError(t, err)

	got := schema.ToAny(root).(map[string]any)

	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got["x"])
}

func TestValidateAcceptsConformingDocument(t *testing.T) {
	t.Parallel()

	root, err := tml.ParseString("name = alice\nage = 30\n", tml.DefaultOptions())
	require.NoError(t, err)

	s := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name": {Type: "string"},
			"age":  {Type: "integer"},
		},
		Required: []string{"name", "age"},
	}

	err = schema.Validate(root, s)
	require.NoError(t, err)
}

func TestValidateRejectsMissingRequiredProperty(t *testing.T) {
	t.Parallel()

	root, err := tml.ParseString("name = alice\n", tml.DefaultOptions())
	require.NoError(t, err)

	s := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name": {Type: "string"},
			"age":  {Type: "integer"},
		},
		Required: []string{"name", "age"},
	}

	err = schema.Validate(root, s)
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrValidation)
}
