package tml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.tmlkit.dev/tml/tml"
	"go.tmlkit.dev/tml/value"
)

func TestParseS1(t *testing.T) {
	t.Parallel()

	src := "obj\n\ta = 1\n\tb = 2\narr = 1 3 5\n"

	root, err := tml.ParseString(src, tml.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, value.TagObject, root.Tag)
	require.Len(t, root.Object, 2)

	obj := root.Object[0]
	assert.Equal(t, "obj", obj.Name.Text)
	assert.Equal(t, value.ShapeObjectParent, obj.Shape())
	require.Len(t, obj.Val.Object, 2)
	assert.Equal(t, "a", obj.Val.Object[0].Name.Text)
	assert.Equal(t, int64(1), obj.Val.Object[0].Val.AsInt())
	assert.Equal(t, "b", obj.Val.Object[1].Name.Text)
	assert.Equal(t, int64(2), obj.Val.Object[1].Val.AsInt())

	arr := root.Object[1]
	assert.Equal(t, "arr", arr.Name.Text)
	require.Equal(t, value.TagArray, arr.Val.Tag)
	require.Len(t, arr.Val.Array, 3)
	assert.Equal(t, []int64{1, 3, 5}, []int64{
		arr.Val.Array[0].AsInt(), arr.Val.Array[1].AsInt(), arr.Val.Array[2].AsInt(),
	})
}

func TestTokenClassification(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		line    string
		wantTag value.Tag
	}{
		"int":          {"a = 7", value.TagInt},
		"negative int": {"a = -7", value.TagInt},
		"float":        {"a = 0.123", value.TagFloat},
		"bool true":    {"a = true", value.TagBool},
		"bool false":   {"a = false", value.TagBool},
		"null":         {"a = null", value.TagNull},
		"text":         {"a = text", value.TagText},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			root, err := tml.ParseString(tc.line, tml.DefaultOptions())
			require.NoError(t, err)
			require.Len(t, root.Object, 1)
			assert.Equal(t, tc.wantTag, root.Object[0].Val.Tag)
		})
	}
}

func TestQuotedTextEscapes(t *testing.T) {
	t.Parallel()

	root, err := tml.ParseString(`a = "line\ttab\nnewline\\slash\"quote"`, tml.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, root.Object, 1)

	v := root.Object[0].Val
	require.Equal(t, value.TagText, v.Tag)
	assert.True(t, v.Quoted)
	assert.Equal(t, "line\ttab\nnewline\\slash\"quote", v.Text)
}

func TestUnterminatedQuoteIsError(t *testing.T) {
	t.Parallel()

	_, err := tml.ParseString(`a = "unterminated`, tml.DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, tml.ErrUnterminatedQuote)
}

func TestMixedIndentIsError(t *testing.T) {
	t.Parallel()

	_, err := tml.ParseString("obj\n\ta = 1\n \tb = 2\n", tml.DefaultOptions())
	require.Error(t, err)
}

func TestDepthJumpIsError(t *testing.T) {
	t.Parallel()

	_, err := tml.ParseString("obj\n\ta = 1\n\t\t\tb = 2\n", tml.DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, tml.ErrDepthJump)
}

func TestEmptyAndCommentPreservation(t *testing.T) {
	t.Parallel()

	src := "a = 1\n\n# a comment\nb = 2\n"

	root, err := tml.ParseString(src, tml.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, root.Object, 4)
	assert.Equal(t, value.ShapeEmpty, root.Object[1].Shape())
	assert.Equal(t, value.ShapeComment, root.Object[2].Shape())
	assert.Equal(t, " a comment", root.Object[2].Name.Text)

	stripped, err := tml.ParseString(src, tml.Options{Filename: "x"})
	require.NoError(t, err)
	require.Len(t, stripped.Object, 2)
}

func TestDepthMoveIntoChild(t *testing.T) {
	t.Parallel()

	// The blank line and comment between "obj" and its first child belong
	// to the child block once the deeper line is seen.
	src := "obj\n\n\t# leading\n\ta = 1\n"

	root, err := tml.ParseString(src, tml.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, root.Object, 1)

	obj := root.Object[0]
	require.Len(t, obj.Val.Object, 3)
	assert.Equal(t, value.ShapeEmpty, obj.Val.Object[0].Shape())
	assert.Equal(t, value.ShapeComment, obj.Val.Object[1].Shape())
	assert.Equal(t, value.ShapeAssignment, obj.Val.Object[2].Shape())
}

func TestLineScannerStream(t *testing.T) {
	t.Parallel()

	ls := tml.NewLineScanner(strings.NewReader("a = 1\nb = 2\n"), "mem")

	p1, d1, err := ls.Next()
	require.NoError(t, err)
	assert.Equal(t, 0, d1)
	assert.Equal(t, "a", p1.Name.Text)

	p2, _, err := ls.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", p2.Name.Text)

	_, _, err = ls.Next()
	assert.ErrorIs(t, err, tml.ErrStreamDone)
}
