package include_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.tmlkit.dev/tml/include"
	"go.tmlkit.dev/tml/tml"
	"go.tmlkit.dev/tml/value"
)

func parse(t *testing.T, src string) value.Value {
	t.Helper()

	root, err := tml.ParseString(src, tml.DefaultOptions())
	require.NoError(t, err)

	return root
}

func TestResolveBasicInclude(t *testing.T) {
	t.Parallel()

	loader := include.NewMapLoader(map[string]string{
		"/root/sub.tml": "x = 1\ny = 2\n",
	}, "/root")

	root := parse(t, "include sub.tml\n")

	resolved, err := include.Resolve(root, loader, include.Config{})
	require.NoError(t, err)
	require.Len(t, resolved.Object, 2)
	assert.Equal(t, "x", resolved.Object[0].Name.Text)
	assert.Equal(t, int64(1), resolved.Object[0].Val.AsInt())
	assert.Equal(t, "y", resolved.Object[1].Name.Text)
}

func TestResolveEmptyIncludeErasesSite(t *testing.T) {
	t.Parallel()

	loader := include.NewMapLoader(map[string]string{
		"/root/empty.tml": "",
	}, "/root")

	root := parse(t, "a = 1\ninclude empty.tml\nb = 2\n")

	resolved, err := include.Resolve(root, loader, include.Config{})
	require.NoError(t, err)
	require.Len(t, resolved.Object, 2)
	assert.Equal(t, "a", resolved.Object[0].Name.Text)
	assert.Equal(t, "b", resolved.Object[1].Name.Text)
}

func TestResolveNestedIncludes(t *testing.T) {
	t.Parallel()

	loader := include.NewMapLoader(map[string]string{
		"/root/a.tml": "include b.tml\n",
		"/root/b.tml": "z = 9\n",
	}, "/root")

	root := parse(t, "include a.tml\n")

	resolved, err := include.Resolve(root, loader, include.Config{})
	require.NoError(t, err)
	require.Len(t, resolved.Object, 1)
	assert.Equal(t, "z", resolved.Object[0].Name.Text)
}

func TestResolveCycleHitsDepthLimit(t *testing.T) {
	t.Parallel()

	loader := include.NewMapLoader(map[string]string{
		"/root/a.tml": "include a.tml\n",
	}, "/root")

	root := parse(t, "include a.tml\n")

	_, err := include.Resolve(root, loader, include.Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, include.ErrDepthExceeded)
}

func TestResolveOnceModeComment(t *testing.T) {
	t.Parallel()

	loader := include.NewMapLoader(map[string]string{
		"/root/shared.tml": "x = 1\n",
	}, "/root")

	root := parse(t, "include shared.tml\ninclude shared.tml\n")

	resolved, err := include.Resolve(root, loader, include.Config{Once: true, Marker: include.OnceMarkerComment})
	require.NoError(t, err)
	require.Len(t, resolved.Object, 2)
	assert.Equal(t, value.TagInt, resolved.Object[0].Val.Tag)
	assert.Equal(t, value.ShapeComment, resolved.Object[1].Shape())
	assert.Contains(t, resolved.Object[1].Name.Text, "shared.tml")
}

func TestResolveOnceModeEmptyErasesRepeat(t *testing.T) {
	t.Parallel()

	loader := include.NewMapLoader(map[string]string{
		"/root/shared.tml": "x = 1\n",
	}, "/root")

	root := parse(t, "include shared.tml\ninclude shared.tml\n")

	resolved, err := include.Resolve(root, loader, include.Config{Once: true, Marker: include.OnceMarkerEmpty})
	require.NoError(t, err)
	require.Len(t, resolved.Object, 1)
}

func TestResolveGraftsChildrenOntoEmptyLastPair(t *testing.T) {
	t.Parallel()

	loader := include.NewMapLoader(map[string]string{
		"/root/obj.tml": "a = 1\nb\n",
	}, "/root")

	b := value.NewBuilder()
	includePair := b.Pair(b.Array(b.Text("include"), b.Text("obj.tml")), b.Object(b.Assign("c", b.Int(3))))
	root := b.Object(includePair)

	resolved, err := include.Resolve(root, loader, include.Config{})
	require.NoError(t, err)
	require.Len(t, resolved.Object, 2)

	last := resolved.Object[1]
	assert.Equal(t, "b", last.Name.Text)
	require.Equal(t, value.TagObject, last.Val.Tag)
	require.Len(t, last.Val.Object, 1)
	assert.Equal(t, "c", last.Val.Object[0].Name.Text)
}

func TestResolveGraftOntoNonEmptyIsError(t *testing.T) {
	t.Parallel()

	loader := include.NewMapLoader(map[string]string{
		"/root/obj.tml": "a = 1\n",
	}, "/root")

	b := value.NewBuilder()
	includePair := b.Pair(b.Array(b.Text("include"), b.Text("obj.tml")), b.Object(b.Assign("c", b.Int(3))))
	root := b.Object(includePair)

	_, err := include.Resolve(root, loader, include.Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, include.ErrGraftTargetNotEmpty)
}

func TestResolveBufferingReusesCache(t *testing.T) {
	t.Parallel()

	loader := include.NewMapLoader(map[string]string{
		"/root/shared.tml": "x = 1\n",
	}, "/root")

	root := parse(t, "include shared.tml\ninclude shared.tml\n")

	resolved, err := include.Resolve(root, loader, include.Config{Buffer: true})
	require.NoError(t, err)
	require.Len(t, resolved.Object, 2)
	assert.Equal(t, int64(1), resolved.Object[0].Val.AsInt())
	assert.Equal(t, int64(1), resolved.Object[1].Val.AsInt())
}
