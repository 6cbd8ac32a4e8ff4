package btml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.tmlkit.dev/tml/btml"
	"go.tmlkit.dev/tml/tml"
	"go.tmlkit.dev/tml/value"
)

// stripDepth rebuilds v with every Pair.Depth set to -1. BTML does not
// encode indentation depth, so a tree parsed from text must be normalized
// this way before comparing it against one decoded from BTML.
func stripDepth(v value.Value) value.Value {
	switch v.Tag {
	case value.TagArray:
		elems := make([]value.Value, len(v.Array))
		for i, e := range v.Array {
			elems[i] = stripDepth(e)
		}

		out := v
		out.Array = elems

		return out
	case value.TagObject:
		pairs := make([]value.Pair, len(v.Object))
		for i, p := range v.Object {
			pairs[i] = value.Pair{Name: stripDepth(p.Name), Val: stripDepth(p.Val), Depth: -1}
		}

		out := v
		out.Object = pairs

		return out
	default:
		return v
	}
}

func roundTrip(t *testing.T, src string, opts btml.EncodeOptions) {
	t.Helper()

	root, err := tml.ParseString(src, tml.DefaultOptions())
	require.NoError(t, err)

	data, warnings, err := btml.Encode(root, opts)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	decoded, warnings, err := btml.Decode(data)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.True(t, stripDepth(root).Equal(decoded, false), "round trip mismatch for %q", src)
}

func TestRoundTripNoTable(t *testing.T) {
	t.Parallel()

	srcs := []string{
		"",
		"# comment\n",
		"null\n",
		"true\n",
		"0.123\n",
		"7\n",
		"text\n",
		"0 1 2 3 4 5\n",
		"object\n\ta = 1\n\tb = 2\n",
		"a = b\n",
		"null = true\n",
		"7 = text\n",
		"0.1 1.2 3.4 = a b c d e f\n",
		"object\n\ta = 1\n\t# a comment\n\tsubobj\n\t\taa = a\n\t\tbb = b\n\tb = 2\n",
	}

	for _, src := range srcs {
		roundTrip(t, src, btml.DefaultEncodeOptions())
	}
}

func TestRoundTripWithStringTable(t *testing.T) {
	t.Parallel()

	src := "a = repeated\nb = repeated\nc = repeated\n"
	roundTrip(t, src, btml.EncodeOptions{Header: true, StringTable: true})
}

func TestStringTableDeduplicatesRepeats(t *testing.T) {
	t.Parallel()

	b := value.NewBuilder()
	root := b.Object(
		b.Assign("a", b.Text("repeated")),
		b.Assign("b", b.Text("repeated")),
		b.Assign("c", b.Text("once")),
	)

	withTable, _, err := btml.Encode(root, btml.EncodeOptions{Header: true, StringTable: true})
	require.NoError(t, err)

	withoutTable, _, err := btml.Encode(root, btml.EncodeOptions{Header: true})
	require.NoError(t, err)

	assert.Less(t, len(withTable), len(withoutTable))

	decoded, _, err := btml.Decode(withTable)
	require.NoError(t, err)
	assert.True(t, root.Equal(decoded, false))
}

func TestDecodeWithoutHeaderTreatsBodyAsHeaderless(t *testing.T) {
	t.Parallel()

	b := value.NewBuilder()
	root := b.Object(b.Assign("x", b.Int(7)))

	data, _, err := btml.Encode(root, btml.EncodeOptions{Header: false})
	require.NoError(t, err)

	decoded, err := btml.DecodeBody(data)
	require.NoError(t, err)
	assert.True(t, root.Equal(decoded, false))

	decodedViaDecode, _, err := btml.Decode(data)
	require.NoError(t, err)
	assert.True(t, root.Equal(decodedViaDecode, false))
}

func TestDecodeRejectsBadMagicVersion(t *testing.T) {
	t.Parallel()

	b := value.NewBuilder()
	root := b.Object(b.Assign("x", b.Int(1)))

	data, _, err := btml.Encode(root, btml.DefaultEncodeOptions())
	require.NoError(t, err)

	corrupt := append([]byte(nil), data...)
	corrupt[4] = 99

	_, _, err = btml.Decode(corrupt)
	assert.ErrorIs(t, err, btml.ErrUnsupportedVersion)
}

func TestFloatRoundTripsAtSinglePrecision(t *testing.T) {
	t.Parallel()

	b := value.NewBuilder()
	root := b.Object(b.Assign("f", b.Float(1.5)), b.Assign("g", b.Float(-2.25)))

	data, _, err := btml.Encode(root, btml.DefaultEncodeOptions())
	require.NoError(t, err)

	decoded, _, err := btml.Decode(data)
	require.NoError(t, err)
	assert.True(t, root.Equal(decoded, false))
}

func TestTrailingBytesReportedAsWarning(t *testing.T) {
	t.Parallel()

	b := value.NewBuilder()
	root := b.Object(b.Assign("x", b.Int(1)))

	data, _, err := btml.Encode(root, btml.DefaultEncodeOptions())
	require.NoError(t, err)

	data = append(data, 0xFF, 0xFF)

	_, warnings, err := btml.Decode(data)
	require.NoError(t, err)
	assert.Len(t, warnings, 1)
}
