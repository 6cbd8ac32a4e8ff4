package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.tmlkit.dev/tml/value"
)

func TestNumericProjections(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		v         value.Value
		wantBool  bool
		wantFloat float64
		wantInt   int64
	}{
		"bool true":      {value.NewBool(true, value.NoPosition), true, 1, 1},
		"bool false":     {value.NewBool(false, value.NoPosition), false, 0, 0},
		"int nonzero":    {value.NewInt(7, value.BaseDecimal, value.NoPosition), true, 7, 7},
		"int zero":       {value.NewInt(0, value.BaseDecimal, value.NoPosition), false, 0, 0},
		// Float payloads are quantized to single precision, so expectations
		// widen from float32 rather than naming the double literal.
		"float rounds up": {
			value.NewFloat(1.6, value.NoPosition), true, float64(float32(1.6)), 2,
		},
		"float rounds down": {
			value.NewFloat(1.4, value.NoPosition), true, float64(float32(1.4)), 1,
		},
		"float half away from zero, negative": {
			value.NewFloat(-1.5, value.NoPosition), true, -1.5, -2,
		},
		"float below bool threshold": {
			value.NewFloat(0.4, value.NoPosition), false, float64(float32(0.4)), 0,
		},
		"float at bool threshold": {
			value.NewFloat(0.5, value.NoPosition), true, 0.5, 1,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.wantBool, tc.v.AsBool())
			assert.Equal(t, tc.wantFloat, tc.v.AsFloat())
			assert.Equal(t, tc.wantInt, tc.v.AsInt())
		})
	}
}

func TestIntBase(t *testing.T) {
	t.Parallel()

	v := value.NewInt(8, value.BaseOctal, value.NoPosition)
	assert.Equal(t, value.BaseOctal, v.Base)

	b := value.NewBool(true, value.NoPosition)
	assert.Equal(t, value.BaseBool, b.Base)

	f := value.NewFloat(1.5, value.NoPosition)
	assert.Equal(t, value.BaseDecimal, f.Base)
}

func TestPairShape(t *testing.T) {
	t.Parallel()

	b := value.NewBuilder()

	tcs := map[string]struct {
		p    value.Pair
		want value.Shape
	}{
		"empty":         {b.Empty(), value.ShapeEmpty},
		"comment":       {b.CommentPair("hi"), value.ShapeComment},
		"single":        {b.Single(b.Text("standalone")), value.ShapeSingle},
		"object parent": {b.Parent("obj", b.Assign("a", b.Int(1))), value.ShapeObjectParent},
		"assignment":    {b.Assign("a", b.Int(1)), value.ShapeAssignment},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.p.Shape())
		})
	}
}

func TestIsComplexArray(t *testing.T) {
	t.Parallel()

	b := value.NewBuilder()

	simple := b.Array(b.Int(1), b.Int(2), b.Text("x"))
	assert.False(t, simple.IsComplexArray())

	cplx := b.Array(b.Int(1), b.Array(b.Int(2)))
	assert.True(t, cplx.IsComplexArray())

	notArray := b.Object()
	assert.False(t, notArray.IsComplexArray())
}

func TestEqualIgnoresPosition(t *testing.T) {
	t.Parallel()

	f := value.NewFilename("a.tml")
	a := value.NewInt(5, value.BaseDecimal, value.Position{File: f, Line: 1, Column: 1})
	z := value.NewInt(5, value.BaseDecimal, value.NoPosition)

	require.True(t, a.Equal(z, true))
}

func TestEqualBaseExclusion(t *testing.T) {
	t.Parallel()

	a := value.NewInt(5, value.BaseHex, value.NoPosition)
	bDec := value.NewInt(5, value.BaseDecimal, value.NoPosition)

	assert.False(t, a.Equal(bDec, true), "bases differ, strict compare must fail")
	assert.True(t, a.Equal(bDec, false), "base excluded, values match")
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	b := value.NewBuilder()
	orig := b.Object(b.Assign("a", b.Array(b.Int(1), b.Int(2))))

	clone := value.Clone(orig)
	require.True(t, orig.Equal(clone, true))

	clone.Object[0].Val.Array[0] = b.Int(99)

	assert.Equal(t, int64(1), orig.Object[0].Val.Array[0].AsInt(), "mutating the clone must not affect the original")
}
