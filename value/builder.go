package value

// Builder constructs [Value] and [Pair] trees programmatically, without
// requiring callers to hand-write [Pair] literals for every node.
//
// Values built this way carry [NoPosition]; they did not come from a
// parse.
type Builder struct{}

// NewBuilder returns a ready-to-use [Builder]. Builder has no state; the
// constructor exists for symmetry with the rest of the module's
// New*-constructor convention.
func NewBuilder() *Builder {
	return &Builder{}
}

// Null returns a TagNull value.
func (b *Builder) Null() Value { return Null(NoPosition) }

// Bool returns a TagBool value.
func (b *Builder) Bool(v bool) Value { return NewBool(v, NoPosition) }

// Int returns a TagInt value with [BaseDecimal].
func (b *Builder) Int(v int64) Value { return NewInt(v, BaseDecimal, NoPosition) }

// IntBase returns a TagInt value recording the given parse base.
func (b *Builder) IntBase(v int64, base Base) Value { return NewInt(v, base, NoPosition) }

// Float returns a TagFloat value.
func (b *Builder) Float(v float64) Value { return NewFloat(v, NoPosition) }

// Text returns an unquoted TagText value.
func (b *Builder) Text(s string) Value { return NewText(s, false, NoPosition) }

// QuotedText returns a TagText value with parsed-with-quotes set.
func (b *Builder) QuotedText(s string) Value { return NewText(s, true, NoPosition) }

// Comment returns a TagComment value.
func (b *Builder) Comment(s string) Value { return NewComment(s, NoPosition) }

// Array returns a TagArray value wrapping elems.
func (b *Builder) Array(elems ...Value) Value { return NewArray(elems, NoPosition) }

// Object returns a TagObject value wrapping pairs.
func (b *Builder) Object(pairs ...Pair) Value { return NewObject(pairs, NoPosition) }

// Pair returns a [Pair] with an undefined (-1) depth.
func (b *Builder) Pair(name, val Value) Pair {
	return Pair{Name: name, Val: val, Depth: -1}
}

// Single returns a ShapeSingle [Pair]: a standalone token line.
func (b *Builder) Single(name Value) Pair {
	return Pair{Name: name, Val: None(NoPosition), Depth: -1}
}

// Empty returns a ShapeEmpty [Pair].
func (b *Builder) Empty() Pair {
	return Pair{Name: None(NoPosition), Val: None(NoPosition), Depth: -1}
}

// CommentPair returns a ShapeComment [Pair].
func (b *Builder) CommentPair(s string) Pair {
	return Pair{Name: b.Comment(s), Val: None(NoPosition), Depth: -1}
}

// Assign is shorthand for Pair(b.Text(name), val).
func (b *Builder) Assign(name string, val Value) Pair {
	return b.Pair(b.Text(name), val)
}

// Parent returns a ShapeObjectParent [Pair] whose value is an Object of
// pairs.
func (b *Builder) Parent(name string, pairs ...Pair) Pair {
	return b.Pair(b.Text(name), b.Object(pairs...))
}
