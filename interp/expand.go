package interp

import "go.tmlkit.dev/tml/value"

// sentinels are the bare Text markers that, followed immediately by a
// one-character "(" token, open an embedded expression.
var sentinels = map[string]bool{"_i": true, "_ii": true, "_fi": true, "_ti": true}

// Expand walks root, replacing every embedded expression found inside an
// Array value with its evaluated result. One pass only: a result that
// happens to itself be an Array is not rescanned for further sentinels
// beyond ordinary recursion into its own elements.
func Expand(root value.Value) (value.Value, error) {
	return expandValue(root)
}

func expandValue(v value.Value) (value.Value, error) {
	switch v.Tag {
	case value.TagArray:
		collapsed, err := expandArray(v)
		if err != nil {
			return value.Value{}, err
		}

		elems := make([]value.Value, len(collapsed.Array))

		for i, e := range collapsed.Array {
			ne, err := expandValue(e)
			if err != nil {
				return value.Value{}, err
			}

			elems[i] = ne
		}

		return value.NewArray(elems, collapsed.Pos), nil
	case value.TagObject:
		pairs := make([]value.Pair, len(v.Object))

		for i, p := range v.Object {
			name, err := expandValue(p.Name)
			if err != nil {
				return value.Value{}, err
			}

			val, err := expandValue(p.Val)
			if err != nil {
				return value.Value{}, err
			}

			pairs[i] = value.Pair{Name: name, Val: val, Depth: p.Depth}
		}

		return value.NewObject(pairs, v.Pos), nil
	default:
		return v, nil
	}
}

// expandArray scans one array's elements left to right, replacing each
// sentinel-through-matching-paren span with a single evaluated Value.
func expandArray(v value.Value) (value.Value, error) {
	elems := v.Array
	out := make([]value.Value, 0, len(elems))

	i := 0
	for i < len(elems) {
		if !isSentinelStart(elems, i) {
			out = append(out, elems[i])
			i++

			continue
		}

		openIdx := i + 1

		closeIdx, err := matchingParen(elems, openIdx)
		if err != nil {
			return value.Value{}, err
		}

		body := elems[openIdx+1 : closeIdx]

		result, err := Eval(Parse(Lex(body)))
		if err != nil {
			return value.Value{}, err
		}

		out = append(out, result)

		i = closeIdx + 1
	}

	return value.NewArray(out, v.Pos), nil
}

func isSentinelStart(elems []value.Value, i int) bool {
	if i+1 >= len(elems) {
		return false
	}

	cur, next := elems[i], elems[i+1]

	if cur.Tag != value.TagText || cur.Quoted || !sentinels[cur.Text] {
		return false
	}

	return next.Tag == value.TagText && !next.Quoted && next.Text == "("
}

// matchingParen returns the index, within elems, of the ")" that closes
// the "(" at openIdx, balancing any nested parens in between.
func matchingParen(elems []value.Value, openIdx int) (int, error) {
	depth := 1

	for j := openIdx + 1; j < len(elems); j++ {
		e := elems[j]
		if e.Tag != value.TagText || e.Quoted || len(e.Text) != 1 {
			continue
		}

		switch e.Text {
		case "(":
			depth++
		case ")":
			depth--

			if depth == 0 {
				return j, nil
			}
		}
	}

	return 0, ErrUnterminatedExpression
}
