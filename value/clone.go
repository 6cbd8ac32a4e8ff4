package value

// Clone deep-copies v: every Array and Object is copied down to its leaf
// scalars. Useful wherever a cached tree is handed out to more than one
// caller that may go on to mutate its own copy (the include resolver's
// file-buffering cache being the main case).
func Clone(v Value) Value {
	switch v.Tag {
	case TagArray:
		arr := make([]Value, len(v.Array))
		for i, e := range v.Array {
			arr[i] = Clone(e)
		}

		out := v
		out.Array = arr

		return out
	case TagObject:
		obj := make([]Pair, len(v.Object))
		for i, p := range v.Object {
			obj[i] = Pair{Name: Clone(p.Name), Val: Clone(p.Val), Depth: p.Depth}
		}

		out := v
		out.Object = obj

		return out
	default:
		return v
	}
}
