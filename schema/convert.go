package schema

import "go.tmlkit.dev/tml/value"

// ToAny converts a [value.Value] document tree into the map[string]any /
// []any / scalar shape [encoding/json] would have produced from the
// equivalent JSON document, so it can be validated against a JSON Schema.
//
// Comment and empty-line pairs carry no schema-relevant payload and are
// dropped. A single-token pair (ShapeSingle) has no value side to convert
// and contributes nil. Object-parent and assignment pairs contribute
// their value, keyed by the name's text form (non-Text names are not
// representable as JSON object keys and are dropped).
func ToAny(v value.Value) any {
	switch v.Tag {
	case value.TagNull, value.TagNone, value.TagComment:
		return nil
	case value.TagBool:
		return v.AsBool()
	case value.TagInt:
		return v.AsInt()
	case value.TagFloat:
		return v.AsFloat()
	case value.TagText:
		return v.Text
	case value.TagArray:
		out := make([]any, len(v.Array))
		for i, e := range v.Array {
			out[i] = ToAny(e)
		}

		return out
	case value.TagObject:
		return objectToAny(v.Object)
	default:
		return nil
	}
}

func objectToAny(pairs []value.Pair) map[string]any {
	out := make(map[string]any, len(pairs))

	for _, p := range pairs {
		switch p.Shape() {
		case value.ShapeEmpty, value.ShapeComment:
			continue
		case value.ShapeSingle:
			if p.Name.Tag == value.TagText {
				out[p.Name.Text] = nil
			}
		default:
			if p.Name.Tag == value.TagText {
				out[p.Name.Text] = ToAny(p.Val)
			}
		}
	}

	return out
}
