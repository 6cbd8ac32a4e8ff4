package interp

import (
	"strconv"
	"strings"

	"go.tmlkit.dev/tml/value"
)

// scalarText renders v the way binary "+" concatenation needs: a Text
// operand contributes its raw content; any other scalar contributes its
// literal form (mirroring the serializer's number formatting, without
// its quoting rules, since this text is never re-parsed).
func scalarText(v value.Value) string {
	switch v.Tag {
	case value.TagText:
		return v.Text
	case value.TagComment:
		return "#" + v.Text
	case value.TagBool:
		if v.AsBool() {
			return "true"
		}

		return "false"
	case value.TagInt:
		return strconv.FormatInt(v.AsInt(), 10)
	case value.TagFloat:
		s := strconv.FormatFloat(v.AsFloat(), 'f', -1, 32)
		if !strings.Contains(s, ".") {
			s += ".0"
		}

		return s
	case value.TagNull:
		return "null"
	default:
		return ""
	}
}
