package tml

import (
	"strconv"
	"strings"

	"go.tmlkit.dev/tml/value"
)

// SerializeOptions controls how [Serialize] renders a tree back to text.
type SerializeOptions struct {
	// IndentUnit is written once per depth level. Defaults to a single tab.
	IndentUnit string
	// UseStoredDepth selects the alternate depth mode: a pair's own
	// [value.Pair.Depth] is used verbatim (when >= 0) instead of depth
	// recomputed from tree nesting. This is what lets a document whose
	// indentation was preserved by the include resolver round-trip
	// faithfully.
	UseStoredDepth bool
}

// DefaultSerializeOptions recomputes depth from nesting and indents with a
// single tab per level.
func DefaultSerializeOptions() SerializeOptions {
	return SerializeOptions{IndentUnit: "\t"}
}

// Serialize renders root (expected to be a TagObject) as TML text.
func Serialize(root value.Value, opts SerializeOptions) string {
	if opts.IndentUnit == "" {
		opts.IndentUnit = "\t"
	}

	var sb strings.Builder

	writePairs(&sb, root.Object, 0, opts)

	return sb.String()
}

func indentOf(n int, opts SerializeOptions) string {
	if n <= 0 {
		return ""
	}

	return strings.Repeat(opts.IndentUnit, n)
}

// depthOf resolves the effective depth for pair at a given recomputed
// (nesting-based) depth, per opts.UseStoredDepth.
func depthOf(p value.Pair, computed int, opts SerializeOptions) int {
	if opts.UseStoredDepth && p.Depth >= 0 {
		return p.Depth
	}

	return computed
}

func writePairs(sb *strings.Builder, pairs []value.Pair, depth int, opts SerializeOptions) {
	for _, p := range pairs {
		writePair(sb, p, depth, opts)
	}
}

func writePair(sb *strings.Builder, p value.Pair, depth int, opts SerializeOptions) {
	d := depthOf(p, depth, opts)
	indent := indentOf(d, opts)

	switch p.Shape() {
	case value.ShapeEmpty:
		sb.WriteString("\n")
	case value.ShapeComment:
		sb.WriteString(indent)
		sb.WriteString("#")
		sb.WriteString(p.Name.Text)
		sb.WriteString("\n")
	case value.ShapeSingle:
		sb.WriteString(indent)
		sb.WriteString(emitSide(p.Name))
		sb.WriteString("\n")
	case value.ShapeObjectParent:
		sb.WriteString(indent)
		sb.WriteString(emitSide(p.Name))

		if len(p.Val.Object) == 0 {
			sb.WriteString(" = {}\n")
			return
		}

		sb.WriteString("\n")
		writePairs(sb, p.Val.Object, d+1, opts)
	case value.ShapeAssignment:
		sb.WriteString(indent)
		sb.WriteString(emitSide(p.Name))
		sb.WriteString(" = ")

		if p.Val.Tag == value.TagArray {
			writeArrayValue(sb, p.Val, d, opts)
			return
		}

		sb.WriteString(emitLeaf(p.Val))
		sb.WriteString("\n")
	}
}

// writeArrayValue renders an array that is the value side of an
// assignment. A simple array goes on the same line as "= "; a complex one
// opens with "[]" then lists elements at depth+1.
func writeArrayValue(sb *strings.Builder, v value.Value, depth int, opts SerializeOptions) {
	if len(v.Array) == 0 {
		sb.WriteString("[]\n")
		return
	}

	if !v.IsComplexArray() {
		toks := make([]string, len(v.Array))
		for i, e := range v.Array {
			toks[i] = emitLeaf(e)
		}

		sb.WriteString(strings.Join(toks, " "))
		sb.WriteString("\n")

		return
	}

	sb.WriteString("[]\n")

	indent := indentOf(depth+1, opts)

	for _, e := range v.Array {
		writeElement(sb, e, depth+1, indent, opts)
	}
}

// writeElement renders one element of a complex array, which may itself be
// a nested array, object, or leaf.
func writeElement(sb *strings.Builder, v value.Value, depth int, indent string, opts SerializeOptions) {
	switch v.Tag {
	case value.TagArray:
		sb.WriteString(indent)

		if len(v.Array) == 0 || !v.IsComplexArray() {
			toks := make([]string, len(v.Array))
			for i, e := range v.Array {
				toks[i] = emitLeaf(e)
			}

			if len(toks) == 0 {
				sb.WriteString("[]\n")
			} else {
				sb.WriteString(strings.Join(toks, " "))
				sb.WriteString("\n")
			}

			return
		}

		sb.WriteString("[]\n")

		childIndent := indentOf(depth+1, opts)
		for _, e := range v.Array {
			writeElement(sb, e, depth+1, childIndent, opts)
		}
	case value.TagObject:
		sb.WriteString(indent)

		if len(v.Object) == 0 {
			sb.WriteString("{}\n")
			return
		}

		sb.WriteString("{}\n")
		writePairs(sb, v.Object, depth+1, opts)
	default:
		sb.WriteString(indent)
		sb.WriteString(emitLeaf(v))
		sb.WriteString("\n")
	}
}

// emitSide renders a name (or single-pair) side: a scalar token, or a
// space-separated token list if the side was parsed/constructed as an
// array.
func emitSide(v value.Value) string {
	if v.Tag == value.TagArray {
		toks := make([]string, len(v.Array))
		for i, e := range v.Array {
			toks[i] = emitLeaf(e)
		}

		return strings.Join(toks, " ")
	}

	return emitLeaf(v)
}

// emitLeaf renders one scalar token per the quoting and number-formatting
// rules below. v must not be TagArray or TagObject.
func emitLeaf(v value.Value) string {
	switch v.Tag {
	case value.TagNone:
		return quoteText("")
	case value.TagNull:
		return "null"
	case value.TagBool:
		if v.AsBool() {
			return "true"
		}

		return "false"
	case value.TagInt:
		return strconv.FormatInt(v.AsInt(), 10)
	case value.TagFloat:
		return formatFloat(v.AsFloat())
	case value.TagComment:
		return "#" + v.Text
	case value.TagText:
		return emitText(v)
	default:
		return ""
	}
}

func formatFloat(f float64) string {
	// Floats are single precision in the data model; formatting at 32-bit
	// width yields the shortest literal that parses back to the same value.
	s := strconv.FormatFloat(f, 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

func emitText(v value.Value) string {
	if needsQuoting(v) {
		return quoteText(v.Text)
	}

	return v.Text
}

func needsQuoting(v value.Value) bool {
	if v.Quoted {
		return true
	}

	s := v.Text
	if s == "" {
		return true
	}

	if strings.ContainsAny(s, " \t\\\"") {
		return true
	}

	if isNumericLiteral(s) {
		return true
	}

	switch s {
	case "true", "false", "null", "[]", "{}":
		return true
	}

	return false
}

// isNumericLiteral reports whether s would parse back as Int or Float,
// which is why it needs quoting to round-trip as text.
func isNumericLiteral(s string) bool {
	body := s
	if strings.HasPrefix(body, "+") || strings.HasPrefix(body, "-") {
		body = body[1:]
	}

	if body == "" {
		return false
	}

	return allDigits(body) || isFloatBody(body)
}

func quoteText(s string) string {
	var sb strings.Builder

	sb.WriteByte('"')

	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\t':
			sb.WriteString(`\t`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}

	sb.WriteByte('"')

	return sb.String()
}

// Line is a structured-lines form: the same content as [Serialize]'s flat
// stream, but as a tree of (depth, line, subLines) records. SerializeLines
// and [RenderLines] are equivalent to
// [Serialize] for any input they both accept.
type Line struct {
	Depth int
	Text  string
	Sub   []Line
}

// SerializeLines renders root into the structured-lines form.
func SerializeLines(root value.Value, opts SerializeOptions) []Line {
	if opts.IndentUnit == "" {
		opts.IndentUnit = "\t"
	}

	return linesForPairs(root.Object, 0, opts)
}

func linesForPairs(pairs []value.Pair, depth int, opts SerializeOptions) []Line {
	lines := make([]Line, 0, len(pairs))

	for _, p := range pairs {
		d := depthOf(p, depth, opts)

		var sb strings.Builder

		writePair(&sb, p, depth, opts)

		text := strings.TrimSuffix(sb.String(), "\n")

		var sub []Line
		if p.Shape() == value.ShapeObjectParent && len(p.Val.Object) > 0 {
			parts := strings.SplitN(text, "\n", 2)
			text = parts[0]
			sub = linesForPairs(p.Val.Object, d+1, opts)
		}

		lines = append(lines, Line{Depth: d, Text: strings.TrimPrefix(text, indentOf(d, opts)), Sub: sub})
	}

	return lines
}

// RenderLines flattens a structured-lines tree back into TML text,
// equivalent to the output of [Serialize].
func RenderLines(lines []Line, opts SerializeOptions) string {
	if opts.IndentUnit == "" {
		opts.IndentUnit = "\t"
	}

	var sb strings.Builder

	renderLinesInto(&sb, lines, opts)

	return sb.String()
}

func renderLinesInto(sb *strings.Builder, lines []Line, opts SerializeOptions) {
	for _, l := range lines {
		if l.Text != "" {
			sb.WriteString(indentOf(l.Depth, opts))
			sb.WriteString(l.Text)
		}

		sb.WriteString("\n")
		renderLinesInto(sb, l.Sub, opts)
	}
}
