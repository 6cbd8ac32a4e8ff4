package tml

import (
	"strconv"
	"strings"

	"go.tmlkit.dev/tml/value"
)

// rawToken is a scanned token from a content line before classification:
// either a quoted string (quoted=true, text already unescaped) or a raw
// unquoted run, or the '=' separator (isEquals=true).
type rawToken struct {
	text     string
	quoted   bool
	isEquals bool
	col      int // 1-based column where the token starts
}

// scanLineTokens splits content (the part of a line after indentation) into
// raw tokens: whitespace-separated runs, the '=' separator as its own
// token, and double-quoted strings scanned and unescaped as a unit.
// baseCol is the 1-based column of content[0] within the original line.
func scanLineTokens(content string, baseCol int) ([]rawToken, error) {
	var toks []rawToken

	i := 0
	for i < len(content) {
		c := content[i]
		if c == ' ' || c == '\t' {
			i++
			continue
		}

		if c == '=' {
			toks = append(toks, rawToken{text: "=", isEquals: true, col: baseCol + i})
			i++

			continue
		}

		if c == '"' {
			text, consumed, err := scanQuoted(content[i:])
			if err != nil {
				return nil, err
			}

			toks = append(toks, rawToken{text: text, quoted: true, col: baseCol + i})
			i += consumed

			continue
		}

		start := i
		for i < len(content) {
			c2 := content[i]
			if c2 == ' ' || c2 == '\t' || c2 == '=' || c2 == '"' {
				break
			}

			i++
		}

		toks = append(toks, rawToken{text: content[start:i], col: baseCol + start})
	}

	return toks, nil
}

// scanQuoted scans a double-quoted string starting at s[0] == '"'. It
// returns the unescaped text and the number of bytes consumed (including
// both quote characters).
func scanQuoted(s string) (string, int, error) {
	var sb strings.Builder

	i := 1 // skip opening quote
	for i < len(s) {
		c := s[i]

		switch c {
		case '"':
			return sb.String(), i + 1, nil
		case '\\':
			if i+1 >= len(s) {
				return "", 0, ErrUnterminatedQuote
			}

			switch s[i+1] {
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			case 't':
				sb.WriteByte('\t')
			case 'n':
				sb.WriteByte('\n')
			default:
				// Unknown escape: keep both characters verbatim.
				sb.WriteByte('\\')
				sb.WriteByte(s[i+1])
			}

			i += 2
		default:
			sb.WriteByte(c)
			i++
		}
	}

	return "", 0, ErrUnterminatedQuote
}

// classifyToken converts a raw unquoted token into a typed [value.Value],
// trying int, float, bool, and null in that order before falling back to
// text.
func classifyToken(tok string, pos value.Position) value.Value {
	body := tok
	sign := ""

	if strings.HasPrefix(body, "+") || strings.HasPrefix(body, "-") {
		sign = body[:1]
		body = body[1:]
	}

	if body != "" && allDigits(body) {
		if n, err := strconv.ParseInt(sign+body, 10, 64); err == nil {
			return value.NewInt(n, value.BaseDecimal, pos)
		}
	}

	if body != "" && isFloatBody(body) {
		if f, err := strconv.ParseFloat(sign+body, 64); err == nil {
			return value.NewFloat(f, pos)
		}
	}

	switch tok {
	case "true":
		return value.NewBool(true, pos)
	case "false":
		return value.NewBool(false, pos)
	case "null":
		return value.Null(pos)
	}

	return value.NewText(tok, false, pos)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// isFloatBody reports whether s is digits with exactly one '.'.
func isFloatBody(s string) bool {
	dot := strings.Index(s, ".")
	if dot < 0 || strings.Index(s[dot+1:], ".") >= 0 {
		return false
	}

	rest := s[:dot] + s[dot+1:]

	return rest != "" && allDigits(rest)
}
