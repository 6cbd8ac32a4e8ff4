package translate

import (
	"fmt"
	"strings"

	"go.tmlkit.dev/tml/value"
)

const maxDepth = 50

// Substitute walks root replacing any Text value of the form
// "<cfg.Prefix><id>)" whose id is known under lang in table with the
// stored value. A substituted value is itself walked for further
// references, up to a fixed chain depth. An unknown id is an error only
// when cfg.Strict; otherwise the reference is left unchanged.
func Substitute(root value.Value, table *Table, lang string, cfg Config) (value.Value, error) {
	s := &substituter{table: table, lang: lang, cfg: cfg}
	return s.value(root, 0)
}

type substituter struct {
	table *Table
	lang  string
	cfg   Config
}

func (s *substituter) value(v value.Value, depth int) (value.Value, error) {
	switch v.Tag {
	case value.TagText:
		return s.text(v, depth)
	case value.TagArray:
		elems := make([]value.Value, len(v.Array))

		for i, e := range v.Array {
			nv, err := s.value(e, depth)
			if err != nil {
				return value.Value{}, err
			}

			elems[i] = nv
		}

		return value.NewArray(elems, v.Pos), nil
	case value.TagObject:
		pairs := make([]value.Pair, len(v.Object))

		for i, p := range v.Object {
			name, err := s.value(p.Name, depth)
			if err != nil {
				return value.Value{}, err
			}

			val, err := s.value(p.Val, depth)
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

func (s *substituter) text(v value.Value, depth int) (value.Value, error) {
	id, ok := matchReference(v.Text, s.cfg.Prefix)
	if !ok {
		return v, nil
	}

	stored, ok := s.lookup(id)
	if !ok {
		if s.cfg.Strict {
			return value.Value{}, fmt.Errorf("%w: %s", ErrUnknownID, id)
		}

		return v, nil
	}

	if depth >= maxDepth {
		return value.Value{}, ErrDepthExceeded
	}

	return s.value(stored, depth+1)
}

func (s *substituter) lookup(id string) (value.Value, bool) {
	byLang, ok := s.table.ByLang[s.lang]
	if !ok {
		return value.Value{}, false
	}

	v, ok := byLang[id]

	return v, ok
}

// matchReference reports whether text is "<prefix><id>)" and, if so,
// returns id.
func matchReference(text, prefix string) (string, bool) {
	if !strings.HasPrefix(text, prefix) || !strings.HasSuffix(text, ")") {
		return "", false
	}

	inner := text[len(prefix) : len(text)-1]

	return inner, true
}
