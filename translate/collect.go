package translate

import (
	"fmt"

	"go.tmlkit.dev/tml/value"
)

// Table is a collected lookup table: language id to translation/variable
// id to stored value. Variable entries (no language component) are
// stored under the empty language id.
type Table struct {
	ByLang map[string]map[string]value.Value
}

func newTable() *Table {
	return &Table{ByLang: map[string]map[string]value.Value{}}
}

// Collect scans root (a TagObject) for a block named cfg.Keyword,
// recording its entries into a [Table] and returning the tree with that
// block optionally removed. Duplicate ids under the same language id are
// an error.
func Collect(root value.Value, cfg Config) (*Table, value.Value, error) {
	table := newTable()

	pairs, err := collectPairs(root.Object, cfg, table)
	if err != nil {
		return nil, value.Value{}, err
	}

	return table, value.NewObject(pairs, root.Pos), nil
}

func collectPairs(pairs []value.Pair, cfg Config, table *Table) ([]value.Pair, error) {
	out := make([]value.Pair, 0, len(pairs))

	for _, p := range pairs {
		if p.Name.Tag == value.TagText && p.Name.Text == cfg.Keyword && p.Val.Tag == value.TagObject {
			if err := collectBlock(p.Val.Object, table); err != nil {
				return nil, err
			}

			if cfg.Remove {
				continue
			}

			out = append(out, p)

			continue
		}

		if cfg.Recursive && p.Val.Tag == value.TagObject {
			children, err := collectPairs(p.Val.Object, cfg, table)
			if err != nil {
				return nil, err
			}

			p.Val = value.NewObject(children, p.Val.Pos)
		}

		out = append(out, p)
	}

	return out, nil
}

func collectBlock(pairs []value.Pair, table *Table) error {
	for _, p := range pairs {
		id, lang, err := parseEntryName(p.Name)
		if err != nil {
			return err
		}

		byLang, ok := table.ByLang[lang]
		if !ok {
			byLang = map[string]value.Value{}
			table.ByLang[lang] = byLang
		}

		if _, dup := byLang[id]; dup {
			return fmt.Errorf("%w: %s/%s", ErrDuplicateID, lang, id)
		}

		byLang[id] = p.Val
	}

	return nil
}

// parseEntryName splits a 1- or 2-element array name into (id, lang).
// A 1-element name (variables) reports lang as ""; a plain text name is
// the natural TML spelling of the 1-element form, since a single token
// never parses as an array.
func parseEntryName(name value.Value) (id, lang string, err error) {
	if name.Tag == value.TagText {
		return name.Text, "", nil
	}

	if name.Tag != value.TagArray || len(name.Array) < 1 || len(name.Array) > 2 {
		return "", "", fmt.Errorf("%w: entry name must be text or a 1- or 2-element array", ErrMalformedName)
	}

	if name.Array[0].Tag != value.TagText {
		return "", "", fmt.Errorf("%w: id must be text", ErrMalformedName)
	}

	id = name.Array[0].Text

	if len(name.Array) == 2 {
		if name.Array[1].Tag != value.TagText {
			return "", "", fmt.Errorf("%w: language id must be text", ErrMalformedName)
		}

		lang = name.Array[1].Text
	}

	return id, lang, nil
}
