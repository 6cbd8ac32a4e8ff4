package tmpl

import (
	"fmt"

	"go.tmlkit.dev/tml/value"
)

// Template is a collected template definition: a name, a parameter list
// (argument names, in declaration order), and the body pairs to copy and
// substitute at each use site.
type Template struct {
	Name   string
	Params []string
	Body   []value.Pair
}

// CollectOptions controls [Collect]'s behavior.
type CollectOptions struct {
	// Remove deletes each "template" entry from the returned tree once
	// it has been recorded.
	Remove bool
	// Recursive scans nested objects for template definitions, not just
	// root's immediate children.
	Recursive bool
}

// Collect scans root (a TagObject) for "template" entries, parses each
// into a [Template], and returns the template set keyed by name alongside
// the tree with those entries optionally removed. Duplicate template
// names are an error.
func Collect(root value.Value, opts CollectOptions) (map[string]*Template, value.Value, error) {
	templates := map[string]*Template{}

	pairs, err := collectPairs(root.Object, opts, templates)
	if err != nil {
		return nil, value.Value{}, err
	}

	return templates, value.NewObject(pairs, root.Pos), nil
}

func collectPairs(pairs []value.Pair, opts CollectOptions, templates map[string]*Template) ([]value.Pair, error) {
	out := make([]value.Pair, 0, len(pairs))

	for _, p := range pairs {
		if p.Name.Tag == value.TagText && p.Name.Text == "template" && p.Val.Tag == value.TagObject {
			t, err := parseTemplate(p.Val)
			if err != nil {
				return nil, err
			}

			if _, dup := templates[t.Name]; dup {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateName, t.Name)
			}

			templates[t.Name] = t

			if opts.Remove {
				continue
			}

			out = append(out, p)

			continue
		}

		if opts.Recursive && p.Val.Tag == value.TagObject {
			children, err := collectPairs(p.Val.Object, opts, templates)
			if err != nil {
				return nil, err
			}

			p.Val = value.NewObject(children, p.Val.Pos)
		}

		out = append(out, p)
	}

	return out, nil
}

// parseTemplate extracts name, parameters, and body from a "template"
// entry's object value. Any pair other than "name"/"parameters" becomes
// part of the body, in the order given.
func parseTemplate(body value.Value) (*Template, error) {
	t := &Template{}

	var nameSet, paramsSet bool

	rest := make([]value.Pair, 0, len(body.Object))

	for _, p := range body.Object {
		if p.Name.Tag != value.TagText {
			rest = append(rest, p)
			continue
		}

		switch p.Name.Text {
		case "name":
			if p.Val.Tag != value.TagText {
				return nil, fmt.Errorf("%w: name must be text", ErrMalformedDefinition)
			}

			t.Name = p.Val.Text
			nameSet = true
		case "parameters":
			params, err := parseParameters(p.Val)
			if err != nil {
				return nil, err
			}

			t.Params = params
			paramsSet = true
		default:
			rest = append(rest, p)
		}
	}

	if !nameSet {
		return nil, fmt.Errorf("%w: missing name", ErrMalformedDefinition)
	}

	if !paramsSet {
		return nil, fmt.Errorf("%w: missing parameters", ErrMalformedDefinition)
	}

	t.Body = rest

	return t, nil
}

func parseParameters(v value.Value) ([]string, error) {
	switch v.Tag {
	case value.TagText:
		if v.Text == "none" {
			return nil, nil
		}

		return []string{v.Text}, nil
	case value.TagArray:
		params := make([]string, len(v.Array))

		for i, e := range v.Array {
			if e.Tag != value.TagText {
				return nil, fmt.Errorf("%w: parameter name must be text", ErrMalformedDefinition)
			}

			params[i] = e.Text
		}

		return params, nil
	default:
		return nil, fmt.Errorf("%w: parameters must be text, array, or \"none\"", ErrMalformedDefinition)
	}
}
