package tmpl

import (
	"fmt"
	"strings"

	"go.tmlkit.dev/tml/value"
)

const (
	useTemplateKeyword = "use-template"
	maxDepth           = 50
)

// Expand replaces every use-template reference in root with a parameter-
// substituted copy of the named template's body, recursing into emitted
// pairs up to a fixed depth and failing on cyclic template references.
func Expand(root value.Value, templates map[string]*Template) (value.Value, error) {
	e := &expander{templates: templates}

	pairs, err := e.expandPairs(root.Object)
	if err != nil {
		return value.Value{}, err
	}

	return value.NewObject(pairs, root.Pos), nil
}

type expander struct {
	templates map[string]*Template
	stack     []string
}

func (e *expander) expandPairs(pairs []value.Pair) ([]value.Pair, error) {
	out := make([]value.Pair, 0, len(pairs))

	for _, p := range pairs {
		if isUseTemplateArray(p.Name) {
			if p.Val.Tag != value.TagNone {
				return nil, ErrTemplateGraftUnsupported
			}

			expanded, err := e.expandSite(p.Name, p.Depth)
			if err != nil {
				return nil, err
			}

			out = append(out, expanded...)

			continue
		}

		newName, err := e.substituteValue(p.Name)
		if err != nil {
			return nil, err
		}

		var newVal value.Value

		if p.Val.Tag == value.TagObject {
			children, err := e.expandPairs(p.Val.Object)
			if err != nil {
				return nil, err
			}

			newVal = value.NewObject(children, p.Val.Pos)
		} else {
			newVal, err = e.substituteValue(p.Val)
			if err != nil {
				return nil, err
			}
		}

		out = append(out, value.Pair{Name: newName, Val: newVal, Depth: p.Depth})
	}

	return out, nil
}

// substituteValue recurses into v looking for use-template references
// used as a sub-expression ("simple replacement"): each must resolve to
// exactly one scalar pair, whose name replaces the reference in place.
func (e *expander) substituteValue(v value.Value) (value.Value, error) {
	switch v.Tag {
	case value.TagArray:
		if isUseTemplateArray(v) {
			return e.expandSimple(v)
		}

		elems := make([]value.Value, len(v.Array))

		for i, el := range v.Array {
			nv, err := e.substituteValue(el)
			if err != nil {
				return value.Value{}, err
			}

			elems[i] = nv
		}

		return value.NewArray(elems, v.Pos), nil
	case value.TagObject:
		pairs, err := e.expandPairs(v.Object)
		if err != nil {
			return value.Value{}, err
		}

		return value.NewObject(pairs, v.Pos), nil
	default:
		return v, nil
	}
}

func (e *expander) expandSimple(use value.Value) (value.Value, error) {
	pairs, err := e.expandSite(use, -1)
	if err != nil {
		return value.Value{}, err
	}

	if len(pairs) != 1 {
		return value.Value{}, fmt.Errorf("%w: expanded to %d pairs", ErrSimpleReplacementShape, len(pairs))
	}

	p := pairs[0]
	if p.Val.Tag != value.TagNone || p.Name.Tag == value.TagObject {
		return value.Value{}, ErrSimpleReplacementShape
	}

	return p.Name, nil
}

// expandSite resolves use (a use-template array) against the template
// set, binds arguments to parameters, applies depth adjustment relative
// to siteDepth (skipped if siteDepth < 0), and recursively re-expands the
// result for further use-template references.
func (e *expander) expandSite(use value.Value, siteDepth int) ([]value.Pair, error) {
	name, args, err := parseUseSite(use)
	if err != nil {
		return nil, err
	}

	if len(e.stack) >= maxDepth {
		return nil, ErrDepthExceeded
	}

	for _, seen := range e.stack {
		if seen == name {
			return nil, fmt.Errorf("%w: %s", ErrCycle, strings.Join(append(append([]string{}, e.stack...), name), " -> "))
		}
	}

	t, ok := e.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}

	if len(args) != len(t.Params) {
		return nil, fmt.Errorf("%w: %s wants %d, got %d", ErrArgCount, name, len(t.Params), len(args))
	}

	// A body may reference a parameter by its bare name or with a leading
	// "$", so "parameters = k v" binds both "k" and "$k".
	bindings := make(map[string]value.Value, 2*len(t.Params))
	for i, pname := range t.Params {
		bindings[pname] = args[i]

		if !strings.HasPrefix(pname, "$") {
			bindings["$"+pname] = args[i]
		}
	}

	body := substituteParams(t.Body, bindings)

	if siteDepth >= 0 {
		body = adjustDepth(body, siteDepth-templateBaseDepth(t.Body))
	}

	e.stack = append(e.stack, name)
	expanded, err := e.expandPairs(body)
	e.stack = e.stack[:len(e.stack)-1]

	if err != nil {
		return nil, err
	}

	return expanded, nil
}

func parseUseSite(use value.Value) (string, []value.Value, error) {
	if len(use.Array) < 2 {
		return "", nil, fmt.Errorf("%w: use-template site needs a template name", ErrMalformedDefinition)
	}

	nameVal := use.Array[1]
	if nameVal.Tag != value.TagText {
		return "", nil, fmt.Errorf("%w: use-template name must be text", ErrMalformedDefinition)
	}

	return nameVal.Text, use.Array[2:], nil
}

func isUseTemplateArray(v value.Value) bool {
	if v.Tag != value.TagArray || len(v.Array) < 2 {
		return false
	}

	head := v.Array[0]

	return head.Tag == value.TagText && head.Text == useTemplateKeyword
}

// templateBaseDepth is the depth the template body was authored at: the
// first body pair's stored depth, or 0 for an empty body or one built
// programmatically (undefined depth).
func templateBaseDepth(body []value.Pair) int {
	if len(body) == 0 || body[0].Depth < 0 {
		return 0
	}

	return body[0].Depth
}

func substituteParams(pairs []value.Pair, bindings map[string]value.Value) []value.Pair {
	out := make([]value.Pair, len(pairs))

	for i, p := range pairs {
		out[i] = value.Pair{
			Name:  substituteParamsValue(p.Name, bindings),
			Val:   substituteParamsValue(p.Val, bindings),
			Depth: p.Depth,
		}
	}

	return out
}

func substituteParamsValue(v value.Value, bindings map[string]value.Value) value.Value {
	switch v.Tag {
	case value.TagText:
		if arg, ok := bindings[v.Text]; ok {
			return arg
		}

		return v
	case value.TagArray:
		elems := make([]value.Value, len(v.Array))
		for i, e := range v.Array {
			elems[i] = substituteParamsValue(e, bindings)
		}

		return value.NewArray(elems, v.Pos)
	case value.TagObject:
		return value.NewObject(substituteParams(v.Object, bindings), v.Pos)
	default:
		return v
	}
}

// adjustDepth adds shift to every pair's stored depth, recursing into
// object children. Pairs with undefined (-1) depth are left alone.
func adjustDepth(pairs []value.Pair, shift int) []value.Pair {
	out := make([]value.Pair, len(pairs))

	for i, p := range pairs {
		newDepth := p.Depth
		if newDepth >= 0 {
			newDepth += shift
		}

		newVal := p.Val
		if newVal.Tag == value.TagObject {
			newVal = value.NewObject(adjustDepth(newVal.Object, shift), newVal.Pos)
		}

		out[i] = value.Pair{Name: p.Name, Val: newVal, Depth: newDepth}
	}

	return out
}
