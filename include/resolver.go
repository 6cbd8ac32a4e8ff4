package include

import (
	"fmt"

	"go.tmlkit.dev/tml/value"
)

const maxDepth = 50

// OnceMarker selects what an include-once hit expands to, once the
// caller has opted into once mode.
type OnceMarker int

const (
	// OnceMarkerEmpty erases a repeated include entirely.
	OnceMarkerEmpty OnceMarker = iota
	// OnceMarkerEmptyRecord replaces a repeated include with one blank
	// line.
	OnceMarkerEmptyRecord
	// OnceMarkerComment replaces a repeated include with a comment
	// recording which file was skipped.
	OnceMarkerComment
)

// Config controls [Resolve]'s behavior.
type Config struct {
	// Once enables include-once mode: a second include of the same
	// absolute path expands to Marker instead of reloading the file.
	Once   bool
	Marker OnceMarker
	// Buffer caches each absolute path's resolved tree for the duration
	// of one Resolve call, so repeated includes of the same file in a
	// fixed-point include graph don't re-read and re-resolve it.
	Buffer bool
}

// resolver carries the state scoped to one top-level [Resolve] call.
type resolver struct {
	loader  Loader
	cfg     Config
	visited map[string]bool
	cache   map[string]value.Value
}

// Resolve expands every "include <path>" record in root, recursively, per
// cfg. root is expected to be a TagObject.
func Resolve(root value.Value, loader Loader, cfg Config) (value.Value, error) {
	r := &resolver{
		loader:  loader,
		cfg:     cfg,
		visited: map[string]bool{},
		cache:   map[string]value.Value{},
	}

	pairs, err := r.resolvePairs(root.Object)
	if err != nil {
		return value.Value{}, err
	}

	return value.NewObject(pairs, root.Pos), nil
}

func (r *resolver) resolvePairs(pairs []value.Pair) ([]value.Pair, error) {
	out := make([]value.Pair, 0, len(pairs))

	for _, p := range pairs {
		if isIncludePair(p) {
			expanded, err := r.expandInclude(p)
			if err != nil {
				return nil, err
			}

			out = append(out, expanded...)

			continue
		}

		if p.Val.Tag == value.TagObject {
			children, err := r.resolvePairs(p.Val.Object)
			if err != nil {
				return nil, err
			}

			p.Val = value.NewObject(children, p.Val.Pos)
		}

		out = append(out, p)
	}

	return out, nil
}

// isIncludePair reports whether p's name side is the two-element array
// ["include", <path>].
func isIncludePair(p value.Pair) bool {
	if p.Val.Tag != value.TagNone && p.Val.Tag != value.TagObject {
		return false
	}

	if p.Name.Tag != value.TagArray || len(p.Name.Array) != 2 {
		return false
	}

	head := p.Name.Array[0]

	return head.Tag == value.TagText && head.Text == "include"
}

func (r *resolver) expandInclude(p value.Pair) ([]value.Pair, error) {
	if r.loader.NestedDepth()+1 > maxDepth {
		return nil, ErrDepthExceeded
	}

	relPath := p.Name.Array[1].Text

	abs, err := r.loader.Resolve(relPath)
	if err != nil {
		return nil, err
	}

	if r.cfg.Once && r.visited[abs] {
		return r.onceMarker(abs, p), nil
	}

	r.visited[abs] = true

	tree, err := r.load(abs)
	if err != nil {
		return nil, err
	}

	if tree.Tag != value.TagObject {
		return nil, ErrNotAnObject
	}

	baseDepth := r.loader.NestedDepth()
	if p.Depth >= 0 {
		baseDepth = p.Depth
	}

	adjusted := adjustDepth(tree.Object, baseDepth)

	if p.Val.Tag == value.TagObject && len(p.Val.Object) > 0 {
		adjusted, err = graft(adjusted, p.Val.Object)
		if err != nil {
			return nil, err
		}
	}

	return adjusted, nil
}

// load returns the resolved tree for abs, consulting and populating the
// buffering cache when enabled.
func (r *resolver) load(abs string) (value.Value, error) {
	if r.cfg.Buffer {
		if cached, ok := r.cache[abs]; ok {
			return value.Clone(cached), nil
		}
	}

	raw, err := r.loader.LoadAndPush(abs)
	if err != nil {
		return value.Value{}, err
	}
	defer r.loader.Pop()

	children, err := r.resolvePairs(raw.Object)
	if err != nil {
		return value.Value{}, err
	}

	tree := value.NewObject(children, raw.Pos)

	if r.cfg.Buffer {
		r.cache[abs] = tree
		return value.Clone(tree), nil
	}

	return tree, nil
}

// graft attaches children onto the last pair of adjusted, which must have
// an empty value.
func graft(adjusted []value.Pair, children []value.Pair) ([]value.Pair, error) {
	if len(adjusted) == 0 {
		return nil, ErrGraftOntoEmptyDocument
	}

	last := adjusted[len(adjusted)-1]
	if last.Val.Tag != value.TagNone {
		return nil, ErrGraftTargetNotEmpty
	}

	grafted := adjustDepth(children, last.Depth+1)
	last.Val = value.NewObject(grafted, value.NoPosition)
	adjusted[len(adjusted)-1] = last

	return adjusted, nil
}

// adjustDepth adds add to every pair's depth, recursing into object
// children, except that an empty-line pair already at depth 0 is left at
// 0.
func adjustDepth(pairs []value.Pair, add int) []value.Pair {
	out := make([]value.Pair, len(pairs))

	for i, p := range pairs {
		newDepth := p.Depth + add
		if p.Shape() == value.ShapeEmpty && p.Depth == 0 {
			newDepth = 0
		}

		newVal := p.Val
		if newVal.Tag == value.TagObject {
			newVal = value.NewObject(adjustDepth(newVal.Object, add), newVal.Pos)
		}

		out[i] = value.Pair{Name: p.Name, Val: newVal, Depth: newDepth}
	}

	return out
}

func (r *resolver) onceMarker(abs string, p value.Pair) []value.Pair {
	switch r.cfg.Marker {
	case OnceMarkerEmptyRecord:
		return []value.Pair{{Name: value.None(value.NoPosition), Val: value.None(value.NoPosition), Depth: p.Depth}}
	case OnceMarkerComment:
		text := fmt.Sprintf(" %s is already included", abs)
		return []value.Pair{{Name: value.NewComment(text, value.NoPosition), Val: value.None(value.NoPosition), Depth: p.Depth}}
	default:
		return nil
	}
}
