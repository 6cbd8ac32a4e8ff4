package tml

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml/ast"
	yamlparser "github.com/goccy/go-yaml/parser"

	"go.tmlkit.dev/tml/value"
)

// ParseJSON parses a JSON document into the same tree shape a TML parse
// of equivalent content would produce: strings (keys included) become Text
// with parsed-with-quotes set, numbers are classified as Int or Float by
// their literal form, null becomes Null, true/false become Bool, arrays
// become Array, and objects become Object with key order preserved. Pair
// depths follow nesting, as they would in the equivalent TML source.
//
// JSON is a subset of YAML, so the conversion walks a YAML AST (which
// already distinguishes integer from float literals and preserves
// mapping order) rather than round-tripping through a Go map.
func ParseJSON(data []byte) (value.Value, error) {
	file, err := yamlparser.ParseBytes(data, 0)
	if err != nil {
		return value.Value{}, fmt.Errorf("tml: parsing json: %w", err)
	}

	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return value.NewObject(nil, value.NoPosition), nil
	}

	return nodeToValue(file.Docs[0].Body, 0)
}

// nodeToValue converts one AST node. depth is the indentation depth the
// node's pairs would carry in the equivalent TML source.
func nodeToValue(node ast.Node, depth int) (value.Value, error) {
	switch n := node.(type) {
	case *ast.MappingNode:
		return mappingToValue(n.Values, depth)
	case *ast.MappingValueNode:
		return mappingToValue([]*ast.MappingValueNode{n}, depth)
	case *ast.SequenceNode:
		elems := make([]value.Value, len(n.Values))

		for i, e := range n.Values {
			v, err := nodeToValue(e, depth+1)
			if err != nil {
				return value.Value{}, err
			}

			elems[i] = v
		}

		return value.NewArray(elems, value.NoPosition), nil
	case *ast.StringNode:
		return value.NewText(n.Value, true, value.NoPosition), nil
	case *ast.IntegerNode:
		i, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return value.Value{}, fmt.Errorf("tml: parsing json integer %q: %w", n.String(), err)
		}

		return value.NewInt(i, value.BaseDecimal, value.NoPosition), nil
	case *ast.FloatNode:
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return value.Value{}, fmt.Errorf("tml: parsing json float %q: %w", n.String(), err)
		}

		return value.NewFloat(f, value.NoPosition), nil
	case *ast.BoolNode:
		return value.NewBool(n.Value, value.NoPosition), nil
	case *ast.NullNode:
		return value.Null(value.NoPosition), nil
	default:
		return value.Value{}, fmt.Errorf("tml: unsupported json node %T", node)
	}
}

// mappingToValue converts mapping pairs to an Object, preserving source
// order.
func mappingToValue(values []*ast.MappingValueNode, depth int) (value.Value, error) {
	pairs := make([]value.Pair, len(values))

	for i, mvn := range values {
		name, err := nodeToValue(mvn.Key, depth)
		if err != nil {
			return value.Value{}, err
		}

		val, err := nodeToValue(mvn.Value, depth+1)
		if err != nil {
			return value.Value{}, err
		}

		pairs[i] = value.Pair{Name: name, Val: val, Depth: depth}
	}

	return value.NewObject(pairs, value.NoPosition), nil
}
