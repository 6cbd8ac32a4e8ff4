package interp

import (
	"fmt"

	"go.tmlkit.dev/tml/value"
)

// Eval evaluates an AST node produced by [Parse] (or built by hand) into
// a [value.Value].
func Eval(n Node) (value.Value, error) {
	switch t := n.(type) {
	case EmptyNode:
		return value.None(value.NoPosition), nil
	case ParseErrorNode:
		return value.Value{}, fmt.Errorf("%w: %s", ErrParse, t.Msg)
	case ValueLitNode:
		return t.Val, nil
	case PrefixNode:
		return evalPrefix(t)
	case BinaryNode:
		return evalBinary(t)
	case CallNode:
		return evalCall(t)
	case ConditionalNode:
		return value.Value{}, fmt.Errorf("%w: conditional evaluation", ErrNotImplemented)
	case PostfixNode:
		return value.Value{}, fmt.Errorf("%w: postfix evaluation", ErrNotImplemented)
	default:
		return value.Value{}, fmt.Errorf("%w: unrecognized node", ErrParse)
	}
}

func evalPrefix(n PrefixNode) (value.Value, error) {
	v, err := Eval(n.Right)
	if err != nil {
		return value.Value{}, err
	}

	if !v.IsNumeric() {
		return value.Value{}, fmt.Errorf("%w: prefix operator on non-numeric", ErrTypeMismatch)
	}

	if n.Op == TokPlus {
		return v, nil
	}

	if v.Tag == value.TagFloat {
		return value.NewFloat(-v.AsFloat(), value.NoPosition), nil
	}

	return value.NewInt(-v.AsInt(), v.Base, value.NoPosition), nil
}

func evalBinary(n BinaryNode) (value.Value, error) {
	l, err := Eval(n.Left)
	if err != nil {
		return value.Value{}, err
	}

	r, err := Eval(n.Right)
	if err != nil {
		return value.Value{}, err
	}

	if n.Op == TokPlus && (l.Tag == value.TagText || r.Tag == value.TagText) {
		return value.NewText(scalarText(l)+scalarText(r), false, value.NoPosition), nil
	}

	if !l.IsNumeric() || !r.IsNumeric() {
		return value.Value{}, fmt.Errorf("%w: binary operator requires numeric operands", ErrTypeMismatch)
	}

	bothInt := l.Tag != value.TagFloat && r.Tag != value.TagFloat
	base := commonBase(l, r)

	switch n.Op {
	case TokPlus:
		if bothInt {
			return value.NewInt(l.AsInt()+r.AsInt(), base, value.NoPosition), nil
		}

		return value.NewFloat(l.AsFloat()+r.AsFloat(), value.NoPosition), nil
	case TokMinus:
		if bothInt {
			return value.NewInt(l.AsInt()-r.AsInt(), base, value.NoPosition), nil
		}

		return value.NewFloat(l.AsFloat()-r.AsFloat(), value.NoPosition), nil
	case TokStar:
		if bothInt {
			return value.NewInt(l.AsInt()*r.AsInt(), base, value.NoPosition), nil
		}

		return value.NewFloat(l.AsFloat()*r.AsFloat(), value.NoPosition), nil
	case TokSlash:
		if bothInt {
			// Integer divide by zero is left to Go's own runtime panic:
			// the host environment reports it, not this evaluator.
			return value.NewInt(l.AsInt()/r.AsInt(), base, value.NoPosition), nil
		}

		return value.NewFloat(l.AsFloat()/r.AsFloat(), value.NoPosition), nil
	default:
		return value.Value{}, fmt.Errorf("%w: unknown binary operator", ErrParse)
	}
}

// commonBase is the Int+Int base-preservation rule: matching bases carry
// through, otherwise the result falls back to decimal.
func commonBase(l, r value.Value) value.Base {
	if l.Base == r.Base {
		return l.Base
	}

	return value.BaseDecimal
}
