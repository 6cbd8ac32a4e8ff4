package interp

import (
	"fmt"
	"math"

	"go.tmlkit.dev/tml/value"
)

// builtins is the fixed whitelist of callable functions. A call naming
// anything else is [ErrUnknownFunction].
var builtins = map[string]func([]value.Value) (value.Value, error){
	"abs":   builtinAbs,
	"bool":  builtinBool,
	"int":   builtinInt,
	"float": builtinFloat,
	"str":   builtinStr,
}

func evalCall(n CallNode) (value.Value, error) {
	fn, ok := builtins[n.Fn]
	if !ok {
		return value.Value{}, fmt.Errorf("%w: %s", ErrUnknownFunction, n.Fn)
	}

	args := make([]value.Value, len(n.Args))

	for i, a := range n.Args {
		v, err := Eval(a)
		if err != nil {
			return value.Value{}, err
		}

		args[i] = v
	}

	return fn(args)
}

func requireArgCount(name string, args []value.Value, want int) error {
	if len(args) != want {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrArgCount, name, want, len(args))
	}

	return nil
}

// builtinAbs returns the absolute value of a numeric argument, preserving
// its type and, for Int, its parse base.
func builtinAbs(args []value.Value) (value.Value, error) {
	if err := requireArgCount("abs", args, 1); err != nil {
		return value.Value{}, err
	}

	v := args[0]
	if !v.IsNumeric() {
		return value.Value{}, fmt.Errorf("%w: abs requires a numeric argument", ErrTypeMismatch)
	}

	if v.Tag == value.TagFloat {
		return value.NewFloat(math.Abs(v.AsFloat()), value.NoPosition), nil
	}

	n := v.AsInt()
	if n < 0 {
		n = -n
	}

	return value.NewInt(n, v.Base, value.NoPosition), nil
}

// builtinBool coerces its argument to Bool: Bool is identity, Int/Float
// are nonzero tests, Text is true only for the literal "true", and
// anything else is false.
func builtinBool(args []value.Value) (value.Value, error) {
	if err := requireArgCount("bool", args, 1); err != nil {
		return value.Value{}, err
	}

	v := args[0]

	switch v.Tag {
	case value.TagBool:
		return v, nil
	case value.TagInt, value.TagFloat:
		return value.NewBool(v.AsFloat() != 0, value.NoPosition), nil
	case value.TagText:
		return value.NewBool(v.Text == "true", value.NoPosition), nil
	default:
		return value.NewBool(false, value.NoPosition), nil
	}
}

// builtinInt coerces its argument to Int: Bool becomes 0/1 base 2, Int is
// identity, Float truncates to base 10, Text is not yet implemented, and
// anything else is 0.
func builtinInt(args []value.Value) (value.Value, error) {
	if err := requireArgCount("int", args, 1); err != nil {
		return value.Value{}, err
	}

	v := args[0]

	switch v.Tag {
	case value.TagBool:
		n := int64(0)
		if v.AsBool() {
			n = 1
		}

		return value.NewInt(n, value.BaseBinary, value.NoPosition), nil
	case value.TagInt:
		return v, nil
	case value.TagFloat:
		return value.NewInt(int64(v.AsFloat()), value.BaseDecimal, value.NoPosition), nil
	case value.TagText:
		return value.Value{}, fmt.Errorf("%w: int(text)", ErrNotImplemented)
	default:
		return value.NewInt(0, value.BaseDecimal, value.NoPosition), nil
	}
}

// builtinFloat is a reserved name: the evaluator does not implement it.
func builtinFloat(args []value.Value) (value.Value, error) {
	return value.Value{}, fmt.Errorf("%w: float()", ErrNotImplemented)
}

// builtinStr is a reserved name: the evaluator does not implement it.
func builtinStr(args []value.Value) (value.Value, error) {
	return value.Value{}, fmt.Errorf("%w: str()", ErrNotImplemented)
}
