package core

import (
	"fmt"
	"math"

	"tapebox/pkg/tape"
)

type Operation string

// Arithmetic operations available to expression evaluation
const (
	OpAdd Operation = "+"
	OpSub Operation = "-"
	OpMul Operation = "*"
	OpDiv Operation = "/"
	OpMod Operation = "%"
)

func Add(a, b tape.Value) (tape.Value, error) { return Eval(OpAdd, a, b) }
func Sub(a, b tape.Value) (tape.Value, error) { return Eval(OpSub, a, b) }
func Mul(a, b tape.Value) (tape.Value, error) { return Eval(OpMul, a, b) }
func Div(a, b tape.Value) (tape.Value, error) { return Eval(OpDiv, a, b) }
func Mod(a, b tape.Value) (tape.Value, error) { return Eval(OpMod, a, b) }

// Eval applies a binary arithmetic operation.
// Integral operands give an int result, anything else is computed in float64.
// Adding two strings that are not numbers concatenates them.
func Eval(op Operation, a, b tape.Value) (tape.Value, error) {
	if op == OpAdd && a.Kind == tape.KindString && b.Kind == tape.KindString {
		_, errA := a.AsFloat64()
		_, errB := b.AsFloat64()
		if errA != nil || errB != nil {
			return tape.NewString(a.Str + b.Str), nil
		}
	}

	if a.IsIntegral() && b.IsIntegral() {
		ai, err := a.AsInt64()
		if err != nil {
			return tape.Value{}, err
		}
		bi, err := b.AsInt64()
		if err != nil {
			return tape.Value{}, err
		}
		return evalInt(op, ai, bi)
	}

	af, err := a.AsFloat64()
	if err != nil {
		return tape.Value{}, err
	}
	bf, err := b.AsFloat64()
	if err != nil {
		return tape.Value{}, err
	}
	return evalFloat(op, af, bf)
}

func evalInt(op Operation, a, b int64) (tape.Value, error) {
	switch op {
	case OpAdd:
		return tape.NewInt(a + b), nil
	case OpSub:
		return tape.NewInt(a - b), nil
	case OpMul:
		return tape.NewInt(a * b), nil
	case OpDiv:
		// integer division (signed)
		if b == 0 {
			return tape.Value{}, ErrDivisionByZero
		}
		return tape.NewInt(a / b), nil
	case OpMod:
		if b == 0 {
			return tape.Value{}, fmt.Errorf("%w: modulo", ErrDivisionByZero)
		}
		return tape.NewInt(a % b), nil
	}
	return tape.Value{}, fmt.Errorf("unsupported binary op: %s", op)
}

func evalFloat(op Operation, a, b float64) (tape.Value, error) {
	switch op {
	case OpAdd:
		return tape.NewFloat(a + b), nil
	case OpSub:
		return tape.NewFloat(a - b), nil
	case OpMul:
		return tape.NewFloat(a * b), nil
	case OpDiv:
		if b == 0 {
			return tape.Value{}, ErrDivisionByZero
		}
		return tape.NewFloat(a / b), nil
	case OpMod:
		if b == 0 {
			return tape.Value{}, fmt.Errorf("%w: modulo", ErrDivisionByZero)
		}
		return tape.NewFloat(math.Mod(a, b)), nil
	}
	return tape.Value{}, fmt.Errorf("unsupported binary op: %s", op)
}
