package postfix

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/solve24/rational"
)

// Evaluate runs c as a stack machine over exact rationals. Operand token
// '1'..'4' pushes numbers[0..3]; an operator pops the right operand first,
// then the left one, and pushes left OP right.
//
// Errors (all describe a candidate to skip, not a fault):
//   - ErrEmptyExpression: c has no tokens.
//   - ErrUnknownToken: a token outside "1234+-*/".
//   - ErrStackUnderflow: an operator without two operands.
//   - ErrLeftoverOperands: more than one value remains at the end.
//   - rational.ErrDivisionByZero: a division by an exact zero.
func Evaluate(c Candidate, numbers [Operands]int64) (rational.Rational, error) {
	if len(c) == 0 {
		return rational.Rational{}, ErrEmptyExpression
	}

	stack := make([]rational.Rational, 0, Operands)
	for i := 0; i < len(c); i++ {
		tok := c[i]
		if idx, ok := operandIndex(tok); ok {
			stack = append(stack, rational.FromInt(numbers[idx]))
			continue
		}
		if !IsOperator(tok) {
			return rational.Rational{}, fmt.Errorf("%w %q at %d", ErrUnknownToken, tok, i)
		}
		if len(stack) < 2 {
			return rational.Rational{}, fmt.Errorf("%w at %d", ErrStackUnderflow, i)
		}

		right, left := stack[len(stack)-1], stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		v, err := apply(Operator(tok), left, right)
		if err != nil {
			return rational.Rational{}, fmt.Errorf("postfix: %q at %d: %w", tok, i, err)
		}
		stack = append(stack, v)
	}

	if len(stack) != 1 {
		return rational.Rational{}, ErrLeftoverOperands
	}

	return stack[0], nil
}

// EvaluateInt evaluates c and returns its value when that value is an exact
// integer. Intermediate fractions are fine; only the final value is checked.
// A fractional result yields rational.ErrNotInteger.
func EvaluateInt(c Candidate, numbers [Operands]int64) (*big.Int, error) {
	v, err := Evaluate(c, numbers)
	if err != nil {
		return nil, err
	}

	return v.EvaluateInt()
}

// apply computes left op right.
func apply(op Operator, left, right rational.Rational) (rational.Rational, error) {
	switch op {
	case OpAdd:
		return left.Add(right), nil
	case OpSub:
		return left.Sub(right), nil
	case OpMul:
		return left.Mul(right), nil
	case OpDiv:
		return left.Div(right)
	}

	return rational.Rational{}, ErrUnknownToken
}
