package postfix

import (
	"fmt"
	"strconv"
)

// fragment is a rendered sub-expression and the operator at its root
// (zero for a bare numeral).
type fragment struct {
	text string
	root Operator
}

// Render converts c to infix text using the numbers it refers to.
//
// Rules:
//   - "+" and "-" always produce "(left OP right)".
//   - "*" and "/" produce "left OP right" with no outer parentheses.
//   - the right operand of "/" is wrapped when it is itself a product or
//     quotient, since "a / b * c" would otherwise read as (a / b) * c.
//     This is the only parenthesis added beyond the "+"/"-" rule.
//
// The output is correct but not precedence-minimal; (2 + 2) + 20 still
// prints as "((2 + 2) + 20)".
//
// Errors are the same as Evaluate's, except division by zero is not
// detected: rendering never computes a value.
func Render(c Candidate, numbers [Operands]int64) (string, error) {
	if len(c) == 0 {
		return "", ErrEmptyExpression
	}

	stack := make([]fragment, 0, Operands)
	for i := 0; i < len(c); i++ {
		tok := c[i]
		if idx, ok := operandIndex(tok); ok {
			stack = append(stack, fragment{text: strconv.FormatInt(numbers[idx], 10)})
			continue
		}
		if !IsOperator(tok) {
			return "", fmt.Errorf("%w %q at %d", ErrUnknownToken, tok, i)
		}
		if len(stack) < 2 {
			return "", fmt.Errorf("%w at %d", ErrStackUnderflow, i)
		}

		right, left := stack[len(stack)-1], stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		stack = append(stack, join(Operator(tok), left, right))
	}

	if len(stack) != 1 {
		return "", ErrLeftoverOperands
	}

	return stack[0].text, nil
}

// join renders left op right.
func join(op Operator, left, right fragment) fragment {
	r := right.text
	switch op {
	case OpAdd, OpSub:
		return fragment{text: "(" + left.text + " " + op.String() + " " + r + ")", root: op}
	case OpDiv:
		if right.root == OpMul || right.root == OpDiv {
			r = "(" + r + ")"
		}
	}

	return fragment{text: left.text + " " + op.String() + " " + r, root: op}
}
