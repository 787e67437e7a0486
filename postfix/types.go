package postfix

import (
	"errors"
	"fmt"
)

// Operands is the number of operand tokens in every candidate.
const Operands = 4

var (
	// ErrInvalidShape indicates a skeleton that is not a 4-leaf postfix tree.
	ErrInvalidShape = errors.New("postfix: invalid shape")

	// ErrEmptyExpression indicates a candidate with no tokens.
	ErrEmptyExpression = errors.New("postfix: empty expression")

	// ErrStackUnderflow indicates an operator with fewer than two operands below it.
	ErrStackUnderflow = errors.New("postfix: stack underflow")

	// ErrLeftoverOperands indicates more than one value left on the stack.
	ErrLeftoverOperands = errors.New("postfix: leftover operands")

	// ErrUnknownToken indicates a byte that is neither an operand index nor an operator.
	ErrUnknownToken = errors.New("postfix: unknown token")
)

// Operator is a binary arithmetic operator token.
type Operator byte

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '/'
)

// String returns the operator symbol.
func (o Operator) String() string {
	return string([]byte{byte(o)})
}

// operators is the per-position generation order.
var operators = [...]Operator{OpAdd, OpSub, OpMul, OpDiv}

// Operators returns the four operators in generation order: + - * /.
func Operators() []Operator {
	return append([]Operator(nil), operators[:]...)
}

// IsOperator reports whether b is one of "+-*/".
func IsOperator(b byte) bool {
	switch Operator(b) {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	}

	return false
}

// operandIndex maps '1'..'4' to 0..3.
func operandIndex(b byte) (int, bool) {
	if b < '1' || b >= '1'+Operands {
		return 0, false
	}

	return int(b - '1'), true
}

// Candidate is a postfix token string over operand tokens '1'..'4' and
// operator tokens "+-*/".
type Candidate string

// Shape is a postfix skeleton: 'N' marks an operand slot, 'O' an operator slot.
type Shape string

const (
	// ShapeRightComb is a (b (c d)).
	ShapeRightComb Shape = "NNNNOOO"
	// ShapeLeftZigzag is (a (b c)) d.
	ShapeLeftZigzag Shape = "NNNOONO"
	// ShapeRightZigzag is a ((b c) d).
	ShapeRightZigzag Shape = "NNNONOO"
	// ShapeLeftComb is ((a b) c) d.
	ShapeLeftComb Shape = "NNONONO"
	// ShapeBalanced is (a b) (c d).
	ShapeBalanced Shape = "NNONNOO"
)

// shapes is the fixed search order. It decides which answer is reported
// when a hand has several.
var shapes = [...]Shape{
	ShapeRightComb,
	ShapeLeftZigzag,
	ShapeRightZigzag,
	ShapeLeftComb,
	ShapeBalanced,
}

// Shapes returns the five 4-leaf skeletons in search order.
func Shapes() []Shape {
	return append([]Shape(nil), shapes[:]...)
}

// Validate checks that s has Operands operand slots, Operands-1 operator
// slots, and never needs more operands than are already on the stack.
func (s Shape) Validate() error {
	if len(s) != 2*Operands-1 {
		return ErrInvalidShape
	}

	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'N':
			depth++
		case 'O':
			if depth < 2 {
				return ErrInvalidShape
			}
			depth--
		default:
			return ErrInvalidShape
		}
	}
	if depth != 1 {
		return ErrInvalidShape
	}

	return nil
}

// Validate checks that c is a well-formed candidate: each operand token
// '1'..'4' exactly once, Operands-1 operators, and no stack underflow.
func (c Candidate) Validate() error {
	if len(c) == 0 {
		return ErrEmptyExpression
	}

	var seen [Operands]bool
	depth := 0
	for i := 0; i < len(c); i++ {
		tok := c[i]
		if idx, ok := operandIndex(tok); ok {
			if seen[idx] {
				return fmt.Errorf("postfix: operand %q repeated at %d", tok, i)
			}
			seen[idx] = true
			depth++
			continue
		}
		if !IsOperator(tok) {
			return fmt.Errorf("%w %q at %d", ErrUnknownToken, tok, i)
		}
		if depth < 2 {
			return fmt.Errorf("%w at %d", ErrStackUnderflow, i)
		}
		depth--
	}
	for idx, ok := range seen {
		if !ok {
			return fmt.Errorf("postfix: operand %q missing", byte('1'+idx))
		}
	}
	if depth != 1 {
		return ErrLeftoverOperands
	}

	return nil
}

// Shape returns the N/O skeleton of c.
func (c Candidate) Shape() Shape {
	out := make([]byte, len(c))
	for i := 0; i < len(c); i++ {
		if IsOperator(c[i]) {
			out[i] = 'O'
		} else {
			out[i] = 'N'
		}
	}

	return Shape(out)
}
