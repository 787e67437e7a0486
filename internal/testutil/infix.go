// Package testutil holds test oracles shared by the solve24 packages.
package testutil

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ErrDivisionByZero is returned by EvalInfix for a zero divisor.
var ErrDivisionByZero = errors.New("testutil: division by zero")

// EvalInfix evaluates an infix expression over + - * / and parentheses with
// standard precedence and left-to-right associativity, using math/big.Rat.
//
// A '-' directly followed by a digit where an operand is expected is a
// negative literal ("(-3 + 5)"); everywhere else it is subtraction.
//
// It is deliberately independent of the rational package so it can serve
// as an oracle for rendered expressions.
func EvalInfix(s string) (*big.Rat, error) {
	p := &infixParser{src: s}
	v, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("testutil: trailing input at %d in %q", p.pos, s)
	}

	return v, nil
}

// Numerals returns the integer literals of an infix expression in order of
// appearance, negative literals included.
func Numerals(s string) ([]int64, error) {
	p := &infixParser{src: s, collect: true}
	if _, err := p.expr(); err != nil {
		return nil, err
	}

	return p.numerals, nil
}

type infixParser struct {
	src      string
	pos      int
	collect  bool
	numerals []int64
}

func (p *infixParser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *infixParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}

	return p.src[p.pos]
}

func (p *infixParser) expr() (*big.Rat, error) {
	v, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return v, nil
		}
		p.pos++
		r, err := p.term()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			v = new(big.Rat).Add(v, r)
		} else {
			v = new(big.Rat).Sub(v, r)
		}
	}
}

func (p *infixParser) term() (*big.Rat, error) {
	v, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op != '*' && op != '/' {
			return v, nil
		}
		p.pos++
		r, err := p.factor()
		if err != nil {
			return nil, err
		}
		if op == '*' {
			v = new(big.Rat).Mul(v, r)
			continue
		}
		if r.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		v = new(big.Rat).Quo(v, r)
	}
}

func (p *infixParser) factor() (*big.Rat, error) {
	c := p.peek()
	if c == '(' {
		p.pos++
		v, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, fmt.Errorf("testutil: missing ')' at %d in %q", p.pos, p.src)
		}
		p.pos++

		return v, nil
	}

	start := p.pos
	if c == '-' {
		p.pos++
	}
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	lit := p.src[start:p.pos]
	n, err := strconv.ParseInt(strings.TrimSpace(lit), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("testutil: bad numeral %q at %d in %q", lit, start, p.src)
	}
	if p.collect {
		p.numerals = append(p.numerals, n)
	}

	return new(big.Rat).SetInt64(n), nil
}
