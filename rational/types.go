package rational

import (
	"errors"
	"math/big"
)

var (
	// ErrZeroDenominator indicates an attempt to build a fraction over zero.
	ErrZeroDenominator = errors.New("rational: denominator must be nonzero")

	// ErrDivisionByZero indicates Div was called with a zero divisor.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrNotInteger indicates the numerator is not divisible by the denominator.
	ErrNotInteger = errors.New("rational: value is not an integer")

	// ErrOutOfRange indicates an integral value that does not fit in int64.
	ErrOutOfRange = errors.New("rational: value out of int64 range")
)

// Rational is an exact fraction num/den.
//
// Values are immutable: every operation allocates fresh big.Int storage and
// never touches its receiver or arguments, so a Rational may be copied and
// shared freely. The denominator is never zero; its sign is unconstrained
// until Simplify moves it into the numerator.
//
// The zero value is 0/1.
type Rational struct {
	num *big.Int
	den *big.Int
}

var bigOne = big.NewInt(1)

// parts returns the numerator and denominator, substituting 0/1 for the
// zero value. The returned pointers must not be mutated.
func (r Rational) parts() (num, den *big.Int) {
	num, den = r.num, r.den
	if num == nil {
		num = new(big.Int)
	}
	if den == nil {
		den = bigOne
	}

	return num, den
}
