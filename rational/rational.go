package rational

import (
	"math/big"
)

// FromInt returns v/1.
func FromInt(v int64) Rational {
	return Rational{num: big.NewInt(v), den: big.NewInt(1)}
}

// New returns num/den without reducing it.
// Returns ErrZeroDenominator if den == 0.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}

	return Rational{num: big.NewInt(num), den: big.NewInt(den)}, nil
}

// Add returns r + o.
//
// Equal denominators are kept as-is and only the numerators are summed;
// otherwise a/b + c/d = (a·d + c·b)/(b·d).
func (r Rational) Add(o Rational) Rational {
	a, b := r.parts()
	c, d := o.parts()

	if b.Cmp(d) == 0 {
		return Rational{
			num: new(big.Int).Add(a, c),
			den: new(big.Int).Set(b),
		}
	}

	ad := new(big.Int).Mul(a, d)
	cb := new(big.Int).Mul(c, b)

	return Rational{
		num: ad.Add(ad, cb),
		den: new(big.Int).Mul(b, d),
	}
}

// Sub returns r - o, with the same shared-denominator shortcut as Add.
func (r Rational) Sub(o Rational) Rational {
	a, b := r.parts()
	c, d := o.parts()

	if b.Cmp(d) == 0 {
		return Rational{
			num: new(big.Int).Sub(a, c),
			den: new(big.Int).Set(b),
		}
	}

	ad := new(big.Int).Mul(a, d)
	cb := new(big.Int).Mul(c, b)

	return Rational{
		num: ad.Sub(ad, cb),
		den: new(big.Int).Mul(b, d),
	}
}

// Mul returns r · o = (a·c)/(b·d).
func (r Rational) Mul(o Rational) Rational {
	a, b := r.parts()
	c, d := o.parts()

	return Rational{
		num: new(big.Int).Mul(a, c),
		den: new(big.Int).Mul(b, d),
	}
}

// Div returns r / o = (a·d)/(b·c).
// Returns ErrDivisionByZero iff o's numerator is zero; in that case no
// fraction with a zero denominator is ever built.
func (r Rational) Div(o Rational) (Rational, error) {
	if o.IsZero() {
		return Rational{}, ErrDivisionByZero
	}

	a, b := r.parts()
	c, d := o.parts()

	return Rational{
		num: new(big.Int).Mul(a, d),
		den: new(big.Int).Mul(b, c),
	}, nil
}

// IsZero reports whether the numerator is zero, whatever the denominator.
func (r Rational) IsZero() bool {
	num, _ := r.parts()

	return num.Sign() == 0
}

// EvaluateInt returns the integer value of r when the numerator is exactly
// divisible by the denominator, and ErrNotInteger otherwise.
func (r Rational) EvaluateInt() (*big.Int, error) {
	num, den := r.parts()

	q, m := new(big.Int).QuoRem(num, den, new(big.Int))
	if m.Sign() != 0 {
		return nil, ErrNotInteger
	}

	return q, nil
}

// Int64 is EvaluateInt narrowed to int64.
func (r Rational) Int64() (int64, error) {
	v, err := r.EvaluateInt()
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() {
		return 0, ErrOutOfRange
	}

	return v.Int64(), nil
}

// Simplify returns r reduced to lowest terms with a positive denominator.
// Zero simplifies to 0/1.
func (r Rational) Simplify() Rational {
	num, den := r.parts()
	if num.Sign() == 0 {
		return FromInt(0)
	}

	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), new(big.Int).Abs(den))
	n := new(big.Int).Quo(num, g)
	d := new(big.Int).Quo(den, g)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	return Rational{num: n, den: d}
}

// Num returns a copy of the numerator as stored (not reduced).
func (r Rational) Num() *big.Int {
	num, _ := r.parts()

	return new(big.Int).Set(num)
}

// Den returns a copy of the denominator as stored (not reduced).
func (r Rational) Den() *big.Int {
	_, den := r.parts()

	return new(big.Int).Set(den)
}

// Cmp compares r and o by value and returns -1, 0 or +1.
func (r Rational) Cmp(o Rational) int {
	a, b := r.parts()
	c, d := o.parts()

	// a/b ? c/d  <=>  a·d·sign(b·d) ? c·b·sign(b·d)
	lhs := new(big.Int).Mul(a, d)
	rhs := new(big.Int).Mul(c, b)
	if b.Sign()*d.Sign() < 0 {
		return rhs.Cmp(lhs)
	}

	return lhs.Cmp(rhs)
}

// Equal reports whether r and o denote the same value, e.g. 2/4 == -1/-2.
func (r Rational) Equal(o Rational) bool {
	return r.Cmp(o) == 0
}

// String formats the simplified value as "n" or "n/d".
func (r Rational) String() string {
	s := r.Simplify()
	if s.den.Cmp(bigOne) == 0 {
		return s.num.String()
	}

	return s.num.String() + "/" + s.den.String()
}
