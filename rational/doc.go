// Package rational implements exact fractions for the 24 search.
//
// 🚀 Why exact fractions?
//
//	Floating point cannot reliably tell "exactly 24" apart from "almost 24"
//	once division is chained: 8 / (3 - 8/3) is 24, but in float64 it is
//	23.999999999999996. A Rational keeps numerator and denominator as
//	arbitrary-precision integers, so every value reached by the search is
//	exact and no input magnitude can silently wrap.
//
// ✨ Key features:
//   - immutable value type; the zero value is 0/1
//   - Add / Sub / Mul never fail; Div reports ErrDivisionByZero
//   - no reduction on the hot path; Simplify is an explicit, cosmetic step
//   - EvaluateInt extracts the integer value only when it is exact
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/solve24/rational"
//
//	eightThirds, _ := rational.FromInt(8).Div(rational.FromInt(3))
//	inner := rational.FromInt(3).Sub(eightThirds)  // 1/3
//	v, err := rational.FromInt(8).Div(inner) // 24/1
//	n, err := v.EvaluateInt()                // 24
//
// Errors:
//   - ErrZeroDenominator: New called with a zero denominator.
//   - ErrDivisionByZero: Div called with a zero divisor.
//   - ErrNotInteger: EvaluateInt / Int64 on a non-integral value.
//   - ErrOutOfRange: Int64 on an integer that does not fit in int64.
package rational
