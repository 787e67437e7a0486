package solver

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/solve24/postfix"
)

// TrySolve returns one infix expression over numbers that evaluates to
// exactly 24, or ok == false when none exists.
func TrySolve(numbers [postfix.Operands]int64) (expr string, ok bool) {
	res, err := Solve(numbers)
	if err != nil {
		return "", false
	}

	return res.Expression, true
}

// Solve searches the shapes in order and returns the first candidate whose
// exact value equals the target.
//
// Returns ErrNoSolution when every candidate has been examined; the
// accompanying Result then carries Numbers, Target and Examined only.
func Solve(numbers [postfix.Operands]int64, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	target := big.NewInt(o.Target)
	res := &Result{Numbers: numbers, Target: o.Target}

	var found bool
	for _, shape := range postfix.Shapes() {
		before := res.Examined
		err := postfix.Walk(shape, func(c postfix.Candidate) bool {
			res.Examined++
			v, err := postfix.EvaluateInt(c, numbers)
			if err != nil || v.Cmp(target) != 0 {
				return true
			}
			res.Postfix, res.Shape, found = c, shape, true

			return false
		})
		if err != nil {
			return nil, fmt.Errorf("solver: shape %s: %w", shape, err)
		}
		o.Logger.Debug("shape searched",
			"shape", string(shape),
			"examined", res.Examined-before,
			"found", found,
		)
		if found {
			break
		}
	}

	if !found {
		o.Logger.Debug("no solution", "numbers", numbers, "target", o.Target, "examined", res.Examined)

		return res, ErrNoSolution
	}

	expr, err := postfix.Render(res.Postfix, numbers)
	if err != nil {
		return nil, fmt.Errorf("solver: render %s: %w", res.Postfix, err)
	}
	res.Expression = expr
	o.Logger.Debug("solution found", "postfix", string(res.Postfix), "expression", expr)

	return res, nil
}
