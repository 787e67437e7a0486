// Package solver finds an arithmetic expression over four integers that
// evaluates to exactly 24 (the "24 game").
//
// 🚀 How the search works:
//
//  1. For each of the five postfix shapes, in a fixed order,
//  2. walk every candidate (4! operand orders × 4³ operators),
//  3. evaluate it exactly with rational arithmetic,
//  4. stop at the first candidate whose value is exactly the target and
//     render it as infix text.
//
// Candidates that divide by zero, end on a fraction, or are otherwise
// unusable are skipped. The answer is "the first match in generation
// order", which makes results deterministic; it is not the shortest or
// nicest expression, and only one answer is ever reported.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/solve24/solver"
//
//	expr, ok := solver.TrySolve([4]int64{5, 5, 5, 1})
//	// expr == "5 * (5 - 1 / 5)", ok == true
//
//	res, err := solver.Solve(nums, solver.WithTarget(10), solver.WithLogger(logger))
//	if errors.Is(err, solver.ErrNoSolution) { ... }
//
// Complexity:
//
//   - Time:   O(5 · 1536) candidate evaluations in the worst case.
//   - Memory: O(1) per candidate; nothing is materialised per shape.
package solver
