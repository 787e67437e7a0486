// Package solve24 finds arithmetic expressions for the "24 game": given
// four integers, combine each exactly once with + - * / and parentheses so
// the result is exactly 24.
//
// 🚀 What is inside?
//
//	rational/     exact fractions over math/big, no overflow, no rounding
//	postfix/      the five postfix shapes, candidate generation, stack
//	              evaluation and infix rendering
//	solver/       TrySolve / Solve: first match in generation order
//	cmd/solve24/  command-line front end (solve, batch, history)
//
// ✨ Guarantees
//
//   - Exact: intermediate fractions such as 8/3 are kept exactly, so
//     8 / (3 - 8 / 3) is found and 24.000001 never passes.
//   - Deterministic: the same hand always yields the same answer.
//   - Honest output: the rendered text, read with ordinary precedence,
//     has the value that was checked.
//
// Quick example:
//
//	expr, ok := solver.TrySolve([4]int64{5, 5, 5, 1})
//	// "5 * (5 - 1 / 5)", true
//
//	go install github.com/katalvlaran/solve24/cmd/solve24@latest
package solve24
