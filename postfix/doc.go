// Package postfix enumerates, evaluates and renders the postfix (Reverse
// Polish) candidates of the 24 search.
//
// 🚀 What is a candidate?
//
//	A Candidate is a 7-token string: four operand tokens '1'..'4', each
//	naming a position in the input numbers exactly once, and three operators
//	from "+-*/". "142/-3*" over [5 5 5 1] reads
//
//	    push 5, push 1, push 5, divide, subtract, push 5, multiply
//
//	and evaluates to (5 - 1/5) · 5 = 24.
//
// ✨ Shapes:
//
//	A Shape is the N/O skeleton of a candidate ("N" operand, "O" operator).
//	Four leaves and three binary nodes give exactly five postfix skeletons:
//
//	    NNNNOOO   a (b (c d))        NNONONO   ((a b) c) d
//	    NNNOONO   (a (b c)) d        NNONNOO   (a b) (c d)
//	    NNNONOO   a ((b c) d)
//
//	Each shape expands to 4! operand orders × 4³ operator choices = 1536
//	candidates, enumerated in lexicographic token order.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/solve24/postfix"
//
//	err := postfix.Walk(postfix.ShapeRightComb, func(c postfix.Candidate) bool {
//	    v, err := postfix.EvaluateInt(c, numbers)
//	    ...
//	    return true // keep going
//	})
//	text, err := postfix.Render("142/-3*", [4]int64{5, 5, 5, 1}) // "(5 - 1 / 5) * 5"
//
// Evaluation runs over rational.Rational, so intermediate fractions are exact.
// Every failure is an ordinary error: a malformed candidate or a division by
// zero is something the search skips, never a panic.
//
// Complexity:
//
//   - Generate: O(1536) candidates per shape, recursion depth 7.
//   - Evaluate / Render: O(len(candidate)), stack depth ≤ 4.
package postfix
