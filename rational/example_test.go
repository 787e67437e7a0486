package rational_test

import (
	"fmt"

	"github.com/katalvlaran/solve24/rational"
)

// ExampleRational_Div evaluates 8 / (3 - 8/3) exactly.
// In float64 the same expression lands just below 24.
func ExampleRational_Div() {
	eight, three := rational.FromInt(8), rational.FromInt(3)

	eightThirds, err := eight.Div(three)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	inner := three.Sub(eightThirds)
	v, err := eight.Div(inner)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	n, err := v.EvaluateInt()
	fmt.Println(inner, v, n, err)
	// Output:
	// 1/3 24 24 <nil>
}

// ExampleRational_EvaluateInt shows that only the final value has to be
// integral: 1/5 is a fine intermediate, 24/5 is not a valid answer.
func ExampleRational_EvaluateInt() {
	fifth, _ := rational.FromInt(1).Div(rational.FromInt(5))
	v := rational.FromInt(5).Sub(fifth).Mul(rational.FromInt(5))

	n, err := v.EvaluateInt()
	fmt.Println(n, err)

	_, err = rational.FromInt(5).Sub(fifth).EvaluateInt()
	fmt.Println(err)
	// Output:
	// 24 <nil>
	// rational: value is not an integer
}
