package simplex_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlp/problem"
	"github.com/katalvlaran/lvlp/simplex"
)

// ExampleSolver solves the built-in feed dataset and prints the report.
func ExampleSolver() {
	s, err := simplex.New(
		[]float64{20, 16, 12, 8},
		[]float64{10, 12, 15, 8, 9},
		problem.Default(),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if err = s.Solve(); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(s)
	// Output:
	// 20 F1
	// 16 F2
	// 12 F3
	// 8 F4
	//
	// oatmeal: 2.67 units at 10 /unit
	// wheat: 6.67 units at 12 /unit
	// corn: 2.67 units at 15 /unit
	// barley: 0 units at 8 /unit
	// soy: 0 units at 9 /unit
	// total production value: 146.67
}

// ExampleNew_dimensionMismatch shows the construction-time shape check.
func ExampleNew_dimensionMismatch() {
	_, err := simplex.New([]float64{1, 2}, []float64{1, 2, 3, 4, 5}, problem.Default())
	fmt.Println(errors.Is(err, simplex.ErrDimensionMismatch))
	// Output:
	// true
}

// ExampleWithPivotRule compares pivot counts of the two rules.
func ExampleWithPivotRule() {
	for _, rule := range []simplex.PivotRule{simplex.Dantzig, simplex.Bland} {
		s, err := simplex.New(
			[]float64{10, 20, 30, 40},
			[]float64{1, 2, 3, 4, 5},
			problem.Default(),
			simplex.WithPivotRule(rule),
		)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		if err = s.Solve(); err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%s: %d pivots, total %.2f\n", rule, s.Iterations(), s.TotalValue())
	}
	// Output:
	// dantzig: 3 pivots, total 107.50
	// bland: 6 pivots, total 107.50
}
