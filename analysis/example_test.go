// Package analysis_test: runnable documentation examples.
package analysis_test

import (
	"fmt"

	"github.com/katalvlaran/linsys/analysis"
	"github.com/katalvlaran/linsys/lu"
	"github.com/katalvlaran/linsys/matrix"
)

// ExampleValidateSolution diagnoses a solution produced by the solver.
func ExampleValidateSolution() {
	a, _ := matrix.FromRows([][]float64{
		{2, 1},
		{1, 1},
	})
	b := []float64{3, 2}

	x, _, _ := lu.SolveSystem(a, b)

	v, _ := analysis.ValidateSolution(a, x, b, analysis.DefaultTolerance)
	fmt.Println("x =", x)
	fmt.Println("valid =", v.IsValid)
	fmt.Println("max residual =", v.MaxResidual)

	// Output:
	// x = [1 1]
	// valid = true
	// max residual = 0
}

// ExampleCompareSolutions measures a calculated solution against a
// known expectation.
func ExampleCompareSolutions() {
	cmp, _ := analysis.CompareSolutions([]float64{4, 4}, []float64{1, 0})

	fmt.Println("difference =", cmp.Difference)
	fmt.Println("absolute =", cmp.AbsoluteError)
	fmt.Println("max =", cmp.MaxError)

	// Output:
	// difference = [3 4]
	// absolute = 5
	// max = 4
}
