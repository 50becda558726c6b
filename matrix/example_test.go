// Package matrix_test: runnable documentation examples.
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

// ExampleFromRows demonstrates ingestion plus a mat-vec product.
func ExampleFromRows() {
	a, _ := matrix.FromRows([][]float64{
		{2, 1},
		{1, 1},
	})

	y, _ := matrix.MatVec(a, []float64{1, 1})
	fmt.Println("A·x =", y)

	// Output:
	// A·x = [3 2]
}

// ExampleMul shows a plain matrix product with a fresh result.
func ExampleMul() {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]float64{{5, 6}, {7, 8}})

	c, _ := matrix.Mul(a, b)
	fmt.Print(c)

	// Output:
	// [19, 22]
	// [43, 50]
}
