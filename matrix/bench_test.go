// Package matrix_test: benchmarks for the hot kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linsys/matrix"
)

// benchDense builds an n×n Dense with predictable non-zero values.
func benchDense(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			_ = m.Set(i, j, float64(i+j+1)) // deterministic fill
		}
	}

	return m
}

func benchmarkMul(b *testing.B, n int) {
	x := benchDense(b, n)
	y := benchDense(b, n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(x, y); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

func BenchmarkMul_8(b *testing.B)  { benchmarkMul(b, 8) }
func BenchmarkMul_64(b *testing.B) { benchmarkMul(b, 64) }

func benchmarkMatVec(b *testing.B, n int) {
	m := benchDense(b, n)
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i + 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.MatVec(m, x); err != nil {
			b.Fatalf("MatVec failed: %v", err)
		}
	}
}

func BenchmarkMatVec_8(b *testing.B)  { benchmarkMatVec(b, 8) }
func BenchmarkMatVec_64(b *testing.B) { benchmarkMatVec(b, 64) }
