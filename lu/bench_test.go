// Package lu_test: benchmarks for factorization and the full solve.
package lu_test

import (
	"testing"

	"github.com/katalvlaran/linsys/lu"
	"github.com/katalvlaran/linsys/matrix"
)

// benchSystem builds a diagonally dominant n×n system so elimination
// never trips the pivot guard.
func benchSystem(b *testing.B, n int) (*matrix.Dense, []float64) {
	b.Helper()
	rows := make([][]float64, n)
	rhs := make([]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j] = 1.0 / float64(i+j+1) // Hilbert-like off-diagonal decay
		}
		rows[i][i] += float64(n) // dominance keeps pivots healthy
		rhs[i] = float64(i + 1)
	}
	a, err := matrix.FromRows(rows)
	if err != nil {
		b.Fatalf("FromRows: %v", err)
	}

	return a, rhs
}

func benchmarkFactorize(b *testing.B, n int) {
	a, _ := benchSystem(b, n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := lu.Factorize(a); err != nil {
			b.Fatalf("Factorize failed: %v", err)
		}
	}
}

func BenchmarkFactorize_8(b *testing.B)  { benchmarkFactorize(b, 8) }
func BenchmarkFactorize_32(b *testing.B) { benchmarkFactorize(b, 32) }

func benchmarkSolveSystem(b *testing.B, n int) {
	a, rhs := benchSystem(b, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := lu.SolveSystem(a, rhs); err != nil {
			b.Fatalf("SolveSystem failed: %v", err)
		}
	}
}

func BenchmarkSolveSystem_8(b *testing.B)  { benchmarkSolveSystem(b, 8) }
func BenchmarkSolveSystem_32(b *testing.B) { benchmarkSolveSystem(b, 32) }

// benchmarkSolveOnly measures the O(n²) triangular stage in isolation,
// reusing one factorization across iterations.
func benchmarkSolveOnly(b *testing.B, n int) {
	a, rhs := benchSystem(b, n)
	f, err := lu.Factorize(a)
	if err != nil {
		b.Fatalf("Factorize: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = lu.Solve(f, rhs); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

func BenchmarkSolve_8(b *testing.B)  { benchmarkSolveOnly(b, 8) }
func BenchmarkSolve_32(b *testing.B) { benchmarkSolveOnly(b, 32) }
