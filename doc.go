// Package linsys solves dense linear systems Ax = b by LU factorization
// and reports solution-quality diagnostics for inspection.
//
// 🚀 What is linsys?
//
//	A compact, deterministic library for teaching-scale dense systems:
//	  • lu/       — LU factorization (no pivoting), forward/backward
//	    substitution, and a one-call orchestrator SolveSystem
//	  • analysis/ — residual and error norms, solution comparison,
//	    2-norm condition number, tolerance-based validation
//	  • matrix/   — the row-major Dense substrate: validators, sentinel
//	    errors, elementwise kernels, MatVec and a Jacobi eigensolver
//
// ✨ Why choose linsys?
//
//   - Deterministic by construction – fixed loop orders, no pivoting,
//     identical inputs always produce identical outputs
//   - Fail-fast contracts – every kernel validates shape before any
//     numeric work and returns errors.Is-checkable sentinels
//   - Pure Go – no cgo, no hidden deps, float64 throughout
//
// Quick example:
//
//	A := [][]float64{{2, 1}, {1, 1}}
//	b := []float64{3, 2}
//
//	m, _ := matrix.FromRows(A)
//	x, f, err := lu.SolveSystem(m, b)   // x = [1 1], f holds L and U
//
// The factorization deliberately performs no row pivoting: a zero or
// near-zero pivot reports lu.ErrSingular with the failing position
// instead of being repaired by row exchange. See lu's package docs for
// the exact policy and analysis for interpreting the result quality.
//
//	go get github.com/katalvlaran/linsys
package linsys
