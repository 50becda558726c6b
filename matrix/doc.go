// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra substrate used by the
// lu and analysis packages: a row-major Dense matrix, strict fail-fast
// validators, sentinel errors, and deterministic float64 kernels.
//
// The package provides:
//
//   - Dense — a concrete row-major Matrix backed by a flat []float64,
//     built via NewDense, NewIdentity, or FromRows (which enforces the
//     finite-values ingestion policy: no NaN, no ±Inf).
//   - Elementwise and structural kernels: Add, Sub, Scale, Mul,
//     Transpose, MatVec, plus the vector helpers VecSub and VecMaxAbs.
//   - Eigen — a Jacobi eigensolver for symmetric matrices, used by
//     analysis.ConditionNumber to estimate the 2-norm condition number.
//
// Every kernel validates its inputs before any numeric work, never
// mutates operands, allocates a fresh result, and walks its loops in a
// fixed order so identical inputs always yield identical outputs. All
// failure modes are package-level sentinels checkable with errors.Is.
//
// Matrices here are small and dense (teaching scale); there is no
// sparse storage and no parallel execution inside a kernel.
//
// See the examples in this package and the lu package for usage.
package matrix
