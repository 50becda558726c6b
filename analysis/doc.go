// SPDX-License-Identifier: MIT

// Package analysis computes solution-quality diagnostics for dense
// linear systems: residual and error norms, calculated-vs-expected
// comparison, the 2-norm condition number, and tolerance-based
// validation of a candidate solution.
//
// The functions are independent and pure: each takes already-computed
// matrices/vectors, mutates nothing, and returns scalars or a small
// record created fresh per call. They are meant to always produce a
// reportable value on numerically well-formed input:
//
//   - RelativeResidualError returns the unnormalized residual norm when
//     ‖b‖ falls below NormFloor instead of dividing by near-zero.
//   - CompareSolutions applies the same floor to ‖expected‖.
//   - ConditionNumber returns +Inf when the spectrum cannot be computed
//     or the smallest singular value vanishes, never an error.
//
// Only structural misuse — nil inputs, dimension mismatches — yields an
// error, detected before any numeric work via the matrix validators.
//
// ⚙️ Usage, downstream of lu.SolveSystem:
//
//	x, f, _ := lu.SolveSystem(A, b)
//	eps, _ := analysis.RelativeResidualError(A, x, b) // ‖Ax−b‖/‖b‖
//	kappa, _ := analysis.ConditionNumber(A)           // κ₂(A)
//	v, _ := analysis.ValidateSolution(A, x, b, analysis.DefaultTolerance)
//	_ = f // factors available for display alongside the diagnostics
//
// The condition number is estimated the in-house way: κ₂(A) =
// √(λmax/λmin) of AᵀA via the matrix package's Jacobi eigensolver.
// Large values flag systems whose solutions are sensitive to small
// perturbations in A or b.
package analysis
