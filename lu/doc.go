// SPDX-License-Identifier: MIT

// Package lu factorizes dense square systems A = L·U by Gaussian
// elimination without pivoting and solves Ax = b through forward and
// backward substitution.
//
// 🚀 What does lu do?
//
//	Three composable stages, plus a one-call orchestrator:
//	  • Factorize    — A → (L, U): L unit-lower-triangular holding the
//	    elimination multipliers, U upper-triangular holding the reduced
//	    rows. O(n³).
//	  • ForwardSubstitute / BackwardSubstitute — the two O(n²) sweeps
//	    solving Ly = b and Ux = y; Solve composes them.
//	  • SolveSystem  — Factorize → Solve in one call, returning the
//	    solution together with the factorization.
//
// ⚠️ No pivoting — on purpose.
//
//	The elimination never exchanges rows. A pivot whose magnitude falls
//	below the threshold (DefaultPivotTol, overridable via Options)
//	reports a SingularError naming the failing position (k,k) instead
//	of being repaired. Matrices that a partially-pivoted algorithm
//	would handle — e.g. [[0,1],[1,1]] — fail here by design, so the
//	caller sees exactly which leading principal minor collapsed. This
//	is a documented limitation of the method, not a defect.
//
// ⚙️ Usage:
//
//	A, _ := matrix.FromRows([][]float64{{2, 1}, {1, 1}})
//	x, f, err := lu.SolveSystem(A, []float64{3, 2})
//	// x = [1 1]; f.L = [[1,0],[0.5,1]]; f.U = [[2,1],[0,0.5]]
//
// Every stage validates shape before any numeric work and propagates
// typed, errors.Is-checkable failures; no stage retries or recovers.
// All results are freshly allocated — the factors are never mutated by
// later calls, so concurrent solves over distinct inputs need no locks.
//
// See analysis for residual/error diagnostics over the returned triple.
package lu
