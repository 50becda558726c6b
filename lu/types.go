// SPDX-License-Identifier: MIT
// Package lu: options and result types for the factorization pipeline.

package lu

import "github.com/katalvlaran/linsys/matrix"

// DefaultPivotTol is the zero-pivot threshold ε: a pivot with
// |U[k][k]| < ε aborts elimination with a SingularError.
//
// The threshold is absolute, not scaled by the magnitude of A's entries.
// Callers who want a relative policy can compute their own bound and
// pass it via Options.
const DefaultPivotTol = 1e-10

// MinDimension is the smallest system size the factorizer accepts.
// A 1×1 "system" has no elimination step and is out of scope for this
// pipeline.
const MinDimension = 2

// Options configures the factorizer.
//
// Fields:
//   - PivotTol — zero-pivot threshold ε (see DefaultPivotTol).
//     Non-positive or non-finite values fall back to the default.
//
// Example:
//
//	opts := lu.DefaultOptions()
//	opts.PivotTol = 1e-8 // stricter singularity screening
//	f, err := lu.FactorizeWith(A, opts)
type Options struct {
	PivotTol float64
}

// DefaultOptions returns the canonical configuration: PivotTol = DefaultPivotTol.
func DefaultOptions() Options {
	return Options{PivotTol: DefaultPivotTol}
}

// Factorization is the immutable result of a successful Factorize call:
// A = L·U with L unit-lower-triangular (strictly-lower entries are the
// elimination multipliers) and U upper-triangular (diagonal holds the
// pivots). Both factors are freshly allocated Dense matrices owned by
// the result; no lu or analysis routine mutates them after creation.
// Treat them as read-only.
type Factorization struct {
	L *matrix.Dense // unit lower triangular factor
	U *matrix.Dense // upper triangular factor
}

// Dim returns the system dimension n shared by both factors.
// Complexity: O(1).
func (f *Factorization) Dim() int {
	return f.L.Rows()
}
