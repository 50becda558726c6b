// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered error
// conditions; panics are reserved for programmer errors in private
// helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to
// allow easy grepping across logs. Do not %w wrap these sentinels when
// returning directly; if context is essential, wrap once with
// fmt.Errorf("ctx: %w", ErrX) at the kernel boundary — callers still
// match via errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> finite policy -> dimension mismatch -> symmetry
// -> convergence.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (e.g., rows <= 0, cols <= 0, or ragged input rows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside
	// valid bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add/Sub on different shapes, Mul with a.Cols != b.Rows,
	// a non-square input where a square one is required, or a vector
	// whose length does not match the paired matrix dimension.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument)
	// or a nil vector was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value encountered where finite
	// values are required by the numeric policy (FromRows ingestion).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrAsymmetry signals that a matrix expected to be symmetric
	// violated symmetry within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrEigenFailed indicates that the Jacobi eigensolver failed to
	// converge under the given tolerance/iteration budget.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)
