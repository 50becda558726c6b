// SPDX-License-Identifier: MIT
// Package lu: sentinel error set.
// This file defines ONLY the package-level error surface of the solver.
// Stage kernels return these sentinels (wrapped once with an operation
// tag) and tests check them via errors.Is; the pivot position travels on
// SingularError and is recovered via errors.As. Shape violations reuse
// the matrix package sentinels (matrix.ErrDimensionMismatch et al.).

package lu

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is reported when a pivot magnitude falls below the
	// configured threshold during or after elimination: the matrix is
	// singular, or requires the pivoting this algorithm deliberately
	// does not perform. Concrete failures are SingularError values that
	// unwrap to this sentinel.
	ErrSingular = errors.New("lu: singular or ill-conditioned matrix")

	// ErrZeroDiagonal is reported by BackwardSubstitute on an exactly
	// zero U diagonal entry. Unreachable for factors produced by
	// Factorize (its pivot guard fires first); it exists for callers
	// who hand the solver an inconsistent L/U pair directly.
	ErrZeroDiagonal = errors.New("lu: zero diagonal entry")
)

// SingularError reports the pivot position (Row, Col) whose magnitude
// fell below the threshold. It unwraps to ErrSingular, so
// errors.Is(err, ErrSingular) matches and errors.As recovers the
// position for diagnostic display.
type SingularError struct {
	Row, Col int // failing pivot position on the diagonal (Row == Col)
}

// Error formats the failure with its pivot position.
func (e *SingularError) Error() string {
	return fmt.Sprintf("lu: singular or ill-conditioned matrix: zero pivot at position (%d,%d)", e.Row, e.Col)
}

// Unwrap ties the typed error to the ErrSingular sentinel.
func (e *SingularError) Unwrap() error { return ErrSingular }
