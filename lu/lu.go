// SPDX-License-Identifier: MIT
// Package lu: factorization and triangular-solve kernels.
//
// Purpose:
//   - Factorize A = L·U by Gaussian elimination without pivoting.
//   - Solve Ly = b (forward) and Ux = y (backward) in O(n²) each.
//   - SolveSystem composes the stages into the single external entry point.
//
// Notes:
//   - All kernels use the matrix package validators and return plain
//     sentinels wrapped once via luErrorf at the kernel boundary.
//   - SolveSystem propagates stage errors unchanged: no re-wrapping,
//     no retry, no recovery.

package lu

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsys/matrix"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opFactorize = "Factorize"
	opForward   = "ForwardSubstitute"
	opBackward  = "BackwardSubstitute"
	opSolve     = "Solve"
)

// luErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As keep matching. Call only with err != nil.
func luErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseCopy materializes m into a fresh *Dense, fast-copying when m
// already is one and falling back to At otherwise.
// Complexity: O(n²).
func denseCopy(m matrix.Matrix) (*matrix.Dense, error) {
	// Fast-path: Clone preserves the concrete *Dense type.
	if d, ok := m.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}

	// Fallback: element-by-element copy via the interface.
	rows, cols := m.Rows(), m.Cols()
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("Set(%d,%d): %w", i, j, err)
			}
		}
	}

	return out, nil
}

// Factorize decomposes A into L·U using the default options.
// See FactorizeWith for the full contract.
func Factorize(a matrix.Matrix) (*Factorization, error) {
	return FactorizeWith(a, DefaultOptions())
}

// FactorizeWith decomposes the square matrix A into a unit-lower-triangular
// L and an upper-triangular U via Gaussian elimination without pivoting.
//
// Implementation:
//   - Stage 1: Validate A (non-nil, square, n ≥ MinDimension, all entries
//     finite); normalize opts; initialize L = I and U = copy(A).
//   - Stage 2: For each pivot index k = 0..n-2: guard |U[k][k]| ≥ ε, then
//     for every row i > k store the multiplier m = U[i][k]/U[k][k] in
//     L[i][k] and subtract m·U[k][j] from U[i][j] for all j ≥ k.
//   - Stage 3: Guard the final diagonal entry |U[n-1][n-1]| ≥ ε.
//
// Behavior highlights:
//   - No row exchanges: a sub-threshold pivot aborts with the exact
//     failing position instead of being repaired. Ill-conditioned or
//     row-order-sensitive matrices may fail even though a pivoted
//     algorithm would succeed; this is the documented contract.
//   - A is read-only; L and U are freshly allocated per call.
//
// Inputs:
//   - a:    square coefficient matrix (n×n, n ≥ 2, finite entries).
//   - opts: PivotTol = ε; non-positive/non-finite falls back to default.
//
// Returns:
//   - *Factorization: {L, U} with L·U reconstructing A up to rounding.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (not square),
//     matrix.ErrBadShape (n < MinDimension), matrix.ErrNaNInf — all
//     detected before any numeric work.
//   - *SingularError (unwraps to ErrSingular) naming the pivot (k,k).
//
// Determinism:
//   - Fixed k→i→j elimination order; identical inputs give identical factors.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the two factors.
func FactorizeWith(a matrix.Matrix, opts Options) (*Factorization, error) {
	// Validate structure before any numeric work: nil → square → size → finite.
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, luErrorf(opFactorize, err)
	}
	n := a.Rows()
	if n < MinDimension {
		return nil, luErrorf(opFactorize, fmt.Errorf("n=%d, want >= %d: %w", n, MinDimension, matrix.ErrBadShape))
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return nil, luErrorf(opFactorize, err)
	}

	// Normalize the pivot threshold.
	tol := opts.PivotTol
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		tol = DefaultPivotTol
	}

	// Initialize L to identity and U to a working copy of A.
	l, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, luErrorf(opFactorize, err)
	}
	u, err := denseCopy(a)
	if err != nil {
		return nil, luErrorf(opFactorize, err)
	}

	// Flat row-major views for the elimination loops.
	lData, uData := l.RawData(), u.RawData()

	// Gaussian elimination, fixed k→i→j order.
	var (
		i, j, k      int     // loop iterators
		baseK, baseI int     // row offsets for pivot row k and target row i
		pivot, mult  float64 // current pivot and elimination multiplier
	)
	for k = 0; k < n-1; k++ {
		baseK = k * n
		pivot = uData[baseK+k]
		// Zero-pivot guard: |U[k][k]| < ε means singular (or pivoting needed).
		if math.Abs(pivot) < tol {
			return nil, luErrorf(opFactorize, &SingularError{Row: k, Col: k})
		}
		// Eliminate column k from every row below the pivot row.
		for i = k + 1; i < n; i++ {
			baseI = i * n
			mult = uData[baseI+k] / pivot
			lData[baseI+k] = mult // store the multiplier in L
			for j = k; j < n; j++ { // row update: U[i][j] -= m·U[k][j]
				uData[baseI+j] -= mult * uData[baseK+j]
			}
		}
	}

	// The loop never guards the last pivot; check it explicitly.
	if math.Abs(uData[(n-1)*n+(n-1)]) < tol {
		return nil, luErrorf(opFactorize, &SingularError{Row: n - 1, Col: n - 1})
	}

	return &Factorization{L: l, U: u}, nil
}

// ForwardSubstitute solves the unit-lower-triangular system Ly = b.
//
// Implementation:
//   - Stage 1: Validate L (non-nil, square) and len(b) == n.
//   - Stage 2: y[0] = b[0]; for i = 1..n-1,
//     y[i] = b[i] − Σ_{j<i} L[i][j]·y[j].
//
// Behavior highlights:
//   - No division is performed: the unit diagonal L[i][i] = 1 is assumed,
//     not re-checked. Feeding a non-unit lower factor silently yields the
//     solution for the unit-diagonal reinterpretation of L.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Determinism: fixed top-down i→j order.
// Complexity: Time O(n²), Space O(n) for y.
func ForwardSubstitute(l matrix.Matrix, b []float64) ([]float64, error) {
	// Validate shape before touching values.
	if err := matrix.ValidateSquare(l); err != nil {
		return nil, luErrorf(opForward, err)
	}
	n := l.Rows()
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, luErrorf(opForward, err)
	}

	y := make([]float64, n)
	var (
		i, j int
		sum  float64
	)

	// Fast-path: flat row-major sweeps over a *Dense factor.
	if d, ok := l.(*matrix.Dense); ok {
		data := d.RawData()
		var base int
		y[0] = b[0] // first equation relies on L[0][0] = 1
		for i = 1; i < n; i++ {
			sum = matrix.ZeroSum
			base = i * n
			for j = 0; j < i; j++ { // strictly-lower part of row i
				sum += data[base+j] * y[j]
			}
			y[i] = b[i] - sum
		}

		return y, nil
	}

	// Fallback: interface path via At.
	var lv float64
	var err error
	y[0] = b[0]
	for i = 1; i < n; i++ {
		sum = matrix.ZeroSum
		for j = 0; j < i; j++ {
			if lv, err = l.At(i, j); err != nil {
				return nil, luErrorf(opForward, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += lv * y[j]
		}
		y[i] = b[i] - sum
	}

	return y, nil
}

// BackwardSubstitute solves the upper-triangular system Ux = y.
//
// Implementation:
//   - Stage 1: Validate U (non-nil, square) and len(y) == n.
//   - Stage 2: x[n-1] = y[n-1]/U[n-1][n-1]; for i = n-2..0,
//     x[i] = (y[i] − Σ_{j>i} U[i][j]·x[j]) / U[i][i].
//
// Behavior highlights:
//   - An exactly-zero diagonal entry fails with ErrZeroDiagonal naming
//     the row. A factorization produced by Factorize cannot trigger this
//     (its pivot guard fires first); it protects direct Solver callers
//     supplying an inconsistent L/U pair. Near-zero diagonals are NOT
//     screened here — non-finite results propagate to the caller.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrZeroDiagonal.
//
// Determinism: fixed bottom-up i→j order.
// Complexity: Time O(n²), Space O(n) for x.
func BackwardSubstitute(u matrix.Matrix, y []float64) ([]float64, error) {
	// Validate shape before touching values.
	if err := matrix.ValidateSquare(u); err != nil {
		return nil, luErrorf(opBackward, err)
	}
	n := u.Rows()
	if err := matrix.ValidateVecLen(y, n); err != nil {
		return nil, luErrorf(opBackward, err)
	}

	x := make([]float64, n)
	var (
		i, j int
		sum  float64
		diag float64
	)

	// Fast-path: flat row-major sweeps over a *Dense factor.
	if d, ok := u.(*matrix.Dense); ok {
		data := d.RawData()
		var base int
		for i = n - 1; i >= 0; i-- {
			sum = matrix.ZeroSum
			base = i * n
			for j = i + 1; j < n; j++ { // strictly-upper part of row i
				sum += data[base+j] * x[j]
			}
			diag = data[base+i]
			if diag == 0 {
				return nil, luErrorf(opBackward, fmt.Errorf("row %d: %w", i, ErrZeroDiagonal))
			}
			x[i] = (y[i] - sum) / diag
		}

		return x, nil
	}

	// Fallback: interface path via At.
	var uv float64
	var err error
	for i = n - 1; i >= 0; i-- {
		sum = matrix.ZeroSum
		for j = i + 1; j < n; j++ {
			if uv, err = u.At(i, j); err != nil {
				return nil, luErrorf(opBackward, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += uv * x[j]
		}
		if diag, err = u.At(i, i); err != nil {
			return nil, luErrorf(opBackward, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		if diag == 0 {
			return nil, luErrorf(opBackward, fmt.Errorf("row %d: %w", i, ErrZeroDiagonal))
		}
		x[i] = (y[i] - sum) / diag
	}

	return x, nil
}

// Solve computes x for Ax = b given a completed factorization: forward
// substitution over L, then backward substitution over U. The Solver
// trusts its inputs came from a successful Factorize and does not
// re-validate pivots; the intermediate vector y is ephemeral and never
// retained.
//
// Errors:
//   - matrix.ErrNilMatrix (nil factorization or factor),
//     matrix.ErrDimensionMismatch, ErrZeroDiagonal — each surfaced from
//     the substitution stage that produced it, unchanged.
//
// Complexity: Time O(n²), Space O(n).
func Solve(f *Factorization, b []float64) ([]float64, error) {
	// Validate the factorization container itself.
	if f == nil || f.L == nil || f.U == nil {
		return nil, luErrorf(opSolve, matrix.ErrNilMatrix)
	}

	// Ly = b (top-down).
	y, err := ForwardSubstitute(f.L, b)
	if err != nil {
		return nil, err // propagate the stage error unchanged
	}

	// Ux = y (bottom-up).
	x, err := BackwardSubstitute(f.U, y)
	if err != nil {
		return nil, err // propagate the stage error unchanged
	}

	return x, nil
}

// SolveSystem is the orchestrator and sole external entry point: it
// factorizes A and solves for x in one call, returning the solution
// together with the factorization for downstream diagnostics.
//
// Implementation:
//   - Stage 1: Validate A square and len(b) == n before any numeric work.
//   - Stage 2: Factorize(A) → Solve(f, b).
//
// Behavior highlights:
//   - Any stage failure aborts the call and surfaces unchanged: no
//     wrapping on top of the stage's own tag, no retry, no recovery.
//   - Diagnostics are NOT computed here; callers feed (A, x, b) or
//     (x, expected) pairs to the analysis package separately.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrBadShape,
//     matrix.ErrNaNInf, *SingularError (→ ErrSingular).
//
// Complexity: Time O(n³), Space O(n²).
func SolveSystem(a matrix.Matrix, b []float64) ([]float64, *Factorization, error) {
	// Fail fast on shape mismatches before factorization starts.
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, nil, luErrorf(opSolve, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, nil, luErrorf(opSolve, err)
	}

	// Stage 1: factorize.
	f, err := Factorize(a)
	if err != nil {
		return nil, nil, err // propagate unchanged
	}

	// Stage 2: triangular solves.
	x, err := Solve(f, b)
	if err != nil {
		return nil, nil, err // propagate unchanged
	}

	return x, f, nil
}
