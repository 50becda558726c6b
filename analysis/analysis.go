// SPDX-License-Identifier: MIT
// Package analysis: diagnostic kernels.
//
// Purpose:
//   - Interpret a computed solution: how well does it satisfy Ax = b,
//     how far is it from a known expectation, how trustworthy is the
//     system itself (conditioning).
//   - Every function is a pure transformation; structural misuse is the
//     only error path and is caught by the matrix validators before any
//     numeric work.

package analysis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsys/matrix"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opResidual  = "RelativeResidualError"
	opCompare   = "CompareSolutions"
	opCondition = "ConditionNumber"
	opValidate  = "ValidateSolution"
)

// Jacobi settings for the AᵀA spectrum behind ConditionNumber.
// Intended for small dense systems, so a few hundred rotations is a
// generous iteration cap.
const (
	condEigenTol = 1e-10
	condMaxIter  = 300
	// condRankTol declares λmin singular-to-working-precision relative
	// to λmax: rounding can leave a tiny value of either sign where the
	// exact eigenvalue is 0, so the cut must be relative, not a sign test.
	condRankTol = 1e-14
)

// analysisErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As keep matching. Call only with err != nil.
func analysisErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// VectorNorm computes the p-order norm of v.
//
// Behavior highlights:
//   - p = 2 (the default order) uses a dedicated sqrt-of-squares path.
//   - p = +Inf returns max |v[i]|.
//   - p < 1 or NaN falls back to DefaultNormOrder: a degenerate order
//     still yields a reportable value, per the package policy.
//   - nil or empty v yields 0.
//
// Determinism: single fixed forward scan.
// Complexity: Time O(n), Space O(1).
func VectorNorm(v []float64, p float64) float64 {
	// Empty input has zero magnitude by convention.
	if len(v) == 0 {
		return 0
	}
	// Normalize a degenerate order to the Euclidean default.
	if math.IsNaN(p) || p < 1 {
		p = DefaultNormOrder
	}
	// Max-norm path: the limit p → ∞.
	if math.IsInf(p, 1) {
		return matrix.VecMaxAbs(v)
	}

	var acc float64
	// Euclidean fast path: avoid math.Pow in the common case.
	if p == DefaultNormOrder {
		for i := range v {
			acc += v[i] * v[i]
		}

		return math.Sqrt(acc)
	}

	// General p-norm: (Σ|v[i]|^p)^(1/p).
	for i := range v {
		acc += math.Pow(math.Abs(v[i]), p)
	}

	return math.Pow(acc, 1/p)
}

// RelativeResidualError computes ε = ‖A·xCalc − b‖₂ / ‖b‖₂, the standard
// measure of how well the calculated solution satisfies the system.
//
// Implementation:
//   - Stage 1: Validate A non-nil, len(xCalc) == Cols, len(b) == Rows.
//   - Stage 2: residual = A·xCalc − b; return ‖residual‖/‖b‖, or the
//     unnormalized ‖residual‖ when ‖b‖ < NormFloor (denominator guard).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch — structural only.
//
// Complexity: Time O(n²) for the mat-vec, Space O(n).
func RelativeResidualError(a matrix.Matrix, xCalc, b []float64) (float64, error) {
	// Structural checks first: b must pair with the row dimension.
	if err := matrix.ValidateNotNil(a); err != nil {
		return 0, analysisErrorf(opResidual, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return 0, analysisErrorf(opResidual, err)
	}

	// A·xCalc (validates xCalc against the column dimension).
	ax, err := matrix.MatVec(a, xCalc)
	if err != nil {
		return 0, analysisErrorf(opResidual, err)
	}

	// residual = A·xCalc − b.
	residual, err := matrix.VecSub(ax, b)
	if err != nil {
		return 0, analysisErrorf(opResidual, err)
	}

	// Norms and the near-zero denominator policy.
	residualNorm := VectorNorm(residual, DefaultNormOrder)
	bNorm := VectorNorm(b, DefaultNormOrder)
	if bNorm < NormFloor {
		return residualNorm, nil // unnormalized fallback, by policy
	}

	return residualNorm / bNorm, nil
}

// CompareSolutions measures how a calculated solution differs from an
// expected one, producing a fresh Comparison record.
//
// Implementation:
//   - Stage 1: Validate both vectors non-nil and equally sized.
//   - Stage 2: difference = xCalc − xExpected; absolute = ‖difference‖₂;
//     relative = absolute/‖xExpected‖₂ (or absolute itself under
//     NormFloor); max = max componentwise |difference|.
//
// Behavior highlights:
//   - CompareSolutions(x, x) yields the all-zero record for any x.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch — structural only.
//
// Complexity: Time O(n), Space O(n) for the difference vector.
func CompareSolutions(xCalc, xExpected []float64) (Comparison, error) {
	// difference = xCalc − xExpected (validates nil/length).
	diff, err := matrix.VecSub(xCalc, xExpected)
	if err != nil {
		return Comparison{}, analysisErrorf(opCompare, err)
	}

	// Scalar diagnostics over the difference.
	absolute := VectorNorm(diff, DefaultNormOrder)
	expectedNorm := VectorNorm(xExpected, DefaultNormOrder)
	relative := absolute
	if expectedNorm >= NormFloor {
		relative = absolute / expectedNorm
	}

	return Comparison{
		Difference:    diff,
		AbsoluteError: absolute,
		RelativeError: relative,
		MaxError:      matrix.VecMaxAbs(diff),
	}, nil
}

// ConditionNumber estimates the 2-norm condition number κ₂(A): the ratio
// of the largest to the smallest singular value of A.
//
// Implementation:
//   - Stage 1: Validate A non-nil and square.
//   - Stage 2: Form S = (AᵀA + (AᵀA)ᵀ)/2 — mathematically AᵀA is
//     symmetric; the explicit symmetrization cancels accumulation-order
//     rounding so the Jacobi symmetry gate always passes.
//   - Stage 3: Eigen(S) → λ; κ₂ = √(λmax/λmin).
//
// Behavior highlights:
//   - Never fails numerically: Jacobi non-convergence or λmin ≤ 0
//     (structurally singular input) yields +Inf with a nil error, so
//     callers always get a reportable value.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch — structural only.
//
// Complexity: Time O(n³), Space O(n²).
func ConditionNumber(a matrix.Matrix) (float64, error) {
	// Structural validation up front; everything after is fallback-safe.
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, analysisErrorf(opCondition, err)
	}

	// Gram matrix AᵀA: its eigenvalues are the squared singular values of A.
	at, err := matrix.Transpose(a)
	if err != nil {
		return math.Inf(1), nil // reportable-value policy
	}
	gram, err := matrix.Mul(at, a)
	if err != nil {
		return math.Inf(1), nil
	}

	// Symmetrize to absorb accumulation-order rounding: S = (G + Gᵀ)/2.
	gramT, err := matrix.Transpose(gram)
	if err != nil {
		return math.Inf(1), nil
	}
	sum, err := matrix.Add(gram, gramT)
	if err != nil {
		return math.Inf(1), nil
	}
	sym, err := matrix.Scale(sum, 0.5)
	if err != nil {
		return math.Inf(1), nil
	}

	// Spectrum via Jacobi sweeps.
	eigs, _, err := matrix.Eigen(sym, condEigenTol, condMaxIter)
	if err != nil {
		return math.Inf(1), nil // non-convergence is a reportable +Inf
	}

	// λmax/λmin over the (unsorted) eigenvalues.
	lambdaMin, lambdaMax := eigs[0], eigs[0]
	for _, lambda := range eigs[1:] {
		if lambda < lambdaMin {
			lambdaMin = lambda
		}
		if lambda > lambdaMax {
			lambdaMax = lambda
		}
	}
	// A vanishing smallest singular value means the matrix is singular
	// to working precision; λmax ≤ 0 only for the structural zero matrix.
	if lambdaMax <= 0 || lambdaMin <= lambdaMax*condRankTol {
		return math.Inf(1), nil
	}

	return math.Sqrt(lambdaMax / lambdaMin), nil
}

// ValidateSolution checks whether x satisfies Ax = b within a tolerance,
// producing a fresh Validation record.
//
// Implementation:
//   - Stage 1: Validate A non-nil, len(x) == Cols, len(b) == Rows;
//     normalize a non-positive/non-finite tolerance to DefaultTolerance.
//   - Stage 2: residual = A·x − b; MaxResidual = max |residual|;
//     IsValid = MaxResidual < tolerance.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch — structural only.
//
// Complexity: Time O(n²), Space O(n).
func ValidateSolution(a matrix.Matrix, x, b []float64, tolerance float64) (Validation, error) {
	// Structural checks first: b must pair with the row dimension.
	if err := matrix.ValidateNotNil(a); err != nil {
		return Validation{}, analysisErrorf(opValidate, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return Validation{}, analysisErrorf(opValidate, err)
	}

	// A·x (validates x against the column dimension).
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return Validation{}, analysisErrorf(opValidate, err)
	}
	// Normalize a degenerate tolerance.
	if tolerance <= 0 || math.IsNaN(tolerance) || math.IsInf(tolerance, 0) {
		tolerance = DefaultTolerance
	}

	// residual = A·x − b and its max magnitude.
	residual, err := matrix.VecSub(ax, b)
	if err != nil {
		return Validation{}, analysisErrorf(opValidate, err)
	}
	maxResidual := matrix.VecMaxAbs(residual)

	return Validation{
		IsValid:     maxResidual < tolerance,
		Residual:    residual,
		MaxResidual: maxResidual,
	}, nil
}
