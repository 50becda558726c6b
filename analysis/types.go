// SPDX-License-Identifier: MIT
// Package analysis: tolerances and result records.

package analysis

// DefaultNormOrder is the norm order p used when a caller passes a
// degenerate order (p < 1 or NaN): the Euclidean norm.
const DefaultNormOrder = 2.0

// NormFloor is the denominator guard: a norm below this threshold is
// treated as zero, and ratio-style diagnostics fall back to their
// unnormalized numerator instead of dividing by near-zero.
const NormFloor = 1e-10

// DefaultTolerance is the residual bound used by ValidateSolution when
// the caller passes a non-positive or non-finite tolerance.
const DefaultTolerance = 1e-6

// Comparison reports how a calculated solution differs from an expected
// one. Created fresh per CompareSolutions call; the Difference slice is
// owned by the record and aliases neither input.
type Comparison struct {
	Difference    []float64 // xCalc − xExpected, componentwise
	AbsoluteError float64   // ‖Difference‖₂
	RelativeError float64   // AbsoluteError/‖xExpected‖₂, or AbsoluteError under NormFloor
	MaxError      float64   // max componentwise |Difference|
}

// Validation reports whether a candidate solution satisfies Ax = b
// within a tolerance. Created fresh per ValidateSolution call.
type Validation struct {
	IsValid     bool      // MaxResidual < tolerance
	Residual    []float64 // A·x − b, componentwise
	MaxResidual float64   // max componentwise |Residual|
}
