// Package matrix_test contains unit tests for the canonical validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSquare(t *testing.T) {
	assert.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)

	rect := mustDense(t, 2, 3)
	assert.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrDimensionMismatch)

	sq := mustDense(t, 3, 3)
	assert.NoError(t, matrix.ValidateSquare(sq))
}

func TestValidateVecLen(t *testing.T) {
	assert.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	assert.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}

func TestValidateFinite(t *testing.T) {
	ok := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	assert.NoError(t, matrix.ValidateFinite(ok))

	// FromRows rejects non-finite input, so smuggle one in via Set.
	bad := mustDense(t, 2, 2)
	require.NoError(t, bad.Set(1, 0, math.Inf(1)))
	err := matrix.ValidateFinite(bad)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	assert.Contains(t, err.Error(), "(1,0)")

	// Fallback path through a hidden concrete type.
	assert.ErrorIs(t, matrix.ValidateFinite(hide{bad}), matrix.ErrNaNInf)
}

func TestValidateSymmetric(t *testing.T) {
	sym := mustFromRows(t, [][]float64{{2, 1}, {1, 2}})
	assert.NoError(t, matrix.ValidateSymmetric(sym, 1e-12))

	asym := mustFromRows(t, [][]float64{{2, 1}, {0, 2}})
	assert.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-12), matrix.ErrAsymmetry)

	rect := mustDense(t, 2, 3)
	assert.ErrorIs(t, matrix.ValidateSymmetric(rect, 1e-12), matrix.ErrDimensionMismatch)

	assert.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
}
