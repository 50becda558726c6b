// Package matrix_test contains unit tests for the Jacobi eigensolver.
package matrix_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sortedEigs runs Eigen and returns the eigenvalues in ascending order.
func sortedEigs(t *testing.T, m matrix.Matrix) []float64 {
	t.Helper()
	eigs, vecs, err := matrix.Eigen(m, 1e-12, 300)
	require.NoError(t, err, "Eigen")
	require.NotNil(t, vecs)
	sort.Float64s(eigs)

	return eigs
}

func TestEigen_DiagonalMatrix(t *testing.T) {
	// A diagonal matrix is its own spectrum; no rotations needed.
	m := mustFromRows(t, [][]float64{{3, 0, 0}, {0, 1, 0}, {0, 0, 2}})

	eigs := sortedEigs(t, m)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, eigs, 1e-12)
}

func TestEigen_Known2x2(t *testing.T) {
	// [[2,1],[1,2]] has eigenvalues 1 and 3.
	m := mustFromRows(t, [][]float64{{2, 1}, {1, 2}})

	eigs := sortedEigs(t, m)
	assert.InDeltaSlice(t, []float64{1, 3}, eigs, 1e-10)
}

func TestEigen_InputNotMutated(t *testing.T) {
	m := mustFromRows(t, [][]float64{{2, 1}, {1, 2}})
	_, _, err := matrix.Eigen(m, 1e-12, 300)
	require.NoError(t, err)

	assertEqualMatrix(t, [][]float64{{2, 1}, {1, 2}}, m)
}

func TestEigen_Rejections(t *testing.T) {
	asym := mustFromRows(t, [][]float64{{2, 1}, {0, 2}})
	_, _, err := matrix.Eigen(asym, 1e-12, 300)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)

	rect := mustDense(t, 2, 3)
	_, _, err = matrix.Eigen(rect, 1e-12, 300)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, err = matrix.Eigen(nil, 1e-12, 300)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestEigen_ConvergenceBudget(t *testing.T) {
	// Zero iterations cannot reduce a non-diagonal matrix below tol.
	m := mustFromRows(t, [][]float64{{2, 1}, {1, 2}})
	_, _, err := matrix.Eigen(m, 1e-12, 0)
	assert.ErrorIs(t, err, matrix.ErrEigenFailed)
}

func TestEigen_FallbackMatchesFastPath(t *testing.T) {
	m := mustFromRows(t, [][]float64{{4, 1, 0}, {1, 3, 1}, {0, 1, 2}})

	fast := sortedEigs(t, m)
	slow := sortedEigs(t, hide{m})
	assert.InDeltaSlice(t, fast, slow, 1e-10)
}
