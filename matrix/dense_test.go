// Package matrix_test contains unit tests for the Dense type and its
// construction/ingestion paths.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hide wraps a Matrix to conceal its concrete type, forcing the generic
// interface fallback path inside kernels.
type hide struct{ matrix.Matrix }

// Clone keeps the wrapper in place so cloned copies stay concealed too.
func (h hide) Clone() matrix.Matrix { return hide{h.Matrix.Clone()} }

// mustDense builds an r×c zero Dense or fails the test.
func mustDense(t *testing.T, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err, "NewDense(%d,%d)", rows, cols)

	return m
}

// mustFromRows builds a Dense from nested rows or fails the test.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err, "FromRows")

	return m
}

func TestNewDense_DefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{2, 2},
		{3, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := mustDense(t, tc.rows, tc.cols)
			// immediately after creation all elements should be 0
			var i, j int // loop iterators
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					v, err := m.At(i, j)
					require.NoError(t, err)
					assert.Zero(t, v, "element [%d,%d] of a new Dense must be 0", i, j)
				}
			}
		})
	}
}

func TestNewDense_BadShape(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, 3},
		{3, 0},
		{-1, 2},
	} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		assert.ErrorIs(t, err, matrix.ErrBadShape, "NewDense(%d,%d)", tc.rows, tc.cols)
	}
}

func TestNewIdentity_DiagonalOnes(t *testing.T) {
	const n = 4
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, atErr := m.At(i, j)
			require.NoError(t, atErr)
			if i == j {
				assert.Equal(t, 1.0, v, "diagonal [%d,%d]", i, j)
			} else {
				assert.Zero(t, v, "off-diagonal [%d,%d]", i, j)
			}
		}
	}
}

func TestFromRows_CopiesValues(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}}
	m := mustFromRows(t, src)

	// Mutating the source must not affect the matrix (no aliasing).
	src[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "FromRows must deep-copy the input rows")
}

func TestFromRows_Rejections(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := matrix.FromRows(nil)
		assert.ErrorIs(t, err, matrix.ErrBadShape)
		_, err = matrix.FromRows([][]float64{})
		assert.ErrorIs(t, err, matrix.ErrBadShape)
	})
	t.Run("empty first row", func(t *testing.T) {
		_, err := matrix.FromRows([][]float64{{}})
		assert.ErrorIs(t, err, matrix.ErrBadShape)
	})
	t.Run("ragged", func(t *testing.T) {
		_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
		assert.ErrorIs(t, err, matrix.ErrBadShape)
	})
	t.Run("NaN entry", func(t *testing.T) {
		nan := 0.0
		nan /= nan // NaN without importing math
		_, err := matrix.FromRows([][]float64{{1, nan}, {3, 4}})
		assert.ErrorIs(t, err, matrix.ErrNaNInf)
		assert.Contains(t, err.Error(), "(0,1)", "error should name the offending position")
	})
}

func TestDense_AtSet_Bounds(t *testing.T) {
	m := mustDense(t, 2, 3)

	_, err := m.At(-1, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 3)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = m.Set(2, 0, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)
}

func TestDense_Clone_Independent(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()

	require.NoError(t, m.Set(0, 0, -1))
	v, err := c.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "clone must not observe mutations of the original")
}

func TestDense_RowSlice_Copy(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	row, err := m.RowSlice(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)

	// Mutating the returned slice must not leak into the matrix.
	row[0] = 42
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = m.RowSlice(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_RawData_SharesStorage(t *testing.T) {
	m := mustDense(t, 2, 2)
	raw := m.RawData()
	require.Len(t, raw, 4)

	raw[3] = 9 // writes through to (1,1)
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)
}

func TestDense_String(t *testing.T) {
	m := mustFromRows(t, [][]float64{{2, 1}, {0, 0.5}})
	assert.Equal(t, "[2, 1]\n[0, 0.5]\n", m.String())
}
