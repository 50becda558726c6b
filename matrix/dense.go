// SPDX-License-Identifier: MIT
// Package matrix: Dense is the concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for performance and
// cache friendliness. Construction goes through NewDense/NewIdentity for
// zero/identity shapes and FromRows for nested-row ingestion with the
// finite-values policy.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewIdentity creates the n×n identity matrix I (ones on the diagonal).
// Stage 1 (Validate): n > 0 via NewDense.
// Stage 2 (Execute): set each diagonal entry to 1.
// Complexity: O(n²) time and memory.
func NewIdentity(n int) (*Dense, error) {
	// Allocate the zero matrix first
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	// Place ones on the diagonal via flat indexing
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// FromRows builds a Dense matrix from nested rows, enforcing the
// ingestion policy: non-empty, rectangular, and all entries finite.
//
// Implementation:
//   - Stage 1: Validate rows is non-nil/non-empty and every row has the
//     same positive length (ErrBadShape otherwise).
//   - Stage 2: Copy values row by row, rejecting NaN/±Inf (ErrNaNInf).
//
// Inputs:
//   - rows: nested numeric rows, row-major; rows[i][j] becomes m(i,j).
//
// Returns:
//   - *Dense: a freshly allocated matrix owning its own storage
//     (the input slices are never aliased or retained).
//
// Errors:
//   - ErrBadShape (empty input, empty first row, ragged rows).
//   - ErrNaNInf   (non-finite entry; position reported in the wrap).
//
// Complexity: O(r*c) time and memory.
func FromRows(rows [][]float64) (*Dense, error) {
	// Validate outer slice
	if len(rows) == 0 {
		return nil, ErrBadShape
	}
	// Validate the first row fixes a positive column count
	cols := len(rows[0])
	if cols == 0 {
		return nil, ErrBadShape
	}

	// Allocate the destination before scanning values
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}

	// Copy with rectangularity and finite checks, fixed i→j order
	var i, j int
	var v float64
	for i = 0; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(rows[i]), cols, ErrBadShape)
		}
		for j = 0; j < cols; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("FromRows: entry (%d,%d): %w", i, j, ErrNaNInf)
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// RawData returns the flat row-major backing slice (length r*c).
// The slice is shared with the receiver, not copied: it exists so
// kernel packages (lu) can run flat fast-paths. Treat it as read-only
// unless you own the matrix outright.
// Complexity: O(1).
func (m *Dense) RawData() []float64 {
	return m.data
}

// RowSlice returns a fresh copy of row i, suitable for display layers.
// The returned slice does not alias the backing storage.
// Returns ErrOutOfRange for an invalid row index.
// Complexity: O(c).
func (m *Dense) RowSlice(i int) ([]float64, error) {
	// Validate the row index (column 0 stands in for the whole row)
	if i < 0 || i >= m.r {
		return nil, denseErrorf("RowSlice", i, 0, ErrOutOfRange)
	}
	// Copy the row out of the flat storage
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// String implements fmt.Stringer for easy debugging.
// Stage 1 (Execute): build per-row strings.
// Stage 2 (Finalize): return concatenated representation.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteString("[")       // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			sb.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}
