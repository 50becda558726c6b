// SPDX-License-Identifier: MIT
// Package matrix: public Matrix abstraction.
// This file declares the Matrix interface implemented by Dense. Kernels
// accept the interface and fast-path on *Dense; tests exercise both
// paths by hiding the concrete type behind a wrapper.

package matrix

// Matrix is a read/write view over a two-dimensional float64 array.
//
// Implementations must be usable from multiple goroutines for
// concurrent reads; mutation is single-writer (the library itself never
// mutates caller-owned matrices).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
