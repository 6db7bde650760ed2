// SPDX-License-Identifier: MIT
// Package matrix: core Matrix interface.

package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns clear errors on misuse.
// Users can implement this interface to provide custom storage layouts;
// every kernel in this package accepts any implementation and fast-paths
// the built-in *Dense.
type Matrix interface {
	// Rows returns the number of rows in the matrix. O(1).
	Rows() int

	// Cols returns the number of columns in the matrix. O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols(). O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid. O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix, independent of the
	// original. O(rows*cols).
	Clone() Matrix
}
