// SPDX-License-Identifier: MIT

// Package matrix: read-only matrix surface.
// Dense is the only implementation shipped here; validators and diagnostics
// accept the interface so callers can pass their own read-only views.
package matrix

// Matrix is a read-only two-dimensional table of float64 values.
//
// There is no Set: matrices in this package are values. Every
// transformation (Mul, Transpose, Embed, ...) returns a fresh instance.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
