// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file intentionally contains ONLY the public Reader and Matrix interfaces. Errors
// live in errors.go, storage in impl_dense.go.
package matrix

// Reader is the read-only view of a matrix consumed by kernels that never
// mutate or copy their operand (MatVec, MatVecMod). Immutable wrappers such
// as hill.KeyMatrix satisfy it without exposing Set.
type Reader interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (int64, error)
}

// Matrix represents a two-dimensional mutable array of int64 values.
// All arithmetic in this package is exact; there is no floating-point path.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	Reader

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v int64) error

	// Clone returns a deep copy of the matrix.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
