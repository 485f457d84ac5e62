// SPDX-License-Identifier: MIT
// Package hill: sentinel error set.
// All operations return these sentinels wrapped with an operation tag;
// callers match them with errors.Is. Nothing in this package panics on
// user input.

package hill

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hill/matrix"
)

var (
	// ErrInvalidKeyLength is returned when the normalized key has != m² letters.
	ErrInvalidKeyLength = errors.New("hill: invalid key length")

	// ErrInvalidDimension is returned when m <= 0 or a matrix is not square.
	ErrInvalidDimension = errors.New("hill: invalid block dimension")

	// ErrInvalidLength is returned when ciphertext length is not a multiple of m.
	ErrInvalidLength = errors.New("hill: ciphertext length is not a multiple of the block size")

	// ErrInvalidCharacter is returned when the codec is given a non-Latin letter.
	ErrInvalidCharacter = errors.New("hill: invalid character")
)

// Sentinels shared with the matrix engine, so errors.Is works on either name.
var (
	// ErrNotInvertible: the key determinant shares a factor with 26.
	ErrNotInvertible = matrix.ErrNotInvertible

	// ErrDimensionMismatch: a block length disagrees with the matrix dimension.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)

// Operation tags for uniform error wrapping.
const (
	opEncode         = "Encode"
	opFrame          = "Frame"
	opUnframe        = "Unframe"
	opBuildKeyMatrix = "BuildKeyMatrix"
	opInvertMatrix   = "InvertMatrix"
	opModularInverse = "ModularInverse"
	opTransform      = "Transform"
	opEncrypt        = "Encrypt"
	opDecrypt        = "Decrypt"
	opNew            = "New"
)

// hillErrorf wraps err with an operation tag, preserving the sentinel via %w.
func hillErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
