// SPDX-License-Identifier: MIT

// Package hill - key matrices and their inverses over Z/26.
//
// Purpose:
//   - Build an immutable m×m key matrix from a string of m² letters.
//   - Invert it over Z/26 with the exact kernels of the matrix package.
//
// Both wrappers expose only the read side (Rows/Cols/At) so they satisfy
// matrix.Reader and can be passed straight to Transform; the underlying
// Dense is never handed out.
package hill

import (
	"fmt"

	"github.com/katalvlaran/hill/matrix"
)

// KeyMatrix is an immutable m×m matrix of residues built from a key string.
type KeyMatrix struct {
	m *matrix.Dense
}

// InverseKeyMatrix is an immutable m×m matrix with (K × K⁻¹) mod 26 == I.
type InverseKeyMatrix struct {
	m *matrix.Dense
}

// Compile-time assertions: both wrappers are read-only matrices.
var (
	_ matrix.Reader = (*KeyMatrix)(nil)
	_ matrix.Reader = (*InverseKeyMatrix)(nil)
)

// BuildKeyMatrix normalizes key (letters only, uppercased) and lays its
// residues row-major into an m×m matrix.
// Implementation:
//   - Stage 1: validate m > 0.
//   - Stage 2: normalize and check len == m*m before any arithmetic.
//   - Stage 3: encode each letter and fill the matrix row by row.
//
// Errors:
//   - ErrInvalidDimension (m <= 0).
//   - ErrInvalidKeyLength (normalized length != m*m).
func BuildKeyMatrix(key string, m int) (*KeyMatrix, error) {
	if m <= 0 {
		return nil, hillErrorf(opBuildKeyMatrix, fmt.Errorf("m=%d: %w", m, ErrInvalidDimension))
	}
	letters := Normalize(key)
	if len(letters) != m*m {
		return nil, hillErrorf(opBuildKeyMatrix,
			fmt.Errorf("got %d letters, want %d for m=%d: %w", len(letters), m*m, m, ErrInvalidKeyLength))
	}

	values := make([]int64, 0, m*m)
	for _, r := range letters {
		v, err := Encode(r)
		if err != nil {
			return nil, hillErrorf(opBuildKeyMatrix, err)
		}
		values = append(values, int64(v))
	}
	d, err := matrix.NewDenseFrom(m, m, values)
	if err != nil {
		return nil, hillErrorf(opBuildKeyMatrix, err)
	}

	return &KeyMatrix{m: d}, nil
}

// Dim returns m, the block size.
func (k *KeyMatrix) Dim() int { return k.m.Rows() }

// Rows returns m.
func (k *KeyMatrix) Rows() int { return k.m.Rows() }

// Cols returns m.
func (k *KeyMatrix) Cols() int { return k.m.Cols() }

// At returns the residue at (i, j).
func (k *KeyMatrix) At(i, j int) (int64, error) { return k.m.At(i, j) }

// Values returns a row-major copy of the entries.
func (k *KeyMatrix) Values() []int64 { return k.m.Values() }

// String renders one bracketed row per line.
func (k *KeyMatrix) String() string { return k.m.String() }

// Dim returns m, the block size.
func (k *InverseKeyMatrix) Dim() int { return k.m.Rows() }

// Rows returns m.
func (k *InverseKeyMatrix) Rows() int { return k.m.Rows() }

// Cols returns m.
func (k *InverseKeyMatrix) Cols() int { return k.m.Cols() }

// At returns the residue at (i, j).
func (k *InverseKeyMatrix) At(i, j int) (int64, error) { return k.m.At(i, j) }

// Values returns a row-major copy of the entries.
func (k *InverseKeyMatrix) Values() []int64 { return k.m.Values() }

// String renders one bracketed row per line.
func (k *InverseKeyMatrix) String() string { return k.m.String() }

// DeterminantMod26 returns det(K) computed exactly over the integers, then
// reduced into [0,26).
func DeterminantMod26(k *KeyMatrix) (Residue, error) {
	if k == nil {
		return 0, hillErrorf(opInvertMatrix, matrix.ErrNilMatrix)
	}
	d, err := matrix.DeterminantMod(k.m, Modulus)
	if err != nil {
		return 0, hillErrorf(opInvertMatrix, err)
	}

	return Residue(d), nil
}

// ModularInverse returns the x in [0,26) with (a*x) mod 26 == 1.
// Errors: ErrNotInvertible when gcd(a, 26) != 1.
func ModularInverse(a int) (int, error) {
	x, err := matrix.ModInverse(int64(a), Modulus)
	if err != nil {
		return 0, hillErrorf(opModularInverse, err)
	}

	return int(x), nil
}

// InvertMatrix computes K⁻¹ over Z/26 as det⁻¹ · adj(K) mod 26.
// Errors: ErrNotInvertible when det(K) is 0 or shares a factor with 26.
func InvertMatrix(k *KeyMatrix) (*InverseKeyMatrix, error) {
	if k == nil {
		return nil, hillErrorf(opInvertMatrix, matrix.ErrNilMatrix)
	}
	inv, err := matrix.InverseMod(k.m, Modulus)
	if err != nil {
		return nil, hillErrorf(opInvertMatrix, err)
	}

	return &InverseKeyMatrix{m: inv}, nil
}
