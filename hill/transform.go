// SPDX-License-Identifier: MIT

package hill

import (
	"fmt"

	"github.com/katalvlaran/hill/matrix"
)

// Transform multiplies mat by block as a column vector and reduces each
// entry mod 26. It is direction-agnostic: pass a *KeyMatrix to encrypt and
// an *InverseKeyMatrix to decrypt. The input block is not modified.
//
// Errors:
//   - ErrInvalidDimension when mat is not square.
//   - ErrDimensionMismatch when len(block) != mat.Rows().
func Transform(mat matrix.Reader, block Block) (Block, error) {
	mat = unwrap(mat)
	if err := matrix.ValidateNotNil(mat); err != nil {
		return nil, hillErrorf(opTransform, err)
	}
	if mat.Rows() != mat.Cols() {
		return nil, hillErrorf(opTransform, fmt.Errorf("%dx%d: %w", mat.Rows(), mat.Cols(), ErrInvalidDimension))
	}
	if len(block) != mat.Rows() {
		return nil, hillErrorf(opTransform, fmt.Errorf("block %d, matrix %d: %w", len(block), mat.Rows(), ErrDimensionMismatch))
	}

	x := make([]int64, len(block))
	for i, r := range block {
		x[i] = int64(r)
	}
	y, err := matrix.MatVecMod(mat, x, Modulus)
	if err != nil {
		return nil, hillErrorf(opTransform, err)
	}

	out := make(Block, len(y))
	for i, v := range y {
		out[i] = Residue(v)
	}

	return out, nil
}

// unwrap exposes the backing Dense of the key wrappers so MatVecMod takes its
// flat fast path. A typed-nil wrapper becomes an untyped nil.
func unwrap(mat matrix.Reader) matrix.Reader {
	switch v := mat.(type) {
	case *KeyMatrix:
		if v == nil {
			return nil
		}
		return v.m
	case *InverseKeyMatrix:
		if v == nil {
			return nil
		}
		return v.m
	}

	return mat
}
