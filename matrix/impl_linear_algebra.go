// SPDX-License-Identifier: MIT
// Package matrix provides universal integer operations on any Matrix
// implementation: matrix multiplication, transpose, matrix-vector products and
// entrywise reduction modulo n. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast path over the flat buffer and a generic
//     At/Set fallback with the same fixed i→j→k loop order.
//   - Modular kernels compute over the integers first and reduce once per
//     output cell; inputs are never mutated.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum int64 = 0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul        = "Mul"
	opMulMod     = "MulMod"
	opTranspose  = "Transpose"
	opReduce     = "Reduce"
	opMatVec     = "MatVec"
	opMatVecMod  = "MatVecMod"
	opDet        = "Determinant"
	opDetMod     = "DeterminantMod"
	opAdjugate   = "Adjugate"
	opInverseMod = "InverseMod"
	opModInverse = "ModInverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the integer product C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate Dense(a.Rows × b.Cols).
//   - Stage 2: *Dense fast path with i→k→j order over flat buffers; otherwise At-based i→j→k.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b Reader) (*Dense, error) {
	return mulMod(a, b, 0, opMul)
}

// MulMod computes C = (A × B) mod n with every entry in [0,n).
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrInvalidModulus.
func MulMod(a, b Reader, n int64) (*Dense, error) {
	if err := ValidateModulus(n); err != nil {
		return nil, matrixErrorf(opMulMod, err)
	}

	return mulMod(a, b, n, opMulMod)
}

// mulMod is the shared kernel for Mul/MulMod; n == 0 means "no reduction".
func mulMod(a, b Reader, n int64, tag string) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	var i, j, k int
	// Fast path: *Dense × *Dense.
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		var aik int64
		for i = 0; i < rows; i++ {
			for k = 0; k < inner; k++ {
				aik = da.data[i*inner+k]
				if aik == 0 {
					continue
				}
				for j = 0; j < cols; j++ {
					res.data[i*cols+j] += aik * db.data[k*cols+j]
				}
			}
		}
		if n != 0 {
			for idx := range res.data {
				res.data[idx] = Mod(res.data[idx], n)
			}
		}

		return res, nil
	}

	// Fallback: interface path.
	var av, bv, acc int64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			acc = ZeroSum
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(tag, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(tag, err)
				}
				acc += av * bv
			}
			if n != 0 {
				acc = Mod(acc, n)
			}
			res.data[i*cols+j] = acc
		}
	}

	return res, nil
}

// Transpose returns a new c×r matrix T with T[j,i] = M[i,j].
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Reader) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[i*cols+j]
			}
		}

		return res, nil
	}

	var v int64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Reduce returns a copy of m with every entry replaced by Mod(entry, n).
// Errors: ErrNilMatrix, ErrInvalidModulus.
func Reduce(m Reader, n int64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}
	if err := ValidateModulus(n); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opReduce, err)
	}

	var i, j int
	var v int64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opReduce, err)
			}
			res.data[i*cols+j] = Mod(v, n)
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x over the integers.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Reader, x []int64) ([]int64, error) {
	return matVecMod(m, x, 0, opMatVec)
}

// MatVecMod computes y = (m * x) mod n: the product is formed over the
// integers and each output cell is reduced into [0,n) once.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrInvalidModulus.
// Complexity: Time O(r*c), Space O(r).
func MatVecMod(m Reader, x []int64, n int64) ([]int64, error) {
	if err := ValidateModulus(n); err != nil {
		return nil, matrixErrorf(opMatVecMod, err)
	}

	return matVecMod(m, x, n, opMatVecMod)
}

// matVecMod is the shared kernel for MatVec/MatVecMod; n == 0 means "no reduction".
func matVecMod(m Reader, x []int64, n int64, tag string) ([]int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]int64, rows)

	var i, j int
	var acc int64
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			if n != 0 {
				acc = Mod(acc, n)
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv int64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += mv * x[j]
		}
		if n != 0 {
			acc = Mod(acc, n)
		}
		y[i] = acc
	}

	return y, nil
}
