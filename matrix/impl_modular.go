// SPDX-License-Identifier: MIT
// Package matrix: exact determinant, adjugate and inversion over Z/n.
//
// Purpose:
//   - Compute determinants over the integers with no rounding: cofactor
//     expansion for n ≤ 3, Bareiss fraction-free elimination for n > 3.
//   - Build the adjugate (transpose of the cofactor matrix) from exact minors.
//   - Invert a matrix modulo n as det⁻¹ · adj(A) mod n, which needs only a
//     scalar modular inverse and never divides matrix entries.
//
// Notes:
//   - All intermediate values live in math/big so neither the determinant nor
//     any cofactor can overflow, whatever the input magnitude.
//   - ModInverse searches [0,n) exhaustively. For the small moduli this package
//     serves (26 for the Hill cipher) the scan is cheaper than extended Euclid
//     and has no sign-handling edge cases.

package matrix

import (
	"fmt"
	"math/big"
)

// cofactorMaxN is the largest order solved by direct cofactor expansion.
const cofactorMaxN = 3

// Mod returns the canonical residue of a modulo n, always in [0,n).
// Precondition: n > 0 (callers validate via ValidateModulus).
func Mod(a, n int64) int64 {
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}

// ModInverse returns the unique x in [0,n) with (a*x) mod n == 1.
// Implementation:
//   - Stage 1: validate n >= 2 and reduce a into [0,n).
//   - Stage 2: scan x = 0..n-1 and return the first hit.
//
// Errors:
//   - ErrInvalidModulus (n < 2).
//   - ErrNotInvertible when gcd(a, n) != 1 (including a ≡ 0).
//
// Complexity:
//   - Time O(n), Space O(1).
func ModInverse(a, n int64) (int64, error) {
	if err := ValidateModulus(n); err != nil {
		return 0, matrixErrorf(opModInverse, err)
	}
	r := Mod(a, n)
	var x int64
	for x = 0; x < n; x++ {
		if (r*x)%n == 1 {
			return x, nil
		}
	}

	return 0, matrixErrorf(opModInverse, fmt.Errorf("%d mod %d: %w", a, n, ErrNotInvertible))
}

// Determinant returns the exact integer determinant of a square matrix.
// Implementation:
//   - Stage 1: ValidateSquare(m); lift entries into big.Int.
//   - Stage 2: n ≤ 3 → cofactor expansion; n > 3 → Bareiss elimination.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - Fixed pivot search order (first non-zero row below the diagonal).
//
// Complexity:
//   - Time O(n³) big-int operations, Space O(n²).
func Determinant(m Reader) (*big.Int, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDet, err)
	}
	a, err := toBig(m)
	if err != nil {
		return nil, matrixErrorf(opDet, err)
	}

	return detBig(a), nil
}

// DeterminantMod returns Determinant(m) reduced into [0,n).
// The reduction happens after the exact determinant is known, so a negative
// determinant maps to its canonical residue (e.g. -99 mod 26 = 5).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidModulus.
func DeterminantMod(m Reader, n int64) (int64, error) {
	if err := ValidateModulus(n); err != nil {
		return 0, matrixErrorf(opDetMod, err)
	}
	det, err := Determinant(m)
	if err != nil {
		return 0, matrixErrorf(opDetMod, err)
	}

	return bigMod(det, n), nil
}

// Adjugate returns adj(m), the transpose of the cofactor matrix, so that
// m × adj(m) = det(m) × I over the integers.
// Implementation:
//   - Stage 1: ValidateSquare(m); lift into big.Int.
//   - Stage 2: adj[j][i] = (-1)^(i+j) · det(minor(i,j)); a 1×1 matrix has adj = [[1]].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOverflow (a cofactor exceeds int64).
//
// Complexity:
//   - Time O(n⁵) big-int operations (n² minors of O(n³) each), Space O(n²).
func Adjugate(m Reader) (*Dense, error) {
	cof, err := cofactorsBig(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	n := m.Rows()
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if !cof[i][j].IsInt64() {
				return nil, matrixErrorf(opAdjugate, fmt.Errorf("cofactor(%d,%d): %w", i, j, ErrOverflow))
			}
			res.data[j*n+i] = cof[i][j].Int64() // transpose
		}
	}

	return res, nil
}

// InverseMod computes A⁻¹ over Z/n such that (A × A⁻¹) mod n == I.
// MAIN DESCRIPTION:
//   - Exact, division-free inversion: A⁻¹ ≡ det(A)⁻¹ · adj(A) (mod n).
//
// Implementation:
//   - Stage 1: ValidateSquare(m), ValidateModulus(n).
//   - Stage 2: det := DeterminantMod(m, n); detInv := ModInverse(det, n).
//   - Stage 3: form detInv · cofactor(i,j) mod n into cell (j,i).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidModulus.
//   - ErrNotInvertible when det(A) ≡ 0 or gcd(det(A), n) != 1; no result is produced.
//
// Complexity:
//   - Time O(n⁵) big-int operations, Space O(n²).
func InverseMod(m Reader, n int64) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}
	if err := ValidateModulus(n); err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}
	det, err := DeterminantMod(m, n)
	if err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}
	detInv, err := ModInverse(det, n)
	if err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}

	cof, err := cofactorsBig(m)
	if err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}
	size := m.Rows()
	res, err := NewDense(size, size)
	if err != nil {
		return nil, matrixErrorf(opInverseMod, err)
	}
	var i, j int
	for i = 0; i < size; i++ {
		for j = 0; j < size; j++ {
			res.data[j*size+i] = Mod(detInv*bigMod(cof[i][j], n), n)
		}
	}

	return res, nil
}

// ---------- big-int helpers ----------

// toBig lifts a Matrix into a fresh [][]*big.Int.
func toBig(m Reader) ([][]*big.Int, error) {
	rows, cols := m.Rows(), m.Cols()
	out := make([][]*big.Int, rows)
	var i, j int
	var v int64
	var err error
	for i = 0; i < rows; i++ {
		out[i] = make([]*big.Int, cols)
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out[i][j] = big.NewInt(v)
		}
	}

	return out, nil
}

// bigMod reduces x into [0,n); big.Int.Mod is Euclidean so the result is non-negative.
func bigMod(x *big.Int, n int64) int64 {
	return new(big.Int).Mod(x, big.NewInt(n)).Int64()
}

// detBig dispatches on order; a is not mutated.
func detBig(a [][]*big.Int) *big.Int {
	if len(a) <= cofactorMaxN {
		return detCofactor(a)
	}

	return detBareiss(a)
}

// detCofactor expands along the first row; used for n ≤ 3.
func detCofactor(a [][]*big.Int) *big.Int {
	n := len(a)
	switch n {
	case 0:
		return big.NewInt(1) // empty minor
	case 1:
		return new(big.Int).Set(a[0][0])
	case 2:
		ad := new(big.Int).Mul(a[0][0], a[1][1])
		bc := new(big.Int).Mul(a[0][1], a[1][0])
		return ad.Sub(ad, bc)
	}

	det := new(big.Int)
	term := new(big.Int)
	for j := 0; j < n; j++ {
		term.Mul(a[0][j], detCofactor(minorBig(a, 0, j)))
		if j%2 == 1 {
			det.Sub(det, term)
		} else {
			det.Add(det, term)
		}
	}

	return det
}

// detBareiss runs fraction-free Gaussian elimination on a copy of a.
// Every division in the update step is exact, so the result is the integer
// determinant. A row swap flips the sign; a zero column yields 0.
func detBareiss(a [][]*big.Int) *big.Int {
	n := len(a)
	w := make([][]*big.Int, n)
	for i := range a {
		w[i] = make([]*big.Int, n)
		for j := range a[i] {
			w[i][j] = new(big.Int).Set(a[i][j])
		}
	}

	sign := 1
	prev := big.NewInt(1)
	t1, t2 := new(big.Int), new(big.Int)
	var i, j, k, p int
	for k = 0; k < n-1; k++ {
		if w[k][k].Sign() == 0 {
			for p = k + 1; p < n && w[p][k].Sign() == 0; p++ {
			}
			if p == n {
				return new(big.Int)
			}
			w[k], w[p] = w[p], w[k]
			sign = -sign
		}
		for i = k + 1; i < n; i++ {
			for j = k + 1; j < n; j++ {
				t1.Mul(w[i][j], w[k][k])
				t2.Mul(w[i][k], w[k][j])
				t1.Sub(t1, t2)
				w[i][j].Quo(t1, prev)
			}
		}
		prev = w[k][k]
	}

	det := new(big.Int).Set(w[n-1][n-1])
	if sign < 0 {
		det.Neg(det)
	}

	return det
}

// minorBig returns a with row r and column c removed.
func minorBig(a [][]*big.Int, r, c int) [][]*big.Int {
	n := len(a)
	out := make([][]*big.Int, 0, n-1)
	for i := 0; i < n; i++ {
		if i == r {
			continue
		}
		row := make([]*big.Int, 0, n-1)
		for j := 0; j < n; j++ {
			if j != c {
				row = append(row, a[i][j])
			}
		}
		out = append(out, row)
	}

	return out
}

// cofactorsBig returns C with C[i][j] = (-1)^(i+j) · det(minor(i,j)).
func cofactorsBig(m Reader) ([][]*big.Int, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}
	a, err := toBig(m)
	if err != nil {
		return nil, err
	}
	n := len(a)
	cof := make([][]*big.Int, n)
	var i, j int
	for i = 0; i < n; i++ {
		cof[i] = make([]*big.Int, n)
		for j = 0; j < n; j++ {
			c := detBig(minorBig(a, i, j))
			if (i+j)%2 == 1 {
				c.Neg(c)
			}
			cof[i][j] = c
		}
	}

	return cof, nil
}
