// Package matrix offers exact-integer matrices and modular linear algebra.
//
// The matrix package provides:
//
//   - Dense, a row-major int64 matrix with bounds-checked accessors.
//   - Integer kernels: Mul, Transpose, MatVec and their "mod n" variants.
//   - Determinant over the integers (cofactor expansion for n ≤ 3, Bareiss
//     fraction-free elimination above), returned as *big.Int so it never
//     overflows or rounds.
//   - Adjugate and InverseMod, which together invert a matrix over Z/n
//     without any division: A⁻¹ ≡ det(A)⁻¹ · adj(A) (mod n).
//   - Mod and ModInverse for scalar residues.
//
// Nothing in this package uses floating point. That is the whole point: a
// rounded determinant silently breaks the modular inverse search.
//
// See the examples in this package and the hill package for usage patterns.
package matrix
