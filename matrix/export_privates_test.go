// SPDX-License-Identifier: MIT

package matrix

import "math/big"

// Test-Bridge (White-Box) for the private determinant kernels.
//
// Purpose:
//   - Expose detCofactor and detBareiss to matrix_test ONLY, so the two
//     algorithms can be cross-checked on the same inputs at any order.
//   - Compiled only with `go test`; invisible in production builds.

// DetCofactor_TestOnly runs first-row cofactor expansion at any order.
func DetCofactor_TestOnly(m Reader) *big.Int {
	a, err := toBig(m)
	if err != nil {
		panic(err)
	}

	return detCofactor(a)
}

// DetBareiss_TestOnly runs Bareiss elimination at any order.
func DetBareiss_TestOnly(m Reader) *big.Int {
	a, err := toBig(m)
	if err != nil {
		panic(err)
	}

	return detBareiss(a)
}
