// SPDX-License-Identifier: MIT

package hill_test

import (
	"fmt"

	"github.com/katalvlaran/hill/hill"
)

// ExampleEncrypt encrypts a short plaintext with a 2x2 key.
func ExampleEncrypt() {
	ct, err := hill.Encrypt("July", "LDIH", 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ct)
	// Output: DELW
}

// ExampleDecrypt shows the trailing pad letters being removed.
func ExampleDecrypt() {
	pt, err := hill.Decrypt("LGYJMGXXAF", "LDIH", 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(pt)
	// Output: HELLOWORLD
}

// ExampleInvertMatrix prints a 3x3 key and its inverse over Z/26.
func ExampleInvertMatrix() {
	k, _ := hill.BuildKeyMatrix("GYBNQURVK", 3)
	inv, err := hill.InvertMatrix(k)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(k)
	fmt.Print(inv)
	// Output:
	// [6, 24, 1]
	// [13, 16, 20]
	// [17, 21, 10]
	// [0, 21, 10]
	// [8, 3, 1]
	// [17, 10, 20]
}

// ExampleNew reports a key that can only encrypt.
func ExampleNew() {
	c, _ := hill.New("AAAAAAAAA", 3)
	fmt.Println(c.Invertible())
	_, err := c.Decrypt("AAA")
	fmt.Println(err)
	// Output:
	// false
	// Decrypt: InvertMatrix: InverseMod: ModInverse: 0 mod 26: matrix: not invertible modulo n
}
