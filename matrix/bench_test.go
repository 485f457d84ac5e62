// Package matrix_test provides benchmarks for the exact modular kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/hill/matrix"
)

// benchSizes are the matrix orders to benchmark; Hill keys are small.
var benchSizes = []int{2, 3, 5, 8}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkV []int64
)

func BenchmarkMatVecMod(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := RandFilledDense(b, n, n, 0, 25, 1337)
			x := make([]int64, n)
			for i := range x {
				x[i] = int64(i % 26)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MatVecMod(m, x, 26)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkInverseMod(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := IdentityDense(b, n)
			// Unit upper-triangular part keeps det = 1, always invertible.
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					_ = m.Set(i, j, int64((i+j)%26))
				}
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				inv, err := matrix.InverseMod(m, 26)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = inv
			}
		})
	}
}
