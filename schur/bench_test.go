// SPDX-License-Identifier: MIT

package schur_test

import (
	"testing"

	"github.com/katalvlaran/bauer/schur"
)

// benchmarkLastRow runs LastRow on an AR(1) autocovariance of length n.
func benchmarkLastRow(b *testing.B, n int) {
	v := ar1Autocov(0.6, n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := schur.LastRow(v); err != nil {
			b.Fatalf("LastRow failed: %v", err)
		}
	}
}

func BenchmarkLastRow_64(b *testing.B)   { benchmarkLastRow(b, 64) }
func BenchmarkLastRow_512(b *testing.B)  { benchmarkLastRow(b, 512) }
func BenchmarkLastRow_4096(b *testing.B) { benchmarkLastRow(b, 4096) }
