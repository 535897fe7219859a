// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bauer/matrix"
)

// ExampleVerifyLastRow checks the last Cholesky row of [[2,1],[1,2]].
func ExampleVerifyLastRow() {
	row := []float64{math.Sqrt(1.5), 1 / math.Sqrt2}
	res, err := matrix.VerifyLastRow([]float64{2, 1}, row)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("n=%d reference=%s ok=%v\n", res.N, res.Reference, res.OK(1e-12))
	// Output:
	// n=2 reference=gonum ok=true
}

// ExampleCholesky factors a 2×2 SPD matrix.
func ExampleCholesky() {
	a, _ := matrix.NewDenseFromRows([][]float64{{4, 2}, {2, 3}})
	L, err := matrix.Cholesky(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(L)
	// Output:
	// [2, 0]
	// [1, 1.4142135623730951]
}
