// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const opVerifyLastRow = "VerifyLastRow"

// Residual reports how well a last Cholesky row matches a reference.
type Residual struct {
	// N is the order of the Toeplitz matrix.
	N int `json:"n" yaml:"n"`
	// Reference names the factorization compared against.
	Reference string `json:"reference" yaml:"reference"`
	// RowError is max_k |row[k] - L[n-1][n-1-k]| against the reference factor.
	RowError float64 `json:"row_error" yaml:"row_error"`
	// ReconstructionError is max_j |(L·Lᵀ)[n-1][j] - T[n-1][j]| with the
	// reference factor's last row replaced by row.
	ReconstructionError float64 `json:"reconstruction_error" yaml:"reconstruction_error"`
	// FactorError is max |L·Lᵀ - T| for the unmodified reference factor.
	FactorError float64 `json:"factor_error" yaml:"factor_error"`
}

// OK reports whether both errors are at most eps.
func (r Residual) OK(eps float64) bool {
	return r.RowError <= eps && r.ReconstructionError <= eps
}

// VerifyLastRow checks a last Cholesky row, given in lag order
// (row[k] = L[n-1][n-1-k]), against a dense factorization of the Toeplitz
// matrix defined by v.
//
// Implementation:
//   - Stage 1: validate shapes and finiteness.
//   - Stage 2: factor T with the configured Reference (gonum by default).
//   - Stage 3: compare row with the reference's last row.
//   - Stage 4: splice row into the factor and rebuild the last row of L·Lᵀ
//     as L·ℓ with MatVec, where ℓ is the spliced last row.
//   - Stage 5: measure the reference itself, max |L·Lᵀ - T| via Mul,
//     Transpose and MaxAbsDiff.
//
// Errors:
//   - ErrEmptySequence, ErrDimensionMismatch, ErrNaNInf (Stage 1).
//   - ErrNotPositiveDefinite (Stage 2).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func VerifyLastRow(v, row []float64, opts ...Option) (Residual, error) {
	o := gatherOptions(opts...)
	n := len(v)
	if n == 0 {
		return Residual{}, matrixErrorf(opVerifyLastRow, ErrEmptySequence)
	}
	if err := ValidateVecLen(row, n); err != nil {
		return Residual{}, matrixErrorf(opVerifyLastRow, err)
	}
	if err := ValidateFinite(v); err != nil {
		return Residual{}, matrixErrorf(opVerifyLastRow, err)
	}
	if err := ValidateFinite(row); err != nil {
		return Residual{}, matrixErrorf(opVerifyLastRow, err)
	}

	view, err := NewToeplitzView(v)
	if err != nil {
		return Residual{}, matrixErrorf(opVerifyLastRow, err)
	}
	L, err := referenceFactor(view, o)
	if err != nil {
		return Residual{}, matrixErrorf(opVerifyLastRow, err)
	}

	res := Residual{N: n, Reference: o.reference.String()}
	last := (n - 1) * n
	for k, x := range row {
		res.RowError = math.Max(res.RowError, math.Abs(x-L.data[last+n-1-k]))
	}

	spliced := L.Clone().(*Dense)
	for k, x := range row {
		spliced.data[last+n-1-k] = x
	}
	lastRow, err := spliced.Row(n - 1)
	if err != nil {
		return Residual{}, matrixErrorf(opVerifyLastRow, err)
	}
	rebuilt, err := MatVec(spliced, lastRow)
	if err != nil {
		return Residual{}, matrixErrorf(opVerifyLastRow, err)
	}
	for j, x := range rebuilt {
		res.ReconstructionError = math.Max(res.ReconstructionError, math.Abs(x-view.At(n-1, j)))
	}

	if res.FactorError, err = factorError(L, view); err != nil {
		return Residual{}, matrixErrorf(opVerifyLastRow, err)
	}

	return res, nil
}

// factorError returns max |L·Lᵀ - T|.
func factorError(L *Dense, t *Toeplitz) (float64, error) {
	lt, err := Transpose(L)
	if err != nil {
		return 0, err
	}
	prod, err := Mul(L, lt)
	if err != nil {
		return 0, err
	}
	T, err := t.Dense(WithNoValidateNaNInf())
	if err != nil {
		return 0, err
	}

	return MaxAbsDiff(prod, T)
}

// referenceFactor returns the lower Cholesky factor of t as a Dense.
func referenceFactor(t *Toeplitz, o Options) (*Dense, error) {
	if o.reference == ReferenceDense {
		d, err := t.Dense(WithNoValidateNaNInf())
		if err != nil {
			return nil, err
		}
		L, err := Cholesky(d, WithEpsilon(o.eps))
		if err != nil {
			return nil, err
		}

		return L.(*Dense), nil
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(t); !ok {
		return nil, fmt.Errorf("gonum: %w", ErrNotPositiveDefinite)
	}
	var tri mat.TriDense
	chol.LTo(&tri)

	n := t.Len()
	L, err := NewDense(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			L.data[i*n+j] = tri.At(i, j)
		}
	}

	return L, nil
}
