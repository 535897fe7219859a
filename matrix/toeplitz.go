// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const opToeplitz = "Toeplitz"

// Toeplitz is an implicit symmetric Toeplitz matrix T[i][j] = v[|i-j|].
//
// It satisfies gonum's mat.Symmetric, so gonum factorizations read it
// without materializing n² entries. Dense converts it into this package's
// Matrix world.
type Toeplitz struct {
	v []float64
}

var _ mat.Symmetric = (*Toeplitz)(nil)

// NewToeplitzView wraps a copy of v as an implicit Toeplitz matrix.
// Errors: ErrEmptySequence when v is empty.
func NewToeplitzView(v []float64) (*Toeplitz, error) {
	if len(v) == 0 {
		return nil, matrixErrorf(opToeplitz, ErrEmptySequence)
	}
	cp := make([]float64, len(v))
	copy(cp, v)

	return &Toeplitz{v: cp}, nil
}

// NewToeplitz materializes T[i][j] = v[|i-j|] as an n×n Dense.
//
// Errors:
//   - ErrEmptySequence when v is empty.
//   - ErrNaNInf when the numeric policy rejects an entry of v.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewToeplitz(v []float64, opts ...Option) (*Dense, error) {
	t, err := NewToeplitzView(v)
	if err != nil {
		return nil, err
	}

	return t.Dense(opts...)
}

// Len returns n, the order of the matrix.
func (t *Toeplitz) Len() int { return len(t.v) }

// Sequence returns a copy of the defining sequence.
func (t *Toeplitz) Sequence() []float64 {
	out := make([]float64, len(t.v))
	copy(out, t.v)

	return out
}

// Dims implements mat.Matrix.
func (t *Toeplitz) Dims() (r, c int) { return len(t.v), len(t.v) }

// SymmetricDim implements mat.Symmetric.
func (t *Toeplitz) SymmetricDim() int { return len(t.v) }

// At implements mat.Matrix. It panics with mat.ErrIndexOutOfRange like
// gonum's own types.
func (t *Toeplitz) At(i, j int) float64 {
	n := len(t.v)
	if i < 0 || i >= n || j < 0 || j >= n {
		panic(mat.ErrIndexOutOfRange)
	}
	if i >= j {
		return t.v[i-j]
	}

	return t.v[j-i]
}

// T implements mat.Matrix; a symmetric matrix is its own transpose.
func (t *Toeplitz) T() mat.Matrix { return t }

// Dense materializes the view.
func (t *Toeplitz) Dense(opts ...Option) (*Dense, error) {
	n := len(t.v)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = t.At(i, j)
		}
	}
	d, err := NewDenseFromRows(rows, opts...)
	if err != nil {
		return nil, matrixErrorf(opToeplitz, err)
	}

	return d, nil
}
