// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used to verify Toeplitz
// factorizations: subtraction, multiplication, transpose, matrix-vector
// products, max-deviation and a reference Cholesky factorization.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Notes:
//   - Kernels use the central validators and wrap failures via matrixErrorf.
//   - *Dense operands unlock flat-slice fast paths; any Matrix works via At/Set.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for substitution and accumulation loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opCholesky  = "Cholesky"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Sub computes elementwise a - b into a freshly allocated Dense.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func Sub(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for k := range res.data {
				res.data[k] = da.data[k] - db.data[k]
			}

			return res, nil
		}
	}

	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, err)
			}
			res.data[i*cols+j] = av - bv
		}
	}

	return res, nil
}

// Mul computes the matrix product a×b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate Dense(a.Rows, b.Cols).
//   - Stage 2: *Dense fast path in i-k-j order (row-major friendly);
//     otherwise a generic i-j-k triple loop over At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//
// Complexity:
//   - Time O(n·m·p), Space O(n·p).
//
// AI-Hints:
//   - If you can keep A as *Dense and cache-friendly by rows, you unlock the best path here.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[i*cols+j]
			}
		}

		return res, nil
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m·x.
//
// Errors:
//   - ErrNilMatrix (nil m or nil x), ErrDimensionMismatch (len(x) != m.Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var sum float64
		for i := 0; i < rows; i++ {
			sum = ZeroSum
			base := i * cols
			for j := 0; j < cols; j++ {
				sum += d.data[base+j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += v * x[j]
		}
	}

	return y, nil
}

// MaxAbsDiff returns max_{i,j} |a[i,j] - b[i,j]|. NaN entries make the
// result NaN.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
func MaxAbsDiff(a, b Matrix) (float64, error) {
	diff, err := Sub(a, b)
	if err != nil {
		return 0, err
	}
	worst := 0.0
	d := diff.(*Dense)
	for _, v := range d.data {
		if math.IsNaN(v) {
			return math.NaN(), nil
		}
		worst = math.Max(worst, math.Abs(v))
	}

	return worst, nil
}

// Cholesky returns the lower-triangular factor L with m = L·Lᵀ.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, eps); allocate L (n×n).
//   - Stage 2: Cholesky–Banachiewicz, row by row:
//     L[i][j] = (m[i][j] - Σ_{k<j} L[i][k]·L[j][k]) / L[j][j] for j < i,
//     L[i][i] = sqrt(m[i][i] - Σ_{k<i} L[i][k]²).
//
// Behavior highlights:
//   - Deterministic: fixed i→j→k order, no pivoting.
//   - A pivot that is not strictly positive stops the factorization.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry (Stage 1).
//   - ErrNotPositiveDefinite (Stage 2, wrapped with the failing row).
//
// Complexity:
//   - Time O(n³/3), Space O(n²).
//
// AI-Hints:
//   - Pass *Dense to skip interface dispatch in the inner loop.
//   - This is the reference path for verification; the Schur kernel computes
//     the last row of the same factor in O(n²).
func Cholesky(m Matrix, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	n := m.Rows()

	var src *Dense
	if d, ok := m.(*Dense); ok {
		src = d
	} else {
		c, err := NewDense(n, n, WithNoValidateNaNInf())
		if err != nil {
			return nil, matrixErrorf(opCholesky, err)
		}
		var v float64
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opCholesky, err)
				}
				c.data[i*n+j] = v
			}
		}
		src = c
	}

	L, err := NewDense(n, n, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	var sum float64
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum = src.data[i*n+j]
			for k := 0; k < j; k++ {
				sum -= L.data[i*n+k] * L.data[j*n+k]
			}
			if i == j {
				if !(sum > 0) {
					return nil, matrixErrorf(opCholesky, fmt.Errorf("row %d: %w", i, ErrNotPositiveDefinite))
				}
				L.data[i*n+i] = math.Sqrt(sum)

				continue
			}
			L.data[i*n+j] = sum / L.data[j*n+j]
		}
	}

	return L, nil
}
