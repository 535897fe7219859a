// SPDX-License-Identifier: MIT

package schur

import (
	"fmt"
	"math"
)

// Operation tags for error wrapping.
const (
	opLastRow     = "LastRow"
	opReflections = "Reflections"
)

// schurErrorf wraps err with an operation tag, preserving it for errors.Is.
func schurErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LastRow returns the bottom row of the lower-triangular Cholesky factor L of
// the Toeplitz matrix T[i][j] = v[|i-j|].
//
// The row is returned in lag order: row[k] = L[n-1][n-1-k]. Index 0 is the
// diagonal entry and index n-1 is L[n-1][0]. For n = 1 the result is
// [sqrt(v[0])].
//
// Algorithm Outline:
//  1. Normalize v by v[0]; remember sqrt(v[0]).
//  2. forward = scaled, backward = scaled with backward[0] = 0.
//  3. For iter = 0..n-1 (width = n - iter):
//     rho    = -backward[0] / forward[0]
//     scalar = 1 / sqrt((1-rho)(1+rho))
//     [forward; backward] ← scalar · [[1, rho], [rho, 1]] · [forward; backward]
//     emit forward[width-1] · sqrt(v[0])
//     drop forward's last column, shift backward left by one.
//  4. Reverse the emitted values.
//
// Edge cases:
//   - Empty (or nil) v yields an empty row and a nil error.
//   - An all-zero v (the zero matrix) yields an all-zero row.
//
// Errors (only with validation, the default):
//   - ErrNaNInf, ErrNonPositiveLead, ErrNotPositiveDefinite.
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(n)
func LastRow(v []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts)
	row, _, err := factor(v, o)
	if err != nil {
		return nil, schurErrorf(opLastRow, err)
	}

	return row, nil
}

// Reflections returns the n reflection coefficients rho produced by the
// rotations of LastRow, in iteration order. rho[0] is always 0; for k ≥ 1,
// -rho[k] is the partial autocorrelation of v at lag k.
func Reflections(v []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts)
	_, rhos, err := factor(v, o)
	if err != nil {
		return nil, schurErrorf(opReflections, err)
	}

	return rhos, nil
}

// factor runs the rotation sweep once and returns both the last row (lag
// order) and the reflection coefficients.
func factor(v []float64, o Options) (row, rhos []float64, err error) {
	n := len(v)
	row = make([]float64, 0, n)
	rhos = make([]float64, 0, n)
	if n == 0 {
		return row, rhos, nil
	}

	if o.validate {
		if err = validateSequence(v); err != nil {
			return nil, nil, err
		}
	}
	if isZeroSequence(v) {
		return make([]float64, n), make([]float64, n), nil
	}

	// Stage 1: normalization.
	first := v[0]
	sqrtFirst := math.Sqrt(first)

	// Stage 2: generator rows, width n, shrinking by one per iteration.
	forward := make([]float64, n)
	backward := make([]float64, n)
	for i, x := range v {
		forward[i] = x / first
		backward[i] = x / first
	}
	backward[0] = 0

	// Stage 3: n hyperbolic rotations.
	var (
		width        int
		rho, scalar  float64
		fwd, bwd     float64
		iter, j      int
		emittedLast  float64
		oneMinusRho2 float64
	)
	for iter = 0; iter < n; iter++ {
		width = n - iter
		rho = -backward[0] / forward[0]
		if o.validate && !(math.Abs(rho) < 1) {
			return nil, nil, fmt.Errorf("iteration %d (rho=%g): %w", iter, rho, ErrNotPositiveDefinite)
		}
		rhos = append(rhos, rho)

		oneMinusRho2 = (1 - rho) * (1 + rho)
		scalar = 1 / math.Sqrt(oneMinusRho2)
		for j = 0; j < width; j++ {
			fwd, bwd = forward[j], backward[j]
			forward[j] = scalar * (fwd + rho*bwd)
			backward[j] = scalar * (rho*fwd + bwd)
		}

		emittedLast = forward[width-1] * sqrtFirst
		row = append(row, emittedLast)

		// forward keeps columns 0..width-2; backward drops column 0.
		copy(backward[:width-1], backward[1:width])
	}

	// Stage 4: emitted outermost lag first; reverse into lag order.
	reverse(row)

	return row, rhos, nil
}

// validateSequence enforces the documented domain before any arithmetic.
func validateSequence(v []float64) error {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("v[%d]=%g: %w", i, x, ErrNaNInf)
		}
	}
	if v[0] < 0 || (v[0] == 0 && !isZeroSequence(v)) {
		return fmt.Errorf("v[0]=%g: %w", v[0], ErrNonPositiveLead)
	}

	return nil
}

// isZeroSequence reports whether every entry of v is exactly zero.
func isZeroSequence(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}

	return true
}

// reverse reverses s in place.
func reverse(s []float64) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
