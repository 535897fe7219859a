// SPDX-License-Identifier: MIT

// Package schur computes the last row of the Cholesky factor of a symmetric
// positive-definite Toeplitz matrix without ever materializing the matrix.
//
// 🚀 What is it?
//
//	A Toeplitz matrix T[i][j] = v[|i-j|] is fully described by its defining
//	sequence v. The generalized Schur algorithm factors T = L·Lᵀ in O(n²) time
//	by sweeping a pair of generator rows (forward / backward prediction errors)
//	through n hyperbolic rotations. Every rotation is parameterized by a
//	reflection coefficient rho, the partial autocorrelation at that lag, whose
//	magnitude stays strictly below 1 exactly when T is positive definite.
//
// ✨ Key features:
//   - LastRow: bottom row of L, in lag order (index 0 is the diagonal entry).
//   - Reflections: the rho sequence produced along the way.
//   - O(n²) time, O(n) extra memory; input is never mutated.
//   - Eager validation by default; WithoutValidation keeps the raw
//     floating-point behaviour (NaN instead of an error) for trace comparisons.
//
// ⚙️ Usage:
//
//	row, err := schur.LastRow([]float64{2, 1})
//	// row == [sqrt(3/2), 1/sqrt(2)]: L[1][1], L[1][0] of [[2,1],[1,2]]
//
// Complexity:
//
//   - Time:   O(n²)
//   - Memory: O(n)
package schur
