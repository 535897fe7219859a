// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra layer used to check Toeplitz
// factorizations: a row-major Dense type, Toeplitz views, a reference
// Cholesky factorization and last-row residual verification.
//
// The package offers:
//
//   - Dense with safe At/Set accessors and an optional NaN/Inf policy.
//   - Mul, Transpose, Sub and MatVec with *Dense fast paths and a generic
//     Matrix fallback.
//   - Cholesky: deterministic Cholesky–Banachiewicz reference factorization.
//   - Toeplitz: an implicit T[i][j] = v[|i-j|] view that satisfies gonum's
//     mat.Symmetric, so gonum factorizations can consume it without copying.
//   - VerifyLastRow: compares a kernel-produced last row (lag order) with a
//     reference factor and reports how well L·Lᵀ reproduces T's last row.
//
// Dense factorizations run in O(n³) and are meant for verification of the
// O(n²) Schur kernel, not as a production path.
package matrix
