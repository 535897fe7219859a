// SPDX-License-Identifier: MIT
// Package schur: sentinel error set.
// Kernels return these sentinels wrapped with an operation tag; callers match
// them with errors.Is.

package schur

import "errors"

var (
	// ErrNonPositiveLead is returned when v[0] < 0, or v[0] == 0 while some
	// other entry is non-zero. Only the all-zero sequence may start with 0.
	ErrNonPositiveLead = errors.New("schur: leading entry must be positive")

	// ErrNotPositiveDefinite is returned when a reflection coefficient leaves
	// the open interval (-1, 1), i.e. the Toeplitz matrix is not positive definite.
	ErrNotPositiveDefinite = errors.New("schur: toeplitz matrix is not positive definite")

	// ErrNaNInf signals a NaN or ±Inf entry in the defining sequence.
	ErrNaNInf = errors.New("schur: NaN or Inf encountered")
)
