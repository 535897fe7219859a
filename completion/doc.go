// SPDX-License-Identifier: MIT

// Package completion completes the causal half p of a loop-algebra element
// into a unimodular pair (p, x) with Bauer's spectral-factorization method.
//
// 🚀 How it works
//
//	For p of degree n the defect r = Id - p·~p is a symmetric Laurent
//	polynomial supported on degrees -n..n. Its coefficients at degrees 0..n
//	define a positive-definite Toeplitz matrix whenever |p| < 1 on the unit
//	circle. The last Cholesky row of that matrix (package schur), read in lag
//	order, gives the coefficients of the companion x, placed at degrees -n..0.
//
//	The classical construction uses an (n+1)×(n+1) Toeplitz window. Since r is
//	banded, WithWindow(m) zero-pads the sequence to m entries; the Cholesky
//	rows converge to the outer factor as m grows, and p·~p + x·~x → Id.
//
// ⚙️ Usage:
//
//	p := lpoly.New([]float64{0.4, -0.3, 0.2}, 0)
//	g, err := completion.FromBauer(p, completion.WithWindow(64))
//	// g.A == p, g.B.Dmin() == -2, g.IsUnimodular(1e-12)
package completion
