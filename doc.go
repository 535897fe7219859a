// SPDX-License-Identifier: MIT

// Package bauer computes last rows of Toeplitz Cholesky factors and uses
// them to complete causal Laurent polynomials into unimodular pairs.
//
// 🚀 What is bauer?
//
//	A small numerical library and CLI that brings together:
//		• schur: O(n²) last Cholesky row of a symmetric PD Toeplitz matrix
//		• lpoly: real Laurent polynomials (Add, Mul, Conj, windows)
//		• lalg: loop-algebra elements (A, B) with unitarity checks
//		• completion: Bauer spectral-factorization completion p ↦ (p, x)
//		• matrix: dense verification layer backed by gonum
//		• batch: bounded concurrent completions
//
// Under the hood:
//
//	schur/       : Schur kernel, reflection coefficients
//	lpoly/       : Laurent polynomial arithmetic
//	lalg/        : loop-algebra elements
//	completion/  : Bauer's method
//	matrix/      : Dense, Toeplitz views, Cholesky, VerifyLastRow
//	batch/       : errgroup fan-out over completion
//	cmd/bauer/   : command-line interface
//
// Quick example:
//
//	p := lpoly.New([]float64{0.4, -0.3, 0.2}, 0)
//	g, _ := completion.FromBauer(p, completion.WithWindow(64))
//	// g.B has lowest degree -2 and p·~p + x·~x ≈ 1.
//
//	go install github.com/katalvlaran/bauer/cmd/bauer@latest
package bauer
