// SPDX-License-Identifier: MIT

package completion

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bauer/lalg"
	"github.com/katalvlaran/bauer/lpoly"
	"github.com/katalvlaran/bauer/schur"
)

var (
	// ErrNegativeDegree is returned when p has no non-negative top degree
	// (empty window, or a window entirely below degree 0).
	ErrNegativeDegree = errors.New("completion: input degree must be >= 0")

	// ErrNotCausal is returned when p has coefficients below degree 0.
	ErrNotCausal = errors.New("completion: input must have lowest degree >= 0")
)

const (
	opFromBauer        = "FromBauer"
	opDefiningSequence = "DefiningSequence"
)

// Defect returns Id - p·~p.
func Defect(p lpoly.Poly) lpoly.Poly {
	return lpoly.Identity().Sub(p.Mul(p.Conj()))
}

// DefiningSequence returns the Toeplitz defining sequence Bauer's method
// factors for p: the coefficients of Defect(p) at degrees 0..n (positions
// n..2n of its [-n, n] window), zero-padded to the configured window.
func DefiningSequence(p lpoly.Poly, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts)
	n, err := checkInput(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDefiningSequence, err)
	}

	return definingSequence(p, n, o.window), nil
}

// FromBauer finds the loop-algebra element whose identity component is p.
//
// Implementation:
//   - Stage 1: n = p.Degree(); r = Id - p·~p.
//   - Stage 2: v = r at degrees 0..n, zero-padded to the window m ≥ n+1.
//   - Stage 3: row = schur.LastRow(v) (lag order, length m).
//   - Stage 4: x = lpoly.New(row[:n+1], -n); return lalg.New(p, x).
//
// Postconditions:
//   - g.A equals p; g.B.Dmin() == -n; g.B.Len() == n+1.
//
// Errors:
//   - ErrNegativeDegree, ErrNotCausal (input shape).
//   - schur.ErrNotPositiveDefinite and friends when |p| ≥ 1 somewhere on the
//     unit circle (the defect is not positive definite).
//
// Complexity:
//
//	Time O(n² + m²), Memory O(n + m).
func FromBauer(p lpoly.Poly, opts ...Option) (lalg.Element, error) {
	o := gatherOptions(opts)
	n, err := checkInput(p)
	if err != nil {
		return lalg.Element{}, fmt.Errorf("%s: %w", opFromBauer, err)
	}

	v := definingSequence(p, n, o.window)
	row, err := schur.LastRow(v, o.kernelOpts...)
	if err != nil {
		return lalg.Element{}, fmt.Errorf("%s: %w", opFromBauer, err)
	}

	xpoly := lpoly.New(row[:n+1], -n)

	return lalg.New(p, xpoly), nil
}

// checkInput returns p's degree after validating its shape.
func checkInput(p lpoly.Poly) (int, error) {
	n := p.Degree()
	if n < 0 || p.Len() == 0 {
		return 0, ErrNegativeDegree
	}
	if p.Dmin() < 0 {
		return 0, ErrNotCausal
	}

	return n, nil
}

// definingSequence reads Defect(p) at degrees 0..n and pads to the window.
func definingSequence(p lpoly.Poly, n, window int) []float64 {
	m := max(window, n+1)
	r := Defect(p)

	return r.Window(0, m-1)
}
