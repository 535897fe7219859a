// SPDX-License-Identifier: MIT

// Package lalg implements elements of the loop algebra used by Bauer
// completion: pairs (A, B) of Laurent polynomials standing for the 2×2 loop
//
//	[[ A,  B],
//	 [-~B, ~A]]
//
// An element is unimodular when A·~A + B·~B equals the identity series.
// Products and conjugates of unimodular elements stay unimodular.
package lalg

import (
	"fmt"

	"github.com/katalvlaran/bauer/lpoly"
)

// Element is an immutable pair of Laurent polynomials.
type Element struct {
	A lpoly.Poly // identity component
	B lpoly.Poly // companion component
}

// New returns the element (a, b).
func New(a, b lpoly.Poly) Element {
	return Element{A: a, B: b}
}

// Identity returns (1, 0).
func Identity() Element {
	return Element{A: lpoly.Identity(), B: lpoly.Zero()}
}

// Mul returns g·h = (a·c - b·~d, a·d + b·~c) for g = (a, b), h = (c, d).
func (g Element) Mul(h Element) Element {
	a := g.A.Mul(h.A).Sub(g.B.Mul(h.B.Conj()))
	b := g.A.Mul(h.B).Add(g.B.Mul(h.A.Conj()))

	return Element{A: a, B: b}
}

// Conj returns the inverse of a unimodular element: (~a, -b).
func (g Element) Conj() Element {
	return Element{A: g.A.Conj(), B: g.B.Scale(-1)}
}

// Unitarity returns A·~A + B·~B.
func (g Element) Unitarity() lpoly.Poly {
	return g.A.Mul(g.A.Conj()).Add(g.B.Mul(g.B.Conj()))
}

// Defect returns max |Unitarity() - Id| over all degrees.
func (g Element) Defect() float64 {
	return g.Unitarity().Sub(lpoly.Identity()).MaxAbs()
}

// IsUnimodular reports whether Defect() ≤ eps.
func (g Element) IsUnimodular(eps float64) bool {
	return g.Defect() <= eps
}

// Degree returns the larger top degree of the two components.
func (g Element) Degree() int {
	return max(g.A.Degree(), g.B.Degree())
}

// String renders the pair as "(A; B)".
func (g Element) String() string {
	return fmt.Sprintf("(%s; %s)", g.A, g.B)
}
