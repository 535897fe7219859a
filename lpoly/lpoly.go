// SPDX-License-Identifier: MIT

// Package lpoly implements real Laurent polynomials: formal two-sided series
// truncated to a finite window of degrees.
//
// A Poly is an immutable value {coefs, dmin}; coefs[i] is the coefficient of
// z^(dmin+i). Coefficients outside the window are zero, so the finite value
// Identity() (1 at degree 0) behaves as the two-sided identity under Add, Sub
// and Mul.
//
// Complexity:
//
//	Add/Sub O(n+m), Mul O(n·m), Conj O(n).
package lpoly

import (
	"fmt"
	"math"
	"strings"
)

// Poly is a Laurent polynomial. The zero value is the zero series.
type Poly struct {
	coefs []float64 // coefs[i] multiplies z^(dmin+i)
	dmin  int       // lowest degree of the window
}

// New returns the Laurent polynomial Σ coefs[i]·z^(dmin+i).
// coefs is copied; the caller may reuse it.
func New(coefs []float64, dmin int) Poly {
	c := make([]float64, len(coefs))
	copy(c, coefs)

	return Poly{coefs: c, dmin: dmin}
}

// Identity returns 1·z^0.
func Identity() Poly { return Poly{coefs: []float64{1}} }

// Zero returns the empty series.
func Zero() Poly { return Poly{} }

// Coefs returns a copy of the coefficient window, lowest degree first.
func (p Poly) Coefs() []float64 {
	c := make([]float64, len(p.coefs))
	copy(c, p.coefs)

	return c
}

// Dmin returns the lowest degree of the window.
func (p Poly) Dmin() int { return p.dmin }

// Degree returns the highest degree of the window (dmin+len-1).
// For an empty window it is dmin-1.
func (p Poly) Degree() int { return p.dmin + len(p.coefs) - 1 }

// Len returns the number of coefficients in the window.
func (p Poly) Len() int { return len(p.coefs) }

// IsZero reports whether every coefficient is exactly zero.
func (p Poly) IsZero() bool {
	for _, c := range p.coefs {
		if c != 0 {
			return false
		}
	}

	return true
}

// Coef returns the coefficient of z^d (0 outside the window).
func (p Poly) Coef(d int) float64 {
	i := d - p.dmin
	if i < 0 || i >= len(p.coefs) {
		return 0
	}

	return p.coefs[i]
}

// Window returns the dense coefficient slice for degrees lo..hi inclusive,
// zero-filled outside p's window. hi < lo yields an empty slice.
func (p Poly) Window(lo, hi int) []float64 {
	if hi < lo {
		return []float64{}
	}
	out := make([]float64, hi-lo+1)
	for d := lo; d <= hi; d++ {
		out[d-lo] = p.Coef(d)
	}

	return out
}

// Truncate restricts p to degrees lo..hi.
func (p Poly) Truncate(lo, hi int) Poly {
	return Poly{coefs: p.Window(lo, hi), dmin: lo}
}

// Add returns p + q over the union of both windows.
func (p Poly) Add(q Poly) Poly { return p.combine(q, 1) }

// Sub returns p - q over the union of both windows.
func (p Poly) Sub(q Poly) Poly { return p.combine(q, -1) }

// combine computes p + sign·q.
func (p Poly) combine(q Poly, sign float64) Poly {
	if len(p.coefs) == 0 {
		return q.Scale(sign)
	}
	if len(q.coefs) == 0 {
		return New(p.coefs, p.dmin)
	}
	lo := min(p.dmin, q.dmin)
	hi := max(p.Degree(), q.Degree())
	out := make([]float64, hi-lo+1)
	for i, c := range p.coefs {
		out[p.dmin-lo+i] += c
	}
	for i, c := range q.coefs {
		out[q.dmin-lo+i] += sign * c
	}

	return Poly{coefs: out, dmin: lo}
}

// Mul returns the product p·q (discrete convolution of the windows).
// The result window is [p.dmin+q.dmin, p.Degree()+q.Degree()].
func (p Poly) Mul(q Poly) Poly {
	if len(p.coefs) == 0 || len(q.coefs) == 0 {
		return Poly{dmin: p.dmin + q.dmin}
	}
	out := make([]float64, len(p.coefs)+len(q.coefs)-1)
	for i, a := range p.coefs {
		if a == 0 {
			continue
		}
		for j, b := range q.coefs {
			out[i+j] += a * b
		}
	}

	return Poly{coefs: out, dmin: p.dmin + q.dmin}
}

// Conj returns the involution ~p: p(z) → p(1/z). Coefficients are reversed and
// the window is reflected to [-Degree(), -Dmin()].
func (p Poly) Conj() Poly {
	n := len(p.coefs)
	out := make([]float64, n)
	for i, c := range p.coefs {
		out[n-1-i] = c
	}

	return Poly{coefs: out, dmin: -p.Degree()}
}

// Scale returns alpha·p.
func (p Poly) Scale(alpha float64) Poly {
	out := make([]float64, len(p.coefs))
	for i, c := range p.coefs {
		out[i] = alpha * c
	}

	return Poly{coefs: out, dmin: p.dmin}
}

// Trim drops leading and trailing coefficients with |c| ≤ eps.
// A fully trimmed poly keeps its dmin and an empty window.
func (p Poly) Trim(eps float64) Poly {
	lo, hi := 0, len(p.coefs)-1
	for lo <= hi && math.Abs(p.coefs[lo]) <= eps {
		lo++
	}
	for hi >= lo && math.Abs(p.coefs[hi]) <= eps {
		hi--
	}
	if lo > hi {
		return Poly{dmin: p.dmin}
	}

	return New(p.coefs[lo:hi+1], p.dmin+lo)
}

// Equal reports whether |p_d - q_d| ≤ eps at every degree of either window.
func (p Poly) Equal(q Poly, eps float64) bool {
	return p.Sub(q).MaxAbs() <= eps
}

// IsIdentity reports whether p equals Identity() within eps.
func (p Poly) IsIdentity(eps float64) bool {
	return p.Equal(Identity(), eps)
}

// MaxAbs returns max |coef| (0 for an empty window).
func (p Poly) MaxAbs() float64 {
	var m float64
	for _, c := range p.coefs {
		m = math.Max(m, math.Abs(c))
	}

	return m
}

// String renders p as "c0·z^d0 + c1·z^d1 + ...", skipping zero terms.
func (p Poly) String() string {
	var sb strings.Builder
	for i, c := range p.coefs {
		if c == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" + ")
		}
		fmt.Fprintf(&sb, "%g·z^%d", c, p.dmin+i)
	}
	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}
