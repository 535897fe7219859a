// SPDX-License-Identifier: MIT

package completion_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bauer/completion"
	"github.com/katalvlaran/bauer/lpoly"
	"github.com/katalvlaran/bauer/schur"
)

// TestFromBauer_DegreeContract: lowest degree -n, exactly n+1 coefficients.
func TestFromBauer_DegreeContract(t *testing.T) {
	inputs := [][]float64{
		{0.5},
		{0.3, 0.2},
		{0.4, -0.3, 0.2},
		{0.1, 0.1, 0.1, 0.1, 0.1},
	}
	for _, coefs := range inputs {
		p := lpoly.New(coefs, 0)
		n := p.Degree()

		g, err := completion.FromBauer(p)
		require.NoError(t, err, "coefs=%v", coefs)
		assert.Equal(t, -n, g.B.Dmin(), "coefs=%v", coefs)
		assert.Equal(t, n+1, g.B.Len(), "coefs=%v", coefs)
		assert.Equal(t, p.Coefs(), g.A.Coefs(), "identity component is the input")
	}
}

// TestFromBauer_DegreeZero: a single coefficient c completes to sqrt(1-c²).
func TestFromBauer_DegreeZero(t *testing.T) {
	g, err := completion.FromBauer(lpoly.New([]float64{0.6}, 0))
	require.NoError(t, err)
	require.Equal(t, 1, g.B.Len())
	assert.InDelta(t, 0.8, g.B.Coef(0), 1e-15)
	assert.True(t, g.IsUnimodular(1e-15))
}

// TestFromBauer_Identity: p = Id has a zero defect and a single ~0 companion.
func TestFromBauer_Identity(t *testing.T) {
	g, err := completion.FromBauer(lpoly.Identity())
	require.NoError(t, err)
	assert.Equal(t, 0, g.B.Dmin())
	require.Equal(t, 1, g.B.Len())
	assert.InDelta(t, 0.0, g.B.Coef(0), 1e-12)
	assert.True(t, g.IsUnimodular(1e-12))
}

// TestFromBauer_DegreeZeroCoefficientOfUnitarity: the degree-0 term of
// p·~p + x·~x equals 1 for any window, because Σ row² = v[0].
func TestFromBauer_DegreeZeroCoefficientOfUnitarity(t *testing.T) {
	p := lpoly.New([]float64{0.4, -0.3, 0.2}, 0)
	g, err := completion.FromBauer(p)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, g.Unitarity().Coef(0), 1e-14)
}

// TestFromBauer_WindowConverges: wide windows give a unimodular pair.
func TestFromBauer_WindowConverges(t *testing.T) {
	p := lpoly.New([]float64{0.4, -0.3, 0.2}, 0)

	narrow, err := completion.FromBauer(p)
	require.NoError(t, err)
	wide, err := completion.FromBauer(p, completion.WithWindow(64))
	require.NoError(t, err)

	assert.Equal(t, -2, wide.B.Dmin())
	assert.Equal(t, 3, wide.B.Len())
	assert.Less(t, wide.Defect(), narrow.Defect())
	assert.True(t, wide.IsUnimodular(1e-12), "defect %g", wide.Defect())
	assert.Greater(t, narrow.Defect(), 1e-4, "classical window is only approximate")
}

// TestFromBauer_SmallWindowIsRaised: windows below n+1 fall back to n+1.
func TestFromBauer_SmallWindowIsRaised(t *testing.T) {
	p := lpoly.New([]float64{0.3, 0.2}, 0)
	a, err := completion.FromBauer(p)
	require.NoError(t, err)
	b, err := completion.FromBauer(p, completion.WithWindow(1))
	require.NoError(t, err)
	assert.Equal(t, a.B.Coefs(), b.B.Coefs())
}

// TestFromBauer_ShiftedInput: p = c·z^k completes with a constant.
func TestFromBauer_ShiftedInput(t *testing.T) {
	p := lpoly.New([]float64{0.6}, 2)
	g, err := completion.FromBauer(p)
	require.NoError(t, err)
	assert.Equal(t, -2, g.B.Dmin())
	assert.Equal(t, 3, g.B.Len())
	assert.InDelta(t, 0.8, g.B.Coef(-2), 1e-15)
	assert.True(t, g.IsUnimodular(1e-15))
}

func TestFromBauer_Errors(t *testing.T) {
	_, err := completion.FromBauer(lpoly.Zero())
	assert.ErrorIs(t, err, completion.ErrNegativeDegree)

	_, err = completion.FromBauer(lpoly.New([]float64{1}, -3))
	assert.ErrorIs(t, err, completion.ErrNegativeDegree)

	_, err = completion.FromBauer(lpoly.New([]float64{0.1, 0.1}, -1))
	assert.ErrorIs(t, err, completion.ErrNotCausal)

	// |p| > 1 on the unit circle: the defect is not positive definite.
	_, err = completion.FromBauer(lpoly.New([]float64{0.9, 0.9}, 0))
	assert.ErrorIs(t, err, schur.ErrNonPositiveLead)

	// |p(-1)| = 1.2 while the degree-0 defect stays positive.
	_, err = completion.FromBauer(lpoly.New([]float64{0.6, -0.6}, 0), completion.WithWindow(8))
	assert.ErrorIs(t, err, schur.ErrNotPositiveDefinite)
}

func TestFromBauer_WithoutValidation(t *testing.T) {
	g, err := completion.FromBauer(
		lpoly.New([]float64{0.9, 0.9}, 0),
		completion.WithKernelOptions(schur.WithoutValidation()),
	)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(g.B.Coef(0)))
}

func TestDefiningSequence(t *testing.T) {
	p := lpoly.New([]float64{0.3, 0.2}, 0)
	v, err := completion.DefiningSequence(p)
	require.NoError(t, err)
	require.Len(t, v, 2)
	assert.InDelta(t, 1-0.09-0.04, v[0], 1e-15)
	assert.InDelta(t, -0.06, v[1], 1e-15)

	v, err = completion.DefiningSequence(p, completion.WithWindow(5))
	require.NoError(t, err)
	assert.Len(t, v, 5)
	assert.Equal(t, []float64{0, 0, 0}, v[2:])

	_, err = completion.DefiningSequence(lpoly.Zero())
	assert.ErrorIs(t, err, completion.ErrNegativeDegree)
	assert.True(t, strings.HasPrefix(err.Error(), "DefiningSequence: "), err.Error())

	_, err = completion.FromBauer(lpoly.Zero())
	assert.True(t, strings.HasPrefix(err.Error(), "FromBauer: "), err.Error())
}

func TestDefect(t *testing.T) {
	r := completion.Defect(lpoly.New([]float64{0.3, 0.2}, 0))
	assert.Equal(t, -1, r.Dmin())
	assert.Equal(t, 1, r.Degree())
	assert.InDelta(t, r.Coef(1), r.Coef(-1), 0)
}

func TestWithWindow_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { completion.WithWindow(-1) })
	assert.Equal(t, completion.DefaultWindow, completion.DefaultOptions().Window())
}
