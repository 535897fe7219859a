// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bauer/matrix"
)

func TestNewDense_Shapes(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m := MustDense(t, 2, 3)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, 0.0, MustAt(t, m, i, j))
		}
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	m := MustDense(t, 2, 2)
	_, err := m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)

	MustSet(t, m, 1, 0, 3.5)
	assert.Equal(t, 3.5, MustAt(t, m, 1, 0))
}

func TestDense_NaNPolicy(t *testing.T) {
	m := MustDense(t, 1, 1)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
	assert.True(t, math.IsInf(MustAt(t, loose, 0, 0), 1))
}

func TestDense_CloneIsDeep(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	MustSet(t, c, 0, 0, 9)
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, 9.0, MustAt(t, c, 0, 0))
}

func TestDense_RowAndString(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2}, {3, 4.5}})
	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4.5}, row)
	_, err = m.Row(2)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	assert.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}

func TestNewDenseFromRows_Ragged(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
