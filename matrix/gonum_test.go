// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

func TestGonumRoundTrip(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	g, err := matrix.ToGonum(a)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, g.At(1, 2))

	back, err := matrix.FromGonum(g)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, back))

	// ToGonum hands over a copy
	g.Set(0, 0, 100)
	require.Equal(t, 1.0, MustAt(t, a, 0, 0))
}

func TestWrapGonum(t *testing.T) {
	t.Parallel()

	g := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	v, err := matrix.WrapGonum(g)
	require.NoError(t, err)
	require.Equal(t, 2, v.Rows())
	require.Equal(t, 2, v.Cols())

	_, err = v.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	det, err := matrix.Det(v)
	require.NoError(t, err)
	require.Equal(t, -1.0, det)

	// transposed gonum views go through the same adapter
	tv, err := matrix.WrapGonum(mat.NewDense(1, 3, []float64{1, 2, 3}).T())
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1}, {2}, {3}}, tv.Clone())

	_, err = matrix.WrapGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
