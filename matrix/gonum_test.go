// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvfuse/matrix"
)

func TestGonum_RoundTrip(t *testing.T) {
	src := mat.NewDense(3, 4, []float64{
		0, 1.5, 0, 0,
		0, 0, 0, 0,
		-2, 0, 0, 7,
	})
	b, err := matrix.FromGonum(src)
	require.NoError(t, err)
	require.Equal(t, int64(3), b.NonZeros())
	require.Equal(t, sample, logical(t, b))

	for _, blk := range []*matrix.Block{b, b.ToSparse()} {
		out, err := blk.ToGonum()
		require.NoError(t, err)
		require.True(t, mat.Equal(src, out))
	}

	c, err := matrix.Compress(b)
	require.NoError(t, err)
	out, err := c.ToGonum()
	require.NoError(t, err)
	require.True(t, mat.Equal(src, out))
}

func TestGonum_NonRawSource(t *testing.T) {
	src := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b, err := matrix.FromGonum(src.T())
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, logical(t, b))
}

func TestGonum_Errors(t *testing.T) {
	_, err := matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	empty, err := matrix.NewEmpty(0, 3, matrix.FormatDense)
	require.NoError(t, err)
	_, err = empty.ToGonum()
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
