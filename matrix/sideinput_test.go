// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuse/matrix"
)

var sideRows = [][]float64{
	{0, 1, 0, 2, 0},
	{0, 0, 0, 0, 0},
	{3, 0, 4, 0, 5},
}

func TestNewSideInput_Types(t *testing.T) {
	d, err := matrix.NewDenseRows(sideRows)
	require.NoError(t, err)
	c, err := matrix.Compress(d)
	require.NoError(t, err)
	absent, err := matrix.NewEmpty(3, 5, matrix.FormatSparse)
	require.NoError(t, err)

	require.IsType(t, &matrix.DenseSide{}, matrix.NewSideInput(d))
	require.IsType(t, &matrix.SparseSide{}, matrix.NewSideInput(d.ToSparse()))
	require.IsType(t, &matrix.DenseSide{}, matrix.NewSideInput(c))

	for name, b := range map[string]*matrix.Block{"dense": d, "sparse": d.ToSparse(), "compressed": c} {
		si := matrix.NewSideInput(b)
		require.Equal(t, 3, si.Rows(), name)
		require.Equal(t, 5, si.Cols(), name)
		for i, row := range sideRows {
			for j, want := range row {
				require.Equal(t, want, si.Get(i, j), "%s (%d,%d)", name, i, j)
			}
		}
	}

	zs := matrix.NewSideInput(absent)
	require.Zero(t, zs.Get(2, 4))
	require.Zero(t, matrix.Local(zs).Get(2, 4))
}

func TestDenseSide_AbsentBoundsPanic(t *testing.T) {
	z, err := matrix.NewEmpty(2, 2, matrix.FormatDense)
	require.NoError(t, err)
	si := matrix.NewSideInput(z)
	require.Zero(t, si.Get(1, 1))
	require.Panics(t, func() { si.Get(2, 0) })
}

// A column past the end must not wrap into the next row.
func TestDenseSide_PresentBoundsPanic(t *testing.T) {
	d, err := matrix.NewDenseRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	si := matrix.NewSideInput(d)
	require.Equal(t, 4.0, si.Get(1, 1))
	require.Panics(t, func() { si.Get(0, 2) })
	require.Panics(t, func() { si.Get(0, -1) })
	require.Panics(t, func() { si.Get(2, 0) })
}

func TestSparseCursor_AccessPatterns(t *testing.T) {
	d, err := matrix.NewDenseRows(sideRows)
	require.NoError(t, err)
	si := matrix.NewSideInput(d.ToSparse())

	cur := matrix.Local(si)
	require.IsType(t, &matrix.SparseCursor{}, cur)

	// forward, backward, row jumps and revisits
	seq := [][2]int{
		{0, 0}, {0, 1}, {0, 3}, {0, 4},
		{0, 1}, {0, 0}, {0, 3},
		{2, 4}, {2, 2}, {2, 0},
		{1, 3},
		{0, 3}, {0, 2},
		{2, 4}, {2, 4},
	}
	for _, p := range seq {
		require.Equal(t, sideRows[p[0]][p[1]], cur.Get(p[0], p[1]), "(%d,%d)", p[0], p[1])
	}
}

func TestLocal_FreshCursorPerCall(t *testing.T) {
	d, err := matrix.NewDenseRows(sideRows)
	require.NoError(t, err)
	si := matrix.NewSideInput(d.ToSparse())

	a := matrix.Local(si)
	b := matrix.Local(a)
	require.NotSame(t, a, b)
	a.Get(2, 4)
	require.Equal(t, 3.0, b.Get(2, 0))

	ds := matrix.NewSideInput(d)
	require.Same(t, ds, matrix.Local(ds))
}
