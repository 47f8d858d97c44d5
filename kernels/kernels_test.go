// SPDX-License-Identifier: MIT

package kernels_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuse/agg"
	"github.com/katalvlaran/lvfuse/kernels"
	"github.com/katalvlaran/lvfuse/matrix"
)

func TestCellAggUpdate(t *testing.T) {
	kinds := []agg.Kind{agg.Sum, agg.SumSq, agg.Min, agg.Max}
	k := kernels.CellAgg(kinds...)
	c := agg.Identities(kinds)
	for _, v := range []float64{3, -2, 5} {
		require.NoError(t, k.Update(v, nil, nil, 1, 3, 0, 0, c))
	}
	assert.Equal(t, []float64{6, 38, -2, 5}, c)
	assert.Equal(t, kinds, k.Kinds())
}

func TestCellAggRejectsWrongAccumulator(t *testing.T) {
	k := kernels.CellAgg(agg.Sum, agg.Max)
	err := k.Update(1, nil, nil, 1, 1, 0, 0, make([]float64, 1))
	require.ErrorIs(t, err, kernels.ErrSlotCount)
}

func TestOffset(t *testing.T) {
	k := kernels.Offset(agg.Sum, agg.Min)
	c := agg.Identities([]agg.Kind{agg.Sum, agg.Min})
	require.NoError(t, k.Update(0, nil, []float64{1.5}, 1, 1, 0, 0, c))
	require.NoError(t, k.Update(2, nil, []float64{1.5}, 1, 1, 0, 0, c))
	assert.Equal(t, []float64{5, 1.5}, c)

	err := k.Update(0, nil, nil, 1, 1, 0, 0, c)
	require.ErrorIs(t, err, kernels.ErrMissingScalar)
}

func TestProduct(t *testing.T) {
	side, err := matrix.NewDenseRows([][]float64{{2, 0}, {0, 3}})
	require.NoError(t, err)
	b := []matrix.SideInput{matrix.NewSideInput(side)}

	k := kernels.Product(0, agg.Sum)
	c := []float64{0}
	require.NoError(t, k.Update(5, b, nil, 2, 2, 0, 0, c))
	require.NoError(t, k.Update(7, b, nil, 2, 2, 0, 1, c))
	require.NoError(t, k.Update(1, b, nil, 2, 2, 1, 1, c))
	assert.Equal(t, []float64{13}, c)

	err = kernels.Product(1, agg.Sum).Update(1, b, nil, 2, 2, 0, 0, c)
	require.ErrorIs(t, err, kernels.ErrMissingSideInput)
}

func TestAccumulateNaN(t *testing.T) {
	kinds := []agg.Kind{agg.Sum, agg.Max}
	c := agg.Identities(kinds)
	kernels.Accumulate(kinds, math.NaN(), c)
	assert.True(t, math.IsNaN(c[0]))
	assert.True(t, math.IsNaN(c[1]))
}

func TestSparseSafe(t *testing.T) {
	assert.True(t, kernels.SparseSafe(0, agg.Sum, agg.SumSq))
	assert.False(t, kernels.SparseSafe(1, agg.Sum))
	assert.False(t, kernels.SparseSafe(0, agg.Sum, agg.Min))
	assert.False(t, kernels.SparseSafe(0, agg.Max))
	assert.True(t, kernels.SparseSafe(0))
}
