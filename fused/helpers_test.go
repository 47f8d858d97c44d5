// SPDX-License-Identifier: MIT

package fused_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuse/agg"
	"github.com/katalvlaran/lvfuse/builder"
	"github.com/katalvlaran/lvfuse/fused"
	"github.com/katalvlaran/lvfuse/matrix"
)

// row returns the logical values of a 1×K result.
func row(t *testing.T, b *matrix.Block) []float64 {
	t.Helper()
	require.Equal(t, 1, b.Rows())
	out := make([]float64, b.Cols())
	for j := range out {
		v, err := b.Get(0, j)
		require.NoError(t, err)
		out[j] = v
	}

	return out
}

// build generates a block or fails the test.
func build(t *testing.T, rows, cols int, opts []builder.BuilderOption, cons ...builder.Constructor) *matrix.Block {
	t.Helper()
	b, err := builder.BuildBlock(rows, cols, opts, cons...)
	require.NoError(t, err)

	return b
}

// newOp constructs an operator or fails the test.
func newOp(t *testing.T, k fused.Kernel, safe bool, kinds []agg.Kind, opts ...fused.Option) *fused.MultiAggregate {
	t.Helper()
	op, err := fused.New(k, safe, kinds, opts...)
	require.NoError(t, err)

	return op
}

// run executes op over inputs with k threads and returns the result row.
func run(t *testing.T, op *fused.MultiAggregate, inputs []*matrix.Block, scalars []float64, k int) []float64 {
	t.Helper()
	res, err := op.Execute(inputs, scalars, k)
	require.NoError(t, err)

	return row(t, res)
}

var allKinds = []agg.Kind{agg.Sum, agg.SumSq, agg.Min, agg.Max}
