// SPDX-License-Identifier: MIT

package fused

import (
	"github.com/katalvlaran/lvfuse/agg"
	"github.com/katalvlaran/lvfuse/matrix"
)

// Test-only views of unexported helpers.
var (
	RoundToNext   = roundToNext
	PartitionRows = partitionRows
)

// AggregatePartials folds partials into a fresh identity vector for kinds.
func AggregatePartials(kinds []agg.Kind, partials [][]float64) []float64 {
	fns, err := agg.Functions(kinds)
	if err != nil {
		panic(err)
	}
	c := agg.Identities(kinds)
	aggregatePartials(fns, c, partials)

	return c
}

// ExecuteRange runs the driver for rows [rl,ru) of the primary input a into c.
func (op *MultiAggregate) ExecuteRange(a *matrix.Block, c []float64, rl, ru int) error {
	return op.executeRange(a, nil, nil, c, rl, ru)
}
