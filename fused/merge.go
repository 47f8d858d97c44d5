// SPDX-License-Identifier: MIT

// Package fused - merging partial aggregates.
//
// Two entry points share the per-kind rules from package agg:
//   - aggregatePartials folds the per-task vectors of one execution;
//   - MergePartialResults merges two finished 1×K result blocks (e.g. from
//     different row ranges of a larger matrix).
//
// Sum-like slots use compensated summation; min/max slots use plain min/max.
package fused

import (
	"fmt"

	"github.com/katalvlaran/lvfuse/agg"
	"github.com/katalvlaran/lvfuse/matrix"
)

// aggregatePartials overwrites c with the fold of partials in index order.
// Sum-like slots restart from a fresh compensated accumulator (the prior
// contents of c are discarded); min/max slots fold into c's current value.
func aggregatePartials(fns []agg.Func, c []float64, partials [][]float64) {
	col := make([]float64, len(partials))
	for k, fn := range fns {
		for t, p := range partials {
			col[t] = p[k]
		}
		c[k] = fn.Fold(c[k], col)
	}
}

// MergePartialResults merges the 1×K block b into the 1×K block c in place,
// slot by slot: one compensated step seeded with c's value for sum-like
// kinds, min/max otherwise. c's non-zero count is maintained.
// Errors: ErrNilMatrix; ErrAggMismatch (shape differs from 1×len(kinds));
// agg.ErrUnsupportedKind; ErrUnsupported when c is compressed.
func MergePartialResults(kinds []agg.Kind, c, b *matrix.Block) error {
	const tag = "MergePartialResults"

	fns, err := agg.Functions(kinds)
	if err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	if err = matrix.ValidateAllNotNil([]*matrix.Block{c, b}); err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}
	if err = matrix.ValidateShape(c, 1, len(kinds)); err != nil {
		return fmt.Errorf("%s: %w: %w", tag, ErrAggMismatch, err)
	}
	if err = matrix.ValidateSameShape(c, b); err != nil {
		return fmt.Errorf("%s: %w: %w", tag, ErrAggMismatch, err)
	}

	for k, fn := range fns {
		cv, _ := c.Get(0, k)
		bv, _ := b.Get(0, k)
		if err = c.Set(0, k, fn.Apply(cv, bv)); err != nil {
			return fmt.Errorf("%s: slot %d: %w", tag, k, err)
		}
	}

	return nil
}
