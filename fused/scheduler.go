// SPDX-License-Identifier: MIT

package fused

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvfuse/agg"
	"github.com/katalvlaran/lvfuse/matrix"
)

// runTask executes one row block into a fresh identity accumulator.
// Side inputs are localized so each task owns its sparse cursors, and a
// kernel panic is converted into ErrKernelPanic.
func (op *MultiAggregate) runTask(a *matrix.Block, b []matrix.SideInput, scalars []float64, r RowRange) (c []float64, err error) {
	defer func() {
		if p := recover(); p != nil {
			c = nil
			err = fmt.Errorf("rows [%d,%d): %w: %v", r.Lo, r.Hi, ErrKernelPanic, p)
		}
	}()

	c = agg.Identities(op.kinds)
	if err = op.executeRange(a, localSideInputs(b), scalars, c, r.Lo, r.Hi); err != nil {
		return nil, fmt.Errorf("rows [%d,%d): %w", r.Lo, r.Hi, err)
	}

	return c, nil
}

// runTasks executes every range on a pool bounded by k goroutines and
// returns the partial vectors indexed by range (merge order).
// All submitted tasks run to completion; the first failure is returned only
// after the pool has drained.
func (op *MultiAggregate) runTasks(a *matrix.Block, b []matrix.SideInput, scalars []float64, ranges []RowRange, k int) ([][]float64, error) {
	partials := make([][]float64, len(ranges))

	var g errgroup.Group
	g.SetLimit(k)
	for i, r := range ranges {
		g.Go(func() error {
			c, err := op.runTask(a, b, scalars, r)
			if err != nil {
				return err
			}
			partials[i] = c

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return partials, nil
}
