// SPDX-License-Identifier: MIT

// Package fused - format drivers.
//
// One driver per physical representation of the primary input. Each walks
// rows [rl, ru) and calls the kernel on the cells the sparse-safety flag
// requires, accumulating into the task's vector c:
//
//	dense       every cell; an absent payload is visited only when unsafe
//	sparse      stored cells; zero gaps too when unsafe (single left-to-right scan)
//	compressed  encoded cells in position order (sparse-safe only)
package fused

import (
	"fmt"

	"github.com/katalvlaran/lvfuse/matrix"
)

// cellErrorf tags a kernel failure with its coordinates.
func cellErrorf(row, col int, err error) error {
	return fmt.Errorf("cell (%d,%d): %w", row, col, err)
}

// executeRange dispatches on the primary input's representation.
func (op *MultiAggregate) executeRange(a *matrix.Block, b []matrix.SideInput, scalars, c []float64, rl, ru int) error {
	if err := matrix.ValidateRowRange(a, rl, ru); err != nil {
		return err
	}
	m, n := a.Rows(), a.Cols()
	switch a.Format() {
	case matrix.FormatSparse:
		return op.executeSparse(a.SparseBlock(), b, scalars, c, m, n, rl, ru)
	case matrix.FormatCompressed:
		return op.executeCompressed(a.CompressedBlock(), b, scalars, c, m, n, rl, ru)
	default:
		return op.executeDense(a.DenseBlock(), b, scalars, c, m, n, rl, ru)
	}
}

func (op *MultiAggregate) executeDense(d *matrix.DenseBlock, b []matrix.SideInput, scalars, c []float64, m, n, rl, ru int) error {
	if d == nil {
		// all-zero input: nothing to do unless zeros change the aggregates
		if op.sparseSafe {
			return nil
		}
		for i := rl; i < ru; i++ {
			for j := 0; j < n; j++ {
				if err := op.kernel.Update(0, b, scalars, m, n, i, j, c); err != nil {
					return cellErrorf(i, j, err)
				}
			}
		}

		return nil
	}

	for i := rl; i < ru; i++ {
		avals, aix := d.Values(i), d.Pos(i)
		for j := 0; j < n; j++ {
			if err := op.kernel.Update(avals[aix+j], b, scalars, m, n, i, j, c); err != nil {
				return cellErrorf(i, j, err)
			}
		}
	}

	return nil
}

func (op *MultiAggregate) executeSparse(s *matrix.SparseBlock, b []matrix.SideInput, scalars, c []float64, m, n, rl, ru int) error {
	for i := rl; i < ru; i++ {
		if s == nil || s.IsEmpty(i) {
			if op.sparseSafe {
				continue
			}
			for j := 0; j < n; j++ {
				if err := op.kernel.Update(0, b, scalars, m, n, i, j, c); err != nil {
					return cellErrorf(i, j, err)
				}
			}
			continue
		}

		aix, avals := s.Indexes(i), s.Values(i)
		lastj := -1
		for k, j := range aix {
			if !op.sparseSafe {
				for jz := lastj + 1; jz < j; jz++ {
					if err := op.kernel.Update(0, b, scalars, m, n, i, jz, c); err != nil {
						return cellErrorf(i, jz, err)
					}
				}
			}
			if err := op.kernel.Update(avals[k], b, scalars, m, n, i, j, c); err != nil {
				return cellErrorf(i, j, err)
			}
			lastj = j
		}
		if !op.sparseSafe {
			for j := lastj + 1; j < n; j++ {
				if err := op.kernel.Update(0, b, scalars, m, n, i, j, c); err != nil {
					return cellErrorf(i, j, err)
				}
			}
		}
	}

	return nil
}

func (op *MultiAggregate) executeCompressed(cb *matrix.CompressedBlock, b []matrix.SideInput, scalars, c []float64, m, n, rl, ru int) error {
	it := cb.Iterator(rl, ru, true)
	for it.Next() {
		cell := it.Cell()
		if err := op.kernel.Update(cell.V, b, scalars, m, n, cell.I, cell.J, c); err != nil {
			return cellErrorf(cell.I, cell.J, err)
		}
	}

	return nil
}
