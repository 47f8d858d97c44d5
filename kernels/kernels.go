// SPDX-License-Identifier: MIT

package kernels

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvfuse/agg"
	"github.com/katalvlaran/lvfuse/matrix"
)

// valueFn derives the value aggregated for one cell.
type valueFn func(a float64, b []matrix.SideInput, scalars []float64, row, col int) (float64, error)

// Cell is a kernel that derives one value per cell and folds it into every
// slot according to the slot's kind. It satisfies fused.Kernel.
type Cell struct {
	kinds []agg.Kind
	value valueFn
}

// CellAgg aggregates the primary value itself: slot k receives a (or a² for SUM_SQ).
func CellAgg(kinds ...agg.Kind) *Cell {
	return &Cell{kinds: slices.Clone(kinds), value: identityValue}
}

// Offset aggregates a + scalars[0]. Every visited cell, implicit zeros
// included, contributes scalars[0] when a is zero.
func Offset(kinds ...agg.Kind) *Cell {
	return &Cell{kinds: slices.Clone(kinds), value: offsetValue}
}

// Product aggregates a * b[side].Get(row, col).
func Product(side int, kinds ...agg.Kind) *Cell {
	return &Cell{kinds: slices.Clone(kinds), value: productValue(side)}
}

// Kinds returns a copy of the slot list.
func (k *Cell) Kinds() []agg.Kind { return slices.Clone(k.kinds) }

// Update folds the cell's value into c.
func (k *Cell) Update(a float64, b []matrix.SideInput, scalars []float64, m, n, row, col int, c []float64) error {
	if len(c) != len(k.kinds) {
		return fmt.Errorf("Update: len(c)=%d, slots=%d: %w", len(c), len(k.kinds), ErrSlotCount)
	}
	v, err := k.value(a, b, scalars, row, col)
	if err != nil {
		return err
	}
	Accumulate(k.kinds, v, c)

	return nil
}

// Accumulate folds v into every slot of c: SUM adds v, SUM_SQ adds v²,
// MIN and MAX keep the extremum. Invalid kinds are left untouched.
func Accumulate(kinds []agg.Kind, v float64, c []float64) {
	for i, kind := range kinds {
		switch kind {
		case agg.Sum:
			c[i] += v
		case agg.SumSq:
			c[i] += v * v
		case agg.Min:
			c[i] = math.Min(c[i], v)
		case agg.Max:
			c[i] = math.Max(c[i], v)
		}
	}
}

// SparseSafe reports whether visiting a zero cell with the given constant
// offset leaves every slot unchanged: only sum-like slots with a zero offset
// qualify (MIN and MAX would observe the zero).
func SparseSafe(offset float64, kinds ...agg.Kind) bool {
	if offset != 0 {
		return false
	}
	for _, k := range kinds {
		if !k.SumLike() {
			return false
		}
	}

	return true
}

func identityValue(a float64, _ []matrix.SideInput, _ []float64, _, _ int) (float64, error) {
	return a, nil
}

func offsetValue(a float64, _ []matrix.SideInput, scalars []float64, _, _ int) (float64, error) {
	if len(scalars) == 0 {
		return 0, fmt.Errorf("Offset: scalars[0]: %w", ErrMissingScalar)
	}

	return a + scalars[0], nil
}

func productValue(side int) valueFn {
	return func(a float64, b []matrix.SideInput, _ []float64, row, col int) (float64, error) {
		if side < 0 || side >= len(b) {
			return 0, fmt.Errorf("Product: b[%d] of %d: %w", side, len(b), ErrMissingSideInput)
		}

		return a * b[side].Get(row, col), nil
	}
}
