// SPDX-License-Identifier: MIT

package fused

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/lvfuse/matrix"
)

// prepSideInputs adapts inputs[1:] for kernel access.
// Compressed side inputs are decompressed once here, never per task.
func prepSideInputs(inputs []*matrix.Block) []matrix.SideInput {
	return lo.Map(inputs[1:], func(b *matrix.Block, _ int) matrix.SideInput {
		return matrix.NewSideInput(b)
	})
}

// localSideInputs returns task-private views of b: sparse side inputs get a
// fresh forward cursor so no two tasks share cursor state.
func localSideInputs(b []matrix.SideInput) []matrix.SideInput {
	if !lo.ContainsBy(b, isSparseSide) {
		return b
	}

	return lo.Map(b, func(si matrix.SideInput, _ int) matrix.SideInput {
		return matrix.Local(si)
	})
}

func isSparseSide(si matrix.SideInput) bool {
	switch si.(type) {
	case *matrix.SparseSide, *matrix.SparseCursor:
		return true
	}

	return false
}
