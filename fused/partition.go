// SPDX-License-Identifier: MIT

package fused

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/lvfuse/matrix"
)

// Partitioning constants.
const (
	// blocksPerThread caps the number of row blocks at blocksPerThread*k.
	blocksPerThread = 8
	// minBlockRows is the target minimal number of rows per block.
	minBlockRows = 32
)

// RowRange is a half-open row interval [Lo, Hi) processed by one task.
type RowRange struct {
	Lo, Hi int
}

// Len returns the number of rows in the range.
func (r RowRange) Len() int { return r.Hi - r.Lo }

// Plan describes how Execute will run for a given input set.
type Plan struct {
	// Size is the measure compared against the parallel threshold:
	// total non-zeros for sparse-safe operators, total cells otherwise.
	Size int64
	// Parallel reports whether more than one task may run concurrently.
	Parallel bool
	// Threads is the effective worker limit (1 when serial).
	Threads int
	// Ranges lists the row blocks in merge order. A serial plan has a single
	// range covering all rows.
	Ranges []RowRange
}

// inputSize sums the size measure over all inputs (primary and side inputs).
func inputSize(inputs []*matrix.Block, sparseSafe bool) int64 {
	if sparseSafe {
		return lo.SumBy(inputs, func(b *matrix.Block) int64 { return b.NonZeros() })
	}

	return lo.SumBy(inputs, func(b *matrix.Block) int64 { return b.Cells() })
}

// roundToNext returns the smallest positive multiple of k that is >= x.
// Always >= k, so a non-empty input is never split into zero blocks.
func roundToNext(x, k int) int {
	if x <= k {
		return k
	}

	return ((x + k - 1) / k) * k
}

// partitionRows splits [0,m) into contiguous blocks for k threads:
//
//	nk     = roundToNext(min(8k, m/32), k)
//	blklen = ceil(m / nk)
//
// Blocks are emitted while i < nk and i*blklen < m; the last one is clipped
// at m. The union is exactly [0,m), with no overlap. m == 0 yields no blocks.
func partitionRows(m, k int) []RowRange {
	if m <= 0 {
		return nil
	}
	if k < 1 {
		k = 1
	}
	nk := roundToNext(min(blocksPerThread*k, m/minBlockRows), k)
	blklen := (m + nk - 1) / nk

	ranges := make([]RowRange, 0, nk)
	for i := 0; i < nk && i*blklen < m; i++ {
		ranges = append(ranges, RowRange{Lo: i * blklen, Hi: min((i+1)*blklen, m)})
	}

	return ranges
}
