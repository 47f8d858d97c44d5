// SPDX-License-Identifier: MIT

package fused_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuse/fused"
)

func TestRoundToNext(t *testing.T) {
	cases := []struct{ x, k, want int }{
		{0, 4, 4},
		{1, 4, 4},
		{4, 4, 4},
		{5, 4, 8},
		{32, 8, 32},
		{33, 8, 40},
		{7, 1, 7},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, fused.RoundToNext(tc.x, tc.k), "roundToNext(%d,%d)", tc.x, tc.k)
	}
}

// coverage checks the ranges tile [0,m) contiguously.
func coverage(t *testing.T, m int, ranges []fused.RowRange) {
	t.Helper()
	require.NotEmpty(t, ranges)
	require.Equal(t, 0, ranges[0].Lo)
	for i := 1; i < len(ranges); i++ {
		require.Equal(t, ranges[i-1].Hi, ranges[i].Lo, "gap or overlap at %d", i)
	}
	require.Equal(t, m, ranges[len(ranges)-1].Hi)
	for _, r := range ranges {
		require.Positive(t, r.Len())
	}
}

func TestPartitionRowsTilesAllRows(t *testing.T) {
	for _, m := range []int{1, 2, 5, 31, 32, 33, 100, 1000, 4097} {
		for _, k := range []int{1, 2, 3, 4, 8, 16} {
			coverage(t, m, fused.PartitionRows(m, k))
		}
	}
}

func TestPartitionRowsLargeInput(t *testing.T) {
	// m/32 = 1024 > 8k = 32: nk = 32 blocks of 1024 rows.
	ranges := fused.PartitionRows(32768, 4)
	require.Len(t, ranges, 32)
	for _, r := range ranges {
		assert.Equal(t, 1024, r.Len())
	}
}

func TestPartitionRowsFewRows(t *testing.T) {
	// m < 32k: m/32 == 0 still yields k candidate blocks, never zero.
	ranges := fused.PartitionRows(10, 4)
	coverage(t, 10, ranges)
	assert.Len(t, ranges, 4) // blklen 3: [0,3) [3,6) [6,9) [9,10)

	ranges = fused.PartitionRows(5, 4)
	coverage(t, 5, ranges)
	assert.Len(t, ranges, 3) // blklen 2: [0,2) [2,4) [4,5)
}

func TestPartitionRowsEmpty(t *testing.T) {
	assert.Empty(t, fused.PartitionRows(0, 4))
}
