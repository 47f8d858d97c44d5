// SPDX-License-Identifier: MIT

// Package matrix - side-input cursors for fused kernels.
//
// Purpose:
//   - Give kernels uniform random access to auxiliary matrices via SideInput.Get.
//   - Dense side inputs are stateless and shared by all tasks.
//   - Sparse side inputs keep a small row/position cursor so that the usual
//     row-major access pattern costs amortized O(1) per lookup. Cursor state
//     is mutable, so every task works on its own SparseCursor (see Local).
//
// AI-Hints:
//   - Never share a SparseCursor across goroutines; call Local per task.
package matrix

import "sort"

// SideInput is a read-only random-access view of an auxiliary matrix.
// Get must be called with in-range indices; out-of-range access panics
// like a slice index would (kernels are trusted generated code).
type SideInput interface {
	Rows() int
	Cols() int
	Get(row, col int) float64
}

// DenseSide is a stateless side input over a dense payload (nil = all-zero).
type DenseSide struct {
	rows, cols int
	data       []float64
}

// Rows returns the number of rows.
func (s *DenseSide) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s *DenseSide) Cols() int { return s.cols }

// Get returns the value at (row, col).
func (s *DenseSide) Get(row, col int) float64 {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		panic("matrix: DenseSide.Get index out of range")
	}
	if s.data == nil {
		return 0
	}

	return s.data[row*s.cols+col]
}

// SparseSide is a shared, stateless side input over a sparse payload.
// Lookups binary-search the row; use Local to obtain a faster per-task cursor.
type SparseSide struct {
	rows, cols int
	sb         *SparseBlock // nil = all-zero
}

// Rows returns the number of rows.
func (s *SparseSide) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s *SparseSide) Cols() int { return s.cols }

// Get returns the value at (row, col).
func (s *SparseSide) Get(row, col int) float64 {
	if s.sb == nil {
		return 0
	}
	if pos, ok := s.sb.search(row, col); ok {
		return s.sb.vals[pos]
	}

	return 0
}

// Local returns a fresh cursor over the same payload, for one task.
func (s *SparseSide) Local() *SparseCursor {
	return &SparseCursor{SparseSide: s, row: -1}
}

// SparseCursor is a per-task side input remembering the last visited row and
// position. Forward access within a row is a linear merge; jumping to another
// row or backwards within a row falls back to binary search.
type SparseCursor struct {
	*SparseSide
	row int // current row, -1 before first access
	pos int // absolute position in sb.idx of the next candidate
}

// Get returns the value at (row, col).
func (c *SparseCursor) Get(row, col int) float64 {
	sb := c.sb
	if sb == nil {
		return 0
	}
	if row != c.row {
		c.row, c.pos = row, sb.ptr[row]
	}
	end := sb.ptr[row+1]
	if c.pos > sb.ptr[row] && c.pos-1 < end && sb.idx[c.pos-1] >= col {
		// backwards access: restart from the binary-search position
		c.pos = sb.ptr[row] + sort.SearchInts(sb.idx[sb.ptr[row]:end], col)
	}
	for c.pos < end && sb.idx[c.pos] < col {
		c.pos++
	}
	if c.pos < end && sb.idx[c.pos] == col {
		return sb.vals[c.pos]
	}

	return 0
}

// NewSideInput adapts a block for kernel access.
// Dense blocks are wrapped without copying; sparse blocks become a shared
// SparseSide; compressed blocks are decompressed once into a dense side input.
func NewSideInput(b *Block) SideInput {
	switch b.format {
	case FormatSparse:
		return &SparseSide{rows: b.rows, cols: b.cols, sb: b.sparse}
	case FormatCompressed:
		d := b.compressed.Decompress()
		return &DenseSide{rows: b.rows, cols: b.cols, data: d.data}
	}
	ds := &DenseSide{rows: b.rows, cols: b.cols}
	if b.dense != nil {
		ds.data = b.dense.data
	}

	return ds
}

// Local returns a task-private view of si: sparse side inputs get a fresh
// cursor, everything else is returned as is (stateless and shareable).
func Local(si SideInput) SideInput {
	switch s := si.(type) {
	case *SparseSide:
		return s.Local()
	case *SparseCursor:
		return s.SparseSide.Local()
	}

	return si
}
