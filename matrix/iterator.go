// SPDX-License-Identifier: MIT

package matrix

import "container/heap"

// cellStream is one column group's encoded cells for a row range, row-ordered.
type cellStream struct {
	cells []IJV
	pos   int
}

func (s *cellStream) head() IJV { return s.cells[s.pos] }

// streamHeap orders streams by their head cell position (row, then column).
type streamHeap []*cellStream

func (h streamHeap) Len() int { return len(h) }

func (h streamHeap) Less(a, b int) bool {
	x, y := h[a].head(), h[b].head()
	if x.I != y.I {
		return x.I < y.I
	}

	return x.J < y.J
}

func (h streamHeap) Swap(a, b int) { h[a], h[b] = h[b], h[a] }

func (h *streamHeap) Push(x any) { *h = append(*h, x.(*cellStream)) }

func (h *streamHeap) Pop() any {
	old := *h
	n := len(old)
	s := old[n-1]
	*h = old[:n-1]

	return s
}

// Iterator walks encoded cells of a CompressedBlock in row-major position order.
// It is single-use and not safe for concurrent use; every task creates its own.
//
// Usage:
//
//	it := cb.Iterator(rl, ru, true)
//	for it.Next() {
//		cell := it.Cell()
//		...
//	}
type Iterator struct {
	streams []cellStream
	h       streamHeap
	cur     IJV
}

func (it *Iterator) init() {
	it.h = make(streamHeap, 0, len(it.streams))
	for i := range it.streams {
		it.h = append(it.h, &it.streams[i])
	}
	heap.Init(&it.h)
}

// Next advances to the next cell and reports whether one exists.
func (it *Iterator) Next() bool {
	if len(it.h) == 0 {
		return false
	}
	s := it.h[0]
	it.cur = s.head()
	s.pos++
	if s.pos == len(s.cells) {
		heap.Pop(&it.h)
	} else {
		heap.Fix(&it.h, 0)
	}

	return true
}

// Cell returns the cell produced by the last successful Next.
func (it *Iterator) Cell() IJV { return it.cur }
