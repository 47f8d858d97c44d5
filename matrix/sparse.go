// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (CSR).
//
// Purpose:
//   - Hold non-zeros only, per row, in strictly increasing column order.
//   - Offer the row accessors the fused sparse driver needs for a single
//     left-to-right scan: IsEmpty, Size, Indexes, Values.
//
// Invariants (checked by NewSparseBlock):
//   - len(ptr) == rows+1, ptr[0] == 0, ptr non-decreasing, ptr[rows] == len(idx) == len(vals).
//   - Within every row: 0 <= idx[k] < cols and idx strictly increasing.
//
// Complexity quicksheet:
//   - Row accessors: O(1); Get: O(log nnz(row)); Set: O(nnz) when inserting.
package matrix

import (
	"fmt"
	"sort"
)

// SparseBlock is a CSR payload.
type SparseBlock struct {
	rows, cols int
	ptr        []int     // row pointers, len rows+1
	idx        []int     // column indexes, len nnz
	vals       []float64 // values, len nnz
}

// NewSparseBlock adopts (no copy) a CSR triple after validating its invariants.
// Stored values may be zero; they are still "stored" for iteration purposes.
func NewSparseBlock(rows, cols int, ptr, idx []int, vals []float64) (*SparseBlock, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewSparseBlock(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if len(ptr) != rows+1 || ptr[0] != 0 || ptr[rows] != len(idx) || len(idx) != len(vals) {
		return nil, fmt.Errorf("NewSparseBlock: pointer layout: %w", ErrMalformedSparse)
	}
	for i := 0; i < rows; i++ {
		if ptr[i+1] < ptr[i] {
			return nil, fmt.Errorf("NewSparseBlock: row %d pointer decreases: %w", i, ErrMalformedSparse)
		}
	}
	for i := 0; i < rows; i++ {
		last := -1
		for k := ptr[i]; k < ptr[i+1]; k++ {
			if idx[k] <= last || idx[k] >= cols {
				return nil, fmt.Errorf("NewSparseBlock: row %d column %d: %w", i, idx[k], ErrMalformedSparse)
			}
			last = idx[k]
		}
	}

	return &SparseBlock{rows: rows, cols: cols, ptr: ptr, idx: idx, vals: vals}, nil
}

// newEmptySparse returns a rows×cols CSR payload without stored entries.
func newEmptySparse(rows, cols int) *SparseBlock {
	return &SparseBlock{rows: rows, cols: cols, ptr: make([]int, rows+1)}
}

// Rows returns the number of rows.
func (s *SparseBlock) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s *SparseBlock) Cols() int { return s.cols }

// IsEmpty reports whether row i stores no entries.
func (s *SparseBlock) IsEmpty(i int) bool { return s.ptr[i] == s.ptr[i+1] }

// Size returns the number of stored entries in row i.
func (s *SparseBlock) Size(i int) int { return s.ptr[i+1] - s.ptr[i] }

// Indexes returns the column indexes of row i (read-only, ascending).
func (s *SparseBlock) Indexes(i int) []int { return s.idx[s.ptr[i]:s.ptr[i+1]] }

// Values returns the values of row i (read-only, aligned with Indexes(i)).
func (s *SparseBlock) Values(i int) []float64 { return s.vals[s.ptr[i]:s.ptr[i+1]] }

// StoredEntries returns the number of stored entries across all rows.
func (s *SparseBlock) StoredEntries() int { return len(s.idx) }

// CountNonZeros counts stored non-zero values in rows [rl, ru).
func (s *SparseBlock) CountNonZeros(rl, ru int) int64 {
	var nnz int64
	for _, v := range s.vals[s.ptr[rl]:s.ptr[ru]] {
		if v != 0 {
			nnz++
		}
	}

	return nnz
}

// search returns the position of column j in row i and whether it is stored.
func (s *SparseBlock) search(i, j int) (int, bool) {
	row := s.Indexes(i)
	k := sort.SearchInts(row, j)

	return s.ptr[i] + k, k < len(row) && row[k] == j
}

// Get returns the value at (i, j); unstored cells are 0.
func (s *SparseBlock) Get(i, j int) (float64, error) {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		return 0, fmt.Errorf("SparseBlock.Get(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if pos, ok := s.search(i, j); ok {
		return s.vals[pos], nil
	}

	return 0, nil
}

// Set stores v at (i, j).
// Overwrites in place when the cell is stored; otherwise inserts (shifting
// the tail of idx/vals and bumping later row pointers). Writing 0 into an
// unstored cell is a no-op.
func (s *SparseBlock) Set(i, j int, v float64) error {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		return fmt.Errorf("SparseBlock.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	pos, ok := s.search(i, j)
	if ok {
		s.vals[pos] = v
		return nil
	}
	if v == 0 {
		return nil
	}

	s.idx = append(s.idx, 0)
	s.vals = append(s.vals, 0)
	copy(s.idx[pos+1:], s.idx[pos:])
	copy(s.vals[pos+1:], s.vals[pos:])
	s.idx[pos], s.vals[pos] = j, v
	for r := i + 1; r <= s.rows; r++ {
		s.ptr[r]++
	}

	return nil
}

// Clone returns a deep copy.
func (s *SparseBlock) Clone() *SparseBlock {
	ptr := make([]int, len(s.ptr))
	idx := make([]int, len(s.idx))
	vals := make([]float64, len(s.vals))
	copy(ptr, s.ptr)
	copy(idx, s.idx)
	copy(vals, s.vals)

	return &SparseBlock{rows: s.rows, cols: s.cols, ptr: ptr, idx: idx, vals: vals}
}
