// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Expose Values/Pos so hot loops (fused drivers) read rows without bounds-checked accessors.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewDenseBlock: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); CountNonZeros: O(r'*c).
package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform DenseBlock context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("DenseBlock.%s(%d,%d): %w", method, row, col, err)
}

// DenseBlock is a row-major payload.
//   - rows,cols hold dimensions.
//   - data is a flat buffer of length rows*cols (offset = i*cols + j).
type DenseBlock struct {
	rows, cols int       // dimensions (>=0)
	data       []float64 // contiguous row-major storage (len == rows*cols)
}

// NewDenseBlock allocates a zero-filled rows×cols payload.
// Returns ErrInvalidDimensions for negative dimensions.
func NewDenseBlock(rows, cols int) (*DenseBlock, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDenseBlock(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &DenseBlock{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseBlockFrom wraps data (no copy) as a rows×cols payload.
// Stage 1: validate non-negative shape and len(data)==rows*cols.
// Stage 2: adopt the slice; the caller must not mutate it afterwards.
func NewDenseBlockFrom(rows, cols int, data []float64) (*DenseBlock, error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseBlockFrom(%d,%d,len=%d): %w",
			rows, cols, len(data), ErrInvalidDimensions)
	}

	return &DenseBlock{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows.
func (d *DenseBlock) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *DenseBlock) Cols() int { return d.cols }

// Values returns the backing slice holding row i.
// Row i occupies Values(i)[Pos(i) : Pos(i)+Cols()].
// The returned slice is shared; callers must treat it as read-only.
func (d *DenseBlock) Values(i int) []float64 { return d.data }

// Pos returns the offset of row i within Values(i).
func (d *DenseBlock) Pos(i int) int { return i * d.cols }

// Row returns row i as a read-only subslice.
func (d *DenseBlock) Row(i int) []float64 {
	base := i * d.cols
	return d.data[base : base+d.cols]
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (d *DenseBlock) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= d.rows || col < 0 || col >= d.cols {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*d.cols + col, nil
}

// At retrieves the element at (row, col).
func (d *DenseBlock) At(row, col int) (float64, error) {
	idx, err := d.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return d.data[idx], nil
}

// Set assigns v at (row, col).
func (d *DenseBlock) Set(row, col int, v float64) error {
	idx, err := d.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	d.data[idx] = v

	return nil
}

// CountNonZeros counts non-zero cells in rows [rl, ru).
// Complexity: O((ru-rl)*cols).
func (d *DenseBlock) CountNonZeros(rl, ru int) int64 {
	var nnz int64
	for _, v := range d.data[rl*d.cols : ru*d.cols] {
		if v != 0 {
			nnz++
		}
	}

	return nnz
}

// Clone returns a deep copy.
func (d *DenseBlock) Clone() *DenseBlock {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return &DenseBlock{rows: d.rows, cols: d.cols, data: cp}
}

// String implements fmt.Stringer for easy debugging.
func (d *DenseBlock) String() string {
	var sb strings.Builder
	for i := 0; i < d.rows; i++ {
		sb.WriteString("[")
		for j := 0; j < d.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", d.data[i*d.cols+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
