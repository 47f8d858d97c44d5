// SPDX-License-Identifier: MIT

// Package matrix - Block: the closed tagged variant over three representations.
//
// Purpose:
//   - A Block is a rows×cols numeric matrix held in exactly one of
//     FormatDense, FormatSparse or FormatCompressed.
//   - Dense and sparse payloads may be absent (nil): the block is then
//     logically all-zero and nnz == 0.
//   - Readers dispatch with an explicit switch on Format(); there is no
//     virtual "matrix" interface across the representations.
//
// Ownership:
//   - Constructors adopt caller slices without copying. Blocks handed to
//     the fused engine are only read; Set/ExamSparsity mutate in place and
//     are meant for blocks the caller owns exclusively (e.g. results).
//
// Complexity quicksheet:
//   - Get: O(1) dense, O(log nnz(row)) sparse, O(log) compressed; Set: O(1) dense, O(nnz) sparse insert.
//   - RecomputeNonZeros/ToDense/ToSparse/ExamSparsity: O(r*c) dense, O(nnz) sparse.
package matrix

import (
	"fmt"
	"sort"
	"strings"
)

// Block is a matrix in one of three physical representations.
type Block struct {
	rows, cols     int
	format         Format
	dense          *DenseBlock      // FormatDense payload; nil = absent
	sparse         *SparseBlock     // FormatSparse payload; nil = absent
	compressed     *CompressedBlock // FormatCompressed payload; never nil
	nnz            int64            // maintained by constructors, Set and RecomputeNonZeros
	validateNaNInf bool
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Block)(nil)

// NewDense builds a dense rows×cols block over values (row-major, adopted, not copied).
// A nil values slice yields an absent (all-zero) dense payload.
// Errors: ErrInvalidDimensions; ErrNaNInf under WithValidateNaNInf.
func NewDense(rows, cols int, values []float64, opts ...Option) (*Block, error) {
	o := gatherOptions(opts...)
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	b := &Block{rows: rows, cols: cols, format: FormatDense, validateNaNInf: o.validateNaNInf}
	if values == nil {
		return b, nil
	}
	d, err := NewDenseBlockFrom(rows, cols, values)
	if err != nil {
		return nil, err
	}
	if o.validateNaNInf {
		for k, v := range values {
			if isNonFinite(v) {
				return nil, fmt.Errorf("NewDense: cell (%d,%d): %w", k/cols, k%cols, ErrNaNInf)
			}
		}
	}
	b.dense = d
	b.nnz = d.CountNonZeros(0, rows)

	return b, nil
}

// NewDenseRows builds a dense block from row slices (copied).
// All rows must have equal length; an empty input yields a 0×0 block.
func NewDenseRows(rows [][]float64, opts ...Option) (*Block, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	data := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseRows: row %d has %d cols, want %d: %w",
				i, len(row), c, ErrDimensionMismatch)
		}
		data = append(data, row...)
	}

	return NewDense(r, c, data, opts...)
}

// NewSparse builds a sparse block from a CSR triple (adopted, validated).
func NewSparse(rows, cols int, ptr, idx []int, vals []float64, opts ...Option) (*Block, error) {
	o := gatherOptions(opts...)
	s, err := NewSparseBlock(rows, cols, ptr, idx, vals)
	if err != nil {
		return nil, err
	}
	if o.validateNaNInf {
		for k, v := range vals {
			if isNonFinite(v) {
				return nil, fmt.Errorf("NewSparse: entry %d: %w", k, ErrNaNInf)
			}
		}
	}
	b := &Block{rows: rows, cols: cols, format: FormatSparse, sparse: s, validateNaNInf: o.validateNaNInf}
	b.nnz = s.CountNonZeros(0, rows)

	return b, nil
}

// NewEmpty builds an all-zero block: absent dense/sparse payload, or a
// compressed block whose column groups encode nothing.
func NewEmpty(rows, cols int, format Format) (*Block, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewEmpty(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	switch format {
	case FormatDense, FormatSparse:
		return &Block{rows: rows, cols: cols, format: format}, nil
	case FormatCompressed:
		cb := &CompressedBlock{rows: rows, cols: cols, groups: make([]colGroup, cols)}
		for j := range cb.groups {
			cb.groups[j] = &offsetGroup{col: j}
		}
		return &Block{rows: rows, cols: cols, format: FormatCompressed, compressed: cb}, nil
	}

	return nil, fmt.Errorf("NewEmpty: %s: %w", format, ErrUnsupported)
}

// FromTriplets builds a block in the requested format from (i,j,v) cells.
// Cells may come in any order; duplicates are rejected; zero values are dropped.
func FromTriplets(rows, cols int, cells []IJV, format Format, opts ...Option) (*Block, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("FromTriplets(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	sorted := make([]IJV, 0, len(cells))
	for _, c := range cells {
		if c.I < 0 || c.I >= rows || c.J < 0 || c.J >= cols {
			return nil, fmt.Errorf("FromTriplets: cell (%d,%d): %w", c.I, c.J, ErrOutOfRange)
		}
		if c.V != 0 {
			sorted = append(sorted, c)
		}
	}
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].I != sorted[b].I {
			return sorted[a].I < sorted[b].I
		}
		return sorted[a].J < sorted[b].J
	})

	ptr := make([]int, rows+1)
	idx := make([]int, len(sorted))
	vals := make([]float64, len(sorted))
	for k, c := range sorted {
		if k > 0 && sorted[k-1].I == c.I && sorted[k-1].J == c.J {
			return nil, fmt.Errorf("FromTriplets: duplicate cell (%d,%d): %w", c.I, c.J, ErrMalformedSparse)
		}
		ptr[c.I+1]++
		idx[k], vals[k] = c.J, c.V
	}
	for i := 0; i < rows; i++ {
		ptr[i+1] += ptr[i]
	}

	sb, err := NewSparse(rows, cols, ptr, idx, vals, opts...)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatSparse:
		return sb, nil
	case FormatDense:
		return sb.ToDense(), nil
	case FormatCompressed:
		return Compress(sb, opts...)
	}

	return nil, fmt.Errorf("FromTriplets: %s: %w", format, ErrUnsupported)
}

// Rows returns the number of rows.
func (b *Block) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Block) Cols() int { return b.cols }

// Cells returns rows*cols as int64.
func (b *Block) Cells() int64 { return int64(b.rows) * int64(b.cols) }

// Format returns the current physical representation.
func (b *Block) Format() Format { return b.format }

// InSparseFormat reports FormatSparse.
func (b *Block) InSparseFormat() bool { return b.format == FormatSparse }

// NonZeros returns the maintained non-zero count.
func (b *Block) NonZeros() int64 { return b.nnz }

// IsEmpty reports a logically all-zero block (by the maintained count).
func (b *Block) IsEmpty() bool { return b.nnz == 0 }

// DenseBlock returns the dense payload, or nil when absent or not dense.
func (b *Block) DenseBlock() *DenseBlock {
	if b.format != FormatDense {
		return nil
	}

	return b.dense
}

// SparseBlock returns the sparse payload, or nil when absent or not sparse.
func (b *Block) SparseBlock() *SparseBlock {
	if b.format != FormatSparse {
		return nil
	}

	return b.sparse
}

// CompressedBlock returns the compressed payload, or nil when not compressed.
func (b *Block) CompressedBlock() *CompressedBlock {
	if b.format != FormatCompressed {
		return nil
	}

	return b.compressed
}

// Get returns the value at (i, j) regardless of representation.
func (b *Block) Get(i, j int) (float64, error) {
	if i < 0 || i >= b.rows || j < 0 || j >= b.cols {
		return 0, fmt.Errorf("Block.Get(%d,%d): %w", i, j, ErrOutOfRange)
	}
	switch b.format {
	case FormatDense:
		if b.dense == nil {
			return 0, nil
		}
		return b.dense.At(i, j)
	case FormatSparse:
		if b.sparse == nil {
			return 0, nil
		}
		return b.sparse.Get(i, j)
	case FormatCompressed:
		return b.compressed.Get(i, j)
	}

	return 0, fmt.Errorf("Block.Get: %s: %w", b.format, ErrUnsupported)
}

// Set writes v at (i, j), allocating an absent payload on demand and
// keeping the non-zero count current. Compressed blocks are immutable.
func (b *Block) Set(i, j int, v float64) error {
	if i < 0 || i >= b.rows || j < 0 || j >= b.cols {
		return fmt.Errorf("Block.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if b.validateNaNInf && isNonFinite(v) {
		return fmt.Errorf("Block.Set(%d,%d): %w", i, j, ErrNaNInf)
	}
	old, err := b.Get(i, j)
	if err != nil {
		return err
	}

	switch b.format {
	case FormatDense:
		if b.dense == nil {
			if v == 0 {
				return nil
			}
			b.dense = &DenseBlock{rows: b.rows, cols: b.cols, data: make([]float64, b.rows*b.cols)}
		}
		err = b.dense.Set(i, j, v)
	case FormatSparse:
		if b.sparse == nil {
			if v == 0 {
				return nil
			}
			b.sparse = newEmptySparse(b.rows, b.cols)
		}
		err = b.sparse.Set(i, j, v)
	default:
		return fmt.Errorf("Block.Set: %s: %w", b.format, ErrUnsupported)
	}
	if err != nil {
		return err
	}

	switch {
	case old == 0 && v != 0:
		b.nnz++
	case old != 0 && v == 0:
		b.nnz--
	}

	return nil
}

// AllocateDense makes the dense payload present (zero-filled) if absent.
// Returns ErrUnsupported for non-dense blocks.
func (b *Block) AllocateDense() error {
	if b.format != FormatDense {
		return fmt.Errorf("Block.AllocateDense: %s: %w", b.format, ErrUnsupported)
	}
	if b.dense == nil {
		b.dense = &DenseBlock{rows: b.rows, cols: b.cols, data: make([]float64, b.rows*b.cols)}
	}

	return nil
}

// RecomputeNonZeros recounts non-zeros from the payload and stores the count.
func (b *Block) RecomputeNonZeros() int64 {
	switch b.format {
	case FormatDense:
		b.nnz = 0
		if b.dense != nil {
			b.nnz = b.dense.CountNonZeros(0, b.rows)
		}
	case FormatSparse:
		b.nnz = 0
		if b.sparse != nil {
			b.nnz = b.sparse.CountNonZeros(0, b.rows)
		}
	case FormatCompressed:
		b.nnz = b.compressed.NonZeros()
	}

	return b.nnz
}

// EvalSparseFormat reports whether a rows×cols block with nnz non-zeros
// belongs in sparse format under the turn point: multi-column and
// nnz/(rows*cols) below the threshold.
func EvalSparseFormat(rows, cols int, nnz int64, opts ...Option) bool {
	o := gatherOptions(opts...)
	cells := int64(rows) * int64(cols)
	if cols <= 1 || cells == 0 {
		return false
	}

	return float64(nnz)/float64(cells) < o.turnPoint
}

// ExamSparsity converts a dense or sparse block in place to the format
// EvalSparseFormat prefers. Compressed blocks are left untouched.
// The non-zero count must be current (call RecomputeNonZeros first).
func (b *Block) ExamSparsity(opts ...Option) {
	if b.format == FormatCompressed {
		return
	}
	wantSparse := EvalSparseFormat(b.rows, b.cols, b.nnz, opts...)
	switch {
	case wantSparse && b.format == FormatDense:
		*b = *b.ToSparse()
	case !wantSparse && b.InSparseFormat():
		*b = *b.ToDense()
	}
}

// forEachNonZero calls fn for every non-zero cell in row-major order.
func (b *Block) forEachNonZero(fn func(i, j int, v float64)) {
	switch b.format {
	case FormatDense:
		if b.dense == nil {
			return
		}
		for i := 0; i < b.rows; i++ {
			for j, v := range b.dense.Row(i) {
				if v != 0 {
					fn(i, j, v)
				}
			}
		}
	case FormatSparse:
		if b.sparse == nil {
			return
		}
		for i := 0; i < b.rows; i++ {
			vals := b.sparse.Values(i)
			for k, j := range b.sparse.Indexes(i) {
				if vals[k] != 0 {
					fn(i, j, vals[k])
				}
			}
		}
	case FormatCompressed:
		it := b.compressed.Iterator(0, b.rows, false)
		for it.Next() {
			c := it.Cell()
			fn(c.I, c.J, c.V)
		}
	}
}

// ToDense returns a new dense block with the same logical content.
// All-zero inputs yield an absent dense payload.
func (b *Block) ToDense() *Block {
	out := &Block{rows: b.rows, cols: b.cols, format: FormatDense, validateNaNInf: b.validateNaNInf}
	if b.nnz == 0 && b.format != FormatCompressed {
		return out
	}
	d := &DenseBlock{rows: b.rows, cols: b.cols, data: make([]float64, b.rows*b.cols)}
	b.forEachNonZero(func(i, j int, v float64) { d.data[i*b.cols+j] = v })
	out.dense = d
	out.nnz = d.CountNonZeros(0, b.rows)
	if out.nnz == 0 {
		out.dense = nil
	}

	return out
}

// ToSparse returns a new sparse block with the same logical content
// (stored zeros are dropped). All-zero inputs yield an absent sparse payload.
func (b *Block) ToSparse() *Block {
	out := &Block{rows: b.rows, cols: b.cols, format: FormatSparse, validateNaNInf: b.validateNaNInf}
	ptr := make([]int, b.rows+1)
	var idx []int
	var vals []float64
	b.forEachNonZero(func(i, j int, v float64) {
		ptr[i+1]++
		idx = append(idx, j)
		vals = append(vals, v)
	})
	if len(idx) == 0 {
		return out
	}
	for i := 0; i < b.rows; i++ {
		ptr[i+1] += ptr[i]
	}
	out.sparse = &SparseBlock{rows: b.rows, cols: b.cols, ptr: ptr, idx: idx, vals: vals}
	out.nnz = int64(len(idx))

	return out
}

// Clone returns a deep copy (compressed payloads are immutable and shared).
func (b *Block) Clone() *Block {
	cp := *b
	if b.dense != nil {
		cp.dense = b.dense.Clone()
	}
	if b.sparse != nil {
		cp.sparse = b.sparse.Clone()
	}

	return &cp
}

// String renders the logical content row by row.
func (b *Block) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %dx%d nnz=%d\n", b.format, b.rows, b.cols, b.nnz)
	for i := 0; i < b.rows; i++ {
		sb.WriteString("[")
		for j := 0; j < b.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			v, _ := b.Get(i, j)
			fmt.Fprintf(&sb, "%g", v)
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
