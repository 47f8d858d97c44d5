// SPDX-License-Identifier: MIT

// Package matrix - Compressed storage (column groups).
//
// Purpose:
//   - Encode every column independently as a column group:
//   - offset lists: distinct non-zero values, each with the sorted rows holding it;
//   - dictionary codes: a small dictionary plus one code per row (zeros encoded too).
//   - Expose the encoded cells to readers only through a position-ordered
//     (row-major) Iterator over a row range.
//
// Determinism:
//   - Dictionaries are sorted ascending; iteration order is (row, col) ascending.
//
// Complexity quicksheet:
//   - Compress: O(nnz log nnz) for offset columns, O(rows) for dictionary columns.
//   - Iterator(rl,ru): O(k log c) for k encoded cells in range over c columns.
package matrix

import (
	"fmt"
	"slices"
	"sort"
)

// colGroup is the closed set of column encodings (offsetGroup, ddcGroup).
type colGroup interface {
	column() int
	// cells appends the encoded cells of rows [rl,ru) in ascending row order.
	cells(rl, ru int, inclZeros bool, dst []IJV) []IJV
	get(row int) float64
	nonZeros() int64
}

// offsetGroup encodes one column as value -> sorted row offsets.
type offsetGroup struct {
	col     int
	dict    []float64 // distinct non-zero values, ascending
	offsets [][]int   // offsets[d] = ascending rows holding dict[d]
}

func (g *offsetGroup) column() int { return g.col }

func (g *offsetGroup) cells(rl, ru int, inclZeros bool, dst []IJV) []IJV {
	start := len(dst)
	for d, rows := range g.offsets {
		for k := sort.SearchInts(rows, rl); k < len(rows) && rows[k] < ru; k++ {
			if g.dict[d] == 0 && !inclZeros {
				continue
			}
			dst = append(dst, IJV{I: rows[k], J: g.col, V: g.dict[d]})
		}
	}
	tail := dst[start:]
	sort.Slice(tail, func(a, b int) bool { return tail[a].I < tail[b].I })

	return dst
}

func (g *offsetGroup) get(row int) float64 {
	for d, rows := range g.offsets {
		if k := sort.SearchInts(rows, row); k < len(rows) && rows[k] == row {
			return g.dict[d]
		}
	}

	return 0
}

func (g *offsetGroup) nonZeros() int64 {
	var nnz int64
	for d, rows := range g.offsets {
		if g.dict[d] != 0 {
			nnz += int64(len(rows))
		}
	}

	return nnz
}

// ddcGroup encodes one column as a dictionary plus one code per row.
type ddcGroup struct {
	col   int
	dict  []float64 // distinct values (zero included when present), ascending
	codes []uint32  // len == rows
}

func (g *ddcGroup) column() int { return g.col }

func (g *ddcGroup) cells(rl, ru int, inclZeros bool, dst []IJV) []IJV {
	for r := rl; r < ru; r++ {
		v := g.dict[g.codes[r]]
		if v == 0 && !inclZeros {
			continue
		}
		dst = append(dst, IJV{I: r, J: g.col, V: v})
	}

	return dst
}

func (g *ddcGroup) get(row int) float64 { return g.dict[g.codes[row]] }

func (g *ddcGroup) nonZeros() int64 {
	var nnz int64
	for _, c := range g.codes {
		if g.dict[c] != 0 {
			nnz++
		}
	}

	return nnz
}

// CompressedBlock is a column-group encoded payload. It is immutable.
type CompressedBlock struct {
	rows, cols int
	groups     []colGroup // one per column, ascending column order
}

// Rows returns the number of rows.
func (c *CompressedBlock) Rows() int { return c.rows }

// Cols returns the number of columns.
func (c *CompressedBlock) Cols() int { return c.cols }

// NumGroups returns the number of column groups.
func (c *CompressedBlock) NumGroups() int { return len(c.groups) }

// Get decodes the value at (i, j).
func (c *CompressedBlock) Get(i, j int) (float64, error) {
	if i < 0 || i >= c.rows || j < 0 || j >= c.cols {
		return 0, fmt.Errorf("CompressedBlock.Get(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return c.groups[j].get(i), nil
}

// NonZeros counts encoded non-zero cells.
func (c *CompressedBlock) NonZeros() int64 {
	var nnz int64
	for _, g := range c.groups {
		nnz += g.nonZeros()
	}

	return nnz
}

// Decompress materialises the payload as a dense block.
func (c *CompressedBlock) Decompress() *DenseBlock {
	d := &DenseBlock{rows: c.rows, cols: c.cols, data: make([]float64, c.rows*c.cols)}
	it := c.Iterator(0, c.rows, false)
	for it.Next() {
		cell := it.Cell()
		d.data[cell.I*c.cols+cell.J] = cell.V
	}

	return d
}

// Iterator returns a position-ordered iterator over the encoded cells of
// rows [rl, ru). With inclZeros, explicitly encoded zeros are included;
// implicit zeros (cells outside the encoding) are never produced.
// Panics if the range is invalid (programmer error in the caller's partitioning).
func (c *CompressedBlock) Iterator(rl, ru int, inclZeros bool) *Iterator {
	if err := checkRowRange(c.rows, rl, ru); err != nil {
		panic("matrix: CompressedBlock.Iterator: " + err.Error())
	}
	it := &Iterator{}
	for _, g := range c.groups {
		cells := g.cells(rl, ru, inclZeros, nil)
		if len(cells) > 0 {
			it.streams = append(it.streams, cellStream{cells: cells})
		}
	}
	it.init()

	return it
}

// Compress encodes any block as a CompressedBlock, one group per column.
// Stage 1: collect each column's non-zeros in row order (NaN rejected: it cannot key a dictionary).
// Stage 2: pick the encoding (WithColumnEncoding, default auto by column density).
// Stage 3: build dictionaries sorted ascending for deterministic codes.
func Compress(b *Block, opts ...Option) (*Block, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("Compress: %w", err)
	}
	if b.format == FormatCompressed {
		return b, nil
	}
	o := gatherOptions(opts...)

	cols := make([][]IJV, b.cols)
	var bad error
	b.forEachNonZero(func(i, j int, v float64) {
		if v != v && bad == nil {
			bad = fmt.Errorf("Compress: cell (%d,%d): %w", i, j, ErrNaNInf)
		}
		cols[j] = append(cols[j], IJV{I: i, J: j, V: v})
	})
	if bad != nil {
		return nil, bad
	}

	cb := &CompressedBlock{rows: b.rows, cols: b.cols, groups: make([]colGroup, b.cols)}
	for j, cells := range cols {
		enc := o.encoding
		if enc == EncodingAuto {
			enc = EncodingOffsets
			if 2*len(cells) >= b.rows && b.rows > 0 {
				enc = EncodingDictionary
			}
		}
		if enc == EncodingDictionary {
			cb.groups[j] = newDDCGroup(j, b.rows, cells)
		} else {
			cb.groups[j] = newOffsetGroup(j, cells)
		}
	}

	return &Block{rows: b.rows, cols: b.cols, format: FormatCompressed, compressed: cb, nnz: cb.NonZeros()}, nil
}

// newOffsetGroup builds value -> rows lists from row-ordered non-zero cells.
func newOffsetGroup(col int, cells []IJV) *offsetGroup {
	byValue := make(map[float64][]int)
	for _, c := range cells {
		byValue[c.V] = append(byValue[c.V], c.I)
	}
	g := &offsetGroup{col: col, dict: make([]float64, 0, len(byValue))}
	for v := range byValue {
		g.dict = append(g.dict, v)
	}
	slices.Sort(g.dict)
	g.offsets = make([][]int, len(g.dict))
	for d, v := range g.dict {
		g.offsets[d] = byValue[v] // already ascending: cells arrive in row order
	}

	return g
}

// newDDCGroup builds a dictionary-coded column; rows not in cells are zero.
func newDDCGroup(col, rows int, cells []IJV) *ddcGroup {
	values := make([]float64, rows)
	for _, c := range cells {
		values[c.I] = c.V
	}
	dict := slices.Clone(values)
	slices.Sort(dict)
	dict = slices.Compact(dict)

	codes := make([]uint32, rows)
	for r, v := range values {
		code, _ := slices.BinarySearch(dict, v)
		codes[r] = uint32(code)
	}

	return &ddcGroup{col: col, dict: dict, codes: codes}
}
