// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromGonum copies any gonum matrix into a dense block.
// Zero-sized gonum matrices cannot exist, so the result is at least 1×1.
func FromGonum(m mat.Matrix, opts ...Option) (*Block, error) {
	if m == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := m.Dims()
	data := make([]float64, r*c)
	if raw, ok := m.(mat.RawMatrixer); ok {
		rm := raw.RawMatrix()
		for i := 0; i < r; i++ {
			copy(data[i*c:(i+1)*c], rm.Data[i*rm.Stride:i*rm.Stride+c])
		}
	} else {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				data[i*c+j] = m.At(i, j)
			}
		}
	}

	return NewDense(r, c, data, opts...)
}

// ToGonum copies the logical content into a new *mat.Dense.
// gonum rejects zero-sized matrices, so empty blocks return ErrInvalidDimensions.
func (b *Block) ToGonum() (*mat.Dense, error) {
	if b.rows == 0 || b.cols == 0 {
		return nil, fmt.Errorf("Block.ToGonum(%dx%d): %w", b.rows, b.cols, ErrInvalidDimensions)
	}
	out := mat.NewDense(b.rows, b.cols, nil)
	b.forEachNonZero(func(i, j int, v float64) { out.Set(i, j, v) })

	return out, nil
}
