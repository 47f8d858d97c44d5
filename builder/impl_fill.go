// SPDX-License-Identifier: MIT
// Package: lvfuse/builder
//
// impl_fill.go - deterministic fill constructors (Constant, Sequence, Literal).

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Constant sets every cell to v.
// Complexity: O(rows*cols).
func Constant(v float64) Constructor {
	return func(cv *Canvas, _ builderConfig) error {
		for k := range cv.data {
			cv.data[k] = v
		}

		return nil
	}
}

// Sequence fills the canvas in row-major order with start, start+step, ...
// The last cell is exactly start + (rows*cols-1)*step.
// Complexity: O(rows*cols).
func Sequence(start, step float64) Constructor {
	return func(cv *Canvas, _ builderConfig) error {
		switch n := len(cv.data); n {
		case 0:
		case 1:
			cv.data[0] = start
		default:
			floats.Span(cv.data, start, start+float64(n-1)*step)
		}

		return nil
	}
}

// Literal copies explicit row data; its shape must equal the canvas shape.
func Literal(rows [][]float64) Constructor {
	return func(cv *Canvas, _ builderConfig) error {
		if len(rows) != cv.rows {
			return fmt.Errorf("%s: %d rows, want %d: %w", MethodLiteral, len(rows), cv.rows, ErrShapeMismatch)
		}
		for i, row := range rows {
			if len(row) != cv.cols {
				return fmt.Errorf("%s: row %d has %d cols, want %d: %w",
					MethodLiteral, i, len(row), cv.cols, ErrShapeMismatch)
			}
			copy(cv.data[i*cv.cols:(i+1)*cv.cols], row)
		}

		return nil
	}
}
