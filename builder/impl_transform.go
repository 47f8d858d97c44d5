// SPDX-License-Identifier: MIT
// Package: lvfuse/builder
//
// impl_transform.go - in-place transforms over everything built so far.
//
// Transforms compose with fills: BuildBlock(r, c, opts, RandomSparse(0.1), Scale(10))
// scales only the kept cells (zeros stay zero). Shift touches every cell,
// implicit zeros included, and therefore densifies.

package builder

import "gonum.org/v1/gonum/floats"

// Scale multiplies every cell by alpha.
func Scale(alpha float64) Constructor {
	return func(cv *Canvas, _ builderConfig) error {
		floats.Scale(alpha, cv.data)

		return nil
	}
}

// Shift adds c to every cell.
func Shift(c float64) Constructor {
	return func(cv *Canvas, _ builderConfig) error {
		floats.AddConst(c, cv.data)

		return nil
	}
}
