// SPDX-License-Identifier: MIT

package fused

import "github.com/katalvlaran/lvfuse/matrix"

// Kernel is the per-cell body of a generated multi-aggregate operator.
//
// Update is called once per visited cell with:
//   - a: the primary input value at (row, col) (0 for implicit zeros),
//   - b: side inputs, task-private (sparse cursors are never shared),
//   - scalars: the operator's scalar parameters, unchanged across calls,
//   - m, n: dimensions of the primary input,
//   - row, col: the cell coordinates,
//   - c: the task's accumulator, len == number of aggregation operators.
//
// Contract:
//   - Update only mutates c. It may run concurrently on distinct c/b.
//   - Each (row, col) is visited at most once per execution; within a task,
//     visitation is row-major. There is no order between tasks.
//   - A returned error (or a panic) aborts the whole execution.
type Kernel interface {
	Update(a float64, b []matrix.SideInput, scalars []float64, m, n, row, col int, c []float64) error
}

// KernelFunc adapts a plain function to Kernel.
type KernelFunc func(a float64, b []matrix.SideInput, scalars []float64, m, n, row, col int, c []float64) error

// Update calls f.
func (f KernelFunc) Update(a float64, b []matrix.SideInput, scalars []float64, m, n, row, col int, c []float64) error {
	return f(a, b, scalars, m, n, row, col, c)
}
