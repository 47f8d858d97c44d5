// SPDX-License-Identifier: MIT

// Package kernels provides stock per-cell bodies for fused multi-aggregate
// operators.
//
// A real deployment gets its kernels from a code generator; this package
// hand-writes the common shapes so the engine can be exercised end to end:
//
//   - CellAgg:  each slot aggregates the primary value a itself;
//   - Offset:   each slot aggregates a + scalars[0] (sparse-unsafe for a
//     non-zero offset, since implicit zeros contribute scalars[0]);
//   - Product:  each slot aggregates a * b[side](row, col).
//
// SparseSafe reports whether zero input leaves a given slot list unchanged,
// which is the flag to pass to fused.New for these kernels.
package kernels
