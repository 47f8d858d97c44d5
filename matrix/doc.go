// SPDX-License-Identifier: MIT

// Package matrix provides the in-memory matrix block consumed by fused
// operators: one logical rows×cols matrix held in exactly one of three
// physical representations.
//
// The matrix package provides:
//
//   - Block, a closed tagged variant over FormatDense (row-major, possibly
//     absent when all-zero), FormatSparse (CSR, non-zeros only, possibly
//     absent) and FormatCompressed (per-column groups behind a
//     position-ordered IJV Iterator).
//   - Conversions between the three (ToDense, ToSparse, Compress) so the same
//     logical matrix can be presented in any representation.
//   - Output helpers used by aggregation results: Set with non-zero
//     bookkeeping, RecomputeNonZeros and ExamSparsity.
//   - SideInput adapters (DenseSide, SparseSide, per-task SparseCursor).
//   - gonum interop (FromGonum, Block.ToGonum).
//
// Blocks are read-only once handed to an engine; constructors adopt slices
// without copying. See example_test.go for usage patterns.
package matrix
