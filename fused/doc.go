// SPDX-License-Identifier: MIT

// Package fused is the shared execution engine for generated multi-aggregate
// operators.
//
// What & Why:
//
//	A code generator emits, per fused operator, only the per-cell body (the
//	Kernel): given one cell value of the primary input, the side inputs, the
//	scalars and the coordinates, update a 1×K accumulator. Everything else is
//	common and lives here:
//	  • format drivers walking dense, sparse or compressed storage and calling
//	    the kernel on exactly the cells the sparse-safety flag requires;
//	  • a row-block partitioner and a bounded task pool (errgroup) that run
//	    one driver call per block with private accumulators and cursors;
//	  • a merger folding per-block vectors in task order with compensated
//	    summation, plus a second entry point for merging finished 1×K results.
//
// Sparse-safety:
//
//	A sparse-safe kernel is a no-op on zero input, so implicit zeros are never
//	visited. A sparse-unsafe kernel sees every logical cell: zero gaps in
//	sparse rows and every cell of an absent (all-zero) dense payload.
//	Compressed inputs only expose encoded cells, so they are accepted with
//	sparse-safe operators only (ErrUnsafeCompressed otherwise).
//
// Usage:
//
//	op, err := fused.New(kernels.CellAgg(agg.Sum, agg.Max), true,
//		[]agg.Kind{agg.Sum, agg.Max}, fused.WithLogger(logger))
//	if err != nil { ... }
//	out, err := op.Execute([]*matrix.Block{x}, nil, runtime.GOMAXPROCS(0))
//	// out is a 1×2 block: [sum(x), max(x)]
//
// Determinism:
//
//	Partials are merged strictly by block index, so results do not depend on
//	goroutine scheduling.
package fused
