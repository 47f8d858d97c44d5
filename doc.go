// Package lvfuse runs fused multi-aggregate operators over matrix blocks:
// one pass over a primary input computes K scalar aggregates (SUM, SUM_SQ,
// MIN, MAX) at once, serially or split into row blocks across goroutines.
//
// Under the hood, everything is organized under these subpackages:
//
//	agg/      aggregation kinds, neutral values, compensated (Kahan) merge rules
//	matrix/   dense, sparse (CSR) and compressed (column group) blocks, side-input cursors
//	fused/    the engine: format drivers, row partitioning, task pool, partial merge
//	kernels/  ready-made per-cell kernels (identity, offset, product with a side input)
//	builder/  deterministic synthetic blocks for tests, benchmarks and the CLI
//	cmd/lvfuse/  command-line runner printing the plan and the aggregates
//
// Quick example:
//
//	kinds := []agg.Kind{agg.Sum, agg.Max}
//	op, _ := fused.New(kernels.CellAgg(kinds...), false, kinds)
//	out, _ := op.Execute([]*matrix.Block{x}, nil, runtime.GOMAXPROCS(0))
//	// out is 1×2: [sum(x), max(x)]
//
//	go install github.com/katalvlaran/lvfuse/cmd/lvfuse@latest
package lvfuse
