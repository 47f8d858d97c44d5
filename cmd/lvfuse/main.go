// SPDX-License-Identifier: MIT

// Command lvfuse builds a synthetic matrix block, runs one fused
// multi-aggregate operator over it and prints the aggregates together with
// the engine's serial/parallel decision.
//
// Usage:
//
//	lvfuse --rows 4096 --cols 1024 --density 0.05 --agg sum,sumsq,min,max
//	lvfuse --format compressed --threads 8 --log-level debug   # --agg defaults to sum,sumsq
//	lvfuse --rows 512 --cols 512 --values normal --agg min,max
//	lvfuse --offset 1 --agg sum            # sparse-unsafe: zeros contribute 1
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
