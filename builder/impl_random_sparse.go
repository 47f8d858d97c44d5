// SPDX-License-Identifier: MIT
// Package: lvfuse/builder
//
// impl_random_sparse.go - implementation of RandomSparse(density).
//
// Model:
//   - Each cell is kept independently with probability density; kept cells
//     receive a value drawn from the configured ValueFn (default U[0,1)).
//
// Contract:
//   - 0 ≤ density ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when density > 0 (else ErrNeedRandSource).
//   - density == 0 leaves the canvas untouched.
//
// Complexity:
//   - Time: O(rows*cols) Bernoulli trials. Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: row-major (i asc, then j asc); a kept cell draws its
//     value right after its trial.

package builder

import "fmt"

// RandomSparse returns a Constructor that overwrites a random subset of
// cells (expected fraction: density) with values from the configured ValueFn.
func RandomSparse(density float64) Constructor {
	return func(cv *Canvas, cfg builderConfig) error {
		if err := validateProbability(MethodRandomSparse, density); err != nil {
			return err
		}
		if density == MinProbability {
			return nil
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < cv.rows; i++ {
			for j := 0; j < cv.cols; j++ {
				if density == MaxProbability || cfg.rng.Float64() < density {
					cv.Set(i, j, cfg.draw())
				}
			}
		}

		return nil
	}
}
