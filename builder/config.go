// SPDX-License-Identifier: MIT
// Package: lvfuse/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng        = nil          (pure/deterministic unless seeded)
//   • format     = FormatDense
//   • valueFn    = UniformValueFn(DefaultValueLow, DefaultValueHigh)
//   • matrixOpts = none         (matrix package defaults)

package builder

import (
	"math/rand" // RNG for stochastic builders

	"github.com/katalvlaran/lvfuse/matrix"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Physical representation of the materialized block.
	format matrix.Format
	// Value distribution for stochastic constructors.
	valueFn ValueFn
	// Options forwarded to matrix constructors (turn point, NaN checks, encoding).
	matrixOpts []matrix.Option
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		format:  matrix.FormatDense,
		valueFn: UniformValueFn(DefaultValueLow, DefaultValueHigh),
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// draw samples one cell value. cfg.rng must be non-nil.
func (cfg builderConfig) draw() float64 {
	return cfg.valueFn(cfg.rng)
}
