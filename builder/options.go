// SPDX-License-Identifier: MIT
// Package: lvfuse/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand" // RNG source for stochastic builders

	"github.com/katalvlaran/lvfuse/matrix"
)

// BuilderOption customizes the behavior of BuildBlock by mutating a
// builderConfig instance before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithFormat selects the representation of the built block.
// Panics on an unknown format.
func WithFormat(f matrix.Format) BuilderOption {
	switch f {
	case matrix.FormatDense, matrix.FormatSparse, matrix.FormatCompressed:
	default:
		panic("builder: WithFormat(unknown)")
	}
	return func(c *builderConfig) {
		c.format = f
	}
}

// WithMatrixOptions forwards options to the matrix constructors used when
// materializing the block (e.g. matrix.WithColumnEncoding).
func WithMatrixOptions(opts ...matrix.Option) BuilderOption {
	return func(c *builderConfig) {
		c.matrixOpts = append(c.matrixOpts, opts...)
	}
}
