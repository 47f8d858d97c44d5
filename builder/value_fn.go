// SPDX-License-Identifier: MIT
// Package builder provides the value distributions used by stochastic
// constructors (RandomSparse) to fill kept cells.
package builder

import (
	"fmt"
	"math/rand"
)

// ValueFn produces a cell value from the configured RNG.
// It must be deterministic for a given RNG state. A zero draw leaves the
// cell empty, so distributions that can return 0 lower the realised density.
type ValueFn func(rng *rand.Rand) float64

// UniformValueFn returns a ValueFn sampling uniformly in [lo, hi).
// Panics unless lo < hi.
// Complexity: O(1) time, O(1) space.
func UniformValueFn(lo, hi float64) ValueFn {
	if !(lo < hi) {
		panic(fmt.Sprintf("UniformValueFn: require lo < hi, got lo=%g, hi=%g", lo, hi))
	}
	span := hi - lo

	return func(rng *rand.Rand) float64 {
		return lo + rng.Float64()*span
	}
}

// IntegerValueFn returns a ValueFn sampling integers uniformly in [lo, hi].
// Integer-valued blocks make every sum exact, which is handy when comparing
// serial and parallel runs bit for bit. Panics if hi < lo.
// Complexity: O(1) time, O(1) space.
func IntegerValueFn(lo, hi int) ValueFn {
	if hi < lo {
		panic(fmt.Sprintf("IntegerValueFn: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	n := int64(hi - lo + 1)

	return func(rng *rand.Rand) float64 {
		return float64(int64(lo) + rng.Int63n(n))
	}
}

// NormalValueFn returns a ValueFn sampling from N(mean, stddev).
// Panics if stddev < 0.
// Complexity: O(1) time, O(1) space.
func NormalValueFn(mean, stddev float64) ValueFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalValueFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		return rng.NormFloat64()*stddev + mean
	}
}

// ExponentialValueFn returns a ValueFn sampling from an exponential
// distribution with rate λ (mean 1/λ). Panics if rate ≤ 0.
// Complexity: O(1) time, O(1) space.
func ExponentialValueFn(rate float64) ValueFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialValueFn: rate must be > 0, got %f", rate))
	}

	return func(rng *rand.Rand) float64 {
		return rng.ExpFloat64() / rate
	}
}

// WithValueFn overrides the value distribution of stochastic constructors.
// Panics on nil.
func WithValueFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *builderConfig) {
		c.valueFn = fn
	}
}

// WithValueRange sets values ∼ U[lo,hi) via UniformValueFn.
// Panics unless lo < hi.
func WithValueRange(lo, hi float64) BuilderOption {
	return WithValueFn(UniformValueFn(lo, hi))
}

// WithIntegerValues sets integer values ∼ U{lo..hi} via IntegerValueFn.
func WithIntegerValues(lo, hi int) BuilderOption {
	return WithValueFn(IntegerValueFn(lo, hi))
}

// WithNormalValues sets values ∼ N(mean,stddev) via NormalValueFn.
func WithNormalValues(mean, stddev float64) BuilderOption {
	return WithValueFn(NormalValueFn(mean, stddev))
}
