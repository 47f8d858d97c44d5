// SPDX-License-Identifier: MIT
// Package: agg
//
// Purpose:
//   - Map each Kind to its neutral value and binary merge function.
//   - Stay a pure mapping: no package-level mutable table, no init-time registration.
//
// Determinism:
//   - Apply is a pure function of (a, b); Fold visits partials in slice order,
//     which is what keeps compensated results reproducible across runs.

package agg

import (
	"fmt"
	"math"
)

// Identity returns the neutral value of k: 0 for SUM and SUM_SQ,
// math.MaxFloat64 for MIN and -math.MaxFloat64 for MAX.
// Invalid kinds yield 0; use Functions to reject them up front.
func Identity(k Kind) float64 {
	switch k {
	case Min:
		return math.MaxFloat64
	case Max:
		return -math.MaxFloat64
	}

	return 0
}

// Identities returns a fresh accumulator vector initialised to the neutral
// value of every kind, in order.
func Identities(kinds []Kind) []float64 {
	c := make([]float64, len(kinds))
	Reset(kinds, c)

	return c
}

// Reset re-initialises c to the neutral values of kinds.
// c must have len(kinds) elements.
func Reset(kinds []Kind, c []float64) {
	for i, k := range kinds {
		c[i] = Identity(k)
	}
}

// Func is the merge function bound to one Kind.
type Func struct {
	kind Kind
}

// Kind returns the aggregation kind this function merges.
func (f Func) Kind() Kind { return f.kind }

// Compensated reports whether partials must be folded through a Kahan state.
func (f Func) Compensated() bool { return f.kind.SumLike() }

// Apply merges b into a.
// Sum-like kinds take one compensated step seeded with (a, 0); since partial
// results are already squared by the kernel, SUM_SQ merges by plain addition
// as well. MIN/MAX use math.Min/math.Max (NaN propagates).
func (f Func) Apply(a, b float64) float64 {
	switch f.kind {
	case Min:
		return math.Min(a, b)
	case Max:
		return math.Max(a, b)
	}

	k := NewKahan(a)
	k.Add(b)

	return k.Sum
}

// Fold merges every partial value into seed, in order.
// For compensated kinds the seed is discarded in favour of a fresh Kahan{0,0}
// fold over all partials, because each partial already started from the neutral value.
func (f Func) Fold(seed float64, partials []float64) float64 {
	if f.Compensated() {
		var k Kahan
		for _, p := range partials {
			k.Add(p)
		}
		return k.Sum
	}

	out := seed
	for _, p := range partials {
		out = f.Apply(out, p)
	}

	return out
}

// FuncOf returns the merge function for k or ErrUnsupportedKind.
func FuncOf(k Kind) (Func, error) {
	if !k.Valid() {
		return Func{}, fmt.Errorf("FuncOf(%s): %w", k, ErrUnsupportedKind)
	}

	return Func{kind: k}, nil
}

// Functions validates kinds and returns their merge functions in order.
// This is the construction-time check: any unsupported kind fails the whole list.
func Functions(kinds []Kind) ([]Func, error) {
	fns := make([]Func, len(kinds))
	for i, k := range kinds {
		f, err := FuncOf(k)
		if err != nil {
			return nil, fmt.Errorf("Functions[%d]: %w", i, err)
		}
		fns[i] = f
	}

	return fns, nil
}
