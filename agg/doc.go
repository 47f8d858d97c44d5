// SPDX-License-Identifier: MIT

// Package agg is the aggregation operator registry used by fused
// multi-aggregate operators.
//
// What & Why:
//
//	A multi-aggregate operator produces a 1×K vector, one slot per configured
//	aggregation kind. Every slot needs two things: a neutral value to start
//	from, and a binary merge to fold partial results computed by independent
//	row-block tasks. This package maps the closed set of kinds
//	(SUM, SUM_SQ, MIN, MAX) to both, with no process-wide state.
//
// Key features:
//   - Identity(kind): 0 for sums, +MaxFloat64 for MIN, -MaxFloat64 for MAX.
//   - Kahan: compensated summation (sum + running correction) used to merge
//     sum-like partials, with an infinity fast path.
//   - Functions(kinds): validates a kind list once, at operator construction.
//
// Usage:
//
//	fns, err := agg.Functions([]agg.Kind{agg.Sum, agg.Max})
//	if err != nil { ... }
//	acc := agg.Identities([]agg.Kind{agg.Sum, agg.Max}) // [0, -MaxFloat64]
//
// Complexity:
//
//	All lookups are O(1); Functions/Identities are O(K).
package agg
