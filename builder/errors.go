// SPDX-License-Identifier: MIT
// Package: lvfuse/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w ("<Method>: ...: %w").
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrBadSize indicates a negative block dimension.
// Usage: if errors.Is(err, ErrBadSize) { /* fix rows/cols */ }.
var ErrBadSize = errors.New("builder: invalid size")

// ErrInvalidProbability indicates a density outside the closed interval [0,1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrShapeMismatch indicates literal data whose shape differs from the block.
var ErrShapeMismatch = errors.New("builder: shape mismatch")

// ErrConstructFailed indicates that materializing the canvas into the
// requested representation failed, or that a nil constructor was supplied.
// Usage: if errors.Is(err, ErrConstructFailed) { /* inspect wrapped cause */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
