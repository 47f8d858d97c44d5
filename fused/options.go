// SPDX-License-Identifier: MIT

// Package fused: functional configuration for multi-aggregate operators.
//   - Option / options (functional options over an unexported struct),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error).
package fused

import "log/slog"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultParallelThreshold is the input size (non-zeros for sparse-safe
	// operators, cells otherwise) below which execution is always serial,
	// whatever thread count the caller asks for.
	DefaultParallelThreshold int64 = 1024 * 1024

	// DefaultName is the operator name used in Type() and log records.
	DefaultName = "MultiAggregate"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilLogger    = "fused: WithLogger(nil)"
	panicNegThreshold = "fused: WithParallelThreshold: threshold must be >= 0"
	panicEmptyName    = "fused: WithName: name must be non-empty"
)

// Option customizes a MultiAggregate at construction.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	threshold int64
	name      string
}

// WithLogger routes execution records (plan decisions, failures) to l.
// Records are emitted at Debug (plans) and Error (failures).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithParallelThreshold overrides DefaultParallelThreshold.
// A threshold of 0 lets any non-empty input run in parallel when k > 1.
func WithParallelThreshold(t int64) Option {
	if t < 0 {
		panic(panicNegThreshold)
	}

	return func(o *options) { o.threshold = t }
}

// WithName sets the generated operator's class name (Type() = "MA" + name).
func WithName(name string) Option {
	if name == "" {
		panic(panicEmptyName)
	}

	return func(o *options) { o.name = name }
}

// gatherOptions applies setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) options {
	o := options{
		logger:    slog.New(slog.DiscardHandler),
		threshold: DefaultParallelThreshold,
		name:      DefaultName,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
