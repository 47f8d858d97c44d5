// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for block construction and
// representation changes. This file defines:
//   - Option (functional options over an unexported options struct),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSparsityTurnPoint is the sparsity (nnz / cells) below which a
	// multi-column block is kept in sparse format by ExamSparsity.
	DefaultSparsityTurnPoint = 0.4

	// DefaultValidateNaNInf toggles finite-value validation in constructors
	// and Set. Off by default: neutral aggregation values and kernel outputs
	// may legitimately be ±MaxFloat64 or infinite.
	DefaultValidateNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicTurnPointInvalid = "matrix: WithSparsityTurnPoint: turn point must be in (0,1]"
	panicEncodingInvalid  = "matrix: WithColumnEncoding: unknown encoding"
)

// Encoding selects how Compress encodes each column group.
type Encoding uint8

const (
	// EncodingAuto picks dictionary codes for columns at least half non-zero,
	// offset lists otherwise.
	EncodingAuto Encoding = iota
	// EncodingOffsets stores, per distinct non-zero value, the sorted rows holding it.
	// Zeros are never encoded.
	EncodingOffsets
	// EncodingDictionary stores one dictionary code per row, zeros included.
	EncodingDictionary
)

// DefaultEncoding is the column encoding used by Compress.
const DefaultEncoding = EncodingAuto

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	turnPoint      float64 // (0,1]; DefaultSparsityTurnPoint
	validateNaNInf bool    // DefaultValidateNaNInf
	encoding       Encoding
}

// WithSparsityTurnPoint sets the sparsity threshold used by ExamSparsity.
// Panics when tp is not finite or outside (0,1].
func WithSparsityTurnPoint(tp float64) Option {
	if math.IsNaN(tp) || math.IsInf(tp, 0) || tp <= 0 || tp > 1 {
		panic(panicTurnPointInvalid)
	}

	return func(o *options) { o.turnPoint = tp }
}

// WithColumnEncoding forces the column-group encoding used by Compress.
// Panics on values outside the Encoding constants.
func WithColumnEncoding(enc Encoding) Option {
	if enc > EncodingDictionary {
		panic(panicEncodingInvalid)
	}

	return func(o *options) { o.encoding = enc }
}

// WithValidateNaNInf rejects NaN and ±Inf in constructors and Set.
func WithValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = true }
}

// gatherOptions applies setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) options {
	o := options{
		turnPoint:      DefaultSparsityTurnPoint,
		validateNaNInf: DefaultValidateNaNInf,
		encoding:       DefaultEncoding,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
