// SPDX-License-Identifier: MIT
// Package fused: sentinel error set.
//
// Configuration errors are returned before any work starts. Every failure
// raised while tasks run is wrapped in ErrExecution together with its cause,
// so callers can match either with errors.Is.

package fused

import "errors"

var (
	// ErrNoInputs is returned when Execute receives no matrix inputs.
	ErrNoInputs = errors.New("fused: no input matrices")

	// ErrNilKernel is returned by New for a nil kernel.
	ErrNilKernel = errors.New("fused: nil kernel")

	// ErrNoAggregates is returned by New for an empty aggregation list.
	ErrNoAggregates = errors.New("fused: no aggregation operators")

	// ErrUnsafeCompressed rejects a sparse-unsafe operator on a compressed
	// primary input: the compressed driver cannot visit implicit zeros.
	ErrUnsafeCompressed = errors.New("fused: sparse-unsafe operator on compressed input")

	// ErrAggMismatch indicates partial results that were not produced under
	// the same aggregation list (width or shape differs).
	ErrAggMismatch = errors.New("fused: partial result does not match aggregation list")

	// ErrExecution wraps any failure raised while driver tasks run.
	ErrExecution = errors.New("fused: execution failed")

	// ErrKernelPanic is the cause recorded when a kernel panics.
	ErrKernelPanic = errors.New("fused: kernel panic")
)
