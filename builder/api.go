// SPDX-License-Identifier: MIT
// Package: lvfuse/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildBlock(rows, cols, bopts, cons...). Creates a
//     zeroed canvas, resolves cfg, runs cons in order, materializes the block.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical blocks.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvfuse/matrix"
)

// Canvas is the row-major scratch buffer constructors write into.
// Every cell starts at 0; later constructors overwrite earlier ones.
type Canvas struct {
	rows, cols int
	data       []float64
}

// Rows returns the number of rows.
func (cv *Canvas) Rows() int { return cv.rows }

// Cols returns the number of columns.
func (cv *Canvas) Cols() int { return cv.cols }

// At returns the value at (i, j). Indices are not checked.
func (cv *Canvas) At(i, j int) float64 { return cv.data[i*cv.cols+j] }

// Set writes v at (i, j). Indices are not checked.
func (cv *Canvas) Set(i, j int, v float64) { cv.data[i*cv.cols+j] = v }

// Values exposes the whole row-major buffer for bulk transforms.
func (cv *Canvas) Values() []float64 { return cv.data }

// Constructor applies a deterministic mutation to the canvas using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(cv *Canvas, cfg builderConfig) error

// BuildBlock creates a rows×cols zero canvas, resolves the builder
// configuration from bopts, applies all constructors in order and returns
// the result in the configured representation (WithFormat, default dense).
// An all-zero dense or sparse result has an absent payload.
//
// Errors:
//   - ErrBadSize for negative dimensions.
//   - Constructor errors, wrapped with "BuildBlock: %w".
//   - ErrConstructFailed for a nil constructor or a failed materialization.
func BuildBlock(rows, cols int, bopts []BuilderOption, cons ...Constructor) (*matrix.Block, error) {
	if err := validateDims(MethodBuildBlock, rows, cols); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(bopts...)
	cv := &Canvas{rows: rows, cols: cols, data: make([]float64, rows*cols)}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildBlock, i, ErrConstructFailed)
		}
		if err := fn(cv, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildBlock, err)
		}
	}

	b, err := materialize(cv, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w: %w", MethodBuildBlock, cfg.format, ErrConstructFailed, err)
	}

	return b, nil
}

// materialize converts the canvas into cfg.format.
func materialize(cv *Canvas, cfg builderConfig) (*matrix.Block, error) {
	d, err := matrix.NewDense(cv.rows, cv.cols, cv.data, cfg.matrixOpts...)
	if err != nil {
		return nil, err
	}
	switch cfg.format {
	case matrix.FormatSparse:
		return d.ToSparse(), nil
	case matrix.FormatCompressed:
		return matrix.Compress(d, cfg.matrixOpts...)
	}
	if d.IsEmpty() {
		return d.ToDense(), nil
	}

	return d, nil
}

// =============================================================================
// Factories - implemented in impl_*.go
// =============================================================================
//
// RandomSparse(density)  Bernoulli mask with ValueFn values (needs RNG when density > 0).
// Constant(v)            every cell = v.
// Sequence(start, step)  row-major arithmetic progression.
// Literal(rows)          explicit row data, shape-checked.
// Scale(alpha), Shift(c) in-place transforms of everything built so far.
