// Package builder provides deterministic, functional‐options‐style
// generators for matrix blocks used as fused-operator inputs in tests,
// benchmarks and the lvfuse CLI.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildBlock(rows, cols, opts, cons...): zero canvas → constructors in
//     order → block in the configured representation.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed/WithRand: RNG for stochastic constructors.
//     – WithFormat:        dense, sparse or compressed output.
//     – WithValueFn:       value distribution for RandomSparse
//     (UniformValueFn, IntegerValueFn, NormalValueFn, ExponentialValueFn;
//     shorthands WithValueRange, WithIntegerValues, WithNormalValues).
//     – WithMatrixOptions: forwarded to matrix constructors.
//   - Constructors (Constructor closures):
//     – RandomSparse(density), Constant(v), Sequence(start, step), Literal(rows).
//     – Scale(alpha), Shift(c): in-place transforms (gonum floats).
//   - Validation helpers:
//     – validateDims, validateProbability.
//
// Guarantees:
//
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors for invalid build parameters, wrapping
//     sentinels (ErrBadSize, ErrInvalidProbability, ...) for errors.Is.
//   - Determinism: the same seed, options and constructor order produce the
//     same logical matrix in every representation.
package builder
