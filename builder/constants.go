// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by block constructors,
// ensuring consistent defaults and validation across all generators.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildBlock is the canonical name for the BuildBlock orchestrator.
	MethodBuildBlock = "BuildBlock"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodConstant is the canonical name for the Constant constructor.
	MethodConstant = "Constant"
	// MethodSequence is the canonical name for the Sequence constructor.
	MethodSequence = "Sequence"
	// MethodLiteral is the canonical name for the Literal constructor.
	MethodLiteral = "Literal"
	// MethodScale is the canonical name for the Scale transform.
	MethodScale = "Scale"
	// MethodShift is the canonical name for the Shift transform.
	MethodShift = "Shift"
)

//-----------------------------------------------------------------------------
// Size and Probability Bounds
//-----------------------------------------------------------------------------

// MinDim is the smallest allowed block dimension (rows or cols).
// A 0×n block is valid and holds no cells.
const MinDim = 0

// MinProbability is the lower bound for the density parameter of
// RandomSparse, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for the density parameter of
// RandomSparse, inclusive.
const MaxProbability = 1.0

//-----------------------------------------------------------------------------
// Value Defaults
//-----------------------------------------------------------------------------

// DefaultValueLow and DefaultValueHigh bound the uniform values drawn by
// stochastic constructors: [DefaultValueLow, DefaultValueHigh).
const (
	DefaultValueLow  = 0.0
	DefaultValueHigh = 1.0
)
