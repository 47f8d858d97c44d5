// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors and accessors return these sentinels and tests check
// them via errors.Is. No accessor panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Sentinels are returned wrapped with call-site context, e.g.
// fmt.Errorf("Block.Get(%d,%d): %w", i, j, ErrOutOfRange).
//
// ERROR PRIORITY:
// nil -> dimensions -> index range -> structural (CSR/encoding) -> unsupported.

var (
	// ErrNilMatrix indicates that a nil *Block (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil block")

	// ErrInvalidDimensions indicates negative rows or columns, or a payload
	// whose length does not match rows*cols.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates a row, column or row range outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between two blocks.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrMalformedSparse signals a CSR payload whose row pointers are not
	// monotone or whose column indexes are not strictly increasing per row.
	ErrMalformedSparse = errors.New("matrix: malformed sparse block")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values (only when WithValidateNaNInf is in effect).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrUnsupported marks an operation the current representation does not
	// offer, e.g. Set on a compressed block.
	ErrUnsupported = errors.New("matrix: operation not supported for format")
)
