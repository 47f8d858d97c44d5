// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common block validation checks.
//  - Keep the engine and adapters minimal by delegating nil/shape/range checks here.
//  - Return tagged sentinel errors so call sites can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the block reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(b *Block) error {
	if b == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateAllNotNil ensures every block in bs is non-nil, reporting the first offender.
// Complexity: O(len(bs)).
func ValidateAllNotNil(bs []*Block) error {
	for i, b := range bs {
		if b == nil {
			return validatorErrorf(fmt.Sprintf("ValidateAllNotNil[%d]", i), ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil.
func ValidateSameShape(a, b *Block) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateShape ensures b is exactly rows×cols.
func ValidateShape(b *Block, rows, cols int) error {
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if b.rows != rows || b.cols != cols {
		return validatorErrorf(fmt.Sprintf("ValidateShape: %dx%d, want %dx%d", b.rows, b.cols, rows, cols),
			ErrDimensionMismatch)
	}

	return nil
}

// ValidateRowRange ensures b is non-nil and 0 <= rl <= ru <= b.Rows().
func ValidateRowRange(b *Block, rl, ru int) error {
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return checkRowRange(b.rows, rl, ru)
}

// checkRowRange is the range rule shared by ValidateRowRange and Iterator.
func checkRowRange(rows, rl, ru int) error {
	if rl < 0 || ru > rows || rl > ru {
		return validatorErrorf(fmt.Sprintf("ValidateRowRange[%d,%d) of %d rows", rl, ru, rows), ErrOutOfRange)
	}

	return nil
}
