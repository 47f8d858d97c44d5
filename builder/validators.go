// SPDX-License-Identifier: MIT
// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns an error wrapping a builder sentinel, prefixed with
// the method name, when its precondition is violated.
package builder

import "fmt"

// validateDims ensures rows and cols are both ≥ MinDim.
// Complexity: O(1) time and space.
func validateDims(method string, rows, cols int) error {
	if rows < MinDim || cols < MinDim {
		return fmt.Errorf("%s: dims %dx%d must be ≥ %d: %w", method, rows, cols, MinDim, ErrBadSize)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Used by RandomSparse.
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}
