// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by all three block representations.
// This file intentionally contains ONLY small value types (format tag, cell
// triple); storage lives in dense.go, sparse.go and compressed.go.
package matrix

import "fmt"

// Format is the closed tag of a Block's physical representation.
// A Block is in exactly one format at any time.
type Format uint8

const (
	// FormatDense is contiguous row-major storage (possibly absent = all-zero).
	FormatDense Format = iota
	// FormatSparse is CSR storage holding non-zeros only (possibly absent = all-zero).
	FormatSparse
	// FormatCompressed is column-group encoded storage exposing only an IJV iterator.
	FormatCompressed
)

// String returns a short lower-case name of the format.
func (f Format) String() string {
	switch f {
	case FormatDense:
		return "dense"
	case FormatSparse:
		return "sparse"
	case FormatCompressed:
		return "compressed"
	}

	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ParseFormat maps "dense", "sparse" or "compressed" to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "dense":
		return FormatDense, nil
	case "sparse":
		return FormatSparse, nil
	case "compressed":
		return FormatCompressed, nil
	}

	return 0, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnsupported)
}

// IJV is one matrix cell: row I, column J and value V.
type IJV struct {
	I, J int
	V    float64
}
