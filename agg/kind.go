// SPDX-License-Identifier: MIT

package agg

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Kind enumerates the aggregation operators a multi-aggregate can carry.
// The set is closed; the zero value is not a valid kind.
type Kind uint8

const (
	// Sum is the compensated sum of visited values.
	Sum Kind = iota + 1
	// SumSq is the compensated sum of squares of visited values.
	SumSq
	// Min is the minimum over visited values.
	Min
	// Max is the maximum over visited values.
	Max
)

// Canonical names as they appear in compiled plans.
const (
	nameSum   = "SUM"
	nameSumSq = "SUM_SQ"
	nameMin   = "MIN"
	nameMax   = "MAX"
)

// String returns the canonical upper-case name, or "Kind(n)" for invalid values.
func (k Kind) String() string {
	switch k {
	case Sum:
		return nameSum
	case SumSq:
		return nameSumSq
	case Min:
		return nameMin
	case Max:
		return nameMax
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the four supported kinds.
func (k Kind) Valid() bool {
	return k >= Sum && k <= Max
}

// SumLike reports whether k merges via compensated summation.
func (k Kind) SumLike() bool {
	return k == Sum || k == SumSq
}

// ParseKind maps a name (case-insensitive, surrounding spaces ignored) to a Kind.
// "SUMSQ" is accepted as an alias of "SUM_SQ".
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case nameSum:
		return Sum, nil
	case nameSumSq, "SUMSQ":
		return SumSq, nil
	case nameMin:
		return Min, nil
	case nameMax:
		return Max, nil
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnsupportedKind)
}

// ParseKinds parses a comma-separated list such as "sum,max".
// Empty elements are rejected.
func ParseKinds(list string) ([]Kind, error) {
	parts := strings.Split(list, ",")
	kinds := make([]Kind, 0, len(parts))
	for _, p := range parts {
		k, err := ParseKind(p)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}

	return kinds, nil
}

// Names renders kinds as their canonical names, in order.
func Names(kinds []Kind) []string {
	return lo.Map(kinds, func(k Kind, _ int) string { return k.String() })
}
