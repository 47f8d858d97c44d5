// SPDX-License-Identifier: MIT
// Package agg: sentinel error set.
// Callers match with errors.Is; context is added with fmt.Errorf("...: %w").

package agg

import "errors"

// ErrUnsupportedKind is returned for an aggregation kind outside
// SUM, SUM_SQ, MIN, MAX. It is a construction-time error.
var ErrUnsupportedKind = errors.New("agg: unsupported aggregation kind")
