// SPDX-License-Identifier: MIT

package agg

import "math"

// Kahan is a compensated summation state: a running Sum plus the Correction
// term carrying the low-order bits lost by the previous addition.
//
// The zero value is an empty sum. Kahan is not safe for concurrent use;
// each task folds into its own instance.
type Kahan struct {
	Sum        float64
	Correction float64
}

// NewKahan returns a state seeded with sum and a zero correction.
func NewKahan(sum float64) Kahan {
	return Kahan{Sum: sum}
}

// Add folds x into the running sum.
// Implementation:
//   - Stage 1: if the running sum or x is infinite, the result is that
//     infinity (or NaN for +Inf + -Inf) with zero correction; computing a
//     correction against an infinity would otherwise yield NaN.
//   - Stage 2: corr = x + c; s' = s + corr; c' = corr - (s' - s).
//
// Complexity: O(1).
func (k *Kahan) Add(x float64) {
	sumInf, xInf := math.IsInf(k.Sum, 0), math.IsInf(x, 0)
	if sumInf || xInf {
		switch {
		case sumInf && xInf:
			k.Sum += x // +Inf + -Inf = NaN, equal signs keep the infinity
		case xInf:
			k.Sum = x
		}
		k.Correction = 0
		return
	}

	corr := x + k.Correction
	sum := k.Sum + corr
	k.Correction = corr - (sum - k.Sum)
	k.Sum = sum
}

// AddSq folds x*x into the running sum.
func (k *Kahan) AddSq(x float64) {
	k.Add(x * x)
}

// Reset clears both terms.
func (k *Kahan) Reset() {
	k.Sum, k.Correction = 0, 0
}
