// SPDX-License-Identifier: MIT

package kernels

import "errors"

var (
	// ErrSlotCount indicates an accumulator whose length differs from the
	// kernel's slot list.
	ErrSlotCount = errors.New("kernels: accumulator length mismatch")

	// ErrMissingScalar indicates a kernel that reads scalars[i] was given fewer scalars.
	ErrMissingScalar = errors.New("kernels: missing scalar")

	// ErrMissingSideInput indicates a kernel that reads b[i] was given fewer side inputs.
	ErrMissingSideInput = errors.New("kernels: missing side input")
)
