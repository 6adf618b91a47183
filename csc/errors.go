// SPDX-License-Identifier: MIT
// Package csc: sentinel error set.
// Every structural sentinel wraps ErrInvalid, so callers that only care about
// the verdict match errors.Is(err, ErrInvalid), while diagnostics can match
// the exact invariant.

package csc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalid is the single structural-invalidity taxonomy. All rule
	// sentinels below wrap it.
	ErrInvalid = errors.New("csc: invalid structure")

	// ErrNegativeDimension signals n_row < 0 or n_col < 0.
	ErrNegativeDimension = fmt.Errorf("%w: negative dimension", ErrInvalid)

	// ErrLength signals index slices shorter than the dimensions require.
	ErrLength = fmt.Errorf("%w: slice too short for dimensions", ErrInvalid)

	// ErrColPtrStart signals ColPtr[0] != 0.
	ErrColPtrStart = fmt.Errorf("%w: column pointers must start at 0", ErrInvalid)

	// ErrNegativeNNZ signals ColPtr[n_col] < 0.
	ErrNegativeNNZ = fmt.Errorf("%w: negative entry count", ErrInvalid)

	// ErrColPtrOrder signals ColPtr[j] > ColPtr[j+1] for some column.
	ErrColPtrOrder = fmt.Errorf("%w: column pointers decrease", ErrInvalid)

	// ErrRowOrder signals a duplicate or out-of-order row index in a column.
	ErrRowOrder = fmt.Errorf("%w: row indices not strictly increasing", ErrInvalid)

	// ErrRowRange signals a row index outside [0, n_row).
	ErrRowRange = fmt.Errorf("%w: row index out of range", ErrInvalid)
)

var (
	// ErrOutOfRange is returned by Pattern.Column for a column outside [0, n_col).
	ErrOutOfRange = errors.New("csc: column out of range")

	// ErrEmptyDense is returned by ToDense when a dimension is zero; gonum
	// cannot represent an empty dense matrix.
	ErrEmptyDense = errors.New("csc: zero-sized dense matrix")

	// ErrDenseTooLarge is returned by ToDense when NRow*NCol exceeds
	// MaxDenseElements.
	ErrDenseTooLarge = errors.New("csc: dense matrix too large")
)

// ViolationError reports the first invariant a pattern broke.
// It unwraps to the rule sentinel (and through it to ErrInvalid).
type ViolationError struct {
	Violation Violation
}

// Error implements error.
func (e *ViolationError) Error() string {
	return "csc: " + e.Violation.String()
}

// Unwrap exposes the rule sentinel to errors.Is.
func (e *ViolationError) Unwrap() error {
	return e.Violation.Rule.sentinel()
}
