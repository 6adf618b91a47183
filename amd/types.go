// SPDX-License-Identifier: MIT

// Package amd: status codes and the engine contract.
package amd

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sparsecheck/csc"
)

// Status is the engine's integer result code.
type Status int

const (
	// OK means the ordering succeeded.
	OK Status = 0
	// OutOfMemory means the engine could not allocate its workspace.
	OutOfMemory Status = -1
	// Invalid means the engine rejected the input structure.
	Invalid Status = -2
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case OutOfMemory:
		return "out-of-memory"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Err maps the status to its sentinel; OK maps to nil.
func (s Status) Err() error {
	switch s {
	case OK:
		return nil
	case OutOfMemory:
		return ErrOutOfMemory
	case Invalid:
		return ErrInvalidMatrix
	default:
		return fmt.Errorf("%w: %d", ErrUnknownStatus, int(s))
	}
}

// Orderer is an external ordering engine. Order receives a square pattern
// that already passed csc.Check and must not modify it. It returns a
// permutation of 0..n-1, an opaque statistics vector and a Status.
type Orderer interface {
	Order(ctx context.Context, p csc.Pattern[int]) (perm []int, info []float64, status Status)
}

// OrdererFunc adapts a function to the Orderer interface.
type OrdererFunc func(ctx context.Context, p csc.Pattern[int]) ([]int, []float64, Status)

// Order implements Orderer.
func (f OrdererFunc) Order(ctx context.Context, p csc.Pattern[int]) ([]int, []float64, Status) {
	return f(ctx, p)
}

// Stats summarizes one Order call.
type Stats struct {
	N    int       // matrix order
	NNZ  int       // stored entries in the input pattern
	Info []float64 // engine statistics vector, passed through unchanged
}

// Result holds the outcome of Order. Perm is nil unless Status is OK and
// the permutation checked out.
type Result struct {
	Perm   []int
	Stats  Stats
	Status Status
}
