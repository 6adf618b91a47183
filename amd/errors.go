// SPDX-License-Identifier: MIT

package amd

import "errors"

// Sentinel errors for the ordering guard.
var (
	// ErrNilOrderer is returned when Order is called without an engine.
	ErrNilOrderer = errors.New("amd: orderer is nil")

	// ErrNotSquare is returned when the pattern has NRow != NCol.
	ErrNotSquare = errors.New("amd: matrix must be square")

	// ErrInvalidMatrix is returned when the pattern fails the CSC structure
	// check or the engine reports Status Invalid.
	ErrInvalidMatrix = errors.New("amd: input matrix is corrupted")

	// ErrOutOfMemory is returned when the engine reports Status OutOfMemory.
	ErrOutOfMemory = errors.New("amd: out of memory")

	// ErrBadPermutation is returned when the engine reports OK but its
	// output is not a permutation of 0..n-1.
	ErrBadPermutation = errors.New("amd: engine returned an invalid permutation")

	// ErrUnknownStatus is returned for a status code outside OK, OutOfMemory
	// and Invalid.
	ErrUnknownStatus = errors.New("amd: unknown status")
)
