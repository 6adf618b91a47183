// SPDX-License-Identifier: MIT

// Package amd guards the boundary between a caller and an external
// approximate-minimum-degree ordering engine.
//
// The engine itself is not implemented here. It is an opaque Orderer that
// consumes a square CSC pattern which has already passed csc.Check and
// returns a fill-reducing permutation of length n, a statistics vector and
// a small integer Status.
//
// Order enforces that contract on both sides:
//
//   - Before: the orderer is non-nil, the pattern is square (a non-square
//     input yields ErrNotSquare) and structurally valid (Status Invalid,
//     ErrInvalidMatrix plus the csc violation), and ctx is not done.
//   - After: a non-OK Status is surfaced as ErrOutOfMemory or
//     ErrInvalidMatrix; an OK result must carry a true permutation of
//     0..n-1, otherwise ErrBadPermutation.
//
// Status codes mirror the engine's integers: OK = 0, OutOfMemory = -1,
// Invalid = -2.
//
// Usage
//
//	res, err := amd.Order(ctx, csc.FromDense(a), engine, amd.WithLogger(logger))
//	if errors.Is(err, amd.ErrInvalidMatrix) {
//		// input matrix is corrupted
//	}
package amd
