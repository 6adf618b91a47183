// SPDX-License-Identifier: MIT

// Package sparsecheck validates compressed-column sparse matrix structure
// before a fill-reducing ordering engine is allowed to trust it.
//
// What is in the box?
//
//	A small, allocation-free toolkit:
//		• csc: the structure check (Valid, Check), a Pattern view, gonum
//		  dense adapters and an optional slog diagnostic tracer
//		• amd: the guard around an external minimum-degree ordering engine,
//		  with the engine's OK / OutOfMemory / Invalid status codes
//
// Why?
//
//   - Ordering engines index straight into ColPtr and RowIdx; a corrupted
//     pattern means a crash or a silently wrong permutation.
//   - The check is a single O(n_col + nz) pass and never panics, so it is
//     cheap enough to run on every call.
//
// Layout:
//
//	csc/      — CSC invariants, Pattern, FromDense / ToDense, Tracer
//	amd/      — Orderer contract, Status codes, Order guard
//	examples/ — runnable programs
//
// Quick example:
//
//	ok := csc.Valid(3, 3, []int{0, 1, 2, 3}, []int{0, 1, 2}) // true
//
//	go get github.com/katalvlaran/sparsecheck
package sparsecheck
