// SPDX-License-Identifier: MIT
// Package: csc
//
// Purpose:
//  - Single source of truth for the CSC structure check used before ordering.
//  - Valid returns the two-valued verdict; Check returns the same verdict as
//    an error naming the first violated invariant.
//
// Determinism & Performance:
//  - One forward pass over ColPtr and RowIdx with early exit: O(n_col + nz).
//  - No allocation in Valid when called without options; no mutation of inputs.
//
// Note:
//  - Invariants are tested in a fixed order (dimensions → lengths → ColPtr[0]
//    → nz → per column: pointer order → row order → row range), so the
//    reported Violation is reproducible.

package csc

// Valid reports whether (nRow, nCol, colptr, rowidx) is a well-formed CSC
// pattern. It returns false, never panics, for any malformed input.
//
// Inputs: dimensions and the two index slices, read only.
// Returns: true iff every invariant holds.
// By default the first entry of each column is not range-checked; see the
// package documentation and WithStrictRange.
// Complexity: O(n_col + nz) time, O(1) space. Without options the call
// does not allocate.
func Valid[I Index](nRow, nCol I, colptr, rowidx []I, opts ...Option) bool {
	_, ok := scan(nRow, nCol, colptr, rowidx, resolveOptions(opts))

	return ok
}

// Check runs the same pass as Valid and returns nil or a *ViolationError
// wrapping the rule sentinel (and ErrInvalid).
//
// Inputs: as Valid.
// Returns: nil, or *ViolationError for the first violated invariant.
// Complexity: O(n_col + nz) time; allocates only the returned error.
func Check[I Index](nRow, nCol I, colptr, rowidx []I, opts ...Option) error {
	if v, ok := scan(nRow, nCol, colptr, rowidx, resolveOptions(opts)); !ok {
		return &ViolationError{Violation: v}
	}

	return nil
}

// scan is the pure check shared by Valid and Check.
//
// Implementation: invariants are tested in the fixed order documented at the
// top of this file and the first failure is returned. The tracer in o is the
// only side channel; o is passed by value so nothing escapes to the heap.
// Returns: (noViolation, true) on success, (violation, false) otherwise.
// Complexity: O(n_col + nz) time, O(1) space.
func scan[I Index](nRow, nCol I, colptr, rowidx []I, o Options) (Violation, bool) {
	// Dimensions first: negative sizes make every other check meaningless.
	if nRow < 0 || nCol < 0 {
		bad := nRow
		if bad >= 0 {
			bad = nCol
		}
		return reject(o, Violation{Rule: RuleDimensions, Col: -1, Pos: -1, Row: int64(bad)})
	}

	// ColPtr must hold n_col+1 pointers before anything is read.
	if int64(len(colptr)) <= int64(nCol) {
		return reject(o, Violation{Rule: RuleLength, Col: -1, Pos: -1, Row: int64(nCol) + 1})
	}
	n := int(nCol) // fits in int: bounded by len(colptr) above

	// Pointers start at zero and the total entry count is non-negative.
	nz := colptr[n]
	if colptr[0] != 0 {
		return reject(o, Violation{Rule: RuleColPtrStart, Col: 0, Pos: -1, Row: int64(colptr[0])})
	}
	if nz < 0 {
		return reject(o, Violation{Rule: RuleNNZ, Col: int64(n), Pos: -1, Row: int64(nz)})
	}
	// RowIdx must hold nz entries, so every p < nz below is addressable.
	if int64(nz) > int64(len(rowidx)) {
		return reject(o, Violation{Rule: RuleLength, Col: -1, Pos: -1, Row: int64(nz)})
	}

	// Columns in increasing order; p1 >= 0 holds by induction from ColPtr[0] == 0.
	for j := 0; j < n; j++ {
		p1, p2 := colptr[j], colptr[j+1]
		o.tracer.Column(int64(j), int64(p1), int64(p2))

		// p2 > nz means a later pointer must drop back to nz; reject here
		// so RowIdx is never read past nz.
		if p1 > p2 || p2 > nz {
			return reject(o, Violation{Rule: RuleColPtrOrder, Col: int64(j), Pos: -1, Row: int64(p2)})
		}
		if p1 == p2 {
			continue // empty column: nothing to check
		}

		// The first entry seeds ilast; it is range-checked only in strict mode.
		first, end := int(p1), int(p2)
		ilast := rowidx[first]
		if o.strictRange && (ilast < 0 || ilast >= nRow) {
			return reject(o, Violation{Rule: RuleRowRange, Col: int64(j), Pos: int64(first), Row: int64(ilast)})
		}

		for p := first + 1; p < end; p++ {
			i := rowidx[p]
			// Order before range, as one short-circuit: i <= ilast || i >= n_row.
			if i <= ilast {
				return reject(o, Violation{Rule: RuleRowOrder, Col: int64(j), Pos: int64(p), Row: int64(i)})
			}
			if i >= nRow {
				return reject(o, Violation{Rule: RuleRowRange, Col: int64(j), Pos: int64(p), Row: int64(i)})
			}
			ilast = i
		}
	}

	return noViolation, true
}

// reject reports v to the tracer and returns the failing verdict.
func reject(o Options, v Violation) (Violation, bool) {
	o.tracer.Reject(v)

	return v, false
}
