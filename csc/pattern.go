// SPDX-License-Identifier: MIT

package csc

// Pattern is a read-only view of a CSC sparsity pattern. It stores the
// slices by reference; the caller keeps ownership and must not mutate them
// while a check is running.
type Pattern[I Index] struct {
	NRow   I   // number of rows
	NCol   I   // number of columns
	ColPtr []I // column pointers, len NCol+1
	RowIdx []I // row indices, len ColPtr[NCol]
}

// NewPattern wraps the four CSC inputs without copying or validating them.
func NewPattern[I Index](nRow, nCol I, colptr, rowidx []I) Pattern[I] {
	return Pattern[I]{NRow: nRow, NCol: nCol, ColPtr: colptr, RowIdx: rowidx}
}

// Valid reports whether the pattern is well-formed. See Valid.
func (p Pattern[I]) Valid(opts ...Option) bool {
	return Valid(p.NRow, p.NCol, p.ColPtr, p.RowIdx, opts...)
}

// Check returns nil or the first violated invariant. See Check.
func (p Pattern[I]) Check(opts ...Option) error {
	return Check(p.NRow, p.NCol, p.ColPtr, p.RowIdx, opts...)
}

// NNZ returns ColPtr[NCol], or 0 when NCol is negative or ColPtr is too
// short to hold it.
func (p Pattern[I]) NNZ() I {
	if p.NCol < 0 || int64(len(p.ColPtr)) <= int64(p.NCol) {
		return 0
	}

	return p.ColPtr[int(p.NCol)]
}

// Column returns the row indices stored for column j as a sub-slice of
// RowIdx (no copy). It returns ErrOutOfRange when j is outside [0, NCol)
// or the pointers for j do not address RowIdx.
func (p Pattern[I]) Column(j int) ([]I, error) {
	if j < 0 || int64(j) >= int64(p.NCol) || j+1 >= len(p.ColPtr) {
		return nil, ErrOutOfRange
	}
	p1, p2 := p.ColPtr[j], p.ColPtr[j+1]
	if p1 < 0 || p1 > p2 || int64(p2) > int64(len(p.RowIdx)) {
		return nil, ErrOutOfRange
	}

	return p.RowIdx[int(p1):int(p2)], nil
}
