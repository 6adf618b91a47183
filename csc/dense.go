// SPDX-License-Identifier: MIT

package csc

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromDense builds the CSC pattern of m: every entry that is not exactly
// zero (NaN included) is stored. Row indices come out sorted, so the result
// always passes Check, even under WithStrictRange.
// Complexity: O(r*c) time, O(c + nz) memory.
func FromDense(m mat.Matrix) Pattern[int] {
	r, c := m.Dims()
	colptr := make([]int, c+1)
	rowidx := make([]int, 0, c)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if m.At(i, j) != 0 {
				rowidx = append(rowidx, i)
			}
		}
		colptr[j+1] = len(rowidx)
	}

	return Pattern[int]{NRow: r, NCol: c, ColPtr: colptr, RowIdx: rowidx}
}

// MaxDenseElements bounds NRow*NCol for ToDense (2 GiB of float64).
const MaxDenseElements = 1 << 28

// ToDense renders the pattern as a dense 0/1 matrix with a 1 at every stored
// position. The pattern is checked with WithStrictRange first, so a
// malformed pattern yields an ErrInvalid-matching error instead of a panic.
// Zero-sized patterns return ErrEmptyDense; patterns with more than
// MaxDenseElements cells return ErrDenseTooLarge.
func (p Pattern[I]) ToDense() (*mat.Dense, error) {
	if err := p.Check(WithStrictRange()); err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	if p.NRow == 0 || p.NCol == 0 {
		return nil, ErrEmptyDense
	}
	// Division keeps the bound overflow-free for any index width.
	if int64(p.NRow) > MaxDenseElements/int64(p.NCol) {
		return nil, fmt.Errorf("ToDense: %w: %d-by-%d", ErrDenseTooLarge, int64(p.NRow), int64(p.NCol))
	}

	d := mat.NewDense(int(p.NRow), int(p.NCol), nil)
	for j := 0; j < int(p.NCol); j++ {
		rows, _ := p.Column(j) // pointers already validated
		for _, i := range rows {
			d.Set(int(i), j, 1)
		}
	}

	return d, nil
}
