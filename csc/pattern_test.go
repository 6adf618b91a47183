// SPDX-License-Identifier: MIT
package csc_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sparsecheck/csc"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestPatternAccessors covers NNZ and Column on valid and short patterns.
func TestPatternAccessors(t *testing.T) {
	t.Parallel()

	p := csc.NewPattern(3, 3, []int{0, 2, 2, 3}, []int{0, 2, 1})
	require.True(t, p.Valid())
	require.NoError(t, p.Check())
	require.Equal(t, 3, p.NNZ())

	col, err := p.Column(0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, col)

	col, err = p.Column(1)
	require.NoError(t, err)
	require.Empty(t, col)

	_, err = p.Column(3)
	require.ErrorIs(t, err, csc.ErrOutOfRange)
	_, err = p.Column(-1)
	require.ErrorIs(t, err, csc.ErrOutOfRange)

	short := csc.NewPattern(3, 3, []int{0, 1}, []int{0})
	require.Zero(t, short.NNZ())
	_, err = short.Column(2)
	require.ErrorIs(t, err, csc.ErrOutOfRange)

	require.Zero(t, csc.NewPattern(3, -1, []int{0}, nil).NNZ())
}

// TestPatternOptionsForwarded ensures options reach the validator.
func TestPatternOptionsForwarded(t *testing.T) {
	t.Parallel()

	p := csc.NewPattern[int32](3, 1, []int32{0, 1}, []int32{7})
	require.True(t, p.Valid())
	require.False(t, p.Valid(csc.WithStrictRange()))
	require.ErrorIs(t, p.Check(csc.WithStrictRange()), csc.ErrRowRange)
}

// TestFromDense builds patterns from gonum matrices and validates them.
func TestFromDense(t *testing.T) {
	t.Parallel()

	m := mat.NewDense(3, 4, []float64{
		1, 0, 0, 2,
		0, 0, 3, 0,
		4, 0, math.NaN(), 5,
	})
	p := csc.FromDense(m)
	require.Equal(t, 3, p.NRow)
	require.Equal(t, 4, p.NCol)
	require.Equal(t, []int{0, 2, 2, 4, 6}, p.ColPtr)
	require.Equal(t, []int{0, 2, 1, 2, 0, 2}, p.RowIdx)
	require.True(t, p.Valid(csc.WithStrictRange()))

	zero := csc.FromDense(mat.NewDense(2, 2, nil))
	require.Equal(t, []int{0, 0, 0}, zero.ColPtr)
	require.Empty(t, zero.RowIdx)
	require.True(t, zero.Valid())
}

// TestFromDenseSymmetric accepts any mat.Matrix, here a SymDense.
func TestFromDenseSymmetric(t *testing.T) {
	t.Parallel()

	s := mat.NewSymDense(3, []float64{
		2, 1, 0,
		1, 2, 1,
		0, 1, 2,
	})
	p := csc.FromDense(s)
	require.Equal(t, []int{0, 2, 5, 7}, p.ColPtr)
	require.Equal(t, []int{0, 1, 0, 1, 2, 1, 2}, p.RowIdx)
	require.NoError(t, p.Check())
}

// TestToDenseRoundTrip checks ToDense(FromDense(m)) == spones(m).
func TestToDenseRoundTrip(t *testing.T) {
	t.Parallel()

	m := mat.NewDense(2, 3, []float64{
		0, -7, 0,
		3, 0.5, 0,
	})
	d, err := csc.FromDense(m).ToDense()
	require.NoError(t, err)

	want := mat.NewDense(2, 3, []float64{
		0, 1, 0,
		1, 1, 0,
	})
	require.True(t, mat.Equal(want, d))
}

// TestToDenseRejectsInvalid never panics on bad patterns, including the
// first-entry gap that default Check lets through.
func TestToDenseRejectsInvalid(t *testing.T) {
	t.Parallel()

	gap := csc.NewPattern(3, 1, []int{0, 1}, []int{99})
	require.True(t, gap.Valid())

	var (
		d   *mat.Dense
		err error
	)
	require.NotPanics(t, func() { d, err = gap.ToDense() })
	require.Nil(t, d)
	require.ErrorIs(t, err, csc.ErrRowRange)
	require.ErrorIs(t, err, csc.ErrInvalid)

	_, err = csc.NewPattern(3, 2, []int{1, 2, 3}, []int{0, 1, 2}).ToDense()
	require.ErrorIs(t, err, csc.ErrColPtrStart)

	_, err = csc.NewPattern(0, 2, []int{0, 0, 0}, nil).ToDense()
	require.ErrorIs(t, err, csc.ErrEmptyDense)
}

// TestToDenseRejectsHugePatterns keeps oversized but valid patterns away
// from the gonum allocator.
func TestToDenseRejectsHugePatterns(t *testing.T) {
	t.Parallel()

	tall := csc.NewPattern(1<<40, 1, []int{0, 0}, nil)
	require.True(t, tall.Valid(csc.WithStrictRange()))

	var (
		d   *mat.Dense
		err error
	)
	require.NotPanics(t, func() { d, err = tall.ToDense() })
	require.Nil(t, d)
	require.ErrorIs(t, err, csc.ErrDenseTooLarge)

	_, err = csc.NewPattern[int64](1<<20, 1<<9, make([]int64, 1<<9+1), nil).ToDense()
	require.ErrorIs(t, err, csc.ErrDenseTooLarge)

	atLimit, err := csc.NewPattern[int32](1<<14, 1<<4, make([]int32, 1<<4+1), nil).ToDense()
	require.NoError(t, err)
	r, c := atLimit.Dims()
	require.Equal(t, 1<<14, r)
	require.Equal(t, 1<<4, c)
}
