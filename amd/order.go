// SPDX-License-Identifier: MIT

package amd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/sparsecheck/csc"
)

// Order validates p and, if it is a square, well-formed CSC pattern, asks
// ord for a fill-reducing permutation.
//
// Inputs:
//   - ctx: checked once, after validation and before the engine runs; a nil
//     ctx is treated as context.Background().
//   - p: the n-by-n pattern handed to the engine unchanged.
//   - ord: the ordering engine; must not be nil.
//   - opts: WithLogger, WithStrictRange.
//
// Returns:
//   - Result with Perm set only on success. Stats.N and Stats.NNZ are always
//     filled; Status is Invalid whenever the engine was not called, and the
//     engine's own status otherwise.
//   - Errors, in check order: ErrNilOrderer, ErrNotSquare, ErrInvalidMatrix
//     (wrapping the csc violation), ctx.Err(), the engine's Status.Err(),
//     ErrBadPermutation.
//
// Complexity: O(n + nz) time and O(n) memory on top of the engine's own cost.
func Order(ctx context.Context, p csc.Pattern[int], ord Orderer, opts ...Option) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	o := gatherOptions(opts)
	res := Result{Status: Invalid, Stats: Stats{N: p.NCol, NNZ: p.NNZ()}}

	if ord == nil {
		return res, ErrNilOrderer
	}
	// AMD orders square matrices only; n_row == n_col == n.
	if p.NRow != p.NCol {
		return res, fmt.Errorf("%w: %d-by-%d", ErrNotSquare, p.NRow, p.NCol)
	}
	// The engine trusts its input; nothing malformed gets past this point.
	if err := p.Check(o.cscOptions()...); err != nil {
		return res, fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}
	// Cancellation is checked once, just before the engine runs.
	if err := ctx.Err(); err != nil {
		return res, err
	}

	o.logger.Debug("amd: ordering",
		slog.Int("n", p.NCol),
		slog.Int("nnz", p.NNZ()),
	)

	perm, info, status := ord.Order(ctx, p)
	res.Status = status
	res.Stats.Info = info
	// A failing status wins over whatever perm the engine returned.
	if err := status.Err(); err != nil {
		o.logger.Warn("amd: engine failed", slog.String("status", status.String()))
		return res, err
	}
	// Engine output is untrusted too: reject anything but a permutation of 0..n-1.
	if err := validPermutation(perm, p.NCol); err != nil {
		o.logger.Warn("amd: engine output rejected", slog.String("error", err.Error()))
		return res, err
	}

	res.Perm = perm
	o.logger.Debug("amd: ordered", slog.Int("n", p.NCol))

	return res, nil
}

// validPermutation reports whether perm holds each of 0..n-1 exactly once.
func validPermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrBadPermutation, len(perm), n)
	}
	seen := make([]bool, n)
	for k, v := range perm {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("%w: entry %d = %d", ErrBadPermutation, k, v)
		}
		seen[v] = true
	}

	return nil
}
