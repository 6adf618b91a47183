// SPDX-License-Identifier: MIT

package csc

import (
	"context"
	"log/slog"
)

// Tracer receives optional diagnostics from the structure check.
// Implementations must not retain or modify the inputs being checked.
type Tracer interface {
	// Column is called once per visited column before it is checked.
	Column(j, p1, p2 int64)

	// Reject is called exactly once when the check fails.
	Reject(v Violation)
}

// RejectFunc adapts a plain function to a Tracer that only observes
// rejections.
type RejectFunc func(v Violation)

// Column implements Tracer.
func (RejectFunc) Column(_, _, _ int64) {}

// Reject implements Tracer.
func (f RejectFunc) Reject(v Violation) { f(v) }

type nopTracer struct{}

func (nopTracer) Column(_, _, _ int64) {}
func (nopTracer) Reject(Violation)     {}

// slogTracer logs column visits at Debug and rejections at Warn.
type slogTracer struct {
	logger *slog.Logger
}

// NewSlogTracer returns a Tracer writing structured records to logger.
// If logger is nil, slog.Default() is used.
func NewSlogTracer(logger *slog.Logger) Tracer {
	if logger == nil {
		logger = slog.Default()
	}

	return slogTracer{logger: logger}
}

func (t slogTracer) Column(j, p1, p2 int64) {
	ctx := context.Background()
	if !t.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	t.logger.LogAttrs(ctx, slog.LevelDebug, "csc: column",
		slog.Int64("col", j),
		slog.Int64("p1", p1),
		slog.Int64("p2", p2),
	)
}

func (t slogTracer) Reject(v Violation) {
	t.logger.LogAttrs(context.Background(), slog.LevelWarn, "csc: structure rejected",
		slog.String("rule", v.Rule.String()),
		slog.Int64("col", v.Col),
		slog.Int64("pos", v.Pos),
		slog.Int64("value", v.Row),
	)
}
