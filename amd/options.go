// SPDX-License-Identifier: MIT

package amd

import (
	"log/slog"

	"github.com/katalvlaran/sparsecheck/csc"
)

// Option configures Order via functional arguments.
type Option func(*Options)

// Options holds the resolved configuration for Order.
type Options struct {
	logger      *slog.Logger
	strictRange bool
}

// DefaultOptions returns a silent logger and the AMD acceptance rule.
func DefaultOptions() Options {
	return Options{
		logger:      slog.New(slog.DiscardHandler),
		strictRange: csc.DefaultStrictRange,
	}
}

// WithLogger logs the guard's decisions and forwards a slog tracer to the
// structure check. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStrictRange validates with csc.WithStrictRange, rejecting
// out-of-range first entries the engine would otherwise accept.
func WithStrictRange() Option {
	return func(o *Options) {
		o.strictRange = true
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// cscOptions translates the guard options into validator options.
func (o Options) cscOptions() []csc.Option {
	out := []csc.Option{csc.WithTracer(csc.NewSlogTracer(o.logger))}
	if o.strictRange {
		out = append(out, csc.WithStrictRange())
	}

	return out
}
