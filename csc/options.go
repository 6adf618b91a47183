// SPDX-License-Identifier: MIT

// Package csc: functional configuration for the structure check.
//
// Defaults reproduce the AMD acceptance rule exactly (first-entry range gap
// included) and trace nothing. Options never change the order in which
// invariants are checked.
package csc

// DefaultStrictRange leaves the first entry of each column unchecked
// against n_row, matching the ordering engine.
const DefaultStrictRange = false

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; use the
// WithX constructors.
type Options struct {
	tracer      Tracer
	strictRange bool
}

// DefaultOptions returns the zero-surprise configuration:
//   - no tracing (a no-op Tracer)
//   - AMD-compatible range checking (DefaultStrictRange)
func DefaultOptions() Options {
	return Options{
		tracer:      nopTracer{},
		strictRange: DefaultStrictRange,
	}
}

// WithTracer installs a diagnostic sink. A nil Tracer is ignored.
func WithTracer(t Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.tracer = t
		}
	}
}

// WithStrictRange range-checks every row index, including the first entry
// of each column, against [0, n_row). This is a deliberate deviation from
// the AMD acceptance rule.
func WithStrictRange() Option {
	return func(o *Options) {
		o.strictRange = true
	}
}

// defaultOptions is shared by every call made without options, so the
// hot path never builds an Options value through a closure.
var defaultOptions = DefaultOptions()

// resolveOptions returns defaultOptions when opts is empty and the gathered
// configuration otherwise.
func resolveOptions(opts []Option) Options {
	if len(opts) == 0 {
		return defaultOptions
	}

	return gatherOptions(opts)
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
