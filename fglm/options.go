// SPDX-License-Identifier: MIT

package fglm

import "go.uber.org/zap"

// DefaultMaxDimension = 0 means the quotient may be arbitrarily large.
const DefaultMaxDimension = 0

const panicMaxDimensionNegative = "fglm: WithMaxDimension: limit must be >= 0"

// Option mutates Options.
type Option func(*Options)

// Options is the effective configuration of one conversion.
type Options struct {
	maxDimension int
	logger       *zap.Logger
}

// WithMaxDimension bounds the dimension of the quotient space; the
// representing matrices are dense, so memory grows with its square.
// Exceeding the bound fails with ErrDimensionLimit. 0 disables it.
func WithMaxDimension(n int) Option {
	if n < 0 {
		panic(panicMaxDimensionNegative)
	}

	return func(o *Options) { o.maxDimension = n }
}

// WithLogger routes Debug-level progress events to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.logger = l }
}

func gatherOptions(user ...Option) Options {
	o := Options{maxDimension: DefaultMaxDimension}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return o
}
