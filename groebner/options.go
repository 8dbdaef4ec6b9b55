// SPDX-License-Identifier: MIT

// Package groebner: functional configuration of the standard-basis engine.
//
// Design goals:
//   - Deterministic behavior: no global state, no randomness; pair selection
//     is fully ordered by (sugar, lcm, index).
//   - No dead switches: every option changes behavior and is covered by tests.
//   - Panic only on nonsensical option values (programmer error).
package groebner

import "go.uber.org/zap"

// Reducer selects the normal-form strategy used inside the main loop.
type Reducer int

const (
	// ReducerAuto picks Buchberger for global orders and Mora otherwise.
	ReducerAuto Reducer = iota

	// ReducerMora uses Mora's weak normal form (any order).
	ReducerMora

	// ReducerBuchberger uses the first-divisor normal form (global orders only).
	ReducerBuchberger

	// ReducerReduced uses the fully reduced normal form (global orders only,
	// no extended mode).
	ReducerReduced
)

// String names the reducer.
func (r Reducer) String() string {
	switch r {
	case ReducerAuto:
		return "auto"
	case ReducerMora:
		return "mora"
	case ReducerBuchberger:
		return "buchberger"
	case ReducerReduced:
		return "reduced"
	default:
		return "unknown"
	}
}

// Defaults (single source of truth).
const (
	// DefaultExtended disables transition-coefficient tracking.
	DefaultExtended = false

	// DefaultReducer selects the strategy from the order.
	DefaultReducer = ReducerAuto

	// DefaultMonic normalizes returned basis elements to leading coefficient 1.
	DefaultMonic = true

	// DefaultMaxPairs = 0 means no limit on processed critical pairs.
	DefaultMaxPairs = 0
)

const (
	panicMaxPairsNegative = "groebner: WithMaxPairs: limit must be >= 0"
	panicReducerUnknown   = "groebner: WithReducer: unknown reducer"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	extended bool
	reducer  Reducer
	monic    bool
	maxPairs int
	logger   *zap.Logger
}

// WithExtended requests transition coefficients: every basis element is
// returned together with its expression in the original generators.
func WithExtended() Option {
	return func(o *Options) { o.extended = true }
}

// WithReducer selects the normal-form strategy.
func WithReducer(r Reducer) Option {
	if r < ReducerAuto || r > ReducerReduced {
		panic(panicReducerUnknown)
	}

	return func(o *Options) { o.reducer = r }
}

// WithMonic toggles the final division by leading coefficients. With
// monic=false the minimal basis is returned exactly as the loop produced it.
func WithMonic(monic bool) Option {
	return func(o *Options) { o.monic = monic }
}

// WithMaxPairs bounds the number of critical pairs processed; 0 disables the
// bound. It exists for Mora runs on configurations that may not terminate:
// reaching the bound fails with ErrPairLimit instead of looping forever.
func WithMaxPairs(n int) Option {
	if n < 0 {
		panic(panicMaxPairsNegative)
	}

	return func(o *Options) { o.maxPairs = n }
}

// WithLogger routes Debug-level progress events to l. A nil logger is
// replaced by zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user setters over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		extended: DefaultExtended,
		reducer:  DefaultReducer,
		monic:    DefaultMonic,
		maxPairs: DefaultMaxPairs,
	}
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
