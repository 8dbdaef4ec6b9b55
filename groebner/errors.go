// SPDX-License-Identifier: MIT
// Package groebner: sentinel error set.
// Entry points validate their input and return these sentinels, wrapped with
// an operation tag via groebnerErrorf; tests match them with errors.Is.
// Panics are reserved for programmer errors deeper in the engine (see sdm).

package groebner

import (
	"errors"
	"fmt"
)

var (
	// ErrNilModule is returned when no sdm.Module (order + field) is supplied.
	ErrNilModule = errors.New("groebner: nil module")

	// ErrNilNormalForm is returned when a custom algorithm has no reducer.
	ErrNilNormalForm = errors.New("groebner: nil normal form")

	// ErrLevelMismatch indicates that exponent vectors of different lengths
	// were mixed in one computation.
	ErrLevelMismatch = errors.New("groebner: exponent vectors of different length")

	// ErrNegativeExponent indicates a negative exponent or generator index.
	ErrNegativeExponent = errors.New("groebner: negative exponent or generator index")

	// ErrUnsorted indicates an input element that is not strictly descending
	// under the module order or carries a zero coefficient; build inputs
	// with sdm.Module.FromTerms.
	ErrUnsorted = errors.New("groebner: element not normalized under the order")

	// ErrPhantomUnsupported is returned when extended mode is requested with
	// the reduced normal form, which cannot track coefficients.
	ErrPhantomUnsupported = errors.New("groebner: reducer cannot track coefficients")

	// ErrLocalOrder is returned when a Buchberger-type reducer is requested
	// for an order that is not global; such reductions need not terminate.
	ErrLocalOrder = errors.New("groebner: reducer requires a global order")

	// ErrPairLimit is returned when the configured critical-pair budget is
	// exhausted before the pair set empties. The partial basis is discarded.
	ErrPairLimit = errors.New("groebner: critical pair limit reached")
)

// Operation tags for error wrapping.
const (
	opCompute = "Compute"
	opNew     = "NewAlgorithm"
	opRun     = "Run"
)

// groebnerErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func groebnerErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
