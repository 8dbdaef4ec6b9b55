// SPDX-License-Identifier: MIT
// Package fglm: sentinel error set.
// Convert, Staircase and Dimension return these sentinels wrapped with an
// operation tag; Dense accessors wrap ErrOutOfRange with their coordinates.

package fglm

import (
	"errors"
	"fmt"
)

var (
	// ErrNilModule is returned when no sdm.Module is supplied.
	ErrNilModule = errors.New("fglm: nil module")

	// ErrNotGlobal is returned when the source or the target order is local;
	// the quotient has no finite monomial basis to enumerate there.
	ErrNotGlobal = errors.New("fglm: order is not global")

	// ErrEmptyBasis is returned for a basis without nonzero elements, which
	// cannot describe a quotient of finite dimension.
	ErrEmptyBasis = errors.New("fglm: empty basis")

	// ErrNotZeroDimensional is returned when some generator component lacks a
	// pure power of some variable among the leading monomials, i.e. the
	// quotient is infinite dimensional.
	ErrNotZeroDimensional = errors.New("fglm: quotient is not finite dimensional")

	// ErrDimensionLimit is returned when the quotient dimension exceeds the
	// bound set with WithMaxDimension.
	ErrDimensionLimit = errors.New("fglm: quotient dimension limit exceeded")

	// ErrBadShape is returned by NewDense for negative dimensions.
	ErrBadShape = errors.New("fglm: invalid matrix shape")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("fglm: index out of range")
)

const (
	opConvert   = "Convert"
	opStaircase = "Staircase"
)

func fglmErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
