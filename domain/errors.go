// SPDX-License-Identifier: MIT

package domain

import "errors"

var (
	// ErrModulus is returned when a prime field is requested with a modulus
	// smaller than 2.
	ErrModulus = errors.New("domain: modulus must be at least 2")

	// ErrParse indicates that a textual coefficient could not be decoded.
	ErrParse = errors.New("domain: cannot parse coefficient")
)

// panicDivByZero is the stable message for Quo with a zero divisor.
// Division by zero is a programmer error inside the engine: the data model
// never stores a zero leading coefficient.
const panicDivByZero = "domain: division by zero"
