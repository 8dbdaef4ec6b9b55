// SPDX-License-Identifier: MIT

package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// Rationals is the field QQ on *big.Rat.
//
// Every operation allocates a fresh *big.Rat, so values handed out by
// Rationals may be shared freely between elements. A nil *big.Rat is read as
// zero.
type Rationals struct{}

var _ FieldCodec[*big.Rat] = Rationals{}

// Zero returns 0.
func (Rationals) Zero() *big.Rat { return new(big.Rat) }

// One returns 1.
func (Rationals) One() *big.Rat { return big.NewRat(1, 1) }

// Add returns a + b.
func (Rationals) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(ratOrZero(a), ratOrZero(b)) }

// Sub returns a - b.
func (Rationals) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(ratOrZero(a), ratOrZero(b)) }

// Mul returns a * b.
func (Rationals) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(ratOrZero(a), ratOrZero(b)) }

// Quo returns a / b. It panics when b is zero.
func (Rationals) Quo(a, b *big.Rat) *big.Rat {
	b = ratOrZero(b)
	if b.Sign() == 0 {
		panic(panicDivByZero)
	}

	return new(big.Rat).Quo(ratOrZero(a), b)
}

// IsOne reports whether a == 1.
func (Rationals) IsOne(a *big.Rat) bool {
	return a != nil && a.IsInt() && a.Num().IsInt64() && a.Num().Int64() == 1
}

// Equal reports a == b.
func (Rationals) Equal(a, b *big.Rat) bool { return ratOrZero(a).Cmp(ratOrZero(b)) == 0 }

// Parse accepts integers ("-3"), fractions ("2/7") and decimals ("0.25").
func (Rationals) Parse(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return nil, fmt.Errorf("QQ %q: %w", s, ErrParse)
	}

	return r, nil
}

// Format renders integers without a denominator and other values as "p/q".
func (Rationals) Format(a *big.Rat) string {
	a = ratOrZero(a)
	if a.IsInt() {
		return a.Num().String()
	}

	return a.String()
}

// String names the field.
func (Rationals) String() string { return "QQ" }

// ratOrZero maps nil to a fresh zero so callers never dereference nil.
func ratOrZero(a *big.Rat) *big.Rat {
	if a == nil {
		return new(big.Rat)
	}

	return a
}
