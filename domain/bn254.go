// SPDX-License-Identifier: MIT

package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// BN254 is the scalar field F_r of the BN254 curve, backed by gnark-crypto's
// Montgomery-form fr.Element. Elements are fixed-size arrays, so they are
// passed and stored by value.
type BN254 struct{}

var _ FieldCodec[fr.Element] = BN254{}

// Zero returns 0.
func (BN254) Zero() fr.Element { return fr.Element{} }

// One returns 1.
func (BN254) One() fr.Element { return fr.One() }

// Add returns a + b.
func (BN254) Add(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Add(&a, &b)

	return z
}

// Sub returns a - b.
func (BN254) Sub(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Sub(&a, &b)

	return z
}

// Mul returns a * b.
func (BN254) Mul(a, b fr.Element) fr.Element {
	var z fr.Element
	z.Mul(&a, &b)

	return z
}

// Quo returns a / b. It panics when b is zero.
func (BN254) Quo(a, b fr.Element) fr.Element {
	if b.IsZero() {
		panic(panicDivByZero)
	}
	var z fr.Element
	z.Div(&a, &b)

	return z
}

// IsOne reports whether a == 1.
func (BN254) IsOne(a fr.Element) bool { return a.IsOne() }

// Equal reports a == b.
func (BN254) Equal(a, b fr.Element) bool { return a.Equal(&b) }

// Parse accepts (possibly negative) integers and fractions "a/b".
func (f BN254) Parse(s string) (fr.Element, error) {
	s = strings.TrimSpace(s)
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := f.Parse(num)
		if err != nil {
			return fr.Element{}, err
		}
		d, err := f.Parse(den)
		if err != nil {
			return fr.Element{}, err
		}
		if d.IsZero() {
			return fr.Element{}, fmt.Errorf("BN254 %q: zero denominator: %w", s, ErrParse)
		}

		return f.Quo(n, d), nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fr.Element{}, fmt.Errorf("BN254 %q: %w", s, ErrParse)
	}
	var z fr.Element
	z.SetBigInt(v)

	return z, nil
}

// Format renders a in decimal; residues close to the modulus print as small
// negatives, e.g. "-3".
func (BN254) Format(a fr.Element) string { return a.String() }

// String names the field.
func (BN254) String() string { return "BN254/Fr" }
