// SPDX-License-Identifier: MIT

package domain

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// PrimeField is GF(p) for a prime modulus p < 2^256.
//
// Elements are uint256.Int values kept fully reduced into [0, p), so value
// equality is plain array equality. Primality of p is NOT verified; for a
// composite modulus Quo returns garbage for zero divisors.
type PrimeField struct {
	p      uint256.Int // modulus
	pMinus uint256.Int // p - 2, Fermat exponent for inversion
}

var _ FieldCodec[uint256.Int] = (*PrimeField)(nil)

// NewPrimeField returns GF(p). It fails with ErrModulus when p < 2.
func NewPrimeField(p *uint256.Int) (*PrimeField, error) {
	if p == nil || p.LtUint64(2) {
		return nil, ErrModulus
	}
	f := &PrimeField{p: *p}
	if p.LtUint64(3) {
		// GF(2): a^(p-2) = a^0 = 1 for the single unit.
		f.pMinus.SetUint64(0)
	} else {
		f.pMinus.SubUint64(p, 2)
	}

	return f, nil
}

// Modulus returns a copy of p.
func (f *PrimeField) Modulus() *uint256.Int { return f.p.Clone() }

// Elem reduces v modulo p.
func (f *PrimeField) Elem(v uint64) uint256.Int {
	var z uint256.Int
	z.SetUint64(v)
	z.Mod(&z, &f.p)

	return z
}

// Zero returns 0.
func (f *PrimeField) Zero() uint256.Int { return uint256.Int{} }

// One returns 1.
func (f *PrimeField) One() uint256.Int { return f.Elem(1) }

// Add returns a + b mod p.
func (f *PrimeField) Add(a, b uint256.Int) uint256.Int {
	var z uint256.Int
	z.AddMod(&a, &b, &f.p)

	return z
}

// Sub returns a - b mod p.
func (f *PrimeField) Sub(a, b uint256.Int) uint256.Int {
	var z uint256.Int
	if a.Lt(&b) {
		// a - b + p without leaving [0, p): p - (b - a).
		z.Sub(&b, &a)
		z.Sub(&f.p, &z)

		return z
	}
	z.Sub(&a, &b)

	return z
}

// Mul returns a * b mod p.
func (f *PrimeField) Mul(a, b uint256.Int) uint256.Int {
	var z uint256.Int
	z.MulMod(&a, &b, &f.p)

	return z
}

// Quo returns a * b^(p-2) mod p. It panics when b is zero.
func (f *PrimeField) Quo(a, b uint256.Int) uint256.Int {
	if b.IsZero() {
		panic(panicDivByZero)
	}

	return f.Mul(a, f.pow(b, f.pMinus))
}

// IsOne reports whether a == 1.
func (f *PrimeField) IsOne(a uint256.Int) bool { return a.IsUint64() && a.Uint64() == 1 }

// Equal reports a == b.
func (f *PrimeField) Equal(a, b uint256.Int) bool { return a.Eq(&b) }

// Parse accepts decimal integers, optionally negative, and fractions "a/b".
func (f *PrimeField) Parse(s string) (uint256.Int, error) {
	s = strings.TrimSpace(s)
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := f.Parse(num)
		if err != nil {
			return uint256.Int{}, err
		}
		d, err := f.Parse(den)
		if err != nil {
			return uint256.Int{}, err
		}
		if d.IsZero() {
			return uint256.Int{}, fmt.Errorf("GF(%s) %q: zero denominator: %w", f.p.Dec(), s, ErrParse)
		}

		return f.Quo(n, d), nil
	}
	neg := strings.HasPrefix(s, "-")
	v, err := uint256.FromDecimal(strings.TrimPrefix(s, "-"))
	if err != nil {
		return uint256.Int{}, fmt.Errorf("GF(%s) %q: %w", f.p.Dec(), s, ErrParse)
	}
	v.Mod(v, &f.p)
	if neg {
		return f.Sub(uint256.Int{}, *v), nil
	}

	return *v, nil
}

// Format renders the canonical representative in [0, p).
func (f *PrimeField) Format(a uint256.Int) string { return a.Dec() }

// String names the field.
func (f *PrimeField) String() string { return "GF(" + f.p.Dec() + ")" }

// pow computes base^exp mod p by right-to-left square and multiply.
func (f *PrimeField) pow(base, exp uint256.Int) uint256.Int {
	res := f.One()
	for !exp.IsZero() {
		if exp[0]&1 == 1 {
			res.MulMod(&res, &base, &f.p)
		}
		base.MulMod(&base, &base, &f.p)
		exp.Rsh(&exp, 1)
	}

	return res
}
