// SPDX-License-Identifier: MIT

package domain

// Field is the exact arithmetic contract consumed by the engine.
//
// Contract:
//   - Values of E are treated as immutable: implementations must return fresh
//     values and never mutate their arguments.
//   - Quo(a, b) is the exact quotient; it must succeed for every nonzero b.
//     Quo by the zero element is a programmer error and panics.
//   - Equal is value equality (not identity).
type Field[E any] interface {
	// Zero returns the additive identity.
	Zero() E

	// One returns the multiplicative identity.
	One() E

	// Add returns a + b.
	Add(a, b E) E

	// Sub returns a - b.
	Sub(a, b E) E

	// Mul returns a * b.
	Mul(a, b E) E

	// Quo returns the exact quotient a / b for b ≠ 0.
	Quo(a, b E) E

	// IsOne reports whether a is the multiplicative identity.
	IsOne(a E) bool

	// Equal reports value equality.
	Equal(a, b E) bool
}

// Codec converts coefficients to and from text. It is used by the conversion
// layer and for formatting; the algorithms themselves never need it.
type Codec[E any] interface {
	// Parse decodes s into a coefficient, wrapping ErrParse on failure.
	Parse(s string) (E, error)

	// Format renders a coefficient in the canonical textual form of the field.
	Format(a E) string
}

// FieldCodec bundles arithmetic and text conversion, which is what the
// built-in fields implement.
type FieldCodec[E any] interface {
	Field[E]
	Codec[E]
}

// IsZero reports whether a equals the field zero.
func IsZero[E any](k Field[E], a E) bool {
	return k.Equal(a, k.Zero())
}

// Neg returns -a computed as 0 - a.
func Neg[E any](k Field[E], a E) E {
	return k.Sub(k.Zero(), a)
}

// Inv returns 1 / a; a must be nonzero.
func Inv[E any](k Field[E], a E) E {
	return k.Quo(k.One(), a)
}

// FromInt maps a machine integer into the prime subfield by repeated
// doubling, using only the Field contract.
func FromInt[E any](k Field[E], n int64) E {
	neg := n < 0
	if neg {
		n = -n
	}
	acc, pow := k.Zero(), k.One()
	for n > 0 {
		if n&1 == 1 {
			acc = k.Add(acc, pow)
		}
		pow = k.Add(pow, pow)
		n >>= 1
	}
	if neg {
		return Neg(k, acc)
	}

	return acc
}
