// Package domain defines the exact coefficient arithmetic consumed by the
// standard-basis engine, together with three ready-made fields.
//
// The engine never owns its coefficients: every routine in sdm, groebner and
// fglm receives a Field[E] and only ever calls Zero, One, Add, Sub, Mul, Quo,
// IsOne and Equal on it. Any exact structure honoring that contract can be
// plugged in.
//
// Fields shipped with the package:
//
//   - Rationals  – QQ on *big.Rat, exact and unbounded.
//   - PrimeField – GF(p) for any prime p < 2^256 on holiman/uint256 values.
//   - BN254      – the scalar field of the BN254 curve on gnark-crypto fr.Element.
//
// Usage:
//
//	qq := domain.Rationals{}
//	half := qq.Quo(qq.One(), big.NewRat(2, 1))
//
//	gf, err := domain.NewPrimeField(uint256.NewInt(32003))
//	if err != nil {
//		// handle ErrModulus
//	}
//
// Exactness is the whole point: floating point coefficients are not
// supported, and Quo is only total on nonzero divisors of a field.
package domain
