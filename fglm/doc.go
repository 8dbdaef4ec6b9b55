// Package fglm converts standard bases between global monomial orders with
// the FGLM algorithm (Faugère, Gianni, Lazard, Mora).
//
// 🚀 Why convert instead of recomputing?
//
//	Lexicographic bases eliminate variables and are what one wants for
//	solving, but computing them directly is often far slower than computing
//	a degree-reverse-lexicographic basis. When the quotient by the submodule
//	is finite dimensional, FGLM turns the cheap basis into the expensive one
//	with plain linear algebra on the quotient.
//
// ✨ Key features:
//   - exact arithmetic over any domain.Field
//   - works on submodules of free modules, not only ideals
//   - Staircase and Dimension describe the quotient on their own
//   - WithMaxDimension guards memory: representing matrices are dense
//
// ⚙️ Usage:
//
//	grevlex := sdm.NewModule[*big.Rat](monomial.TOP(monomial.GRevLex), domain.Rationals{})
//	res, _ := groebner.Compute(grevlex, G)
//	lexBasis, err := fglm.Convert(grevlex, res.Basis, monomial.POT(monomial.Lex))
//
// Performance:
//
//   - Time:   O(n·D^3) field operations in the worst case
//   - Memory: O(n·D^2) for n variables and quotient dimension D
package fglm
