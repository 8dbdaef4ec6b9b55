// Package monomial models module monomials x^e · f_g and the monomial
// orders that rank them.
//
// A Monomial pairs a generator index with an exponent vector of fixed length.
// The primitives (Mul, Deg, LCM, Divides) are pure and total on well-formed
// input; LCM and Quo assume both arguments belong to the same generator, which
// callers guard with Divides or an explicit Gen check.
//
// Orders come in two layers:
//
//	ExpOrder – ranks exponent vectors: Lex, GrLex, GRevLex and their
//	           local inverses ILex, IGrLex, IGRevLex.
//	Order    – ranks module monomials: POT(base) or TOP(base).
//
// Only global orders (1 < x_i) admit Buchberger reduction and FGLM; local
// orders are handled by Mora's normal form in package sdm.
package monomial
