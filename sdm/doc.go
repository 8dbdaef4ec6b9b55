// Package sdm implements sparse distributed module elements ("sdm"): finite
// sums of terms c·x^e·f_g over a free module of rank r on a polynomial ring,
// kept as slices of terms sorted strictly descending by a module order.
//
// What lives here:
//
//   - Element arithmetic: Add, Sub, Neg, Scale, MulTerm, Monic, Combine.
//   - Leading data: LM, LT, Module.LC, Degree, Ecart.
//   - Construction: FromTerms, FromDict/ToDict, FromVector/ToVector.
//   - S-polynomials: SPoly and SPolyPhantom.
//   - Normal forms: NormalFormMora (any order), NormalFormBuchberger and
//     NormalFormReduced (global orders), all usable as NormalForm strategies.
//
// Every function taking an order or a field is a method on Module, a small
// immutable context built with NewModule. Elements are values: nothing in
// this package mutates an argument.
//
// Preconditions (LM/Degree of the zero element, a zero divisor) are
// programmer errors and panic; well-formed input never triggers them.
package sdm
