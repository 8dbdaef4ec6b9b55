// Package groebner computes minimal standard bases of submodules of free
// modules over polynomial rings, for global and local monomial orders.
//
// 🚀 What is a standard basis?
//
//	A generating set S of a submodule M such that the leading monomial of
//	every element of M is divisible by the leading monomial of some s ∈ S.
//	For global orders this is a Gröbner basis; for local orders it is the
//	standard basis of the localized module in the sense of Mora.
//	It turns membership testing into a single normal-form reduction.
//
// ✨ Key features:
//   - Buchberger's algorithm with the sugar selection strategy
//   - chain criterion pruning of critical pairs
//   - pluggable reducers: Mora (any order), Buchberger, fully reduced
//   - extended mode: every basis element comes with its expression in the
//     original generators (WithExtended)
//   - any exact coefficient field via domain.Field
//
// ⚙️ Usage:
//
//	mod := sdm.NewModule[*big.Rat](monomial.POT(monomial.Lex), domain.Rationals{})
//	res, err := groebner.Compute(mod, generators, groebner.WithExtended())
//	if err != nil {
//		// ErrLevelMismatch, ErrUnsorted, ErrLocalOrder, ...
//	}
//	ok := res.Contains(f)
//
// The step-by-step engine is exported as Algorithm for callers that want to
// drive Update and Run themselves (or inspect the working basis before it is
// minimized).
//
// Computations are synchronous and allocate all state per call; nothing is
// shared between calls, so independent computations may run concurrently.
package groebner
