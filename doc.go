// Package groebner is the umbrella of a small computer-algebra toolkit for
// submodules of free modules over polynomial rings: sparse module elements,
// standard bases and order conversion, all over exact coefficient fields.
//
// 🚀 What is inside?
//
//	A pure-Go engine that brings together:
//		• Coefficient fields: QQ (math/big), GF(p) up to 256 bits, BN254 Fr
//		• Monomials & orders: lex, grlex, grevlex, their local inverses, POT/TOP
//		• Sparse distributed elements: arithmetic, S-polynomials, normal forms
//		• Standard bases: Buchberger with sugar, Mora reduction for local orders
//		• Order conversion: FGLM for zero-dimensional quotients
//
// ✨ Why use it?
//
//   - Generic over the field – one engine, any Field[E]
//   - Extended mode – every basis element comes with its transition coefficients
//   - Observable – zap logging of every pair, reduction and relation
//   - Scriptable – the sdm command reads systems from YAML
//
// Packages:
//
//	domain/           – Field contract and the three built-in fields
//	monomial/         – module monomials, divisibility, orders
//	sdm/              – elements, S-polynomials, Mora/Buchberger/reduced normal forms
//	groebner/         – Compute, Algorithm, minimization, Result.Reduce
//	fglm/             – Convert, Staircase, Dimension
//	internal/system/  – YAML systems for the command line
//	cmd/sdm/          – the sdm command
//
// Quick example, the parabola y = x^2 meets the hyperbola xy = 1:
//
//	sdm groebner internal/system/testdata/hyperbola.yaml
//	x^2*f1 - y*f1
//	x*y*f1 - f1
//	y^2*f1 - x*f1
//
//	go get github.com/katalvlaran/groebner
package groebner
