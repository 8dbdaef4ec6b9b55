package fglm

import (
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/groebner/domain"
	"github.com/katalvlaran/groebner/monomial"
	"github.com/katalvlaran/groebner/sdm"
)

// candidate is a monomial waiting to be tested: x_v·S[from], or the unit
// 1·f_g of a generator component when from < 0.
type candidate struct {
	m    monomial.Monomial
	v    int
	from int
}

// Convert rebuilds the standard basis F, valid for the order of mod, as the
// reduced standard basis of the same submodule under target.
//
// Implementation:
//   - Stage 1: enumerate the staircase of F (quotient basis B, ascending).
//   - Stage 2: one representing matrix per variable: column i of M_v holds
//     the coordinates in B of the reduced normal form of x_v·B[i].
//   - Stage 3: walk candidate monomials in ascending target order, starting
//     from the unit monomials 1·f_g. The coordinate vector of x_v·S[l] is
//     M_v·V[l]. A transformation matrix P with P·V[i] = e_i decides linear
//     dependence on the accepted S in one product: if λ = P·v vanishes from
//     index len(S) on, m − Σ λ_i·S[i] is a new basis element; otherwise m is
//     accepted and P absorbs one pivot step.
//   - Stage 4: drop candidates divisible by a found leading monomial; stop
//     when none remain; return the relations monic, sorted descending by the
//     leading monomial under target.
//
// F must be a standard basis (not necessarily reduced) under mod's order.
// Both orders must be global and the quotient finite dimensional.
//
// Errors:
//   - ErrNilModule, ErrNotGlobal, ErrEmptyBasis, ErrNotZeroDimensional,
//     ErrDimensionLimit.
//
// Complexity: O(n·D^2) field operations for the matrices (n variables,
// D the quotient dimension) plus O(D^2) per candidate; memory O(n·D^2).
func Convert[E any](mod *sdm.Module[E], F []sdm.Element[E], target monomial.Order, opts ...Option) ([]sdm.Element[E], error) {
	o := gatherOptions(opts...)
	if mod == nil {
		return nil, fglmErrorf(opConvert, ErrNilModule)
	}
	if target == nil || !target.Global() {
		return nil, fglmErrorf(opConvert, ErrNotGlobal)
	}
	basis, sh, err := staircase(mod, F, o.maxDimension)
	if err != nil {
		return nil, fglmErrorf(opConvert, err)
	}
	k := mod.Field()
	dim := len(basis)
	o.logger.Debug("staircase", zap.Int("dimension", dim), zap.Int("variables", sh.nvars), zap.Int("rank", sh.rank))

	index := make(map[string]int, dim)
	for i, b := range basis {
		index[b.Key()] = i
	}
	coords := func(f sdm.Element[E]) []E {
		v := make([]E, dim)
		for i := range v {
			v[i] = k.Zero()
		}
		for _, t := range mod.NormalFormReduced(f, F) {
			v[index[t.M.Key()]] = t.C
		}

		return v
	}

	M := make([]*Dense[E], sh.nvars)
	for v := range M {
		if M[v], err = NewDense(k, dim, dim); err != nil {
			return nil, fglmErrorf(opConvert, err)
		}
		for i, b := range basis {
			for j, c := range coords(sdm.Element[E]{{M: b.IncrVar(v), C: k.One()}}) {
				if !domain.IsZero(k, c) {
					M[v].data[j*dim+i] = c
				}
			}
		}
	}

	P, err := Identity(k, dim)
	if err != nil {
		return nil, fglmErrorf(opConvert, err)
	}
	out := mod.WithOrder(target)
	var (
		S    []monomial.Monomial
		V    [][]E
		G    []sdm.Element[E]
		L    []candidate
		seen = make(map[string]bool)
	)
	enqueue := func(c candidate) {
		if seen[c.m.Key()] {
			return
		}
		seen[c.m.Key()] = true
		L = append(L, c)
	}
	for g := 0; g < sh.rank; g++ {
		enqueue(candidate{m: monomial.Unit(g, sh.nvars), from: -1})
	}

	for len(L) > 0 {
		slices.SortFunc(L, func(a, b candidate) int { return target.Compare(b.m, a.m) })
		c := L[len(L)-1]
		L = L[:len(L)-1]

		var vec []E
		if c.from < 0 {
			vec = coords(sdm.Element[E]{{M: c.m, C: k.One()}})
		} else {
			vec = M[c.v].MulVec(V[c.from])
		}
		lambda := P.MulVec(vec)
		s := len(S)

		if !slices.ContainsFunc(lambda[s:], func(x E) bool { return !domain.IsZero(k, x) }) {
			terms := make([]sdm.Term[E], 0, s+1)
			terms = append(terms, sdm.Term[E]{M: c.m, C: k.One()})
			for i := 0; i < s; i++ {
				terms = append(terms, sdm.Term[E]{M: S[i], C: domain.Neg(k, lambda[i])})
			}
			if g := out.FromTerms(terms); len(g) > 0 {
				G = append(G, g)
				o.logger.Debug("relation", zap.Stringer("lm", sdm.LM(g)), zap.Int("terms", len(g)))
			}
		} else {
			P.pivot(s, lambda)
			S = append(S, c.m)
			V = append(V, vec)
			o.logger.Debug("accepted", zap.Stringer("monomial", c.m), zap.Int("index", s))
			for v := 0; v < sh.nvars; v++ {
				enqueue(candidate{m: c.m.IncrVar(v), v: v, from: s})
			}
		}

		L = slices.DeleteFunc(L, func(c candidate) bool {
			for _, g := range G {
				if sdm.LM(g).Divides(c.m) {
					return true
				}
			}

			return false
		})
	}

	for i, g := range G {
		G[i] = out.Monic(g)
	}
	slices.SortFunc(G, func(a, b sdm.Element[E]) int { return target.Compare(sdm.LM(b), sdm.LM(a)) })
	o.logger.Debug("converted", zap.Stringer("target", target), zap.Int("size", len(G)))

	return G, nil
}
