package groebner

import (
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/groebner/domain"
	"github.com/katalvlaran/groebner/sdm"
)

// Result is a minimal standard basis, sorted descending by leading monomial.
type Result[E any] struct {
	// Basis is the minimal standard basis: no leading monomial divides
	// another. Monic unless WithMonic(false) was given.
	Basis []sdm.Element[E]

	// Coefficients[i] expresses Basis[i] in the original generators
	// (term c·x^a·e_k stands for c·x^a·G[k]). Nil unless WithExtended.
	Coefficients []sdm.Element[E]

	// Stats reports the work done by the run.
	Stats Stats

	mod *sdm.Module[E]
}

// Compute returns a minimal standard basis of the submodule generated by G.
//
// Algorithm: Buchberger's algorithm with the sugar strategy.
//  1. Every nonzero G[i] enters the working basis with sugar deg(G[i]);
//     critical pairs are formed per generator component and pruned by the
//     chain criterion (see Algorithm.Update).
//  2. The least pair by (sugar, lcm, index) is popped, its S-polynomial
//     reduced against the whole current basis, and a nonzero remainder is
//     added with the pair's sugar.
//  3. When no pairs remain, elements whose leading monomial is divisible by
//     another survivor's are discarded.
//
// The reducer defaults to Buchberger's normal form for global orders and to
// Mora's for local ones. For local orders termination relies on the input;
// use WithMaxPairs to bound a run that might not finish.
//
// Errors:
//   - ErrNilModule, ErrLocalOrder, ErrPhantomUnsupported.
//   - Input validation: ErrLevelMismatch, ErrNegativeExponent, ErrUnsorted.
//   - ErrPairLimit.
//
// Complexity: doubly exponential in the worst case, as for any standard basis
// algorithm; memory grows with the basis and pair set until minimization.
func Compute[E any](mod *sdm.Module[E], G []sdm.Element[E], opts ...Option) (*Result[E], error) {
	if mod == nil {
		return nil, groebnerErrorf(opCompute, ErrNilModule)
	}
	o := gatherOptions(opts...)
	nf, err := pickNormalForm(mod, o)
	if err != nil {
		return nil, groebnerErrorf(opCompute, err)
	}

	alg, err := NewAlgorithm(mod, nf, opts...)
	if err != nil {
		return nil, err
	}
	if err = alg.AddGenerators(G); err != nil {
		return nil, err
	}
	if err = alg.Run(); err != nil {
		return nil, err
	}

	return alg.Result(), nil
}

// pickNormalForm resolves the configured Reducer against the order.
func pickNormalForm[E any](mod *sdm.Module[E], o Options) (sdm.NormalForm[E], error) {
	global := mod.Order().Global()
	switch o.reducer {
	case ReducerMora:
		return mod.Mora(), nil
	case ReducerBuchberger:
		if !global {
			return nil, ErrLocalOrder
		}

		return mod.Buchberger(), nil
	case ReducerReduced:
		if !global {
			return nil, ErrLocalOrder
		}
		if o.extended {
			return nil, ErrPhantomUnsupported
		}

		return mod.Reduced(), nil
	default:
		if global {
			return mod.Buchberger(), nil
		}

		return mod.Mora(), nil
	}
}

// Result minimizes the working basis and packages it.
//
// Minimization sweeps index pairs in insertion order: when LM(S_i) divides
// LM(S_j) for two survivors i ≠ j, S_j is discarded. With equal leading
// monomials the earlier element therefore survives. Survivors are sorted
// descending by leading monomial (stable), made monic if configured, and
// their coefficient vectors follow the same permutation and scaling.
func (a *Algorithm[E]) Result() *Result[E] {
	n := len(a.basis)
	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || !alive[i] || !alive[j] {
				continue
			}
			if sdm.LM(a.basis[i]).Divides(sdm.LM(a.basis[j])) {
				alive[j] = false
			}
		}
	}

	idx := make([]int, 0, n)
	for i, ok := range alive {
		if ok {
			idx = append(idx, i)
		}
	}
	o := a.mod.Order()
	slices.SortStableFunc(idx, func(x, y int) int {
		return o.Compare(sdm.LM(a.basis[y]), sdm.LM(a.basis[x]))
	})

	res := &Result[E]{Basis: make([]sdm.Element[E], 0, len(idx)), Stats: a.stats, mod: a.mod}
	if a.opts.extended {
		res.Coefficients = make([]sdm.Element[E], 0, len(idx))
	}
	k := a.mod.Field()
	for _, i := range idx {
		f := a.basis[i]
		scale := k.One()
		if a.opts.monic {
			scale = domain.Inv(k, f[0].C)
		}
		res.Basis = append(res.Basis, a.mod.Scale(f, scale))
		if a.opts.extended {
			res.Coefficients = append(res.Coefficients, a.mod.Scale(a.coeffs[i], scale))
		}
	}
	a.log.Debug("minimized",
		zap.Int("working", n),
		zap.Int("minimal", len(res.Basis)),
		zap.Int("processed", a.stats.Processed))

	return res
}

// Reduce returns the normal form of f modulo the basis: the fully reduced
// (unique) one for global orders, Mora's weak normal form otherwise.
func (r *Result[E]) Reduce(f sdm.Element[E]) sdm.Element[E] {
	if r.mod.Order().Global() {
		return r.mod.NormalFormReduced(f, r.Basis)
	}
	h, _ := r.mod.NormalFormMora(f, r.Basis, nil)

	return h
}

// Contains reports whether f lies in the submodule spanned by the basis.
func (r *Result[E]) Contains(f sdm.Element[E]) bool {
	return len(r.Reduce(f)) == 0
}
