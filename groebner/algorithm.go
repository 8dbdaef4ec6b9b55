package groebner

import (
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/groebner/domain"
	"github.com/katalvlaran/groebner/monomial"
	"github.com/katalvlaran/groebner/sdm"
)

// Algorithm owns the state of one standard-basis run: the working basis S,
// the sugar of every basis element, the pending critical pairs P and, in
// extended mode, the transition coefficients of every basis element.
//
// The three (four) sequences are index-parallel and only ever grow until
// Result minimizes them. An Algorithm is single-use and not safe for
// concurrent use; independent runs need independent instances.
type Algorithm[E any] struct {
	mod  *sdm.Module[E]
	nf   sdm.NormalForm[E]
	opts Options
	log  *zap.Logger

	basis  []sdm.Element[E]
	sugars []int
	pairs  pairSet
	coeffs []sdm.Element[E] // parallel to basis; nil unless extended

	level int // exponent vector length, -1 until the first nonzero input
	ngens int // generators fed so far, zero elements included
	stats Stats
}

// Stats counts the work done by a run.
type Stats struct {
	Processed   int // critical pairs popped and reduced
	ZeroReduced int // pairs whose normal form vanished
	ChainPruned int // pending pairs removed by the chain criterion
	LcmPruned   int // new pairs dropped because an earlier new pair's lcm divides theirs
}

// NewAlgorithm prepares an empty run reducing with nf.
//
// Errors:
//   - ErrNilModule, ErrNilNormalForm.
func NewAlgorithm[E any](mod *sdm.Module[E], nf sdm.NormalForm[E], opts ...Option) (*Algorithm[E], error) {
	if mod == nil {
		return nil, groebnerErrorf(opNew, ErrNilModule)
	}
	if nf == nil {
		return nil, groebnerErrorf(opNew, ErrNilNormalForm)
	}
	o := gatherOptions(opts...)

	return &Algorithm[E]{
		mod:   mod,
		nf:    nf,
		opts:  o,
		log:   o.logger,
		pairs: newPairSet(mod.Order()),
		level: -1,
	}, nil
}

// AddGenerators validates G and feeds every nonzero element into the
// working basis with sugar equal to its degree. In extended mode the element
// G[i] starts with the coefficient vector e_k, where k counts every
// generator fed so far, zero elements and earlier calls included.
//
// Errors:
//   - ErrLevelMismatch, ErrNegativeExponent, ErrUnsorted.
func (a *Algorithm[E]) AddGenerators(G []sdm.Element[E]) error {
	if err := a.validate(G); err != nil {
		return err
	}
	one := a.mod.Field().One()
	offset := a.ngens
	a.ngens += len(G)
	for i, f := range G {
		if len(f) == 0 {
			continue
		}
		var c sdm.Element[E]
		if a.opts.extended {
			c = sdm.Element[E]{{M: monomial.Unit(offset+i, a.level), C: one}}
		}
		a.Update(f, c, sdm.Degree(f))
		a.log.Debug("generator added",
			zap.Int("index", offset+i),
			zap.Stringer("lm", sdm.LM(f)),
			zap.Int("terms", len(f)))
	}

	return nil
}

// validate checks level, sign and normalization of every term of G.
func (a *Algorithm[E]) validate(G []sdm.Element[E]) error {
	o, k := a.mod.Order(), a.mod.Field()
	for _, f := range G {
		for idx, t := range f {
			if a.level < 0 {
				a.level = len(t.M.Exp)
			}
			if len(t.M.Exp) != a.level {
				return groebnerErrorf(opCompute, ErrLevelMismatch)
			}
			if t.M.Gen < 0 {
				return groebnerErrorf(opCompute, ErrNegativeExponent)
			}
			for _, e := range t.M.Exp {
				if e < 0 {
					return groebnerErrorf(opCompute, ErrNegativeExponent)
				}
			}
			if domain.IsZero(k, t.C) || (idx > 0 && o.Compare(f[idx-1].M, t.M) <= 0) {
				return groebnerErrorf(opCompute, ErrUnsorted)
			}
		}
	}

	return nil
}

// Update appends f (with transition coefficients c and the given sugar) to
// the working basis and refreshes the pair set:
//
//  1. Chain criterion: a pending pair (i, j) with lcm t is dropped when
//     LM(f) lives on t's generator and both lcm(LM f, LM S_i) and
//     lcm(LM f, LM S_j) divide t without being equal to it.
//  2. New pairs (i, k) are formed with every S_i on the generator of LM(f),
//     sorted by (sugar, lcm); a new pair whose lcm is divisible by the lcm of
//     an earlier new pair is dropped.
//
// The product criterion is not applied, so more pairs than strictly
// necessary may survive. The zero element is ignored and Update reports
// false; c is ignored outside extended mode.
func (a *Algorithm[E]) Update(f, c sdm.Element[E], sugar int) bool {
	if len(f) == 0 {
		return false
	}
	k := len(a.basis)
	a.basis = append(a.basis, f)
	a.sugars = append(a.sugars, sugar)
	if a.opts.extended {
		a.coeffs = append(a.coeffs, c)
	}
	lmf := sdm.LM(f)

	a.stats.ChainPruned += a.pairs.removeFunc(func(p pair) bool {
		if lmf.Gen != p.lcm.Gen {
			return false
		}
		tik := monomial.LCM(lmf, sdm.LM(a.basis[p.i]))
		tjk := monomial.LCM(lmf, sdm.LM(a.basis[p.j]))

		return !tik.Equal(p.lcm) && !tjk.Equal(p.lcm) && tik.Divides(p.lcm) && tjk.Divides(p.lcm)
	})

	fresh := make([]pair, 0, k)
	for i := 0; i < k; i++ {
		lmi := sdm.LM(a.basis[i])
		if lmi.Gen != lmf.Gen {
			continue
		}
		fresh = append(fresh, pair{i: i, j: k, sugar: a.pairSugar(i, k), lcm: monomial.LCM(lmf, lmi)})
	}
	slices.SortStableFunc(fresh, a.pairs.compare)
	drop := make([]bool, len(fresh))
	for x := range fresh {
		for y := x + 1; y < len(fresh); y++ {
			if fresh[x].lcm.Divides(fresh[y].lcm) {
				drop[y] = true
			}
		}
	}
	for x, p := range fresh {
		if drop[x] {
			a.stats.LcmPruned++

			continue
		}
		a.pairs.push(p)
	}

	return true
}

// pairSugar is max(sugar_i - deg LM_i, sugar_j - deg LM_j) + deg lcm.
func (a *Algorithm[E]) pairSugar(i, j int) int {
	lmi, lmj := sdm.LM(a.basis[i]), sdm.LM(a.basis[j])

	return max(a.sugars[i]-lmi.Deg(), a.sugars[j]-lmj.Deg()) + monomial.LCM(lmi, lmj).Deg()
}

// Run pops critical pairs until none remain, reducing each S-polynomial
// against the whole current basis and feeding nonzero remainders back
// through Update.
//
// Errors:
//   - ErrPairLimit when WithMaxPairs is set and exhausted.
func (a *Algorithm[E]) Run() error {
	for a.pairs.len() > 0 {
		if a.opts.maxPairs > 0 && a.stats.Processed >= a.opts.maxPairs {
			return groebnerErrorf(opRun, ErrPairLimit)
		}
		p := a.pairs.pop()
		a.stats.Processed++
		a.log.Debug("pair",
			zap.Int("i", p.i),
			zap.Int("j", p.j),
			zap.Int("sugar", p.sugar),
			zap.Stringer("lcm", p.lcm),
			zap.Int("pending", a.pairs.len()))

		f, g := a.basis[p.i], a.basis[p.j]
		var h, hc sdm.Element[E]
		if a.opts.extended {
			sp, spc := a.mod.SPolyPhantom(f, g, a.coeffs[p.i], a.coeffs[p.j])
			h, hc = a.nf(sp, a.basis, &sdm.Phantom[E]{Acc: spc, Basis: a.coeffs})
		} else {
			h, _ = a.nf(a.mod.SPoly(f, g), a.basis, nil)
		}

		if !a.Update(h, hc, p.sugar) {
			a.stats.ZeroReduced++

			continue
		}
		a.log.Debug("basis element added",
			zap.Int("index", len(a.basis)-1),
			zap.Int("sugar", p.sugar),
			zap.Stringer("lm", sdm.LM(h)))
	}

	return nil
}

// Basis returns the current, not yet minimized, working basis.
func (a *Algorithm[E]) Basis() []sdm.Element[E] { return a.basis }

// Sugars returns the sugar degrees, parallel to Basis.
func (a *Algorithm[E]) Sugars() []int { return a.sugars }

// Pending returns the number of critical pairs still queued.
func (a *Algorithm[E]) Pending() int { return a.pairs.len() }

// Stats returns the counters accumulated so far.
func (a *Algorithm[E]) Stats() Stats { return a.stats }
