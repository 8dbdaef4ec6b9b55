package sdm

import "slices"

const panicReducedPhantom = "sdm: reduced normal form cannot track phantom coefficients"

// Phantom carries the companion data of a tracked reduction: Acc follows the
// element being reduced and Basis[i] follows reducer G[i]. Every step applied
// to the primary accumulator is replayed on Acc, which is how the extended
// standard-basis computation expresses new elements in the original
// generators.
type Phantom[E any] struct {
	Acc   Element[E]
	Basis []Element[E]
}

// NormalForm is a pluggable reduction strategy. It reduces f against the
// reducers G and, when ph is non-nil, returns the phantom result as the
// second value (nil otherwise).
type NormalForm[E any] func(f Element[E], G []Element[E], ph *Phantom[E]) (Element[E], Element[E])

// Mora returns NormalFormMora as a strategy.
func (m *Module[E]) Mora() NormalForm[E] { return m.NormalFormMora }

// Buchberger returns NormalFormBuchberger as a strategy.
func (m *Module[E]) Buchberger() NormalForm[E] { return m.NormalFormBuchberger }

// Reduced returns NormalFormReduced as a strategy. The strategy panics when
// asked to track phantoms, which the reduced normal form does not support.
func (m *Module[E]) Reduced() NormalForm[E] {
	return func(f Element[E], G []Element[E], ph *Phantom[E]) (Element[E], Element[E]) {
		if ph != nil {
			panic(panicReducedPhantom)
		}

		return m.NormalFormReduced(f, G), nil
	}
}

// step replaces h by its S-polynomial with the reducer g. The phantom pair
// (hp, gp) goes through the same combination when tracking is on, so the two
// accumulators can never drift apart.
func (m *Module[E]) step(h, hp, g, gp Element[E], track bool) (Element[E], Element[E]) {
	if track {
		return m.SPolyPhantom(h, g, hp, gp)
	}

	return m.SPoly(h, g), nil
}

// NormalFormMora computes a weak normal form of f with respect to G by Mora's
// algorithm, valid for any monomial order including local ones.
//
// Algorithm:
//  1. T := G. While h ≠ 0, collect the reducers in T whose leading monomial
//     divides LM(h); stop if there are none.
//  2. Pick the one of minimal ecart, the earliest on ties.
//  3. If its ecart exceeds ecart(h), append h itself to T.
//  4. h := spoly(h, g).
//
// The result is zero iff f lies in the submodule generated by G when G is a
// standard basis. It is not unique. Termination for orders that are not
// well-founded relies on step 3 and on the input being Noetherian; nothing
// here detects a non-terminating configuration.
func (m *Module[E]) NormalFormMora(f Element[E], G []Element[E], ph *Phantom[E]) (Element[E], Element[E]) {
	track := ph != nil
	h := f
	T := slices.Clone(G)
	ecarts := make([]int, len(T))
	for i, g := range T {
		if len(g) > 0 {
			ecarts[i] = Ecart(g)
		}
	}
	var hp Element[E]
	var Tp []Element[E]
	if track {
		hp = ph.Acc
		Tp = slices.Clone(ph.Basis)
	}

	for len(h) > 0 {
		lmh := LM(h)
		best := -1
		for i, g := range T {
			if len(g) == 0 || !LM(g).Divides(lmh) {
				continue
			}
			if best < 0 || ecarts[i] < ecarts[best] {
				best = i
			}
		}
		if best < 0 {
			break
		}

		g := T[best]
		var gp Element[E]
		if track {
			gp = Tp[best]
		}
		if eh := Ecart(h); ecarts[best] > eh {
			T = append(T, h)
			ecarts = append(ecarts, eh)
			if track {
				Tp = append(Tp, hp)
			}
		}
		h, hp = m.step(h, hp, g, gp, track)
	}

	return h, hp
}

// NormalFormBuchberger computes a normal form of f with respect to G for a
// global order: the first reducer whose leading monomial divides LM(h) is
// used, until none does. Only the leading term is guaranteed irreducible.
func (m *Module[E]) NormalFormBuchberger(f Element[E], G []Element[E], ph *Phantom[E]) (Element[E], Element[E]) {
	track := ph != nil
	h := f
	var hp Element[E]
	if track {
		hp = ph.Acc
	}

	for len(h) > 0 {
		lmh := LM(h)
		idx := slices.IndexFunc(G, func(g Element[E]) bool {
			return len(g) > 0 && LM(g).Divides(lmh)
		})
		if idx < 0 {
			break
		}
		var gp Element[E]
		if track {
			gp = ph.Basis[idx]
		}
		h, hp = m.step(h, hp, G[idx], gp, track)
	}

	return h, hp
}

// NormalFormReduced computes the fully reduced normal form of f with respect
// to G (global orders): leading terms of successive Buchberger normal forms
// are peeled off into the result until nothing remains. For a standard basis
// G the result is unique. Phantom tracking is not available.
func (m *Module[E]) NormalFormReduced(f Element[E], G []Element[E]) Element[E] {
	var out Element[E]
	g := f
	for len(g) > 0 {
		g, _ = m.NormalFormBuchberger(g, G, nil)
		if len(g) > 0 {
			out = m.Add(out, g[:1])
			g = g[1:]
		}
	}

	return out
}
