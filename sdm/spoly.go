package sdm

import (
	"github.com/katalvlaran/groebner/domain"
	"github.com/katalvlaran/groebner/monomial"
)

// combination is the linear combination x^m1·f + c·x^m2·g that cancels the
// leading terms of f and g. Keeping it as a value lets the very same step be
// replayed on phantom companions.
type combination[E any] struct {
	m1, m2 []int
	c      E
}

// cancel computes the cancelling combination of f and g. ok is false when the
// leading monomials sit on different generators, in which case the
// S-polynomial is zero by definition.
func (m *Module[E]) cancel(f, g Element[E]) (combination[E], bool) {
	lm1, lm2 := LM(f), LM(g)
	if lm1.Gen != lm2.Gen {
		return combination[E]{}, false
	}
	lcm := monomial.ExpLCM(lm1.Exp, lm2.Exp)

	return combination[E]{
		m1: monomial.ExpQuo(lcm, lm1.Exp),
		m2: monomial.ExpQuo(lcm, lm2.Exp),
		c:  m.field.Quo(domain.Neg(m.field, f[0].C), g[0].C),
	}, true
}

// apply evaluates the combination on (f, g).
func (m *Module[E]) apply(cb combination[E], f, g Element[E]) Element[E] {
	return m.Add(m.MulTerm(f, cb.m1, m.field.One()), m.MulTerm(g, cb.m2, cb.c))
}

// SPoly returns the S-polynomial of f and g: x^m1·f - (LC f / LC g)·x^m2·g,
// where x^m1·LM f = x^m2·LM g = lcm. Zero when either input is zero or the
// leading monomials belong to different generators.
//
// The result's leading monomial is strictly below the lcm in the order.
func (m *Module[E]) SPoly(f, g Element[E]) Element[E] {
	if len(f) == 0 || len(g) == 0 {
		return nil
	}
	cb, ok := m.cancel(f, g)
	if !ok {
		return nil
	}

	return m.apply(cb, f, g)
}

// SPolyPhantom is SPoly that replays the identical combination on the
// phantom companions fp and gp, returning both results.
func (m *Module[E]) SPolyPhantom(f, g, fp, gp Element[E]) (Element[E], Element[E]) {
	if len(f) == 0 || len(g) == 0 {
		return nil, nil
	}
	cb, ok := m.cancel(f, g)
	if !ok {
		return nil, nil
	}

	return m.apply(cb, f, g), m.apply(cb, fp, gp)
}
