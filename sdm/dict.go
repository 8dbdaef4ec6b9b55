package sdm

import (
	"github.com/katalvlaran/groebner/domain"
	"github.com/katalvlaran/groebner/monomial"
)

// Dict is the monomial → term mapping used to build elements from
// caller-supplied data. Keys are monomial.Monomial.Key values; the monomial
// itself travels inside the Term because slices cannot key a map.
type Dict[E any] map[string]Term[E]

// ToDict converts f into a Dict.
func ToDict[E any](f Element[E]) Dict[E] {
	d := make(Dict[E], len(f))
	for _, t := range f {
		d[t.M.Key()] = t
	}

	return d
}

// FromDict builds an element from d, dropping zero coefficients.
func (m *Module[E]) FromDict(d Dict[E]) Element[E] {
	out := make(Element[E], 0, len(d))
	for _, t := range d {
		if !domain.IsZero(m.field, t.C) {
			out = append(out, t)
		}
	}
	m.Sort(out)

	return out
}

// FromTerms builds an element from an arbitrary term list: coefficients of
// repeated monomials are summed, zeros are stripped, the result is sorted.
func (m *Module[E]) FromTerms(terms []Term[E]) Element[E] {
	d := make(Dict[E], len(terms))
	for _, t := range terms {
		k := t.M.Key()
		if prev, ok := d[k]; ok {
			d[k] = Term[E]{M: prev.M, C: m.field.Add(prev.C, t.C)}

			continue
		}
		d[k] = t
	}

	return m.FromDict(d)
}

// Strip removes zero-coefficient terms from a sorted element.
func (m *Module[E]) Strip(f Element[E]) Element[E] {
	out := make(Element[E], 0, len(f))
	for _, t := range f {
		if !domain.IsZero(m.field, t.C) {
			out = append(out, t)
		}
	}

	return out
}

// ToVector splits f into rank polynomial components. Component g holds the
// terms of f on generator g, re-attached to generator 0.
func (m *Module[E]) ToVector(f Element[E], rank int) []Element[E] {
	vec := make([]Element[E], rank)
	for _, t := range f {
		mono := monomial.Monomial{Gen: 0, Exp: t.M.Exp}
		vec[t.M.Gen] = append(vec[t.M.Gen], Term[E]{M: mono, C: t.C})
	}
	for g := range vec {
		m.Sort(vec[g])
	}

	return vec
}

// FromVector is the inverse of ToVector: component g is attached to
// generator g and the pieces are merged.
func (m *Module[E]) FromVector(vec []Element[E]) Element[E] {
	var terms []Term[E]
	for g, p := range vec {
		for _, t := range p {
			terms = append(terms, Term[E]{M: monomial.Monomial{Gen: g, Exp: t.M.Exp}, C: t.C})
		}
	}

	return m.FromTerms(terms)
}
