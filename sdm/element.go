package sdm

import (
	"slices"
	"strings"

	"github.com/katalvlaran/groebner/domain"
	"github.com/katalvlaran/groebner/monomial"
)

// Panic messages for precondition violations (programmer errors).
const (
	panicEmptyLM     = "sdm: leading monomial of the zero element"
	panicEmptyDegree = "sdm: degree of the zero element"
)

// Term is a module monomial with a nonzero coefficient.
type Term[E any] struct {
	M monomial.Monomial
	C E
}

// Element is a distributed module element: terms strictly decreasing under
// the module order, pairwise distinct monomials, no zero coefficient. The
// nil/empty slice is the zero element.
//
// Elements are values. Every operation builds a new slice; callers may keep
// and share elements freely.
type Element[E any] []Term[E]

// Module binds a monomial order and a coefficient field, the two external
// collaborators of every operation on elements. A Module is stateless and
// may be shared.
type Module[E any] struct {
	order monomial.Order
	field domain.Field[E]
}

// NewModule returns the operation context for the given order and field.
func NewModule[E any](o monomial.Order, k domain.Field[E]) *Module[E] {
	return &Module[E]{order: o, field: k}
}

// Order returns the module order.
func (m *Module[E]) Order() monomial.Order { return m.order }

// Field returns the coefficient field.
func (m *Module[E]) Field() domain.Field[E] { return m.field }

// WithOrder returns a context sharing the field but ranking monomials by o.
func (m *Module[E]) WithOrder(o monomial.Order) *Module[E] {
	return &Module[E]{order: o, field: m.field}
}

// IsZero reports whether f is the zero element.
func IsZero[E any](f Element[E]) bool { return len(f) == 0 }

// LM returns the leading monomial. f must be nonzero.
func LM[E any](f Element[E]) monomial.Monomial {
	if len(f) == 0 {
		panic(panicEmptyLM)
	}

	return f[0].M
}

// LT returns the leading term. f must be nonzero.
func LT[E any](f Element[E]) Term[E] {
	if len(f) == 0 {
		panic(panicEmptyLM)
	}

	return f[0]
}

// LC returns the leading coefficient, or the field zero for the zero element.
func (m *Module[E]) LC(f Element[E]) E {
	if len(f) == 0 {
		return m.field.Zero()
	}

	return f[0].C
}

// Degree returns the maximal total degree over the terms of f. f must be
// nonzero.
func Degree[E any](f Element[E]) int {
	if len(f) == 0 {
		panic(panicEmptyDegree)
	}
	d := f[0].M.Deg()
	for _, t := range f[1:] {
		d = max(d, t.M.Deg())
	}

	return d
}

// Ecart returns Degree(f) - deg(LM(f)); zero for every element under a
// degree-compatible global order. f must be nonzero.
func Ecart[E any](f Element[E]) int {
	return Degree(f) - LM(f).Deg()
}

// Add returns f + g: a merge of two descending sequences in which equal
// monomials combine and vanishing sums are dropped.
func (m *Module[E]) Add(f, g Element[E]) Element[E] {
	if len(f) == 0 {
		return slices.Clone(g)
	}
	if len(g) == 0 {
		return slices.Clone(f)
	}
	out := make(Element[E], 0, len(f)+len(g))
	i, j := 0, 0
	for i < len(f) && j < len(g) {
		switch c := m.order.Compare(f[i].M, g[j].M); {
		case c > 0:
			out = append(out, f[i])
			i++
		case c < 0:
			out = append(out, g[j])
			j++
		default:
			s := m.field.Add(f[i].C, g[j].C)
			if !domain.IsZero(m.field, s) {
				out = append(out, Term[E]{M: f[i].M, C: s})
			}
			i++
			j++
		}
	}
	out = append(out, f[i:]...)
	out = append(out, g[j:]...)

	return out
}

// Neg returns -f.
func (m *Module[E]) Neg(f Element[E]) Element[E] {
	return m.Scale(f, domain.Neg(m.field, m.field.One()))
}

// Sub returns f - g.
func (m *Module[E]) Sub(f, g Element[E]) Element[E] {
	return m.Add(f, m.Neg(g))
}

// Scale returns c·f.
func (m *Module[E]) Scale(f Element[E], c E) Element[E] {
	return m.MulTerm(f, nil, c)
}

// MulTerm returns (x^exp · c)·f. A nil exp stands for the monomial 1.
//
// Behavior highlights:
//   - Zero f or zero c yields the zero element.
//   - Multiplication by the field one skips the coefficient product.
//   - No re-sort: a monomial order is compatible with multiplication, so the
//     strict descending order of f survives.
func (m *Module[E]) MulTerm(f Element[E], exp []int, c E) Element[E] {
	if len(f) == 0 || domain.IsZero(m.field, c) {
		return nil
	}
	unit := m.field.IsOne(c)
	out := make(Element[E], len(f))
	for i, t := range f {
		mono := t.M
		if exp != nil {
			mono = mono.Mul(exp)
		}
		coeff := t.C
		if !unit {
			coeff = m.field.Mul(coeff, c)
		}
		out[i] = Term[E]{M: mono, C: coeff}
	}

	return out
}

// Monic divides f by its leading coefficient; the zero element stays zero.
func (m *Module[E]) Monic(f Element[E]) Element[E] {
	if len(f) == 0 || m.field.IsOne(f[0].C) {
		return slices.Clone(f)
	}

	return m.Scale(f, domain.Inv(m.field, f[0].C))
}

// Equal reports term-by-term equality of two normalized elements.
func (m *Module[E]) Equal(f, g Element[E]) bool {
	return slices.EqualFunc(f, g, func(a, b Term[E]) bool {
		return a.M.Equal(b.M) && m.field.Equal(a.C, b.C)
	})
}

// Sort orders terms descending in place. Callers that assemble terms by hand
// use FromTerms instead; Sort is for re-ranking a normalized element under a
// different order.
func (m *Module[E]) Sort(f Element[E]) {
	slices.SortFunc(f, func(a, b Term[E]) int { return m.order.Compare(b.M, a.M) })
}

// Format renders f as e.g. "x*y*f1 - 2*f2"; the zero element renders "0".
func Format[E any](f Element[E], c domain.Codec[E], vars []string) string {
	if len(f) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range f {
		coeff := c.Format(t.C)
		mono := t.M.Format(vars)
		var s string
		switch coeff {
		case "1":
			s = mono
		case "-1":
			s = "-" + mono
		default:
			s = coeff + "*" + mono
		}
		switch {
		case i == 0:
			sb.WriteString(s)
		case strings.HasPrefix(s, "-"):
			sb.WriteString(" - ")
			sb.WriteString(s[1:])
		default:
			sb.WriteString(" + ")
			sb.WriteString(s)
		}
	}

	return sb.String()
}

// Combine evaluates a coefficient vector against generators: a term
// c·x^a·e_k of coeffs contributes c·x^a·gens[k]. It turns the phantom
// coefficients of an extended computation back into module elements.
func (m *Module[E]) Combine(coeffs Element[E], gens []Element[E]) Element[E] {
	var acc Element[E]
	for _, t := range coeffs {
		acc = m.Add(acc, m.MulTerm(gens[t.M.Gen], t.M.Exp, t.C))
	}

	return acc
}
