package monomial

import (
	"slices"
	"strconv"
	"strings"
)

// Monomial is the module monomial x^Exp · f_Gen.
//
// Exp has one entry per ring variable; its length (the "level") is constant
// for a computation. Monomials are values: every operation below returns a
// fresh Exp slice and never mutates its arguments.
type Monomial struct {
	Gen int   // generator index, >= 0
	Exp []int // exponent vector, entries >= 0
}

// New returns x^exp · f_gen, copying exp.
func New(gen int, exp ...int) Monomial {
	return Monomial{Gen: gen, Exp: slices.Clone(exp)}
}

// Unit returns 1 · f_gen in a ring with n variables.
func Unit(gen, n int) Monomial {
	return Monomial{Gen: gen, Exp: make([]int, n)}
}

// Level returns the number of ring variables.
func (m Monomial) Level() int { return len(m.Exp) }

// Deg returns the total degree, the generator index excluded.
func (m Monomial) Deg() int {
	d := 0
	for _, e := range m.Exp {
		d += e
	}

	return d
}

// Mul multiplies m by the polynomial monomial x^exp; the generator is kept.
func (m Monomial) Mul(exp []int) Monomial {
	out := make([]int, len(m.Exp))
	for i := range m.Exp {
		out[i] = m.Exp[i] + exp[i]
	}

	return Monomial{Gen: m.Gen, Exp: out}
}

// IncrVar returns x_k · m.
func (m Monomial) IncrVar(k int) Monomial {
	out := slices.Clone(m.Exp)
	out[k]++

	return Monomial{Gen: m.Gen, Exp: out}
}

// Divides reports whether m divides n: same generator and m.Exp <= n.Exp
// componentwise.
func (m Monomial) Divides(n Monomial) bool {
	if m.Gen != n.Gen {
		return false
	}
	for i := range m.Exp {
		if m.Exp[i] > n.Exp[i] {
			return false
		}
	}

	return true
}

// Equal reports structural equality.
func (m Monomial) Equal(n Monomial) bool {
	return m.Gen == n.Gen && slices.Equal(m.Exp, n.Exp)
}

// IsPurePower reports whether m is x_k^e · f_g for some e > 0, returning k.
func (m Monomial) IsPurePower() (int, bool) {
	k := -1
	for i, e := range m.Exp {
		if e == 0 {
			continue
		}
		if k >= 0 {
			return -1, false
		}
		k = i
	}

	return k, k >= 0
}

// Key is a compact string usable as a map key; distinct monomials of the
// same level have distinct keys.
func (m Monomial) Key() string {
	buf := make([]byte, 0, 4*(len(m.Exp)+1))
	buf = strconv.AppendInt(buf, int64(m.Gen), 10)
	for _, e := range m.Exp {
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, int64(e), 10)
	}

	return string(buf)
}

// String renders m as "x0^2*x1*f1" with 1-based generator names.
func (m Monomial) String() string {
	return m.Format(nil)
}

// Format renders m with the given variable names; missing names fall back to
// "x<i>". Generators are printed 1-based (f1, f2, ...).
func (m Monomial) Format(vars []string) string {
	var sb strings.Builder
	for i, e := range m.Exp {
		if e == 0 {
			continue
		}
		if i < len(vars) {
			sb.WriteString(vars[i])
		} else {
			sb.WriteString("x")
			sb.WriteString(strconv.Itoa(i))
		}
		if e > 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(e))
		}
		sb.WriteByte('*')
	}
	sb.WriteString("f")
	sb.WriteString(strconv.Itoa(m.Gen + 1))

	return sb.String()
}

// LCM returns the least common multiple of the exponent parts of a and b.
// Both must share the generator (a precondition; see Divides); the generator
// of a is kept.
func LCM(a, b Monomial) Monomial {
	out := make([]int, len(a.Exp))
	for i := range a.Exp {
		out[i] = max(a.Exp[i], b.Exp[i])
	}

	return Monomial{Gen: a.Gen, Exp: out}
}

// Quo returns the polynomial monomial x^(a-b), assuming b divides a.
func Quo(a, b Monomial) []int {
	out := make([]int, len(a.Exp))
	for i := range a.Exp {
		out[i] = a.Exp[i] - b.Exp[i]
	}

	return out
}

// ExpLCM returns the componentwise max of two exponent vectors.
func ExpLCM(a, b []int) []int {
	out := make([]int, len(a))
	for i := range a {
		out[i] = max(a[i], b[i])
	}

	return out
}

// ExpQuo returns a - b componentwise, assuming b <= a.
func ExpQuo(a, b []int) []int {
	out := make([]int, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out
}
