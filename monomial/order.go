package monomial

import "strings"

// ExpOrder is a total order on exponent vectors of one fixed length.
// Compare returns -1, 0 or +1 like cmp.Compare.
type ExpOrder interface {
	Compare(a, b []int) int

	// Global reports whether the order is a well-order, i.e. 1 < x_i for
	// every variable. Buchberger reduction and FGLM require it; Mora
	// reduction works for any order.
	Global() bool

	String() string
}

// Order is a total order on module monomials compatible with multiplication
// by polynomial monomials. It is the comparator capability passed through the
// whole engine; orders carry no state and are safe to share.
type Order interface {
	Compare(a, b Monomial) int
	Global() bool
	String() string
}

type lexOrder struct{}

func (lexOrder) Compare(a, b []int) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}

			return -1
		}
	}

	return 0
}

func (lexOrder) Global() bool   { return true }
func (lexOrder) String() string { return "lex" }

type grlexOrder struct{}

func (grlexOrder) Compare(a, b []int) int {
	if c := compareDeg(a, b); c != 0 {
		return c
	}

	return lexOrder{}.Compare(a, b)
}

func (grlexOrder) Global() bool   { return true }
func (grlexOrder) String() string { return "grlex" }

type grevlexOrder struct{}

// Compare breaks degree ties by the LAST differing exponent: the monomial
// with the smaller exponent there is the larger one.
func (grevlexOrder) Compare(a, b []int) int {
	if c := compareDeg(a, b); c != 0 {
		return c
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return 1
			}

			return -1
		}
	}

	return 0
}

func (grevlexOrder) Global() bool   { return true }
func (grevlexOrder) String() string { return "grevlex" }

// inverseOrder reverses a base order; a global base yields a local order.
type inverseOrder struct{ base ExpOrder }

func (o inverseOrder) Compare(a, b []int) int { return -o.base.Compare(a, b) }
func (o inverseOrder) Global() bool           { return !o.base.Global() }
func (o inverseOrder) String() string         { return "i" + o.base.String() }

// Predefined exponent orders.
var (
	Lex      ExpOrder = lexOrder{}
	GrLex    ExpOrder = grlexOrder{}
	GRevLex  ExpOrder = grevlexOrder{}
	ILex     ExpOrder = inverseOrder{base: lexOrder{}}
	IGrLex   ExpOrder = inverseOrder{base: grlexOrder{}}
	IGRevLex ExpOrder = inverseOrder{base: grevlexOrder{}}
)

// Inverse returns the reversal of base. Inverting a global order gives a
// local one, the kind Mora's normal form exists for.
func Inverse(base ExpOrder) ExpOrder { return inverseOrder{base: base} }

// ExpOrderByName resolves "lex", "grlex", "grevlex", "ilex", "igrlex" and
// "igrevlex".
func ExpOrderByName(name string) (ExpOrder, bool) {
	for _, o := range []ExpOrder{Lex, GrLex, GRevLex, ILex, IGrLex, IGRevLex} {
		if o.String() == name {
			return o, true
		}
	}

	return nil, false
}

type potOrder struct{ base ExpOrder }

func (o potOrder) Compare(a, b Monomial) int {
	if a.Gen != b.Gen {
		if a.Gen > b.Gen {
			return 1
		}

		return -1
	}

	return o.base.Compare(a.Exp, b.Exp)
}

func (o potOrder) Global() bool   { return o.base.Global() }
func (o potOrder) String() string { return "pot(" + o.base.String() + ")" }

type topOrder struct{ base ExpOrder }

func (o topOrder) Compare(a, b Monomial) int {
	if c := o.base.Compare(a.Exp, b.Exp); c != 0 {
		return c
	}
	if a.Gen != b.Gen {
		if a.Gen > b.Gen {
			return 1
		}

		return -1
	}

	return 0
}

func (o topOrder) Global() bool   { return o.base.Global() }
func (o topOrder) String() string { return "top(" + o.base.String() + ")" }

// POT is "position over term": the generator index decides first (a larger
// index is larger), the base order breaks ties. POT(Lex) coincides with
// lexicographic comparison of the flat (g, e1, ..., en) tuple.
func POT(base ExpOrder) Order { return potOrder{base: base} }

// TOP is "term over position": the base order decides first, the generator
// index breaks ties.
func TOP(base ExpOrder) Order { return topOrder{base: base} }

func compareDeg(a, b []int) int {
	da, db := 0, 0
	for i := range a {
		da += a[i]
		db += b[i]
	}
	switch {
	case da > db:
		return 1
	case da < db:
		return -1
	default:
		return 0
	}
}

// ParseOrder resolves a module order by name. A bare exponent order name
// ("grevlex") means POT over it; "top(NAME)" and "pot(NAME)" select the
// composition explicitly, matching the String form of the orders.
func ParseOrder(name string) (Order, bool) {
	wrap := POT
	switch {
	case strings.HasPrefix(name, "top(") && strings.HasSuffix(name, ")"):
		wrap, name = TOP, name[4:len(name)-1]
	case strings.HasPrefix(name, "pot(") && strings.HasSuffix(name, ")"):
		name = name[4 : len(name)-1]
	}
	base, ok := ExpOrderByName(name)
	if !ok {
		return nil, false
	}

	return wrap(base), true
}
