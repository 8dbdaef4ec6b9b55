// Package system reads and writes polynomial systems as YAML documents and
// turns them into sdm elements over a chosen coefficient field.
//
// A document looks like:
//
//	variables: [x, y]
//	order: pot(lex)
//	field: QQ
//	target: grevlex        # only read by order conversion
//	generators:
//	  - terms:
//	      - {coeff: "1", exp: [2, 0]}
//	      - {coeff: "-1", exp: [0, 1]}
//	  - terms:
//	      - {coeff: "1", exp: [1, 1], gen: 1}
//	      - {coeff: "-1", exp: [0, 0], gen: 2}
//
// Generators are numbered from 1 as in the printed form f1, f2, ...; an
// omitted gen means f1. There is no expression parser: terms are explicit.
package system

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/holiman/uint256"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/groebner/domain"
	"github.com/katalvlaran/groebner/monomial"
	"github.com/katalvlaran/groebner/sdm"
)

var (
	// ErrUnknownOrder is returned for an order name ParseOrder rejects.
	ErrUnknownOrder = errors.New("system: unknown monomial order")

	// ErrUnknownField is returned for a field other than QQ, GF(p), BN254.
	ErrUnknownField = errors.New("system: unknown coefficient field")

	// ErrBadTerm is returned for a term with a malformed coefficient, a
	// wrong number of exponents or a generator index below 1.
	ErrBadTerm = errors.New("system: malformed term")
)

// Description is the YAML form of a polynomial system.
type Description struct {
	Variables  []string    `yaml:"variables"`
	Order      string      `yaml:"order"`
	Field      string      `yaml:"field"`
	Target     string      `yaml:"target,omitempty"`
	Generators []Generator `yaml:"generators"`
}

// Generator is one module element as an explicit term list.
type Generator struct {
	Terms []Term `yaml:"terms"`
}

// Term is c·x^exp·f_gen with a 1-based generator index; a nil Gen means f1.
type Term struct {
	Coeff string `yaml:"coeff"`
	Exp   []int  `yaml:"exp,flow"`
	Gen   *int   `yaml:"gen,omitempty"`
}

// Load reads a description from a YAML file.
func Load(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a description, rejecting unknown keys.
func Decode(r io.Reader) (*Description, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var d Description
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to parse system YAML: %w", err)
	}

	return &d, nil
}

// Encode writes d as YAML.
func (d *Description) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}

	return enc.Close()
}

// ModuleOrder resolves the order field; an empty name means pot(grevlex).
func (d *Description) ModuleOrder() (monomial.Order, error) {
	return parseOrder(d.Order, "pot(grevlex)")
}

// TargetOrder resolves the target field; an empty name means pot(lex).
func (d *Description) TargetOrder() (monomial.Order, error) {
	return parseOrder(d.Target, "pot(lex)")
}

func parseOrder(name, fallback string) (monomial.Order, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = fallback
	}
	o, ok := monomial.ParseOrder(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownOrder)
	}

	return o, nil
}

// FieldKind enumerates the supported coefficient fields.
type FieldKind int

const (
	// Rational is QQ.
	Rational FieldKind = iota
	// Prime is GF(p).
	Prime
	// Curve is the BN254 scalar field.
	Curve
)

// FieldSpec is a parsed field name; Modulus is set for Prime only.
type FieldSpec struct {
	Kind    FieldKind
	Modulus *uint256.Int
}

// ParseField accepts "QQ" (also the empty string), "GF(p)" with decimal p
// and "BN254", case-insensitively.
func ParseField(name string) (FieldSpec, error) {
	s := strings.ToUpper(strings.TrimSpace(name))
	switch {
	case s == "" || s == "QQ":
		return FieldSpec{Kind: Rational}, nil
	case s == "BN254":
		return FieldSpec{Kind: Curve}, nil
	case strings.HasPrefix(s, "GF(") && strings.HasSuffix(s, ")"):
		p, err := uint256.FromDecimal(strings.TrimSpace(s[3 : len(s)-1]))
		if err != nil {
			return FieldSpec{}, fmt.Errorf("%q: %w", name, ErrUnknownField)
		}

		return FieldSpec{Kind: Prime, Modulus: p}, nil
	default:
		return FieldSpec{}, fmt.Errorf("%q: %w", name, ErrUnknownField)
	}
}

// Build resolves the order and converts every generator into an element
// over k. Terms with equal monomials are summed and zero terms dropped.
func Build[E any](d *Description, k domain.FieldCodec[E]) (*sdm.Module[E], []sdm.Element[E], error) {
	o, err := d.ModuleOrder()
	if err != nil {
		return nil, nil, err
	}
	mod := sdm.NewModule[E](o, k)
	n := len(d.Variables)
	G := make([]sdm.Element[E], len(d.Generators))
	for i, g := range d.Generators {
		terms := make([]sdm.Term[E], 0, len(g.Terms))
		for j, t := range g.Terms {
			term, err := buildTerm[E](k, t, n)
			if err != nil {
				return nil, nil, fmt.Errorf("generator %d, term %d: %w", i+1, j+1, err)
			}
			terms = append(terms, term)
		}
		G[i] = mod.FromTerms(terms)
	}

	return mod, G, nil
}

func buildTerm[E any](k domain.Codec[E], t Term, nvars int) (sdm.Term[E], error) {
	if len(t.Exp) != nvars {
		return sdm.Term[E]{}, fmt.Errorf("%d exponents for %d variables: %w", len(t.Exp), nvars, ErrBadTerm)
	}
	for _, e := range t.Exp {
		if e < 0 {
			return sdm.Term[E]{}, fmt.Errorf("negative exponent %d: %w", e, ErrBadTerm)
		}
	}
	gen := 1
	if t.Gen != nil {
		gen = *t.Gen
	}
	if gen < 1 {
		return sdm.Term[E]{}, fmt.Errorf("generator f%d: %w", gen, ErrBadTerm)
	}
	c, err := k.Parse(t.Coeff)
	if err != nil {
		return sdm.Term[E]{}, fmt.Errorf("%w: %w", ErrBadTerm, err)
	}

	return sdm.Term[E]{M: monomial.New(gen-1, t.Exp...), C: c}, nil
}

// Describe is the inverse of Build: it renders F with the given header
// fields (variables, order, field) copied from base.
func Describe[E any](base *Description, F []sdm.Element[E], k domain.Codec[E]) *Description {
	out := &Description{
		Variables:  base.Variables,
		Order:      base.Order,
		Field:      base.Field,
		Generators: make([]Generator, len(F)),
	}
	for i, f := range F {
		terms := make([]Term, len(f))
		for j, t := range f {
			term := Term{Coeff: k.Format(t.C), Exp: t.M.Exp}
			if t.M.Gen > 0 {
				gen := t.M.Gen + 1
				term.Gen = &gen
			}
			terms[j] = term
		}
		out.Generators[i] = Generator{Terms: terms}
	}

	return out
}

// Render prints one element per line in the form "x^2*f1 - y*f1".
func Render[E any](w io.Writer, F []sdm.Element[E], k domain.Codec[E], vars []string) error {
	for _, f := range F {
		if _, err := fmt.Fprintln(w, sdm.Format(f, k, vars)); err != nil {
			return err
		}
	}

	return nil
}
