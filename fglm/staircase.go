package fglm

import (
	"slices"

	"github.com/katalvlaran/groebner/monomial"
	"github.com/katalvlaran/groebner/sdm"
)

// shape describes the free module a basis lives in.
type shape struct {
	rank  int // generator components: 1 + the largest generator index seen
	nvars int
	lms   []monomial.Monomial
}

// shapeOf collects the leading monomials of the nonzero elements of F.
func shapeOf[E any](F []sdm.Element[E]) (shape, error) {
	sh := shape{nvars: -1}
	for _, f := range F {
		if len(f) == 0 {
			continue
		}
		sh.lms = append(sh.lms, sdm.LM(f))
		for _, t := range f {
			sh.rank = max(sh.rank, t.M.Gen+1)
			sh.nvars = len(t.M.Exp)
		}
	}
	if len(sh.lms) == 0 {
		return shape{}, ErrEmptyBasis
	}

	return sh, nil
}

// standard reports whether no leading monomial divides m.
func (sh shape) standard(m monomial.Monomial) bool {
	for _, lm := range sh.lms {
		if lm.Divides(m) {
			return false
		}
	}

	return true
}

// zeroDimensional reports whether every component either lies entirely in
// the leading module (1·f_g is a leading monomial) or carries a pure power
// of every variable among its leading monomials.
func (sh shape) zeroDimensional() bool {
	for g := 0; g < sh.rank; g++ {
		if !sh.standard(monomial.Unit(g, sh.nvars)) {
			continue
		}
		covered := make([]bool, sh.nvars)
		for _, lm := range sh.lms {
			if lm.Gen != g {
				continue
			}
			if k, ok := lm.IsPurePower(); ok {
				covered[k] = true
			}
		}
		if slices.Contains(covered, false) {
			return false
		}
	}

	return true
}

// enumerate walks the staircase from the unit monomials upward, always
// expanding the least pending candidate, and returns it sorted ascending.
// limit > 0 aborts with ErrDimensionLimit once more monomials are found.
func (sh shape) enumerate(o monomial.Order, limit int) ([]monomial.Monomial, error) {
	seen := make(map[string]bool)
	var pending []monomial.Monomial
	push := func(m monomial.Monomial) {
		if seen[m.Key()] || !sh.standard(m) {
			return
		}
		seen[m.Key()] = true
		pending = append(pending, m)
	}
	for g := 0; g < sh.rank; g++ {
		push(monomial.Unit(g, sh.nvars))
	}

	var basis []monomial.Monomial
	for len(pending) > 0 {
		// descending, so the least candidate sits at the end
		slices.SortFunc(pending, func(a, b monomial.Monomial) int { return o.Compare(b, a) })
		t := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		basis = append(basis, t)
		if limit > 0 && len(basis) > limit {
			return nil, ErrDimensionLimit
		}
		for k := 0; k < sh.nvars; k++ {
			push(t.IncrVar(k))
		}
	}
	slices.SortFunc(basis, o.Compare)

	return basis, nil
}

// Staircase returns the standard monomials of F under the order of mod:
// the monomials x^a·f_g not divisible by any leading monomial of F, sorted
// ascending. They form a basis of the quotient of the free module by the
// submodule F generates, provided F is a standard basis under that order.
//
// Errors:
//   - ErrNilModule, ErrNotGlobal, ErrEmptyBasis, ErrNotZeroDimensional.
func Staircase[E any](mod *sdm.Module[E], F []sdm.Element[E]) ([]monomial.Monomial, error) {
	basis, _, err := staircase(mod, F, 0)
	if err != nil {
		return nil, fglmErrorf(opStaircase, err)
	}

	return basis, nil
}

// Dimension returns the dimension of the quotient over the coefficient field.
func Dimension[E any](mod *sdm.Module[E], F []sdm.Element[E]) (int, error) {
	basis, err := Staircase(mod, F)

	return len(basis), err
}

func staircase[E any](mod *sdm.Module[E], F []sdm.Element[E], limit int) ([]monomial.Monomial, shape, error) {
	if mod == nil {
		return nil, shape{}, ErrNilModule
	}
	if !mod.Order().Global() {
		return nil, shape{}, ErrNotGlobal
	}
	sh, err := shapeOf(F)
	if err != nil {
		return nil, shape{}, err
	}
	if !sh.zeroDimensional() {
		return nil, shape{}, ErrNotZeroDimensional
	}
	basis, err := sh.enumerate(mod.Order(), limit)
	if err != nil {
		return nil, shape{}, err
	}

	return basis, sh, nil
}
