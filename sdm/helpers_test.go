package sdm_test

import (
	"math/big"

	"github.com/katalvlaran/groebner/domain"
	"github.com/katalvlaran/groebner/monomial"
	"github.com/katalvlaran/groebner/sdm"
)

// qq is the coefficient field used throughout the tests.
var qq = domain.Rationals{}

// term builds a rational term c·x^exp·f_gen.
func term(c int64, gen int, exp ...int) sdm.Term[*big.Rat] {
	return sdm.Term[*big.Rat]{M: monomial.New(gen, exp...), C: big.NewRat(c, 1)}
}

// elem normalizes a hand-written term list under m.
func elem(m *sdm.Module[*big.Rat], terms ...sdm.Term[*big.Rat]) sdm.Element[*big.Rat] {
	return m.FromTerms(terms)
}

// lexModule is QQ[x, y] (or more variables) with POT over lex.
func lexModule() *sdm.Module[*big.Rat] {
	return sdm.NewModule[*big.Rat](monomial.POT(monomial.Lex), qq)
}

func show(f sdm.Element[*big.Rat]) string {
	return sdm.Format[*big.Rat](f, qq, []string{"x", "y", "z"})
}
