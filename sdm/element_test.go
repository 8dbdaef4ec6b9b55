package sdm_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/groebner/monomial"
	"github.com/katalvlaran/groebner/sdm"
)

func TestFromTerms_CombinesAndSorts(t *testing.T) {
	m := lexModule()
	f := elem(m,
		term(1, 0, 0, 1),  // y*f1
		term(2, 0, 1, 0),  // 2x*f1
		term(3, 0, 0, 1),  // 3y*f1 (merged)
		term(5, 0, 0, 0),  // 5*f1
		term(-5, 0, 0, 0), // cancels
	)
	assert.Equal(t, "2*x*f1 + 4*y*f1", show(f))
}

func TestAdd_IdentityAndDoubling(t *testing.T) {
	m := lexModule()
	f := elem(m, term(3, 0, 2, 0), term(-1, 1, 0, 1), term(7, 0, 0, 0))

	assert.True(t, m.Equal(f, m.Add(f, nil)), "f + 0 == f")
	assert.True(t, m.Equal(f, m.Add(nil, f)), "0 + f == f")

	double := m.Add(f, f)
	require.Len(t, double, len(f))
	for i := range f {
		assert.True(t, double[i].M.Equal(f[i].M))
		assert.Equal(t, 0, new(big.Rat).Mul(f[i].C, big.NewRat(2, 1)).Cmp(double[i].C))
	}
	assert.Empty(t, m.Sub(f, f), "f - f == 0")
}

func TestAdd_CommutativeAssociative(t *testing.T) {
	m := lexModule()
	f := elem(m, term(1, 0, 1, 1), term(2, 1, 0, 0))
	g := elem(m, term(-1, 0, 1, 1), term(4, 0, 0, 3))
	h := elem(m, term(5, 1, 0, 0), term(1, 0, 2, 0))

	assert.True(t, m.Equal(m.Add(f, g), m.Add(g, f)))
	assert.True(t, m.Equal(m.Add(m.Add(f, g), h), m.Add(f, m.Add(g, h))))
	assert.Equal(t, "7*f2 + x^2*f1 + 4*y^3*f1", show(m.Add(m.Add(f, g), h)))
}

func TestMulTerm_LeadingMonomial(t *testing.T) {
	m := sdm.NewModule[*big.Rat](monomial.TOP(monomial.GRevLex), qq)
	f := elem(m, term(2, 0, 1, 0), term(1, 1, 0, 1), term(-3, 0, 0, 0))
	x := []int{1, 2}

	got := m.MulTerm(f, x, big.NewRat(-2, 3))
	assert.True(t, sdm.LM(got).Equal(sdm.LM(f).Mul(x)))
	assert.Len(t, got, len(f))

	assert.Empty(t, m.MulTerm(f, x, qq.Zero()), "zero scalar annihilates")
	assert.Empty(t, m.MulTerm(nil, x, qq.One()), "zero element stays zero")
}

func TestLeadingData(t *testing.T) {
	m := lexModule()
	f := elem(m, term(3, 0, 0, 2), term(1, 0, 1, 0))

	assert.Equal(t, "0:1:0", sdm.LM(f).Key())
	assert.Equal(t, "3*y^2*f1", show(sdm.Element[*big.Rat]{sdm.LT(f[1:])}))
	assert.Equal(t, 0, m.LC(nil).Sign(), "LC of zero is the field zero")
	assert.Equal(t, 0, m.LC(f).Cmp(big.NewRat(1, 1)), "x > y^2 under lex")
	assert.Equal(t, 2, sdm.Degree(f))
	assert.Equal(t, 1, sdm.Ecart(f))

	assert.Panics(t, func() { sdm.LM[*big.Rat](nil) })
	assert.Panics(t, func() { sdm.LT[*big.Rat](nil) })
	assert.Panics(t, func() { sdm.Degree[*big.Rat](nil) })
}

func TestMonic(t *testing.T) {
	m := lexModule()
	f := elem(m, term(4, 0, 1, 0), term(2, 0, 0, 0))
	assert.Equal(t, "x*f1 + 1/2*f1", show(m.Monic(f)))
	assert.Empty(t, m.Monic(nil))
}

func TestDictRoundTrip(t *testing.T) {
	m := lexModule()
	f := elem(m, term(1, 1, 0, 0), term(-2, 0, 3, 1), term(5, 0, 0, 0))

	d := sdm.ToDict(f)
	assert.Len(t, d, 3)
	assert.True(t, m.Equal(f, m.FromDict(d)))

	d[monomial.New(0, 9, 9).Key()] = sdm.Term[*big.Rat]{M: monomial.New(0, 9, 9), C: qq.Zero()}
	assert.True(t, m.Equal(f, m.FromDict(d)), "zero entries are stripped")
}

func TestStrip(t *testing.T) {
	m := lexModule()
	raw := sdm.Element[*big.Rat]{term(1, 0, 1, 0), {M: monomial.New(0, 0, 1), C: qq.Zero()}, term(2, 0, 0, 0)}
	assert.Equal(t, "x*f1 + 2*f1", show(m.Strip(raw)))
}

func TestVectorRoundTrip(t *testing.T) {
	m := lexModule()
	f := elem(m, term(1, 0, 1, 0), term(-1, 1, 0, 1), term(2, 2, 0, 0))

	vec := m.ToVector(f, 3)
	require.Len(t, vec, 3)
	assert.Equal(t, "x*f1", show(vec[0]))
	assert.Equal(t, "-y*f1", show(vec[1]))
	assert.Equal(t, "2*f1", show(vec[2]))
	assert.True(t, m.Equal(f, m.FromVector(vec)))
}

func TestCombine(t *testing.T) {
	m := lexModule()
	gens := []sdm.Element[*big.Rat]{
		elem(m, term(1, 0, 1, 0)),                    // x*f1
		elem(m, term(1, 0, 0, 1), term(-1, 1, 0, 0)), // y*f1 - f2
	}
	// y·e1 - x·e2 = y*x*f1 - x*y*f1 + x*f2 = x*f2
	coeffs := elem(m, term(1, 0, 0, 1), term(-1, 1, 1, 0))
	assert.Equal(t, "x*f2", show(m.Combine(coeffs, gens)))
}

func TestFormat(t *testing.T) {
	m := lexModule()
	assert.Equal(t, "0", show(nil))
	f := elem(m, term(-1, 0, 1, 1), term(-3, 1, 0, 0), term(1, 0, 0, 0))
	assert.Equal(t, "-3*f2 - x*y*f1 + f1", show(f))
}
