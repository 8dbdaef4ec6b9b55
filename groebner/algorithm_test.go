package groebner_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/groebner/groebner"
	"github.com/katalvlaran/groebner/sdm"
)

func TestNewAlgorithm_Errors(t *testing.T) {
	_, err := groebner.NewAlgorithm[*big.Rat](nil, nil)
	assert.ErrorIs(t, err, groebner.ErrNilModule)

	_, err = groebner.NewAlgorithm(lexModule(), nil)
	assert.ErrorIs(t, err, groebner.ErrNilNormalForm)
}

func TestUpdate_ChainCriterion(t *testing.T) {
	m := lexModule()
	alg, err := groebner.NewAlgorithm(m, m.Buchberger())
	require.NoError(t, err)

	require.True(t, alg.Update(elem(m, term(1, 0, 2, 0)), nil, 2)) // x^2
	require.True(t, alg.Update(elem(m, term(1, 0, 0, 2)), nil, 2)) // y^2
	require.Equal(t, 1, alg.Pending(), "pair (x^2, y^2) with lcm x^2*y^2")

	// x*y: both lcm(x*y, x^2) and lcm(x*y, y^2) properly divide x^2*y^2.
	require.True(t, alg.Update(elem(m, term(1, 0, 1, 1)), nil, 2))
	assert.Equal(t, 1, alg.Stats().ChainPruned)
	assert.Equal(t, 2, alg.Pending())
	assert.Equal(t, []int{2, 2, 2}, alg.Sugars())
	assert.Len(t, alg.Basis(), 3)
}

func TestUpdate_GeneratorsDoNotMix(t *testing.T) {
	m := lexModule()
	alg, err := groebner.NewAlgorithm(m, m.Buchberger())
	require.NoError(t, err)

	alg.Update(elem(m, term(1, 0, 2, 0)), nil, 2) // x^2*f1
	alg.Update(elem(m, term(1, 0, 0, 2)), nil, 2) // y^2*f1
	alg.Update(elem(m, term(1, 1, 1, 1)), nil, 2) // x*y*f2

	assert.Zero(t, alg.Stats().ChainPruned)
	assert.Equal(t, 1, alg.Pending())
}

func TestUpdate_ZeroIgnored(t *testing.T) {
	m := lexModule()
	alg, err := groebner.NewAlgorithm(m, m.Mora())
	require.NoError(t, err)

	assert.False(t, alg.Update(nil, nil, 0))
	assert.Empty(t, alg.Basis())
	assert.Zero(t, alg.Pending())
}

func TestAlgorithm_StepByStep(t *testing.T) {
	m := lexModule()
	alg, err := groebner.NewAlgorithm(m, m.Buchberger(), groebner.WithMonic(false))
	require.NoError(t, err)

	require.NoError(t, alg.AddGenerators(hyperbola(m)))
	assert.Equal(t, 1, alg.Pending())
	require.NoError(t, alg.Run())
	assert.Zero(t, alg.Pending())

	// the working basis keeps every element; Result drops x^2 - y and x*y - 1
	assert.Len(t, alg.Basis(), 4)
	assert.Equal(t, []int{2, 2, 3, 4}, alg.Sugars())
	assert.Equal(t, []string{"x*f1 - y^2*f1", "y^3*f1 - f1"}, showAll(alg.Result().Basis))
}

func TestAlgorithm_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	m := lexModule()

	_, err := groebner.Compute(m, hyperbola(m), groebner.WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.Equal(t, 2, logs.FilterMessage("generator added").Len())
	assert.Equal(t, 4, logs.FilterMessage("pair").Len())
	assert.Equal(t, 2, logs.FilterMessage("basis element added").Len())
	require.Equal(t, 1, logs.FilterMessage("minimized").Len())
	fields := logs.FilterMessage("minimized").All()[0].ContextMap()
	assert.EqualValues(t, 4, fields["working"])
	assert.EqualValues(t, 2, fields["minimal"])
}

func TestAlgorithm_ExtendedTracksCoefficients(t *testing.T) {
	m := lexModule()
	G := hyperbola(m)
	alg, err := groebner.NewAlgorithm(m, m.Mora(), groebner.WithExtended())
	require.NoError(t, err)
	require.NoError(t, alg.AddGenerators(G))
	require.NoError(t, alg.Run())

	res := alg.Result()
	require.Len(t, res.Coefficients, 2)
	for i := range res.Basis {
		assert.True(t, m.Equal(res.Basis[i], m.Combine(res.Coefficients[i], G)))
	}
	// x - y^2 = y*(x^2 - y) - x*(x*y - 1)
	assert.Equal(t, "-x*f2 + y*f1", show(res.Coefficients[0]))
}

func TestAlgorithm_AddGeneratorsTwice(t *testing.T) {
	m := lexModule()
	G := hyperbola(m)
	alg, err := groebner.NewAlgorithm(m, m.Buchberger(), groebner.WithExtended())
	require.NoError(t, err)
	require.NoError(t, alg.AddGenerators(G[:1]))
	require.NoError(t, alg.AddGenerators([]sdm.Element[*big.Rat]{nil}))
	require.NoError(t, alg.AddGenerators(G[1:]))
	require.NoError(t, alg.Run())

	// the second generator is f3: a zero element took f2
	gens := []sdm.Element[*big.Rat]{G[0], nil, G[1]}
	res := alg.Result()
	require.Len(t, res.Coefficients, len(res.Basis))
	for i := range res.Basis {
		assert.True(t, m.Equal(res.Basis[i], m.Combine(res.Coefficients[i], gens)), show(res.Coefficients[i]))
	}
	assert.Equal(t, "-x*f3 + y*f1", show(res.Coefficients[0]))
}
