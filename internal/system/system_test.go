package system_test

import (
	"bytes"
	"math/big"
	"path/filepath"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/groebner/domain"
	"github.com/katalvlaran/groebner/internal/system"
	"github.com/katalvlaran/groebner/sdm"
)

var qq = domain.Rationals{}

func load(t *testing.T, name string) *system.Description {
	t.Helper()
	d, err := system.Load(filepath.Join("testdata", name))
	require.NoError(t, err)

	return d
}

func render[E any](t *testing.T, F []sdm.Element[E], k domain.Codec[E], vars []string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, system.Render[E](&buf, F, k, vars))

	return buf.String()
}

func TestLoad_Hyperbola(t *testing.T) {
	d := load(t, "hyperbola.yaml")
	assert.Equal(t, []string{"x", "y"}, d.Variables)

	o, err := d.ModuleOrder()
	require.NoError(t, err)
	assert.Equal(t, "pot(grevlex)", o.String())
	target, err := d.TargetOrder()
	require.NoError(t, err)
	assert.Equal(t, "pot(lex)", target.String())

	mod, G, err := system.Build[*big.Rat](d, qq)
	require.NoError(t, err)
	assert.Equal(t, o, mod.Order())
	assert.Equal(t, "x^2*f1 - y*f1\nx*y*f1 - f1\n", render[*big.Rat](t, G, qq, d.Variables))
}

func TestLoad_Module(t *testing.T) {
	d := load(t, "module.yaml")
	_, G, err := system.Build[*big.Rat](d, qq)
	require.NoError(t, err)
	assert.Equal(t, "x*f1\n-f2 + y*f1\n", render[*big.Rat](t, G, qq, d.Variables))
}

func TestLoad_PrimeField(t *testing.T) {
	d := load(t, "katsura3_gf.yaml")
	spec, err := system.ParseField(d.Field)
	require.NoError(t, err)
	require.Equal(t, system.Prime, spec.Kind)
	assert.Equal(t, uint256.NewInt(32003), spec.Modulus)

	gf, err := domain.NewPrimeField(spec.Modulus)
	require.NoError(t, err)
	_, G, err := system.Build[uint256.Int](d, gf)
	require.NoError(t, err)
	require.Len(t, G, 3)
	assert.Equal(t, "x*f1 + 2*y*f1 + 2*z*f1 + 32002*f1", sdm.Format[uint256.Int](G[0], gf, d.Variables))
}

func TestBuild_BadTerms(t *testing.T) {
	_, _, err := system.Build[*big.Rat](load(t, "bad_term.yaml"), qq)
	assert.ErrorIs(t, err, system.ErrBadTerm)

	minusTwo, zero := -2, 0
	cases := map[string]system.Term{
		"coefficient":    {Coeff: "one", Exp: []int{1, 0}},
		"negative exp":   {Coeff: "1", Exp: []int{-1, 0}},
		"generator":      {Coeff: "1", Exp: []int{1, 0}, Gen: &minusTwo},
		"explicit gen 0": {Coeff: "1", Exp: []int{1, 0}, Gen: &zero},
	}
	for name, term := range cases {
		d := &system.Description{
			Variables:  []string{"x", "y"},
			Generators: []system.Generator{{Terms: []system.Term{term}}},
		}
		_, _, err := system.Build[*big.Rat](d, qq)
		assert.ErrorIs(t, err, system.ErrBadTerm, name)
	}

	d := &system.Description{
		Variables:  []string{"x"},
		Generators: []system.Generator{{Terms: []system.Term{{Coeff: "1/0", Exp: []int{1}}}}},
	}
	_, _, err = system.Build[*big.Rat](d, qq)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestBuild_SumsAndCancels(t *testing.T) {
	d := &system.Description{
		Variables: []string{"x"},
		Order:     "LEX",
		Generators: []system.Generator{
			{Terms: []system.Term{{Coeff: "1", Exp: []int{1}}, {Coeff: "1/2", Exp: []int{1}}, {Coeff: "3", Exp: []int{0}}}},
			{Terms: []system.Term{{Coeff: "1", Exp: []int{2}}, {Coeff: "-1", Exp: []int{2}}}},
		},
	}
	_, G, err := system.Build[*big.Rat](d, qq)
	require.NoError(t, err)
	assert.Equal(t, "3/2*x*f1 + 3*f1\n0\n", render[*big.Rat](t, G, qq, d.Variables))
}

func TestDecode_GeneratorIndex(t *testing.T) {
	d, err := system.Decode(strings.NewReader(`variables: [x]
generators:
  - terms:
      - {coeff: "1", exp: [1]}
      - {coeff: "2", exp: [0], gen: 2}
`))
	require.NoError(t, err)
	_, G, err := system.Build[*big.Rat](d, qq)
	require.NoError(t, err)
	assert.Equal(t, "2*f2 + x*f1\n", render[*big.Rat](t, G, qq, d.Variables))

	d, err = system.Decode(strings.NewReader(`variables: [x]
generators:
  - terms:
      - {coeff: "1", exp: [1], gen: 0}
`))
	require.NoError(t, err)
	_, _, err = system.Build[*big.Rat](d, qq)
	assert.ErrorIs(t, err, system.ErrBadTerm)
}

func TestDecode_Errors(t *testing.T) {
	_, err := system.Decode(strings.NewReader("variables: [x]\nordr: lex\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = system.Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)

	d := &system.Description{Order: "deglex"}
	_, err = d.ModuleOrder()
	assert.ErrorIs(t, err, system.ErrUnknownOrder)
	_, _, err = system.Build[*big.Rat](d, qq)
	assert.ErrorIs(t, err, system.ErrUnknownOrder)
}

func TestParseField(t *testing.T) {
	for name, want := range map[string]system.FieldKind{
		"":        system.Rational,
		"qq":      system.Rational,
		"BN254":   system.Curve,
		"gf(101)": system.Prime,
		" GF(7) ": system.Prime,
	} {
		spec, err := system.ParseField(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, spec.Kind, name)
	}
	for _, name := range []string{"RR", "GF(p)", "GF(", "ZZ/7"} {
		_, err := system.ParseField(name)
		assert.ErrorIs(t, err, system.ErrUnknownField, name)
	}
}

func TestDescribe_RoundTrip(t *testing.T) {
	d := load(t, "module.yaml")
	_, G, err := system.Build[*big.Rat](d, qq)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, system.Describe[*big.Rat](d, G, qq).Encode(&buf))
	back, err := system.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, d.Order, back.Order)
	assert.Empty(t, back.Target)

	_, H, err := system.Build[*big.Rat](back, qq)
	require.NoError(t, err)
	assert.Equal(t, render[*big.Rat](t, G, qq, d.Variables), render[*big.Rat](t, H, qq, d.Variables))
}
