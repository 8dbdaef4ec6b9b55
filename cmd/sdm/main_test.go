package main

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/groebner/internal/system"
)

func testdata(name string) string {
	return filepath.Join("..", "..", "internal", "system", "testdata", name)
}

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.Execute()

	return out.String(), err
}

func TestGroebner_Text(t *testing.T) {
	out, err := execute(t, "groebner", testdata("hyperbola.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "x^2*f1 - y*f1\nx*y*f1 - f1\ny^2*f1 - x*f1\n", out)
}

func TestGroebner_Extended(t *testing.T) {
	out, err := execute(t, "groebner", "-e", testdata("hyperbola.yaml"))
	require.NoError(t, err)

	basis, coeffs, ok := strings.Cut(out, "coefficients:\n")
	require.True(t, ok, out)
	assert.Equal(t, "x^2*f1 - y*f1\nx*y*f1 - f1\ny^2*f1 - x*f1\n", basis)
	assert.Len(t, strings.Split(strings.TrimSuffix(coeffs, "\n"), "\n"), 3)
}

func TestGroebner_YAML(t *testing.T) {
	out, err := execute(t, "--yaml", "groebner", testdata("module.yaml"))
	require.NoError(t, err)

	d, err := system.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "pot(lex)", d.Order)
	assert.Equal(t, []string{"x", "y"}, d.Variables)
	assert.Len(t, d.Generators, 2)
}

func TestGroebner_PrimeField(t *testing.T) {
	out, err := execute(t, "groebner", "--reducer", "Mora", testdata("katsura3_gf.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.NotContains(t, out, "/", "GF(p) coefficients are printed as residues")
}

func TestFGLM_FileTarget(t *testing.T) {
	out, err := execute(t, "fglm", testdata("hyperbola.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "x*f1 - y^2*f1\ny^3*f1 - f1\n", out)
}

func TestFGLM_FlagTarget(t *testing.T) {
	out, err := execute(t, "--yaml", "fglm", "--to", "grevlex", testdata("hyperbola.yaml"))
	require.NoError(t, err)

	d, err := system.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "pot(grevlex)", d.Order)
	assert.Empty(t, d.Target)
	assert.Len(t, d.Generators, 3)
}

func TestStaircase(t *testing.T) {
	out, err := execute(t, "staircase", testdata("hyperbola.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "dimension 3\nf1\ny*f1\nx*f1\n", out)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestStaircase_WriteError(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"staircase", testdata("hyperbola.yaml")})
	root.SetOut(failingWriter{})
	root.SetErr(io.Discard)
	assert.EqualError(t, root.Execute(), "disk full")
}

func TestErrors(t *testing.T) {
	cases := map[string][]string{
		"unknown reducer": {"groebner", "--reducer", "janet", testdata("hyperbola.yaml")},
		"negative pairs":  {"groebner", "--max-pairs", "-1", testdata("hyperbola.yaml")},
		"negative dim":    {"fglm", "--max-dim", "-2", testdata("hyperbola.yaml")},
		"unknown target":  {"fglm", "--to", "deglex", testdata("hyperbola.yaml")},
		"missing file":    {"groebner", testdata("missing.yaml")},
		"bad term":        {"groebner", testdata("bad_term.yaml")},
		"no file":         {"staircase"},
		"dimension limit": {"fglm", "--max-dim", "2", testdata("hyperbola.yaml")},
		"pair limit":      {"groebner", "--max-pairs", "1", testdata("hyperbola.yaml")},
	}
	for name, args := range cases {
		_, err := execute(t, args...)
		assert.Error(t, err, name)
	}
}
