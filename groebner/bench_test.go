package groebner_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/groebner/groebner"
	"github.com/katalvlaran/groebner/monomial"
	"github.com/katalvlaran/groebner/sdm"
)

// benchmarkKatsura3 runs the Katsura-3 system under o with the given options.
func benchmarkKatsura3(b *testing.B, o monomial.Order, opts ...groebner.Option) {
	m := sdm.NewModule[*big.Rat](o, qq)
	G := katsura3(m)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := groebner.Compute(m, G, opts...); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}

func BenchmarkCompute_Katsura3GRevLex(b *testing.B) {
	benchmarkKatsura3(b, monomial.TOP(monomial.GRevLex))
}

func BenchmarkCompute_Katsura3Lex(b *testing.B) {
	benchmarkKatsura3(b, monomial.POT(monomial.Lex))
}

func BenchmarkCompute_Katsura3Extended(b *testing.B) {
	benchmarkKatsura3(b, monomial.TOP(monomial.GRevLex), groebner.WithExtended())
}

func BenchmarkCompute_Katsura3Mora(b *testing.B) {
	benchmarkKatsura3(b, monomial.TOP(monomial.GRevLex), groebner.WithReducer(groebner.ReducerMora))
}
