package groebner

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/groebner/monomial"
)

// pair is a pending critical pair (i, j), i < j, indexing the working basis.
// sugar is the sugar degree of its S-polynomial, lcm the lcm of the two
// leading monomials.
type pair struct {
	i, j  int
	sugar int
	lcm   monomial.Monomial
}

// pairSet keeps pending pairs sorted DESCENDING by (sugar, lcm, j, i), so
// the least obligation sits at the end and pop is O(1).
type pairSet struct {
	order monomial.Order
	items []pair
}

func newPairSet(o monomial.Order) pairSet {
	return pairSet{order: o}
}

// compare ranks pairs ascending: lower sugar first, then smaller lcm under
// the module order, then lower basis indices.
func (s *pairSet) compare(p, q pair) int {
	if p.sugar != q.sugar {
		return cmp.Compare(p.sugar, q.sugar)
	}
	if c := s.order.Compare(p.lcm, q.lcm); c != 0 {
		return c
	}
	if p.j != q.j {
		return cmp.Compare(p.j, q.j)
	}

	return cmp.Compare(p.i, q.i)
}

func (s *pairSet) len() int { return len(s.items) }

// push inserts p at its sorted (descending) position.
func (s *pairSet) push(p pair) {
	idx, _ := slices.BinarySearchFunc(s.items, p, func(e, t pair) int { return s.compare(t, e) })
	s.items = slices.Insert(s.items, idx, p)
}

// pop removes and returns the least pair. The set must be non-empty.
func (s *pairSet) pop() pair {
	last := len(s.items) - 1
	p := s.items[last]
	s.items = s.items[:last]

	return p
}

// removeFunc drops every pair matching del and reports how many went.
func (s *pairSet) removeFunc(del func(pair) bool) int {
	before := len(s.items)
	s.items = slices.DeleteFunc(s.items, del)

	return before - len(s.items)
}
