package ec

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/smartcontractkit/e256/internal/gf256"
)

// c.IsGenerator(p) reports whether the multiples p, 2·p, 3·p, ... of p cover the whole group, i.e., whether the first
// c.Order() multiples of p are pairwise distinct. Returns false for points not on the curve.
func (c *E256) IsGenerator(p Point[gf256.Element]) bool {
	if !c.Contains(p) {
		return false
	}

	visited := bitset.New(pointKeySpace)
	q := p
	for range c.Order() {
		key := pointKey(q)
		if visited.Test(key) {
			return false
		}
		visited.Set(key)
		q = c.add(q, p)
	}
	return true
}

// c.PointOrder(p) returns the order of p, the smallest n > 0 with n·p = Identity. Returns false for points not on the
// curve.
func (c *E256) PointOrder(p Point[gf256.Element]) (int, bool) {
	if !c.Contains(p) {
		return 0, false
	}
	n, q := 1, p
	for !q.IsIdentity() {
		q = c.add(q, p)
		n++
	}
	return n, true
}

// c.Generators() returns all points p with c.IsGenerator(p), in the order of c.Points(). The result is empty if the
// group is not cyclic.
func (c *E256) Generators() []Point[gf256.Element] {
	var generators []Point[gf256.Element]
	for _, p := range c.points {
		if c.IsGenerator(p) {
			generators = append(generators, p)
		}
	}
	return generators
}
