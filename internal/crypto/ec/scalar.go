package ec

import (
	"fmt"

	"github.com/smartcontractkit/e256/internal/gf256"
	"github.com/smartcontractkit/e256/internal/math"
)

// c.GroupOrder() returns the number of points of the curve as modulus of the scalar type.
func (c *E256) GroupOrder() *math.Modulus {
	return c.order
}

// c.Scalar() returns a new zero-valued scalar (mod the group order).
func (c *E256) Scalar() math.Scalar {
	return math.NewScalar(c.order)
}

// c.ScalarMult(s, p) returns s·p. As the order of every point divides the group order, the result equals c.Mul(n, p)
// for every integer n ≡ s (mod c.Order()). Panics if s is not reduced modulo the group order of c.
func (c *E256) ScalarMult(s math.Scalar, p Point[gf256.Element]) (Point[gf256.Element], bool) {
	if !s.Modulus().Equal(c.order) {
		panic(fmt.Sprintf("scalar modulus %v does not match group order %v", s.Modulus(), c.order))
	}
	return c.Mul(s.Int(), p)
}
