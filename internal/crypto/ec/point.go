package ec

import (
	"fmt"

	"github.com/smartcontractkit/e256/internal/math"
)

// Point is either the point at infinity (Identity) or an affine point (x, y) over the field F. Points are values,
// two points are equal iff both are the identity, or both are affine with equal coordinates.
type Point[F math.Field[F]] struct {
	x, y   F
	affine bool
}

// Identity returns the point at infinity, the neutral element of the group. The zero value of Point is the identity.
func Identity[F math.Field[F]]() Point[F] {
	return Point[F]{}
}

// NewPoint returns the affine point (x, y). It is not checked against any curve equation.
func NewPoint[F math.Field[F]](x, y F) Point[F] {
	return Point[F]{x, y, true}
}

func (p Point[F]) IsIdentity() bool {
	return !p.affine
}

// p.Coordinates() returns (x, y, true) for an affine point, and false for the identity.
func (p Point[F]) Coordinates() (x, y F, ok bool) {
	return p.x, p.y, p.affine
}

func (p Point[F]) Equal(q Point[F]) bool {
	if p.affine != q.affine {
		return false
	}
	return !p.affine || (p.x.Equal(q.x) && p.y.Equal(q.y))
}

// String renders an affine point as "x,y" and the identity as the empty string.
func (p Point[F]) String() string {
	if !p.affine {
		return ""
	}
	return fmt.Sprintf("%v,%v", p.x, p.y)
}
