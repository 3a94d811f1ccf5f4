// Package ec implements elliptic-curve groups over binary fields. The concrete instance E256 is the group of points of
// y² + x·y = x³ + a·x² + b over GF(2⁸), with its full point set enumerated eagerly at construction time.
package ec

import (
	"errors"

	"github.com/smartcontractkit/e256/internal/math"
)

// ErrNotOnCurve is returned when decoding a point that does not satisfy the curve equation.
var ErrNotOnCurve = errors.New("point is not on the curve")

// Group is the group law of an elliptic curve over the field F. Every operation checks that its input points are
// members of the curve, and returns false instead of a result if any of them is not.
type Group[F math.Field[F]] interface {
	// g.Add(p, q) returns p + q.
	Add(p, q Point[F]) (Point[F], bool)

	// g.Neg(p) returns -p.
	Neg(p Point[F]) (Point[F], bool)

	// g.Mul(n, p) returns n·p, i.e., p added to itself n times, or -(|n|·p) for negative n.
	Mul(n int, p Point[F]) (Point[F], bool)
}
