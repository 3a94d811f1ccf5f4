package ec

import (
	"fmt"
	"io"

	"github.com/smartcontractkit/e256/internal/crypto/xof"
	"github.com/smartcontractkit/e256/internal/gf256"
)

// c.RandomPoint(rand) returns a point chosen (close to) uniformly from all points of the curve, including the
// identity. The same point is returned for the same sequence of bytes read from rand.
func (c *E256) RandomPoint(rand io.Reader) (Point[gf256.Element], error) {
	s, err := c.Scalar().SetRandom(rand)
	if err != nil {
		return Point[gf256.Element]{}, fmt.Errorf("failed to sample random point: %w", err)
	}
	return c.points[s.Int()], nil
}

// c.HashToPoint(dst, msg) deterministically derives a point from the given message. The domain separation tag dst and
// the curve parameters are bound to the result.
//
// The point is selected by index, hence its discrete logarithm with respect to any generator is trivially known.
func (c *E256) HashToPoint(dst string, msg []byte) Point[gf256.Element] {
	h := xof.New(dst)
	h.WriteInt(int(c.a.Byte()))
	h.WriteInt(int(c.b.Byte()))
	h.WriteBytes(msg)

	p, err := c.RandomPoint(h)
	if err != nil {
		panic(err) // reading from the XOF never fails
	}
	return p
}
