package ec

import (
	"errors"
	"fmt"

	"github.com/smartcontractkit/e256/internal/codec"
	"github.com/smartcontractkit/e256/internal/gf256"
)

// PointBytes is the length of an encoded point: a flag byte (0 for the identity, 1 otherwise) followed by x and y.
// The identity is encoded as three zero bytes.
const PointBytes = 3

const paramsVersion = 1

var ErrInvalidEncoding = errors.New("invalid encoding")

type pointCodec struct {
	curve *E256
	point Point[gf256.Element]
}

func (pc pointCodec) MarshalTo(target codec.Target) {
	x, y, affine := pc.point.Coordinates()
	target.WriteBool(affine)
	target.WriteUint8(x.Byte())
	target.WriteUint8(y.Byte())
}

func (pc pointCodec) UnmarshalFrom(source codec.Source) Point[gf256.Element] {
	affine := source.ReadBool()
	x, y := source.ReadUint8(), source.ReadUint8()
	if !affine {
		if x != 0 || y != 0 {
			panic(fmt.Errorf("%w: non-zero coordinates (%d, %d) for the identity", ErrInvalidEncoding, x, y))
		}
		return Identity[gf256.Element]()
	}

	p := NewPoint(gf256.FromByte(x), gf256.FromByte(y))
	if pc.curve.reject(opDecode, p) {
		panic(fmt.Errorf("%w: (%d, %d) on %s", ErrNotOnCurve, x, y, pc.curve.Name()))
	}
	return p
}

// c.MarshalPoint(p) returns the PointBytes long encoding of p. Fails with ErrNotOnCurve if p is not on the curve.
func (c *E256) MarshalPoint(p Point[gf256.Element]) ([]byte, error) {
	if !c.Contains(p) {
		return nil, fmt.Errorf("cannot marshal %v: %w", p, ErrNotOnCurve)
	}
	return codec.Marshal(pointCodec{c, p})
}

// c.UnmarshalPoint(data) decodes a point encoded by c.MarshalPoint(...). Fails with ErrNotOnCurve for points not on the
// curve, and with ErrInvalidEncoding for malformed input.
func (c *E256) UnmarshalPoint(data []byte) (Point[gf256.Element], error) {
	if len(data) != PointBytes {
		return Point[gf256.Element]{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidEncoding, PointBytes, len(data))
	}
	return codec.Unmarshal[Point[gf256.Element]](data, pointCodec{curve: c})
}

// c.MarshalTo(target) writes the curve parameters (a, b), prefixed by a version byte. The point set is not encoded,
// it is recomputed by New(...).
func (c *E256) MarshalTo(target codec.Target) {
	target.WriteUint8(paramsVersion)
	target.WriteUint8(c.a.Byte())
	target.WriteUint8(c.b.Byte())
}

// MarshalParams returns the encoding of the parameters of c, see c.MarshalTo(...).
func (c *E256) MarshalParams() ([]byte, error) {
	return codec.Marshal(c)
}

// UnmarshalParams decodes curve parameters written by MarshalParams(...).
func UnmarshalParams(data []byte) (a, b gf256.Element, err error) {
	params, err := codec.UnmarshalUsing(data, func(source codec.Source) [2]gf256.Element {
		if v := source.ReadUint8(); v != paramsVersion {
			panic(fmt.Errorf("%w: unsupported parameters version %d", ErrInvalidEncoding, v))
		}
		return [2]gf256.Element{gf256.FromByte(source.ReadUint8()), gf256.FromByte(source.ReadUint8())}
	})
	if err != nil {
		return gf256.Element{}, gf256.Element{}, err
	}
	return params[0], params[1], nil
}
