// Package curve exposes the elliptic-curve group y² + x·y = x³ + a·x² + b over GF(2⁸).
//
//	c, err := curve.New(ctx, curve.FromByte(23), curve.FromByte(107))
//	if err != nil { ... }
//	for _, p := range c.Points() { ... }
package curve

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartcontractkit/e256/internal/crypto/ec"
	"github.com/smartcontractkit/e256/internal/gf256"
	"github.com/smartcontractkit/libocr/commontypes"
)

type (
	// Curve is a constructed curve instance, safe for concurrent use.
	Curve = ec.E256

	// Element is an element of GF(2⁸).
	Element = gf256.Element

	// Point is a point of a curve over GF(2⁸), either the identity or an affine point (x, y).
	Point = ec.Point[gf256.Element]

	Option = ec.Option
)

var (
	ErrNotOnCurve      = ec.ErrNotOnCurve
	ErrInvalidEncoding = ec.ErrInvalidEncoding
)

// New constructs the curve with parameters (a, b), enumerating all of its points.
func New(ctx context.Context, a, b Element, opts ...Option) (*Curve, error) {
	return ec.New(ctx, a, b, opts...)
}

// Decode constructs the curve from parameters encoded by (*Curve).MarshalParams().
func Decode(ctx context.Context, params []byte, opts ...Option) (*Curve, error) {
	a, b, err := ec.UnmarshalParams(params)
	if err != nil {
		return nil, err
	}
	return ec.New(ctx, a, b, opts...)
}

func FromByte(b byte) Element {
	return gf256.FromByte(b)
}

func Identity() Point {
	return ec.Identity[gf256.Element]()
}

// NewPoint returns the affine point (x, y), without checking it against any curve.
func NewPoint(x, y Element) Point {
	return ec.NewPoint(x, y)
}

func WithWorkers(n int) Option {
	return ec.WithWorkers(n)
}

func WithLogger(logger commontypes.Logger) Option {
	return ec.WithLogger(logger)
}

func WithMetricsRegisterer(registerer prometheus.Registerer) Option {
	return ec.WithMetricsRegisterer(registerer)
}
