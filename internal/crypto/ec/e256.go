package ec

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/bits-and-blooms/bitset"
	"github.com/smartcontractkit/e256/internal/gf256"
	"github.com/smartcontractkit/e256/internal/math"
	"github.com/smartcontractkit/libocr/commontypes"
)

// Every point maps to a distinct key in [0, pointKeySpace), the identity to 0.
const pointKeySpace = 1 + fieldSize*fieldSize

func pointKey(p Point[gf256.Element]) uint {
	x, y, ok := p.Coordinates()
	if !ok {
		return 0
	}
	return 1 + (uint(x.Byte())<<gf256.Degree | uint(y.Byte()))
}

// E256 is the group of points of the curve y² + x·y = x³ + a·x² + b over GF(2⁸). The parameters and the point set are
// immutable after construction, an E256 is safe for concurrent use.
//
// No validity check is performed on (a, b). For a singular curve the point set is still enumerated, but the group
// law may not be associative.
type E256 struct {
	a, b    gf256.Element
	points  []Point[gf256.Element] // sorted by (x, y), identity first
	index   *bitset.BitSet         // keys of all points, see pointKey(...)
	order   *math.Modulus
	metrics *metrics
	logger  commontypes.Logger
}

var _ Group[gf256.Element] = &E256{}

// New constructs the curve with parameters (a, b) and enumerates its points. The only error conditions are invalid
// options, a failed metrics registration and the cancellation of ctx.
func New(ctx context.Context, a, b gf256.Element, opts ...Option) (*E256, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	m, err := newMetrics(cfg.metricsRegisterer)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	cfg.logger.Debug("E256: enumerating curve points", commontypes.LogFields{
		"a": a.Byte(), "b": b.Byte(), "workers": cfg.workers,
	})

	start := time.Now()
	affine, err := enumerate(ctx, a, b, cfg.workers, m)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate points of curve (a=%v, b=%v): %w", a, b, err)
	}
	duration := time.Since(start)

	points := make([]Point[gf256.Element], 0, len(affine)+1)
	points = append(points, Identity[gf256.Element]())
	points = append(points, affine...)

	index := bitset.New(pointKeySpace)
	for _, p := range points {
		index.Set(pointKey(p))
	}

	order, err := math.NewModulus(uint64(len(points)))
	if err != nil {
		return nil, err
	}

	m.enumerationDuration.Observe(duration.Seconds())
	m.curveOrder.Set(float64(len(points)))

	cfg.logger.Info("E256: curve constructed", commontypes.LogFields{
		"a": a.Byte(), "b": b.Byte(), "order": len(points), "duration": duration.String(),
	})

	return &E256{a, b, points, index, order, m, cfg.logger}, nil
}

func (c *E256) A() gf256.Element { return c.a }
func (c *E256) B() gf256.Element { return c.b }

// Name returns a short human-readable description of the curve, used for logging.
func (c *E256) Name() string {
	return fmt.Sprintf("E256(a=%v, b=%v)", c.a, c.b)
}

// c.Order() returns the number of points of the curve, including the identity.
func (c *E256) Order() int {
	return len(c.points)
}

// c.Points() returns a copy of all points of the curve, the identity first, followed by the affine points sorted by
// their (x, y) byte values.
func (c *E256) Points() []Point[gf256.Element] {
	return slices.Clone(c.points)
}

// c.Contains(p) reports whether p is the identity or satisfies the curve equation. The index holds exactly the pairs
// accepted by satisfies(...) during enumeration, so the equation is not re-evaluated here.
func (c *E256) Contains(p Point[gf256.Element]) bool {
	return c.index.Test(pointKey(p))
}

func (c *E256) reject(op string, points ...Point[gf256.Element]) bool {
	for _, p := range points {
		if !c.Contains(p) {
			c.metrics.membershipFailures.WithLabelValues(op).Inc()
			c.logger.Debug("E256: rejected point not on curve", commontypes.LogFields{
				"op": op, "point": p.String(), "curve": c.Name(),
			})
			return true
		}
	}
	return false
}

func (c *E256) Add(p, q Point[gf256.Element]) (Point[gf256.Element], bool) {
	if c.reject(opAdd, p, q) {
		return Point[gf256.Element]{}, false
	}
	return c.add(p, q), true
}

func (c *E256) Neg(p Point[gf256.Element]) (Point[gf256.Element], bool) {
	if c.reject(opNeg, p) {
		return Point[gf256.Element]{}, false
	}
	return c.neg(p), true
}

func (c *E256) Mul(n int, p Point[gf256.Element]) (Point[gf256.Element], bool) {
	if c.reject(opMul, p) {
		return Point[gf256.Element]{}, false
	}
	return c.mul(n, p), true
}

// add implements the group law for points known to be on the curve.
func (c *E256) add(p, q Point[gf256.Element]) Point[gf256.Element] {
	x0, y0, ok := p.Coordinates()
	if !ok {
		return q
	}
	x1, y1, ok := q.Coordinates()
	if !ok {
		return p
	}
	if q.Equal(c.neg(p)) {
		return Identity[gf256.Element]()
	}

	// x0 = x1 holds whenever p = q, and x1 ≠ 0 as a point with x = 0 is its own inverse.
	var k gf256.Element
	if p.Equal(q) {
		k = x0.Add(y0.Div(x1))
	} else {
		k = y0.Add(y1).Div(x0.Add(x1))
	}

	x2 := k.Mul(k).Add(k).Add(x0).Add(x1).Add(c.a)
	y2 := k.Mul(x0.Add(x2)).Add(x2).Add(y0)
	return NewPoint(x2, y2)
}

// neg maps (x, y) to (x, x + y).
func (c *E256) neg(p Point[gf256.Element]) Point[gf256.Element] {
	x, y, ok := p.Coordinates()
	if !ok {
		return p
	}
	return NewPoint(x, x.Add(y))
}

// mul computes n·p by |n| - 1 consecutive additions of p, followed by a negation if n < 0.
func (c *E256) mul(n int, p Point[gf256.Element]) Point[gf256.Element] {
	if n == 0 || p.IsIdentity() {
		return Identity[gf256.Element]()
	}

	steps := uint(n)
	if n < 0 {
		steps = -steps
	}

	result := p
	for i := uint(1); i < steps; i++ {
		result = c.add(result, p)
	}
	if n < 0 {
		result = c.neg(result)
	}
	return result
}
