package ec

import (
	"context"
	"sync"
	"testing"

	"github.com/smartcontractkit/e256/internal/gf256"
	"github.com/stretchr/testify/require"
)

type P = Point[gf256.Element]

// Curves are expensive to construct, tests share one instance per parameter set.
var (
	curvesMu sync.Mutex
	curves   = map[[2]byte]*E256{}
)

func testCurve(t *testing.T, a, b byte) *E256 {
	t.Helper()
	curvesMu.Lock()
	defer curvesMu.Unlock()

	if c, ok := curves[[2]byte{a, b}]; ok {
		return c
	}
	c, err := New(context.Background(), gf256.FromByte(a), gf256.FromByte(b))
	require.NoError(t, err)
	curves[[2]byte{a, b}] = c
	return c
}

// referenceCurve is y² + x·y = x³ + 23·x² + 107, a group of order 252 that is not cyclic.
func referenceCurve(t *testing.T) *E256 {
	return testCurve(t, 23, 107)
}

// cyclicCurve is y² + x·y = x³ + x² + 2, a cyclic group of order 240.
func cyclicCurve(t *testing.T) *E256 {
	return testCurve(t, 1, 2)
}

func point(x, y byte) P {
	return NewPoint(gf256.FromByte(x), gf256.FromByte(y))
}
