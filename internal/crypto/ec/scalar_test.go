package ec

import (
	"testing"

	"github.com/smartcontractkit/e256/internal/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupOrder(t *testing.T) {
	c := referenceCurve(t)
	assert.Equal(t, "252", c.GroupOrder().String())
	assert.True(t, c.Scalar().IsZero())
	assert.Same(t, c.GroupOrder(), c.Scalar().Modulus())
}

func TestScalarMult(t *testing.T) {
	c := referenceCurve(t)
	p := point(2, 236)

	for _, n := range []int64{0, 1, 5, 21, 100, 251, -1, -5, -260} {
		s := math.NewScalarFromInt(n, c.GroupOrder())

		product, ok := c.ScalarMult(s, p)
		require.True(t, ok)
		expected, ok := c.Mul(int(n), p)
		require.True(t, ok)
		assert.True(t, expected.Equal(product), "n = %d", n)
	}

	_, ok := c.ScalarMult(c.Scalar(), point(0, 0))
	assert.False(t, ok)
}

func TestScalarMultModulusMismatchPanics(t *testing.T) {
	c := referenceCurve(t)
	m, err := math.NewModulus(240)
	require.NoError(t, err)

	assert.Panics(t, func() { c.ScalarMult(math.NewScalar(m), point(2, 236)) })
}
