package ec

import (
	"errors"
	"testing"

	"github.com/smartcontractkit/e256/internal/testimplementations/unsaferand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("no entropy")
}

func TestRandomPoint(t *testing.T) {
	c := referenceCurve(t)

	p1, err := c.RandomPoint(unsaferand.New("seed"))
	require.NoError(t, err)
	p2, err := c.RandomPoint(unsaferand.New("seed"))
	require.NoError(t, err)
	assert.True(t, p1.Equal(p2))

	rand := unsaferand.New("TestRandomPoint")
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		p, err := c.RandomPoint(rand)
		require.NoError(t, err)
		require.True(t, c.Contains(p))
		seen[p.String()] = true
	}
	assert.Greater(t, len(seen), 100)

	_, err = c.RandomPoint(failingReader{})
	assert.Error(t, err)
}

func TestHashToPoint(t *testing.T) {
	c := referenceCurve(t)

	p := c.HashToPoint("test", []byte("message"))
	assert.True(t, c.Contains(p))
	assert.True(t, p.Equal(c.HashToPoint("test", []byte("message"))))

	seen := make(map[string]bool)
	for _, msg := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		seen[c.HashToPoint("test", []byte(msg)).String()] = true
	}
	assert.Greater(t, len(seen), 1)
}
