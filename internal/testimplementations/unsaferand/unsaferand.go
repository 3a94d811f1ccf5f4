// Package unsaferand provides deterministic, seedable randomness for tests. It is not cryptographically secure.
package unsaferand

import (
	"fmt"
	"hash/fnv"
	"io"
	mrand "math/rand"
)

// UnsafeRand is an io.Reader backed by math/rand. Not safe for concurrent use.
type UnsafeRand struct {
	*mrand.Rand
}

var _ io.Reader = &UnsafeRand{}

// New returns an UnsafeRand whose output is fully determined by the fmt.Sprintf("%#v", ...) representation of the
// given seed arguments. Maps must not be passed, their iteration order is random.
func New(seedArgs ...any) *UnsafeRand {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%#v", seedArgs)
	return &UnsafeRand{mrand.New(mrand.NewSource(int64(h.Sum64())))}
}
