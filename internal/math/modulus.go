package math

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"filippo.io/bigmod"
)

// Modulus is the order of a finite cyclic structure, e.g., the number of points of a curve. Values of type Scalar are
// always reduced modulo a Modulus.
type Modulus struct {
	value bigmod.Modulus
}

// NewModulus returns the modulus n. Fails if n < 2.
func NewModulus(n uint64) (*Modulus, error) {
	if n < 2 {
		return nil, fmt.Errorf("invalid modulus %d, must be at least 2", n)
	}
	m, err := bigmod.NewModulus(binary.BigEndian.AppendUint64(nil, n))
	if err != nil {
		return nil, fmt.Errorf("invalid modulus %d: %w", n, err)
	}
	return &Modulus{*m}, nil
}

func (m *Modulus) Equal(other *Modulus) bool {
	return m == other || (&m.value).Nat().Equal((&other.value).Nat()) == 1
}

// m.Size() returns the length of the big-endian encoding of m in bytes.
func (m *Modulus) Size() int {
	return (&m.value).Size()
}

func (m *Modulus) Bytes() []byte {
	return (&m.value).Nat().Bytes(&m.value)
}

func (m *Modulus) String() string {
	return new(big.Int).SetBytes(m.Bytes()).String()
}
