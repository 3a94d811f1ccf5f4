// Scalar arithmetic modulo a group order, based on the bigmod package from Go's internal stdlib, exported via
// filippo.io/bigmod.

package math

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"

	"filippo.io/bigmod"
)

// Scalar represents a value in {0, 1, ..., modulus - 1}, e.g., a multiplier of curve points reduced modulo the group
// order.
type Scalar = *scalar

type scalar struct {
	value   *bigmod.Nat
	modulus *Modulus
}

// NewScalar creates a new scalar with the given modulus. The value is initialized to zero.
func NewScalar(m *Modulus) Scalar {
	return &scalar{bigmod.NewNat().ExpandFor(&m.value), m}
}

// NewScalarFromInt returns n mod m, for any (possibly negative) n.
func NewScalarFromInt(n int64, m *Modulus) Scalar {
	r := new(big.Int).Mod(big.NewInt(n), new(big.Int).SetBytes(m.Bytes()))
	s := NewScalar(m)
	if _, err := s.value.SetBytes(r.FillBytes(make([]byte, m.Size())), &m.value); err != nil {
		panic(err) // unreachable, r < m by construction
	}
	return s
}

// x.SetRandom(rand) sets x to a value sampled (close to) uniformly from {0, 1, ..., modulus - 1} and returns x.
// A constant number of bytes is read from rand, so the result is deterministic for a deterministic reader.
func (x *scalar) SetRandom(rand io.Reader) (Scalar, error) {
	// 128 bits more than the modulus size, the bias of the final reduction is negligible.
	rngBytes := make([]byte, x.modulus.Size()+16)
	if _, err := io.ReadFull(rand, rngBytes); err != nil {
		return nil, err
	}

	// A power of 256 larger than rngBytes, so that SetBytes does not reduce.
	largeModBytes := make([]byte, len(rngBytes)+1)
	largeModBytes[0] = 1
	largeMod, err := bigmod.NewModulus(largeModBytes)
	if err != nil {
		return nil, err
	}

	t := bigmod.NewNat()
	if _, err := t.SetBytes(rngBytes, largeMod); err != nil {
		return nil, err
	}
	x.value.Mod(t, &x.modulus.value)
	return x, nil
}

func (x *scalar) IsZero() bool {
	return x.value.IsZero() == 1
}

// Returns the internal reference to the modulus underlying the scalar. Must not be modified by the caller.
func (x *scalar) Modulus() *Modulus {
	return x.modulus
}

// x.Bytes() returns the fixed-length big-endian encoding of x.
func (x *scalar) Bytes() []byte {
	return x.value.Bytes(&x.modulus.value)
}

// x.Int() returns the value of x as int. Not constant time. Only supported for moduli that fit into 63 bits.
func (x *scalar) Int() int {
	b := x.Bytes()
	if len(b) > 8 {
		b = b[len(b)-8:]
	}
	var buf [8]byte
	copy(buf[8-len(b):], b)
	return int(binary.BigEndian.Uint64(buf[:]))
}

// Non-constant time function, to be used for testing and logging purposes.
func (x *scalar) String() string {
	return fmt.Sprint(new(big.Int).SetBytes(x.Bytes()))
}
