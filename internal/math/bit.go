package math

// Bit is an element of GF(2), the coefficient type of binary polynomials.
// The zero value is the additive identity.
type Bit struct {
	value bool
}

var _ Field[Bit] = Bit{}

func NewBit(value bool) Bit {
	return Bit{value}
}

// BitsOf returns the little-endian bit decomposition of x, i.e., element i holds bit i of x. The result always holds
// at least one element, so that BitsOf(0) yields the zero polynomial [0] rather than an empty sequence.
func BitsOf(x uint64) []Bit {
	bits := []Bit{{x&1 == 1}}
	for x >>= 1; x != 0; x >>= 1 {
		bits = append(bits, Bit{x&1 == 1})
	}
	return bits
}

func (Bit) Zero() Bit { return Bit{false} }
func (Bit) One() Bit  { return Bit{true} }

func (x Bit) Bool() bool { return x.value }

func (x Bit) Add(y Bit) Bit { return Bit{x.value != y.value} }
func (x Bit) Sub(y Bit) Bit { return Bit{x.value != y.value} }
func (x Bit) Mul(y Bit) Bit { return Bit{x.value && y.value} }
func (x Bit) And(y Bit) Bit { return Bit{x.value && y.value} }

// Neg returns x, every element of GF(2) is its own additive inverse.
func (x Bit) Neg() Bit { return x }

// x.Div(y) returns x / y. The only nonzero divisor is one, so the result equals x * y.
// Panics with ErrDivisionByZero if y is zero.
func (x Bit) Div(y Bit) Bit {
	if !y.value {
		panic(ErrDivisionByZero)
	}
	return Bit{x.value && y.value}
}

func (x Bit) Equal(y Bit) bool { return x.value == y.value }
func (x Bit) IsZero() bool     { return !x.value }

func (x Bit) String() string {
	if x.value {
		return "1"
	}
	return "0"
}
