package math

import (
	"testing"

	"github.com/smartcontractkit/e256/internal/testimplementations/unsaferand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gf7 is the prime field of order 7, used to exercise the division routines with a field in which subtraction differs
// from addition and constants other than one exist.
type gf7 uint8

var _ Field[gf7] = gf7(0)

func (gf7) Zero() gf7          { return 0 }
func (gf7) One() gf7           { return 1 }
func (x gf7) Add(y gf7) gf7    { return (x + y) % 7 }
func (x gf7) Sub(y gf7) gf7    { return (x + 7 - y) % 7 }
func (x gf7) Mul(y gf7) gf7    { return (x * y) % 7 }
func (x gf7) Equal(y gf7) bool { return x == y }
func (x gf7) IsZero() bool     { return x == 0 }

func (x gf7) Div(y gf7) gf7 {
	if y == 0 {
		panic(ErrDivisionByZero)
	}
	// y⁻¹ = y⁵ by Fermat's little theorem
	inv := y.Mul(y).Mul(y).Mul(y).Mul(y)
	return x.Mul(inv)
}

func poly7(coefficients ...gf7) Poly[gf7] {
	return NewPoly(coefficients...)
}

func TestDivRemBinary(t *testing.T) {
	rand := unsaferand.New("TestDivRemBinary")
	for i := 0; i < 200; i++ {
		p := bitPoly(uint64(rand.Uint32()))
		d := bitPoly(uint64(rand.Intn(1<<12) + 1))

		q, r, err := DivRem(p, d)
		require.NoError(t, err)
		assert.True(t, d.Mul(q).Add(r).Equal(p), "p = d·q + r for p=%v, d=%v", p, d)
		if d.Order() == 0 {
			assert.True(t, r.IsZero())
		} else {
			assert.Less(t, r.Order(), d.Order())
		}
	}
}

func TestDivRemPrimeField(t *testing.T) {
	// x² + 3x + 2 = (x + 1)(x + 2)
	q, r, err := DivRem(poly7(2, 3, 1), poly7(1, 1))
	require.NoError(t, err)
	assert.True(t, q.Equal(poly7(2, 1)))
	assert.True(t, r.IsZero())

	// 3x³ + 1 divided by 2x + 5 leaves a constant remainder
	p, d := poly7(1, 0, 0, 3), poly7(5, 2)
	q, r, err = DivRem(p, d)
	require.NoError(t, err)
	assert.True(t, d.Mul(q).Add(r).Equal(p))
	assert.Equal(t, 0, r.Order())

	div, err := Div(p, d)
	require.NoError(t, err)
	assert.True(t, div.Equal(q))

	rem, err := Rem(p, d)
	require.NoError(t, err)
	assert.True(t, rem.Equal(r))
}

func TestDivRemEdgeCases(t *testing.T) {
	d := bitPoly(0b111)

	q, r, err := DivRem(ZeroPoly[Bit](), d)
	require.NoError(t, err)
	assert.True(t, q.IsZero())
	assert.True(t, r.IsZero())

	// dividend of lower order than the divisor
	q, r, err = DivRem(bitPoly(0b10), d)
	require.NoError(t, err)
	assert.True(t, q.IsZero())
	assert.Equal(t, uint64(0b10), value(r))

	q, r, err = DivRem(d, d)
	require.NoError(t, err)
	assert.True(t, q.Equal(OnePoly[Bit]()))
	assert.True(t, r.IsZero())
}

func TestDivisionByZeroPolynomial(t *testing.T) {
	p := bitPoly(0b1011)

	_, _, err := DivRem(p, ZeroPoly[Bit]())
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Div(p, NewPoly(Bit{}, Bit{}))
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Rem(p, Poly[Bit]{})
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = ModInv(p, ZeroPoly[Bit]())
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestEgcd(t *testing.T) {
	x, y := Egcd(bitPoly(0b1011), ZeroPoly[Bit]())
	assert.True(t, x.Equal(OnePoly[Bit]()))
	assert.True(t, y.IsZero())

	rand := unsaferand.New("TestEgcd")
	for i := 0; i < 100; i++ {
		a := bitPoly(uint64(rand.Intn(1<<10) + 1))
		b := bitPoly(uint64(rand.Intn(1<<10) + 1))
		x, y := Egcd(a, b)

		// x·a + y·b is a common divisor of a and b
		g := x.Mul(a).Add(y.Mul(b))
		require.False(t, g.IsZero())
		ra, _ := Rem(a, g)
		rb, _ := Rem(b, g)
		assert.True(t, ra.IsZero(), "gcd %v does not divide %v", g, a)
		assert.True(t, rb.IsZero(), "gcd %v does not divide %v", g, b)
	}
}

func TestModInv(t *testing.T) {
	m := bitPoly(285)
	for v := uint64(1); v < 256; v++ {
		p := bitPoly(v)
		inv, err := ModInv(p, m)
		require.NoError(t, err)

		product, err := Rem(p.Mul(inv), m)
		require.NoError(t, err)
		require.True(t, product.Equal(OnePoly[Bit]()), "%v · %v = %v (mod %v)", p, inv, product, m)
	}
}

func TestModInvNormalizesConstantGcd(t *testing.T) {
	// Egcd(2, x² + 1) yields the coefficient 1 with gcd 2, the inverse is 2⁻¹ = 4
	inv, err := ModInv(poly7(2), poly7(1, 0, 1))
	require.NoError(t, err)
	assert.True(t, inv.Equal(poly7(4)), "got %v", inv)

	p, m := poly7(3, 1), poly7(1, 0, 1)
	inv, err = ModInv(p, m)
	require.NoError(t, err)
	product, err := Rem(p.Mul(inv), m)
	require.NoError(t, err)
	assert.True(t, product.Equal(OnePoly[gf7]()), "got %v", product)
}

func TestModInvNotInvertible(t *testing.T) {
	m := bitPoly(0b101) // (x + 1)²

	tests := []struct {
		name string
		p    Poly[Bit]
	}{
		{"zero", ZeroPoly[Bit]()},
		{"multiple of the modulus", bitPoly(0b1111)}, // (x + 1)³
		{"common factor", bitPoly(0b110)},            // x(x + 1)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ModInv(tt.p, m)
			assert.ErrorIs(t, err, ErrNotInvertible)
			assert.ErrorIs(t, err, ErrDivisionByZero)
		})
	}
}
