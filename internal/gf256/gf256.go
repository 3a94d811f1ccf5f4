// Package gf256 implements the finite field GF(2⁸), constructed as the ring of binary polynomials modulo the
// irreducible polynomial x⁸ + x⁴ + x³ + x² + 1.
package gf256

import (
	"fmt"

	"github.com/smartcontractkit/e256/internal/math"
)

// PrimitiveValue is the bit pattern of the reduction polynomial x⁸ + x⁴ + x³ + x² + 1.
const PrimitiveValue = 285

const Degree = 8

var primitive = math.NewPoly(math.BitsOf(PrimitiveValue)...)

// Element is a field element, represented as binary polynomial of degree < 8. Coefficient i corresponds to bit i of
// the byte representation. The zero value is the additive identity.
type Element struct {
	poly math.Poly[math.Bit]
}

var _ math.Field[Element] = Element{}
var _ math.Negator[Element] = Element{}

// Primitive returns the reduction polynomial.
func Primitive() math.Poly[math.Bit] {
	return primitive
}

func FromByte(b byte) Element {
	return Element{math.NewPoly(math.BitsOf(uint64(b))...)}
}

// FromPoly reduces p modulo the primitive polynomial.
func FromPoly(p math.Poly[math.Bit]) Element {
	return Element{reduce(p)}
}

func reduce(p math.Poly[math.Bit]) math.Poly[math.Bit] {
	if p.Order() < Degree {
		return p
	}
	r, err := math.Rem(p, primitive)
	if err != nil {
		panic(err) // primitive is nonzero
	}
	return r
}

// x.Byte() returns the byte whose bit i is the coefficient of xⁱ.
func (x Element) Byte() byte {
	var b byte
	for i := 0; i < Degree; i++ {
		if x.poly.Coefficient(i).Bool() {
			b |= 1 << i
		}
	}
	return b
}

// x.Poly() returns the underlying polynomial.
func (x Element) Poly() math.Poly[math.Bit] {
	return x.poly
}

func (Element) Zero() Element { return FromByte(0) }
func (Element) One() Element  { return FromByte(1) }

func (x Element) Add(y Element) Element {
	return Element{x.poly.Add(y.poly)}
}

func (x Element) Sub(y Element) Element {
	return Element{x.poly.Sub(y.poly)}
}

// Neg returns x, as -x = x in characteristic 2.
func (x Element) Neg() Element {
	return Element{math.Neg(x.poly)}
}

func (x Element) Mul(y Element) Element {
	return Element{reduce(x.poly.Mul(y.poly))}
}

// x.Div(y) returns x · y⁻¹. Panics with math.ErrDivisionByZero if y is zero.
func (x Element) Div(y Element) Element {
	if y.IsZero() {
		panic(math.ErrDivisionByZero)
	}
	inv, err := y.Inverse()
	if err != nil {
		panic(err)
	}
	return x.Mul(inv)
}

// x.Inverse() returns the multiplicative inverse of x, or math.ErrNotInvertible if x is zero.
func (x Element) Inverse() (Element, error) {
	inv, err := math.ModInv(x.poly, primitive)
	if err != nil {
		return Element{}, err
	}
	return Element{reduce(inv)}, nil
}

// x.Exp(n) returns xⁿ by repeated multiplication, x⁰ = 1 (also for x = 0).
func (x Element) Exp(n uint) Element {
	result := x.One()
	for range n {
		result = result.Mul(x)
	}
	return result
}

func (x Element) Equal(y Element) bool {
	return x.poly.Equal(y.poly)
}

func (x Element) IsZero() bool {
	return x.poly.IsZero()
}

// String returns the decimal value of the byte representation.
func (x Element) String() string {
	return fmt.Sprint(x.Byte())
}
