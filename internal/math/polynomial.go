package math

import (
	"fmt"
	"slices"
	"strings"
)

// Poly represents a polynomial p(x) = c₀ + c₁·x + c₂·x² + ... over the coefficient type T.
// The coefficient cᵢ of the degree-i term is stored at index i. The length of the coefficient sequence is not
// normalized, trailing (high-degree) zero coefficients are allowed and are ignored by Equal(...) and Order().
//
// All operations are value-semantic, they never modify the receiver or the arguments. The constructors never produce
// an empty coefficient sequence, the zero polynomial is represented as [0].
type Poly[T Ring[T]] struct {
	data []T
}

// NewPoly returns the polynomial with the given coefficients, ordered from the constant term upward.
// Calling NewPoly without arguments returns the zero polynomial.
func NewPoly[T Ring[T]](coefficients ...T) Poly[T] {
	if len(coefficients) == 0 {
		return ZeroPoly[T]()
	}
	return Poly[T]{slices.Clone(coefficients)}
}

func ZeroPoly[T Ring[T]]() Poly[T] {
	return Poly[T]{[]T{zero[T]()}}
}

func OnePoly[T Ring[T]]() Poly[T] {
	return Poly[T]{[]T{one[T]()}}
}

// p.Len() returns the length of the (non-normalized) coefficient sequence.
func (p Poly[T]) Len() int {
	return len(p.data)
}

// p.Coefficients() returns a copy of the coefficient sequence.
func (p Poly[T]) Coefficients() []T {
	return slices.Clone(p.data)
}

// p.Coefficient(i) returns the coefficient of the degree-i term, or zero if i is out of range.
func (p Poly[T]) Coefficient(i int) T {
	if i < 0 || i >= len(p.data) {
		return zero[T]()
	}
	return p.data[i]
}

// p.FirstCoefficient() returns the constant term.
func (p Poly[T]) FirstCoefficient() T {
	return p.Coefficient(0)
}

// p.LastCoefficient() returns the leading coefficient, i.e., the coefficient of the degree-p.Order() term.
func (p Poly[T]) LastCoefficient() T {
	return p.Coefficient(p.Order())
}

// p.SubItem(i) returns the single-term polynomial cᵢ·xⁱ, or zero if i is out of range.
func (p Poly[T]) SubItem(i int) Poly[T] {
	if i < 0 || i >= len(p.data) {
		return ZeroPoly[T]()
	}
	return NewPoly(p.data[i]).Shl(i)
}

// p.Order() returns the degree of p, that is the highest index holding a nonzero coefficient. The zero polynomial has
// order 0.
func (p Poly[T]) Order() int {
	for i := len(p.data) - 1; i > 0; i-- {
		if !p.data[i].IsZero() {
			return i
		}
	}
	return 0
}

func (p Poly[T]) IsZero() bool {
	for _, c := range p.data {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// p.Equal(q) compares p and q coefficient-wise after conceptually zero-extending the shorter one.
func (p Poly[T]) Equal(q Poly[T]) bool {
	n := max(len(p.data), len(q.data))
	for i := 0; i < n; i++ {
		if !p.Coefficient(i).Equal(q.Coefficient(i)) {
			return false
		}
	}
	return true
}

// align returns copies of the coefficients of p and q, both padded with zeros to the same length.
func align[T Ring[T]](p, q Poly[T]) ([]T, []T) {
	n := max(len(p.data), len(q.data), 1)
	a, b := make([]T, n), make([]T, n)
	for i := 0; i < n; i++ {
		a[i] = p.Coefficient(i)
		b[i] = q.Coefficient(i)
	}
	return a, b
}

// p.Add(q) returns p + q.
func (p Poly[T]) Add(q Poly[T]) Poly[T] {
	a, b := align(p, q)
	for i := range a {
		a[i] = a[i].Add(b[i])
	}
	return Poly[T]{a}
}

// p.Sub(q) returns p - q.
func (p Poly[T]) Sub(q Poly[T]) Poly[T] {
	a, b := align(p, q)
	for i := range a {
		a[i] = a[i].Sub(b[i])
	}
	return Poly[T]{a}
}

// p.Scale(c) returns c·p.
func (p Poly[T]) Scale(c T) Poly[T] {
	result := make([]T, max(len(p.data), 1))
	for i := range result {
		result[i] = p.Coefficient(i).Mul(c)
	}
	return Poly[T]{result}
}

// p.Shl(k) returns p·xᵏ, i.e., k zero coefficients are prepended to the coefficient sequence.
func (p Poly[T]) Shl(k int) Poly[T] {
	if k < 0 {
		panic(fmt.Sprintf("negative shift count %d", k))
	}
	result := make([]T, k, k+max(len(p.data), 1))
	for i := range result {
		result[i] = zero[T]()
	}
	if len(p.data) == 0 {
		return Poly[T]{append(result, zero[T]())}
	}
	return Poly[T]{append(result, p.data...)}
}

// p.Shr(k) returns p / xᵏ, discarding the k lowest-degree coefficients. If no coefficient remains, the result is the
// zero polynomial. The operation is lossy, callers needing the discarded terms must extract them first, e.g., via
// p.SubItem(0) or p.FirstCoefficient().
func (p Poly[T]) Shr(k int) Poly[T] {
	if k < 0 {
		panic(fmt.Sprintf("negative shift count %d", k))
	}
	if k >= len(p.data) {
		return ZeroPoly[T]()
	}
	return Poly[T]{slices.Clone(p.data[k:])}
}

// p.Mul(q) returns p·q, computed as the sum of the shifted multiples cᵢ·p·xⁱ for every nonzero coefficient cᵢ of q.
func (p Poly[T]) Mul(q Poly[T]) Poly[T] {
	result := ZeroPoly[T]()
	for i, c := range q.data {
		if c.IsZero() {
			continue
		}
		result = result.Add(p.Scale(c).Shl(i))
	}
	return result
}

// p.String() returns a human readable representation, e.g., "x^3 + x + 1" for binary coefficients.
func (p Poly[T]) String() string {
	unit := one[T]()
	var terms []string
	for i := p.Order(); i >= 0; i-- {
		c := p.Coefficient(i)
		if c.IsZero() {
			continue
		}

		var coefficient string
		if !c.Equal(unit) || i == 0 {
			coefficient = fmt.Sprint(c)
		}
		switch {
		case i == 0:
			terms = append(terms, coefficient)
		case i == 1:
			terms = append(terms, coefficient+"x")
		default:
			terms = append(terms, fmt.Sprintf("%sx^%d", coefficient, i))
		}
	}
	if len(terms) == 0 {
		return fmt.Sprint(zero[T]())
	}
	return strings.Join(terms, " + ")
}

// Neg returns -p. It is only available for coefficient types with an additive inverse operation.
func Neg[T interface {
	Ring[T]
	Negator[T]
}](p Poly[T]) Poly[T] {
	result := make([]T, max(len(p.data), 1))
	for i := range result {
		result[i] = p.Coefficient(i).Neg()
	}
	return Poly[T]{result}
}

// BitAnd returns the coefficient-wise AND of p and q. It is only available for bit-valued coefficient types.
func BitAnd[T interface {
	Ring[T]
	Ander[T]
}](p, q Poly[T]) Poly[T] {
	a, b := align(p, q)
	for i := range a {
		a[i] = a[i].And(b[i])
	}
	return Poly[T]{a}
}

// Sum returns p₀ + p₁ + ... + pₙ₋₁, or the zero polynomial if ps is empty.
func Sum[T Ring[T]](ps ...Poly[T]) Poly[T] {
	result := ZeroPoly[T]()
	for _, pᵢ := range ps {
		result = result.Add(pᵢ)
	}
	return result
}

// Product returns p₀ · p₁ · ... · pₙ₋₁, or the one polynomial if ps is empty.
func Product[T Ring[T]](ps ...Poly[T]) Poly[T] {
	result := OnePoly[T]()
	for _, pᵢ := range ps {
		result = result.Mul(pᵢ)
	}
	return result
}
