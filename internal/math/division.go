package math

import "fmt"

// ErrNotInvertible is returned by ModInv(...) if the given polynomial has no inverse modulo the given modulus.
var ErrNotInvertible = fmt.Errorf("polynomial is not invertible: %w", ErrDivisionByZero)

// DivRem computes the long division of p by d, returning (quotient, remainder) such that p = d·quotient + remainder,
// with remainder.Order() < d.Order() (or remainder = 0 for a constant divisor).
// Returns ErrDivisionByZero if d is the zero polynomial.
func DivRem[T Field[T]](p, d Poly[T]) (quotient, remainder Poly[T], err error) {
	if d.IsZero() {
		return Poly[T]{}, Poly[T]{}, ErrDivisionByZero
	}
	quotient, remainder = divRem(p, d)
	return quotient, remainder, nil
}

// divRem works from the constant term upward: the division of p / x is resolved first, the partial quotient and
// remainder are then multiplied by x again and the constant term of p is added back. A single reduction step restores
// remainder.Order() < d.Order(), as the shifted remainder exceeds the divisor's order by at most one.
// The recursion depth equals the order of p. The divisor d must be nonzero.
func divRem[T Field[T]](p, d Poly[T]) (Poly[T], Poly[T]) {
	if p.IsZero() {
		return ZeroPoly[T](), ZeroPoly[T]()
	}

	q, r := divRem(p.Shr(1), d)
	q = q.Shl(1)
	r = r.Shl(1).Add(p.SubItem(0))

	if r.Order() >= d.Order() {
		c := NewPoly(r.LastCoefficient().Div(d.LastCoefficient()))
		return q.Add(c), r.Sub(d.Mul(c))
	}
	return q, r
}

// Div returns the quotient of the long division p / d.
func Div[T Field[T]](p, d Poly[T]) (Poly[T], error) {
	q, _, err := DivRem(p, d)
	return q, err
}

// Rem returns the remainder of the long division p / d, i.e., p mod d.
func Rem[T Field[T]](p, d Poly[T]) (Poly[T], error) {
	_, r, err := DivRem(p, d)
	return r, err
}

// Egcd runs the extended Euclidean algorithm on (a, b) and returns the Bézout coefficients (x, y), such that
// x·a + y·b = gcd(a, b). For b = 0 the result is (1, 0).
func Egcd[T Field[T]](a, b Poly[T]) (x, y Poly[T]) {
	if b.IsZero() {
		return OnePoly[T](), ZeroPoly[T]()
	}
	q, r := divRem(a, b)
	x, y = Egcd(b, r)
	return y, x.Sub(q.Mul(y))
}

// ModInv returns the multiplicative inverse of p modulo m, taken from the first Bézout coefficient of Egcd(p, m).
// If gcd(p, m) is a constant c other than one, the coefficient is scaled by c⁻¹.
//
// Returns ErrDivisionByZero if m is the zero polynomial, and ErrNotInvertible if p and m are not coprime (including
// p ≡ 0 mod m).
func ModInv[T Field[T]](p, m Poly[T]) (Poly[T], error) {
	if m.IsZero() {
		return Poly[T]{}, ErrDivisionByZero
	}

	x, _ := Egcd(p, m)

	// x·p ≡ gcd(p, m) (mod m)
	_, g := divRem(x.Mul(p), m)
	if g.IsZero() || g.Order() != 0 {
		return Poly[T]{}, ErrNotInvertible
	}

	if c := g.FirstCoefficient(); !c.Equal(one[T]()) {
		x = x.Scale(one[T]().Div(c))
	}
	return x, nil
}
