package math

import "errors"

// ErrDivisionByZero is raised when dividing by the additive identity of a field or by the zero polynomial.
var ErrDivisionByZero = errors.New("division by zero")

// Ring is the contract shared by every coefficient type of Poly[T]. The methods Zero() and One() must not depend on
// the receiver, so that they can be called on the zero value of T, e.g. `var t T; t.Zero()`.
//
// All operations are value-semantic, neither the receiver nor the argument may be modified.
type Ring[T any] interface {
	// x.Zero() returns the additive identity.
	Zero() T

	// x.One() returns the multiplicative identity.
	One() T

	// x.Add(y) returns x + y.
	Add(y T) T

	// x.Sub(y) returns x - y.
	Sub(y T) T

	// x.Mul(y) returns x * y.
	Mul(y T) T

	// x.Equal(y) returns true if x and y represent the same value.
	Equal(y T) bool

	// x.IsZero() returns true if x equals the additive identity.
	IsZero() bool
}

// Field extends Ring with division. x.Div(y) returns x / y and panics with ErrDivisionByZero if y is zero, which
// always indicates a bug in the caller.
type Field[T any] interface {
	Ring[T]
	Div(y T) T
}

// Negator is implemented by coefficient types with an additive inverse operation.
type Negator[T any] interface {
	Neg() T
}

// Ander is implemented by bit-valued coefficient types supporting a logical AND.
type Ander[T any] interface {
	And(y T) T
}

func zero[T Ring[T]]() T {
	var t T
	return t.Zero()
}

func one[T Ring[T]]() T {
	var t T
	return t.One()
}
