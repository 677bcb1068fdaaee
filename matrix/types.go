// Package matrix: element-type capability contracts.
// This file declares the generic constraints every element type must
// satisfy, split into the division-free tier (Ring) and the
// elimination tier (Field).

package matrix

// Ring is the capability set required for construction, element access
// and the arithmetic operators (Add, Sub, Scale, Mul, Equal).
//
// All methods are pure value operations: they return fresh values and
// never mutate the receiver. Zero and One must be callable on any
// value of the type, including its Go zero value, so that generic code
// can obtain the identities without a seed (e.g. `var z T; z.Zero()`).
//
// Eq must be an exact equality; the elimination engine relies on it for
// its pivot test and applies no tolerance of its own.
type Ring[T any] interface {
	// Zero returns the additive identity of the type.
	Zero() T

	// One returns the multiplicative identity of the type.
	One() T

	// Add returns receiver + operand.
	Add(T) T

	// Sub returns receiver - operand.
	Sub(T) T

	// Mul returns receiver * operand.
	Mul(T) T

	// Neg returns the additive inverse of the receiver.
	Neg() T

	// Eq reports exact equality with the operand.
	Eq(T) bool
}

// Field extends Ring with the multiplicative inverse needed by the
// elimination engine (the 1/pivot scaling step). Inv must fail for the
// additive identity instead of producing an invalid value; elimination
// only inverts pivots it has already verified to be non-zero.
//
// Types satisfying only Ring (e.g. Int) may still use the
// division-free subset of the package.
type Field[T any] interface {
	Ring[T]

	// Inv returns the multiplicative inverse of the receiver, or an
	// error when the receiver is the additive identity.
	Inv() (T, error)
}
