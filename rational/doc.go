// Package rational implements an exact rational scalar: a
// numerator/denominator pair of fixed-width integers, always reduced
// to lowest terms with the sign carried on the numerator.
//
// Rational is the element type of choice for exact elimination:
// determinants and linear-system solutions computed over Rational
// carry no rounding error, unlike float64. It satisfies the
// matrix.Field constraint structurally (Zero, One, Add, Sub, Mul,
// Neg, Eq, Inv) without importing the matrix package.
//
// Values are immutable: every operation returns a fresh Rational.
// The Go zero value Rational{} is NOT a valid number (its denominator
// is zero); construct through New, FromInt, Zero or One.
//
// Arithmetic stays within int64 — overflow beyond 64 bits is outside
// the contract, matching the fixed-width requirement of the scalar.
package rational
