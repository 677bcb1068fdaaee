package rational

import (
	"errors"
	"strconv"
)

var (
	// ErrZeroDenominator indicates a construction attempt with denominator == 0.
	ErrZeroDenominator = errors.New("rational: denominator cannot be zero")

	// ErrDivideByZero indicates a division (or inversion) by a rational
	// whose numerator is zero — the result would have a zero denominator.
	ErrDivideByZero = errors.New("rational: division by zero")
)

// Rational is an exact fraction num/den with den > 0, kept in lowest terms.
// The invariant is maintained by every constructor and operation; the Go
// zero value violates it and must not be used.
type Rational struct {
	num int64 // numerator, carries the sign
	den int64 // denominator, always > 0
}

// New constructs the rational num/den reduced to lowest terms.
// Returns ErrZeroDenominator when den == 0.
// Complexity: O(log min(|num|,|den|)) for the gcd.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}

	return reduce(num, den), nil
}

// FromInt constructs the rational v/1.
// Complexity: O(1).
func FromInt(v int64) Rational {
	return Rational{num: v, den: 1}
}

// Zero returns the additive identity 0/1.
// Callable on any Rational, including the zero value.
func (Rational) Zero() Rational { return Rational{num: 0, den: 1} }

// One returns the multiplicative identity 1/1.
// Callable on any Rational, including the zero value.
func (Rational) One() Rational { return Rational{num: 1, den: 1} }

// Num returns the numerator (sign carrier).
func (r Rational) Num() int64 { return r.num }

// Den returns the denominator (always positive for constructed values).
func (r Rational) Den() int64 { return r.den }

// Add returns r + o in lowest terms.
// Complexity: O(log) for the reducing gcd.
func (r Rational) Add(o Rational) Rational {
	return reduce(r.num*o.den+o.num*r.den, r.den*o.den)
}

// Sub returns r - o in lowest terms.
func (r Rational) Sub(o Rational) Rational {
	return reduce(r.num*o.den-o.num*r.den, r.den*o.den)
}

// Mul returns r * o in lowest terms.
func (r Rational) Mul(o Rational) Rational {
	return reduce(r.num*o.num, r.den*o.den)
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{num: -r.num, den: r.den}
}

// Div returns r / o in lowest terms.
// Returns ErrDivideByZero when o's numerator is zero (the quotient
// would have a zero denominator).
func (r Rational) Div(o Rational) (Rational, error) {
	if o.num == 0 {
		return Rational{}, ErrDivideByZero
	}

	return reduce(r.num*o.den, r.den*o.num), nil
}

// Inv returns the multiplicative inverse 1/r.
// Returns ErrDivideByZero when r is the additive identity.
func (r Rational) Inv() (Rational, error) {
	if r.num == 0 {
		return Rational{}, ErrDivideByZero
	}

	return reduce(r.den, r.num), nil
}

// Eq reports whether r and o denote the same number. Both sides are in
// lowest terms with positive denominators, so structural comparison is exact.
func (r Rational) Eq(o Rational) bool {
	return r.num == o.num && r.den == o.den
}

// AddInt returns r + v, a convenience for integer operands.
func (r Rational) AddInt(v int64) Rational {
	return reduce(r.num+v*r.den, r.den)
}

// MulInt returns r * v.
func (r Rational) MulInt(v int64) Rational {
	return reduce(r.num*v, r.den)
}

// DivInt returns r / v.
// Returns ErrDivideByZero when v == 0.
func (r Rational) DivInt(v int64) (Rational, error) {
	if v == 0 {
		return Rational{}, ErrDivideByZero
	}

	return reduce(r.num, r.den*v), nil
}

// String renders "num/den", or just "num" when the denominator is 1.
// Diagnostic rendering only; not a stable serialization format.
func (r Rational) String() string {
	if r.den == 1 {
		return strconv.FormatInt(r.num, 10)
	}

	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.den, 10)
}

// reduce normalizes num/den to lowest terms with den > 0.
// Precondition: den != 0 (all callers have already rejected zero).
func reduce(num, den int64) Rational {
	if num == 0 {
		return Rational{num: 0, den: 1}
	}
	// Move the sign onto the numerator.
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)

	return Rational{num: num / g, den: den / g}
}

// gcd computes the greatest common divisor of a and b via Euclid.
// Precondition: a > 0, b > 0.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
