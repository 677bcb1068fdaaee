// Package matrix: built-in element adapters.
// Go's numeric kinds carry no methods, so the constraints are satisfied
// through defined types: Float for field arithmetic over float64, Int
// for the division-free ring over int64.

package matrix

// Float adapts float64 to the Field constraint.
//
// Comparisons are exact (==); the elimination engine applies no epsilon,
// so rounding introduced by float64 arithmetic is part of the caller's
// contract. Use rational.Rational when results must be exact.
type Float float64

// Zero returns 0.
func (Float) Zero() Float { return 0 }

// One returns 1.
func (Float) One() Float { return 1 }

// Add returns f + o.
func (f Float) Add(o Float) Float { return f + o }

// Sub returns f - o.
func (f Float) Sub(o Float) Float { return f - o }

// Mul returns f * o.
func (f Float) Mul(o Float) Float { return f * o }

// Neg returns -f.
func (f Float) Neg() Float { return -f }

// Eq reports exact float64 equality.
func (f Float) Eq(o Float) bool { return f == o }

// Inv returns 1/f, or ErrDivideByZero for the additive identity.
func (f Float) Inv() (Float, error) {
	if f == 0 {
		return 0, ErrDivideByZero
	}

	return 1 / f, nil
}

// Int adapts int64 to the Ring constraint.
//
// Int deliberately satisfies only Ring: integer division truncates, so
// the 1/pivot scaling step of elimination would corrupt results. The
// compiler therefore rejects Int for RREF/Determinant/Solve while the
// division-free subset (Add, Sub, Scale, Mul, Equal) remains available.
type Int int64

// Zero returns 0.
func (Int) Zero() Int { return 0 }

// One returns 1.
func (Int) One() Int { return 1 }

// Add returns i + o.
func (i Int) Add(o Int) Int { return i + o }

// Sub returns i - o.
func (i Int) Sub(o Int) Int { return i - o }

// Mul returns i * o.
func (i Int) Mul(o Int) Int { return i * o }

// Neg returns -i.
func (i Int) Neg() Int { return -i }

// Eq reports int64 equality.
func (i Int) Eq(o Int) bool { return i == o }
