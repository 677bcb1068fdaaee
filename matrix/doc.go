// Package matrix provides generic dense linear algebra primitives:
// construction, element/row/column access, arithmetic, elementary row
// operations and the Gaussian-elimination engine (Reduced Row Echelon
// Form) with its derived operations — determinant, rank, linear
// independence and linear-system solving.
//
// The package is generic over the element type. Two capability tiers
// exist:
//
//   - Ring[T]  — zero, one, +, -, *, equality. Enough for construction,
//     element access and the arithmetic operators (Add, Sub, Scale, Mul,
//     Equal).
//   - Field[T] — Ring plus a multiplicative inverse. Required by every
//     elimination-dependent operation (RREF, Determinant, Rank,
//     LinearlyIndependent, Solve).
//
// Float (float64) and Int (int64) adapters ship with the package;
// rational.Rational satisfies Field for exact elimination. The pivot
// test during elimination is an exact equality against the additive
// identity — no epsilon is applied — so floating-point callers accept
// rounding as part of the contract, and exact element types are
// recommended whenever determinant/solve correctness must be exact.
//
// Storage is row-major: element (i,j) of an r×c matrix lives at flat
// index i*c+j. Matrices are best for small-to-medium dense problems;
// sparse or iterative schemes are out of scope.
//
// All operations are synchronous and single-threaded. A Dense value
// exclusively owns its buffer; row/column views alias that buffer and
// must not outlive the matrix or be shared across goroutines.
//
// See the examples in this package for usage patterns.
package matrix
