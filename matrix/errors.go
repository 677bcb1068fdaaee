// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations return these sentinels and tests check
// them via errors.Is. No operation panics on user-triggered error
// conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping across logs. Sentinels are wrapped with fmt.Errorf("ctx: %w",
// ErrX) at detection sites; callers still match with errors.Is.
//
// The set splits into two contract classes:
//   invalid-argument — a structural precondition was violated at entry;
//   out-of-range     — an index-based access fell outside bounds.
// Both fail before any observable mutation.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive, or that a nested constructor received an empty outer
	// or inner list. Constructors validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrLengthMismatch indicates that a flat element slice (or a
	// right-hand-side vector) does not have the exact required length.
	ErrLengthMismatch = errors.New("matrix: element count does not match dimensions")

	// ErrRaggedRows indicates that the rows (or columns) handed to a
	// nested constructor have unequal lengths.
	ErrRaggedRows = errors.New("matrix: nested rows have unequal lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside
	// valid bounds. Public indexers (At/Set, views, row operations) MUST
	// return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add/Sub with different shapes, or Mul where
	// a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (Determinant)
	// but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDivideByZero is returned by Float.Inv for the additive identity;
	// elimination never triggers it (pivots are non-zero by selection).
	ErrDivideByZero = errors.New("matrix: division by zero")
)
