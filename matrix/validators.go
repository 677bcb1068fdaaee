// SPDX-License-Identifier: MIT
// Package matrix: canonical validators.
//
// Purpose:
//   - Provide a single source of truth for common precondition checks.
//   - Keep kernels/facades minimal by delegating nil/shape checks here.
//   - Return sentinel errors wrapped with a validator tag so call sites
//     can wrap once more with the operation name; errors.Is still matches.
//
// All checks are pure, deterministic, O(1), and allocate nothing beyond
// the error wrapper on the failure path.

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix when m == nil.
func ValidateNotNil[T Ring[T]](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil (callers compose with ValidateNotNil).
// Returns wrapped ErrDimensionMismatch on shape difference.
func ValidateSameShape[T Ring[T]](a, b *Dense[T]) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures the inner dimensions agree (a.Cols == b.Rows).
// Assumes both are non-nil.
func ValidateMulCompatible[T Ring[T]](a, b *Dense[T]) error {
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures m is square (Rows == Cols).
// Assumes m is non-nil. Returns wrapped ErrNonSquare otherwise.
func ValidateSquare[T Ring[T]](m *Dense[T]) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures the vector has exactly length n.
// Returns wrapped ErrLengthMismatch otherwise.
func ValidateVecLen[T Ring[T]](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrLengthMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape[T Ring[T]](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil is the composite NotNil → Square.
func ValidateSquareNonNil[T Ring[T]](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}
