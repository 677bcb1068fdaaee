// Package matrix: arithmetic operators over Dense matrices.
// All operators are package-level facades in the pattern
// validate → allocate → single deterministic kernel loop. Operands are
// never mutated; every result is a freshly allocated Dense.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opScale = "Scale"
	opMul   = "Mul"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// sentinel via %w. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a ± b elementwise over the flat buffers.
// Shared kernel for Add/Sub: validation, allocation and loop are
// identical, only the combining step differs.
func addSub[T Ring[T]](a, b *Dense[T], negate bool, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, err := NewDense[T](a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	n := a.r * a.c
	for idx := 0; idx < n; idx++ { // deterministic 0..n-1
		if negate {
			res.data[idx] = a.data[idx].Sub(b.data[idx])
		} else {
			res.data[idx] = a.data[idx].Add(b.data[idx])
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors: ErrNilMatrix (nil operand), ErrDimensionMismatch (shape
// difference) — both fail before any element is computed.
// Complexity: O(r*c) time, O(r*c) space for the result.
func Add[T Ring[T]](a, b *Dense[T]) (*Dense[T], error) {
	return addSub(a, b, false, opAdd)
}

// Sub computes the element-wise difference C = A - B.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub[T Ring[T]](a, b *Dense[T]) (*Dense[T], error) {
	return addSub(a, b, true, opSub)
}

// Scale computes the element-wise product C = k·A. Scaling always
// succeeds for a valid matrix, including k equal to the additive
// identity.
//
// Errors: ErrNilMatrix only.
// Complexity: O(r*c).
func Scale[T Ring[T]](a *Dense[T], k T) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res, err := NewDense[T](a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	n := a.r * a.c
	for idx := 0; idx < n; idx++ {
		res.data[idx] = a.data[idx].Mul(k)
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B with
// (AB)ij = Σk Aik·Bkj. The kernel runs i→k→j over the flat row-major
// buffers and skips zero A[i,k] to avoid useless multiplies.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch when A.Cols != B.Rows.
// Result shape: A.Rows × B.Cols.
// Complexity: O(r·n·c) time, O(r·c) space.
func Mul[T Ring[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewDense[T](a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var z T
	zero := z.Zero()

	var i, j, k int
	var av T
	var rowOffsetA, rowOffsetB, rowOffsetR int
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.c
		rowOffsetR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			if av.Eq(zero) {
				continue
			}
			rowOffsetB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowOffsetR+j] = res.data[rowOffsetR+j].Add(av.Mul(b.data[rowOffsetB+j]))
			}
		}
	}

	return res, nil
}

// Equal reports whether a and b have identical shape and elements.
// Mismatched dimensions are simply unequal — never an error. Two nil
// matrices compare equal; nil never equals non-nil.
// Complexity: O(r*c) worst case.
func Equal[T Ring[T]](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}

	n := a.r * a.c
	for idx := 0; idx < n; idx++ {
		if !a.data[idx].Eq(b.data[idx]) {
			return false
		}
	}

	return true
}
