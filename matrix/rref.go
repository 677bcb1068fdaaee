// SPDX-License-Identifier: MIT
// Package matrix: the elimination engine and its derived operations.
//
// RREF — Reduced Row Echelon Form
//
// Algorithm outline (column-sweep, row-sweep pivot search):
//  1. Keep a pivot-row cursor r and pivot-column cursor c, both from 0.
//  2. Scan rows i = r..R-1 of column c for the first entry that is not
//     the additive identity (exact equality, no epsilon).
//  3. No such row → advance c only and retry: an all-zero column must
//     not consume a pivot row.
//  4. Found at i != r → swap rows i and r, count the swap.
//  5. pivot = m(r,c). If pivot is not the multiplicative identity,
//     multiply the running scale-product by pivot FIRST, then scale the
//     row by 1/pivot. The accumulator tracks what must be multiplied
//     back in to reconstruct the determinant, hence pivot, not 1/pivot.
//  6. Eliminate column c in every other row, above and below, via
//     AddRow(r, i, -m(i,c)).
//  7. Advance r and c; stop when either cursor leaves the matrix.
//
// The trace (swap count, scale product) feeds Determinant: each row
// swap negates the determinant and each row scaling by k multiplies it
// by k, while row addition leaves it unchanged. Replaying those effects
// against the reduced matrix's diagonal recovers det exactly.
//
// Complexity: O(R) pivot steps of O(R·C) elimination work each;
// deterministic and unconditionally terminating.

package matrix

const (
	opRREF  = "RREF"
	opDet   = "Determinant"
	opRank  = "Rank"
	opIndep = "LinearlyIndependent"
	opSolve = "Solve"
)

// rrefTrace bundles the outcome of one traced elimination run: the
// reduced matrix, the number of row swaps performed, and the cumulative
// product of non-unit pivots. Transient — consumed immediately by the
// derived operations and the white-box tests.
type rrefTrace[T Field[T]] struct {
	reduced *Dense[T]
	swaps   int
	scale   T
}

// rref runs the traced elimination on a clone of m. The input is never
// mutated. Errors can only originate from pivot inversion, which is
// unreachable for a correctly implemented Field (pivots are non-zero by
// selection); they are propagated rather than swallowed.
func rref[T Field[T]](m *Dense[T]) (rrefTrace[T], error) {
	out := m.Clone()

	var z T
	zero, one := z.Zero(), z.One()
	tr := rrefTrace[T]{reduced: out, scale: one}

	var r, c int
	for r < out.r && c < out.c {
		// Pivot search: first row at or below the cursor with a
		// non-zero entry in column c.
		pivotRow := -1
		for i := r; i < out.r; i++ {
			if !out.data[i*out.c+c].Eq(zero) {
				pivotRow = i

				break
			}
		}
		if pivotRow < 0 {
			// Degenerate column: advance the column cursor without
			// consuming a pivot row.
			c++

			continue
		}

		if pivotRow != r {
			if err := out.SwapRows(pivotRow, r); err != nil {
				return rrefTrace[T]{}, matrixErrorf(opRREF, err)
			}
			tr.swaps++
		}

		pivot := out.data[r*out.c+c]
		if !pivot.Eq(one) {
			// Accumulate the pivot before scaling; the ordering is part
			// of the determinant contract.
			tr.scale = tr.scale.Mul(pivot)
			inv, err := pivot.Inv()
			if err != nil {
				return rrefTrace[T]{}, matrixErrorf(opRREF, err)
			}
			if err = out.ScaleRow(r, inv); err != nil {
				return rrefTrace[T]{}, matrixErrorf(opRREF, err)
			}
		}

		// Clear column c in every other row, above and below the pivot.
		for i := 0; i < out.r; i++ {
			if i == r {
				continue
			}
			factor := out.data[i*out.c+c]
			if factor.Eq(zero) {
				continue
			}
			if err := out.AddRow(r, i, factor.Neg()); err != nil {
				return rrefTrace[T]{}, matrixErrorf(opRREF, err)
			}
		}

		r++
		c++
	}

	return tr, nil
}

// RREF returns the Reduced Row Echelon Form of m as a new matrix; m is
// never mutated. RREF is idempotent: RREF(RREF(m)) == RREF(m).
//
// Errors: ErrNilMatrix.
// Complexity: O(R²·C).
func RREF[T Field[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}

	tr, err := rref(m)
	if err != nil {
		return nil, err
	}

	return tr.reduced, nil
}

// Determinant computes det(m) for a square matrix by replaying the
// elimination trace: the product of the reduced diagonal, negated once
// per row swap, multiplied by the accumulated pivot product. A 1×1
// matrix returns its sole element directly, bypassing elimination.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(R³) via elimination.
func Determinant[T Field[T]](m *Dense[T]) (T, error) {
	var z T
	if err := ValidateSquareNonNil(m); err != nil {
		return z.Zero(), matrixErrorf(opDet, err)
	}

	if m.r == 1 {
		return m.data[0], nil
	}

	tr, err := rref(m)
	if err != nil {
		return z.Zero(), err
	}

	det := z.One()
	for i := 0; i < m.r; i++ {
		det = det.Mul(tr.reduced.data[i*m.c+i])
	}
	if tr.swaps%2 == 1 {
		det = det.Neg()
	}

	return det.Mul(tr.scale), nil
}

// Rank returns the rank of m: the number of non-zero rows in its
// Reduced Row Echelon Form.
//
// Errors: ErrNilMatrix.
// Complexity: O(R²·C).
func Rank[T Field[T]](m *Dense[T]) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	tr, err := rref(m)
	if err != nil {
		return 0, err
	}

	var z T
	zero := z.Zero()

	rank := 0
	for i := 0; i < m.r; i++ {
		row := tr.reduced.row(i)
		for j := 0; j < m.c; j++ {
			if !row[j].Eq(zero) {
				rank++

				break
			}
		}
	}

	return rank, nil
}

// LinearlyIndependent reports whether the COLUMNS of m form a linearly
// independent set: independent iff rank(m) equals the column count.
// The column convention matches NewDenseFromColumns, the natural way to
// ask the question about a set of vectors; no operation in this package
// mixes in a row convention.
//
// Errors: ErrNilMatrix.
// Complexity: O(R²·C).
func LinearlyIndependent[T Field[T]](m *Dense[T]) (bool, error) {
	rank, err := Rank(m)
	if err != nil {
		return false, matrixErrorf(opIndep, err)
	}

	return rank == m.c, nil
}

// Solve finds x with a·x = b by eliminating the augmented matrix [A|b].
//
// The boolean reports whether a unique solution exists: it is false —
// with a nil slice and a nil error — when the system is inconsistent
// (a reduced row with an all-zero left block but a non-zero augmented
// entry) or when the rank is below the column count (free variables, no
// unique solution). "No solution" is a normal outcome, not a failure.
//
// Errors: ErrNilMatrix; ErrLengthMismatch when len(b) != a.Rows().
// Complexity: O(R²·C).
func Solve[T Field[T]](a *Dense[T], b []T) ([]T, bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, false, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.r); err != nil {
		return nil, false, matrixErrorf(opSolve, err)
	}

	// Augment: [A|b], one extra column carrying the right-hand side.
	augCols := a.c + 1
	aug := &Dense[T]{r: a.r, c: augCols, data: make([]T, a.r*augCols)}
	for i := 0; i < a.r; i++ {
		copy(aug.data[i*augCols:i*augCols+a.c], a.row(i))
		aug.data[i*augCols+a.c] = b[i]
	}

	tr, err := rref(aug)
	if err != nil {
		return nil, false, err
	}
	red := tr.reduced

	var z T
	zero := z.Zero()

	// Inconsistency scan and left-block rank in one pass.
	rank := 0
	for i := 0; i < red.r; i++ {
		row := red.row(i)
		leftZero := true
		for j := 0; j < a.c; j++ {
			if !row[j].Eq(zero) {
				leftZero = false

				break
			}
		}
		if leftZero {
			if !row[a.c].Eq(zero) {
				// 0 = non-zero: no solution at all.
				return nil, false, nil
			}

			continue
		}
		rank++
	}

	if rank < a.c {
		// Consistent but underdetermined: no unique solution to report.
		return nil, false, nil
	}

	// Full column rank: each of the first `rank` rows holds a unit pivot;
	// its augmented entry is the solution component for that pivot column.
	x := make([]T, a.c)
	for i := 0; i < rank; i++ {
		row := red.row(i)
		for j := 0; j < a.c; j++ {
			if !row[j].Eq(zero) {
				x[j] = row[a.c]

				break
			}
		}
	}

	return x, true, nil
}
