// SPDX-License-Identifier: MIT
// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors
//     instead of panicking; constructors either fully succeed or leave
//     no observable partial object.
//   - Support no-copy views: RowView aliases a contiguous row slice,
//     ColView is a strided live window over one column.
//
// Complexity quicksheet:
//   - Constructors: O(r*c); At/Set: O(1); Clone: O(r*c);
//     RowView/ColView: O(1); String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRowView = "RowView"
	ctxColView = "ColView"
)

// ---------- formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite
// indices. Sentinels stay matchable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over the element type T.
//   - r,c hold dimensions (both >= 1, immutable after construction).
//   - data is a flat buffer of length r*c in row-major order
//     (offset = i*c + j).
//
// A Dense value exclusively owns its buffer: copies made by Clone are
// deep, and no operation in this package shares storage between
// distinct Dense values. Concurrent use of the same value without
// external synchronization is out of contract.
type Dense[T Ring[T]] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// NewDense creates an r×c matrix with every element set to the additive
// identity of T. Note this is T.Zero(), not Go's zero value — for
// element types like rational.Rational the two differ.
//
// Returns ErrInvalidDimensions when rows or cols is < 1.
// Complexity: O(r*c) time and memory.
func NewDense[T Ring[T]](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	var z T
	zero := z.Zero()
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = zero
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// NewDenseFromSlice creates an r×c matrix with elements consumed from
// data in row-major order (the package's declared ordering). The slice
// is copied; the caller keeps ownership of data.
//
// Returns ErrInvalidDimensions on non-positive dimensions and
// ErrLengthMismatch when len(data) != rows*cols.
func NewDenseFromSlice[T Ring[T]](rows, cols int, data []T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, ErrLengthMismatch
	}

	buf := make([]T, len(data))
	copy(buf, data)

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// NewDenseColMajor creates an r×c matrix with elements consumed from
// data in COLUMN-major order: data[j*rows+i] becomes element (i,j).
// Useful when ingesting column-oriented sources; storage is transposed
// into the package's row-major layout.
//
// Returns ErrInvalidDimensions on non-positive dimensions and
// ErrLengthMismatch when len(data) != rows*cols.
func NewDenseColMajor[T Ring[T]](rows, cols int, data []T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, ErrLengthMismatch
	}

	buf := make([]T, rows*cols)
	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			buf[i*cols+j] = data[j*rows+i]
		}
	}

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// NewDenseFromRows creates a matrix from nested rows, deriving the
// dimensions from the structure. Each inner slice is one row.
//
// Returns ErrInvalidDimensions when the outer slice or the first row is
// empty, and ErrRaggedRows when rows have unequal lengths.
func NewDenseFromRows[T Ring[T]](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}

	r, c := len(rows), len(rows[0])
	buf := make([]T, 0, r*c)
	for _, row := range rows {
		if len(row) == 0 {
			return nil, ErrInvalidDimensions
		}
		if len(row) != c {
			return nil, ErrRaggedRows
		}
		buf = append(buf, row...)
	}

	return &Dense[T]{r: r, c: c, data: buf}, nil
}

// NewDenseFromColumns creates a matrix from nested columns: column j of
// the result is cols[j]. The symmetric factory to NewDenseFromRows,
// transposed into row-major storage.
//
// Returns ErrInvalidDimensions when the outer slice or any column is
// empty, and ErrRaggedRows when columns have unequal lengths.
func NewDenseFromColumns[T Ring[T]](cols [][]T) (*Dense[T], error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, ErrInvalidDimensions
	}

	c, r := len(cols), len(cols[0])
	buf := make([]T, r*c)
	var i, j int
	for j = 0; j < c; j++ {
		if len(cols[j]) == 0 {
			return nil, ErrInvalidDimensions
		}
		if len(cols[j]) != r {
			return nil, ErrRaggedRows
		}
		for i = 0; i < r; i++ {
			buf[i*c+j] = cols[j][i]
		}
	}

	return &Dense[T]{r: r, c: c, data: buf}, nil
}

// Identity creates the n×n identity-pattern matrix: T.One() on the
// diagonal, T.Zero() elsewhere.
//
// Returns ErrInvalidDimensions when n < 1.
func Identity[T Ring[T]](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}

	var z T
	one := z.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns a wrapped
// ErrOutOfRange. All bounds checking funnels through here.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns wrapped ErrOutOfRange for indices outside [0,Rows)×[0,Cols).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var z T
		return z.Zero(), err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns wrapped ErrOutOfRange for invalid indices; the matrix is
// untouched on failure.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// row returns the aliasing slice of row i. Internal fast path; callers
// have already validated i.
func (m *Dense[T]) row(i int) []T {
	return m.data[i*m.c : (i+1)*m.c]
}

// RowView returns a live view over row i: the returned slice aliases
// the matrix's backing buffer, so writes through it mutate the matrix.
// The view must not outlive the matrix and carries no synchronization.
//
// Returns wrapped ErrOutOfRange for an invalid row index.
// Complexity: O(1), no copy.
func (m *Dense[T]) RowView(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRowView, i, 0, ErrOutOfRange)
	}

	return m.row(i), nil
}

// ColView returns a live strided view over column j. Reads and writes
// through the view operate directly on the matrix's backing buffer.
// The view must not outlive the matrix and carries no synchronization.
//
// Returns wrapped ErrOutOfRange for an invalid column index.
// Complexity: O(1), no copy.
func (m *Dense[T]) ColView(j int) (*ColView[T], error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxColView, 0, j, ErrOutOfRange)
	}

	return &ColView[T]{m: m, col: j}, nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: buf}
}

// String implements fmt.Stringer: one bracketed row per line in
// row-major order. Diagnostic rendering only, not a stable format.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(fmtRowOpen)
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(fmtSep)
			}
		}
		sb.WriteString(fmtRowClose)
	}

	return sb.String()
}

// ColView is a live window over a single column of a Dense matrix.
// It aliases the owning matrix's storage: Set writes through, and
// mutations of the matrix are visible via At. Intended for sequential,
// single-threaded use immediately after acquisition.
type ColView[T Ring[T]] struct {
	m   *Dense[T]
	col int
}

// Len returns the number of elements in the column (the matrix's row count).
func (v *ColView[T]) Len() int { return v.m.r }

// At retrieves element i of the column.
// Returns wrapped ErrOutOfRange when i is outside [0,Len).
func (v *ColView[T]) At(i int) (T, error) {
	return v.m.At(i, v.col)
}

// Set assigns element i of the column, writing through to the matrix.
// Returns wrapped ErrOutOfRange when i is outside [0,Len).
func (v *ColView[T]) Set(i int, val T) error {
	return v.m.Set(i, v.col, val)
}

// Slice materializes the column into a fresh, independent slice.
// Complexity: O(r).
func (v *ColView[T]) Slice() []T {
	out := make([]T, v.m.r)
	for i := 0; i < v.m.r; i++ {
		out[i] = v.m.data[i*v.m.c+v.col]
	}

	return out
}

// String renders the column top-to-bottom on one line, e.g. "[1, 0, 5]".
func (v *ColView[T]) String() string {
	var sb strings.Builder
	sb.WriteString(fmtRowOpen)
	for i := 0; i < v.m.r; i++ {
		fmt.Fprintf(&sb, "%v", v.m.data[i*v.m.c+v.col])
		if i < v.m.r-1 {
			sb.WriteString(fmtSep)
		}
	}
	sb.WriteString("]")

	return sb.String()
}
