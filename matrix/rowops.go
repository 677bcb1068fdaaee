// Package matrix: elementary row operations.
//
// The three primitives below are the alphabet the elimination engine
// composes from. Each validates its indices before touching storage, so
// a failed call makes no partial mutation; each mutates in place.

package matrix

import "fmt"

const (
	ctxSwapRows = "SwapRows"
	ctxScaleRow = "ScaleRow"
	ctxAddRow   = "AddRow"
)

// rowOpErrorf wraps an error with the row-operation context and the
// offending indices.
func rowOpErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, i, j, err)
}

// SwapRows exchanges all elements of rows i and j in place.
// Swapping a row with itself is a no-op.
//
// Returns wrapped ErrOutOfRange for an invalid row index.
// Complexity: O(c).
func (m *Dense[T]) SwapRows(i, j int) error {
	if i < 0 || i >= m.r {
		return rowOpErrorf(ctxSwapRows, i, j, ErrOutOfRange)
	}
	if j < 0 || j >= m.r {
		return rowOpErrorf(ctxSwapRows, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}

	ri, rj := m.row(i), m.row(j)
	for k := 0; k < m.c; k++ {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// ScaleRow multiplies every element of row i by k in place. k may be
// any element value including the additive identity — callers are
// responsible for not destroying information unintentionally.
//
// Returns wrapped ErrOutOfRange for an invalid row index.
// Complexity: O(c).
func (m *Dense[T]) ScaleRow(i int, k T) error {
	if i < 0 || i >= m.r {
		return rowOpErrorf(ctxScaleRow, i, i, ErrOutOfRange)
	}

	row := m.row(i)
	for idx, e := range row {
		row[idx] = e.Mul(k)
	}

	return nil
}

// AddRow performs row[dst] := row[dst] + k*row[src] element-wise, in
// place. src and dst may be equal.
//
// Returns wrapped ErrOutOfRange for an invalid row index.
// Complexity: O(c).
func (m *Dense[T]) AddRow(src, dst int, k T) error {
	if src < 0 || src >= m.r {
		return rowOpErrorf(ctxAddRow, src, dst, ErrOutOfRange)
	}
	if dst < 0 || dst >= m.r {
		return rowOpErrorf(ctxAddRow, src, dst, ErrOutOfRange)
	}

	// src == dst still composes correctly: the scaled source values are
	// read element-by-element before each write, and each element is
	// touched exactly once.
	rs, rd := m.row(src), m.row(dst)
	for idx := 0; idx < m.c; idx++ {
		rd[idx] = rd[idx].Add(rs[idx].Mul(k))
	}

	return nil
}
