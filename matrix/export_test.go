package matrix

// Test-bridge exposing the traced elimination engine to package
// matrix_test, so white-box tests can assert on the swap count and the
// pivot scale-product without widening the production API.

// RREFTraceForTest runs the traced engine and returns
// (reduced, swapCount, scaleProduct, err).
func RREFTraceForTest[T Field[T]](m *Dense[T]) (*Dense[T], int, T, error) {
	tr, err := rref(m)

	return tr.reduced, tr.swaps, tr.scale, err
}
