// Package linalg is a small, exact-first linear algebra toolkit:
// generic dense matrices over any ring- or field-like element type,
// plus the rational scalar that makes elimination results exact.
//
// 🚀 What is linalg?
//
//	A pure-Go library that brings together:
//		• Dense[T]: row-major generic matrices with safe, error-returning access
//		• Row primitives: swap, scale, add-multiple — the elimination alphabet
//		• RREF: traced Gaussian elimination with swap/scale bookkeeping
//		• Derived ops: determinant, rank, linear independence, Ax=b solving
//		• Arithmetic: add, subtract, scalar scale, matrix multiply, equality
//		• rational.Rational: an exact lowest-terms field element
//
// ✨ Why choose linalg?
//
//   - Exact by choice – plug in rational.Rational and determinants are integers,
//     not approximations; plug in matrix.Float when speed beats exactness
//   - Rock-solid guarantees – fail-fast sentinel errors, no partial mutation
//   - Pure Go – no cgo, no hidden deps
//   - Generic – any type satisfying the Ring/Field constraints works
//
// Everything is organized under two subpackages:
//
//	matrix/   — Dense[T] storage, views, arithmetic and the elimination engine
//	rational/ — the exact Rational scalar (numerator/denominator, lowest terms)
//
// Quick ASCII example:
//
//	    ⎡1 -2  1⎤       ⎡ 0⎤            ⎡ 1⎤
//	A = ⎢0  2 -8⎥   b = ⎢ 8⎥   Ax = b ⇒ ⎢ 0⎥
//	    ⎣5  0 -5⎦       ⎣10⎦            ⎣-1⎦
//
// Dive into the package examples for full usage patterns.
//
//	go get github.com/woji/linalg
package linalg
