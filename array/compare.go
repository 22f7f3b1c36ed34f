package array

import "github.com/ndkit/ndkit/shape"

// Default tolerances used by the closeness predicates when callers have no
// better ones.
const (
	DefaultAtol = 1e-8
	DefaultRtol = 1e-5
)

// scalarClose reports |a-b| <= atol + rtol*|b|.
func scalarClose[T Float](a, b, atol, rtol T) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	ref := b
	if ref < 0 {
		ref = -ref
	}
	return diff <= atol+rtol*ref
}

// Eq compares two arrays of equal dims element-wise for equality.
func Eq[T DType](lhs, rhs *Array[T]) (*Array[bool], error) {
	return Transform2(lhs, rhs, func(a, b T) bool { return a == b })
}

// EqScalar compares every element of arr against value.
func EqScalar[T DType](arr *Array[T], value T) *Array[bool] {
	return Transform(arr, func(a T) bool { return a == value })
}

// Ne compares two arrays of equal dims element-wise for inequality.
func Ne[T DType](lhs, rhs *Array[T]) (*Array[bool], error) {
	return Transform2(lhs, rhs, func(a, b T) bool { return a != b })
}

// NeScalar compares every element of arr against value for inequality.
func NeScalar[T DType](arr *Array[T], value T) *Array[bool] {
	return Transform(arr, func(a T) bool { return a != value })
}

// Gt compares two arrays of equal dims element-wise with >.
func Gt[T Numeric](lhs, rhs *Array[T]) (*Array[bool], error) {
	return Transform2(lhs, rhs, func(a, b T) bool { return a > b })
}

// GtScalar compares every element of arr against value with >.
func GtScalar[T Numeric](arr *Array[T], value T) *Array[bool] {
	return Transform(arr, func(a T) bool { return a > value })
}

// Ge compares two arrays of equal dims element-wise with >=.
func Ge[T Numeric](lhs, rhs *Array[T]) (*Array[bool], error) {
	return Transform2(lhs, rhs, func(a, b T) bool { return a >= b })
}

// GeScalar compares every element of arr against value with >=.
func GeScalar[T Numeric](arr *Array[T], value T) *Array[bool] {
	return Transform(arr, func(a T) bool { return a >= value })
}

// Lt compares two arrays of equal dims element-wise with <.
func Lt[T Numeric](lhs, rhs *Array[T]) (*Array[bool], error) {
	return Transform2(lhs, rhs, func(a, b T) bool { return a < b })
}

// LtScalar compares every element of arr against value with <.
func LtScalar[T Numeric](arr *Array[T], value T) *Array[bool] {
	return Transform(arr, func(a T) bool { return a < value })
}

// Le compares two arrays of equal dims element-wise with <=.
func Le[T Numeric](lhs, rhs *Array[T]) (*Array[bool], error) {
	return Transform2(lhs, rhs, func(a, b T) bool { return a <= b })
}

// LeScalar compares every element of arr against value with <=.
func LeScalar[T Numeric](arr *Array[T], value T) *Array[bool] {
	return Transform(arr, func(a T) bool { return a <= value })
}

// CloseTo compares two float arrays of equal dims element-wise within
// absolute and relative tolerances.
func CloseTo[T Float](lhs, rhs *Array[T], atol, rtol T) (*Array[bool], error) {
	return Transform2(lhs, rhs, func(a, b T) bool { return scalarClose(a, b, atol, rtol) })
}

// CloseToScalar compares every element of arr against value within
// absolute and relative tolerances.
func CloseToScalar[T Float](arr *Array[T], value, atol, rtol T) *Array[bool] {
	return Transform(arr, func(a T) bool { return scalarClose(a, value, atol, rtol) })
}

// AllMatch reports whether fn holds for every aligned element pair. Two
// arrays are matchable when both are empty (vacuously true) or their dims
// are equal; any other shape combination is false, never an error.
func AllMatch[T1, T2 DType](lhs *Array[T1], rhs *Array[T2], fn func(T1, T2) bool) bool {
	le, re := Empty(lhs), Empty(rhs)
	if le && re {
		return true
	}
	if le || re {
		return false
	}
	if !shape.Equal(lhs.header.Dims(), rhs.header.Dims()) {
		return false
	}
	for cur := NewCursor(nil, lhs.header.Dims()); cur.Valid(); cur.Next() {
		if !fn(lhs.At(cur.Subs()...), rhs.At(cur.Subs()...)) {
			return false
		}
	}
	return true
}

// AllMatchScalar reports whether fn holds between every element and a
// fixed scalar; vacuously true for an empty array.
func AllMatchScalar[T1, T2 DType](arr *Array[T1], value T2, fn func(T1, T2) bool) bool {
	if Empty(arr) {
		return true
	}
	for cur := NewCursor(nil, arr.header.Dims()); cur.Valid(); cur.Next() {
		if !fn(arr.At(cur.Subs()...), value) {
			return false
		}
	}
	return true
}

// AnyMatch reports whether fn holds for at least one aligned element pair,
// under the same matchability rules as AllMatch.
func AnyMatch[T1, T2 DType](lhs *Array[T1], rhs *Array[T2], fn func(T1, T2) bool) bool {
	le, re := Empty(lhs), Empty(rhs)
	if le && re {
		return true
	}
	if le || re {
		return false
	}
	if !shape.Equal(lhs.header.Dims(), rhs.header.Dims()) {
		return false
	}
	for cur := NewCursor(nil, lhs.header.Dims()); cur.Valid(); cur.Next() {
		if fn(lhs.At(cur.Subs()...), rhs.At(cur.Subs()...)) {
			return true
		}
	}
	return false
}

// AnyMatchScalar reports whether fn holds between some element and a fixed
// scalar; false for an empty array.
func AnyMatchScalar[T1, T2 DType](arr *Array[T1], value T2, fn func(T1, T2) bool) bool {
	if Empty(arr) {
		return false
	}
	for cur := NewCursor(nil, arr.header.Dims()); cur.Valid(); cur.Next() {
		if fn(arr.At(cur.Subs()...), value) {
			return true
		}
	}
	return false
}

// AllEqual reports whole-array equality: matchable shapes and equal
// elements everywhere.
func AllEqual[T DType](lhs, rhs *Array[T]) bool {
	return AllMatch(lhs, rhs, func(a, b T) bool { return a == b })
}

// AllEqualScalar reports whether every element equals value.
func AllEqualScalar[T DType](arr *Array[T], value T) bool {
	return AllMatchScalar(arr, value, func(a, b T) bool { return a == b })
}

// AnyEqual reports whether some aligned element pair is equal.
func AnyEqual[T DType](lhs, rhs *Array[T]) bool {
	return AnyMatch(lhs, rhs, func(a, b T) bool { return a == b })
}

// AnyEqualScalar reports whether some element equals value.
func AnyEqualScalar[T DType](arr *Array[T], value T) bool {
	return AnyMatchScalar(arr, value, func(a, b T) bool { return a == b })
}

// AllClose reports whole-array closeness within absolute and relative
// tolerances.
func AllClose[T Float](lhs, rhs *Array[T], atol, rtol T) bool {
	return AllMatch(lhs, rhs, func(a, b T) bool { return scalarClose(a, b, atol, rtol) })
}

// AllCloseScalar reports whether every element is close to value within
// absolute and relative tolerances.
func AllCloseScalar[T Float](arr *Array[T], value, atol, rtol T) bool {
	return AllMatchScalar(arr, value, func(a, b T) bool { return scalarClose(a, b, atol, rtol) })
}
