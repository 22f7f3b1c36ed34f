package array

import (
	"fmt"

	"github.com/ndkit/ndkit/shape"
)

// Transform applies fn to every element of arr, producing a same-shaped
// array of fn's result type. Scalar broadcasting is expressed by closing
// over the scalar.
func Transform[T, U DType](arr *Array[T], fn func(T) U) *Array[U] {
	if Empty(arr) {
		return &Array[U]{}
	}
	res := New[U](arr.header.Dims()...)
	for cur := NewCursor(nil, arr.header.Dims()); cur.Valid(); cur.Next() {
		res.Set(fn(arr.At(cur.Subs()...)), cur.Subs()...)
	}
	return res
}

// Transform2 applies fn pairwise over two arrays, which must have equal
// dims; there is no implicit shape broadcasting.
func Transform2[T1, T2, U DType](lhs *Array[T1], rhs *Array[T2], fn func(T1, T2) U) (*Array[U], error) {
	if !shape.Equal(lhs.header.Dims(), rhs.header.Dims()) {
		return nil, fmt.Errorf("%w: different input array dimensions (%v and %v)",
			ErrInvalidArgument, lhs.header.Dims(), rhs.header.Dims())
	}
	if Empty(lhs) {
		return &Array[U]{}, nil
	}
	res := New[U](lhs.header.Dims()...)
	for cur := NewCursor(nil, lhs.header.Dims()); cur.Valid(); cur.Next() {
		res.Set(fn(lhs.At(cur.Subs()...), rhs.At(cur.Subs()...)), cur.Subs()...)
	}
	return res, nil
}

// Reduce folds fn over every element in traversal order, seeded with the
// first element; fn receives the current element and the running
// accumulator. An empty array reduces to the zero value.
func Reduce[T DType](arr *Array[T], fn func(value, acc T) T) T {
	var acc T
	if Empty(arr) {
		return acc
	}
	cur := NewCursor(nil, arr.header.Dims())
	acc = arr.At(cur.Subs()...)
	for cur.Next(); cur.Valid(); cur.Next() {
		acc = fn(arr.At(cur.Subs()...), acc)
	}
	return acc
}

// ReduceAxis folds fn along one axis, producing an array with the wrapped
// axis collapsed (removed, or shrunk to a single entry for rank-1 input).
// Each output cell folds the dims[axis] consecutive tuples of an axis-major
// walk, seeded with the first.
func ReduceAxis[T DType](arr *Array[T], fn func(value, acc T) T, axis int64) *Array[T] {
	if Empty(arr) {
		return &Array[T]{}
	}
	h := arr.header.DropAxis(axis)
	if h.Empty() {
		return &Array[T]{}
	}
	res := newWithHeader[T](h)
	scur := NewCursorAxis(nil, arr.header.Dims(), axis)
	dcur := NewCursor(nil, h.Dims())
	cycle := arr.header.Dims()[shape.Modulo(axis, arr.header.Rank())]
	for scur.Valid() && dcur.Valid() {
		acc := arr.At(scur.Subs()...)
		scur.Next()
		for i := int64(1); i < cycle; i++ {
			acc = fn(arr.At(scur.Subs()...), acc)
			scur.Next()
		}
		res.Set(acc, dcur.Subs()...)
		dcur.Next()
	}
	return res
}

// All reports whether every element of arr is nonzero. An empty array has
// no witness, so All is false for it.
func All[T DType](arr *Array[T]) bool {
	if Empty(arr) {
		return false
	}
	res := true
	for cur := NewCursor(nil, arr.header.Dims()); cur.Valid(); cur.Next() {
		res = res && nonzero(arr.At(cur.Subs()...))
	}
	return res
}

// Any reports whether at least one element of arr is nonzero; false for an
// empty array.
func Any[T DType](arr *Array[T]) bool {
	if Empty(arr) {
		return false
	}
	res := false
	for cur := NewCursor(nil, arr.header.Dims()); cur.Valid(); cur.Next() {
		res = res || nonzero(arr.At(cur.Subs()...))
	}
	return res
}

// AllAxis reduces nonzero-ness along one axis with logical and.
func AllAxis[T DType](arr *Array[T], axis int64) *Array[bool] {
	return reduceAxisBool(arr, axis, func(v T, acc bool) bool { return acc && nonzero(v) })
}

// AnyAxis reduces nonzero-ness along one axis with logical or.
func AnyAxis[T DType](arr *Array[T], axis int64) *Array[bool] {
	return reduceAxisBool(arr, axis, func(v T, acc bool) bool { return acc || nonzero(v) })
}

// reduceAxisBool is ReduceAxis with a boolean accumulator seeded by the
// truth of the first element in each cycle.
func reduceAxisBool[T DType](arr *Array[T], axis int64, fn func(T, bool) bool) *Array[bool] {
	if Empty(arr) {
		return &Array[bool]{}
	}
	h := arr.header.DropAxis(axis)
	if h.Empty() {
		return &Array[bool]{}
	}
	res := newWithHeader[bool](h)
	scur := NewCursorAxis(nil, arr.header.Dims(), axis)
	dcur := NewCursor(nil, h.Dims())
	cycle := arr.header.Dims()[shape.Modulo(axis, arr.header.Rank())]
	for scur.Valid() && dcur.Valid() {
		acc := nonzero(arr.At(scur.Subs()...))
		scur.Next()
		for i := int64(1); i < cycle; i++ {
			acc = fn(arr.At(scur.Subs()...), acc)
			scur.Next()
		}
		res.Set(acc, dcur.Subs()...)
		dcur.Next()
	}
	return res
}

// Filter returns a 1-D array of the elements satisfying pred, in traversal
// order; an empty array when none do.
func Filter[T DType](arr *Array[T], pred func(T) bool) *Array[T] {
	if Empty(arr) {
		return &Array[T]{}
	}
	res := New[T](arr.header.Count())
	dcur := NewCursor(nil, res.header.Dims())
	n := int64(0)
	for scur := NewCursor(nil, arr.header.Dims()); scur.Valid() && dcur.Valid(); scur.Next() {
		if v := arr.At(scur.Subs()...); pred(v) {
			res.Set(v, dcur.Subs()...)
			dcur.Next()
			n++
		}
	}
	if n == 0 {
		return &Array[T]{}
	}
	if n < arr.header.Count() {
		return Resize(res, []int64{n})
	}
	return res
}

// FilterMask returns a 1-D array of the elements of arr whose mask entry is
// nonzero; the mask must match arr's dims.
func FilterMask[T, M DType](arr *Array[T], mask *Array[M]) (*Array[T], error) {
	if Empty(arr) {
		return &Array[T]{}, nil
	}
	if !shape.Equal(arr.header.Dims(), mask.header.Dims()) {
		return nil, fmt.Errorf("%w: different input array dimensions (%v and %v)",
			ErrInvalidArgument, arr.header.Dims(), mask.header.Dims())
	}
	res := New[T](arr.header.Count())
	dcur := NewCursor(nil, res.header.Dims())
	n := int64(0)
	for scur := NewCursor(nil, arr.header.Dims()); scur.Valid() && dcur.Valid(); scur.Next() {
		if nonzero(mask.At(scur.Subs()...)) {
			res.Set(arr.At(scur.Subs()...), dcur.Subs()...)
			dcur.Next()
			n++
		}
	}
	if n == 0 {
		return &Array[T]{}, nil
	}
	if n < arr.header.Count() {
		return Resize(res, []int64{n}), nil
	}
	return res, nil
}

// Find returns the backing-storage flat indices of the elements satisfying
// pred, in traversal order, shaped for direct use with Gather; an empty
// array when none do.
func Find[T DType](arr *Array[T], pred func(T) bool) *Array[int64] {
	if Empty(arr) {
		return &Array[int64]{}
	}
	res := New[int64](arr.header.Count())
	dcur := NewCursor(nil, res.header.Dims())
	n := int64(0)
	for scur := NewCursor(nil, arr.header.Dims()); scur.Valid() && dcur.Valid(); scur.Next() {
		if pred(arr.At(scur.Subs()...)) {
			res.Set(arr.index(scur.Subs()), dcur.Subs()...)
			dcur.Next()
			n++
		}
	}
	if n == 0 {
		return &Array[int64]{}
	}
	if n < arr.header.Count() {
		return Resize(res, []int64{n})
	}
	return res
}

// FindMask returns the backing-storage flat indices of the elements of arr
// whose mask entry is nonzero; the mask must match arr's dims.
func FindMask[T, M DType](arr *Array[T], mask *Array[M]) (*Array[int64], error) {
	if Empty(arr) {
		return &Array[int64]{}, nil
	}
	if !shape.Equal(arr.header.Dims(), mask.header.Dims()) {
		return nil, fmt.Errorf("%w: different input array dimensions (%v and %v)",
			ErrInvalidArgument, arr.header.Dims(), mask.header.Dims())
	}
	res := New[int64](arr.header.Count())
	dcur := NewCursor(nil, res.header.Dims())
	n := int64(0)
	for scur := NewCursor(nil, arr.header.Dims()); scur.Valid() && dcur.Valid(); scur.Next() {
		if nonzero(mask.At(scur.Subs()...)) {
			res.Set(arr.index(scur.Subs()), dcur.Subs()...)
			dcur.Next()
			n++
		}
	}
	if n == 0 {
		return &Array[int64]{}, nil
	}
	if n < arr.header.Count() {
		return Resize(res, []int64{n}), nil
	}
	return res, nil
}
