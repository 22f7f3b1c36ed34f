package array

import (
	"fmt"

	"github.com/ndkit/ndkit/shape"
)

// buffer is the flat backing storage shared by an array and its views. The
// garbage collector releases it when the last referencing array goes away.
type buffer[T DType] struct {
	data []T
}

// Array pairs a Header with possibly shared flat backing storage. Slicing
// yields a view: a second array over the same storage whose header selects
// a sub-window, so writes through either side are visible to both.
type Array[T DType] struct {
	header Header
	buf    *buffer[T]
}

// New returns a zero-valued array over dims. Degenerate dims (none, or any
// entry <= 0) yield a valid empty array.
func New[T DType](dims ...int64) *Array[T] {
	h := NewHeader(dims)
	a := &Array[T]{header: h}
	if h.Count() > 0 {
		a.buf = &buffer[T]{data: make([]T, h.Count())}
	}
	return a
}

// FromSlice returns an array over dims initialized from data in row-major
// order. The element count must match the dims exactly.
func FromSlice[T DType](dims []int64, data []T) (*Array[T], error) {
	a := New[T](dims...)
	if a.buf == nil {
		return a, nil
	}
	if int64(len(data)) != a.header.Count() {
		return nil, fmt.Errorf("%w: dims %v require %d elements, got %d",
			ErrInvalidArgument, dims, a.header.Count(), len(data))
	}
	copy(a.buf.data, data)
	return a, nil
}

// Full returns an array over dims with every element set to value.
func Full[T DType](dims []int64, value T) *Array[T] {
	a := New[T](dims...)
	if a.buf != nil {
		for i := range a.buf.data {
			a.buf.data[i] = value
		}
	}
	return a
}

// Cast returns a new array with every element of src converted to the
// target element type. This is the only cross-type path; storage is never
// reinterpreted.
func Cast[To, From Numeric](src *Array[From]) *Array[To] {
	if Empty(src) {
		return &Array[To]{}
	}
	res := New[To](src.header.Dims()...)
	for cur := NewCursor(nil, src.header.Dims()); cur.Valid(); cur.Next() {
		res.Set(To(src.At(cur.Subs()...)), cur.Subs()...)
	}
	return res
}

// Empty reports whether arr addresses no elements: a nil pointer, a
// default-constructed array, or a view whose header degraded to empty.
func Empty[T DType](arr *Array[T]) bool {
	if arr == nil {
		return true
	}
	return arr.header.Empty() && (arr.buf == nil || arr.header.IsView())
}

// Header returns the array's header.
func (a *Array[T]) Header() Header { return a.header }

// Dims returns the array's dims vector. The caller must not modify it.
func (a *Array[T]) Dims() []int64 { return a.header.Dims() }

// Count returns the number of elements addressable through the array.
func (a *Array[T]) Count() int64 { return a.header.Count() }

// Data returns the flat backing slice, or nil for an empty array. The slice
// covers the whole shared storage, not just the receiver's view window;
// writes through it are visible to every view sharing the storage.
func (a *Array[T]) Data() []T {
	if a == nil || a.buf == nil {
		return nil
	}
	return a.buf.data
}

// index maps a subscript tuple to a backing-storage index through the
// header's offset and strides, with wrap-around on every axis.
func (a *Array[T]) index(subs []int64) int64 {
	return shape.SubsToIndex(a.header.Offset(), a.header.Strides(), a.header.Dims(), subs)
}

// At returns the element addressed by subs. Subscripts wrap modulo their
// axis, so negative entries count from the end; a tuple shorter than the
// rank addresses the trailing axes.
func (a *Array[T]) At(subs ...int64) T {
	return a.buf.data[a.index(subs)]
}

// Set stores value at the element addressed by subs, with the same wrap
// semantics as At.
func (a *Array[T]) Set(value T, subs ...int64) {
	a.buf.data[a.index(subs)] = value
}

// Slice returns a view over the sub-array selected by intervals, sharing
// the receiver's backing storage. No intervals selects the whole array; a
// malformed interval or an empty receiver yields an empty view.
func (a *Array[T]) Slice(intervals ...shape.Interval) *Array[T] {
	if len(intervals) == 0 || Empty(a) {
		return a
	}
	return &Array[T]{header: a.header.Slice(intervals), buf: a.buf}
}

// Gather returns a new array shaped like indices whose elements are read
// from the receiver's backing storage at the given flat indices. Find and
// FindMask produce indices in exactly this addressing.
func (a *Array[T]) Gather(indices *Array[int64]) *Array[T] {
	if Empty(a) || Empty(indices) {
		return &Array[T]{}
	}
	res := New[T](indices.header.Dims()...)
	for cur := NewCursor(nil, indices.header.Dims()); cur.Valid(); cur.Next() {
		res.Set(a.buf.data[indices.At(cur.Subs()...)], cur.Subs()...)
	}
	return res
}

// Fill broadcasts value to every element reachable through the receiver's
// header, in place. Filling an empty array is a no-op.
func (a *Array[T]) Fill(value T) {
	if Empty(a) {
		return
	}
	for cur := NewCursor(nil, a.header.Dims()); cur.Valid(); cur.Next() {
		a.Set(value, cur.Subs()...)
	}
}

// Assign carries the container's two assignment semantics: when the
// receiver is a view whose dims match src, src's elements are written
// through the shared storage in place; otherwise the receiver is rebound to
// src's header and storage, sharing rather than copying it.
func (a *Array[T]) Assign(src *Array[T]) {
	if a.header.IsView() && src != nil && shape.Equal(a.header.Dims(), src.header.Dims()) {
		Copy(src, a)
		return
	}
	if src == nil {
		a.header = Header{}
		a.buf = nil
		return
	}
	a.header = src.header
	a.buf = src.buf
}

// newWithHeader returns a zero-valued array owning fresh storage for h.
func newWithHeader[T DType](h Header) *Array[T] {
	a := &Array[T]{header: h}
	if h.Count() > 0 {
		a.buf = &buffer[T]{data: make([]T, h.Count())}
	}
	return a
}
