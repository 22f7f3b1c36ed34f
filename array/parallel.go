package array

import (
	"fmt"

	"github.com/ndkit/ndkit/internal/parallel"
	"github.com/ndkit/ndkit/shape"
)

// TransformParallel is Transform with the element loop spread across worker
// goroutines. A regular array is chunked directly over its flat storage,
// whose order matches the row-major walk; a view falls back to the
// sequential cursor path, since its window has no contiguous flat range.
func TransformParallel[T, U DType](arr *Array[T], fn func(T) U, cfg parallel.Config) *Array[U] {
	if Empty(arr) {
		return &Array[U]{}
	}
	if arr.header.IsView() {
		return Transform(arr, fn)
	}
	res := New[U](arr.header.Dims()...)
	src, dst := arr.buf.data, res.buf.data
	parallel.ForRange(arr.header.Count(), func(lo, hi int64) {
		for i := lo; i < hi; i++ {
			dst[i] = fn(src[i])
		}
	}, cfg)
	return res
}

// Transform2Parallel is Transform2 with the element loop spread across
// worker goroutines, under the same shape rules.
func Transform2Parallel[T1, T2, U DType](lhs *Array[T1], rhs *Array[T2], fn func(T1, T2) U, cfg parallel.Config) (*Array[U], error) {
	if !shape.Equal(lhs.header.Dims(), rhs.header.Dims()) {
		return nil, fmt.Errorf("%w: different input array dimensions (%v and %v)",
			ErrInvalidArgument, lhs.header.Dims(), rhs.header.Dims())
	}
	if Empty(lhs) {
		return &Array[U]{}, nil
	}
	if lhs.header.IsView() || rhs.header.IsView() {
		return Transform2(lhs, rhs, fn)
	}
	res := New[U](lhs.header.Dims()...)
	a, b, dst := lhs.buf.data, rhs.buf.data, res.buf.data
	parallel.ForRange(lhs.header.Count(), func(lo, hi int64) {
		for i := lo; i < hi; i++ {
			dst[i] = fn(a[i], b[i])
		}
	}, cfg)
	return res, nil
}
