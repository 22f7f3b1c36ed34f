package array

import (
	"fmt"

	"github.com/ndkit/ndkit/shape"
)

// Copy writes src's elements into dst in place, as long as src's dims are
// contained in dst's (equal rank-for-rank suffix, right-aligned). Nothing
// is copied when either side is empty or the shapes are not contained;
// in-place writers never fail.
func Copy[T DType](src, dst *Array[T]) {
	if Empty(src) || Empty(dst) {
		return
	}
	if !shape.ContainedIn(src.header.Dims(), dst.header.Dims()) {
		return
	}
	for cur := NewCursor(nil, src.header.Dims()); cur.Valid(); cur.Next() {
		dst.Set(src.At(cur.Subs()...), cur.Subs()...)
	}
}

// Clone returns a deep copy of arr with freshly allocated storage,
// regardless of whether arr is a view. Cloning an empty array yields an
// empty array.
func Clone[T DType](arr *Array[T]) *Array[T] {
	if Empty(arr) {
		return &Array[T]{}
	}
	res := New[T](arr.header.Dims()...)
	for cur := NewCursor(nil, arr.header.Dims()); cur.Valid(); cur.Next() {
		res.Set(arr.At(cur.Subs()...), cur.Subs()...)
	}
	return res
}

// Reshape returns arr reinterpreted over newDims, which must address the
// same element count. Reshaping to identical dims returns arr itself; a
// regular array is rebound zero-copy over its shared storage; a view is
// materialized element by element, since a strided window has no contiguous
// reinterpretation in general.
func Reshape[T DType](arr *Array[T], newDims []int64) (*Array[T], error) {
	if Empty(arr) {
		return &Array[T]{}, nil
	}
	if arr.header.Count() != shape.Numel(newDims) {
		return nil, fmt.Errorf("%w: reshape from %v to %v changes the element count",
			ErrInvalidArgument, arr.header.Dims(), newDims)
	}
	if shape.Equal(arr.header.Dims(), newDims) {
		return arr, nil
	}
	if arr.header.IsView() {
		res := New[T](newDims...)
		scur := NewCursor(nil, arr.header.Dims())
		dcur := NewCursor(nil, newDims)
		for scur.Valid() && dcur.Valid() {
			res.Set(arr.At(scur.Subs()...), dcur.Subs()...)
			scur.Next()
			dcur.Next()
		}
		return res, nil
	}
	h := NewHeader(newDims)
	if h.Empty() {
		return &Array[T]{}, nil
	}
	return &Array[T]{header: h, buf: arr.buf}, nil
}

// Resize returns a new array over newDims containing as much of arr's data
// as fits, paired in traversal order; growth leaves the tail zero-valued.
// The result never shares storage with arr.
func Resize[T DType](arr *Array[T], newDims []int64) *Array[T] {
	if len(newDims) == 0 {
		return &Array[T]{}
	}
	if Empty(arr) {
		return New[T](newDims...)
	}
	if shape.Equal(arr.header.Dims(), newDims) {
		return Clone(arr)
	}
	res := New[T](newDims...)
	scur := NewCursor(nil, arr.header.Dims())
	dcur := NewCursor(nil, newDims)
	for scur.Valid() && dcur.Valid() {
		res.Set(arr.At(scur.Subs()...), dcur.Subs()...)
		scur.Next()
		dcur.Next()
	}
	return res
}

// flatten returns a 1-D rendition of arr in traversal order, sharing
// storage when arr is a regular array.
func flatten[T DType](arr *Array[T]) *Array[T] {
	res, _ := Reshape(arr, []int64{arr.header.Count()})
	return res
}

// Append concatenates rhs to lhs positionally: both operands are flattened
// in traversal order and the result holds lhs's elements followed by
// rhs's. An empty operand yields a clone of the other.
func Append[T DType](lhs, rhs *Array[T]) *Array[T] {
	if Empty(lhs) {
		return Clone(rhs)
	}
	if Empty(rhs) {
		return Clone(lhs)
	}
	res := Resize(lhs, []int64{lhs.header.Count() + rhs.header.Count()})
	fr := flatten(rhs)
	for i := int64(0); i < rhs.header.Count(); i++ {
		res.Set(fr.At(i), lhs.header.Count()+i)
	}
	return res
}

// AppendAxis concatenates rhs to lhs along the wrapped axis. The operands
// must have equal ranks and equal sizes on every non-target axis. An empty
// operand yields a clone of the other.
func AppendAxis[T DType](lhs, rhs *Array[T], axis int64) (*Array[T], error) {
	if Empty(lhs) {
		return Clone(rhs), nil
	}
	if Empty(rhs) {
		return Clone(lhs), nil
	}
	ld, rd := lhs.header.Dims(), rhs.header.Dims()
	if len(ld) != len(rd) {
		return nil, fmt.Errorf("%w: different number of dimensions (%d and %d)",
			ErrInvalidArgument, len(ld), len(rd))
	}
	ax := shape.Modulo(axis, int64(len(ld)))
	for i := range ld {
		if int64(i) != ax && ld[i] != rd[i] {
			return nil, fmt.Errorf("%w: different dimension value at axis %d (%d and %d)",
				ErrInvalidArgument, i, ld[i], rd[i])
		}
	}
	return spliceAxis(lhs, rhs, ld[ax], ax), nil
}

// Insert splices rhs into lhs's flattened element sequence before position
// ind, which must not exceed lhs's element count. An empty operand yields a
// clone of the other.
func Insert[T DType](lhs, rhs *Array[T], ind int64) (*Array[T], error) {
	if Empty(lhs) {
		return Clone(rhs), nil
	}
	if Empty(rhs) {
		return Clone(lhs), nil
	}
	if ind > lhs.header.Count() {
		return nil, fmt.Errorf("%w: insert position %d exceeds element count %d",
			ErrOutOfRange, ind, lhs.header.Count())
	}
	res := New[T](lhs.header.Count() + rhs.header.Count())
	fl := flatten(lhs)
	fr := flatten(rhs)
	for i := int64(0); i < ind; i++ {
		res.Set(fl.At(i), i)
	}
	for i := int64(0); i < rhs.header.Count(); i++ {
		res.Set(fr.At(i), ind+i)
	}
	for i := ind; i < lhs.header.Count(); i++ {
		res.Set(fl.At(i), rhs.header.Count()+i)
	}
	return res, nil
}

// InsertAxis splices rhs into lhs before the wrapped index along the
// wrapped axis. The operands must have equal ranks and equal sizes on every
// non-target axis. An empty operand yields a clone of the other.
func InsertAxis[T DType](lhs, rhs *Array[T], ind, axis int64) (*Array[T], error) {
	if Empty(lhs) {
		return Clone(rhs), nil
	}
	if Empty(rhs) {
		return Clone(lhs), nil
	}
	ld, rd := lhs.header.Dims(), rhs.header.Dims()
	if len(ld) != len(rd) {
		return nil, fmt.Errorf("%w: different number of dimensions (%d and %d)",
			ErrInvalidArgument, len(ld), len(rd))
	}
	ax := shape.Modulo(axis, int64(len(ld)))
	for i := range ld {
		if int64(i) != ax && ld[i] != rd[i] {
			return nil, fmt.Errorf("%w: different dimension value at axis %d (%d and %d)",
				ErrInvalidArgument, i, ld[i], rd[i])
		}
	}
	return spliceAxis(lhs, rhs, shape.Modulo(ind, ld[ax]), ax), nil
}

// spliceAxis builds the array whose target axis holds lhs's slabs before
// position pos, then all of rhs's, then lhs's remainder. AppendAxis is the
// pos == lhs dim case.
func spliceAxis[T DType](lhs, rhs *Array[T], pos, ax int64) *Array[T] {
	ld, rd := lhs.header.Dims(), rhs.header.Dims()
	h := lhs.header.ResizeAxis(rd[ax], ax)
	if h.Empty() {
		return &Array[T]{}
	}
	res := newWithHeader[T](h)
	lcur := NewCursor(nil, ld)
	rcur := NewCursor(nil, rd)
	for dcur := NewCursor(nil, h.Dims()); dcur.Valid(); dcur.Next() {
		i := dcur.Subs()[ax]
		switch {
		case (lcur.Valid() && i < pos) || i >= pos+rd[ax]:
			res.Set(lhs.At(lcur.Subs()...), dcur.Subs()...)
			lcur.Next()
		case rcur.Valid() && i >= pos && i < pos+rd[ax]:
			res.Set(rhs.At(rcur.Subs()...), dcur.Subs()...)
			rcur.Next()
		}
	}
	return res
}

// Remove drops count elements of arr's flattened element sequence starting
// at position ind. The removed range must fall strictly inside the element
// count, so at least the last element always survives.
func Remove[T DType](arr *Array[T], ind, count int64) (*Array[T], error) {
	if Empty(arr) {
		return &Array[T]{}, nil
	}
	total := arr.header.Count()
	if ind+count >= total {
		return nil, fmt.Errorf("%w: positions [%d, %d) exceed element count %d",
			ErrOutOfRange, ind, ind+count, total)
	}
	res := New[T](total - count)
	fl := flatten(arr)
	for i := int64(0); i < ind; i++ {
		res.Set(fl.At(i), i)
	}
	for i := ind + count; i < total; i++ {
		res.Set(fl.At(i), i-count)
	}
	return res, nil
}

// RemoveAxis drops count positions starting at the wrapped index along the
// wrapped axis; a count reaching past the end of the axis is clamped.
// Dropping the whole axis yields an empty array.
func RemoveAxis[T DType](arr *Array[T], ind, count, axis int64) *Array[T] {
	if Empty(arr) {
		return &Array[T]{}
	}
	dims := arr.header.Dims()
	ax := shape.Modulo(axis, int64(len(dims)))
	pos := shape.Modulo(ind, dims[ax])
	n := count
	if pos+n > dims[ax] {
		n = dims[ax] - pos
	}
	h := arr.header.ResizeAxis(-n, ax)
	if h.Empty() {
		return &Array[T]{}
	}
	res := newWithHeader[T](h)
	dcur := NewCursor(nil, h.Dims())
	for scur := NewCursor(nil, dims); scur.Valid(); scur.Next() {
		i := scur.Subs()[ax]
		if (dcur.Valid() && i < pos) || i >= pos+n {
			res.Set(arr.At(scur.Subs()...), dcur.Subs()...)
			dcur.Next()
		}
	}
	return res
}

// Transpose returns arr with axes reordered per order, materialized by a
// lockstep walk: an order cursor over the source against a row-major cursor
// over the result. An invalid order degrades to an empty array.
func Transpose[T DType](arr *Array[T], order []int64) *Array[T] {
	if Empty(arr) {
		return &Array[T]{}
	}
	h := arr.header.Permute(order)
	if h.Empty() {
		return &Array[T]{}
	}
	res := newWithHeader[T](h)
	scur := NewCursorOrder(nil, arr.header.Dims(), order)
	dcur := NewCursor(nil, h.Dims())
	for scur.Valid() && dcur.Valid() {
		res.Set(arr.At(scur.Subs()...), dcur.Subs()...)
		scur.Next()
		dcur.Next()
	}
	return res
}
