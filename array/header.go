package array

import "github.com/ndkit/ndkit/shape"

// Header holds the logical shape of an array or view: dims with the most
// significant axis first, row-major strides, the offset of the first element
// in the backing storage, the total element count, and whether the header
// was derived by interval slicing.
//
// A Header is immutable after construction; derivations return new headers.
// The zero Header is empty.
type Header struct {
	dims    []int64
	strides []int64
	offset  int64
	count   int64
	view    bool
}

// NewHeader builds the header of a base array over dims. Degenerate dims
// (none at all, or any entry <= 0) produce an empty header.
func NewHeader(dims []int64) Header {
	count := shape.Numel(dims)
	if count <= 0 {
		return Header{}
	}
	d := shape.Clone(dims)
	return Header{dims: d, strides: shape.Strides(d), count: count}
}

// Slice derives the header of the sub-array selected by intervals. The
// result is marked as a view even when it degrades: slicing an empty header
// or passing a malformed interval yields an empty view header, not an error.
func (h Header) Slice(intervals []shape.Interval) Header {
	if h.count <= 0 {
		return Header{view: true}
	}
	dims := shape.DimsForIntervals(h.dims, intervals)
	if shape.Numel(dims) <= 0 {
		return Header{view: true}
	}
	return Header{
		dims:    dims,
		strides: shape.StridesForIntervals(h.dims, h.strides, intervals),
		offset:  shape.OffsetForIntervals(h.dims, h.offset, h.strides, intervals),
		count:   shape.Numel(dims),
		view:    true,
	}
}

// DropAxis derives the header used by a per-axis reduction: the wrapped
// axis is removed, or collapsed to a single entry when the rank is 1. The
// result is a regular header with canonical strides and no offset.
func (h Header) DropAxis(axis int64) Header {
	if h.count <= 0 {
		return Header{}
	}
	rank := int64(len(h.dims))
	ax := shape.Modulo(axis, rank)
	var dims []int64
	if rank > 1 {
		dims = make([]int64, rank-1)
		copy(dims, h.dims[:ax])
		copy(dims[ax:], h.dims[ax+1:])
	} else {
		dims = []int64{1}
	}
	return Header{dims: dims, strides: shape.Strides(dims), count: shape.Numel(dims)}
}

// Permute derives the header of a transposed array: dims[i] becomes the
// previous dim selected by order[i], each order entry wrap-normalized
// modulo the previous dim value at its position. An order shorter than the
// rank, an entry landing outside the rank, or a reordering that fails to
// preserve the element count degrades to an empty header.
func (h Header) Permute(order []int64) Header {
	if h.count <= 0 {
		return Header{}
	}
	rank := len(h.dims)
	if len(order) < rank {
		return Header{}
	}
	dims := make([]int64, rank)
	for i := 0; i < rank; i++ {
		idx := shape.Modulo(order[i], h.dims[i])
		if idx >= int64(rank) {
			return Header{}
		}
		dims[i] = h.dims[idx]
	}
	if shape.Numel(dims) != h.count {
		return Header{}
	}
	return Header{dims: dims, strides: shape.Strides(dims), count: h.count}
}

// ResizeAxis derives a header identical to h except that the wrapped axis
// is grown by delta (or shrunk, for negative delta), with strides
// recomputed canonically. Shrinking an axis to zero or below degrades to an
// empty header.
func (h Header) ResizeAxis(delta, axis int64) Header {
	if h.count <= 0 {
		return Header{}
	}
	ax := shape.Modulo(axis, int64(len(h.dims)))
	dims := shape.Clone(h.dims)
	dims[ax] += delta
	count := shape.Numel(dims)
	if count <= 0 {
		return Header{}
	}
	return Header{dims: dims, strides: shape.Strides(dims), count: count}
}

// Count returns the number of elements addressable through the header.
func (h Header) Count() int64 { return h.count }

// Dims returns the dims vector. The caller must not modify it.
func (h Header) Dims() []int64 { return h.dims }

// Strides returns the strides vector. The caller must not modify it.
func (h Header) Strides() []int64 { return h.strides }

// Offset returns the backing-storage index of the first element.
func (h Header) Offset() int64 { return h.offset }

// IsView reports whether the header was derived by interval slicing.
func (h Header) IsView() bool { return h.view }

// Empty reports whether the header carries no addressable shape.
func (h Header) Empty() bool { return h.dims == nil }

// Rank returns the number of axes.
func (h Header) Rank() int64 { return int64(len(h.dims)) }
