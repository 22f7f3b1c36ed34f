// Package array implements a generic N-dimensional array with strided
// views and a library of element-wise, reduction, and structural
// operations (reshape, transpose, append/insert/remove, filter/find).
//
// An Array pairs a Header (dims, strides, offset) with flat backing
// storage. Slicing produces views that share the parent's storage; writes
// through a view land in the parent. Subscripts wrap modulo their axis, so
// negative indices count from the end, and degenerate shapes (any dim <= 0)
// are valid empty arrays rather than errors. Only structurally impossible
// operations — reshaping across element counts, combining mismatched
// shapes, splicing out of range — fail, with errors matching the
// ErrInvalidArgument / ErrOutOfRange sentinels.
//
// Example:
//
//	a, _ := array.FromSlice([]int64{3, 1, 2}, []int{1, 2, 3, 4, 5, 6})
//	v := a.Slice(shape.Span(0, 2, 2), shape.At(0), shape.At(0)) // dims {2,1,1}, values {1,5}
//	v.Fill(0)                                                   // writes through into a
package array
