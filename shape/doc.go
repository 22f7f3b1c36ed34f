// Package shape provides the pure dimension and index arithmetic underlying
// N-dimensional arrays: element counts, row-major stride vectors, derivation
// of dims/strides/offsets from interval sets, and subscript-to-linear-index
// resolution with wrap-around addressing.
//
// All functions are stateless and operate on []int64 shape vectors ordered
// most-significant axis first. A dims vector containing a zero or negative
// entry describes a degenerate (empty) shape; degenerate shapes are valid
// inputs everywhere and never cause errors.
package shape
