package array

// DType is the constraint for array element types.
type DType interface {
	Numeric | ~bool
}

// Numeric covers the element types supporting arithmetic.
type Numeric interface {
	Integer | Float
}

// Integer covers the element types supporting bitwise operations.
type Integer interface {
	Signed | Unsigned
}

// Signed covers the signed integer element types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned covers the unsigned integer element types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float covers the floating-point element types.
type Float interface {
	~float32 | ~float64
}

// nonzero is the truth test used by the boolean reductions and logical
// operations: any value other than the type's zero value.
func nonzero[T DType](v T) bool {
	var zero T
	return v != zero
}
