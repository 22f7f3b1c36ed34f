package array

// Element-wise arithmetic, bitwise, and logical operations. Array-array
// forms require equal dims and fail with ErrInvalidArgument otherwise;
// scalar forms broadcast a fixed value and cannot fail. Non-commutative
// operations carry both orderings (SubScalar is arr-value, ScalarSub is
// value-arr). Integer overflow wraps per the element type.

// Add adds two arrays of equal dims element-wise.
func Add[T Numeric](lhs, rhs *Array[T]) (*Array[T], error) {
	return Transform2(lhs, rhs, func(a, b T) T { return a + b })
}

// AddScalar adds value to every element of arr.
func AddScalar[T Numeric](arr *Array[T], value T) *Array[T] {
	return Transform(arr, func(a T) T { return a + value })
}

// Sub subtracts rhs from lhs element-wise over equal dims.
func Sub[T Numeric](lhs, rhs *Array[T]) (*Array[T], error) {
	return Transform2(lhs, rhs, func(a, b T) T { return a - b })
}

// SubScalar subtracts value from every element of arr.
func SubScalar[T Numeric](arr *Array[T], value T) *Array[T] {
	return Transform(arr, func(a T) T { return a - value })
}

// ScalarSub subtracts every element of arr from value.
func ScalarSub[T Numeric](value T, arr *Array[T]) *Array[T] {
	return Transform(arr, func(a T) T { return value - a })
}

// Mul multiplies two arrays of equal dims element-wise.
func Mul[T Numeric](lhs, rhs *Array[T]) (*Array[T], error) {
	return Transform2(lhs, rhs, func(a, b T) T { return a * b })
}

// MulScalar multiplies every element of arr by value.
func MulScalar[T Numeric](arr *Array[T], value T) *Array[T] {
	return Transform(arr, func(a T) T { return a * value })
}

// Div divides lhs by rhs element-wise over equal dims. Integer division by
// zero panics as it does for the built-in operator.
func Div[T Numeric](lhs, rhs *Array[T]) (*Array[T], error) {
	return Transform2(lhs, rhs, func(a, b T) T { return a / b })
}

// DivScalar divides every element of arr by value.
func DivScalar[T Numeric](arr *Array[T], value T) *Array[T] {
	return Transform(arr, func(a T) T { return a / value })
}

// ScalarDiv divides value by every element of arr.
func ScalarDiv[T Numeric](value T, arr *Array[T]) *Array[T] {
	return Transform(arr, func(a T) T { return value / a })
}

// Mod takes lhs modulo rhs element-wise over equal dims.
func Mod[T Integer](lhs, rhs *Array[T]) (*Array[T], error) {
	return Transform2(lhs, rhs, func(a, b T) T { return a % b })
}

// ModScalar takes every element of arr modulo value.
func ModScalar[T Integer](arr *Array[T], value T) *Array[T] {
	return Transform(arr, func(a T) T { return a % value })
}

// ScalarMod takes value modulo every element of arr.
func ScalarMod[T Integer](value T, arr *Array[T]) *Array[T] {
	return Transform(arr, func(a T) T { return value % a })
}

// Neg negates every element of arr.
func Neg[T Numeric](arr *Array[T]) *Array[T] {
	return Transform(arr, func(a T) T { return -a })
}

// And takes the bitwise and of two arrays of equal dims.
func And[T Integer](lhs, rhs *Array[T]) (*Array[T], error) {
	return Transform2(lhs, rhs, func(a, b T) T { return a & b })
}

// AndScalar takes the bitwise and of every element with value.
func AndScalar[T Integer](arr *Array[T], value T) *Array[T] {
	return Transform(arr, func(a T) T { return a & value })
}

// Or takes the bitwise or of two arrays of equal dims.
func Or[T Integer](lhs, rhs *Array[T]) (*Array[T], error) {
	return Transform2(lhs, rhs, func(a, b T) T { return a | b })
}

// OrScalar takes the bitwise or of every element with value.
func OrScalar[T Integer](arr *Array[T], value T) *Array[T] {
	return Transform(arr, func(a T) T { return a | value })
}

// Xor takes the bitwise exclusive or of two arrays of equal dims.
func Xor[T Integer](lhs, rhs *Array[T]) (*Array[T], error) {
	return Transform2(lhs, rhs, func(a, b T) T { return a ^ b })
}

// XorScalar takes the bitwise exclusive or of every element with value.
func XorScalar[T Integer](arr *Array[T], value T) *Array[T] {
	return Transform(arr, func(a T) T { return a ^ value })
}

// Not complements the bits of every element.
func Not[T Integer](arr *Array[T]) *Array[T] {
	return Transform(arr, func(a T) T { return ^a })
}

// Shl shifts lhs left by rhs element-wise over equal dims.
func Shl[T Integer](lhs, rhs *Array[T]) (*Array[T], error) {
	return Transform2(lhs, rhs, func(a, b T) T { return a << b })
}

// ShlScalar shifts every element of arr left by value.
func ShlScalar[T Integer](arr *Array[T], value T) *Array[T] {
	return Transform(arr, func(a T) T { return a << value })
}

// Shr shifts lhs right by rhs element-wise over equal dims.
func Shr[T Integer](lhs, rhs *Array[T]) (*Array[T], error) {
	return Transform2(lhs, rhs, func(a, b T) T { return a >> b })
}

// ShrScalar shifts every element of arr right by value.
func ShrScalar[T Integer](arr *Array[T], value T) *Array[T] {
	return Transform(arr, func(a T) T { return a >> value })
}

// LogicalNot maps every element to the negation of its truth value.
func LogicalNot[T DType](arr *Array[T]) *Array[bool] {
	return Transform(arr, func(a T) bool { return !nonzero(a) })
}

// LogicalAnd combines the truth values of two arrays of equal dims.
func LogicalAnd[T1, T2 DType](lhs *Array[T1], rhs *Array[T2]) (*Array[bool], error) {
	return Transform2(lhs, rhs, func(a T1, b T2) bool { return nonzero(a) && nonzero(b) })
}

// LogicalAndScalar combines every element's truth value with value's.
func LogicalAndScalar[T1, T2 DType](arr *Array[T1], value T2) *Array[bool] {
	return Transform(arr, func(a T1) bool { return nonzero(a) && nonzero(value) })
}

// LogicalOr combines the truth values of two arrays of equal dims.
func LogicalOr[T1, T2 DType](lhs *Array[T1], rhs *Array[T2]) (*Array[bool], error) {
	return Transform2(lhs, rhs, func(a T1, b T2) bool { return nonzero(a) || nonzero(b) })
}

// LogicalOrScalar combines every element's truth value with value's.
func LogicalOrScalar[T1, T2 DType](arr *Array[T1], value T2) *Array[bool] {
	return Transform(arr, func(a T1) bool { return nonzero(a) || nonzero(value) })
}
