package array

import "math"

// Element-wise math over float element types; thin wrappers pairing
// Transform with the standard math package.

func apply[T Float](arr *Array[T], fn func(float64) float64) *Array[T] {
	return Transform(arr, func(v T) T { return T(fn(float64(v))) })
}

// Abs returns the absolute value of every element.
func Abs[T Float](arr *Array[T]) *Array[T] { return apply(arr, math.Abs) }

// Sqrt returns the square root of every element.
func Sqrt[T Float](arr *Array[T]) *Array[T] { return apply(arr, math.Sqrt) }

// Exp returns e raised to every element.
func Exp[T Float](arr *Array[T]) *Array[T] { return apply(arr, math.Exp) }

// Log returns the natural logarithm of every element.
func Log[T Float](arr *Array[T]) *Array[T] { return apply(arr, math.Log) }

// Log10 returns the decimal logarithm of every element.
func Log10[T Float](arr *Array[T]) *Array[T] { return apply(arr, math.Log10) }

// Pow raises every element to the power p.
func Pow[T Float](arr *Array[T], p T) *Array[T] {
	return apply(arr, func(v float64) float64 { return math.Pow(v, float64(p)) })
}

// Sin returns the sine of every element.
func Sin[T Float](arr *Array[T]) *Array[T] { return apply(arr, math.Sin) }

// Cos returns the cosine of every element.
func Cos[T Float](arr *Array[T]) *Array[T] { return apply(arr, math.Cos) }

// Tan returns the tangent of every element.
func Tan[T Float](arr *Array[T]) *Array[T] { return apply(arr, math.Tan) }

// Asin returns the arcsine of every element.
func Asin[T Float](arr *Array[T]) *Array[T] { return apply(arr, math.Asin) }

// Acos returns the arccosine of every element.
func Acos[T Float](arr *Array[T]) *Array[T] { return apply(arr, math.Acos) }

// Atan returns the arctangent of every element.
func Atan[T Float](arr *Array[T]) *Array[T] { return apply(arr, math.Atan) }

// Sinh returns the hyperbolic sine of every element.
func Sinh[T Float](arr *Array[T]) *Array[T] { return apply(arr, math.Sinh) }

// Cosh returns the hyperbolic cosine of every element.
func Cosh[T Float](arr *Array[T]) *Array[T] { return apply(arr, math.Cosh) }

// Tanh returns the hyperbolic tangent of every element.
func Tanh[T Float](arr *Array[T]) *Array[T] { return apply(arr, math.Tanh) }

// Asinh returns the inverse hyperbolic sine of every element.
func Asinh[T Float](arr *Array[T]) *Array[T] { return apply(arr, math.Asinh) }

// Acosh returns the inverse hyperbolic cosine of every element.
func Acosh[T Float](arr *Array[T]) *Array[T] { return apply(arr, math.Acosh) }

// Atanh returns the inverse hyperbolic tangent of every element.
func Atanh[T Float](arr *Array[T]) *Array[T] { return apply(arr, math.Atanh) }
