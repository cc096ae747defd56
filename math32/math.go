// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector, matrix, and math package
// for 2D graphics and animation.
package math32

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Mathematical constants.
const (
	E       = math.E
	Pi      = math.Pi
	Sqrt2   = math.Sqrt2
	Sqrt1_2 = 1 / math.Sqrt2
	Ln2     = math.Ln2
	Log2E   = math.Log2E
	Ln10    = math.Ln10
	Log10E  = math.Log10E
)

// Floating-point limit values.
const (
	MaxFloat32             = math.MaxFloat32
	SmallestNonzeroFloat32 = math.SmallestNonzeroFloat32
)

const (
	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi
)

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// DegToRad converts a number from degrees to radians
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees
func RadToDeg(radians float32) float32 {
	return radians * RadToDegFactor
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 { return math32.Abs(x) }

// Acos returns the arccosine, in radians, of x.
func Acos(x float32) float32 { return math32.Acos(x) }

// Asin returns the arcsine, in radians, of x.
func Asin(x float32) float32 { return math32.Asin(x) }

// Atan returns the arctangent, in radians, of x.
func Atan(x float32) float32 { return math32.Atan(x) }

// Atan2 returns the arc tangent of y/x, using
// the signs of the two to determine the quadrant
// of the return value.
func Atan2(y, x float32) float32 { return math32.Atan2(y, x) }

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 { return math32.Ceil(x) }

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 { return math32.Cos(x) }

// Exp returns e**x, the base-e exponential of x.
func Exp(x float32) float32 { return math32.Exp(x) }

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 { return math32.Floor(x) }

// Hypot returns Sqrt(p*p + q*q), taking care to avoid
// unnecessary overflow and underflow.
func Hypot(p, q float32) float32 { return math32.Hypot(p, q) }

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) float32 { return math32.Inf(sign) }

// IsInf reports whether f is an infinity, according to sign.
func IsInf(x float32, sign int) bool { return math32.IsInf(x, sign) }

// IsNaN reports whether f is an IEEE 754 “not-a-number” value.
func IsNaN(x float32) bool { return math32.IsNaN(x) }

// Lerp returns the linear interpolation between start and stop in proportion to amount
func Lerp(start, stop, amount float32) float32 {
	return (1-amount)*start + amount*stop
}

// Log returns the natural logarithm of x.
func Log(x float32) float32 { return math32.Log(x) }

// Max returns the larger of x or y.
func Max(x, y float32) float32 { return math32.Max(x, y) }

// Min returns the smaller of x or y.
func Min(x, y float32) float32 { return math32.Min(x, y) }

// Mod returns the floating-point remainder of x/y.
// The magnitude of the result is less than y and its
// sign agrees with that of x.
func Mod(x, y float32) float32 { return math32.Mod(x, y) }

// NaN returns an IEEE 754 “not-a-number” value.
func NaN() float32 { return math32.NaN() }

// Pow returns x**y, the base-x exponential of y.
func Pow(x, y float32) float32 { return math32.Pow(x, y) }

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 { return math32.Round(x) }

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 { return math32.Sin(x) }

// Sincos returns Sin(x), Cos(x).
func Sincos(x float32) (sin, cos float32) { return math32.Sincos(x) }

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 { return math32.Sqrt(x) }

// Tan returns the tangent of the radian argument x.
func Tan(x float32) float32 { return math32.Tan(x) }

// Clamp clamps x to the provided closed interval [a, b]
func Clamp[T cmp.Ordered](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Fold folds x into the interval [0, span) by repeated subtraction,
// returning the folded value and the number of whole spans removed.
// x must be non-negative and span positive.
func Fold(x, span float32) (float32, int) {
	n := int(Floor(x / span))
	return x - float32(n)*span, n
}
