// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar(scalar float32) Vector2 {
	return Vector2{scalar, scalar}
}

// FromPoint returns a new [Vector2] from the given [image.Point].
func FromPoint(pt image.Point) Vector2 {
	return Vector2{float32(pt.X), float32(pt.Y)}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector2) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// Sub subtracts the other given vector from this one and returns the result as a new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// MulScalar multiplies each component of this vector by the given scalar
// and returns the result as a new vector.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vec2(v.X*s, v.Y*s)
}

// Min returns min of this vector components vs. other vector.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vec2(Min(v.X, other.X), Min(v.Y, other.Y))
}

// Max returns max of this vector components vs. other vector.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vec2(Max(v.X, other.X), Max(v.Y, other.Y))
}

// Length returns the length (magnitude) of this vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normal returns this vector divided by its length (its unit vector).
func (v Vector2) Normal() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return v.MulScalar(1 / l)
}

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector2) Lerp(other Vector2, alpha float32) Vector2 {
	return Vec2(Lerp(v.X, other.X, alpha), Lerp(v.Y, other.Y, alpha))
}

// ToFixed returns this vector as a [fixed.Point26_6].
func (v Vector2) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: ToFixed(v.X), Y: ToFixed(v.Y)}
}

// ToPointFloor returns the vector as an [image.Point] with floored components.
func (v Vector2) ToPointFloor() image.Point {
	return image.Pt(int(Floor(v.X)), int(Floor(v.Y)))
}

// ToPointCeil returns the vector as an [image.Point] with ceiled components.
func (v Vector2) ToPointCeil() image.Point {
	return image.Pt(int(Ceil(v.X)), int(Ceil(v.Y)))
}

// ToFixed converts a float32 value to a [fixed.Int26_6].
func ToFixed(x float32) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}
