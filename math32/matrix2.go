// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Matrix2 is a 3x2 matrix for 2D affine transforms.
// Multiplication order is the reverse of the logical order:
// a.Mul(b) applies b first and then a.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2] matrix.
func Identity2() Matrix2 {
	return Matrix2{1, 0, 0, 1, 0, 0}
}

// Translate2D returns a translation matrix.
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{1, 0, 0, 1, x, y}
}

// Scale2D returns a scaling matrix.
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{x, 0, 0, y, 0, 0}
}

// Rotate2D returns a rotation matrix for the given angle in radians.
func Rotate2D(angle float32) Matrix2 {
	s, c := Sincos(angle)
	return Matrix2{c, s, -s, c, 0, 0}
}

// Skew2D returns a skew matrix for the given x and y skew factors.
func Skew2D(x, y float32) Matrix2 {
	return Matrix2{1, y, x, 1, 0, 0}
}

func (a Matrix2) String() string {
	return fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)", a.XX, a.YX, a.XY, a.YY, a.X0, a.Y0)
}

// IsIdentity returns true if the matrix is the identity.
func (a Matrix2) IsIdentity() bool {
	return a == Identity2()
}

// Mul returns a * b.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// MulVector2AsVector multiplies the Vector2 as a vector without adding translations.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	return Vec2(a.XX*v.X+a.XY*v.Y, a.YX*v.X+a.YY*v.Y)
}

// MulVector2AsPoint multiplies the Vector2 as a point, including adding translations.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vec2(a.XX*v.X+a.XY*v.Y+a.X0, a.YX*v.X+a.YY*v.Y+a.Y0)
}

// Det returns the determinant of the linear part of the matrix.
func (a Matrix2) Det() float32 {
	return a.XX*a.YY - a.XY*a.YX
}

// Inverse returns inverse of matrix, for inverting transforms.
// A singular matrix returns the identity.
func (a Matrix2) Inverse() Matrix2 {
	det := a.Det()
	if det == 0 {
		return Identity2()
	}
	inv := 1 / det
	return Matrix2{
		XX: a.YY * inv,
		YX: -a.YX * inv,
		XY: -a.XY * inv,
		YY: a.XX * inv,
		X0: (a.XY*a.Y0 - a.YY*a.X0) * inv,
		Y0: (a.YX*a.X0 - a.XX*a.Y0) * inv,
	}
}

// ExtractRot extracts the rotation component from a given matrix.
func (a Matrix2) ExtractRot() float32 {
	return Atan2(a.YX, a.XX)
}

// ExtractScale extracts the scaling factors from the matrix.
func (a Matrix2) ExtractScale() (scx, scy float32) {
	return Vec2(a.XX, a.YX).Length(), Vec2(a.XY, a.YY).Length()
}

// Array returns the matrix as 6 values in XX, YX, XY, YY, X0, Y0 order.
func (a Matrix2) Array() []float32 {
	return []float32{a.XX, a.YX, a.XY, a.YY, a.X0, a.Y0}
}

// Matrix2FromArray returns a matrix from up to 6 values in
// XX, YX, XY, YY, X0, Y0 order, with missing values from the identity.
func Matrix2FromArray(v []float32) Matrix2 {
	m := Identity2().Array()
	copy(m, v)
	return Matrix2{m[0], m[1], m[2], m[3], m[4], m[5]}
}
