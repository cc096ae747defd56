// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = 1.0e-6

func assertVectorInDelta(t *testing.T, want, got Vector2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, standardTol)
	assert.InDelta(t, want.Y, got.Y, standardTol)
}

func TestMatrix2(t *testing.T) {
	v0 := Vec2(0, 0)
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)

	assert.Equal(t, vx, Identity2().MulVector2AsPoint(vx))
	assert.Equal(t, vxy, Identity2().MulVector2AsPoint(vxy))
	assert.Equal(t, vxy, Translate2D(1, 1).MulVector2AsPoint(v0))
	assert.Equal(t, vxy.MulScalar(2), Scale2D(2, 2).MulVector2AsPoint(vxy))

	assertVectorInDelta(t, vy, Rotate2D(DegToRad(90)).MulVector2AsPoint(vx))
	assertVectorInDelta(t, vx, Rotate2D(DegToRad(-90)).MulVector2AsPoint(vy))
	assertVectorInDelta(t, vxy.Normal(), Rotate2D(DegToRad(45)).MulVector2AsPoint(vx))

	assertVectorInDelta(t, vy, Rotate2D(DegToRad(-90)).Inverse().MulVector2AsPoint(vx))
	assertVectorInDelta(t, vxy, Rotate2D(DegToRad(-45)).Mul(Rotate2D(DegToRad(45))).MulVector2AsPoint(vxy))

	assert.InDelta(t, DegToRad(-45), Rotate2D(DegToRad(-45)).ExtractRot(), standardTol)
	assert.InDelta(t, DegToRad(90), Rotate2D(DegToRad(90)).ExtractRot(), standardTol)

	// 1,0 -> scale(2) = 2,0 -> rotate 90 = 0,2 -> trans 1,1 -> 1,3
	// multiplication order is *reverse* of "logical" order:
	assertVectorInDelta(t, Vec2(1, 3), Translate2D(1, 1).Mul(Rotate2D(DegToRad(90))).Mul(Scale2D(2, 2)).MulVector2AsPoint(vx))
}

func TestMatrix2Inverse(t *testing.T) {
	m := Translate2D(3, -2).Mul(Scale2D(2, 4)).Mul(Skew2D(0.5, 0))
	p := Vec2(7, 5)
	assertVectorInDelta(t, p, m.Inverse().MulVector2AsPoint(m.MulVector2AsPoint(p)))
	assert.Equal(t, Identity2(), Scale2D(0, 0).Inverse())
}

func TestMatrix2Array(t *testing.T) {
	m := Matrix2FromArray([]float32{2, 0, 0, 2})
	assert.Equal(t, Scale2D(2, 2), m)
	assert.Equal(t, []float32{1, 0, 0, 1, 5, 6}, Translate2D(5, 6).Array())
}
