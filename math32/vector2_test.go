// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2(t *testing.T) {
	v := Vec2(3, 4)
	assert.Equal(t, float32(5), v.Length())
	assert.InDelta(t, 0.6, v.Normal().X, 1e-6)
	assert.InDelta(t, 0.8, v.Normal().Y, 1e-6)
	assert.Equal(t, Vec2(1, 2), Vec2(3, 4).Min(Vec2(1, 2)))
	assert.Equal(t, Vec2(2, 3), Vec2(0, 2).Lerp(Vec2(4, 4), 0.5))
	assert.Equal(t, Vector2{}, Vector2{}.Normal())
}

func TestBox2(t *testing.T) {
	b := B2Empty()
	assert.True(t, b.IsEmpty())
	b.ExpandByPoint(Vec2(1, 2))
	b.ExpandByPoint(Vec2(-1, 5))
	assert.Equal(t, B2(-1, 2, 1, 5), b)
	assert.True(t, b.ContainsPoint(Vec2(0, 3)))
	assert.False(t, b.ContainsPoint(Vec2(2, 3)))

	u := B2(0, 0, 1, 1).Union(B2Empty())
	assert.Equal(t, B2(0, 0, 1, 1), u)
	assert.Equal(t, B2(0, 0, 2, 2), B2(0, 0, 1, 1).Union(B2(1, 1, 2, 2)))
	assert.True(t, B2(0, 0, 1, 1).Intersect(B2(2, 2, 3, 3)).IsEmpty())

	tb := B2(0, 0, 1, 2).MulMatrix2(Translate2D(10, 0).Mul(Scale2D(2, 2)))
	assert.Equal(t, B2(10, 0, 12, 4), tb)
	assert.Equal(t, B2(0, 0, 2, 3), B2(2, 3, 0, 0).Canon())
}

func TestMathHelpers(t *testing.T) {
	assert.Equal(t, 3, Clamp(5, 0, 3))
	assert.Equal(t, float32(0.25), Lerp(0, 1, 0.25))
	r, n := Fold(7, 3)
	assert.Equal(t, float32(1), r)
	assert.Equal(t, 2, n)
	assert.True(t, IsNaN(NaN()))
}
