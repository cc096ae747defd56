// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"image/color"
	"testing"

	"cogentcore.org/animator/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertBox(t *testing.T, want, have math32.Box2, delta float64, msgs ...any) {
	t.Helper()
	assert.InDelta(t, want.Min.X, have.Min.X, delta, msgs...)
	assert.InDelta(t, want.Min.Y, have.Min.Y, delta, msgs...)
	assert.InDelta(t, want.Max.X, have.Max.X, delta, msgs...)
	assert.InDelta(t, want.Max.Y, have.Max.Y, delta, msgs...)
}

func TestPathBuild(t *testing.T) {
	p := &Path{}
	assert.True(t, p.IsEmpty())
	p.LineTo(10, 0)
	assert.Equal(t, []Verbs{MoveVerb, LineVerb}, p.Verbs, "line starts a contour")
	p.QuadTo(10, 10, 0, 10)
	p.Close()
	p.Close()
	assert.Equal(t, []Verbs{MoveVerb, LineVerb, QuadVerb, CloseVerb}, p.Verbs)
	assert.Equal(t, math32.Vec2(0, 0), p.Last(), "close returns to the start")
	p.RLineTo(5, 5)
	assert.Equal(t, math32.Vec2(5, 5), p.Last())
	assert.Equal(t, MoveVerb, p.Verbs[4], "drawing after close starts a contour")
	assert.Equal(t, "M0,0 L10,0 Q10,10 0,10 Z M0,0 L5,5", p.String())

	c := p.Clone()
	c.Points[0].X = 100
	assert.Equal(t, float32(0), p.Points[0].X)

	p.Reset()
	assert.True(t, p.IsEmpty())
	assert.Empty(t, p.Points)
}

func TestPathShapes(t *testing.T) {
	p := &Path{}
	r := math32.B2(0, 0, 10, 20)
	p.AddRect(r)
	assert.Equal(t, []Verbs{MoveVerb, LineVerb, LineVerb, LineVerb, CloseVerb}, p.Verbs)
	assert.Equal(t, r, p.Bounds())
	assert.InDelta(t, 60, p.Length(), 1e-4)

	o := &Path{}
	o.AddOval(math32.B2(0, 0, 20, 20))
	assertBox(t, math32.B2(0, 0, 20, 20), o.Bounds(), 0.5)
	assert.InDelta(t, 2*math32.Pi*10, o.Length(), 0.2)
	assert.Equal(t, math32.Vec2(20, 10), o.Points[len(o.Points)-1], "arcs end exactly")

	rr := &Path{}
	rr.AddRoundRect(math32.B2(0, 0, 40, 20), 50, 5)
	assertBox(t, math32.B2(0, 0, 40, 20), rr.Bounds(), 0.5, "radii are limited")

	sq := &Path{}
	sq.AddRoundRect(r, 0, 0)
	assert.Equal(t, p.Verbs, sq.Verbs, "zero radii is a plain rect")

	pl := &Path{}
	pl.AddPoly([]math32.Vector2{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}}, true)
	assert.InDelta(t, 12, pl.Length(), 1e-4)

	tp := p.Transform(math32.Translate2D(5, 5))
	assert.Equal(t, math32.B2(5, 5, 15, 25), tp.Bounds())
	assert.Equal(t, r, p.Bounds(), "transform copies")
}

func TestPathArcQuarter(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0)
	p.ArcTo(10, 10, 0, false, true, 10, 10)
	assert.Equal(t, math32.Vec2(10, 10), p.Last())
	assertBox(t, math32.B2(0, 0, 10, 10), p.Bounds(), 0.01, "small sweep arc is a quarter turn")

	p.Reset()
	p.MoveTo(0, 0)
	p.ArcTo(10, 10, 0, true, true, 10, 10)
	assertBox(t, math32.B2(0, -10, 20, 10), p.Bounds(), 0.5, "large sweep arc is three quarters")

	rr := &Path{}
	rr.AddRoundRect(math32.B2(0, 0, 40, 20), 5, 5)
	assertBox(t, math32.B2(0, 0, 40, 20), rr.Bounds(), 0.01, "corners stay inside")
}

func TestPathArcDegenerate(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0)
	p.ArcTo(0, 5, 0, false, true, 10, 0)
	assert.Equal(t, []Verbs{MoveVerb, LineVerb}, p.Verbs, "zero radius is a line")

	p.Reset()
	p.MoveTo(0, 0)
	p.ArcTo(1, 1, 0, false, true, 10, 0)
	assert.Equal(t, math32.Vec2(10, 0), p.Last(), "small radii are scaled up")
	assertBox(t, math32.B2(0, -5, 10, 0), p.Bounds(), 0.5)
}

func TestParsePathData(t *testing.T) {
	p, err := ParsePathData("M10 20 l5 0 h5 v5 z")
	require.NoError(t, err)
	assert.Equal(t, []Verbs{MoveVerb, LineVerb, LineVerb, LineVerb, CloseVerb}, p.Verbs)
	assert.Equal(t, []math32.Vector2{{X: 10, Y: 20}, {X: 15, Y: 20}, {X: 20, Y: 20}, {X: 20, Y: 25}}, p.Points)
	assert.Equal(t, math32.Vec2(10, 20), p.Last())

	p, err = ParsePathData("M0 0 10 0 10,10")
	require.NoError(t, err)
	assert.Equal(t, []Verbs{MoveVerb, LineVerb, LineVerb}, p.Verbs, "coordinates after a move are lines")

	p, err = ParsePathData("M10 10 h5 z m1 1 l1 0")
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(12, 11), p.Last(), "relative to the contour start after close")

	p, err = ParsePathData("M0.5.5L1-2 1e1 2")
	require.NoError(t, err)
	assert.Equal(t, []math32.Vector2{{X: 0.5, Y: 0.5}, {X: 1, Y: -2}, {X: 10, Y: 2}}, p.Points)

	p, err = ParsePathData("M0 0 a5 5 0 1010 0")
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(10, 0), p.Last(), "packed arc flags")
	assert.Equal(t, CubicVerb, p.Verbs[1])

	p, err = ParsePathData("M0 0 C0 10 10 10 10 0 S20 -10 20 0")
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(10, -10), p.Points[4], "reflected cubic control")

	p, err = ParsePathData("M0 0 Q5 10 10 0 T20 0")
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(15, -10), p.Points[3], "reflected quad control")

	p, err = ParsePathData("M0 0 L10 10 S20 20 30 30")
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(10, 10), p.Points[2], "no reflection after a line")

	for _, bad := range []string{"10 10", "M0 0 Lx", "M0 0 A5 5 0 2 0 1 1", "M0 0 L-"} {
		_, err = ParsePathData(bad)
		assert.Error(t, err, bad)
	}
	assert.Panics(t, func() { MustParsePathData("Q") })
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(100, 50)
	p := NewPaint()
	p.Color = color.NRGBA{255, 0, 0, 255}

	assert.Equal(t, 0, r.Save())
	r.Concat(math32.Translate2D(10, 10))
	r.ClipRect(math32.B2(0, 0, 200, 20))
	r.DrawRect(math32.B2(0, 0, 5, 5), p)
	p.Color = color.NRGBA{0, 0, 255, 255}
	assert.Equal(t, 1, r.SaveCount())
	r.Restore()
	r.Restore()
	r.DrawText("hi", 0, 12, p)
	r.DrawColor(color.White)

	assert.Equal(t, []string{"Save", "Concat", "ClipRect", "DrawRect", "Restore", "DrawText", "DrawColor"}, r.Names())
	assert.Equal(t, 0, r.SaveCount())
	assert.True(t, r.Matrix().IsIdentity())
	assert.Equal(t, math32.B2(0, 0, 100, 50), r.Clip())

	draws := r.Draws()
	require.Len(t, draws, 3)
	rect := draws[0]
	assert.Equal(t, math32.Translate2D(10, 10), rect.Matrix)
	assert.Equal(t, math32.B2(10, 10, 100, 30), rect.Clip)
	assert.Equal(t, uint8(255), rect.Paint.Color.R, "paint is copied")
	assert.Equal(t, "hi", draws[1].Text)
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, draws[2].Color)
	assert.Contains(t, r.String(), "DrawColor #FFFFFFFF")

	r.Reset()
	assert.Empty(t, r.Ops)
}

func TestValidateOffsets(t *testing.T) {
	assert.NoError(t, ValidateOffsets(nil, 3))
	assert.NoError(t, ValidateOffsets([]float32{0, 0.3, 1}, 3))
	for _, bad := range [][]float32{{0, 1}, {0.1, 0.5, 1}, {0, 0.5, 0.9}, {0, 0.5, 0.5}, {0, 0.6, 0.4}} {
		assert.ErrorIs(t, ValidateOffsets(bad, 3), ErrGradientOffsets, "%v", bad)
	}
}

func TestGradientColorAt(t *testing.T) {
	g := &Gradient{Colors: []color.NRGBA{{0, 0, 0, 255}, {255, 255, 255, 255}}}
	assert.Equal(t, []float32{0, 1}, g.Stops())
	assert.Equal(t, uint8(128), g.ColorAt(0.5).R)
	assert.Equal(t, uint8(255), g.ColorAt(2).R, "clamp")
	assert.Equal(t, uint8(0), g.ColorAt(-1).R, "clamp")
	g.TileMode = Repeat
	assert.Equal(t, uint8(64), g.ColorAt(1.25).R)
	g.TileMode = Mirror
	assert.Equal(t, uint8(191), g.ColorAt(1.25).R)

	g.Colors = append(g.Colors, color.NRGBA{255, 0, 0, 255})
	assert.Equal(t, []float32{0, 0.5, 1}, g.Stops())
	assert.Equal(t, color.NRGBA{}, (&Gradient{}).ColorAt(0.5))
}

func TestDeviceBounds(t *testing.T) {
	r := math32.B2(0, 0, 10, 10)
	p := NewPaint()
	assert.Equal(t, r, DeviceBounds(r, p, math32.Identity2()))
	p.Style = Stroke
	p.StrokeWidth = 2
	p.Join = BevelJoin
	assert.Equal(t, math32.B2(4, 4, 16, 16), DeviceBounds(r, p, math32.Translate2D(5, 5)))
	p.Join = MiterJoin
	assert.Equal(t, math32.B2(-4, -4, 14, 14), DeviceBounds(r, p, math32.Identity2()))
	p.Style = Fill
	p.MaskFilter = &Blur{Radius: 2}
	assert.Equal(t, math32.B2(-6, -6, 16, 16), DeviceBounds(r, p, math32.Identity2()))
	assert.True(t, DeviceBounds(math32.B2Empty(), p, math32.Identity2()).IsEmpty())
}

func TestTextBounds(t *testing.T) {
	p := NewPaint()
	p.TextSize = 10
	p.TextAlign = AlignCenter
	assertBox(t, math32.B2(8, 0, 32, 12.5), TextBounds("abcd", 20, 10, p), 1e-4)
	p.TextAlign = AlignRight
	assertBox(t, math32.B2(-4, 0, 20, 12.5), TextBounds("abcd", 20, 10, p), 1e-4)
}
