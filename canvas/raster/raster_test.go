// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"cogentcore.org/animator/canvas"
	"cogentcore.org/animator/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.NRGBA{255, 0, 0, 255}

func redPaint() *canvas.Paint {
	p := canvas.NewPaint()
	p.Color = red
	return p
}

func countOpaque(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			n++
		}
	}
	return n
}

func TestFillRect(t *testing.T) {
	c := New(20, 20)
	c.DrawRect(math32.B2(5, 5, 15, 15), redPaint())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c.Image.RGBAAt(10, 10))
	assert.Equal(t, color.RGBA{}, c.Image.RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{}, c.Image.RGBAAt(17, 10))
}

func TestTransformAndRestore(t *testing.T) {
	c := New(20, 20)
	c.Restore()
	assert.Equal(t, 0, c.Save())
	c.Concat(math32.Translate2D(10, 0))
	c.DrawRect(math32.B2(0, 0, 5, 5), redPaint())
	c.Restore()
	assert.True(t, c.Matrix().IsIdentity())
	assert.Equal(t, 0, c.SaveCount())
	assert.Equal(t, uint8(255), c.Image.RGBAAt(12, 2).A)
	assert.Equal(t, uint8(0), c.Image.RGBAAt(2, 2).A)
}

func TestClipRect(t *testing.T) {
	c := New(20, 20)
	c.Save()
	c.ClipRect(math32.B2(0, 0, 10, 20))
	assert.Equal(t, image.Rect(0, 0, 10, 20), c.Clip())
	c.DrawRect(math32.B2(0, 0, 20, 20), redPaint())
	c.Restore()
	assert.Equal(t, uint8(255), c.Image.RGBAAt(5, 10).A)
	assert.Equal(t, uint8(0), c.Image.RGBAAt(15, 10).A)
	assert.Equal(t, image.Rect(0, 0, 20, 20), c.Clip())

	c.ClipRect(math32.B2(30, 30, 40, 40))
	c.DrawColor(red)
	assert.Equal(t, uint8(0), c.Image.RGBAAt(15, 10).A, "empty clip draws nothing")
}

func TestClipPath(t *testing.T) {
	c := New(20, 20)
	p := &canvas.Path{}
	p.AddOval(math32.B2(0, 0, 20, 20))
	c.ClipPath(p)
	c.DrawColor(red)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c.Image.RGBAAt(10, 10))
	assert.Equal(t, uint8(0), c.Image.RGBAAt(0, 0).A)

	c.DrawRect(math32.B2(0, 0, 20, 20), redPaint())
	assert.Equal(t, uint8(0), c.Image.RGBAAt(19, 19).A, "shapes are masked too")
}

func TestLayerAlpha(t *testing.T) {
	c := New(20, 20)
	lp := canvas.NewPaint()
	lp.Color.A = 128
	c.SaveLayer(math32.B2Empty(), lp)
	c.DrawRect(math32.B2(0, 0, 20, 20), redPaint())
	assert.Equal(t, uint8(0), c.Image.RGBAAt(10, 10).A, "drawn to the layer")
	c.Restore()
	px := c.Image.RGBAAt(10, 10)
	assert.InDelta(t, 128, px.A, 2)
	assert.InDelta(t, 128, px.R, 2)

	c = New(20, 20)
	c.SaveLayer(math32.B2(0, 0, 10, 10), nil)
	c.DrawRect(math32.B2(0, 0, 20, 20), redPaint())
	c.Restore()
	assert.Equal(t, uint8(255), c.Image.RGBAAt(5, 5).A)
	assert.Equal(t, uint8(0), c.Image.RGBAAt(15, 15).A, "layer bounds clip")
}

func TestStroke(t *testing.T) {
	c := New(20, 20)
	p := redPaint()
	p.Style = canvas.Stroke
	p.StrokeWidth = 2
	c.DrawRect(math32.B2(5, 5, 15, 15), p)
	assert.Equal(t, uint8(255), c.Image.RGBAAt(5, 10).A)
	assert.Equal(t, uint8(0), c.Image.RGBAAt(10, 10).A)

	d := New(20, 20)
	p.PathEffect = &canvas.Dash{Intervals: []float32{2, 2}}
	d.DrawRect(math32.B2(5, 5, 15, 15), p)
	assert.Less(t, countOpaque(d.Image), countOpaque(c.Image), "dashes leave gaps")
}

func TestGradient(t *testing.T) {
	c := New(20, 20)
	p := canvas.NewPaint()
	p.Shader = &canvas.Gradient{
		Points: [2]math32.Vector2{{X: 0, Y: 0}, {X: 20, Y: 0}},
		Colors: []color.NRGBA{{0, 0, 0, 255}, {255, 255, 255, 255}},
	}
	c.DrawRect(math32.B2(0, 0, 20, 20), p)
	assert.Less(t, c.Image.RGBAAt(2, 10).R, uint8(80))
	assert.Greater(t, c.Image.RGBAAt(18, 10).R, uint8(180))
	assert.Equal(t, uint8(255), c.Image.RGBAAt(10, 10).A)
}

func TestMaskFilters(t *testing.T) {
	c := New(20, 20)
	p := redPaint()
	p.MaskFilter = &canvas.Blur{Radius: 2}
	c.DrawRect(math32.B2(8, 8, 12, 12), p)
	assert.Greater(t, c.Image.RGBAAt(6, 10).A, uint8(0), "blur spreads outside")
	assert.Equal(t, uint8(0), c.Image.RGBAAt(1, 10).A)

	e := New(20, 20)
	p.MaskFilter = &canvas.Emboss{Radius: 1, Ambient: 0.5, Specular: 0.2}
	e.DrawRect(math32.B2(4, 4, 16, 16), p)
	assert.Equal(t, uint8(255), e.Image.RGBAAt(10, 10).A)
	assert.Equal(t, uint8(0), e.Image.RGBAAt(1, 1).A)
}

func TestTextAndBitmap(t *testing.T) {
	c := New(40, 20)
	p := redPaint()
	p.TextSize = 13
	c.DrawText("Hi", 2, 15, p)
	assert.Greater(t, countOpaque(c.Image), 5)

	bm := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			bm.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	b := New(10, 10)
	b.DrawBitmap(bm, 4, 4, nil)
	px := b.Image.RGBAAt(4, 4)
	assert.Greater(t, px.B, uint8(200))
	assert.Equal(t, uint8(0), b.Image.RGBAAt(1, 1).A)

	fn := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, b.SaveImage(fn))
	img, err := LoadBitmap(fn)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 10), img.Bounds())
}
