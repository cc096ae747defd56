// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package canvas defines the drawing surface that scenes render to,
// along with the [Paint] and [Path] values passed to it. The
// [Recorder] implementation records drawing operations, and
// package raster provides an image based implementation.
package canvas

import (
	"image"
	"image/color"

	"cogentcore.org/animator/math32"
)

// Canvas is a drawing surface with a stack of saved states, each with
// a current transform and clip. A Canvas is borrowed for the duration
// of one draw call.
type Canvas interface {

	// Save pushes a copy of the current transform and clip,
	// returning the save count before the push.
	Save() int

	// SaveLayer is like [Canvas.Save], but also redirects drawing to
	// an offscreen layer with the given bounds, which is composited
	// with the paint (typically its alpha) on the matching Restore.
	SaveLayer(bounds math32.Box2, p *Paint) int

	// Restore pops the state pushed by the last Save or SaveLayer.
	// It does nothing if there is no saved state.
	Restore()

	// SaveCount returns the number of saved states.
	SaveCount() int

	// Concat pre-multiplies the current transform by the matrix.
	Concat(m math32.Matrix2)

	// Matrix returns the current transform.
	Matrix() math32.Matrix2

	// ClipRect intersects the clip with the transformed rectangle.
	ClipRect(r math32.Box2)

	// ClipPath intersects the clip with the transformed path.
	ClipPath(p *Path)

	// DrawColor fills the whole clip with the color.
	DrawColor(c color.Color)

	DrawRect(r math32.Box2, p *Paint)
	DrawOval(r math32.Box2, p *Paint)
	DrawRoundRect(r math32.Box2, rx, ry float32, p *Paint)
	DrawPath(path *Path, p *Paint)

	// DrawText draws text with its baseline origin at x, y
	// aligned according to [Paint.TextAlign].
	DrawText(text string, x, y float32, p *Paint)

	// DrawBitmap draws the image with its top left corner at x, y.
	DrawBitmap(img image.Image, x, y float32, p *Paint)
}

// TextBounds returns an estimate of the local bounds of text drawn
// with [Canvas.DrawText], using an average glyph advance of 0.6 em.
func TextBounds(text string, x, y float32, p *Paint) math32.Box2 {
	size := p.TextSize
	w := 0.6 * size * float32(len([]rune(text)))
	switch p.TextAlign {
	case AlignCenter:
		x -= w / 2
	case AlignRight:
		x -= w
	}
	return math32.B2(x, y-size, x+w, y+0.25*size)
}

// DeviceBounds returns the bounds in device space of a shape with the
// given local bounds drawn with the paint under the matrix, including
// the stroke width.
func DeviceBounds(local math32.Box2, p *Paint, m math32.Matrix2) math32.Box2 {
	if local.IsEmpty() {
		return local
	}
	if p != nil && p.Style != Fill {
		w := max(p.StrokeWidth, 1) / 2
		if p.Join == MiterJoin {
			w *= max(p.MiterLimit, 1)
		}
		local = local.Outset(w)
	}
	if p != nil && p.MaskFilter != nil {
		local = local.Outset(p.MaskFilter.Extent())
	}
	return local.MulMatrix2(m)
}
