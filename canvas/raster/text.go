// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"

	"cogentcore.org/animator/canvas"
	"cogentcore.org/animator/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// face is the face used for all text. It is drawn at its native
// size and scaled to the text size of the paint.
var face = basicfont.Face7x13

func (c *Canvas) DrawText(text string, x, y float32, p *canvas.Paint) {
	if text == "" || p.TextSize <= 0 {
		return
	}
	met := face.Metrics()
	ascent, height := met.Ascent.Ceil(), met.Height.Ceil()
	adv := font.MeasureString(face, text).Ceil()
	img := image.NewRGBA(image.Rect(0, 0, adv, height))
	d := font.Drawer{Dst: img, Src: image.NewUniform(p.Color), Face: face, Dot: fixed.P(0, ascent)}
	d.DrawString(text)

	scale := p.TextSize / float32(height)
	w := float32(adv) * scale
	switch p.TextAlign {
	case canvas.AlignCenter:
		x -= w / 2
	case canvas.AlignRight:
		x -= w
	}
	m := c.cur.matrix.Mul(math32.Translate2D(x, y-float32(ascent)*scale)).Mul(math32.Scale2D(scale, scale))
	c.drawImage(img, m, 255)
}
