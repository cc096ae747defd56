// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides a [canvas.Canvas] that renders into an
// [image.RGBA] using rasterx for paths and golang.org/x/image for
// text and bitmaps.
package raster

import (
	"image"
	"image/color"

	"cogentcore.org/animator/canvas"
	"cogentcore.org/animator/math32"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// state is one entry of the save stack.
type state struct {
	matrix math32.Matrix2

	// clip is the device clip rectangle.
	clip image.Rectangle

	// mask is the coverage of clip paths, nil if only clip is in effect.
	mask *image.Alpha

	// layer is the offscreen layer drawn to, nil for the base image.
	layer *layer
}

type layer struct {
	img   *image.RGBA
	alpha uint8
}

// Canvas renders into Image. It is not safe for concurrent use.
type Canvas struct {

	// Image is the image rendered into.
	Image *image.RGBA

	cur   state
	stack []state
}

var _ canvas.Canvas = (*Canvas)(nil)

// New returns a new [Canvas] rendering into a new transparent image
// of the given size.
func New(width, height int) *Canvas {
	return NewForImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewForImage returns a new [Canvas] rendering into the given image,
// which must have its origin at 0, 0.
func NewForImage(img *image.RGBA) *Canvas {
	c := &Canvas{Image: img}
	c.Reset()
	return c
}

// Reset clears the save stack and restores the identity transform
// and the full clip. It does not clear the image.
func (c *Canvas) Reset() {
	c.stack = nil
	c.cur = state{matrix: math32.Identity2(), clip: c.Image.Bounds()}
}

// Clear fills the whole image with the color, ignoring the clip.
func (c *Canvas) Clear(clr color.Color) {
	draw.Draw(c.Image, c.Image.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

func (c *Canvas) target() *image.RGBA {
	if c.cur.layer != nil {
		return c.cur.layer.img
	}
	return c.Image
}

func (c *Canvas) size() (int, int) {
	sz := c.Image.Bounds().Size()
	return sz.X, sz.Y
}

func (c *Canvas) Save() int {
	n := len(c.stack)
	c.stack = append(c.stack, c.cur)
	return n
}

func (c *Canvas) SaveLayer(bounds math32.Box2, p *canvas.Paint) int {
	n := c.Save()
	alpha := uint8(255)
	if p != nil {
		alpha = p.Color.A
	}
	c.cur.layer = &layer{img: image.NewRGBA(c.Image.Bounds()), alpha: alpha}
	if !bounds.IsEmpty() {
		c.cur.clip = c.cur.clip.Intersect(bounds.MulMatrix2(c.cur.matrix).ToRect())
	}
	return n
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	top := c.cur
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	if top.layer != nil && top.layer != c.cur.layer {
		c.composite(top.layer.img, top.clip, top.layer.alpha)
	}
}

func (c *Canvas) SaveCount() int {
	return len(c.stack)
}

func (c *Canvas) Concat(m math32.Matrix2) {
	c.cur.matrix = c.cur.matrix.Mul(m)
}

func (c *Canvas) Matrix() math32.Matrix2 {
	return c.cur.matrix
}

// Clip returns the current device clip rectangle.
func (c *Canvas) Clip() image.Rectangle {
	return c.cur.clip
}

func (c *Canvas) ClipRect(r math32.Box2) {
	m := c.cur.matrix
	if m.XY == 0 && m.YX == 0 {
		c.cur.clip = c.cur.clip.Intersect(r.MulMatrix2(m).ToRect())
		return
	}
	p := &canvas.Path{}
	p.AddRect(r)
	c.ClipPath(p)
}

func (c *Canvas) ClipPath(p *canvas.Path) {
	dev := p.Transform(c.cur.matrix)
	c.cur.clip = c.cur.clip.Intersect(dev.Bounds().ToRect())
	if c.cur.clip.Empty() {
		return
	}
	w, h := c.size()
	mask := image.NewAlpha(c.Image.Bounds())
	sc := rasterx.NewScannerGV(w, h, mask, mask.Bounds())
	f := rasterx.NewFiller(w, h, sc)
	f.SetColor(color.Alpha{255})
	addPath(f, dev)
	f.Draw()
	if old := c.cur.mask; old != nil {
		for i, a := range old.Pix {
			mask.Pix[i] = uint8(uint16(mask.Pix[i]) * uint16(a) / 255)
		}
	}
	c.cur.mask = mask
}

// maskImage returns the clip mask scaled by alpha, or nil
// if neither applies.
func (c *Canvas) maskImage(alpha uint8) image.Image {
	if c.cur.mask == nil {
		if alpha == 255 {
			return nil
		}
		return image.NewUniform(color.Alpha{alpha})
	}
	if alpha == 255 {
		return c.cur.mask
	}
	m := image.NewAlpha(c.cur.mask.Rect)
	for i, a := range c.cur.mask.Pix {
		m.Pix[i] = uint8(uint16(a) * uint16(alpha) / 255)
	}
	return m
}

// composite draws src over the target within clip, through
// the current clip mask and with the given alpha.
func (c *Canvas) composite(src *image.RGBA, clip image.Rectangle, alpha uint8) {
	r := clip.Intersect(c.cur.clip)
	if r.Empty() {
		return
	}
	draw.DrawMask(c.target(), r, src, r.Min, c.maskImage(alpha), r.Min, draw.Over)
}

func (c *Canvas) DrawColor(clr color.Color) {
	r := c.cur.clip
	if r.Empty() {
		return
	}
	draw.DrawMask(c.target(), r, image.NewUniform(clr), image.Point{}, c.maskImage(255), r.Min, draw.Over)
}

func (c *Canvas) DrawRect(r math32.Box2, p *canvas.Paint) {
	path := &canvas.Path{}
	path.AddRect(r.Canon())
	c.DrawPath(path, p)
}

func (c *Canvas) DrawOval(r math32.Box2, p *canvas.Paint) {
	path := &canvas.Path{}
	path.AddOval(r.Canon())
	c.DrawPath(path, p)
}

func (c *Canvas) DrawRoundRect(r math32.Box2, rx, ry float32, p *canvas.Paint) {
	path := &canvas.Path{}
	path.AddRoundRect(r.Canon(), rx, ry)
	c.DrawPath(path, p)
}

func (c *Canvas) DrawPath(path *canvas.Path, p *canvas.Paint) {
	if c.cur.clip.Empty() || path.IsEmpty() {
		return
	}
	dev := path.Transform(c.cur.matrix)
	scratch := c.cur.mask != nil || p.MaskFilter != nil
	dst := c.target()
	if scratch {
		dst = image.NewRGBA(c.Image.Bounds())
	}
	if p.Filled() {
		c.fill(dst, dev, p)
	}
	if p.Stroked() {
		c.stroke(dst, dev, p)
	}
	if !scratch {
		return
	}
	if p.MaskFilter != nil {
		dst = applyMaskFilter(dst, p.MaskFilter, matrixScale(c.cur.matrix))
	}
	c.composite(dst, c.cur.clip, 255)
}

func (c *Canvas) scanner(dst *image.RGBA) *rasterx.ScannerGV {
	w, h := c.size()
	sc := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	sc.SetClip(c.cur.clip)
	return sc
}

func (c *Canvas) fill(dst *image.RGBA, dev *canvas.Path, p *canvas.Paint) {
	w, h := c.size()
	f := rasterx.NewFiller(w, h, c.scanner(dst))
	setPaint(f.Scanner, p, c.cur.matrix)
	addPath(f, dev)
	f.Draw()
}

func (c *Canvas) stroke(dst *image.RGBA, dev *canvas.Path, p *canvas.Paint) {
	w, h := c.size()
	scale := matrixScale(c.cur.matrix)
	d := rasterx.NewDasher(w, h, c.scanner(dst))
	width := max(p.StrokeWidth*scale, 1)
	var dashes []float64
	var offset float64
	if p.PathEffect != nil && len(p.PathEffect.Intervals) > 0 {
		for _, iv := range p.PathEffect.Intervals {
			dashes = append(dashes, float64(iv*scale))
		}
		offset = float64(p.PathEffect.Phase * scale)
	}
	d.SetStroke(math32.ToFixed(width), math32.ToFixed(max(p.MiterLimit, 1)),
		capFuncs[p.Cap], capFuncs[p.Cap], gapFunc(p.Join), joinModes[p.Join], dashes, offset)
	setPaint(d.Scanner, p, c.cur.matrix)
	addPath(d, dev)
	d.Draw()
}

var (
	capFuncs = [...]rasterx.CapFunc{
		canvas.ButtCap:   rasterx.ButtCap,
		canvas.RoundCap:  rasterx.RoundCap,
		canvas.SquareCap: rasterx.SquareCap,
	}

	joinModes = [...]rasterx.JoinMode{
		canvas.MiterJoin: rasterx.Miter,
		canvas.RoundJoin: rasterx.Round,
		canvas.BevelJoin: rasterx.Bevel,
	}
)

func gapFunc(j canvas.Joins) rasterx.GapFunc {
	if j == canvas.RoundJoin {
		return rasterx.RoundGap
	}
	return rasterx.FlatGap
}

// matrixScale returns the mean scale factor of the matrix,
// used for stroke widths and filter radii.
func matrixScale(m math32.Matrix2) float32 {
	sx, sy := m.ExtractScale()
	return (sx + sy) / 2
}

// addPath feeds the path to the rasterx adder.
func addPath(a rasterx.Adder, p *canvas.Path) {
	open := false
	pi := 0
	for _, v := range p.Verbs {
		n := v.NumPoints()
		pts := p.Points[pi : pi+n]
		pi += n
		switch v {
		case canvas.MoveVerb:
			if open {
				a.Stop(false)
			}
			a.Start(pts[0].ToFixed())
			open = true
		case canvas.LineVerb:
			a.Line(pts[0].ToFixed())
		case canvas.QuadVerb:
			a.QuadBezier(pts[0].ToFixed(), pts[1].ToFixed())
		case canvas.CubicVerb:
			a.CubeBezier(pts[0].ToFixed(), pts[1].ToFixed(), pts[2].ToFixed())
		case canvas.CloseVerb:
			a.Stop(true)
			open = false
		}
	}
	if open {
		a.Stop(false)
	}
}

// setPaint sets the scanner color from the paint color or shader.
func setPaint(s rasterx.Scanner, p *canvas.Paint, m math32.Matrix2) {
	if p.Shader == nil || len(p.Shader.Colors) == 0 {
		s.SetColor(p.Color)
		return
	}
	g := toRasterxGradient(p.Shader, m)
	s.SetColor(g.GetColorFunction(float64(p.Color.A) / 255))
}

var spreads = [...]rasterx.SpreadMethod{
	canvas.Clamp:  rasterx.PadSpread,
	canvas.Repeat: rasterx.RepeatSpread,
	canvas.Mirror: rasterx.ReflectSpread,
}

// toRasterxGradient converts the gradient to a rasterx gradient in
// user space under the matrix.
func toRasterxGradient(g *canvas.Gradient, m math32.Matrix2) *rasterx.Gradient {
	gm := m.Mul(g.LocalMatrix())
	rg := &rasterx.Gradient{
		Units:    rasterx.UserSpaceOnUse,
		Spread:   spreads[g.TileMode],
		IsRadial: g.Radial,
		Matrix:   rasterx.Matrix2D{A: float64(gm.XX), B: float64(gm.YX), C: float64(gm.XY), D: float64(gm.YY), E: float64(gm.X0), F: float64(gm.Y0)},
	}
	rg.Bounds.W, rg.Bounds.H = 1, 1
	if g.Radial {
		rg.Points = [5]float64{float64(g.Center.X), float64(g.Center.Y), float64(g.Center.X), float64(g.Center.Y), float64(g.Radius)}
	} else {
		rg.Points = [5]float64{float64(g.Points[0].X), float64(g.Points[0].Y), float64(g.Points[1].X), float64(g.Points[1].Y)}
	}
	stops := g.Stops()
	for i, clr := range g.Colors {
		op := clr
		op.A = 255
		rg.Stops = append(rg.Stops, rasterx.GradStop{StopColor: op, Offset: float64(stops[i]), Opacity: float64(clr.A) / 255})
	}
	return rg
}

// drawImage draws the image under the matrix m through the clip,
// with the given alpha.
func (c *Canvas) drawImage(img image.Image, m math32.Matrix2, alpha uint8) {
	if c.cur.clip.Empty() {
		return
	}
	aff := f64.Aff3{float64(m.XX), float64(m.XY), float64(m.X0), float64(m.YX), float64(m.YY), float64(m.Y0)}
	opts := &draw.Options{}
	if c.cur.mask != nil {
		opts.DstMask = c.cur.mask
	}
	if alpha < 255 {
		opts.SrcMask = image.NewUniform(color.Alpha{alpha})
	}
	dst := c.target().SubImage(c.cur.clip).(*image.RGBA)
	draw.ApproxBiLinear.Transform(dst, aff, img, img.Bounds(), draw.Over, opts)
}

func (c *Canvas) DrawBitmap(img image.Image, x, y float32, p *canvas.Paint) {
	alpha := uint8(255)
	if p != nil {
		alpha = p.Color.A
	}
	b := img.Bounds()
	m := c.cur.matrix.Mul(math32.Translate2D(x-float32(b.Min.X), y-float32(b.Min.Y)))
	c.drawImage(img, m, alpha)
}
