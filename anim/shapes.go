// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"image"
	"log/slog"
	"path/filepath"

	"cogentcore.org/animator/canvas"
	"cogentcore.org/animator/canvas/raster"
	"cogentcore.org/animator/math32"
	"cogentcore.org/animator/operand"
)

// drawContext is the state of one draw pass.
type drawContext struct {
	m      *Maker
	canvas canvas.Canvas

	// paint is the current paint set by paint and color elements.
	paint *canvas.Paint

	// now is the time of the draw.
	now int32
}

// paintFor returns the paint of the referenced paint node,
// or the current paint.
func (dc *drawContext) paintFor(ref operand.Ref) *canvas.Paint {
	if p, ok := dc.m.node(ref).(*Paint); ok {
		return p.compile(dc.m)
	}
	return dc.paint
}

// shape records the device bounds of a drawn shape with the given
// local bounds, and returns whether it changed since the last draw.
func (dc *drawContext) shape(n *NodeBase, local math32.Box2, p *canvas.Paint) bool {
	dc.m.list.track(n, canvas.DeviceBounds(local, p, dc.canvas.Matrix()))
	changed := n.changed
	n.changed = false
	return changed
}

// Shape is the base type of drawable shapes.
type Shape struct {
	NodeBase

	// Paint is the paint to draw with instead of the current paint.
	Paint operand.Ref
}

// shapeNode is implemented by all shapes, for the inherited members.
type shapeNode interface {
	AsShape() *Shape
}

func (s *Shape) AsShape() *Shape { return s }

func (s *Shape) Caps() Caps { return CapDrawable }

func (s *Shape) Contain(child Node) bool {
	if p, ok := child.(*Paint); ok {
		s.Paint = p.Ref
		return true
	}
	return false
}

// Rect is a rectangle.
type Rect struct {
	Shape
	Left, Top, Right, Bottom float32
}

type rectNode interface {
	AsRect() *Rect
}

func (r *Rect) AsRect() *Rect { return r }

// Box returns the rectangle as a box.
func (r *Rect) Box() math32.Box2 {
	return math32.B2(r.Left, r.Top, r.Right, r.Bottom)
}

func (r *Rect) Draw(dc *drawContext) bool {
	p := dc.paintFor(r.Paint)
	b := r.Box()
	dc.canvas.DrawRect(b, p)
	return dc.shape(&r.NodeBase, b, p)
}

// Oval is an ellipse inscribed in its rectangle.
type Oval struct {
	Rect
}

func (o *Oval) Draw(dc *drawContext) bool {
	p := dc.paintFor(o.Paint)
	b := o.Box()
	dc.canvas.DrawOval(b, p)
	return dc.shape(&o.NodeBase, b, p)
}

// RoundRect is a rectangle with elliptical corners.
type RoundRect struct {
	Rect
	RX, RY float32
}

func (r *RoundRect) Draw(dc *drawContext) bool {
	p := dc.paintFor(r.Paint)
	b := r.Box()
	dc.canvas.DrawRoundRect(b, r.RX, r.RY, p)
	return dc.shape(&r.NodeBase, b, p)
}

// Line is a line segment.
type Line struct {
	Shape
	X1, Y1, X2, Y2 float32
}

func (l *Line) Draw(dc *drawContext) bool {
	p := dc.paintFor(l.Paint)
	path := &canvas.Path{}
	path.MoveTo(l.X1, l.Y1)
	path.LineTo(l.X2, l.Y2)
	dc.canvas.DrawPath(path, p)
	return dc.shape(&l.NodeBase, path.Bounds(), p)
}

// Polyline is an open polygonal line through its points,
// given as alternating x and y values.
type Polyline struct {
	Shape
	Points []float32
}

type polyNode interface {
	AsPolyline() *Polyline
}

func (pl *Polyline) AsPolyline() *Polyline { return pl }

func (pl *Polyline) path(closed bool) *canvas.Path {
	pts := make([]math32.Vector2, 0, len(pl.Points)/2)
	for i := 0; i+1 < len(pl.Points); i += 2 {
		pts = append(pts, math32.Vec2(pl.Points[i], pl.Points[i+1]))
	}
	path := &canvas.Path{}
	path.AddPoly(pts, closed)
	return path
}

func (pl *Polyline) Draw(dc *drawContext) bool {
	return pl.drawPoly(dc, false)
}

func (pl *Polyline) drawPoly(dc *drawContext, closed bool) bool {
	p := dc.paintFor(pl.Paint)
	path := pl.path(closed)
	dc.canvas.DrawPath(path, p)
	return dc.shape(&pl.NodeBase, path.Bounds(), p)
}

// Polygon is a closed polygon.
type Polygon struct {
	Polyline
}

func (pg *Polygon) Draw(dc *drawContext) bool {
	return pg.drawPoly(dc, true)
}

// Text draws a string with its baseline origin at X, Y.
type Text struct {
	Shape
	Text string
	X, Y float32
}

func (t *Text) Draw(dc *drawContext) bool {
	p := dc.paintFor(t.Paint)
	dc.canvas.DrawText(t.Text, t.X, t.Y, p)
	return dc.shape(&t.NodeBase, canvas.TextBounds(t.Text, t.X, t.Y, p), p)
}

// Bitmap draws an image file with its top left corner at X, Y.
type Bitmap struct {
	Shape

	// Src is the image file, relative to the document.
	Src string

	X, Y float32

	img    image.Image
	loaded string
}

// image returns the decoded image, loading it when Src changes.
func (b *Bitmap) image(m *Maker) image.Image {
	if b.Src == b.loaded {
		return b.img
	}
	b.loaded = b.Src
	b.img = nil
	if b.Src == "" {
		return nil
	}
	fn := b.Src
	if !filepath.IsAbs(fn) && m.Dir != "" {
		fn = filepath.Join(m.Dir, fn)
	}
	img, err := raster.LoadBitmap(fn)
	if err != nil {
		slog.Warn("anim.Bitmap", "src", b.Src, "err", err)
		m.addDiag(&Diagnostic{Code: ResourceNotFound, Noun: b.Src, Line: b.Line, Err: err})
		return nil
	}
	b.img = img
	return img
}

// Size returns the size of the image, or zero if it is not loaded.
func (b *Bitmap) Size(m *Maker) math32.Vector2 {
	img := b.image(m)
	if img == nil {
		return math32.Vector2{}
	}
	sz := img.Bounds().Size()
	return math32.Vec2(float32(sz.X), float32(sz.Y))
}

func (b *Bitmap) Draw(dc *drawContext) bool {
	img := b.image(dc.m)
	if img == nil {
		return false
	}
	p := dc.paintFor(b.Paint)
	dc.canvas.DrawBitmap(img, b.X, b.Y, p)
	sz := b.Size(dc.m)
	return dc.shape(&b.NodeBase, math32.B2(b.X, b.Y, b.X+sz.X, b.Y+sz.Y), nil)
}
