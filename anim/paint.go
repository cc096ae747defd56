// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"image/color"

	"cogentcore.org/animator/canvas"
	"cogentcore.org/animator/colors"
	"cogentcore.org/animator/math32"
	"cogentcore.org/animator/operand"
)

var (
	styleNames     = []string{"fill", "stroke", "strokeAndFill"}
	capNames       = []string{"butt", "round", "square"}
	joinNames      = []string{"miter", "round", "bevel"}
	alignNames     = []string{"left", "center", "right"}
	tileModeNames  = []string{"clamp", "repeat", "mirror"}
	blurStyleNames = []string{"normal", "solid", "outer", "inner"}
)

// Paint sets the current paint of its group when drawn, and can be
// referenced by the paint attribute of shapes.
type Paint struct {
	NodeBase

	Color       color.NRGBA
	Style       canvas.Styles
	StrokeWidth float32
	StrokeMiter float32
	StrokeCap   canvas.Caps
	StrokeJoin  canvas.Joins
	AntiAlias   bool
	TextSize    float32
	TextAlign   canvas.Aligns

	// Shader is a linearGradient or radialGradient.
	Shader operand.Ref

	// MaskFilter is a blur or emboss.
	MaskFilter operand.Ref

	// PathEffect is a dash.
	PathEffect operand.Ref
}

func (p *Paint) Init() {
	p.Color = colors.Black
	p.StrokeMiter = 4
	p.AntiAlias = true
	p.TextSize = 12
}

func (p *Paint) Caps() Caps { return CapDrawable }

func (p *Paint) Contain(child Node) bool {
	switch c := child.(type) {
	case *Color:
		return true
	case gradientNode:
		p.Shader = c.AsNode().Ref
	case *Blur, *Emboss:
		p.MaskFilter = c.AsNode().Ref
	case *Dash:
		p.PathEffect = c.Ref
	default:
		return false
	}
	return true
}

// compile returns the canvas paint for the current state of the node.
func (p *Paint) compile(m *Maker) *canvas.Paint {
	cp := &canvas.Paint{
		Color:       p.Color,
		Style:       p.Style,
		StrokeWidth: p.StrokeWidth,
		MiterLimit:  p.StrokeMiter,
		Cap:         p.StrokeCap,
		Join:        p.StrokeJoin,
		AntiAlias:   p.AntiAlias,
		TextSize:    p.TextSize,
		TextAlign:   p.TextAlign,
	}
	for _, k := range nodeChildren(p) {
		if c, ok := k.(*Color); ok {
			cp.Color = c.Color
		}
	}
	if g, ok := m.node(p.Shader).(gradientNode); ok {
		cp.Shader = g.gradient(m)
	}
	switch f := m.node(p.MaskFilter).(type) {
	case *Blur:
		cp.MaskFilter = &canvas.Blur{Radius: f.Radius, Style: f.BlurStyle}
	case *Emboss:
		em := &canvas.Emboss{Radius: f.Radius, Ambient: f.Ambient, Specular: f.Specular}
		copy(em.Direction[:], f.Direction)
		cp.MaskFilter = em
	}
	if d, ok := m.node(p.PathEffect).(*Dash); ok && len(d.Intervals) > 0 {
		cp.PathEffect = &canvas.Dash{Intervals: append([]float32(nil), d.Intervals...), Phase: d.Phase}
	}
	return cp
}

func (p *Paint) Draw(dc *drawContext) bool {
	dc.paint = p.compile(dc.m)
	changed := p.changed
	p.changed = false
	return changed
}

// Color is a color. Inside a paint or gradient it sets the color;
// drawn in a group it changes the color of the current paint.
type Color struct {
	NodeBase
	Color color.NRGBA
}

func (c *Color) Init() {
	c.Color = colors.Black
}

func (c *Color) Caps() Caps { return CapDrawable | CapPaintPart }

func (c *Color) Draw(dc *drawContext) bool {
	p := dc.paint.Clone()
	p.Color = c.Color
	dc.paint = p
	changed := c.changed
	c.changed = false
	return changed
}

func (c *Color) hsv() (h, s, v float32) {
	return colors.HSV(c.Color)
}

// Gradient is the base of the gradient shaders. Its colors are
// its color children.
type Gradient struct {
	NodeBase

	// Offsets are the positions of the colors, or empty for even spacing.
	Offsets []float32

	TileMode canvas.TileModes

	// Matrix is an optional matrix element transforming the gradient.
	Matrix operand.Ref
}

type gradientNode interface {
	Node
	AsGradient() *Gradient
	gradient(m *Maker) *canvas.Gradient
}

func (g *Gradient) AsGradient() *Gradient { return g }

func (g *Gradient) Caps() Caps { return CapPaintPart }

func (g *Gradient) Contain(child Node) bool {
	switch c := child.(type) {
	case *Color:
		return true
	case *Matrix:
		g.Matrix = c.Ref
		return true
	}
	return false
}

func (g *Gradient) colors() []color.NRGBA {
	var cs []color.NRGBA
	for _, k := range nodeChildren(g) {
		if c, ok := k.(*Color); ok {
			cs = append(cs, c.Color)
		}
	}
	return cs
}

func (g *Gradient) EndElement(m *Maker) error {
	if err := canvas.ValidateOffsets(g.Offsets, len(g.colors())); err != nil {
		return m.fail(g, GradientOffsets, operand.ScalarArray(g.Offsets...).String(), err)
	}
	return nil
}

func (g *Gradient) base(m *Maker) *canvas.Gradient {
	cg := &canvas.Gradient{Colors: g.colors(), TileMode: g.TileMode}
	if len(g.Offsets) == len(cg.Colors) {
		cg.Offsets = append([]float32(nil), g.Offsets...)
	}
	if mx, ok := m.node(g.Matrix).(*Matrix); ok {
		cg.Matrix = mx.Compute()
	}
	return cg
}

// LinearGradient is a gradient along the line between its two points.
type LinearGradient struct {
	Gradient

	// Points are x0, y0, x1, y1.
	Points []float32
}

func (lg *LinearGradient) gradient(m *Maker) *canvas.Gradient {
	cg := lg.base(m)
	pts := append(append([]float32(nil), lg.Points...), 0, 0, 0, 0)
	cg.Points[0] = math32.Vec2(pts[0], pts[1])
	cg.Points[1] = math32.Vec2(pts[2], pts[3])
	return cg
}

// RadialGradient is a gradient from its center out to its radius.
type RadialGradient struct {
	Gradient
	Center math32.Vector2
	Radius float32
}

func (rg *RadialGradient) gradient(m *Maker) *canvas.Gradient {
	cg := rg.base(m)
	cg.Radial = true
	cg.Center = rg.Center
	cg.Radius = rg.Radius
	return cg
}

// Blur is a blur mask filter.
type Blur struct {
	NodeBase
	Radius    float32
	BlurStyle canvas.BlurStyles
}

func (b *Blur) Caps() Caps { return CapPaintPart }

// Emboss is an emboss mask filter.
type Emboss struct {
	NodeBase
	Radius float32

	// Direction is the x, y, z direction of the light.
	Direction []float32

	Ambient  float32
	Specular float32
}

func (e *Emboss) Init() {
	e.Direction = []float32{1, 1, 1}
	e.Ambient = 0.5
}

func (e *Emboss) Caps() Caps { return CapPaintPart }

// Dash is a dash path effect.
type Dash struct {
	NodeBase

	// Intervals are alternating on and off lengths.
	Intervals []float32

	Phase float32
}

func (d *Dash) Caps() Caps { return CapPaintPart }
