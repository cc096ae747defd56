// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
	"strings"

	"cogentcore.org/animator/colors"
	"cogentcore.org/animator/math32"
)

// Styles are the ways a shape can be painted.
type Styles int32

const (
	// Fill fills the interior of shapes.
	Fill Styles = iota

	// Stroke outlines shapes with the stroke width.
	Stroke

	// FillAndStroke fills and then outlines shapes.
	FillAndStroke
)

// Caps are the end caps of stroked lines.
type Caps int32

const (
	ButtCap Caps = iota
	RoundCap
	SquareCap
)

// Joins are the joins between stroked line segments.
type Joins int32

const (
	MiterJoin Joins = iota
	RoundJoin
	BevelJoin
)

// Aligns are the horizontal alignments of text relative to its origin.
type Aligns int32

const (
	AlignLeft Aligns = iota
	AlignCenter
	AlignRight
)

// TileModes are what a gradient does outside of its end points.
type TileModes int32

const (
	// Clamp extends the end colors.
	Clamp TileModes = iota

	// Repeat repeats the gradient.
	Repeat

	// Mirror repeats the gradient, reversing every other copy.
	Mirror
)

// Paint holds the style used to draw shapes, text and bitmaps.
type Paint struct {

	// Color is the solid color, used when there is no Shader.
	// Its alpha is also the opacity of layers and bitmaps.
	Color color.NRGBA

	// Style is whether to fill, stroke or both.
	Style Styles

	// StrokeWidth is the width of stroked lines; 0 is a hairline.
	StrokeWidth float32

	// MiterLimit limits the length of miter joins.
	MiterLimit float32

	Cap  Caps
	Join Joins

	// AntiAlias enables anti-aliased edges.
	AntiAlias bool

	// TextSize is the em size of text.
	TextSize float32

	TextAlign Aligns

	// Shader is an optional gradient used instead of Color.
	Shader *Gradient

	// MaskFilter is an optional filter applied to the coverage
	// of what is drawn, such as a [Blur] or [Emboss].
	MaskFilter MaskFilter

	// PathEffect is an optional dash pattern for strokes.
	PathEffect *Dash
}

// NewPaint returns a new paint with the default values:
// an opaque black fill with 12 point text.
func NewPaint() *Paint {
	return &Paint{
		Color:      colors.Black,
		MiterLimit: 4,
		TextSize:   12,
	}
}

// Clone returns a copy of the paint that shares no storage.
func (p *Paint) Clone() *Paint {
	c := *p
	if p.Shader != nil {
		c.Shader = p.Shader.Clone()
	}
	if p.PathEffect != nil {
		d := *p.PathEffect
		d.Intervals = slices.Clone(d.Intervals)
		c.PathEffect = &d
	}
	return &c
}

// Stroked returns whether the paint strokes.
func (p *Paint) Stroked() bool {
	return p.Style == Stroke || p.Style == FillAndStroke
}

// Filled returns whether the paint fills.
func (p *Paint) Filled() bool {
	return p.Style == Fill || p.Style == FillAndStroke
}

func (p *Paint) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s style=%d", colors.AsHex(p.Color), p.Style)
	if p.Stroked() {
		fmt.Fprintf(&b, " width=%g", p.StrokeWidth)
	}
	if p.Shader != nil {
		b.WriteString(" shader")
	}
	if p.MaskFilter != nil {
		b.WriteString(" mask")
	}
	if p.PathEffect != nil {
		b.WriteString(" dash")
	}
	return b.String()
}

// ErrGradientOffsets is returned for malformed gradient offsets.
var ErrGradientOffsets = errors.New("canvas: gradient offsets must start at 0, end at 1 and strictly increase, with one per color")

// Gradient is a linear or radial color gradient.
type Gradient struct {

	// Radial makes a radial gradient around Center with Radius,
	// rather than a linear gradient from Points[0] to Points[1].
	Radial bool

	Points [2]math32.Vector2
	Center math32.Vector2
	Radius float32

	// Colors are the colors at each offset.
	Colors []color.NRGBA

	// Offsets are the positions of the colors in [0, 1]. If empty
	// the colors are evenly spaced.
	Offsets []float32

	TileMode TileModes

	// Matrix is the local transform of the gradient;
	// see [Gradient.LocalMatrix].
	Matrix math32.Matrix2
}

// Clone returns a copy of the gradient that shares no storage.
func (g *Gradient) Clone() *Gradient {
	c := *g
	c.Colors = slices.Clone(g.Colors)
	c.Offsets = slices.Clone(g.Offsets)
	return &c
}

// LocalMatrix returns [Gradient.Matrix], with the zero value
// treated as the identity.
func (g *Gradient) LocalMatrix() math32.Matrix2 {
	if g.Matrix == (math32.Matrix2{}) {
		return math32.Identity2()
	}
	return g.Matrix
}

// ValidateOffsets checks that the offsets are empty, or start at 0,
// end at 1 and strictly increase, with one offset per color.
func ValidateOffsets(offsets []float32, ncolors int) error {
	if len(offsets) == 0 {
		return nil
	}
	if len(offsets) != ncolors || offsets[0] != 0 || offsets[len(offsets)-1] != 1 {
		return ErrGradientOffsets
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] <= offsets[i-1] {
			return ErrGradientOffsets
		}
	}
	return nil
}

// Stops returns the offsets of the colors, evenly spaced if
// [Gradient.Offsets] is empty.
func (g *Gradient) Stops() []float32 {
	if len(g.Offsets) == len(g.Colors) {
		return g.Offsets
	}
	n := len(g.Colors)
	st := make([]float32, n)
	for i := range st {
		if n > 1 {
			st[i] = float32(i) / float32(n-1)
		}
	}
	return st
}

// Tile maps a gradient parameter onto [0, 1] according to the tile mode.
func (g *Gradient) Tile(t float32) float32 {
	switch g.TileMode {
	case Repeat:
		t, _ = math32.Fold(t, 1)
	case Mirror:
		f, n := math32.Fold(t, 1)
		if n%2 != 0 {
			f = 1 - f
		}
		t = f
	}
	return math32.Clamp(t, 0, 1)
}

// ColorAt returns the color at the gradient parameter t.
func (g *Gradient) ColorAt(t float32) color.NRGBA {
	if len(g.Colors) == 0 {
		return colors.Transparent
	}
	t = g.Tile(t)
	st := g.Stops()
	if t <= st[0] {
		return g.Colors[0]
	}
	for i := 1; i < len(st); i++ {
		if t <= st[i] {
			f := (t - st[i-1]) / (st[i] - st[i-1])
			return colors.Lerp(g.Colors[i-1], g.Colors[i], f)
		}
	}
	return g.Colors[len(g.Colors)-1]
}

// MaskFilter is a filter applied to the coverage of drawing.
type MaskFilter interface {

	// Extent returns how far the filter spreads drawing outward.
	Extent() float32
}

// BlurStyles are the ways a [Blur] combines with the original shape.
type BlurStyles int32

const (
	// BlurNormal blurs inside and outside.
	BlurNormal BlurStyles = iota

	// BlurSolid keeps the shape solid and blurs outside.
	BlurSolid

	// BlurOuter draws only the blur outside the shape.
	BlurOuter

	// BlurInner draws only the blur inside the shape.
	BlurInner
)

// Blur is a Gaussian blur mask filter.
type Blur struct {
	Radius float32
	Style  BlurStyles
}

func (b *Blur) Extent() float32 { return 3 * b.Radius }

// Emboss is an emboss mask filter lit from Direction.
type Emboss struct {
	Radius    float32
	Direction [3]float32
	Ambient   float32
	Specular  float32
}

func (e *Emboss) Extent() float32 { return e.Radius }

// Dash is a dash pattern path effect: alternating on and off
// lengths, starting Phase into the pattern.
type Dash struct {
	Intervals []float32
	Phase     float32
}
