// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"cogentcore.org/animator/math32"
)

// Matrix concatenates a transform onto the canvas when drawn. The
// transform is Values, then the translate, rotate, scale and skew
// members, then each matrix part child in order.
type Matrix struct {
	NodeBase

	// Values are an optional base matrix in XX, YX, XY, YY, X0, Y0 order.
	Values []float32

	Translate      math32.Vector2
	Rotate         float32
	ScaleX, ScaleY float32
	SkewX, SkewY   float32
}

func (mx *Matrix) Init() {
	mx.ScaleX, mx.ScaleY = 1, 1
}

func (mx *Matrix) Caps() Caps { return CapDrawable }

func (mx *Matrix) Contain(child Node) bool {
	return child.Caps().Has(CapMatrixPart)
}

// Compute returns the transform of the matrix.
func (mx *Matrix) Compute() math32.Matrix2 {
	m := math32.Matrix2FromArray(mx.Values)
	m = m.Mul(math32.Translate2D(mx.Translate.X, mx.Translate.Y)).
		Mul(math32.Rotate2D(math32.DegToRad(mx.Rotate))).
		Mul(math32.Scale2D(mx.ScaleX, mx.ScaleY)).
		Mul(math32.Skew2D(mx.SkewX, mx.SkewY))
	for _, k := range nodeChildren(mx) {
		if mp, ok := k.(MatrixPart); ok {
			m = m.Mul(mp.Matrix())
		}
	}
	return m
}

func (mx *Matrix) Draw(dc *drawContext) bool {
	dc.canvas.Concat(mx.Compute())
	changed := mx.changed
	mx.changed = false
	return changed
}

// MatrixPart is one transform step of a matrix.
type MatrixPart interface {
	Node
	Matrix() math32.Matrix2
}

type matrixPart struct {
	NodeBase
}

func (mp *matrixPart) Caps() Caps { return CapMatrixPart }

// about returns m applied about the center point.
func about(m math32.Matrix2, c math32.Vector2) math32.Matrix2 {
	return math32.Translate2D(c.X, c.Y).Mul(m).Mul(math32.Translate2D(-c.X, -c.Y))
}

// RotatePart rotates by Degrees about Center.
type RotatePart struct {
	matrixPart
	Degrees float32
	Center  math32.Vector2
}

func (rp *RotatePart) Matrix() math32.Matrix2 {
	return about(math32.Rotate2D(math32.DegToRad(rp.Degrees)), rp.Center)
}

// ScalePart scales about Center.
type ScalePart struct {
	matrixPart
	X, Y   float32
	Center math32.Vector2
}

func (sp *ScalePart) Init() {
	sp.X, sp.Y = 1, 1
}

func (sp *ScalePart) Matrix() math32.Matrix2 {
	return about(math32.Scale2D(sp.X, sp.Y), sp.Center)
}

type TranslatePart struct {
	matrixPart
	X, Y float32
}

func (tp *TranslatePart) Matrix() math32.Matrix2 {
	return math32.Translate2D(tp.X, tp.Y)
}

type SkewPart struct {
	matrixPart
	X, Y float32
}

func (sp *SkewPart) Matrix() math32.Matrix2 {
	return math32.Skew2D(sp.X, sp.Y)
}
