// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"cogentcore.org/animator/canvas"
)

// FillTypes are the fill rules of a path.
type FillTypes int32

const (
	Winding FillTypes = iota
	EvenOdd
)

var fillTypeNames = []string{"winding", "evenOdd"}

// Path is a shape made of SVG path data followed by path part children.
type Path struct {
	Shape

	// D is the path data, as in the SVG d attribute.
	D string

	FillType FillTypes

	parsed  *canvas.Path
	parsedD string
}

// PathPart is a segment added to a path.
type PathPart interface {
	Node
	addTo(p *canvas.Path)
}

// Build returns the path from its data and parts.
// Malformed data contributes what was parsed before the error.
func (pn *Path) Build() *canvas.Path {
	if pn.parsed == nil || pn.parsedD != pn.D {
		p, err := canvas.ParsePathData(pn.D)
		if err != nil && p == nil {
			p = &canvas.Path{}
		}
		pn.parsed, pn.parsedD = p, pn.D
	}
	p := pn.parsed.Clone()
	for _, k := range nodeChildren(pn) {
		if pp, ok := k.(PathPart); ok {
			pp.addTo(p)
		}
	}
	p.EvenOdd = pn.FillType == EvenOdd
	return p
}

func (pn *Path) Contain(child Node) bool {
	if child.Caps().Has(CapPathPart) {
		return true
	}
	return pn.Shape.Contain(child)
}

func (pn *Path) EndElement(m *Maker) error {
	if _, err := canvas.ParsePathData(pn.D); err != nil {
		return m.fail(pn, ScriptError, pn.D, err)
	}
	return nil
}

func (pn *Path) resetRuntime() {
	pn.NodeBase.resetRuntime()
	pn.parsed, pn.parsedD = nil, ""
}

func (pn *Path) Draw(dc *drawContext) bool {
	p := dc.paintFor(pn.Paint)
	path := pn.Build()
	dc.canvas.DrawPath(path, p)
	return dc.shape(&pn.NodeBase, path.Bounds(), p)
}

// pathPart is the base of the path part types.
type pathPart struct {
	NodeBase

	// Rel makes the coordinates relative to the current point.
	Rel bool
}

type pathPartNode interface {
	asPathPart() *pathPart
}

func (pp *pathPart) asPathPart() *pathPart { return pp }

func (pp *pathPart) Caps() Caps { return CapPathPart }

type MoveTo struct {
	pathPart
	X, Y float32
}

func (mt *MoveTo) addTo(p *canvas.Path) {
	if mt.Rel {
		p.RMoveTo(mt.X, mt.Y)
		return
	}
	p.MoveTo(mt.X, mt.Y)
}

type LineTo struct {
	pathPart
	X, Y float32
}

func (lt *LineTo) addTo(p *canvas.Path) {
	if lt.Rel {
		p.RLineTo(lt.X, lt.Y)
		return
	}
	p.LineTo(lt.X, lt.Y)
}

type QuadTo struct {
	pathPart
	X1, Y1, X2, Y2 float32
}

func (qt *QuadTo) addTo(p *canvas.Path) {
	if qt.Rel {
		p.RQuadTo(qt.X1, qt.Y1, qt.X2, qt.Y2)
		return
	}
	p.QuadTo(qt.X1, qt.Y1, qt.X2, qt.Y2)
}

type CubicTo struct {
	pathPart
	X1, Y1, X2, Y2, X3, Y3 float32
}

func (ct *CubicTo) addTo(p *canvas.Path) {
	if ct.Rel {
		p.RCubicTo(ct.X1, ct.Y1, ct.X2, ct.Y2, ct.X3, ct.Y3)
		return
	}
	p.CubicTo(ct.X1, ct.Y1, ct.X2, ct.Y2, ct.X3, ct.Y3)
}

// ArcTo adds an elliptical arc as in the SVG A command.
type ArcTo struct {
	pathPart
	RX, RY float32

	// Rotation is the x axis rotation of the ellipse in degrees.
	Rotation float32

	LargeArc, Sweep bool
	X, Y            float32
}

func (at *ArcTo) addTo(p *canvas.Path) {
	x, y := at.X, at.Y
	if at.Rel {
		last := p.Last()
		x += last.X
		y += last.Y
	}
	p.ArcTo(at.RX, at.RY, at.Rotation, at.LargeArc, at.Sweep, x, y)
}

type Close struct {
	pathPart
}

func (cl *Close) addTo(p *canvas.Path) {
	p.Close()
}
