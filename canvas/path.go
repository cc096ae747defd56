// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"fmt"
	"strings"

	"cogentcore.org/animator/math32"
)

// Verbs are the commands of a [Path].
type Verbs uint8

const (
	// MoveVerb starts a new contour at one point.
	MoveVerb Verbs = iota

	// LineVerb adds a line to one point.
	LineVerb

	// QuadVerb adds a quadratic Bézier with a control point and an end point.
	QuadVerb

	// CubicVerb adds a cubic Bézier with two control points and an end point.
	CubicVerb

	// CloseVerb closes the current contour. It has no points.
	CloseVerb
)

// NumPoints returns the number of points used by the verb.
func (v Verbs) NumPoints() int {
	switch v {
	case MoveVerb, LineVerb:
		return 1
	case QuadVerb:
		return 2
	case CubicVerb:
		return 3
	}
	return 0
}

// maxArcSpan is the largest angle in radians that a single cubic
// is allowed to span when approximating an elliptical arc.
const maxArcSpan = math32.Pi / 8

// Path is a sequence of contours made of lines and Bézier curves.
// The zero value is an empty path ready to use.
type Path struct {
	Verbs  []Verbs
	Points []math32.Vector2

	// EvenOdd uses the even-odd fill rule instead of non-zero winding.
	EvenOdd bool

	start math32.Vector2
}

// Reset removes all contours.
func (p *Path) Reset() {
	p.Verbs = p.Verbs[:0]
	p.Points = p.Points[:0]
	p.start = math32.Vector2{}
}

// IsEmpty returns whether the path has no verbs.
func (p *Path) IsEmpty() bool {
	return len(p.Verbs) == 0
}

// Last returns the current point, which is the origin for relative
// commands: the last point added, or the start of the contour after
// a close.
func (p *Path) Last() math32.Vector2 {
	if n := len(p.Verbs); n > 0 && p.Verbs[n-1] == CloseVerb {
		return p.start
	}
	if n := len(p.Points); n > 0 {
		return p.Points[n-1]
	}
	return math32.Vector2{}
}

// ensureMove starts a contour at the current point if there is none.
func (p *Path) ensureMove() {
	if n := len(p.Verbs); n == 0 || p.Verbs[n-1] == CloseVerb {
		p.MoveTo(p.Last().X, p.Last().Y)
	}
}

func (p *Path) MoveTo(x, y float32) {
	p.start = math32.Vec2(x, y)
	p.Verbs = append(p.Verbs, MoveVerb)
	p.Points = append(p.Points, p.start)
}

func (p *Path) LineTo(x, y float32) {
	p.ensureMove()
	p.Verbs = append(p.Verbs, LineVerb)
	p.Points = append(p.Points, math32.Vec2(x, y))
}

func (p *Path) QuadTo(x1, y1, x2, y2 float32) {
	p.ensureMove()
	p.Verbs = append(p.Verbs, QuadVerb)
	p.Points = append(p.Points, math32.Vec2(x1, y1), math32.Vec2(x2, y2))
}

func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float32) {
	p.ensureMove()
	p.Verbs = append(p.Verbs, CubicVerb)
	p.Points = append(p.Points, math32.Vec2(x1, y1), math32.Vec2(x2, y2), math32.Vec2(x3, y3))
}

// Close closes the current contour. It does nothing if there is no
// open contour.
func (p *Path) Close() {
	if n := len(p.Verbs); n == 0 || p.Verbs[n-1] == CloseVerb {
		return
	}
	p.Verbs = append(p.Verbs, CloseVerb)
}

// RMoveTo is [Path.MoveTo] relative to the current point.
func (p *Path) RMoveTo(dx, dy float32) {
	l := p.Last()
	p.MoveTo(l.X+dx, l.Y+dy)
}

// RLineTo is [Path.LineTo] relative to the current point.
func (p *Path) RLineTo(dx, dy float32) {
	l := p.Last()
	p.LineTo(l.X+dx, l.Y+dy)
}

// RQuadTo is [Path.QuadTo] relative to the current point.
func (p *Path) RQuadTo(dx1, dy1, dx2, dy2 float32) {
	l := p.Last()
	p.QuadTo(l.X+dx1, l.Y+dy1, l.X+dx2, l.Y+dy2)
}

// RCubicTo is [Path.CubicTo] relative to the current point.
func (p *Path) RCubicTo(dx1, dy1, dx2, dy2, dx3, dy3 float32) {
	l := p.Last()
	p.CubicTo(l.X+dx1, l.Y+dy1, l.X+dx2, l.Y+dy2, l.X+dx3, l.Y+dy3)
}

// ArcTo adds an SVG style elliptical arc from the current point to
// x, y with radii rx, ry rotated by rot degrees, approximated with
// cubic Béziers. Radii too small to reach the end point are scaled up.
func (p *Path) ArcTo(rx, ry, rot float32, largeArc, sweep bool, x, y float32) {
	start := p.Last()
	rx, ry = math32.Abs(rx), math32.Abs(ry)
	if rx == 0 || ry == 0 || (start.X == x && start.Y == y) {
		p.LineTo(x, y)
		return
	}
	p.ensureMove()
	rotX := math32.DegToRad(rot)
	cx, cy := ellipseCenter(&rx, &ry, rotX, start.X, start.Y, x, y, !sweep, !largeArc)

	startAngle := math32.Atan2(start.Y-cy, start.X-cx) - rotX
	endAngle := math32.Atan2(y-cy, x-cx) - rotX
	etaStart := math32.Atan2(math32.Sin(startAngle)/ry, math32.Cos(startAngle)/rx)
	etaEnd := math32.Atan2(math32.Sin(endAngle)/ry, math32.Cos(endAngle)/rx)
	deltaEta := etaEnd - etaStart
	if (math32.Abs(endAngle-startAngle) > math32.Pi) != largeArc {
		if deltaEta < 0 {
			deltaEta += 2 * math32.Pi
		} else {
			deltaEta -= 2 * math32.Pi
		}
	}
	if deltaEta < 0 && sweep {
		deltaEta += 2 * math32.Pi
	} else if deltaEta >= 0 && !sweep {
		deltaEta -= 2 * math32.Pi
	}

	segs := int(math32.Abs(deltaEta)/maxArcSpan) + 1
	dEta := deltaEta / float32(segs)
	tde := math32.Tan(dEta / 2)
	alpha := math32.Sin(dEta) * (math32.Sqrt(4+3*tde*tde) - 1) / 3
	sinT, cosT := math32.Sincos(rotX)
	lx, ly := start.X, start.Y
	ldx, ldy := ellipseTangent(rx, ry, sinT, cosT, etaStart)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float32(i)
		px, py := x, y
		if i < segs {
			px, py = ellipsePoint(rx, ry, sinT, cosT, eta, cx, cy)
		}
		dx, dy := ellipseTangent(rx, ry, sinT, cosT, eta)
		p.CubicTo(lx+alpha*ldx, ly+alpha*ldy, px-alpha*dx, py-alpha*dy, px, py)
		lx, ly, ldx, ldy = px, py, dx, dy
	}
}

func ellipseTangent(a, b, sinT, cosT, eta float32) (float32, float32) {
	bc := b * math32.Cos(eta)
	as := a * math32.Sin(eta)
	return -as*cosT - bc*sinT, -as*sinT + bc*cosT
}

func ellipsePoint(a, b, sinT, cosT, eta, cx, cy float32) (float32, float32) {
	ac := a * math32.Cos(eta)
	bs := b * math32.Sin(eta)
	return cx + ac*cosT - bs*sinT, cy + ac*sinT + bs*cosT
}

// ellipseCenter finds the center of the ellipse through the two points,
// growing the radii with their ratio kept if no such ellipse exists.
func ellipseCenter(ra, rb *float32, rotX, startX, startY, endX, endY float32, sweep, smallArc bool) (float32, float32) {
	sin, cos := math32.Sincos(rotX)
	nx, ny := endX-startX, endY-startY
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	nx *= *rb / *ra
	midX, midY := nx/2, ny/2
	midLenSq := midX*midX + midY*midY
	var hr float32
	if *rb**rb < midLenSq {
		nrb := math32.Sqrt(midLenSq)
		if *ra == *rb {
			*ra = nrb
		} else {
			*ra = *ra * nrb / *rb
		}
		*rb = nrb
	} else {
		hr = math32.Sqrt(*rb**rb-midLenSq) / math32.Sqrt(midLenSq)
	}
	var cx, cy float32
	if sweep == smallArc {
		cx, cy = midX+midY*hr, midY-midX*hr
	} else {
		cx, cy = midX-midY*hr, midY+midX*hr
	}
	cx *= *ra / *rb
	return cx*cos - cy*sin + startX, cx*sin + cy*cos + startY
}

// AddRect adds a closed rectangle contour.
func (p *Path) AddRect(r math32.Box2) {
	p.MoveTo(r.Min.X, r.Min.Y)
	p.LineTo(r.Max.X, r.Min.Y)
	p.LineTo(r.Max.X, r.Max.Y)
	p.LineTo(r.Min.X, r.Max.Y)
	p.Close()
}

// AddOval adds a closed ellipse contour inscribed in the rectangle.
func (p *Path) AddOval(r math32.Box2) {
	c := r.Center()
	rx, ry := r.Size().X/2, r.Size().Y/2
	p.MoveTo(c.X+rx, c.Y)
	p.ArcTo(rx, ry, 0, false, true, c.X-rx, c.Y)
	p.ArcTo(rx, ry, 0, false, true, c.X+rx, c.Y)
	p.Close()
}

// AddRoundRect adds a closed rectangle contour with elliptical corners,
// with the radii limited to half the size of the rectangle.
func (p *Path) AddRoundRect(r math32.Box2, rx, ry float32) {
	sz := r.Size()
	rx = min(rx, sz.X/2)
	ry = min(ry, sz.Y/2)
	if rx <= 0 || ry <= 0 {
		p.AddRect(r)
		return
	}
	p.MoveTo(r.Min.X+rx, r.Min.Y)
	p.LineTo(r.Max.X-rx, r.Min.Y)
	p.ArcTo(rx, ry, 0, false, true, r.Max.X, r.Min.Y+ry)
	p.LineTo(r.Max.X, r.Max.Y-ry)
	p.ArcTo(rx, ry, 0, false, true, r.Max.X-rx, r.Max.Y)
	p.LineTo(r.Min.X+rx, r.Max.Y)
	p.ArcTo(rx, ry, 0, false, true, r.Min.X, r.Max.Y-ry)
	p.LineTo(r.Min.X, r.Min.Y+ry)
	p.ArcTo(rx, ry, 0, false, true, r.Min.X+rx, r.Min.Y)
	p.Close()
}

// AddPoly adds a contour through the points, closed if close is true.
func (p *Path) AddPoly(pts []math32.Vector2, close bool) {
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
		} else {
			p.LineTo(pt.X, pt.Y)
		}
	}
	if close && len(pts) > 0 {
		p.Close()
	}
}

// AddPath appends the contours of the other path.
func (p *Path) AddPath(o *Path) {
	p.Verbs = append(p.Verbs, o.Verbs...)
	p.Points = append(p.Points, o.Points...)
	p.start = o.start
}

// Clone returns a copy of the path that shares no storage.
func (p *Path) Clone() *Path {
	c := &Path{EvenOdd: p.EvenOdd, start: p.start}
	c.Verbs = append(c.Verbs, p.Verbs...)
	c.Points = append(c.Points, p.Points...)
	return c
}

// Transform returns a copy of the path with all points transformed.
func (p *Path) Transform(m math32.Matrix2) *Path {
	c := p.Clone()
	for i, pt := range c.Points {
		c.Points[i] = m.MulVector2AsPoint(pt)
	}
	c.start = m.MulVector2AsPoint(c.start)
	return c
}

// Walk calls fun for each verb with its points. The first
// point of the slice is the current point before the verb.
func (p *Path) Walk(fun func(v Verbs, pts []math32.Vector2)) {
	var buf [4]math32.Vector2
	cur, start := math32.Vector2{}, math32.Vector2{}
	pi := 0
	for _, v := range p.Verbs {
		n := v.NumPoints()
		buf[0] = cur
		copy(buf[1:], p.Points[pi:pi+n])
		pi += n
		fun(v, buf[:n+1])
		switch v {
		case MoveVerb:
			cur, start = buf[1], buf[1]
		case CloseVerb:
			cur = start
		default:
			cur = buf[n]
		}
	}
}

// Bounds returns the bounds of the points of the path,
// including the control points of curves.
func (p *Path) Bounds() math32.Box2 {
	b := math32.B2Empty()
	for _, pt := range p.Points {
		b.ExpandByPoint(pt)
	}
	return b
}

// flattenSegments is the number of lines used per curve by [Path.Length].
const flattenSegments = 16

// Length returns the total length of the path with curves
// approximated by lines.
func (p *Path) Length() float32 {
	var l float32
	var start math32.Vector2
	p.Walk(func(v Verbs, pts []math32.Vector2) {
		switch v {
		case MoveVerb:
			start = pts[1]
		case LineVerb:
			l += pts[1].Sub(pts[0]).Length()
		case CloseVerb:
			l += start.Sub(pts[0]).Length()
		case QuadVerb, CubicVerb:
			prev := pts[0]
			for i := 1; i <= flattenSegments; i++ {
				pt := bezierPoint(pts, float32(i)/flattenSegments)
				l += pt.Sub(prev).Length()
				prev = pt
			}
		}
	})
	return l
}

// bezierPoint evaluates a quadratic or cubic Bézier by de Casteljau.
func bezierPoint(pts []math32.Vector2, t float32) math32.Vector2 {
	var buf [4]math32.Vector2
	n := copy(buf[:], pts)
	for k := n - 1; k > 0; k-- {
		for i := 0; i < k; i++ {
			buf[i] = buf[i].Lerp(buf[i+1], t)
		}
	}
	return buf[0]
}

// String returns the path in SVG path data form.
func (p *Path) String() string {
	var b strings.Builder
	pi := 0
	for i, v := range p.Verbs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte("MLQCZ"[v])
		for k := 0; k < v.NumPoints(); k++ {
			if k > 0 {
				b.WriteByte(' ')
			}
			pt := p.Points[pi]
			fmt.Fprintf(&b, "%g,%g", pt.X, pt.Y)
			pi++
		}
	}
	return b.String()
}
