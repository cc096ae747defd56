// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"
)

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values
func B2Empty() Box2 {
	bx := Box2{}
	bx.SetEmpty()
	return bx
}

func (b Box2) String() string {
	return fmt.Sprintf("[%v - %v]", b.Min, b.Max)
}

// SetEmpty set this bounding box to empty (min / max +/- Infinity)
func (b *Box2) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns if this bounding box is empty (max < min on any coord).
func (b Box2) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y)
}

// Canon returns the canonical version of the box, with
// minimum and maximum coordinates swapped if necessary.
func (b Box2) Canon() Box2 {
	if b.Max.X < b.Min.X {
		b.Min.X, b.Max.X = b.Max.X, b.Min.X
	}
	if b.Max.Y < b.Min.Y {
		b.Min.Y, b.Max.Y = b.Max.Y, b.Min.Y
	}
	return b
}

// ExpandByPoint may expand this bounding box to include the specified point.
func (b *Box2) ExpandByPoint(p Vector2) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// ExpandByBox may expand this bounding box to include the specified box.
// Empty boxes are ignored.
func (b *Box2) ExpandByBox(box Box2) {
	if box.IsEmpty() {
		return
	}
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// Union returns the union of this box with the other box.
func (b Box2) Union(other Box2) Box2 {
	b.ExpandByBox(other)
	return b
}

// Intersect returns the intersection with other box.
func (b Box2) Intersect(other Box2) Box2 {
	other.Min = other.Min.Max(b.Min)
	other.Max = other.Max.Min(b.Max)
	return other
}

// Size returns the size of this bounding box.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Center returns the center of the bounding box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// ContainsPoint returns if this bounding box contains the specified point.
func (b Box2) ContainsPoint(p Vector2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Outset returns the box grown by d on every side.
func (b Box2) Outset(d float32) Box2 {
	return Box2{b.Min.Sub(Vector2Scalar(d)), b.Max.Add(Vector2Scalar(d))}
}

// MulMatrix2 returns the bounding box of this box transformed by the matrix.
func (b Box2) MulMatrix2(m Matrix2) Box2 {
	if b.IsEmpty() {
		return b
	}
	nb := B2Empty()
	nb.ExpandByPoint(m.MulVector2AsPoint(b.Min))
	nb.ExpandByPoint(m.MulVector2AsPoint(b.Max))
	nb.ExpandByPoint(m.MulVector2AsPoint(Vec2(b.Min.X, b.Max.Y)))
	nb.ExpandByPoint(m.MulVector2AsPoint(Vec2(b.Max.X, b.Min.Y)))
	return nb
}

// ToRect returns image.Rectangle version of this bbox, using floor for min
// and Ceil for max.
func (b Box2) ToRect() image.Rectangle {
	return image.Rectangle{Min: b.Min.ToPointFloor(), Max: b.Max.ToPointCeil()}
}
