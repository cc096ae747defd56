// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"cogentcore.org/animator/math32"
	"cogentcore.org/animator/operand"
)

// Group draws its drawable children in order, inside a saved canvas
// state so that paint, matrix and clip changes stay in the group.
type Group struct {
	NodeBase

	// Condition is an expression; when false the group is neither
	// drawn nor are the applies inside it enabled.
	Condition string

	// EnableCondition is an expression; when false the applies
	// inside the group are not enabled, but it is still drawn.
	EnableCondition string
}

type groupNode interface {
	Drawable
	AsGroup() *Group
}

func (g *Group) AsGroup() *Group { return g }

func (g *Group) Caps() Caps { return CapDrawable | CapGroup }

func (g *Group) Contain(child Node) bool {
	return containsScene(child)
}

// containsScene returns whether a group or document can contain the
// node: anything but the parts of paths and matrices.
func containsScene(child Node) bool {
	return child.Caps()&(CapPathPart|CapMatrixPart) == 0
}

// visible returns the value of the condition.
func (g *Group) visible(m *Maker) bool {
	return m.condition(g, g.Condition)
}

// enabling returns whether applies inside the group may be enabled.
func (g *Group) enabling(m *Maker) bool {
	return g.visible(m) && m.condition(g, g.EnableCondition)
}

// drawables returns the drawable children of the group.
func (g *Group) drawables() []Node {
	return childrenWith(g, CapDrawable)
}

func (g *Group) Draw(dc *drawContext) bool {
	if !g.visible(dc.m) {
		return false
	}
	dc.canvas.Save()
	changed := g.drawChildren(dc)
	dc.canvas.Restore()
	return changed
}

func (g *Group) drawChildren(dc *drawContext) bool {
	saved := dc.paint
	changed := dc.m.drawNodes(dc, g.drawables())
	dc.paint = saved
	if g.changed {
		g.changed = false
		changed = true
	}
	return changed
}

// Save is a group; it is kept as its own element for documents
// that mark their saved state explicitly.
type Save struct {
	Group
}

// SaveLayer is a group drawn into an offscreen layer that is
// composited with its paint.
type SaveLayer struct {
	Group

	// Bounds are the left, top, right and bottom of the layer.
	Bounds []float32

	// Paint is the paint the layer is composited with.
	Paint operand.Ref
}

func (sl *SaveLayer) EndElement(m *Maker) error {
	if len(sl.Bounds) != 4 {
		return m.fail(sl, SaveLayerNeedsBounds, sl.Name, nil)
	}
	return nil
}

func (sl *SaveLayer) Draw(dc *drawContext) bool {
	if !sl.visible(dc.m) {
		return false
	}
	b := math32.B2(sl.Bounds[0], sl.Bounds[1], sl.Bounds[2], sl.Bounds[3])
	dc.canvas.SaveLayer(b, dc.paintFor(sl.Paint))
	changed := sl.drawChildren(dc)
	dc.canvas.Restore()
	return changed
}

// Clip intersects the canvas clip with a rect or path when drawn.
type Clip struct {
	NodeBase
	Rect operand.Ref
	Path operand.Ref
}

func (cl *Clip) Caps() Caps { return CapDrawable }

func (cl *Clip) Contain(child Node) bool {
	switch c := child.(type) {
	case *Rect:
		cl.Rect = c.Ref
	case *Path:
		cl.Path = c.Ref
	default:
		return false
	}
	return true
}

func (cl *Clip) Draw(dc *drawContext) bool {
	if r, ok := dc.m.node(cl.Rect).(rectNode); ok {
		dc.canvas.ClipRect(r.AsRect().Box())
	}
	if p, ok := dc.m.node(cl.Path).(*Path); ok {
		dc.canvas.ClipPath(p.Build())
	}
	changed := cl.changed
	cl.changed = false
	return changed
}

// Screenplay is the document root.
type Screenplay struct {
	NodeBase
}

func (sp *Screenplay) Contain(child Node) bool {
	return containsScene(child)
}
