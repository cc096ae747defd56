// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/animator/math32"
	"cogentcore.org/animator/tree"
)

// DisplayList is the ordered list of the top-level drawables of a
// document. Groups and applies hold the nested lists.
type DisplayList struct {

	// Entries are the top-level drawables in drawing order.
	Entries []Node

	// inval accumulates the invalidated device bounds.
	inval math32.Box2

	// tracking is whether bounds are being tracked.
	tracking bool
}

// track records the device bounds of the node drawn in this pass,
// invalidating the old and new bounds if it changed.
func (dl *DisplayList) track(n *NodeBase, dev math32.Box2) {
	if dl.tracking && (n.changed || n.bounds != dev) {
		dl.invalidate(n.bounds)
		dl.invalidate(dev)
	}
	n.bounds = dev
}

// invalidate adds the bounds to the invalidated area.
func (dl *DisplayList) invalidate(b math32.Box2) {
	if b.IsEmpty() {
		return
	}
	if dl.inval.IsEmpty() {
		dl.inval = b
		return
	}
	dl.inval.ExpandByBox(b)
}

// location is a position in one of the drawable lists of a document.
type location struct {

	// owner holds the list: nil for the top level,
	// or a group, or a create mode apply.
	owner Node

	// index is the position in the list, where a negative
	// index is the end of the list.
	index int
}

// listAt returns the list holding the location.
func (m *Maker) listAt(loc location) []Node {
	switch o := loc.owner.(type) {
	case groupNode:
		return nodeChildren(o)
	case *Apply:
		return o.instances
	}
	return m.list.Entries
}

// findGroup returns the location of the node in the display list.
func (m *Maker) findGroup(target Node) (location, bool) {
	if target == nil {
		return location{}, false
	}
	var find func(owner Node, list []Node) (location, bool)
	find = func(owner Node, list []Node) (location, bool) {
		for i, n := range list {
			if n == target {
				return location{owner: owner, index: i}, true
			}
			switch x := n.(type) {
			case groupNode:
				if loc, ok := find(x, nodeChildren(x)); ok {
					return loc, true
				}
			case *Apply:
				if loc, ok := find(x, x.instances); ok {
					return loc, true
				}
				if s := x.ownsScope(m); s == target {
					return location{owner: x, index: -1}, true
				} else if g, ok := s.(groupNode); ok {
					if loc, ok := find(g, nodeChildren(g)); ok {
						return loc, true
					}
				}
			}
		}
		return location{}, false
	}
	return find(nil, m.list.Entries)
}

// insertAt inserts the node at the location, taking ownership of it.
// An index past the end of the list is reported as out of range.
func (m *Maker) insertAt(by Node, loc location, n Node) error {
	list := m.listAt(loc)
	idx := loc.index
	if idx < 0 {
		idx = len(list)
	}
	if idx > len(list) {
		err := m.fail(by, IndexOutOfRange, by.AsNode().Name, fmt.Errorf("anim: index %d past %d entries", idx, len(list)))
		slog.Warn("anim.Maker.insertAt", "err", err)
		return err
	}
	m.helpers = slices.DeleteFunc(m.helpers, func(x Node) bool { return x == n })
	switch o := loc.owner.(type) {
	case groupNode:
		if p := n.AsTree().Parent; p != nil {
			p.AsTree().RemoveChild(n)
		}
		o.AsTree().InsertChild(n, idx)
	case *Apply:
		o.instances = slices.Insert(o.instances, idx, n)
	default:
		if n.AsTree().Parent == nil {
			m.helpers = append(m.helpers, n)
		}
		m.list.Entries = slices.Insert(m.list.Entries, idx, n)
	}
	n.AsNode().changed = true
	m.changed = true
	m.enableInserted(n)
	return nil
}

// enableInserted lets the applies of an inserted subtree be enabled again.
func (m *Maker) enableInserted(n Node) {
	n.AsTree().WalkDown(func(k tree.Node) bool {
		if ap, ok := k.(*Apply); ok && !ap.enabled {
			ap.started = false
		}
		return tree.Continue
	})
}

// removeAt removes the node at the location from its list and returns it.
func (m *Maker) removeAt(loc location) Node {
	var n Node
	switch o := loc.owner.(type) {
	case groupNode:
		kids := nodeChildren(o)
		if loc.index < 0 || loc.index >= len(kids) {
			return nil
		}
		n = kids[loc.index]
		o.AsTree().RemoveChild(n)
	case *Apply:
		if loc.index < 0 {
			n = o.ownsScope(m)
			if n == nil {
				return nil
			}
			o.AsTree().RemoveChild(n)
			o.Scope = 0
			break
		}
		if loc.index >= len(o.instances) {
			return nil
		}
		n = o.instances[loc.index]
		o.instances = slices.Delete(o.instances, loc.index, loc.index+1)
	default:
		if loc.index < 0 || loc.index >= len(m.list.Entries) {
			return nil
		}
		n = m.list.Entries[loc.index]
		m.list.Entries = slices.Delete(m.list.Entries, loc.index, loc.index+1)
	}
	m.list.invalidate(n.AsNode().bounds)
	n.AsNode().bounds = math32.B2Empty()
	m.changed = true
	return n
}

// hit returns the topmost drawn node whose bounds contain the point.
func (m *Maker) hit(x, y float32) Node {
	p := math32.Vec2(x, y)
	var top Node
	var visit func(nodes []Node)
	visit = func(nodes []Node) {
		for _, n := range nodes {
			if n.AsNode().broken {
				continue
			}
			switch c := n.(type) {
			case groupNode:
				if c.AsGroup().visible(m) {
					visit(c.AsGroup().drawables())
				}
				continue
			case *Apply:
				if c.Mode == ModeCreate {
					visit(c.instances)
				} else if s := c.ownsScope(m); s != nil {
					visit([]Node{s})
				}
				continue
			}
			if b := n.AsNode().bounds; !b.IsEmpty() && b.ContainsPoint(p) {
				top = n
			}
		}
	}
	visit(m.list.Entries)
	return top
}
