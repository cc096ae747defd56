// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"log/slog"

	"cogentcore.org/animator/events"
	"cogentcore.org/animator/operand"
)

// AddModes are when a top-level add statement runs.
type AddModes int32

const (
	// AddImmediate runs a top-level statement when the document starts.
	AddImmediate AddModes = iota

	// AddIndirect only runs the statement from an event.
	AddIndirect
)

var addModeNames = []string{"immediate", "indirect"}

// Add inserts Use into the display list. With Where it is inserted
// Offset entries after Where in the list containing it, and otherwise
// at Offset in the top-level list, with a negative Offset appending.
// A node that is already in the display list is copied.
type Add struct {
	NodeBase

	// Use is the drawable to insert; a drawable child is used by default.
	Use operand.Ref

	// Where is the node the insertion is relative to.
	Where operand.Ref

	Offset int32
	Mode   AddModes
}

type addNode interface {
	Statement
	AsAdd() *Add
}

func (ad *Add) AsAdd() *Add { return ad }

func (ad *Add) Init() {
	ad.Offset = -1
}

func (ad *Add) Caps() Caps { return CapStatement }

func (ad *Add) Contain(child Node) bool {
	if child.Caps().Has(CapDrawable) && ad.Use == 0 {
		ad.Use = child.AsNode().Ref
		return true
	}
	return false
}

// use returns the node to insert, copying it if it is already listed.
func (ad *Add) use(m *Maker) (Node, error) {
	n := m.node(ad.Use)
	if n == nil {
		return nil, m.fail(ad, IDNotFound, ad.Name, fmt.Errorf("anim: %s has nothing to use", ad.Kind.Name))
	}
	if _, listed := m.findGroup(n); listed {
		c, _ := m.deepCopy(n)
		return c, nil
	}
	return n, nil
}

// location returns where to insert relative to Where, or at Offset.
func (ad *Add) location(m *Maker) (location, error) {
	if ad.Where == 0 {
		return location{index: int(ad.Offset)}, nil
	}
	w := m.node(ad.Where)
	loc, ok := m.findGroup(w)
	if w == nil || !ok {
		return location{}, m.fail(ad, IDNotFound, ad.Name, fmt.Errorf("anim: %s where is not in the display list", ad.Kind.Name))
	}
	if ad.Offset > 0 {
		loc.index += int(ad.Offset)
	}
	return loc, nil
}

func (ad *Add) Activate(m *Maker, ev *events.Event) {
	n, err := ad.use(m)
	if err != nil {
		return
	}
	loc, err := ad.location(m)
	if err != nil {
		return
	}
	m.insertAt(ad, loc, n)
}

// Move moves Use from where it is in the display list to the
// location of an add.
type Move struct {
	Add
}

func (mv *Move) Activate(m *Maker, ev *events.Event) {
	n := m.node(mv.Use)
	if n == nil {
		m.fail(mv, IDNotFound, mv.Name, fmt.Errorf("anim: move has nothing to use"))
		return
	}
	if from, ok := m.findGroup(n); ok {
		m.removeAt(from)
	}
	loc, err := mv.location(m)
	if err != nil {
		return
	}
	m.insertAt(mv, loc, n)
}

// Remove removes Where, or Use if Where is unset, from the display list.
type Remove struct {
	Add

	// Delete destroys the node instead of keeping it in the helper set.
	Delete bool
}

func (rm *Remove) Activate(m *Maker, ev *events.Event) {
	ref := rm.Where
	if ref == 0 {
		ref = rm.Use
	}
	n := m.node(ref)
	loc, ok := m.findGroup(n)
	if n == nil || !ok {
		m.fail(rm, IDNotFound, rm.Name, fmt.Errorf("anim: remove target is not in the display list"))
		return
	}
	m.removeAt(loc)
	if rm.Delete {
		m.destroy(n)
		return
	}
	m.adopt(n)
}

// Replace replaces Where with Use, keeping Where in the helper set.
type Replace struct {
	Add
}

func (rp *Replace) Activate(m *Maker, ev *events.Event) {
	n, err := rp.use(m)
	if err != nil {
		return
	}
	w := m.node(rp.Where)
	loc, ok := m.findGroup(w)
	if w == nil || !ok {
		m.fail(rp, IDNotFound, rp.Name, fmt.Errorf("anim: replace where is not in the display list"))
		return
	}
	m.removeAt(loc)
	m.adopt(w)
	m.insertAt(rp, loc, n)
}

// PostModes are when a posted event is delivered.
type PostModes int32

const (
	// PostDeferred delivers the event after Delay, at the next advance.
	PostDeferred PostModes = iota

	// PostImmediate delivers the event at once, ignoring Delay.
	PostImmediate
)

var postModeNames = []string{"deferred", "immediate"}

// HostSink is the sink name of posts delivered to [Maker.HostSink].
const HostSink = "host"

// Post sends a user event, with its data children as the payload.
type Post struct {
	NodeBase

	// Sink is where the event goes: empty for this document,
	// "host" for the host, or the id of a movie.
	Sink string

	// Target is the acting object of the event.
	Target operand.Ref

	// Type is the name of the event.
	Type string

	Delay int32
	Mode  PostModes
}

func (p *Post) Caps() Caps { return CapStatement }

func (p *Post) Contain(child Node) bool {
	_, ok := child.(*PostData)
	return ok
}

// Event returns the event the post sends.
func (p *Post) Event() *events.Event {
	ev := events.NewUser(p.Type)
	ev.Target = p.Target
	for _, k := range nodeChildren(p) {
		if d, ok := k.(*PostData); ok {
			if ev.Data == nil {
				ev.Data = map[string]operand.Value{}
			}
			ev.Data[d.Key] = d.Unbox()
		}
	}
	return ev
}

func (p *Post) Activate(m *Maker, ev *events.Event) {
	delay := p.Delay
	if p.Mode == PostImmediate {
		delay = 0
	}
	if err := m.post(p.Sink, p.Event(), delay); err != nil {
		m.fail(p, IDNotFound, p.Sink, err)
		return
	}
	slog.Debug("anim.Post", "type", p.Type, "sink", p.Sink, "delay", delay)
}
