// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/animator/canvas"
	"cogentcore.org/animator/events"
	"cogentcore.org/animator/math32"
	"cogentcore.org/animator/operand"
)

// Draw advances the document to the given time in milliseconds and
// draws it onto the canvas, returning whether anything changed since
// the previous draw. The canvas is only used for the duration of the call.
func (m *Maker) Draw(c canvas.Canvas, now int32) bool {
	m.Advance(now)
	dc := &drawContext{m: m, canvas: c, paint: canvas.NewPaint(), now: now}
	m.list.tracking = m.TrackBounds
	count := c.SaveCount()
	changed := m.drawNodes(dc, m.list.Entries)
	for c.SaveCount() > count {
		c.Restore()
	}
	if m.changed {
		changed = true
		m.changed = false
	}
	m.inval = m.list.inval
	m.list.inval = math32.B2Empty()
	return changed
}

// Invalidated returns the union of the device bounds that changed
// in the last draw, when [Maker.TrackBounds] is set.
func (m *Maker) Invalidated() math32.Box2 {
	return m.inval
}

// drawNodes draws the drawable nodes that are live and not broken.
func (m *Maker) drawNodes(dc *drawContext, nodes []Node) bool {
	changed := false
	for _, n := range nodes {
		d, ok := n.(Drawable)
		if !ok || n.AsNode().broken || m.node(n.AsNode().Ref) == nil {
			continue
		}
		if d.Draw(dc) {
			changed = true
		}
	}
	return changed
}

// Advance advances the document to the given time in milliseconds:
// it delivers the due posted events and samples the enabled applies.
// The first advance after loading starts the document.
func (m *Maker) Advance(now int32) {
	m.time = now
	if !m.started {
		m.start(now)
	}
	for _, ev := range m.queue.PopDue(now) {
		m.Dispatch(ev)
	}
	for _, ev := range m.hostQueue.PopDue(now) {
		m.toHost(ev)
	}
	m.enableListed(now)
	m.sample(now)
	for _, mv := range m.movies {
		if mv.nested != nil {
			mv.nested.Advance(now)
		}
	}
}

// start runs the top-level statements and sends the load event.
func (m *Maker) start(now int32) {
	m.started = true
	for _, n := range nodeChildren(m.root) {
		if n.AsNode().broken {
			continue
		}
		switch st := n.(type) {
		case *Apply:
		case addNode:
			if st.AsAdd().Mode == AddImmediate {
				st.Activate(m, nil)
			}
		case *Post:
			st.Activate(m, nil)
		}
	}
	m.enableListed(now)
	m.Dispatch(&events.Event{Type: events.OnLoad, Time: now})
}

// enableListed enables the applies in the display list that are
// enabled but have not been started, outside of groups whose
// conditions disable them.
func (m *Maker) enableListed(now int32) {
	var visit func(nodes []Node)
	visit = func(nodes []Node) {
		for _, n := range nodes {
			if n.AsNode().broken {
				continue
			}
			switch x := n.(type) {
			case *Apply:
				if x.Enabled && !x.enabled && !x.spent && !x.started {
					m.enableApply(x, now)
				}
			case groupNode:
				if x.AsGroup().enabling(m) {
					visit(x.AsGroup().drawables())
				}
			}
		}
	}
	visit(m.list.Entries)
}

// suppressed returns whether a group containing the apply disables it.
func (m *Maker) suppressed(ap *Apply) bool {
	for p := parentNode(ap); p != nil; p = parentNode(p) {
		if g, ok := p.(groupNode); ok && !g.AsGroup().enabling(m) {
			return true
		}
	}
	return false
}

// sample samples the enabled applies in the order they were enabled,
// so that later enabled applies win, and sends the end events of the
// applies that finished.
func (m *Maker) sample(now int32) {
	var ended []*Apply
	for _, ap := range slices.Clone(m.active) {
		if !ap.enabled || m.suppressed(ap) {
			continue
		}
		done := true
		for _, a := range slices.Clone(ap.actives) {
			a.sample(m, now)
			if !a.isDone() {
				done = false
			}
		}
		if done && !ap.done {
			ap.done = true
			ended = append(ended, ap)
		}
	}
	m.delayed = slices.DeleteFunc(m.delayed, func(ap *Apply) bool { return !ap.waiting(now) })
	for _, ap := range ended {
		slog.Debug("anim.Maker.sample", "apply", ap.Name, "ended", now)
		if ap.Mode == ModeOnce {
			ap.spent = true
			ap.Enabled = false
			m.disableApply(ap)
		}
		m.Dispatch(&events.Event{Type: events.OnEnd, Target: ap.Ref, Time: now})
	}
}

// waiting returns whether any animator of the apply has yet to begin.
func (ap *Apply) waiting(now int32) bool {
	for _, a := range ap.actives {
		if _, ok := a.wake(now); ok {
			return true
		}
	}
	return false
}

// enableApply enables the apply at the given time, creating an active
// for each of its animators.
func (m *Maker) enableApply(ap *Apply, now int32) {
	if ap.broken || !ap.Enabled || ap.spent || m.node(ap.Ref) == nil {
		return
	}
	if ap.DynamicScope != "" {
		v, err := m.eval(ap, ap.DynamicScope, operand.Object)
		if err != nil {
			m.fail(ap, ScriptError, ap.DynamicScope, err)
			return
		}
		ap.Scope = v.Ref
	}
	if ap.Restore && !ap.enabled {
		ap.saveValues(m)
	}
	m.releaseActives(ap)
	ap.enabled, ap.done, ap.started = true, false, true
	ap.enableTime = now
	for _, an := range ap.animators(m) {
		a := &active{apply: ap, anim: an, target: ap.targetOf(an.AsAnimate()),
			timing: an.AsAnimate().timing(now), reverse: ap.Transition == Reverse}
		if err := a.resolve(m); err != nil {
			continue
		}
		ap.actives = append(ap.actives, a)
	}
	slog.Debug("anim.Maker.enableApply", "apply", ap.Name, "time", now, "animators", len(ap.actives))
	switch ap.Mode {
	case ModeImmediate:
		for _, a := range ap.actives {
			end := a.timing.End()
			if a.timing.Forever() {
				end = a.timing.Begin + a.timing.Period()
			}
			a.sample(m, end)
		}
		ap.done = true
		return
	case ModeCreate:
		m.createInstances(ap)
		ap.done = true
		return
	}
	for _, a := range ap.actives {
		m.merge(a)
	}
	m.active = append(slices.DeleteFunc(m.active, func(x *Apply) bool { return x == ap }), ap)
	if ap.waiting(now) && !slices.Contains(m.delayed, ap) {
		m.delayed = append(m.delayed, ap)
	}
	m.changed = true
}

// disableApply disables the apply, restoring the saved values if it restores.
func (m *Maker) disableApply(ap *Apply) {
	if !ap.enabled {
		return
	}
	m.releaseActives(ap)
	ap.enabled = false
	m.active = slices.DeleteFunc(m.active, func(x *Apply) bool { return x == ap })
	m.delayed = slices.DeleteFunc(m.delayed, func(x *Apply) bool { return x == ap })
	if ap.Restore {
		ap.restoreValues(m)
	}
	slog.Debug("anim.Maker.disableApply", "apply", ap.Name)
}

// merge makes the active the owner of its field. An earlier active of
// another apply on the same field with the same begin time is
// discarded; otherwise both are kept and the later enabled one wins
// while both are sampling.
func (m *Maker) merge(a *active) {
	key := fieldKey{a.target, a.member.Name}
	if prev, ok := m.owners[key]; ok && prev != a && prev.apply != a.apply && prev.timing.Begin == a.timing.Begin {
		prev.apply.actives = slices.DeleteFunc(prev.apply.actives, func(x *active) bool { return x == prev })
		slog.Debug("anim.Maker.merge", "discarded", prev.apply.Name, "field", key.field)
	}
	m.owners[key] = a
}

// releaseActives drops the actives of the apply and their field ownership.
func (m *Maker) releaseActives(ap *Apply) {
	for _, a := range ap.actives {
		key := fieldKey{a.target, a.member.Name}
		if m.owners[key] == a {
			delete(m.owners, key)
		}
	}
	ap.actives = nil
}

// createInstances makes the copies of the scope of a ModeCreate apply,
// one for each step, with the animators sampled at the time of the step.
func (m *Maker) createInstances(ap *Apply) {
	scope, ok := m.node(ap.Scope).(Drawable)
	if !ok {
		m.fail(ap, IDNotFound, ap.Name, fmt.Errorf("anim: create mode apply has no scope"))
		return
	}
	for _, in := range ap.instances {
		m.destroy(in)
	}
	ap.instances = nil
	steps := int(max(ap.Steps, 0))
	for step := 0; step <= steps; step++ {
		c, refs := m.deepCopy(scope)
		for _, a := range ap.actives {
			t, ok := refs[a.target]
			if !ok {
				continue
			}
			ca := &active{apply: ap, anim: a.anim, target: t, member: a.member, timing: a.timing, reverse: a.reverse, state: started}
			ca.sample(m, a.timing.StepTime(step, steps))
		}
		ap.instances = append(ap.instances, c)
	}
}

// Interval returns the smallest redraw interval asked for by the
// applies that are sampling, or [NoInterval] when nothing is animating.
func (m *Maker) Interval() int32 {
	iv := NoInterval
	for _, ap := range m.active {
		if !ap.enabled || ap.done || !ap.sampling() {
			continue
		}
		if iv < 0 || ap.Interval < iv {
			iv = max(ap.Interval, 0)
		}
	}
	for _, mv := range m.movies {
		if mv.nested == nil {
			continue
		}
		if miv := mv.nested.Interval(); miv >= 0 && (iv < 0 || miv < iv) {
			iv = miv
		}
	}
	return iv
}

// sampling returns whether any animator of the apply is inside its time window.
func (ap *Apply) sampling() bool {
	for _, a := range ap.actives {
		if a.state == sampling {
			return true
		}
	}
	return false
}

// NextWake returns the next time at which the document needs to be
// advanced: the earliest delayed event, delayed animator begin, or
// redraw interval. It returns false if nothing is scheduled.
func (m *Maker) NextWake() (int32, bool) {
	best, ok := int32(0), false
	consider := func(t int32) {
		if !ok || t < best {
			best, ok = t, true
		}
	}
	if t, has := m.queue.Next(); has {
		consider(t)
	}
	if t, has := m.hostQueue.Next(); has {
		consider(t)
	}
	for _, ap := range m.delayed {
		for _, a := range ap.actives {
			if t, has := a.wake(m.time); has {
				consider(t)
			}
		}
	}
	if iv := m.Interval(); iv >= 0 {
		consider(m.time + iv)
	}
	for _, mv := range m.movies {
		if mv.nested == nil {
			continue
		}
		if t, has := mv.nested.NextWake(); has {
			consider(t)
		}
	}
	return best, ok
}

// post sends the event to the sink after the delay in milliseconds.
func (m *Maker) post(sink string, ev *events.Event, delay int32) error {
	at := m.time + max(delay, 0)
	switch sink {
	case "":
		if delay <= 0 {
			ev.Time = m.time
			m.Dispatch(ev)
			return nil
		}
		m.queue.Add(at, ev)
	case HostSink:
		if delay <= 0 {
			m.toHost(ev)
			return nil
		}
		m.hostQueue.Add(at, ev)
	default:
		mv, ok := m.Lookup(sink).(*Movie)
		if !ok || mv.nested == nil {
			return fmt.Errorf("anim: no movie %q to post to", sink)
		}
		if delay <= 0 {
			ev.Time = mv.nested.time
			mv.nested.Dispatch(ev)
			return nil
		}
		mv.nested.queue.Add(mv.nested.time+delay, ev)
	}
	return nil
}

// toHost delivers the event to the host sink.
func (m *Maker) toHost(ev *events.Event) {
	ev.Time = m.time
	if m.HostSink == nil {
		slog.Debug("anim.Maker.toHost", "dropped", ev.String())
		return
	}
	m.HostSink(ev)
}
