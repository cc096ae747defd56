// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"log/slog"
	"slices"

	"cogentcore.org/animator/events"
	"cogentcore.org/animator/operand"
)

// ApplyModes are the ways an apply runs its animators.
type ApplyModes int32

const (
	// ModeNormal samples the animators at each advance until they finish.
	ModeNormal ApplyModes = iota

	// ModeCreate draws a copy of the scope for each step, sampled at
	// the time of the step, instead of animating the scope.
	ModeCreate

	// ModeImmediate jumps the animators to their end when enabled.
	ModeImmediate

	// ModeOnce is like ModeNormal, but the apply disables itself once
	// finished and cannot be enabled again.
	ModeOnce
)

var applyModeNames = []string{"normal", "create", "immediate", "once"}

// Transitions are the directions an apply plays its animators in.
type Transitions int32

const (
	Forward Transitions = iota
	Reverse
)

var transitionNames = []string{"normal", "reverse"}

// Apply enables its animators against its scope. Top-level applies
// are enabled when the document starts, and applies inside events
// when the event fires.
type Apply struct {
	NodeBase

	// Scope is the drawable the animators target by default.
	// A drawable child is the scope and is drawn by the apply.
	Scope operand.Ref

	// Animator is an animator to enable in addition to the animator children.
	Animator operand.Ref

	Mode       ApplyModes
	Transition Transitions

	// Steps is the number of steps of ModeCreate, which makes Steps+1 copies.
	Steps int32

	// Restore reinstates the values of the animated fields
	// held before the apply was enabled when it is disabled.
	Restore bool

	// Enabled can be set false to disable the apply, and true to enable it.
	Enabled bool

	// Interval is the redraw interval the apply asks for while sampling,
	// with 0 for as often as possible.
	Interval int32

	// DynamicScope is an expression evaluated to the scope each time
	// the apply is enabled.
	DynamicScope string

	// enabled is whether the apply has been enabled and not disabled.
	enabled bool

	// done is set once all the animators have finished.
	done bool

	// spent is set once a ModeOnce apply has finished.
	spent bool

	// started is set once the apply has been enabled.
	started bool

	enableTime int32
	actives    []*active

	// instances are the copies of the scope made by ModeCreate.
	instances []Node

	// saved are the values to restore when disabled.
	saved []savedValue
}

type savedValue struct {
	target operand.Ref
	field  string
	value  operand.Value
}

func (ap *Apply) Init() {
	ap.Enabled = true
}

func (ap *Apply) Caps() Caps { return CapDrawable | CapStatement }

func (ap *Apply) Contain(child Node) bool {
	switch {
	case child.Caps().Has(CapAnimator):
		return true
	case child.Caps().Has(CapDrawable) && ap.Scope == 0:
		ap.Scope = child.AsNode().Ref
		return true
	}
	return false
}

func (ap *Apply) EndElement(m *Maker) error {
	if ap.Scope != 0 && ap.Scope == ap.Ref {
		return m.fail(ap, ApplyScopesItself, ap.Name, nil)
	}
	return nil
}

func (ap *Apply) resetRuntime() {
	ap.NodeBase.resetRuntime()
	ap.enabled, ap.done, ap.spent, ap.started = false, false, false, false
	ap.actives = nil
	ap.instances = nil
	ap.saved = nil
}

// animators returns the animators of the apply.
func (ap *Apply) animators(m *Maker) []animatorNode {
	var ans []animatorNode
	if an, ok := m.node(ap.Animator).(animatorNode); ok {
		ans = append(ans, an)
	}
	for _, k := range nodeChildren(ap) {
		if an, ok := k.(animatorNode); ok {
			ans = append(ans, an)
		}
	}
	return ans
}

// ownsScope returns whether the scope is a child of the apply.
func (ap *Apply) ownsScope(m *Maker) Drawable {
	d, ok := m.node(ap.Scope).(Drawable)
	if !ok || parentNode(d) != Node(ap) {
		return nil
	}
	return d
}

// targetOf returns the target of the animator for this apply.
func (ap *Apply) targetOf(an *Animate) operand.Ref {
	if an.Target != 0 {
		return an.Target
	}
	return ap.Scope
}

// Activate enables the apply at the current time.
func (ap *Apply) Activate(m *Maker, ev *events.Event) {
	m.enableApply(ap, m.time)
}

// IsEnabled returns whether the apply is enabled.
func (ap *Apply) IsEnabled() bool {
	return ap.enabled
}

// memberChanged enables or disables the apply when Enabled is set.
func (ap *Apply) memberChanged(m *Maker, name string) {
	if name != "enabled" {
		return
	}
	switch {
	case ap.Enabled && !ap.enabled:
		m.enableApply(ap, m.time)
	case !ap.Enabled && ap.enabled:
		m.disableApply(ap)
	}
}

func (ap *Apply) Draw(dc *drawContext) bool {
	changed := false
	if ap.Mode == ModeCreate {
		changed = dc.m.drawNodes(dc, ap.instances)
	} else if s := ap.ownsScope(dc.m); s != nil {
		changed = dc.m.drawNodes(dc, []Node{s})
	}
	if ap.changed {
		ap.changed = false
		changed = true
	}
	return changed
}

// saveValues saves the values of the fields the animators target.
func (ap *Apply) saveValues(m *Maker) {
	ap.saved = ap.saved[:0]
	for _, an := range ap.animators(m) {
		a := an.AsAnimate()
		target := ap.targetOf(a)
		n := m.node(target)
		if n == nil {
			continue
		}
		mb := n.AsNode().Kind.Member(a.Field)
		if mb == nil || mb.Get == nil {
			continue
		}
		ap.saved = append(ap.saved, savedValue{target: target, field: a.Field, value: mb.Get(n)})
	}
}

// restoreValues reinstates the saved values.
func (ap *Apply) restoreValues(m *Maker) {
	for _, sv := range slices.Backward(ap.saved) {
		n := m.node(sv.target)
		if n == nil {
			continue
		}
		if mb := n.AsNode().Kind.Member(sv.field); mb != nil {
			if err := m.setValue(n, mb, sv.value); err != nil {
				slog.Warn("anim.Apply.restore", "field", sv.field, "err", err)
			}
		}
	}
	ap.saved = nil
}
