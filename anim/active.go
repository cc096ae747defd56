// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"errors"
	"fmt"

	"cogentcore.org/animator/interp"
	"cogentcore.org/animator/operand"
	"cogentcore.org/animator/types"
)

// activeStates are the states of an [active].
type activeStates int32

const (
	uninitialized activeStates = iota

	// started has its target resolved and its begin time fixed,
	// and has not yet entered its time window.
	started

	// initialized has its keyframes built.
	initialized

	// sampling has entered its time window.
	sampling

	// finished has written its last value.
	finished
)

// active is one enabled instance of an animator, driving one field.
type active struct {
	apply  *Apply
	anim   animatorNode
	target operand.Ref
	member *types.Member
	timing interp.Timing
	state  activeStates

	// reverse plays the track backward.
	reverse bool

	track *interp.Track

	// discrete are the values of a track of a type that does not
	// interpolate, whose frames hold indexes into it.
	discrete []operand.Value

	// version is the animator version the track was built from.
	version int

	scratch []float32
}

var errNoTarget = errors.New("anim: animator has no target")

// resolve finds the target member of the active.
func (a *active) resolve(m *Maker) error {
	an := a.anim.AsAnimate()
	n := m.node(a.target)
	if n == nil {
		if a.target == 0 {
			return m.fail(an, IDNotFound, an.Name, errNoTarget)
		}
		return m.fail(an, IDNotFound, an.Name, fmt.Errorf("anim: target %d no longer exists", a.target))
	}
	mb, err := m.Registry.Resolve(n.AsNode().Kind, an.Field)
	if err != nil {
		return m.fail(an, FieldNotFound, an.Field, err)
	}
	if mb.IsReadOnly() || mb.Kind == types.Function {
		return m.fail(an, FieldNotFound, an.Field, fmt.Errorf("anim: %s.%s cannot be animated", n.AsNode().Kind.Name, an.Field))
	}
	a.member = mb
	a.state = started
	return nil
}

// init builds the keyframe track from the animator values,
// evaluated with the animator as the working object.
func (a *active) init(m *Maker) error {
	an := a.anim.AsAnimate()
	n := m.node(a.target)
	if n == nil || a.member == nil {
		return errNoTarget
	}
	texts := keyTexts(a.anim)
	vals := make([]operand.Value, len(texts))
	for i, tx := range texts {
		if tx == "" {
			if i > 0 || len(texts) == 1 {
				return m.fail(an, ScriptError, an.Name, errors.New("anim: missing value"))
			}
			vals[i] = a.member.Get(n)
			continue
		}
		v, err := m.parseValue(an, a.member, tx)
		if err != nil {
			return m.fail(an, ScriptError, tx, err)
		}
		vals[i] = v
	}
	a.version = an.version
	a.discrete = nil
	typ := a.member.Type
	arity := typ.Arity()
	comps := make([][]float32, len(vals))
	switch {
	case arity == 0:
		a.discrete = vals
		for i := range vals {
			comps[i] = []float32{float32(i)}
		}
	default:
		for i, v := range vals {
			c, err := operand.Components(v, typ)
			if err != nil {
				return m.fail(an, ScriptError, texts[i], err)
			}
			if i > 0 && len(c) != len(comps[0]) {
				return m.fail(an, ScriptError, texts[i], fmt.Errorf("anim: %d values, want %d", len(c), len(comps[0])))
			}
			comps[i] = c
		}
	}
	a.track = interp.NewTrack(len(comps[0]))
	last := len(comps) - 1
	for i, c := range comps {
		t := int32(0)
		if last > 0 {
			t = int32(int64(an.Dur) * int64(i) / int64(last))
		}
		if err := a.track.Add(t, an.blend(i), c); err != nil {
			return m.fail(an, ScriptError, an.Name, err)
		}
	}
	a.scratch = make([]float32, a.track.Arity)
	a.state = initialized
	return nil
}

// value returns the value of the track at the given local time.
func (a *active) value(local int32) operand.Value {
	if a.reverse && a.timing.Dur > 0 {
		local = a.timing.Dur - local
	}
	vals := a.track.Sample(local, a.scratch)
	if a.discrete != nil {
		i := int(vals[0])
		if a.timing.Dur > 0 && local >= a.track.Duration() {
			i = len(a.discrete) - 1
		}
		return a.discrete[max(0, min(i, len(a.discrete)-1))]
	}
	return operand.FromComponents(a.member.Type, a.member.Elem, vals)
}

// sample writes the value of the field at the given absolute time,
// returning whether it wrote anything. Finished actives only write
// again when the values they depend on change.
func (a *active) sample(m *Maker, now int32) bool {
	an := a.anim.AsAnimate()
	if a.state == finished && a.version == an.version {
		return false
	}
	local, phase := a.timing.Local(now)
	if phase == interp.Before {
		return false
	}
	if a.state < initialized || a.version != an.version {
		if err := a.init(m); err != nil {
			a.state = finished
			return false
		}
	}
	a.state = sampling
	n := m.node(a.target)
	if n == nil {
		a.state = finished
		return false
	}
	if err := m.setValue(n, a.member, a.value(local)); err != nil {
		m.fail(an, ScriptError, an.Field, err)
		a.state = finished
		return false
	}
	if phase == interp.Done {
		a.state = finished
	}
	return true
}

// isDone returns whether the active has finished.
func (a *active) isDone() bool {
	return a.state == finished
}

// wake returns the time the active starts, and false once it has entered its window.
func (a *active) wake(now int32) (int32, bool) {
	if a.state < initialized && a.timing.Begin > now {
		return a.timing.Begin, true
	}
	return 0, false
}
