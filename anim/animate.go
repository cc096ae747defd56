// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"strings"

	"cogentcore.org/animator/interp"
	"cogentcore.org/animator/operand"
)

// Animate animates one field of a target over time. It does nothing
// by itself: an apply enables it, creating an active state for it.
type Animate struct {
	NodeBase

	// Target is the animated node. When unset it is the scope of the apply.
	Target operand.Ref

	// Field is the name of the animated member of the target.
	Field string

	// From is the starting value. When empty the value held by the
	// field when sampling starts is used.
	From string

	// To is the ending value.
	To string

	// Values are keyframe values spread evenly over the duration,
	// separated by semicolons, used instead of From and To.
	Values string

	// Begin is the start time relative to the apply being enabled.
	Begin int32

	// Dur is the duration of one pass.
	Dur int32

	// Repeat is the number of passes, which may be fractional;
	// a negative value repeats forever.
	Repeat float32

	// Mirror plays each pass forward and then backward.
	Mirror bool

	// Reset returns the field to its starting value once done.
	Reset bool

	// Blend are the blend parameters of the segments, with the last
	// one repeated for the remaining segments; see [interp.Weight].
	Blend []float32

	// Dynamic re-evaluates the values when a node they reference changes.
	Dynamic bool

	// version counts the changes of the nodes the values depend on.
	version int

	// dependsOn are the nodes this animator is a dependent of.
	dependsOn []operand.Ref
}

type animatorNode interface {
	Node
	AsAnimate() *Animate
}

func (a *Animate) AsAnimate() *Animate { return a }

func (a *Animate) Init() {
	a.Dur = 1000
	a.Repeat = 1
}

func (a *Animate) Caps() Caps { return CapAnimator }

func (a *Animate) resetRuntime() {
	a.NodeBase.resetRuntime()
	a.version = 0
	a.dependsOn = nil
}

// keyTexts returns the texts of the keyframe values.
func (a *Animate) keyTexts() []string {
	if strings.TrimSpace(a.Values) != "" {
		sep := ";"
		if !strings.Contains(a.Values, ";") && !strings.Contains(a.Values, "(") {
			sep = ","
		}
		parts := strings.Split(strings.Trim(strings.TrimSpace(a.Values), "[]"), sep)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return []string{a.From, a.To}
}

// blend returns the blend parameter of the frame at index i.
func (a *Animate) blend(i int) float32 {
	if len(a.Blend) == 0 || i <= 0 {
		return 1
	}
	return a.Blend[min(i-1, len(a.Blend)-1)]
}

// timing returns the timing of the animator enabled at the given time.
func (a *Animate) timing(enable int32) interp.Timing {
	return interp.Timing{Begin: enable + a.Begin, Dur: a.Dur, Repeat: a.Repeat, Mirror: a.Mirror, Reset: a.Reset}
}

// Set is an animate that jumps to To at Begin and holds it.
type Set struct {
	Animate
}

func (s *Set) Init() {
	s.Repeat = 1
}

func (s *Set) keyTexts() []string {
	return []string{s.To}
}

// keyTexts returns the keyframe texts of any animator node.
func keyTexts(an animatorNode) []string {
	if s, ok := an.(*Set); ok {
		return s.keyTexts()
	}
	return an.AsAnimate().keyTexts()
}
