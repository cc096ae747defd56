// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides the event types, the event record passed to
// handlers, ordered listener lists, and a time-ordered queue of
// delayed events.
package events

import (
	"fmt"

	"cogentcore.org/animator/operand"
)

// Event is the state of one dispatched event.
type Event struct {

	// Type is the kind of event.
	Type Types

	// Code is the character or key code of key events.
	Code int32

	// X and Y are the position of mouse events.
	X, Y float32

	// Target is the acting object, such as the finished animation
	// for [OnEnd] or the target of a posted event. Zero for none.
	Target operand.Ref

	// Name is the event name of [User] events.
	Name string

	// Data is the named payload of posted events.
	Data map[string]operand.Value

	// Time is the time in milliseconds at which the event was dispatched.
	Time int32

	handled bool
}

// NewKey returns a new key event of the given type and code.
func NewKey(typ Types, code int32) *Event {
	return &Event{Type: typ, Code: code}
}

// NewMouse returns a new mouse event of the given type and position.
func NewMouse(typ Types, x, y float32) *Event {
	return &Event{Type: typ, X: x, Y: y}
}

// NewUser returns a new named user event.
func NewUser(name string) *Event {
	return &Event{Type: User, Name: name}
}

func (ev *Event) String() string {
	switch {
	case ev.Type.IsKey():
		return fmt.Sprintf("%v code: %d", ev.Type, ev.Code)
	case ev.Type.IsMouse():
		return fmt.Sprintf("%v pos: (%g, %g)", ev.Type, ev.X, ev.Y)
	case ev.Type == User:
		return fmt.Sprintf("%v %q", ev.Type, ev.Name)
	}
	return ev.Type.String()
}

// IsHandled returns whether the event has been handled.
func (ev *Event) IsHandled() bool {
	return ev.handled
}

// SetHandled marks the event as handled, stopping further dispatch.
func (ev *Event) SetHandled() {
	ev.handled = true
}

// Clone returns a copy of the event that is not marked as handled.
func (ev *Event) Clone() *Event {
	nev := *ev
	nev.handled = false
	return &nev
}
