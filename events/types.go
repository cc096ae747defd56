// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"strings"
)

// Types determines the kind of event, which is the first thing
// that handlers are matched on.
type Types int32

const (
	// UnknownType is the zero value.
	UnknownType Types = iota

	// KeyChar is sent for a typed character; its code is the character.
	KeyChar

	// KeyPress is sent when a key is pressed; its code is the key code.
	KeyPress

	// KeyUp is sent when a key is released.
	KeyUp

	// MouseDown is sent when a mouse button is pressed.
	MouseDown

	// MouseDrag is sent when the mouse moves with a button down.
	MouseDrag

	// MouseMove is sent when the mouse moves with no button down.
	MouseMove

	// MouseUp is sent when a mouse button is released.
	MouseUp

	// OnEnd is sent when an animation finishes, with the animated
	// object as the target.
	OnEnd

	// OnLoad is sent once after a document finishes loading.
	OnLoad

	// User is a named event posted by a document or the host.
	User

	typesN
)

var typesNames = [...]string{"unknown", "keyChar", "keyPress", "keyUp", "mouseDown",
	"mouseDrag", "mouseMove", "mouseUp", "onEnd", "onLoad", "user"}

// TypesValues returns all defined event types, excluding [UnknownType].
func TypesValues() []Types {
	vs := make([]Types, 0, typesN-1)
	for t := KeyChar; t < typesN; t++ {
		vs = append(vs, t)
	}
	return vs
}

// String returns the document name of the event type.
func (t Types) String() string {
	if t < 0 || t >= typesN {
		return fmt.Sprintf("Types(%d)", int32(t))
	}
	return typesNames[t]
}

// SetString sets the event type from its document name, case-insensitively.
// "keyPressUp" is accepted as an alias of "keyUp".
func (t *Types) SetString(s string) error {
	if strings.EqualFold(s, "keyPressUp") {
		*t = KeyUp
		return nil
	}
	for i, nm := range typesNames {
		if i > 0 && strings.EqualFold(s, nm) {
			*t = Types(i)
			return nil
		}
	}
	return fmt.Errorf("events.Types.SetString: %q is not a valid event type", s)
}

// IsKey returns whether the type is a keyboard event.
func (t Types) IsKey() bool {
	return t == KeyChar || t == KeyPress || t == KeyUp
}

// IsMouse returns whether the type is a mouse event.
func (t Types) IsMouse() bool {
	return t >= MouseDown && t <= MouseUp
}
