// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"cogentcore.org/animator/events"
	"cogentcore.org/animator/operand"
)

// Key codes of the named keys, for [EventHandler.Key].
// Character keys use their character as the code.
var KeyCodes = map[string]int32{
	"backspace": 8,
	"tab":       '\t',
	"enter":     '\r',
	"escape":    27,
	"space":     ' ',
	"delete":    127,
	"left":      0xF702,
	"up":        0xF700,
	"right":     0xF703,
	"down":      0xF701,
	"home":      0xF729,
	"end":       0xF72B,
	"pageUp":    0xF72C,
	"pageDown":  0xF72D,
}

// eventKindNames are the names of the event types, indexed by type.
var eventKindNames = func() []string {
	names := []string{events.UnknownType.String()}
	for _, t := range events.TypesValues() {
		names = append(names, t.String())
	}
	return names
}()

// EventHandler runs its statements when a matching event is dispatched.
// Handlers are tried in document order and the first match runs.
type EventHandler struct {
	NodeBase

	// Kind is the type of event handled.
	Kind events.Types

	// Code is the key code of key events.
	Code int32

	// Key is a single character or a named key in [KeyCodes].
	Key string

	// Keys is a range of keys, such as "a-z".
	Keys string

	// Target restricts mouse events to a drawable and its children,
	// and end events to an apply.
	Target operand.Ref

	// Disable stops the handler from matching.
	Disable bool

	// Type is the name of the user events handled; empty for any.
	Type string

	// X and Y are the position of the last mouse event handled.
	X, Y float32

	// lo and hi are the range of key codes matched, with hi < lo for any.
	lo, hi int32
}

func (h *EventHandler) Init() {
	h.hi = -1
}

func (h *EventHandler) Caps() Caps { return CapEvent }

func (h *EventHandler) Contain(child Node) bool {
	_, ok := child.(Statement)
	return ok
}

func (h *EventHandler) EndElement(m *Maker) error {
	h.lo, h.hi = 0, -1
	switch {
	case h.Code != 0:
		h.lo, h.hi = h.Code, h.Code
	case h.Key != "":
		c, err := keyCode(h.Key)
		if err != nil {
			return m.fail(h, ScriptError, h.Key, err)
		}
		h.lo, h.hi = c, c
	case h.Keys != "":
		from, to, ok := strings.Cut(h.Keys, "-")
		if !ok {
			to = from
		}
		lo, err := keyCode(from)
		if err != nil {
			return m.fail(h, ScriptError, h.Keys, err)
		}
		hi, err := keyCode(to)
		if err != nil {
			return m.fail(h, ScriptError, h.Keys, err)
		}
		h.lo, h.hi = min(lo, hi), max(lo, hi)
	}
	return nil
}

func keyCode(key string) (int32, error) {
	if c, ok := KeyCodes[key]; ok {
		return c, nil
	}
	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		return r, nil
	}
	return 0, fmt.Errorf("anim: unknown key %q", key)
}

// matches returns whether the handler handles the event.
func (h *EventHandler) matches(m *Maker, ev *events.Event) bool {
	if h.Disable || h.broken || h.Kind != ev.Type {
		return false
	}
	switch {
	case ev.Type.IsKey():
		return h.hi < h.lo || (ev.Code >= h.lo && ev.Code <= h.hi)
	case ev.Type.IsMouse():
		return h.Target == 0 || m.within(m.node(ev.Target), h.Target)
	case ev.Type == events.OnEnd:
		return h.Target == 0 || ev.Target == h.Target
	case ev.Type == events.User:
		return h.Type == "" || h.Type == ev.Name
	}
	return true
}

// within returns whether the node is the given node or inside it.
func (m *Maker) within(n Node, ref operand.Ref) bool {
	for ; n != nil; n = parentNode(n) {
		if n.AsNode().Ref == ref {
			return true
		}
	}
	return false
}

// fire runs the statements of the handler.
func (h *EventHandler) fire(m *Maker, ev *events.Event) {
	if ev.Type.IsMouse() && (h.X != ev.X || h.Y != ev.Y) {
		h.X, h.Y = ev.X, ev.Y
		m.markDirty(&h.NodeBase)
	}
	for _, k := range nodeChildren(h) {
		if st, ok := k.(Statement); ok && !k.AsNode().broken {
			st.Activate(m, ev)
		}
	}
}

// Dispatch delivers the event to the first handler matching it, or
// else to [Maker.Listeners], returning whether it was handled. Mouse
// events without a target are targeted at the topmost drawn node
// under the mouse.
func (m *Maker) Dispatch(ev *events.Event) bool {
	if !m.started {
		m.Advance(m.time)
	}
	if ev.Time == 0 {
		ev.Time = m.time
	}
	if ev.Type.IsMouse() && ev.Target == 0 {
		if n := m.hit(ev.X, ev.Y); n != nil {
			ev.Target = n.AsNode().Ref
		}
	}
	for _, h := range m.handlers {
		if m.node(h.Ref) == nil || !h.matches(m, ev) {
			continue
		}
		slog.Debug("anim.Maker.Dispatch", "event", ev.String(), "handler", h.Name, "line", h.Line)
		ev.SetHandled()
		h.fire(m, ev)
		return true
	}
	return m.Listeners.Call(ev)
}
