// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"strings"
	"testing"

	"cogentcore.org/animator/canvas"
	"cogentcore.org/animator/events"
	"cogentcore.org/animator/math32"
	"cogentcore.org/animator/operand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyEvents(t *testing.T) {
	m := load(t, `<screenplay>
<rect id="r" right="10" bottom="10"/>
<event kind="keyChar" key="a">
  <apply scope="r" mode="immediate"><set field="left" to="42"/></apply>
</event>
<event kind="keyChar" keys="0-9">
  <apply scope="r" mode="immediate"><set field="left" to="7"/></apply>
</event>
<event kind="keyPress" key="left">
  <apply scope="r" mode="immediate"><set field="left" to="-1"/></apply>
</event>
</screenplay>`)
	assert.False(t, m.Dispatch(events.NewKey(events.KeyChar, 'b')))
	assert.Equal(t, float32(0), left(t, m, "r"))

	assert.True(t, m.Dispatch(events.NewKey(events.KeyChar, 'a')))
	assert.Equal(t, float32(42), left(t, m, "r"))

	assert.True(t, m.Dispatch(events.NewKey(events.KeyChar, '5')))
	assert.Equal(t, float32(7), left(t, m, "r"))

	assert.False(t, m.Dispatch(events.NewKey(events.KeyChar, KeyCodes["left"])))
	assert.True(t, m.Dispatch(events.NewKey(events.KeyPress, KeyCodes["left"])))
	assert.Equal(t, float32(-1), left(t, m, "r"))
}

func TestDisabledHandler(t *testing.T) {
	m := load(t, `<screenplay>
<rect id="r" right="10" bottom="10"/>
<event id="e" kind="keyChar" disable="true">
  <apply scope="r" mode="immediate"><set field="left" to="1"/></apply>
</event>
<event kind="keyChar">
  <apply scope="r" mode="immediate"><set field="left" to="2"/></apply>
</event>
</screenplay>`)
	assert.True(t, m.Dispatch(events.NewKey(events.KeyChar, 'x')))
	assert.Equal(t, float32(2), left(t, m, "r"))

	require.NoError(t, m.SetAttribute("e", "disable", operand.BoolValue(false)))
	assert.True(t, m.Dispatch(events.NewKey(events.KeyChar, 'x')))
	assert.Equal(t, float32(1), left(t, m, "r"))
}

func TestPostUserEvent(t *testing.T) {
	m := load(t, `<screenplay>
<rect id="r" right="10" bottom="10"/>
<event kind="keyChar" key="p"><post type="go" delay="0.5"/></event>
<event kind="user" type="go">
  <apply scope="r" mode="immediate"><set field="left" to="7"/></apply>
</event>
</screenplay>`)
	m.Advance(0)
	assert.True(t, m.Dispatch(events.NewKey(events.KeyChar, 'p')))
	wake, ok := m.NextWake()
	require.True(t, ok)
	assert.Equal(t, int32(500), wake)

	m.Advance(400)
	assert.Equal(t, float32(0), left(t, m, "r"))
	m.Advance(500)
	assert.Equal(t, float32(7), left(t, m, "r"))
	_, ok = m.NextWake()
	assert.False(t, ok)

	assert.True(t, m.Dispatch(events.NewUser("go")))
	assert.False(t, m.Dispatch(events.NewUser("stop")))
}

func TestListeners(t *testing.T) {
	m := NewMaker(nil)
	var got []string
	m.Listeners.Add(events.KeyChar, func(ev *events.Event) {
		got = append(got, "first")
	})
	m.Listeners.Add(events.KeyChar, func(ev *events.Event) {
		got = append(got, "second")
		ev.SetHandled()
	})
	require.NoError(t, m.Load(strings.NewReader(`<screenplay>
<rect id="r" right="10" bottom="10"/>
<event kind="keyChar" key="a">
  <apply scope="r" mode="immediate"><set field="left" to="1"/></apply>
</event>
</screenplay>`)))
	assert.True(t, m.Dispatch(events.NewKey(events.KeyChar, 'a')))
	assert.Empty(t, got)

	assert.True(t, m.Dispatch(events.NewKey(events.KeyChar, 'b')))
	assert.Equal(t, []string{"first", "second"}, got)
	assert.False(t, m.Dispatch(events.NewKey(events.KeyPress, 'b')))
}

func TestPostHost(t *testing.T) {
	m := load(t, `<screenplay>
<event kind="keyChar" key="h">
  <post sink="host" type="ping"><data name="n" value="3"/><data name="s" value="hi"/></post>
</event>
</screenplay>`)
	var got []*events.Event
	m.HostSink = func(ev *events.Event) { got = append(got, ev) }
	assert.True(t, m.Dispatch(events.NewKey(events.KeyChar, 'h')))
	require.Len(t, got, 1)
	assert.Equal(t, events.User, got[0].Type)
	assert.Equal(t, "ping", got[0].Name)
	assert.Equal(t, operand.IntValue(3), got[0].Data["n"])
	assert.Equal(t, operand.StringValue("hi"), got[0].Data["s"])
}

func TestLoadPost(t *testing.T) {
	m := load(t, `<screenplay>
<rect id="r" right="10" bottom="10"/>
<post type="ready"/>
<event kind="onLoad">
  <apply scope="r" mode="immediate"><set field="top" to="3"/></apply>
</event>
<event kind="user" type="ready">
  <apply scope="r" mode="immediate"><set field="left" to="4"/></apply>
</event>
</screenplay>`)
	m.Advance(0)
	r := m.Lookup("r").(*Rect)
	assert.Equal(t, float32(4), r.Left)
	assert.Equal(t, float32(3), r.Top)
}

func TestMouseTarget(t *testing.T) {
	m := load(t, `<screenplay>
<rect id="a" right="10" bottom="10"/>
<group id="g"><rect id="b" left="20" right="30" bottom="10"/></group>
<event kind="mouseDown" target="g">
  <apply scope="a" mode="immediate"><set field="top" to="5"/></apply>
</event>
</screenplay>`)
	rec := canvas.NewRecorder(100, 100)
	m.Draw(rec, 0)

	assert.False(t, m.Dispatch(events.NewMouse(events.MouseDown, 5, 5)))
	assert.Equal(t, float32(0), m.Lookup("a").(*Rect).Top)

	ev := events.NewMouse(events.MouseDown, 25, 5)
	assert.True(t, m.Dispatch(ev))
	assert.True(t, ev.IsHandled())
	assert.Equal(t, m.Lookup("b").AsNode().Ref, ev.Target)
	assert.Equal(t, float32(5), m.Lookup("a").(*Rect).Top)

	h := m.handlers[0]
	assert.Equal(t, float32(25), h.X)
}

func TestRemoveAdd(t *testing.T) {
	m := load(t, `<screenplay>
<rect id="a" right="10" bottom="10"/>
<rect id="b" left="20" right="30" bottom="10"/>
<event kind="keyChar" key="r"><remove where="a"/></event>
<event kind="keyChar" key="d"><add use="a"/></event>
<event kind="keyChar" key="c"><add use="b" offset="0"/></event>
<event kind="keyChar" key="x"><remove where="b" delete="true"/></event>
</screenplay>`)
	names := func() []float32 {
		rec := canvas.NewRecorder(100, 100)
		m.Draw(rec, 0)
		var lefts []float32
		for _, d := range rec.Draws() {
			lefts = append(lefts, d.Bounds.Min.X)
		}
		return lefts
	}
	assert.Equal(t, []float32{0, 20}, names())

	assert.True(t, m.Dispatch(events.NewKey(events.KeyChar, 'r')))
	assert.Equal(t, []float32{20}, names())
	assert.NotNil(t, m.Lookup("a"))

	assert.True(t, m.Dispatch(events.NewKey(events.KeyChar, 'd')))
	assert.Equal(t, []float32{20, 0}, names())

	// b is already listed, so a copy is inserted at the start
	assert.True(t, m.Dispatch(events.NewKey(events.KeyChar, 'c')))
	assert.Equal(t, []float32{20, 20, 0}, names())

	assert.True(t, m.Dispatch(events.NewKey(events.KeyChar, 'x')))
	assert.Nil(t, m.Lookup("b"))
	assert.Len(t, m.list.Entries, 2)
}

func TestMoveReplace(t *testing.T) {
	m := load(t, `<screenplay>
<rect id="a" right="10" bottom="10"/>
<rect id="b" left="20" right="30" bottom="10"/>
<group id="g"><oval id="o" left="40" right="50" bottom="10"/></group>
<event kind="keyChar" key="m"><move use="a" where="o" offset="1"/></event>
<event kind="keyChar" key="p"><replace where="b"><oval id="n" left="60" right="70" bottom="10"/></replace></event>
</screenplay>`)
	assert.True(t, m.Dispatch(events.NewKey(events.KeyChar, 'm')))
	g := m.Lookup("g").(*Group)
	require.Len(t, g.drawables(), 2)
	assert.Equal(t, "a", g.drawables()[1].AsNode().ID())
	assert.Len(t, m.list.Entries, 2)

	assert.True(t, m.Dispatch(events.NewKey(events.KeyChar, 'p')))
	assert.Equal(t, []Node{m.Lookup("n"), m.Lookup("g")}, m.list.Entries)
	assert.Len(t, g.drawables(), 2)
	assert.Contains(t, m.helpers, m.Lookup("b"))
}

func TestAddOutOfRange(t *testing.T) {
	m := load(t, `<screenplay>
<rect id="a" right="10" bottom="10"/>
<event kind="keyChar"><add offset="5"><oval right="4" bottom="4"/></add></event>
</screenplay>`)
	assert.True(t, m.Dispatch(events.NewKey(events.KeyChar, 'z')))
	assert.True(t, m.Diagnostics().Has(IndexOutOfRange))
	assert.Len(t, m.list.Entries, 1)
}

func TestInvalidatedOnMove(t *testing.T) {
	m := load(t, `<screenplay>
<rect id="a" right="10" bottom="10"/>
<event kind="keyChar"><remove where="a"/></event>
</screenplay>`)
	rec := canvas.NewRecorder(100, 100)
	m.Draw(rec, 0)
	m.Draw(rec, 10)
	assert.True(t, m.Invalidated().IsEmpty())

	m.Dispatch(events.NewKey(events.KeyChar, 'q'))
	assert.True(t, m.Draw(rec, 20))
	assert.True(t, m.Invalidated().ContainsPoint(math32.Vec2(5, 5)))
}
