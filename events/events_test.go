// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypesString(t *testing.T) {
	var typ Types
	require.NoError(t, typ.SetString("mouseDown"))
	assert.Equal(t, MouseDown, typ)
	require.NoError(t, typ.SetString("keyPressUp"))
	assert.Equal(t, KeyUp, typ)
	require.NoError(t, typ.SetString("ONLOAD"))
	assert.Equal(t, OnLoad, typ)
	assert.Error(t, typ.SetString("unknown"))
	assert.Equal(t, "keyChar", KeyChar.String())
	assert.Len(t, TypesValues(), 10)
	assert.True(t, KeyUp.IsKey())
	assert.True(t, MouseMove.IsMouse())
	assert.False(t, OnEnd.IsMouse())
}

func TestListenersOrder(t *testing.T) {
	var ls Listeners
	var got []int
	ls.Add(KeyChar, func(ev *Event) { got = append(got, 1) })
	ls.Add(KeyChar, func(ev *Event) {
		got = append(got, 2)
		ev.SetHandled()
	})
	ls.Add(KeyChar, func(ev *Event) { got = append(got, 3) })

	assert.True(t, ls.Call(NewKey(KeyChar, 'a')))
	assert.Equal(t, []int{1, 2}, got)
	assert.False(t, ls.Call(NewMouse(MouseDown, 1, 2)))
}

func TestQueue(t *testing.T) {
	var q Queue
	q.Add(30, NewUser("c"))
	q.Add(10, NewUser("a"))
	q.Add(30, NewUser("d"))
	q.Add(20, NewUser("b"))
	next, ok := q.Next()
	require.True(t, ok)
	assert.Equal(t, int32(10), next)

	assert.Nil(t, q.PopDue(5))
	due := q.PopDue(30)
	require.Len(t, due, 4)
	names := []string{}
	for _, ev := range due {
		names = append(names, ev.Name)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, names)
	_, ok = q.Next()
	assert.False(t, ok)
}

func TestEventClone(t *testing.T) {
	ev := NewKey(KeyPress, 32)
	ev.SetHandled()
	c := ev.Clone()
	assert.False(t, c.IsHandled())
	assert.Equal(t, int32(32), c.Code)
	assert.Equal(t, "keyPress code: 32", ev.String())
}
