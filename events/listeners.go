// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Listeners registers lists of event listener functions
// to receive different event types.
// Listeners are closure methods with all context captured.
type Listeners map[Types][]func(ev *Event)

// Init ensures that map is constructed
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types][]func(*Event))
}

// Add adds a function for given type
func (ls *Listeners) Add(typ Types, fun func(*Event)) {
	ls.Init()
	(*ls)[typ] = append((*ls)[typ], fun)
}

// Call calls the functions for the given event in registration
// order, so the first listener added is the first called, and it
// stops as soon as one marks the event as handled. It returns
// whether the event was handled.
func (ls *Listeners) Call(ev *Event) bool {
	if ev.IsHandled() {
		return true
	}
	for _, fun := range (*ls)[ev.Type] {
		fun(ev)
		if ev.IsHandled() {
			return true
		}
	}
	return false
}
