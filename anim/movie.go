// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"path/filepath"

	"cogentcore.org/animator/events"
)

// Movie is a nested document loaded from Src and drawn in place,
// on the same clock as its parent. Posts to the "host" sink of the
// nested document are dispatched to the parent document.
type Movie struct {
	NodeBase
	Src string

	nested *Maker
}

func (mv *Movie) Caps() Caps { return CapDrawable }

func (mv *Movie) resetRuntime() {
	mv.NodeBase.resetRuntime()
	mv.nested = nil
}

func (mv *Movie) memberChanged(m *Maker, name string) {
	if name == "src" {
		mv.nested = nil
	}
}

func (mv *Movie) EndElement(m *Maker) error {
	return mv.load(m)
}

// load loads the nested document.
func (mv *Movie) load(m *Maker) error {
	if mv.Src == "" {
		return nil
	}
	src := mv.Src
	if !filepath.IsAbs(src) && m.Dir != "" {
		src = filepath.Join(m.Dir, src)
	}
	nm := NewMaker(m.Registry)
	nm.TrackBounds = m.TrackBounds
	nm.HostSink = func(ev *events.Event) {
		ev.Target = mv.Ref
		m.queue.Add(m.time, ev)
	}
	if err := nm.LoadFile(src); err != nil && len(nm.Diagnostics()) == 0 {
		m.fail(mv, ResourceNotFound, mv.Src, err)
		return nil
	}
	mv.nested = nm
	return nil
}

// Maker returns the maker of the nested document, or nil if it did not load.
func (mv *Movie) Maker() *Maker {
	return mv.nested
}

func (mv *Movie) Draw(dc *drawContext) bool {
	if mv.nested == nil {
		if mv.Src != "" && !mv.broken && mv.changed {
			mv.load(dc.m)
		}
		if mv.nested == nil {
			mv.changed = false
			return false
		}
	}
	changed := mv.nested.Draw(dc.canvas, dc.now)
	if inv := mv.nested.Invalidated(); !inv.IsEmpty() {
		dc.m.list.invalidate(inv)
	}
	if mv.changed {
		mv.changed = false
		changed = true
	}
	return changed
}
