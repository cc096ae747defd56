// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "slices"

// Queue is a queue of events waiting for a wake time in milliseconds.
// Events with equal wake times stay in the order they were added.
// It is not safe for concurrent use.
type Queue struct {
	items []queued
}

type queued struct {
	at int32
	ev *Event
}

// Add adds the event to be delivered at the given time.
func (q *Queue) Add(at int32, ev *Event) {
	i, _ := slices.BinarySearchFunc(q.items, at, func(e queued, t int32) int {
		if e.at <= t {
			return -1
		}
		return 1
	})
	q.items = slices.Insert(q.items, i, queued{at: at, ev: ev})
}

// Len returns the number of waiting events.
func (q *Queue) Len() int {
	return len(q.items)
}

// Next returns the earliest wake time, and false if the queue is empty.
func (q *Queue) Next() (int32, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	return q.items[0].at, true
}

// PopDue removes and returns the events whose wake time is at or
// before the given time, in delivery order.
func (q *Queue) PopDue(now int32) []*Event {
	n := 0
	for n < len(q.items) && q.items[n].at <= now {
		n++
	}
	if n == 0 {
		return nil
	}
	due := make([]*Event, n)
	for i, it := range q.items[:n] {
		due[i] = it.ev
	}
	q.items = slices.Delete(q.items, 0, n)
	return due
}

// Clear removes all waiting events.
func (q *Queue) Clear() {
	q.items = nil
}
