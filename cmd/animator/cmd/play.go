// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/animator/cmd/animator/config"
	"cogentcore.org/animator/events"
	"golang.org/x/time/rate"
)

// PlayStats summarizes a run of [Play].
type PlayStats struct {

	// Frames is the number of frames drawn.
	Frames int

	// Changed is the number of frames in which something changed.
	Changed int

	// Posts is the number of events the document posted to the host.
	Posts int

	// End is the document time of the last frame, in milliseconds.
	End int32
}

// Play runs the document in the given file, drawing a frame whenever
// the document asks for one until the configured duration has passed
// or nothing more is scheduled. With Realtime on, frames are paced
// against the wall clock and limited to the configured frame rate;
// otherwise document time jumps straight to each wake-up.
func Play(ctx context.Context, c *config.Config, file string) (*PlayStats, error) {
	if c.Play.FPS <= 0 {
		return nil, fmt.Errorf("invalid frame rate %g", c.Play.FPS)
	}
	m, err := open(file)
	if err != nil {
		return nil, err
	}
	cv, bg, err := newCanvas(c)
	if err != nil {
		return nil, err
	}
	st := &PlayStats{}
	m.HostSink = func(ev *events.Event) {
		st.Posts++
		slog.Info("host event", "type", ev.Name, "time", ev.Time)
	}

	end := int32(c.Play.Duration * 1000)
	step := max(int32(1000/c.Play.FPS), 1)
	limiter := rate.NewLimiter(rate.Limit(c.Play.FPS), 1)
	start := time.Now()
	now := int32(0)
	for {
		if frame(m, cv, bg, now) {
			st.Changed++
		}
		st.Frames++
		st.End = now

		wake, ok := m.NextWake()
		if !ok || now >= end {
			return st, nil
		}
		next := min(max(wake, now+step), end)
		if !c.Play.Realtime {
			now = next
			continue
		}
		if err := sleepUntil(ctx, start.Add(time.Duration(next)*time.Millisecond)); err != nil {
			return st, err
		}
		if err := limiter.Wait(ctx); err != nil {
			return st, err
		}
		now = min(int32(time.Since(start).Milliseconds()), end)
	}
}

// sleepUntil waits until the given time or until the context is done.
func sleepUntil(ctx context.Context, t time.Time) error {
	d := time.Until(t)
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
