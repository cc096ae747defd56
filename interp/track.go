// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrArity is returned when a frame has the wrong number of values.
	ErrArity = errors.New("interp: wrong number of values for track arity")

	// ErrTimeOrder is returned when frames are not added in time order.
	ErrTimeOrder = errors.New("interp: frame times must be non-decreasing")
)

// Frame is one keyframe of a [Track].
type Frame struct {

	// Time is the time of the frame in milliseconds.
	Time int32

	// Blend is the blend parameter of the segment ending at this frame;
	// see [Weight].
	Blend float32

	// Values are the component values, of length [Track.Arity].
	Values []float32
}

// Track is an ordered sequence of keyframes with a fixed number
// of components per frame.
type Track struct {
	Arity  int
	Frames []Frame
}

// NewTrack returns a new empty track with the given arity.
func NewTrack(arity int) *Track {
	return &Track{Arity: arity}
}

// Add adds a frame at the end of the track. The values are copied.
func (t *Track) Add(time int32, blend float32, values []float32) error {
	if len(values) != t.Arity {
		return fmt.Errorf("%w: got %d, want %d", ErrArity, len(values), t.Arity)
	}
	if n := len(t.Frames); n > 0 && time < t.Frames[n-1].Time {
		return fmt.Errorf("%w: %d after %d", ErrTimeOrder, time, t.Frames[n-1].Time)
	}
	t.Frames = append(t.Frames, Frame{Time: time, Blend: blend, Values: append([]float32(nil), values...)})
	return nil
}

// Len returns the number of frames.
func (t *Track) Len() int {
	return len(t.Frames)
}

// Reset removes all frames.
func (t *Track) Reset() {
	t.Frames = t.Frames[:0]
}

// Duration returns the time of the last frame, or 0 for an empty track.
func (t *Track) Duration() int32 {
	if len(t.Frames) == 0 {
		return 0
	}
	return t.Frames[len(t.Frames)-1].Time
}

// Find returns the index of the last frame whose time is at or
// before the given time, and whether that frame is exactly at it.
// It returns -1 if the time is before the first frame.
func (t *Track) Find(time int32) (int, bool) {
	i := sort.Search(len(t.Frames), func(i int) bool {
		return t.Frames[i].Time > time
	}) - 1
	return i, i >= 0 && t.Frames[i].Time == time
}

// Sample writes the values of the track at the given time into
// values, which must have length [Track.Arity], and returns it.
// A nil values allocates a new slice. Before the first frame the
// first frame's values hold, and at or after the last frame the
// last frame's values hold. Between frames each component is
// blended with the weight of the destination frame's blend.
func (t *Track) Sample(time int32, values []float32) []float32 {
	if values == nil {
		values = make([]float32, t.Arity)
	}
	n := len(t.Frames)
	if n == 0 {
		return values
	}
	i, exact := t.Find(time)
	switch {
	case i < 0:
		copy(values, t.Frames[0].Values)
		return values
	case exact || i == n-1:
		copy(values, t.Frames[i].Values)
		return values
	}
	a, b := &t.Frames[i], &t.Frames[i+1]
	span := b.Time - a.Time
	if span <= 0 {
		copy(values, b.Values)
		return values
	}
	w := Weight(float32(time-a.Time)/float32(span), b.Blend)
	for k := range values {
		values[k] = a.Values[k] + w*(b.Values[k]-a.Values[k])
	}
	return values
}

// Clone returns a copy of the track that shares no storage.
func (t *Track) Clone() *Track {
	c := &Track{Arity: t.Arity, Frames: make([]Frame, len(t.Frames))}
	for i, f := range t.Frames {
		f.Values = append([]float32(nil), f.Values...)
		c.Frames[i] = f
	}
	return c
}
