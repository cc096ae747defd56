// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"math"

	"cogentcore.org/animator/math32"
)

// Phases are the phases of a [Timing] at a given time.
type Phases int32

const (
	// Before is before the begin time.
	Before Phases = iota

	// Active is while the animation is sampling.
	Active

	// Done is after the last repetition has finished.
	Done
)

func (p Phases) String() string {
	switch p {
	case Before:
		return "Before"
	case Active:
		return "Active"
	}
	return "Done"
}

// Timing maps absolute times in milliseconds onto the local time of
// a track of length Dur, applying repeat and mirror folding.
type Timing struct {

	// Begin is the absolute start time.
	Begin int32

	// Dur is the duration of one pass through the track.
	Dur int32

	// Repeat is the number of iterations, which may be fractional.
	// Zero means one and a negative or infinite value repeats forever.
	Repeat float32

	// Mirror makes each iteration a round trip, playing the track
	// forward and then backward, so that it lasts twice Dur.
	Mirror bool

	// Reset returns to the start of the track once done.
	Reset bool
}

// Period returns the length of one iteration.
func (tm *Timing) Period() int32 {
	if tm.Mirror {
		return 2 * tm.Dur
	}
	return tm.Dur
}

// Forever returns whether the timing repeats without end.
func (tm *Timing) Forever() bool {
	return tm.Repeat < 0 || math32.IsInf(tm.Repeat, 1)
}

func (tm *Timing) repeat() float32 {
	if tm.Repeat == 0 {
		return 1
	}
	return tm.Repeat
}

// End returns the absolute end time, or [math.MaxInt32] if it repeats forever.
func (tm *Timing) End() int32 {
	if tm.Forever() && tm.Dur > 0 {
		return math.MaxInt32
	}
	end := float64(tm.Begin) + float64(tm.Period())*float64(tm.repeat())
	return int32(min(end, math.MaxInt32))
}

// Local returns the local track time for the given absolute time
// along with the phase. Before the begin time the local time is 0.
// Once done the local time holds where the last iteration stopped:
// the end of the track, or its start for a mirrored whole number of
// iterations or a Reset timing.
func (tm *Timing) Local(now int32) (int32, Phases) {
	if now < tm.Begin {
		return 0, Before
	}
	if tm.Dur <= 0 {
		if tm.Reset {
			return 0, Done
		}
		return max(tm.Dur, 0), Done
	}
	elapsed := float32(int64(now) - int64(tm.Begin))
	if !tm.Forever() {
		total := float32(tm.Period()) * tm.repeat()
		if elapsed >= total {
			if tm.Reset {
				return 0, Done
			}
			return tm.fold(total, true), Done
		}
	}
	return tm.fold(elapsed, false), Active
}

// fold folds an elapsed time into the track. At the end, a whole
// number of periods lands on the far end of the last period.
func (tm *Timing) fold(elapsed float32, end bool) int32 {
	period := float32(tm.Period())
	rem, _ := math32.Fold(elapsed, period)
	if end && rem == 0 && elapsed > 0 {
		rem = period
	}
	if tm.Mirror && rem > float32(tm.Dur) {
		rem = period - rem
	}
	return int32(math32.Round(rem))
}

// StepTime returns the absolute time of the given discrete step out
// of steps, evenly dividing one pass from Begin to Begin+Dur.
func (tm *Timing) StepTime(step, steps int) int32 {
	if steps <= 0 {
		return tm.Begin
	}
	return tm.Begin + int32(int64(tm.Dur)*int64(step)/int64(steps))
}
