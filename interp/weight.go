// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interp provides keyframe tracks and the timing rules
// used to sample animated values over time.
package interp

import "cogentcore.org/animator/math32"

// MaxBlend is the largest blend parameter that keeps [Weight] monotonic.
const MaxBlend = 3

// Weight returns the interpolation weight for the fraction t in [0, 1]
// of a segment with the given blend parameter. A blend of 1 is linear,
// a blend below 1 eases in and out at both ends (0 is a smoothstep),
// and a blend above 1 eases in the middle. The blend is clamped to
// [0, MaxBlend].
func Weight(t, blend float32) float32 {
	t = math32.Clamp(t, 0, 1)
	blend = math32.Clamp(blend, 0, MaxBlend)
	if blend == 1 {
		return t
	}
	ease := t * t * (3 - 2*t)
	return t + (1-blend)*(ease-t)
}
