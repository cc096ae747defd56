// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operand

import (
	"fmt"

	"cogentcore.org/animator/math32"
)

// Components returns the numeric components of the value interpreted
// as the given declared type, for component-wise interpolation.
// Colors split into alpha, red, green and blue.
func Components(v Value, t Type) ([]float32, error) {
	switch t {
	case Color:
		c, err := Convert(v, Color)
		if err != nil {
			return nil, err
		}
		u := uint32(c.Int)
		return []float32{float32(u >> 24), float32(u >> 16 & 0xff), float32(u >> 8 & 0xff), float32(u & 0xff)}, nil
	case Array, Point:
		a, err := ConvertArray(v, Scalar)
		if t == Point {
			a, err = Convert(v, Point)
		}
		if err != nil {
			return nil, err
		}
		out := make([]float32, len(a.Elems))
		for i, e := range a.Elems {
			out[i] = e.Scalar
		}
		return out, nil
	}
	if t.Arity() != 1 {
		return nil, fmt.Errorf("%w: %s values do not interpolate", ErrConversion, t)
	}
	s, err := Convert(v, Scalar)
	if err != nil {
		return nil, err
	}
	return []float32{s.Scalar}, nil
}

// FromComponents is the inverse of [Components], building a value of
// the runtime type for the given declared type. The elem type is used
// for arrays.
func FromComponents(t Type, elem Type, c []float32) Value {
	switch t {
	case Color:
		var u uint32
		for _, f := range c[:4] {
			u = u<<8 | uint32(math32.Clamp(math32.Round(f), 0, 255))
		}
		return IntValue(int32(u))
	case Array, Point:
		if t == Point {
			elem = Scalar
		}
		a := ArrayValue(elem.Runtime())
		for _, f := range c {
			a.Elems = append(a.Elems, fromScalar(elem, f))
		}
		return a
	}
	return fromScalar(t, c[0])
}

func fromScalar(t Type, f float32) Value {
	switch t.Runtime() {
	case Int:
		if t == Boolean {
			return BoolValue(f >= 1)
		}
		return IntValue(FloorToInt(f))
	}
	return ScalarValue(f)
}
