// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"math/rand/v2"

	"cogentcore.org/animator/interp"
	"cogentcore.org/animator/operand"
)

// unboxer is implemented by data elements, whose value expressions see
// when they use the element in place of a primitive.
type unboxer interface {
	Unbox() operand.Value
}

type IntData struct {
	NodeBase
	Value int32
}

func (d *IntData) Caps() Caps           { return CapData }
func (d *IntData) Unbox() operand.Value { return operand.IntValue(d.Value) }

type FloatData struct {
	NodeBase
	Value float32
}

func (d *FloatData) Caps() Caps           { return CapData }
func (d *FloatData) Unbox() operand.Value { return operand.ScalarValue(d.Value) }

type BoolData struct {
	NodeBase
	Value bool
}

func (d *BoolData) Caps() Caps           { return CapData }
func (d *BoolData) Unbox() operand.Value { return operand.BoolValue(d.Value) }

// StringData is a string, with a length and a slice function.
type StringData struct {
	NodeBase
	Value string
}

func (d *StringData) Caps() Caps           { return CapData }
func (d *StringData) Unbox() operand.Value { return operand.StringValue(d.Value) }

// Slice returns the runes from start up to end, where negative
// indexes count from the end and out of range indexes are clamped.
func (d *StringData) Slice(start, end int) string {
	rs := []rune(d.Value)
	n := len(rs)
	clamp := func(i int) int {
		if i < 0 {
			i += n
		}
		return max(0, min(i, n))
	}
	start, end = clamp(start), clamp(end)
	if end <= start {
		return ""
	}
	return string(rs[start:end])
}

// ArrayData is an array of values.
type ArrayData struct {
	NodeBase
	Values operand.Value
}

func (d *ArrayData) Init() {
	d.Values = operand.ArrayValue(operand.Scalar)
}

func (d *ArrayData) Caps() Caps           { return CapData }
func (d *ArrayData) Unbox() operand.Value { return d.Values.Clone() }

// RandomData produces a new random number each time its random
// member is read, from Min up to Max. Blend shapes the distribution
// like an animation blend, with 1 uniform.
type RandomData struct {
	NodeBase
	Min, Max float32
	Seed     int32
	Blend    float32

	rng *rand.Rand
}

func (d *RandomData) Init() {
	d.Max = 1
	d.Blend = 1
}

func (d *RandomData) Caps() Caps { return CapData }

func (d *RandomData) resetRuntime() {
	d.NodeBase.resetRuntime()
	d.rng = nil
}

// Random returns the next random number.
func (d *RandomData) Random() float32 {
	if d.rng == nil {
		s := uint64(uint32(d.Seed))
		d.rng = rand.New(rand.NewPCG(s, s^0x5851f42d4c957f2d))
	}
	u := interp.Weight(d.rng.Float32(), d.Blend)
	return d.Min + u*(d.Max-d.Min)
}

func (d *RandomData) Unbox() operand.Value { return operand.ScalarValue(d.Random()) }

// PostData is a named value sent with a posted event.
type PostData struct {
	NodeBase

	// Key is the name of the value in the event data.
	Key string

	// Value is the value, a number if it parses as one.
	Value string
}

func (d *PostData) Caps() Caps { return CapData }

func (d *PostData) Unbox() operand.Value {
	if n, ok := operand.ParseNumber(d.Value); ok {
		return n
	}
	return operand.StringValue(d.Value)
}

func (d *PostData) String() string {
	return fmt.Sprintf("%s=%s", d.Key, d.Value)
}
