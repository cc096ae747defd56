// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package operand provides the tagged value type shared by attributes,
// expression results and interpolated samples, along with the
// coercions between its types.
package operand

import (
	"math"
	"strconv"
	"strings"
)

// Ref is a weak handle to a scene node. The zero Ref is null.
type Ref uint32

// Sentinel integer values used to carry non-finite scalars through
// integer typed values.
const (
	NaN32    int32 = math.MinInt32
	MaxInt32 int32 = math.MaxInt32
	MinInt32 int32 = -math.MaxInt32
)

// Value is a tagged union over the runtime types: int, scalar,
// string, homogeneous array and object reference. Only the field
// matching [Value.Type] is meaningful.
type Value struct {

	// Type is the runtime type tag.
	Type Type

	Int    int32
	Scalar float32
	Str    string

	// Elem is the element type of an [Array] value.
	Elem Type

	// Elems are the elements of an [Array] value.
	Elems []Value

	// Ref is the node handle of an [Object] value.
	Ref Ref
}

// IntValue returns an [Int] value.
func IntValue(i int32) Value { return Value{Type: Int, Int: i} }

// ScalarValue returns a [Scalar] value.
func ScalarValue(f float32) Value { return Value{Type: Scalar, Scalar: f} }

// StringValue returns a [String] value.
func StringValue(s string) Value { return Value{Type: String, Str: s} }

// ObjectValue returns an [Object] value referring to the given node.
func ObjectValue(r Ref) Value { return Value{Type: Object, Ref: r} }

// BoolValue returns an [Int] value of 1 or 0.
func BoolValue(b bool) Value {
	if b {
		return IntValue(1)
	}
	return IntValue(0)
}

// ArrayValue returns an [Array] value with the given element type.
func ArrayValue(elem Type, elems ...Value) Value {
	return Value{Type: Array, Elem: elem, Elems: elems}
}

// ScalarArray returns an [Array] of [Scalar] values.
func ScalarArray(vs ...float32) Value {
	a := ArrayValue(Scalar)
	for _, v := range vs {
		a.Elems = append(a.Elems, ScalarValue(v))
	}
	return a
}

// IsValid returns whether the value has a type.
func (v Value) IsValid() bool { return v.Type != NoType }

// Len returns the number of elements of an array, or 1 otherwise.
func (v Value) Len() int {
	if v.Type == Array {
		return len(v.Elems)
	}
	return 1
}

// Clone returns a copy of the value that shares no array storage.
func (v Value) Clone() Value {
	if v.Type == Array {
		v.Elems = append([]Value(nil), v.Elems...)
		for i := range v.Elems {
			v.Elems[i] = v.Elems[i].Clone()
		}
	}
	return v
}

func (v Value) String() string {
	switch v.Type {
	case Int:
		return strconv.Itoa(int(v.Int))
	case Scalar:
		return FormatScalar(v.Scalar)
	case String:
		return v.Str
	case Array:
		var b strings.Builder
		b.WriteByte('[')
		for i, e := range v.Elems {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(e.String())
		}
		b.WriteByte(']')
		return b.String()
	case Object:
		return "#" + strconv.FormatUint(uint64(v.Ref), 10)
	}
	return ""
}

// FormatScalar formats a scalar in its shortest form, with
// "NaN", "Infinity" and "-Infinity" for non-finite values.
func FormatScalar(f float32) string {
	switch {
	case f != f:
		return "NaN"
	case math.IsInf(float64(f), 1):
		return "Infinity"
	case math.IsInf(float64(f), -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
