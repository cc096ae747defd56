// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operand

// Type is the type tag of a [Value] or of a declared attribute.
// The first block of types are runtime tags that a [Value] carries.
// The second block are declared attribute types, which are stored
// as one of the runtime types; see [Type.Runtime].
type Type int32

const (
	// NoType is the zero value, for an unset [Value].
	NoType Type = iota

	// Int is a 32-bit signed integer.
	Int

	// Scalar is a 32-bit float.
	Scalar

	// String is a string.
	String

	// Array is a homogeneous array of values tagged with an element type.
	Array

	// Object is a weak reference to a scene node.
	Object

	// Boolean is stored as an [Int] of 0 or 1.
	Boolean

	// Color is a packed 0xAARRGGBB color stored as an [Int].
	Color

	// MSec is a time. Values and expressions see it as a [Scalar]
	// number of seconds, and nodes store it as integer milliseconds.
	MSec

	// Enum is an index into an enum name table, stored as an [Int].
	Enum

	// Point is a 2D point, stored as an [Array] of two [Scalar] values.
	Point
)

var typeNames = [...]string{"none", "int", "scalar", "string", "array", "object",
	"boolean", "color", "msec", "enum", "point"}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// Runtime returns the runtime tag that values of this declared type carry.
func (t Type) Runtime() Type {
	switch t {
	case Boolean, Color, Enum:
		return Int
	case MSec:
		return Scalar
	case Point:
		return Array
	}
	return t
}

// IsNumeric returns whether the runtime form of the type is a number.
func (t Type) IsNumeric() bool {
	rt := t.Runtime()
	return rt == Int || rt == Scalar
}

// Arity returns the number of numeric components of the type
// used for interpolation, or 0 if the type is not interpolated
// component-wise. Arrays have a variable arity, reported as -1.
func (t Type) Arity() int {
	switch t {
	case Int, Scalar, Boolean, MSec:
		return 1
	case Color:
		return 4
	case Point:
		return 2
	case Array:
		return -1
	}
	return 0
}
