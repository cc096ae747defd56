// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package operand

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/animator/colors"
	"cogentcore.org/animator/math32"
)

// ErrConversion is returned, wrapped, for any failed type conversion.
var ErrConversion = errors.New("type conversion failed")

func convErr(v Value, to Type) error {
	return fmt.Errorf("%w: %s %q to %s", ErrConversion, v.Type, v.String(), to)
}

// ParseNumber parses a decimal or 0x-prefixed hexadecimal number.
// Integers that fit in 32 bits are returned as [Int] values and
// everything else as [Scalar] values.
func ParseNumber(s string) (Value, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, false
	}
	neg := false
	hs := s
	if hs[0] == '-' || hs[0] == '+' {
		neg = hs[0] == '-'
		hs = hs[1:]
	}
	if len(hs) > 2 && hs[0] == '0' && (hs[1] == 'x' || hs[1] == 'X') {
		n, err := strconv.ParseUint(hs[2:], 16, 32)
		if err != nil {
			return Value{}, false
		}
		i := int32(uint32(n))
		if neg {
			i = -i
		}
		return IntValue(i), true
	}
	if !strings.ContainsAny(s, ".eEnN") {
		if n, err := strconv.ParseInt(s, 10, 32); err == nil {
			return IntValue(int32(n)), true
		}
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Value{}, false
	}
	return ScalarValue(float32(f)), true
}

// ParseList parses a list of numbers separated by commas,
// semicolons or whitespace, optionally enclosed in brackets.
func ParseList(s string) (Value, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	a := ArrayValue(Scalar)
	for _, f := range fields {
		n, ok := ParseNumber(f)
		if !ok {
			return Value{}, false
		}
		sv, _ := Convert(n, Scalar)
		a.Elems = append(a.Elems, sv)
	}
	return a, true
}

// FloorToInt converts a scalar to an integer by flooring, mapping
// NaN and out of range values to the integer sentinels.
func FloorToInt(f float32) int32 {
	switch {
	case f != f:
		return NaN32
	case f >= math.MaxInt32:
		return MaxInt32
	case f <= -math.MaxInt32:
		return MinInt32
	}
	return int32(math32.Floor(f))
}

// IntToScalar converts an integer to a scalar, mapping the integer
// sentinels back to NaN and the infinities.
func IntToScalar(i int32) float32 {
	switch i {
	case NaN32:
		return math32.NaN()
	case MaxInt32:
		return math32.Inf(1)
	case MinInt32:
		return math32.Inf(-1)
	}
	return float32(i)
}

// Convert converts the value to the given type, which may be a runtime
// or a declared type. Numbers convert to and from strings, scalars
// floor to integers, and a single value converts to a one element array.
// Object references never convert; resolving them is up to the caller.
func Convert(v Value, to Type) (Value, error) {
	if v.Type == Array && len(v.Elems) == 1 && to != Array && to != Point {
		return Convert(v.Elems[0], to)
	}
	switch to {
	case NoType:
		return v, nil
	case Int, Enum:
		switch v.Type {
		case Int:
			return v, nil
		case Scalar:
			return IntValue(FloorToInt(v.Scalar)), nil
		case String:
			if n, ok := ParseNumber(v.Str); ok {
				return Convert(n, Int)
			}
		}
	case Scalar, MSec:
		switch v.Type {
		case Int:
			return ScalarValue(IntToScalar(v.Int)), nil
		case Scalar:
			return v, nil
		case String:
			if n, ok := ParseNumber(v.Str); ok {
				return Convert(n, Scalar)
			}
		}
	case String:
		switch v.Type {
		case Int, Scalar, String:
			return StringValue(v.String()), nil
		}
	case Boolean:
		if v.Type == String {
			switch strings.ToLower(strings.TrimSpace(v.Str)) {
			case "true":
				return IntValue(1), nil
			case "false":
				return IntValue(0), nil
			}
		}
		b, err := Truth(v)
		if err != nil {
			break
		}
		return BoolValue(b), nil
	case Color:
		switch v.Type {
		case Int:
			return v, nil
		case Scalar:
			return IntValue(int32(uint32(int64(v.Scalar)))), nil
		case String:
			if c, err := colors.FromString(v.Str); err == nil {
				return IntValue(int32(colors.AsARGB(c))), nil
			}
			if n, ok := ParseNumber(v.Str); ok {
				return Convert(n, Color)
			}
		}
	case Array:
		if v.Type == Array {
			return v, nil
		}
		if v.IsValid() {
			return ArrayValue(v.Type, v), nil
		}
	case Point:
		var a Value
		var err error
		if v.Type == String {
			l, ok := ParseList(v.Str)
			if !ok {
				break
			}
			a = l
		} else {
			a, err = ConvertArray(v, Scalar)
			if err != nil {
				break
			}
		}
		if len(a.Elems) == 1 {
			a.Elems = append(a.Elems, a.Elems[0])
		}
		if len(a.Elems) != 2 {
			break
		}
		return a, nil
	case Object:
		if v.Type == Object {
			return v, nil
		}
	}
	return Value{}, convErr(v, to)
}

// ConvertArray converts the value to an array whose elements
// have the given type, wrapping a single value.
func ConvertArray(v Value, elem Type) (Value, error) {
	if v.Type != Array {
		v = ArrayValue(v.Type, v)
	}
	rt := elem.Runtime()
	out := ArrayValue(rt)
	out.Elems = make([]Value, len(v.Elems))
	for i, e := range v.Elems {
		ce, err := Convert(e, elem)
		if err != nil {
			return Value{}, err
		}
		out.Elems[i] = ce
	}
	return out, nil
}

// Truth returns the boolean interpretation of a value: numbers are
// true when non-zero and strings are converted to numbers first.
func Truth(v Value) (bool, error) {
	switch v.Type {
	case Int:
		return v.Int != 0, nil
	case Scalar:
		return v.Scalar != 0, nil
	case String:
		if n, ok := ParseNumber(v.Str); ok {
			return Truth(n)
		}
	case Array:
		if len(v.Elems) == 1 {
			return Truth(v.Elems[0])
		}
	}
	return false, convErr(v, Boolean)
}
