// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"image/color"

	"cogentcore.org/animator/colors"
	"cogentcore.org/animator/math32"
	"cogentcore.org/animator/operand"
	"cogentcore.org/animator/types"
)

// The member builders below make descriptor closures over concrete
// node types T, which may also be interfaces implemented by several
// node types for inherited members.

func member[T any](name string, typ operand.Type, get func(n T) operand.Value, set func(n T, v operand.Value) error) *types.Member {
	mb := &types.Member{Name: name, Type: typ, Kind: types.Field, Arity: typ.Arity()}
	mb.Get = func(obj any) operand.Value { return get(obj.(T)) }
	if set != nil {
		mb.Set = func(obj any, v operand.Value) error { return set(obj.(T), v) }
	}
	return mb
}

// property returns a computed member; set may be nil for read-only properties.
func property[T any](name string, typ operand.Type, get func(n T) operand.Value, set func(n T, v operand.Value) error) *types.Member {
	mb := member(name, typ, get, set)
	mb.Kind = types.Property
	return mb
}

func function[T any](name string, typ operand.Type, arity int, call func(n T, args []operand.Value) (operand.Value, error)) *types.Member {
	return &types.Member{Name: name, Type: typ, Kind: types.Function, Arity: arity,
		Get:  func(obj any) operand.Value { return operand.Value{} },
		Call: func(obj any, args []operand.Value) (operand.Value, error) { return call(obj.(T), args) }}
}

func scalarField[T any](name string, ptr func(n T) *float32) *types.Member {
	return member(name, operand.Scalar,
		func(n T) operand.Value { return operand.ScalarValue(*ptr(n)) },
		func(n T, v operand.Value) error {
			s, err := operand.Convert(v, operand.Scalar)
			if err != nil {
				return err
			}
			*ptr(n) = s.Scalar
			return nil
		})
}

func intField[T any](name string, ptr func(n T) *int32) *types.Member {
	return member(name, operand.Int,
		func(n T) operand.Value { return operand.IntValue(*ptr(n)) },
		func(n T, v operand.Value) error {
			i, err := operand.Convert(v, operand.Int)
			if err != nil {
				return err
			}
			*ptr(n) = i.Int
			return nil
		})
}

func boolField[T any](name string, ptr func(n T) *bool) *types.Member {
	return member(name, operand.Boolean,
		func(n T) operand.Value { return operand.BoolValue(*ptr(n)) },
		func(n T, v operand.Value) error {
			b, err := operand.Convert(v, operand.Boolean)
			if err != nil {
				return err
			}
			*ptr(n) = b.Int != 0
			return nil
		})
}

func stringField[T any](name string, ptr func(n T) *string) *types.Member {
	return member(name, operand.String,
		func(n T) operand.Value { return operand.StringValue(*ptr(n)) },
		func(n T, v operand.Value) error {
			s, err := operand.Convert(v, operand.String)
			if err != nil {
				return err
			}
			*ptr(n) = s.Str
			return nil
		})
}

// msecField is a time member seen as seconds and stored in milliseconds.
func msecField[T any](name string, ptr func(n T) *int32) *types.Member {
	return member(name, operand.MSec,
		func(n T) operand.Value { return operand.ScalarValue(float32(*ptr(n)) / 1000) },
		func(n T, v operand.Value) error {
			s, err := operand.Convert(v, operand.MSec)
			if err != nil {
				return err
			}
			*ptr(n) = toMSec(s.Scalar)
			return nil
		})
}

// toMSec converts seconds to milliseconds, saturating non-finite values.
func toMSec(sec float32) int32 {
	return operand.FloorToInt(math32.Round(sec * 1000))
}

func colorField[T any](name string, ptr func(n T) *color.NRGBA) *types.Member {
	return member(name, operand.Color,
		func(n T) operand.Value { return operand.IntValue(int32(colors.AsARGB(*ptr(n)))) },
		func(n T, v operand.Value) error {
			c, err := operand.Convert(v, operand.Color)
			if err != nil {
				return err
			}
			*ptr(n) = colors.FromARGB(uint32(c.Int))
			return nil
		})
}

// enumField is an enum member with the given names, stored as E.
func enumField[T any, E ~int32](name string, names []string, ptr func(n T) *E) *types.Member {
	mb := member(name, operand.Enum,
		func(n T) operand.Value { return operand.IntValue(int32(*ptr(n))) },
		func(n T, v operand.Value) error {
			idx, err := enumIndex(names, v)
			if err != nil {
				return err
			}
			*ptr(n) = E(idx)
			return nil
		})
	mb.Enum = names
	return mb
}

func enumIndex(names []string, v operand.Value) (int32, error) {
	if v.Type == operand.String {
		for i, nm := range names {
			if nm == v.Str {
				return int32(i), nil
			}
		}
	}
	i, err := operand.Convert(v, operand.Int)
	if err != nil || i.Int < 0 || int(i.Int) >= len(names) {
		return 0, fmt.Errorf("%w: %s is not one of %v", operand.ErrConversion, v, names)
	}
	return i.Int, nil
}

// refField is an object reference member.
func refField[T any](name string, ptr func(n T) *operand.Ref) *types.Member {
	return member(name, operand.Object,
		func(n T) operand.Value {
			if *ptr(n) == 0 {
				return operand.Value{}
			}
			return operand.ObjectValue(*ptr(n))
		},
		func(n T, v operand.Value) error {
			o, err := operand.Convert(v, operand.Object)
			if err != nil {
				return err
			}
			*ptr(n) = o.Ref
			return nil
		})
}

// scalarsField is a member holding a variable length array of scalars.
func scalarsField[T any](name string, ptr func(n T) *[]float32) *types.Member {
	mb := member(name, operand.Array,
		func(n T) operand.Value { return operand.ScalarArray(*ptr(n)...) },
		func(n T, v operand.Value) error {
			fs, err := toScalars(v)
			if err != nil {
				return err
			}
			*ptr(n) = fs
			return nil
		})
	mb.Kind = types.ArrayField
	mb.Elem = operand.Scalar
	return mb
}

func toScalars(v operand.Value) ([]float32, error) {
	if v.Type == operand.String {
		l, ok := operand.ParseList(v.Str)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a list of numbers", operand.ErrConversion, v.Str)
		}
		v = l
	}
	a, err := operand.ConvertArray(v, operand.Scalar)
	if err != nil {
		return nil, err
	}
	fs := make([]float32, len(a.Elems))
	for i, e := range a.Elems {
		fs[i] = e.Scalar
	}
	return fs, nil
}

func pointField[T any](name string, ptr func(n T) *math32.Vector2) *types.Member {
	return member(name, operand.Point,
		func(n T) operand.Value { p := *ptr(n); return operand.ScalarArray(p.X, p.Y) },
		func(n T, v operand.Value) error {
			p, err := operand.Convert(v, operand.Point)
			if err != nil {
				return err
			}
			fs, _ := toScalars(p)
			*ptr(n) = math32.Vec2(fs[0], fs[1])
			return nil
		})
}

// valueField is a member holding a value of the given declared type.
func valueField[T any](name string, typ operand.Type, ptr func(n T) *operand.Value) *types.Member {
	mb := member(name, typ,
		func(n T) operand.Value { return ptr(n).Clone() },
		func(n T, v operand.Value) error {
			c, err := operand.Convert(v, typ)
			if err != nil {
				return err
			}
			*ptr(n) = c
			return nil
		})
	if typ == operand.Array {
		mb.Kind = types.ArrayField
	}
	return mb
}

// valuesEqual returns whether two values are identical.
func valuesEqual(a, b operand.Value) bool {
	if a.Type != b.Type || a.Int != b.Int || a.Str != b.Str || a.Ref != b.Ref || a.Elem != b.Elem {
		return false
	}
	if a.Scalar != b.Scalar && !(a.Scalar != a.Scalar && b.Scalar != b.Scalar) {
		return false
	}
	if len(a.Elems) != len(b.Elems) {
		return false
	}
	for i := range a.Elems {
		if !valuesEqual(a.Elems[i], b.Elems[i]) {
			return false
		}
	}
	return true
}
