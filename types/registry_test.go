// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"testing"

	"cogentcore.org/animator/operand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shape struct {
	Left float32
}

type box struct {
	shape
	Width float32
}

func newRegistry(t *testing.T) (*Registry, *Type, *Type) {
	r := NewRegistry()
	base, err := r.AddType(&Type{Name: "shape", Members: []*Member{
		{Name: "left", Type: operand.Scalar,
			Get: func(obj any) operand.Value { return operand.ScalarValue(obj.(*box).Left) },
			Set: func(obj any, v operand.Value) error { obj.(*box).Left = v.Scalar; return nil }},
	}})
	require.NoError(t, err)
	bx, err := r.AddType(&Type{Name: "box", Base: base, New: func() any { return &box{} }, Members: []*Member{
		{Name: "width", Type: operand.Scalar,
			Get: func(obj any) operand.Value { return operand.ScalarValue(obj.(*box).Width) },
			Set: func(obj any, v operand.Value) error { obj.(*box).Width = v.Scalar; return nil }},
		{Name: "area", Type: operand.Scalar, Kind: Property,
			Get: func(obj any) operand.Value { return operand.ScalarValue(obj.(*box).Width * 2) }},
		{Name: "grow", Type: operand.Scalar, Kind: Function, Arity: 1},
		{Name: "center", Type: operand.Scalar, Kind: Property},
	}})
	require.NoError(t, err)
	return r, base, bx
}

func TestRegistry(t *testing.T) {
	r, base, bx := newRegistry(t)
	obj, tp, err := r.Create("box")
	require.NoError(t, err)
	assert.Equal(t, bx, tp)
	assert.True(t, tp.HasEmbed(base))
	assert.False(t, base.HasEmbed(bx))

	names := []string{}
	for _, m := range r.MembersOf(bx) {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"left", "area", "center", "grow", "width"}, names)

	m, err := r.Resolve(bx, "left")
	require.NoError(t, err)
	require.NoError(t, m.Set(obj, operand.ScalarValue(3)))
	assert.Equal(t, float32(3), obj.(*box).Left)
	assert.True(t, bx.Member("area").IsReadOnly())

	assert.Equal(t, 0, bx.Member("area").Index)
	assert.Equal(t, 1, bx.Member("center").Index)
	assert.Equal(t, 0, bx.Member("grow").Index)
	assert.Equal(t, -1, bx.Member("width").Index)
	assert.Equal(t, "center", bx.Property(Property, 1).Name)
}

func TestRegistryErrors(t *testing.T) {
	r, _, bx := newRegistry(t)
	_, _, err := r.Create("bux")
	assert.True(t, errors.Is(err, ErrUnknownType))
	assert.Contains(t, err.Error(), `did you mean "box"`)

	_, _, err = r.Create("shape")
	assert.True(t, errors.Is(err, ErrUnknownType))

	_, err = r.Resolve(bx, "widht")
	assert.True(t, errors.Is(err, ErrUnknownAttribute))
	assert.Contains(t, err.Error(), `did you mean "width"`)

	_, err = r.Resolve(bx, "zzzzzzzz")
	assert.NotContains(t, err.Error(), "did you mean")

	_, err = r.AddType(&Type{Name: "box"})
	assert.Error(t, err)
}
