// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"fmt"

	"cogentcore.org/animator/operand"
)

// MemberKinds are the kinds of accessors a [Member] provides.
type MemberKinds int32

const (
	// Field is a stored attribute with a getter and setter.
	Field MemberKinds = iota

	// Property is a computed attribute addressed by a stable index.
	Property

	// Function is a callable member addressed by a stable index.
	Function

	// ArrayField is a stored attribute holding an array of values.
	ArrayField
)

func (k MemberKinds) String() string {
	switch k {
	case Field:
		return "field"
	case Property:
		return "property"
	case Function:
		return "function"
	case ArrayField:
		return "array"
	}
	return "unknown"
}

// Member describes one attribute, property or function of a [Type].
// Accessors are closures over the concrete node type, so members
// never depend on memory layout.
type Member struct {

	// Name is the attribute name as written in documents and expressions.
	Name string

	// Type is the declared type of the member.
	Type operand.Type

	// Elem is the element type for [ArrayField] members.
	Elem operand.Type

	// Kind is the kind of accessor.
	Kind MemberKinds

	// Arity is the number of values a function takes,
	// or the number of components of a field (-1 for variable).
	Arity int

	// Index is the stable index of a property or function within
	// its type, or -1 for fields.
	Index int

	// Enum is the name table for [operand.Enum] members.
	Enum []string

	// Doc is an optional description.
	Doc string

	// Get returns the current value of the member on the given object.
	Get func(obj any) operand.Value

	// Set sets the member on the given object. It is nil for read-only members.
	Set func(obj any, v operand.Value) error

	// Call calls a [Function] member with the given arguments.
	Call func(obj any, args []operand.Value) (operand.Value, error)
}

func (m *Member) String() string {
	return fmt.Sprintf("%s %s %s", m.Name, m.Kind, m.Type)
}

// IsReadOnly returns whether the member cannot be set.
func (m *Member) IsReadOnly() bool {
	return m.Set == nil
}

// EnumIndex returns the index of the given name in the member's
// enum table, or -1.
func (m *Member) EnumIndex(name string) int {
	for i, e := range m.Enum {
		if e == name {
			return i
		}
	}
	return -1
}
