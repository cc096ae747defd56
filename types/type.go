// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"slices"
	"strings"
)

// Type represents a registered object kind: its element name,
// its base type, its factory and its member table.
type Type struct {

	// Name is the element name of the type (eg: rect)
	Name string

	// Doc has the documentation for the type.
	Doc string

	// Base is the type this type inherits members from, if any.
	Base *Type

	// Members are the members declared directly on this type,
	// sorted by name when the type is registered.
	Members []*Member

	// New returns a new instance of the type.
	New func() any

	// ID is the unique registration order number of the type.
	ID int

	all []*Member
}

func (tp *Type) String() string {
	return tp.Name
}

// HasEmbed returns true if this type is the given type or
// inherits from it at any depth.
func (tp *Type) HasEmbed(typ *Type) bool {
	for t := tp; t != nil; t = t.Base {
		if t == typ {
			return true
		}
	}
	return false
}

// AllMembers returns the flattened member table, inherited members first.
// The result is computed once and must not be modified.
func (tp *Type) AllMembers() []*Member {
	if tp.all != nil {
		return tp.all
	}
	var all []*Member
	if tp.Base != nil {
		all = append(all, tp.Base.AllMembers()...)
	}
	tp.all = append(all, tp.Members...)
	return tp.all
}

// Member returns the member with the given name, searching this type's
// sorted table and then its bases, or nil if there is none.
func (tp *Type) Member(name string) *Member {
	for t := tp; t != nil; t = t.Base {
		i, ok := slices.BinarySearchFunc(t.Members, name, func(m *Member, nm string) int {
			return strings.Compare(m.Name, nm)
		})
		if ok {
			return t.Members[i]
		}
	}
	return nil
}

// Property returns the property or function member with the given
// stable index on this type or its bases, or nil.
func (tp *Type) Property(kind MemberKinds, index int) *Member {
	for t := tp; t != nil; t = t.Base {
		for _, m := range t.Members {
			if m.Kind == kind && m.Index == index {
				return m
			}
		}
	}
	return nil
}

// sortMembers sorts the members by name and assigns stable
// indexes to properties and functions in declaration order.
func (tp *Type) sortMembers() {
	np, nf := 0, 0
	for _, m := range tp.Members {
		switch m.Kind {
		case Property:
			m.Index = np
			np++
		case Function:
			m.Index = nf
			nf++
		default:
			m.Index = -1
		}
	}
	slices.SortStableFunc(tp.Members, func(a, b *Member) int {
		return strings.Compare(a.Name, b.Name)
	})
}
