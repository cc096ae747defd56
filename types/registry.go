// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types provides the registry of object kinds: their
// factories and their attribute descriptor tables.
package types

import (
	"errors"
	"fmt"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

var (
	// ErrUnknownType is returned, wrapped, when no type is registered
	// under a name.
	ErrUnknownType = errors.New("unknown type")

	// ErrUnknownAttribute is returned, wrapped, when a type has no
	// member with a name.
	ErrUnknownAttribute = errors.New("unknown attribute")
)

// Registry maps type names to types. Registration is append-only and
// tables are immutable once a type is added, so lookups are pure.
type Registry struct {
	types map[string]*Type
	order []*Type
}

// NewRegistry returns a new empty registry.
func NewRegistry() *Registry {
	return &Registry{types: map[string]*Type{}}
}

// AddType adds the given type to the registry, sorting its members and
// assigning its ID. It returns the type for convenient chaining.
// Registering the same name twice is an error.
func (r *Registry) AddType(tp *Type) (*Type, error) {
	if _, has := r.types[tp.Name]; has {
		return nil, fmt.Errorf("types.Registry.AddType: type %q already registered", tp.Name)
	}
	tp.sortMembers()
	tp.ID = len(r.order)
	r.types[tp.Name] = tp
	r.order = append(r.order, tp)
	return tp, nil
}

// TypeByName returns the type with the given name, or nil.
func (r *Registry) TypeByName(name string) *Type {
	return r.types[name]
}

// Types returns all types in registration order.
func (r *Registry) Types() []*Type {
	return r.order
}

// Create returns a new instance of the type with the given name.
func (r *Registry) Create(name string) (any, *Type, error) {
	tp := r.types[name]
	if tp == nil || tp.New == nil {
		names := make([]string, 0, len(r.order))
		for _, t := range r.order {
			names = append(names, t.Name)
		}
		return nil, nil, suggestError(ErrUnknownType, name, names)
	}
	return tp.New(), tp, nil
}

// MembersOf returns the flattened member table of the type,
// inherited members first.
func (r *Registry) MembersOf(tp *Type) []*Member {
	return tp.AllMembers()
}

// Resolve returns the member of the type with the given name.
// The error suggests the closest known member name.
func (r *Registry) Resolve(tp *Type, name string) (*Member, error) {
	if m := tp.Member(name); m != nil {
		return m, nil
	}
	all := tp.AllMembers()
	names := make([]string, len(all))
	for i, m := range all {
		names[i] = m.Name
	}
	return nil, suggestError(ErrUnknownAttribute, name, names)
}

// Suggest returns the candidate most similar to name,
// or "" if none is reasonably close.
func Suggest(name string, candidates []string) string {
	best, bestSim := "", 0.5
	lev := metrics.NewLevenshtein()
	for _, c := range candidates {
		if sim := strutil.Similarity(name, c, lev); sim > bestSim {
			best, bestSim = c, sim
		}
	}
	return best
}

func suggestError(base error, name string, candidates []string) error {
	if s := Suggest(name, candidates); s != "" {
		return fmt.Errorf("%w %q (did you mean %q?)", base, name, s)
	}
	return fmt.Errorf("%w %q", base, name)
}
