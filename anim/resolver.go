// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"slices"

	"cogentcore.org/animator/operand"
	"cogentcore.org/animator/types"
)

// resolver connects the expression engine of a [Maker] to its nodes.
// Identifiers are element ids, then "parent", then the members of the
// working object.
type resolver struct {
	m *Maker
}

func (r *resolver) ResolveIdentifier(name string) (operand.Value, bool, error) {
	m := r.m
	if ref, ok := m.ids[name]; ok && m.node(ref) != nil {
		r.depend(ref)
		return operand.ObjectValue(ref), true, nil
	}
	w := m.working
	if w == nil {
		return operand.Value{}, false, nil
	}
	if name == "parent" {
		if p := parentNode(w); p != nil {
			return operand.ObjectValue(p.AsNode().Ref), true, nil
		}
		return operand.Value{}, false, nil
	}
	if kind := w.AsNode().Kind; kind != nil {
		if mb := kind.Member(name); mb != nil && mb.Kind != types.Function && mb.Get != nil {
			return mb.Get(w), true, nil
		}
	}
	return operand.Value{}, false, nil
}

// depend records that the working object depends on the node,
// when it is a dynamic animator.
func (r *resolver) depend(ref operand.Ref) {
	an, ok := r.m.working.(animatorNode)
	if !ok || !an.AsAnimate().Dynamic {
		return
	}
	a := an.AsAnimate()
	if ref == a.Ref {
		return
	}
	r.m.node(ref).AsNode().addDependent(a.Ref)
	if !slices.Contains(a.dependsOn, ref) {
		a.dependsOn = append(a.dependsOn, ref)
	}
}

// object returns the live node of an object value.
func (r *resolver) object(obj operand.Value) (Node, error) {
	n := r.m.node(obj.Ref)
	if n == nil {
		return nil, fmt.Errorf("anim: object %d does not exist", obj.Ref)
	}
	return n, nil
}

func (r *resolver) ResolveMember(obj operand.Value, name string) (operand.Value, error) {
	n, err := r.object(obj)
	if err != nil {
		return operand.Value{}, err
	}
	if name == "parent" {
		if p := parentNode(n); p != nil {
			return operand.ObjectValue(p.AsNode().Ref), nil
		}
		return operand.Value{}, fmt.Errorf("anim: %s has no parent", n.AsNode().Kind.Name)
	}
	mb, err := r.m.Registry.Resolve(n.AsNode().Kind, name)
	if err != nil {
		return operand.Value{}, err
	}
	if mb.Kind == types.Function || mb.Get == nil {
		return operand.Value{}, fmt.Errorf("anim: %s.%s is a function", n.AsNode().Kind.Name, name)
	}
	return mb.Get(n), nil
}

func (r *resolver) CallFunction(obj operand.Value, name string, args []operand.Value) (operand.Value, bool, error) {
	if obj.Type != operand.Object {
		return operand.Value{}, false, nil
	}
	n, err := r.object(obj)
	if err != nil {
		return operand.Value{}, false, err
	}
	mb := n.AsNode().Kind.Member(name)
	if mb == nil || mb.Kind != types.Function {
		return operand.Value{}, false, nil
	}
	v, err := mb.Call(n, args)
	return v, true, err
}

func (r *resolver) Unbox(obj operand.Value) (operand.Value, error) {
	n, err := r.object(obj)
	if err != nil {
		return operand.Value{}, err
	}
	if u, ok := n.(unboxer); ok {
		return u.Unbox(), nil
	}
	return operand.Value{}, fmt.Errorf("anim: %s has no value", n.AsNode().Kind.Name)
}
