// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim is a declarative, time-driven animation runtime.
// A [Maker] loads a scene document into a tree of nodes, drives the
// animations it declares from a host supplied clock, dispatches input
// and document events to it, and draws it onto a [canvas.Canvas].
//
// A Maker is single threaded: all calls must come from one goroutine.
package anim

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"cogentcore.org/animator/colors"
	"cogentcore.org/animator/events"
	"cogentcore.org/animator/math32"
	"cogentcore.org/animator/operand"
	"cogentcore.org/animator/script"
	"cogentcore.org/animator/tree"
	"cogentcore.org/animator/types"
)

// MaxDepth is the deepest element nesting a document may have.
const MaxDepth = 256

// NoInterval is returned by [Maker.Interval] when nothing is animating.
const NoInterval int32 = -1

// Maker owns a loaded document: its nodes, display list, animation
// state and event queues.
type Maker struct {

	// Registry has the element types of the documents.
	Registry *types.Registry

	// Dir is the directory that bitmap and movie sources are relative to.
	Dir string

	// HostSink receives the events posted to the "host" sink.
	HostSink func(ev *events.Event)

	// TrackBounds enables the accumulation of invalidated bounds.
	TrackBounds bool

	// Listeners are the host functions that receive the events no
	// event element handled. They are kept across loads.
	Listeners events.Listeners

	// nodes is the arena of nodes by [operand.Ref], with nil for destroyed nodes.
	nodes []Node

	// ids maps document ids to nodes.
	ids map[string]operand.Ref

	root *Screenplay
	list DisplayList

	// helpers are the nodes owned by the maker that are not in the
	// document tree, such as removed and copied nodes.
	helpers []Node

	handlers []*EventHandler
	movies   []*Movie

	// active are the enabled applies in the order they were enabled.
	active []*Apply

	// delayed are the enabled applies with animators that have not begun.
	delayed []*Apply

	// owners are the actives owning each animated field.
	owners map[fieldKey]*active

	queue     events.Queue
	hostQueue events.Queue

	engine  *script.Engine
	working Node

	diags Diagnostics

	// deferred are the nodes whose references are resolved at document end.
	deferred []Node

	time    int32
	started bool
	changed bool

	// inval are the bounds invalidated by the last draw.
	inval math32.Box2
}

// fieldKey identifies one field of one node.
type fieldKey struct {
	target operand.Ref
	field  string
}

// memberObserver is implemented by nodes that react to their members being set.
type memberObserver interface {
	memberChanged(m *Maker, name string)
}

// NewMaker returns a new maker using the given registry,
// or [NewRegistry] if it is nil.
func NewMaker(reg *types.Registry) *Maker {
	if reg == nil {
		reg = NewRegistry()
	}
	m := &Maker{Registry: reg, TrackBounds: true}
	m.engine = script.NewEngine(&resolver{m: m})
	m.reset()
	return m
}

// reset clears the document.
func (m *Maker) reset() {
	if m.root != nil {
		m.root.Destroy()
	}
	*m = Maker{Registry: m.Registry, Dir: m.Dir, HostSink: m.HostSink, TrackBounds: m.TrackBounds, Listeners: m.Listeners, engine: m.engine}
	m.nodes = []Node{nil}
	m.ids = map[string]operand.Ref{}
	m.owners = map[fieldKey]*active{}
	m.inval = math32.B2Empty()
	m.list.inval = math32.B2Empty()
	m.root = &Screenplay{}
	tree.InitNode(m.root)
	m.root.Name = "screenplay"
	m.register(m.root, m.Registry.TypeByName("screenplay"))
}

// register adds the node to the arena.
func (m *Maker) register(n Node, tp *types.Type) operand.Ref {
	nb := n.AsNode()
	nb.Kind = tp
	nb.Ref = operand.Ref(len(m.nodes))
	nb.maker = m
	nb.bounds = math32.B2Empty()
	nb.changed = true
	m.nodes = append(m.nodes, n)
	return nb.Ref
}

// bind binds the id to the node, returning false if it is already bound.
func (m *Maker) bind(n Node, id string) bool {
	if _, has := m.ids[id]; has {
		return false
	}
	m.ids[id] = n.AsNode().Ref
	n.AsTree().Name = id
	return true
}

// node returns the live node with the given handle, or nil.
func (m *Maker) node(ref operand.Ref) Node {
	if ref <= 0 || int(ref) >= len(m.nodes) {
		return nil
	}
	n := m.nodes[ref]
	if n == nil || n.AsTree().This == nil {
		return nil
	}
	return n
}

// Lookup returns the node with the given document id, or nil.
func (m *Maker) Lookup(id string) Node {
	return m.node(m.ids[id])
}

// Root returns the document root.
func (m *Maker) Root() Node {
	return m.root
}

// Time returns the time of the last advance.
func (m *Maker) Time() int32 {
	return m.time
}

// Diagnostics returns the diagnostics reported since the document was loaded.
func (m *Maker) Diagnostics() Diagnostics {
	return m.diags
}

// fail reports a diagnostic about the node and returns it.
func (m *Maker) fail(n Node, code ErrorCode, noun string, err error) error {
	d := &Diagnostic{Code: code, Noun: noun, Err: err}
	if n != nil {
		d.Line = n.AsNode().Line
	}
	m.addDiag(d)
	return d
}

// addDiag adds the diagnostic unless an identical one was already reported.
func (m *Maker) addDiag(d *Diagnostic) {
	for _, o := range m.diags {
		if o.Code == d.Code && o.Noun == d.Noun && o.Line == d.Line {
			return
		}
	}
	m.diags = append(m.diags, d)
	if m.started {
		slog.Warn("anim.Maker", "diagnostic", d.Error())
	} else {
		slog.Debug("anim.Maker", "diagnostic", d.Error())
	}
}

// destroy destroys the node and its subtree, releasing their handles
// and ids and removing them from every list that refers to them.
func (m *Maker) destroy(n Node) {
	if n == nil || n.AsTree().This == nil {
		return
	}
	var dead []Node
	n.AsTree().WalkDown(func(k tree.Node) bool {
		if an := AsNode(k); an != nil {
			dead = append(dead, an)
		}
		return tree.Continue
	})
	for _, k := range dead {
		kb := k.AsNode()
		if ap, ok := k.(*Apply); ok {
			m.disableApply(ap)
			for _, in := range ap.instances {
				m.destroy(in)
			}
			ap.instances = nil
		}
		if an, ok := k.(animatorNode); ok {
			a := an.AsAnimate()
			for _, r := range a.dependsOn {
				if d := m.node(r); d != nil {
					db := d.AsNode()
					db.dependents = slices.DeleteFunc(db.dependents, func(x operand.Ref) bool { return x == kb.Ref })
				}
			}
		}
		if m.ids[kb.Name] == kb.Ref {
			delete(m.ids, kb.Name)
		}
		m.list.invalidate(kb.bounds)
		if int(kb.Ref) < len(m.nodes) && m.nodes[kb.Ref] == k {
			m.nodes[kb.Ref] = nil
		}
	}
	isDead := func(x Node) bool { return slices.Contains(dead, x) }
	m.list.Entries = slices.DeleteFunc(m.list.Entries, isDead)
	m.helpers = slices.DeleteFunc(m.helpers, isDead)
	m.handlers = slices.DeleteFunc(m.handlers, func(h *EventHandler) bool { return isDead(h) })
	m.movies = slices.DeleteFunc(m.movies, func(mv *Movie) bool { return isDead(mv) })
	for _, k := range m.nodes {
		if ap, ok := k.(*Apply); ok && len(ap.instances) > 0 {
			ap.instances = slices.DeleteFunc(ap.instances, isDead)
		}
	}
	if p := n.AsTree().Parent; p != nil {
		p.AsTree().DeleteChild(n)
	} else {
		n.Destroy()
	}
	m.changed = true
}

// adopt detaches the node from the document tree and keeps it in the
// helper set, so that it can be added back later.
func (m *Maker) adopt(n Node) {
	if p := n.AsTree().Parent; p != nil {
		p.AsTree().RemoveChild(n)
	}
	if !slices.Contains(m.helpers, n) {
		m.helpers = append(m.helpers, n)
	}
}

// condition evaluates a boolean condition of the node; empty is true.
// A condition that fails to evaluate is reported and taken as true.
func (m *Maker) condition(n Node, expr string) bool {
	if strings.TrimSpace(expr) == "" {
		return true
	}
	v, err := m.eval(n, expr, operand.Boolean)
	if err != nil {
		m.fail(n, ScriptError, expr, err)
		return true
	}
	return v.Int != 0
}

// eval evaluates the expression with the node as the working object.
func (m *Maker) eval(working Node, expr string, typ operand.Type) (operand.Value, error) {
	prev := m.working
	m.working = working
	defer func() { m.working = prev }()
	return m.engine.Evaluate(expr, typ)
}

// Evaluate evaluates an expression against the document,
// with the document root as the working object.
func (m *Maker) Evaluate(expr string, typ operand.Type) (operand.Value, error) {
	return m.eval(m.root, expr, typ)
}

// parseValue parses attribute text for the member, as a literal when
// it is one and otherwise as an expression evaluated with the working
// node as the working object.
func (m *Maker) parseValue(working Node, mb *types.Member, text string) (operand.Value, error) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, script.Prefix) {
		if v, ok := m.literal(mb, text); ok {
			return v, nil
		}
	}
	prev := m.working
	m.working = working
	defer func() { m.working = prev }()
	switch {
	case mb.Type == operand.Enum:
		return m.engine.EvaluateEnum(trimmed, mb.Enum)
	case mb.Kind == types.ArrayField:
		return m.engine.Evaluate(trimmed, operand.Array)
	}
	return m.engine.Evaluate(trimmed, mb.Type)
}

// literal parses text that is a literal of the member type.
func (m *Maker) literal(mb *types.Member, text string) (operand.Value, bool) {
	trimmed := strings.TrimSpace(text)
	switch mb.Type {
	case operand.String:
		return operand.StringValue(text), true
	case operand.Object:
		if trimmed == "" {
			return operand.ObjectValue(0), true
		}
		if r, ok := m.ids[trimmed]; ok {
			return operand.ObjectValue(r), true
		}
	case operand.Enum:
		if i := mb.EnumIndex(trimmed); i >= 0 {
			return operand.IntValue(int32(i)), true
		}
	case operand.Boolean:
		switch trimmed {
		case "true":
			return operand.BoolValue(true), true
		case "false":
			return operand.BoolValue(false), true
		}
	case operand.Color:
		if c, err := colors.FromString(trimmed); err == nil {
			return operand.IntValue(int32(colors.AsARGB(c))), true
		}
	case operand.Point:
		if v, err := operand.Convert(operand.StringValue(trimmed), operand.Point); err == nil {
			return v, true
		}
	case operand.Array:
		if l, ok := operand.ParseList(trimmed); ok {
			return l, true
		}
	default:
		if n, ok := operand.ParseNumber(trimmed); ok {
			return n, true
		}
	}
	return operand.Value{}, false
}

// setValue sets the member of the node, marking the node changed and
// its dependent animators dirty when the value is different.
func (m *Maker) setValue(n Node, mb *types.Member, v operand.Value) error {
	if mb.Set == nil {
		return fmt.Errorf("anim: %s.%s is read only", n.AsNode().Kind.Name, mb.Name)
	}
	var old operand.Value
	if mb.Get != nil {
		old = mb.Get(n)
	}
	if err := mb.Set(n, v); err != nil {
		return err
	}
	if mb.Get != nil && valuesEqual(old, mb.Get(n)) {
		return nil
	}
	nb := n.AsNode()
	nb.changed = true
	m.changed = true
	m.markDirty(nb)
	if mo, ok := n.(memberObserver); ok {
		mo.memberChanged(m, mb.Name)
	}
	return nil
}

// markDirty bumps the version of the dynamic animators depending on the node.
func (m *Maker) markDirty(nb *NodeBase) {
	for _, r := range nb.dependents {
		if an, ok := m.node(r).(animatorNode); ok {
			an.AsAnimate().version++
		}
	}
}

// SetAttribute sets the named member of the node with the given id.
func (m *Maker) SetAttribute(id, name string, v operand.Value) error {
	n := m.Lookup(id)
	if n == nil {
		return m.fail(nil, IDNotFound, id, nil)
	}
	mb, err := m.Registry.Resolve(n.AsNode().Kind, name)
	if err != nil {
		return m.fail(n, FieldNotFound, name, err)
	}
	return m.setValue(n, mb, v)
}

// Attribute returns the named member of the node with the given id.
func (m *Maker) Attribute(id, name string) (operand.Value, error) {
	n := m.Lookup(id)
	if n == nil {
		return operand.Value{}, m.fail(nil, IDNotFound, id, nil)
	}
	mb, err := m.Registry.Resolve(n.AsNode().Kind, name)
	if err != nil {
		return operand.Value{}, m.fail(n, FieldNotFound, name, err)
	}
	if mb.Get == nil || mb.Kind == types.Function {
		return operand.Value{}, fmt.Errorf("anim: %s.%s has no value", n.AsNode().Kind.Name, name)
	}
	return mb.Get(n), nil
}

// isMissingRef returns whether the error is an unresolved identifier.
func isMissingRef(err error) bool {
	return errors.Is(err, &script.Error{Code: script.ErrCouldNotFindReferenceID})
}

// deepCopy returns a copy of the subtree of the node, registered in the
// arena, with object members referring into the subtree remapped to
// the copy. It also returns the map from original to copied handles.
func (m *Maker) deepCopy(n Node) (Node, map[operand.Ref]operand.Ref) {
	c := AsNode(n.AsTree().Clone())
	refs := map[operand.Ref]operand.Ref{}
	var pairs [][2]Node
	var walk func(o, k Node)
	walk = func(o, k Node) {
		kb := k.AsNode()
		kb.Name = ""
		if rr, ok := k.(runtimeResetter); ok {
			rr.resetRuntime()
		} else {
			kb.resetRuntime()
		}
		refs[o.AsNode().Ref] = m.register(k, o.AsNode().Kind)
		kb.Line = o.AsNode().Line
		pairs = append(pairs, [2]Node{o, k})
		oks, cks := nodeChildren(o), nodeChildren(k)
		for i := range min(len(oks), len(cks)) {
			walk(oks[i], cks[i])
		}
	}
	walk(n, c)
	for _, p := range pairs {
		k := p[1]
		if k.AsNode().Kind == nil {
			continue
		}
		for _, mb := range k.AsNode().Kind.AllMembers() {
			if mb.Type != operand.Object || mb.Get == nil || mb.Set == nil {
				continue
			}
			if r, ok := refs[mb.Get(k).Ref]; ok {
				mb.Set(k, operand.ObjectValue(r))
			}
		}
	}
	m.changed = true
	return c, refs
}
