// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"slices"

	"cogentcore.org/animator/events"
	"cogentcore.org/animator/math32"
	"cogentcore.org/animator/operand"
	"cogentcore.org/animator/tree"
	"cogentcore.org/animator/types"
)

// Caps are the capabilities of a node kind, as a bit set.
type Caps uint16

const (
	// CapDrawable nodes draw on a canvas and may be in the display list.
	CapDrawable Caps = 1 << iota

	// CapAnimator nodes are animate statements driven by an apply.
	CapAnimator

	// CapGroup nodes own an ordered list of drawables.
	CapGroup

	// CapEvent nodes are event handlers.
	CapEvent

	// CapMatrixPart nodes are parts of a matrix.
	CapMatrixPart

	// CapPathPart nodes are parts of a path.
	CapPathPart

	// CapPaintPart nodes are shaders, mask filters, path effects and colors of a paint.
	CapPaintPart

	// CapStatement nodes run when an event fires or the document loads.
	CapStatement

	// CapData nodes hold a value that expressions can unbox.
	CapData
)

// Has returns whether all of the given capabilities are set.
func (c Caps) Has(o Caps) bool {
	return c&o == o
}

// Node is a scene node. All nodes embed [NodeBase].
type Node interface {
	tree.Node

	// AsNode returns the [NodeBase] of the node.
	AsNode() *NodeBase

	// Caps returns the capabilities of the node kind.
	Caps() Caps

	// Contain attaches the child to its slot in this node,
	// returning false if this node cannot contain it.
	Contain(child Node) bool

	// EndElement is called once after all attributes and children
	// are set and references are resolved, to compute derived state
	// and check structural constraints.
	EndElement(m *Maker) error
}

// Drawable is a node that draws.
type Drawable interface {
	Node

	// Draw draws the node, returning whether anything changed.
	Draw(dc *drawContext) bool
}

// Statement is a node that runs when its event fires, or when
// the document loads for top-level statements.
type Statement interface {
	Node

	// Activate runs the statement in response to the event,
	// which is nil at load time.
	Activate(m *Maker, ev *events.Event)
}

// NodeBase is the base type of all scene nodes.
type NodeBase struct {
	tree.NodeBase

	// Ref is the handle of the node in its [Maker].
	Ref operand.Ref `copier:"-"`

	// Kind is the registered type of the node.
	Kind *types.Type `copier:"-"`

	// Line is the document line of the element.
	Line int

	// broken marks a node with unresolved references,
	// kept out of drawing and activation.
	broken bool

	// changed is set when a member changes, until the next draw.
	changed bool

	// bounds are the device bounds of the last draw.
	bounds math32.Box2

	// dependents are the dynamic animators depending on this node.
	dependents []operand.Ref

	// pending are the reference members waiting to be resolved.
	pending []pendingRef

	// maker is the maker that owns the node.
	maker *Maker
}

// pendingRef is an object-typed attribute resolved at element close.
type pendingRef struct {
	member *types.Member
	text   string
}

func (n *NodeBase) AsNode() *NodeBase {
	return n
}

func (n *NodeBase) Caps() Caps {
	return 0
}

func (n *NodeBase) Contain(child Node) bool {
	return false
}

func (n *NodeBase) EndElement(m *Maker) error {
	return nil
}

// ID returns the document id of the node.
func (n *NodeBase) ID() string {
	return n.Name
}

// Broken returns whether the node has unresolved references.
func (n *NodeBase) Broken() bool {
	return n.broken
}

// Bounds returns the device bounds of the node from its last draw.
func (n *NodeBase) Bounds() math32.Box2 {
	return n.bounds
}

func (n *NodeBase) addDependent(r operand.Ref) {
	if !slices.Contains(n.dependents, r) {
		n.dependents = append(n.dependents, r)
	}
}

// resetRuntime clears the unexported state that a deep copy
// shares with the original.
func (n *NodeBase) resetRuntime() {
	n.dependents = nil
	n.pending = nil
	n.changed = true
	n.bounds = math32.B2Empty()
}

// runtimeResetter is implemented by nodes holding runtime state
// that must not be shared with a deep copy.
type runtimeResetter interface {
	resetRuntime()
}

// AsNode returns the given tree node as a [Node], or nil.
func AsNode(n tree.Node) Node {
	if n == nil {
		return nil
	}
	an, _ := n.(Node)
	return an
}

// parentNode returns the construction parent of the node, or nil.
func parentNode(n Node) Node {
	return AsNode(n.AsTree().Parent)
}

// nodeChildren returns the children of the node as nodes.
func nodeChildren(n Node) []Node {
	kids := n.AsTree().Children
	out := make([]Node, 0, len(kids))
	for _, k := range kids {
		if an := AsNode(k); an != nil {
			out = append(out, an)
		}
	}
	return out
}

// childrenWith returns the children of the node with the given capabilities.
func childrenWith(n Node, caps Caps) []Node {
	var out []Node
	for _, k := range nodeChildren(n) {
		if k.Caps().Has(caps) {
			out = append(out, k)
		}
	}
	return out
}
