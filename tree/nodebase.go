// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"log/slog"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
)

// NodeBase implements the [Node] interface and provides the core tree
// functionality: ownership of children, parent links, walking and
// deep copying. It must be embedded in all node types, and nodes must
// be initialized with [InitNode] (or through [NodeBase.AddChild] or
// [NodeBase.Clone]) so that [NodeBase.This] is set.
type NodeBase struct {

	// Name is the name of this node. For scene nodes it is the document id.
	Name string `copier:"-"`

	// This is the value of this Node as its true underlying type, so that
	// methods defined on base types can call methods defined on higher-level
	// types. It is set to nil when the node is destroyed.
	This Node `copier:"-"`

	// Parent is the owning parent of this node, set automatically when
	// this node is added as a child.
	Parent Node `copier:"-"`

	// Children is the list of owned children of this node.
	Children []Node `copier:"-"`

	// index is the last known index in the parent, used as a starting
	// point for [NodeBase.IndexInParent].
	index int
}

// InitNode initializes the node: it sets [NodeBase.This] and calls [Node.Init].
// It does nothing if the node has already been initialized.
func InitNode(n Node) {
	nb := n.AsTree()
	if nb.This != nil {
		return
	}
	nb.This = n
	n.Init()
}

// String returns the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// IsRoot returns whether the node has no parent.
func IsRoot(n Node) bool {
	return n == nil || n.AsTree().Parent == nil
}

// Root returns the root of the tree containing the node.
func Root(n Node) Node {
	for !IsRoot(n) {
		n = n.AsTree().Parent
	}
	return n
}

// Parents:

// IndexInParent returns our index within our parent node. It caches the
// last value and uses that for an optimized search so subsequent calls
// are typically quite fast. Returns -1 if we don't have a parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	kids := n.Parent.AsTree().Children
	if n.index >= 0 && n.index < len(kids) && kids[n.index] == n.This {
		return n.index
	}
	n.index = slices.Index(kids, n.This)
	return n.index
}

// ParentLevel returns the number of levels above this node that the
// given parent is found, or -1 if it is not an ancestor.
func (n *NodeBase) ParentLevel(parent Node) int {
	level := 0
	for cur := n.Parent; cur != nil; cur = cur.AsTree().Parent {
		level++
		if cur == parent {
			return level
		}
	}
	return -1
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the first child that has the given name, or nil.
func (n *NodeBase) ChildByName(name string) Node {
	for _, k := range n.Children {
		if k.AsTree().Name == name {
			return k
		}
	}
	return nil
}

// Path returns the path to this node from the tree root,
// using names separated by / delimiters. Unnamed nodes
// are represented by their index in brackets.
func (n *NodeBase) Path() string {
	var parts []string
	n.WalkUp(func(k Node) bool {
		kb := k.AsTree()
		nm := kb.Name
		if nm == "" {
			nm = "[" + strconv.Itoa(kb.IndexInParent()) + "]"
		}
		parts = append(parts, nm)
		return Continue
	})
	slices.Reverse(parts)
	return "/" + strings.Join(parts, "/")
}

// Adding and Inserting Children:

// AddChild adds given child at end of children list, initializing it
// if necessary. The kid node is assumed to not be on another tree
// (see [MoveToParent]).
func (n *NodeBase) AddChild(kid Node) {
	InitNode(kid)
	n.Children = append(n.Children, kid)
	SetParent(kid, n.This)
}

// InsertChild adds given child at position in children list,
// clamping the position to the valid range.
func (n *NodeBase) InsertChild(kid Node, index int) {
	InitNode(kid)
	index = max(0, min(index, len(n.Children)))
	n.Children = slices.Insert(n.Children, index, kid)
	SetParent(kid, n.This)
}

// SetParent sets the parent of the given node to the given parent node.
// This is only for nodes with no existing parent; see [MoveToParent] to
// move nodes that already have a parent. It does not add the node to
// the parent's list of children; see [NodeBase.AddChild] for a version
// that does. It automatically calls [Node.OnAdd].
func SetParent(child Node, parent Node) {
	child.AsTree().Parent = parent
	child.OnAdd()
}

// MoveToParent removes the given node from its current parent
// and adds it as a child of the given new parent.
func MoveToParent(child Node, parent Node) {
	if op := child.AsTree().Parent; op != nil {
		ob := op.AsTree()
		if i := child.AsTree().IndexInParent(); i >= 0 {
			ob.Children = slices.Delete(ob.Children, i, i+1)
		}
		child.AsTree().Parent = nil
	}
	parent.AsTree().AddChild(child)
}

// Deleting Children:

// DeleteChildAt deletes child at the given index. It returns false
// if there is no child at the given index.
func (n *NodeBase) DeleteChildAt(index int) bool {
	child := n.Child(index)
	if child == nil {
		return false
	}
	n.Children = slices.Delete(n.Children, index, index+1)
	child.Destroy()
	return true
}

// DeleteChild deletes the given child node, returning false if
// it can not find it.
func (n *NodeBase) DeleteChild(child Node) bool {
	if child == nil {
		return false
	}
	return n.DeleteChildAt(slices.Index(n.Children, child))
}

// RemoveChild removes the given child from the list of children
// without destroying it, returning false if it can not find it.
func (n *NodeBase) RemoveChild(child Node) bool {
	i := slices.Index(n.Children, child)
	if i < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, i, i+1)
	child.AsTree().Parent = nil
	return true
}

// DeleteChildren deletes all children nodes.
func (n *NodeBase) DeleteChildren() {
	kids := n.Children
	n.Children = nil
	for _, kid := range kids {
		if kid != nil {
			kid.Destroy()
		}
	}
}

// Destroy recursively deletes and destroys the node and all of its children.
func (n *NodeBase) Destroy() {
	n.DeleteChildren()
	n.Parent = nil
	n.This = nil
}

// Tree Walking:

// WalkUp calls the given function on the node and all of its parents.
// It stops walking if the function returns [Break] and keeps walking
// if it returns [Continue]. It returns whether walking was finished.
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	cur := n.This
	for {
		if !fun(cur) {
			return false
		}
		parent := cur.AsTree().Parent
		if parent == nil || parent == cur { // prevent loops
			return true
		}
		cur = parent
	}
}

// WalkUpParent calls the given function on all of the node's parents
// but not the node itself, with the same semantics as [NodeBase.WalkUp].
func (n *NodeBase) WalkUpParent(fun func(n Node) bool) bool {
	if n.Parent == nil {
		return true
	}
	return n.Parent.AsTree().WalkUp(fun)
}

// WalkDown calls the given function on the node and all of its children
// in a depth-first manner. It stops walking the current branch of the tree
// if the function returns [Break] and keeps walking if it returns [Continue].
// It is non-recursive, and tolerates the function destroying nodes.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	tm := map[Node]int{} // traversal map: index of the child being visited
	start := n.This
	cur := start
	tm[cur] = -1
outer:
	for {
		cb := cur.AsTree()
		if cb.This != nil && fun(cur) && cb.This != nil && cb.HasChildren() {
			tm[cur] = 0
			cur = cb.Children[0]
			tm[cur] = -1
			continue
		}
		tm[cur] = cb.NumChildren()
		// ascent: move to the right and then up
		for {
			cb := cur.AsTree()
			next := tm[cur] + 1
			if next < cb.NumChildren() {
				tm[cur] = next
				cur = cb.Children[next]
				tm[cur] = -1
				continue outer
			}
			delete(tm, cur)
			if cur == start {
				break outer
			}
			parent := cb.Parent
			if parent == nil || parent == cur {
				break outer
			}
			cur = parent
		}
	}
}

// WalkDownPost calls shouldContinue on each node depth-first to decide
// whether to descend into it, and calls fun on each visited node after
// all of its children, so deeper nodes are processed first.
func (n *NodeBase) WalkDownPost(shouldContinue func(n Node) bool, fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	var visit func(k Node)
	visit = func(k Node) {
		kb := k.AsTree()
		if kb.This != nil && shouldContinue(k) {
			for _, c := range slices.Clone(kb.Children) {
				visit(c)
			}
		}
		fun(k)
	}
	visit(n.This)
}

// Deep Copy:

// Clone creates and returns a deep copy of the tree from this node down,
// using [Node.CopyFieldsFrom] for the fields of each node.
func (n *NodeBase) Clone() Node {
	nc := reflect.New(reflect.TypeOf(n.This).Elem()).Interface().(Node)
	InitNode(nc)
	nc.AsTree().Name = n.Name
	nc.CopyFieldsFrom(n.This)
	for _, kid := range n.Children {
		nc.AsTree().AddChild(kid.AsTree().Clone())
	}
	return nc
}

// CopyFieldsFrom copies the fields of the node from the given node
// with a deep copy of all of the fields that do not have a
// `copier:"-"` struct tag. Unexported fields are copied shallowly,
// so node types holding runtime state in them must reset it.
func (n *NodeBase) CopyFieldsFrom(from Node) {
	err := copier.CopyWithOption(n.This, from.AsTree().This, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("tree.NodeBase.CopyFieldsFrom", "err", err)
	}
}

// Init is a placeholder implementation of
// [Node.Init] that does nothing.
func (n *NodeBase) Init() {}

// OnAdd is a placeholder implementation of
// [Node.OnAdd] that does nothing.
func (n *NodeBase) OnAdd() {}
