// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testNode struct {
	NodeBase
	Value  int
	Values []int
	inits  int
}

func (t *testNode) Init() { t.inits++ }

func newTestTree() (*testNode, *testNode, *testNode, *testNode) {
	root := &testNode{}
	InitNode(root)
	root.Name = "root"
	a := &testNode{Value: 1}
	a.Name = "a"
	b := &testNode{Value: 2, Values: []int{1, 2}}
	b.Name = "b"
	c := &testNode{Value: 3}
	c.Name = "c"
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(c)
	return root, a, b, c
}

func TestNodeAddChild(t *testing.T) {
	root, a, b, c := newTestTree()
	assert.Equal(t, 1, root.inits)
	assert.Equal(t, Node(root), a.Parent)
	assert.Equal(t, 1, b.IndexInParent())
	assert.Equal(t, 2, c.ParentLevel(root))
	assert.Equal(t, -1, root.ParentLevel(c))
	assert.Equal(t, "/root/a/c", c.Path())
	assert.Equal(t, Node(root), Root(c))
	assert.Equal(t, Node(b), root.ChildByName("b"))

	d := &testNode{}
	root.InsertChild(d, 0)
	assert.Equal(t, "/root/[0]", d.Path())
	assert.Equal(t, 2, b.IndexInParent())
}

func TestNodeWalk(t *testing.T) {
	root, a, _, _ := newTestTree()
	var names []string
	root.WalkDown(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"root", "a", "c", "b"}, names)

	names = nil
	root.WalkDown(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return n != Node(a)
	})
	assert.Equal(t, []string{"root", "a", "b"}, names)

	names = nil
	root.WalkDownPost(func(n Node) bool { return Continue }, func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"c", "a", "b", "root"}, names)

	names = nil
	a.WalkUpParent(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"root"}, names)
}

func TestNodeDelete(t *testing.T) {
	root, a, b, c := newTestTree()
	assert.True(t, root.DeleteChild(a))
	assert.Nil(t, a.This)
	assert.Nil(t, c.This)
	assert.Equal(t, 1, root.NumChildren())
	assert.False(t, root.DeleteChildAt(5))

	assert.True(t, root.RemoveChild(b))
	assert.NotNil(t, b.This)
	assert.Nil(t, b.Parent)
	assert.False(t, root.HasChildren())
}

func TestNodeMoveToParent(t *testing.T) {
	root, a, b, _ := newTestTree()
	MoveToParent(b, a)
	assert.Equal(t, 1, root.NumChildren())
	assert.Equal(t, Node(a), b.Parent)
	assert.Equal(t, 1, b.IndexInParent())
}

func TestNodeClone(t *testing.T) {
	root, _, b, _ := newTestTree()
	cl := root.Clone().(*testNode)
	assert.Equal(t, "root", cl.Name)
	assert.Equal(t, 2, cl.NumChildren())
	cb := cl.Child(1).(*testNode)
	assert.Equal(t, "b", cb.Name)
	assert.Equal(t, 2, cb.Value)
	assert.Equal(t, []int{1, 2}, cb.Values)
	cb.Values[0] = 9
	assert.Equal(t, 1, b.Values[0])
	assert.Equal(t, Node(cl), cb.Parent)
	assert.Equal(t, 3, cl.Child(0).AsTree().Child(0).(*testNode).Value)
}
