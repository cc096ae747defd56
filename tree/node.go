// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the ownership tree that scene nodes are
// built on, centered on the [Node] interface and the [NodeBase]
// type that all nodes embed.
package tree

// Node is an interface that all tree nodes satisfy. The core functionality
// of a tree node is defined on [NodeBase], and all higher-level node types
// must embed it. This interface only contains the tree functionality that
// higher-level types may need to override. You can call [Node.AsTree]
// to get the [NodeBase] of a Node and access the core tree functionality.
type Node interface {

	// AsTree returns the [NodeBase] of this Node.
	AsTree() *NodeBase

	// Init is called once when the node is first initialized,
	// before it is added to the tree.
	Init()

	// OnAdd is called when the node is added to a parent.
	OnAdd()

	// Destroy recursively deletes and destroys the node and all
	// of its children. Node types that implement it must call
	// [NodeBase.Destroy] at the end of their implementation.
	Destroy()

	// CopyFieldsFrom copies the fields of the node from the given node.
	// By default it is [NodeBase.CopyFieldsFrom], which does a deep copy
	// of all fields without a `copier:"-"` struct tag. Custom
	// implementations must call [NodeBase.CopyFieldsFrom] first.
	CopyFieldsFrom(from Node)
}

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)
