// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
)

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root      *Node[K, V]
	compare   func(K, K) int
	count     int
	height    int
	pool      *Node[K, V] // linked list of reclaimed nodes
	freeNodes int         // number of nodes in the pool
}

// New - create an initially empty tree ordered by the natural order
// of the key type
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc - create an initially empty tree ordered by compare
//
// compare(a, b) must return a negative number when a < b, zero when
// a == b and a positive number when a > b, and must be a strict total
// order
func NewFunc[K, V any](compare func(a K, b K) int) *Tree[K, V] {
	if nil == compare {
		panic("bst: nil compare function")
	}
	return &Tree[K, V]{
		root:    nil,
		compare: compare,
		count:   0,
		height:  0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Height - the deepest insertion depth seen since the last Balance
//
// the root is at depth zero; Remove never lowers this value so it
// is an upper bound on the real height
func (tree *Tree[K, V]) Height() int {
	return tree.height
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Destroy - release all nodes
//
// the height high-water mark is kept, only Balance resets it
func (tree *Tree[K, V]) Destroy() {
	tree.root = nil
	tree.count = 0
	tree.pool = nil
	tree.freeNodes = 0
}

// Clone - deep copy of the tree
//
// the copy has its own nodes with parent pointers set up inside the
// copy, so changes to either tree are not visible in the other
func (tree *Tree[K, V]) Clone() *Tree[K, V] {
	return &Tree[K, V]{
		root:    clone(tree.root, nil),
		compare: tree.compare,
		count:   tree.count,
		height:  tree.height,
	}
}

// internal: copy a sub-tree below a new parent
func clone[K, V any](p *Node[K, V], up *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}
	n := &Node[K, V]{
		up:    up,
		key:   p.key,
		value: p.value,
	}
	n.left = clone(p.left, n)
	n.right = clone(p.right, n)
	return n
}

// Move - transfer all nodes to a new tree leaving this one empty
func (tree *Tree[K, V]) Move() *Tree[K, V] {
	moved := &Tree[K, V]{
		root:    tree.root,
		compare: tree.compare,
		count:   tree.count,
		height:  tree.height,
	}
	tree.root = nil
	tree.count = 0
	tree.height = 0
	return moved
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Left - return the left child of a node
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - return the right child of a node
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Depth - get the depth of a node
func (p *Node[K, V]) Depth() int {
	count := 0
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
