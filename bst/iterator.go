// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"iter"

	"github.com/bitmark-inc/bintree/fault"
)

// Cursor - a position in the tree used for in-order traversal
//
// the zero value is the end cursor.  Two cursors are equal when they
// refer to the same node, so == can be used as well as Equal
type Cursor[K, V any] struct {
	node *Node[K, V]
}

// Begin - cursor at the node with the lowest key, or end if the tree
// is empty
func (tree *Tree[K, V]) Begin() Cursor[K, V] {
	return Cursor[K, V]{node: tree.root.first()}
}

// End - the cursor after the highest key
func (tree *Tree[K, V]) End() Cursor[K, V] {
	return Cursor[K, V]{}
}

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node[K, V]) Next() *Node[K, V] {
	if nil != p.right {
		return p.right.first()
	}
	up := p.up
	for nil != up && p == up.right {
		p = up
		up = p.up
	}
	return up
}

// IsEnd - true if the cursor is past the last node
func (c Cursor[K, V]) IsEnd() bool {
	return nil == c.node
}

// Equal - true if both cursors are at the same node or both are at
// the end
func (c Cursor[K, V]) Equal(other Cursor[K, V]) bool {
	return c.node == other.node
}

// Next - advance to the in-order successor
//
// advancing the end cursor is an error by the caller and panics
func (c Cursor[K, V]) Next() Cursor[K, V] {
	if nil == c.node {
		panic(fault.ErrCursorAtEnd)
	}
	return Cursor[K, V]{node: c.node.Next()}
}

// Key - key of the node at the cursor
func (c Cursor[K, V]) Key() K {
	if nil == c.node {
		panic(fault.ErrCursorAtEnd)
	}
	return c.node.key
}

// Value - value of the node at the cursor
func (c Cursor[K, V]) Value() V {
	if nil == c.node {
		panic(fault.ErrCursorAtEnd)
	}
	return c.node.value
}

// SetValue - overwrite the value of the node at the cursor
func (c Cursor[K, V]) SetValue(value V) {
	if nil == c.node {
		panic(fault.ErrCursorAtEnd)
	}
	c.node.value = value
}

// Node - the node at the cursor, nil at the end
func (c Cursor[K, V]) Node() *Node[K, V] {
	return c.node
}

// All - iterate over all key/value pairs in ascending key order
//
// the tree must not be modified during the iteration except by
// changing values
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for c := tree.Begin(); !c.IsEnd(); c = c.Next() {
			if !yield(c.node.key, c.node.value) {
				return
			}
		}
	}
}
