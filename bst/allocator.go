// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Node - a node in the tree
//
// left and right own their sub-trees, up is only a back reference to
// the node that owns this one and is nil for the root
type Node[K, V any] struct {
	left  *Node[K, V] // left sub-tree
	right *Node[K, V] // right sub-tree
	up    *Node[K, V] // points to parent node
	key   K           // key part for ordering
	value V           // value part for data storage
}

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *Tree[K, V]) newNode(key K, value V) *Node[K, V] {
	p := tree.pool
	if nil == p {
		if 0 != tree.freeNodes {
			panic("bst: pool corrupt")
		}
		return &Node[K, V]{
			key:   key,
			value: value,
		}
	}
	tree.pool = p.up
	p.key = key
	p.value = value
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	tree.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the pool
func (tree *Tree[K, V]) freeNode(node *Node[K, V]) {
	var zeroKey K
	var zeroValue V

	node.up = tree.pool // use as free list pointer
	node.left = nil
	node.right = nil
	node.key = zeroKey
	node.value = zeroValue
	tree.freeNodes += 1

	tree.pool = node
}

// reclaim every node of a sub-tree
//
// uses the left links as an explicit stack so that a degenerate tree
// does not need a recursion as deep as its height
func (tree *Tree[K, V]) freeTree(p *Node[K, V]) {
	for nil != p {
		if nil != p.left {
			// rotate the left child up so that p has no left child
			l := p.left
			p.left = l.right
			l.right = p
			p = l
			continue
		}
		next := p.right
		tree.freeNode(p)
		p = next
	}
}
