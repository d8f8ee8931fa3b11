// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Remove - removes a specific item from the tree
//
// returns the value of the removed node and true, or false if the key
// was not present, in which case the tree is not changed.  Height is
// not adjusted.
func (tree *Tree[K, V]) Remove(key K) (V, bool) {
	q := tree.search(key)
	if nil == q {
		var zero V
		return zero, false
	}
	value := q.value // preserve the value part

	if nil == q.up && nil == q.left && nil == q.right {
		// the only node
		tree.root = nil
	} else {
		tree.replace(q, splice(q))
	}

	tree.freeNode(q) // return deleted node to pool
	tree.count -= 1
	return value, true
}

// internal: detach the node that will take the place of q
//
// q has no right sub-tree: its left child (possibly nil) moves up.
// Otherwise the in-order successor r (leftmost node of the right
// sub-tree, so r.left is nil) is cut out, its right child taking r's
// old place, and r adopts both children of q.
func splice[K, V any](q *Node[K, V]) *Node[K, V] {
	if nil == q.right {
		return q.left
	}

	r := q.right
	for nil != r.left {
		r = r.left
	}

	if r != q.right {
		// cut out the successor and glue the hole
		r.up.left = r.right
		if nil != r.right {
			r.right.up = r.up
		}
		// steal the right sub-tree
		r.right = q.right
		r.right.up = r
	}

	// steal the left sub-tree
	r.left = q.left
	if nil != r.left {
		r.left.up = r
	}
	return r
}

// internal: put r into the slot that currently holds q
//
// the slot is chosen by identity of the parent's child links
func (tree *Tree[K, V]) replace(q *Node[K, V], r *Node[K, V]) {
	up := q.up
	if nil != r {
		r.up = up
	}
	switch {
	case nil == up:
		tree.root = r
	case q == up.left:
		up.left = r
	case q == up.right:
		up.right = r
	default:
		panic("bst: parent does not link to child")
	}
}
