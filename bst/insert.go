// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Insert - insert a new node into the tree or overwrite the value of
// an existing node with the same key
//
// returns true if a node was added
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	var parent *Node[K, V]
	p := tree.root
	depth := 0
	direction := 0

	for nil != p {
		direction = tree.compare(key, p.key)
		if 0 == direction {
			p.value = value
			return false
		}
		parent = p
		depth += 1
		if depth > tree.height {
			tree.height = depth
		}
		if direction < 0 {
			p = p.left
		} else {
			p = p.right
		}
	}

	n := tree.newNode(key, value)
	n.up = parent
	switch {
	case nil == parent:
		tree.root = n
	case direction < 0:
		parent.left = n
	default:
		parent.right = n
	}
	tree.count += 1
	return true
}
