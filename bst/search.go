// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Find - return a cursor at the node with the given key or the end
// cursor if the key is not in the tree
func (tree *Tree[K, V]) Find(key K) Cursor[K, V] {
	return Cursor[K, V]{node: tree.search(key)}
}

// Get - return the value stored under a key
func (tree *Tree[K, V]) Get(key K) (V, bool) {
	p := tree.search(key)
	if nil == p {
		var zero V
		return zero, false
	}
	return p.value, true
}

// internal: descend from the root comparing keys
func (tree *Tree[K, V]) search(key K) *Node[K, V] {
	p := tree.root
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}
