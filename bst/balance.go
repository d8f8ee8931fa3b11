// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// ranges shorter than this are inserted in key order
const balanceThreshold = 3

// Pair - a key and its value as collected by Flatten
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Flatten - all key/value pairs in ascending key order
func (tree *Tree[K, V]) Flatten() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, tree.count)
	for c := tree.Begin(); !c.IsEnd(); c = c.Next() {
		pairs = append(pairs, Pair[K, V]{Key: c.node.key, Value: c.node.value})
	}
	return pairs
}

// Balance - rebuild the tree so that its height is close to log2(n)
//
// the pairs are collected in key order, all nodes are released to the
// pool and the tree is rebuilt by inserting the median of each range
// before the two halves on either side of it.  Height is reset and
// then reflects the rebuilt tree.  All cursors are invalidated.
func (tree *Tree[K, V]) Balance() {
	tree.height = 0
	if nil == tree.root {
		return
	}
	pairs := tree.Flatten()

	tree.freeTree(tree.root)
	tree.root = nil
	tree.count = 0

	tree.rebuild(pairs)
}

// internal: recursive median first insertion
func (tree *Tree[K, V]) rebuild(pairs []Pair[K, V]) {
	if len(pairs) < balanceThreshold {
		for _, item := range pairs {
			tree.Insert(item.Key, item.Value)
		}
		return
	}
	middle := len(pairs) / 2
	tree.Insert(pairs[middle].Key, pairs[middle].Value)
	tree.rebuild(pairs[:middle])
	tree.rebuild(pairs[middle+1:])
}
