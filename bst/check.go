// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"

	"github.com/bitmark-inc/bintree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	return nil == checkup(tree.root, nil)
}

// internal: consistency checker
func checkup[K, V any](p *Node[K, V], up *Node[K, V]) error {
	if nil == p {
		return nil
	}
	if p.up != up {
		return fmt.Errorf("%w: at node: %v", fault.ErrParentLink, p.key)
	}
	if err := checkup(p.left, p); nil != err {
		return err
	}
	return checkup(p.right, p)
}

// Check - verify all structural invariants
//
// parent pointers, strictly ascending in-order keys, node count and
// that the recorded height is not below the real height
func (tree *Tree[K, V]) Check() error {
	if err := checkup(tree.root, nil); nil != err {
		return err
	}

	count := 0
	depth := 0
	var previous *Node[K, V]
	for p := tree.root.first(); nil != p; p = p.Next() {
		if nil != previous && tree.compare(previous.key, p.key) >= 0 {
			return fmt.Errorf("%w: %v is not below %v", fault.ErrKeyOrder, previous.key, p.key)
		}
		if d := p.Depth(); d > depth {
			depth = d
		}
		previous = p
		count += 1
	}

	if count != tree.count {
		return fmt.Errorf("%w: counted: %d  recorded: %d", fault.ErrCountMismatch, count, tree.count)
	}
	if depth > tree.height {
		return fmt.Errorf("%w: depth: %d  height: %d", fault.ErrHeightBelowDepth, depth, tree.height)
	}
	return nil
}
