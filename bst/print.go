// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"
	"strings"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// width of the key column used by WriteTo
const keyColumnWidth = 12

// Print - display an ASCII graphic representation of the tree
//
// the right sub-tree is drawn above a node and the left sub-tree
// below it; returns the number of levels, which is the real height
// plus one for a non-empty tree
func (tree *Tree[K, V]) Print(w io.Writer, printData bool) int {
	return printTree(w, tree.root, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func printTree[K, V any](w io.Writer, tree *Node[K, V], prefix string, br branch, printData bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != tree.up {
		up = tree.up.key
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v\n", tree.key, tree.value, up)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", tree.key, up)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}

// WriteTo - write one "key:value" line per node in ascending key
// order, an empty tree writes nothing
func (tree *Tree[K, V]) WriteTo(w io.Writer) (int64, error) {
	total := int64(0)
	for c := tree.Begin(); !c.IsEnd(); c = c.Next() {
		n, err := fmt.Fprintf(w, "%-*v:%v\n", keyColumnWidth, c.node.key, c.node.value)
		total += int64(n)
		if nil != err {
			return total, err
		}
	}
	return total, nil
}

// String - the WriteTo rendering as a string
func (tree *Tree[K, V]) String() string {
	var b strings.Builder
	_, _ = tree.WriteTo(&b)
	return b.String()
}
