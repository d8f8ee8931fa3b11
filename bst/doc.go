// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree with parent
// pointers to allow forward iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.  A
// cursor held across an Insert, Remove or Balance must be considered
// invalid.
//
// Inserting an existing key overwrites the value in place.  The tree
// does not rebalance itself on insert; Balance flattens the tree into
// key order and rebuilds it by inserting the median of each range
// first, which gives a height close to log2(n).
//
// Height is a high-water mark of insertion depth: it grows during
// Insert, is never reduced by Remove and is only recalculated by
// Balance.
package bst
