// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - line oriented scripts that drive a tree
//
// each line holds one operation followed by its arguments:
//
//	insert KEY VALUE...   add or overwrite a key, the value is the rest of the line
//	remove KEY            remove a key
//	find KEY              show the value of a key
//	list                  one key:value line per node
//	print                 draw the tree
//	height                show the recorded height
//	count                 show the number of nodes
//	balance               rebuild the tree height balanced
//	clone                 list a balanced copy of the tree
//	destroy               remove all nodes
//	check                 verify the tree structure
//
// blank lines and lines starting with '#' are ignored
package script
