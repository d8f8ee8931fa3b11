// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package benchmark - fill a tree with random data and time it
//
// the same workload can be replayed against other ordered and
// unordered maps so that the tree can be compared with them
package benchmark
