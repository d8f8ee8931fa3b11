// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/bintree/bst"
	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/logger"
)

// Run - apply operations to a tree writing any results to w
//
// stops at the first failed check or write error
func Run(ops []Operation, tree *bst.Tree[int64, string], w io.Writer, log *logger.L) error {
	for _, op := range ops {
		log.Debugf("line: %d  %s %d %q", op.Line, op.Verb, op.Key, op.Value)
		if err := apply(op, tree, w, log); nil != err {
			log.Errorf("line: %d  %s failed: %s", op.Line, op.Verb, err)
			return fmt.Errorf("line %d: %w", op.Line, err)
		}
	}
	return nil
}

// internal: a single operation
func apply(op Operation, tree *bst.Tree[int64, string], w io.Writer, log *logger.L) error {
	var err error

	switch op.Verb {

	case Insert:
		if !tree.Insert(op.Key, op.Value) {
			log.Debugf("overwrote key: %d", op.Key)
		}

	case Remove:
		if _, removed := tree.Remove(op.Key); removed {
			_, err = fmt.Fprintf(w, "removed: %d\n", op.Key)
		} else {
			_, err = fmt.Fprintf(w, "not found: %d\n", op.Key)
		}

	case Find:
		if value, found := tree.Get(op.Key); found {
			_, err = fmt.Fprintf(w, "found: %d:%s\n", op.Key, value)
		} else {
			_, err = fmt.Fprintf(w, "not found: %d\n", op.Key)
		}

	case List:
		_, err = tree.WriteTo(w)

	case Print:
		tree.Print(w, true)

	case Height:
		_, err = fmt.Fprintf(w, "height: %d\n", tree.Height())

	case Count:
		_, err = fmt.Fprintf(w, "count: %d\n", tree.Count())

	case Balance:
		before := tree.Height()
		tree.Balance()
		log.Infof("balanced: height: %d -> %d", before, tree.Height())

	case Clone:
		dup := tree.Clone()
		dup.Balance()
		if _, err = fmt.Fprintf(w, "clone: count: %d  height: %d\n", dup.Count(), dup.Height()); nil != err {
			return err
		}
		_, err = dup.WriteTo(w)

	case Destroy:
		tree.Destroy()

	case Check:
		if err = tree.Check(); nil != err {
			return err
		}
		_, err = fmt.Fprintf(w, "check: ok\n")

	default:
		return fmt.Errorf("%w: %q", fault.ErrUnknownOperation, op.Verb)
	}
	return err
}
