// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bintree/bst"
	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/script"
	"github.com/bitmark-inc/bintree/util"
)

func runScript(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.String("file")
	if "" == fileName {
		return fmt.Errorf("%w: script file", fault.ErrMissingArgument)
	}

	if !util.EnsureFileExists(fileName) {
		return fmt.Errorf("%w: script file: %q", fault.ErrNotFound, fileName)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "script: %q\n", fileName)
	}

	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()

	return execute(m, f)
}

func runRemovalDemo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return execute(m, strings.NewReader(script.RemovalDemo))
}

func runBalanceDemo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return execute(m, strings.NewReader(script.BalanceDemo))
}

// internal: parse and run a script on an empty tree
func execute(m *metadata, r io.Reader) error {
	ops, err := script.Parse(r)
	if nil != err {
		return err
	}
	m.log.Infof("operations: %d", len(ops))

	tree := bst.New[int64, string]()
	return script.Run(ops, tree, m.w, m.log)
}
