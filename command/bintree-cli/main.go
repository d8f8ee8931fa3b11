// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/util"
	"github.com/bitmark-inc/logger"
)

type metadata struct {
	log      *logger.L
	verbose  bool
	finalise bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "bintree-cli"
	app.Usage = "run operation scripts against a binary search tree"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " log to the console",
		},
		cli.StringFlag{
			Name:  "log-directory, l",
			Value: filepath.Join(os.TempDir(), "bintree"),
			Usage: " write log files to `DIR`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "execute a script file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "*script `FILE` to execute",
				},
			},
			Action: runScript,
		},
		{
			Name:   "demo-remove",
			Usage:  "remove nodes from a small tree",
			Action: runRemovalDemo,
		},
		{
			Name:   "demo-balance",
			Usage:  "balance a small tree",
			Action: runBalanceDemo,
		},
		{
			Name:  "version",
			Usage: "display bintree-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// start logging unless already set up by the caller
	app.Before = func(c *cli.Context) error {

		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			return nil
		}

		command := c.Args().Get(0)
		if "version" == command || "" == command {
			return nil
		}

		verbose := c.GlobalBool("verbose")
		directory := c.GlobalString("log-directory")
		if err := util.EnsureDirectory(directory); nil != err {
			return err
		}

		logging := logger.Configuration{
			Directory: directory,
			File:      app.Name + ".log",
			Size:      1048576,
			Count:     10,
			Console:   verbose,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		}
		if verbose {
			logging.Levels[logger.DefaultTag] = "debug"
		}
		if err := logger.Initialise(logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			logger.Finalise()
			return err
		}

		if verbose {
			fmt.Fprintf(c.App.ErrWriter, "log directory: %q\n", directory)
		}

		c.App.Metadata["config"] = &metadata{
			log:      logger.New("script"),
			verbose:  verbose,
			finalise: true,
			e:        c.App.ErrWriter,
			w:        c.App.Writer,
		}
		return nil
	}

	// stop logging if it was started here
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || !m.finalise {
			return nil
		}
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	return app
}
