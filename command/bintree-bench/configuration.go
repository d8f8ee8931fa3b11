// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/bintree/benchmark"
	"github.com/bitmark-inc/bintree/configuration"
	"github.com/bitmark-inc/bintree/util"
	"github.com/bitmark-inc/logger"
)

const (
	defaultLogFile  = "bintree-bench.log"
	defaultLogCount = 10          //  number of log files retained
	defaultLogSize  = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - contents of the Lua configuration file
type Configuration struct {
	Benchmark benchmark.Configuration `gluamapper:"benchmark" json:"benchmark"`
	Logging   logger.Configuration    `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// without a file name only the defaults are returned
func getConfiguration(configurationFileName string, verbose bool) (*Configuration, error) {

	options := &Configuration{
		Logging: logger.Configuration{
			Directory: filepath.Join(os.TempDir(), "bintree"),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}

	if "" != configurationFileName {
		configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}

		// relative log directory is below the configuration file
		options.Logging.Directory = util.EnsureAbsolute(filepath.Dir(configurationFileName), options.Logging.Directory)
	}

	if verbose {
		options.Logging.Console = true
	}

	if 0 == options.Benchmark.Seed {
		options.Benchmark.Seed = uint64(time.Now().UnixNano())
	}

	if err := util.EnsureDirectory(options.Logging.Directory); nil != err {
		return nil, err
	}
	return options, nil
}
