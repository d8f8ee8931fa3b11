// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/bintree/background"
	"github.com/bitmark-inc/bintree/benchmark"
	"github.com/bitmark-inc/bintree/counter"
	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "baseline", HasArg: getoptions.NO_ARGUMENT, Short: 'b'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 {
		usage(program)
		return
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}
	theConfiguration, err := getConfiguration(configurationFile, len(options["verbose"]) > 0)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// positional arguments override the configuration
	switch len(arguments) {
	case 0:
		if "" == configurationFile {
			usage(program)
			exitwithstatus.Message("%s: %s", program, fault.ErrMissingArgument)
		}
	case 3:
		if err := applyArguments(&theConfiguration.Benchmark, arguments); nil != err {
			exitwithstatus.Message("%s: %s", program, err)
		}
	default:
		usage(program)
		if len(arguments) > 3 {
			exitwithstatus.Message("%s: %s", program, fault.ErrTooManyArguments)
		}
		exitwithstatus.Message("%s: %s", program, fault.ErrMissingArgument)
	}

	if len(options["baseline"]) > 0 && 0 == len(theConfiguration.Benchmark.Baselines) {
		theConfiguration.Benchmark.Baselines = benchmark.BaselineNames()
	}

	if err := theConfiguration.Benchmark.Validate(); nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %+v", theConfiguration)

	var ops counter.Counter

	processes := background.Processes{
		newProgress(totalOperations(&theConfiguration.Benchmark)),
	}
	if len(options["memory-stats"]) > 0 {
		processes = append(processes, &memstats{})
	}
	reporters := background.Start(processes, &ops)

	report, err := benchmark.Run(&theConfiguration.Benchmark, &ops, logger.New("benchmark"))

	reporters.Stop()

	if nil != err {
		fault.Criticalf("benchmark failed: %s", err)
		exitwithstatus.Message("%s: benchmark failed: %s", program, err)
	}

	fmt.Println()
	if _, err := report.WriteTo(os.Stdout); nil != err {
		exitwithstatus.Message("%s: write report: %s", program, err)
	}
}

// internal: ITERATIONS STRING-LENGTH READTOO
func applyArguments(config *benchmark.Configuration, arguments []string) error {
	iterations, err := strconv.Atoi(arguments[0])
	if nil != err {
		return fmt.Errorf("%w: %q", fault.ErrInvalidIterations, arguments[0])
	}
	length, err := strconv.Atoi(arguments[1])
	if nil != err {
		return fmt.Errorf("%w: %q", fault.ErrInvalidStringLength, arguments[1])
	}

	readToo := false
	switch arguments[2] {
	case "0":
	case "1":
		readToo = true
	default:
		return fmt.Errorf("%w: %q", fault.ErrInvalidReadToo, arguments[2])
	}

	config.Iterations = iterations
	config.StringLength = length
	config.ReadToo = readToo
	return nil
}

// internal: number of counted operations in a run
func totalOperations(config *benchmark.Configuration) int64 {
	perMap := int64(config.Iterations)
	if config.ReadToo {
		perMap *= 2
	}
	return perMap * int64(1+len(config.Baselines))
}

func usage(program string) {
	fmt.Printf("usage: %s [options] ITERATIONS STRING-LENGTH READTOO\n", program)
	fmt.Printf("       --help                -h            this message\n")
	fmt.Printf("       --version             -V            display version\n")
	fmt.Printf("       --verbose             -v            log to the console\n")
	fmt.Printf("       --config-file=FILE    -c FILE       Lua configuration file\n")
	fmt.Printf("       --baseline            -b            also time the other maps\n")
	fmt.Printf("       --memory-stats        -m            log memory statistics\n")
	fmt.Printf("  ITERATIONS                               number of random keys to insert\n")
	fmt.Printf("  STRING-LENGTH                            length of each random value\n")
	fmt.Printf("  READTOO                                  1 = also read every value back, 0 = populate only\n")
}
