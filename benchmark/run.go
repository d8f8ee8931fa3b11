// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/bintree/counter"
	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/generator"
	"github.com/bitmark-inc/logger"
)

// the key planted in the tree after populating
const (
	ProbeKey   = uint64(424242424242424242)
	ProbeValue = "These are indeed the droids you are looking for."
)

// Configuration - parameters of a benchmark run
type Configuration struct {
	Iterations   int      `gluamapper:"iterations" json:"iterations"`
	StringLength int      `gluamapper:"string_length" json:"string_length"`
	ReadToo      bool     `gluamapper:"read_too" json:"read_too"`
	Seed         uint64   `gluamapper:"seed" json:"seed"`
	Baselines    []string `gluamapper:"baselines" json:"baselines"`
}

// Validate - check the run parameters
func (c *Configuration) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: %d", fault.ErrInvalidIterations, c.Iterations)
	}
	if c.StringLength <= 0 {
		return fmt.Errorf("%w: %d", fault.ErrInvalidStringLength, c.StringLength)
	}
	for _, name := range c.Baselines {
		if _, err := NewBaseline(name); nil != err {
			return err
		}
	}
	return nil
}

// Timing - bulk operation timings for one map
type Timing struct {
	Name     string
	Items    int
	Populate time.Duration
	ReadAll  time.Duration
}

// Report - everything measured by Run
type Report struct {
	Configuration Configuration

	Tree         Timing
	LookupBefore Lookup
	LookupAfter  Lookup
	HeightBefore int
	HeightAfter  int
	Balance      time.Duration

	CopyHeight         int
	CopyBalancedHeight int

	Baselines []Timing
}

// Run - populate a tree, time the probe lookup either side of a
// balance, balance a copy, then replay the workload on each baseline
//
// every map is filled from a generator seeded with the configured
// seed so that all of them receive the same keys and values
func Run(config *Configuration, ops *counter.Counter, log *logger.L) (*Report, error) {

	if err := config.Validate(); nil != err {
		return nil, err
	}

	report := &Report{
		Configuration: *config,
	}

	m := NewTreeMap()
	timing, err := workload(m, config, ops, log)
	if nil != err {
		return nil, err
	}

	tree := m.Tree()
	tree.Insert(ProbeKey, ProbeValue)
	timing.Items = tree.Count()
	report.Tree = timing

	copied := tree.Clone()

	report.LookupBefore = TimeLookup(m, ProbeKey)
	if err := verifyProbe(report.LookupBefore); nil != err {
		return nil, err
	}

	report.HeightBefore = tree.Height()
	start := time.Now()
	tree.Balance()
	report.Balance = time.Since(start)
	report.HeightAfter = tree.Height()
	log.Infof("balanced: height: %d -> %d in %s", report.HeightBefore, report.HeightAfter, report.Balance)

	report.LookupAfter = TimeLookup(m, ProbeKey)
	if err := verifyProbe(report.LookupAfter); nil != err {
		return nil, err
	}

	report.CopyHeight = copied.Height()
	copied.Balance()
	report.CopyBalancedHeight = copied.Height()

	if err := tree.Check(); nil != err {
		log.Criticalf("tree check failed: %s", err)
		return nil, err
	}
	if err := copied.Check(); nil != err {
		log.Criticalf("copy check failed: %s", err)
		return nil, err
	}

	for _, name := range config.Baselines {
		b, err := NewBaseline(name)
		if nil != err {
			return nil, err
		}
		timing, err := workload(b, config, ops, log)
		if nil != err {
			return nil, err
		}
		report.Baselines = append(report.Baselines, timing)
	}

	return report, nil
}

// internal: populate and optionally read back one map
func workload(m Map, config *Configuration, ops *counter.Counter, log *logger.L) (Timing, error) {
	gen := generator.NewSeeded(config.Seed)

	timing := Timing{
		Name: m.Name(),
	}

	start := time.Now()
	if err := Populate(m, gen, config.Iterations, config.StringLength, ops, log); nil != err {
		return timing, err
	}
	timing.Populate = time.Since(start)

	if config.ReadToo {
		start = time.Now()
		n := ReadAll(m, ops)
		timing.ReadAll = time.Since(start)
		log.Debugf("%s: read: %d items in %s", m.Name(), n, timing.ReadAll)
	}
	timing.Items = m.Len()
	return timing, nil
}

// internal: the probe must be found with its value intact
func verifyProbe(l Lookup) error {
	if !l.Found {
		return fault.ErrProbeKeyNotFound
	}
	if ProbeValue != l.Value {
		return fmt.Errorf("%w: %q", fault.ErrProbeValueMismatch, l.Value)
	}
	return nil
}
