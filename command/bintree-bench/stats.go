// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/bitmark-inc/bintree/counter"
	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/logger"
)

const (
	progressDelay = 100 * time.Millisecond
	statsDelay    = 5 * time.Second
	mega          = 1048576
)

// follows the operation counter on a progress bar
type progress struct {
	bar *progressbar.ProgressBar
}

func newProgress(total int64) *progress {
	return &progress{
		bar: progressbar.Default(total, "populating"),
	}
}

func (p *progress) Run(args interface{}, shutdown <-chan struct{}) {
	ops := args.(*counter.Counter)

	ticker := time.NewTicker(progressDelay)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			if ops.IsZero() {
				continue loop
			}
			_ = p.bar.Set64(int64(ops.Uint64()))
		}
	}
	_ = p.bar.Set64(int64(ops.Uint64()))
	_ = p.bar.Finish()
}

// logs memory use while the benchmark runs
type memstats struct{}

func (memstats) Run(args interface{}, shutdown <-chan struct{}) {

	log := logger.New("memory")

	ticker := time.NewTicker(statsDelay)
	defer ticker.Stop()

	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		text, err := json.Marshal(m)
		fault.PanicIfError("memstats: marshal", err)
		log.Debugf("stats: %s", text)
		a := m.Alloc / mega
		t := m.TotalAlloc / mega
		s := m.Sys / mega
		log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, s)

		select {
		case <-shutdown:
			return
		case <-ticker.C:
		}
	}
}
