// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/bintree/counter"
	"github.com/bitmark-inc/bintree/generator"
	"github.com/bitmark-inc/logger"
)

// at most one progress line per interval
const (
	progressInterval = 2 * time.Second
	progressBurst    = 1
)

// items read between counter updates
const readBatch = 256

// Lookup - result of a single timed Get
type Lookup struct {
	Value   string
	Found   bool
	Elapsed time.Duration
}

// Populate - insert iterations random keys with random values of
// the given length
//
// ops is advanced once per insert so that a reporter can follow the
// progress, it may be nil
func Populate(m Map, gen *generator.Generator, iterations int, length int, ops *counter.Counter, log *logger.L) error {
	limiter := rate.NewLimiter(rate.Every(progressInterval), progressBurst)
	for i := 0; i < iterations; i += 1 {
		if err := m.Put(gen.Key(), gen.String(length)); nil != err {
			log.Errorf("%s: put: %d failed: %s", m.Name(), i, err)
			return err
		}
		if nil != ops {
			ops.Increment()
		}
		if limiter.Allow() {
			log.Debugf("%s: populated: %d of %d", m.Name(), i+1, iterations)
		}
	}
	log.Infof("%s: populated with: %d items", m.Name(), m.Len())
	return nil
}

// ReadAll - read every value back, returns the number of items seen
//
// ops is advanced in batches of readBatch items
func ReadAll(m Map, ops *counter.Counter) int {
	n := 0
	pending := uint64(0)
	m.Range(func(key uint64, value string) bool {
		n += 1
		pending += 1
		if readBatch == pending && nil != ops {
			ops.Add(pending)
			pending = 0
		}
		return true
	})
	if 0 != pending && nil != ops {
		ops.Add(pending)
	}
	return n
}

// TimeLookup - time a single Get
func TimeLookup(m Map, key uint64) Lookup {
	start := time.Now()
	value, found := m.Get(key)
	return Lookup{
		Value:   value,
		Found:   found,
		Elapsed: time.Since(start),
	}
}
