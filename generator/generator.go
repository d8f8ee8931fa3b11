// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package generator - random keys and strings for filling trees
//
// every Generator owns its random source so that runs can be repeated
// from a seed and separate goroutines do not share state
package generator

import (
	"math/rand/v2"
)

// range of generated keys
const (
	MinimumKey = uint64(1)
	MaximumKey = uint64(1000000000000000) // 10^15
)

// characters used by String
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Generator - source of random keys and strings
type Generator struct {
	r *rand.Rand
}

// New - generator drawing from the given source
func New(src rand.Source) *Generator {
	return &Generator{
		r: rand.New(src),
	}
}

// NewSeeded - generator with a repeatable sequence
func NewSeeded(seed uint64) *Generator {
	return New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Key - uniformly distributed key in [MinimumKey, MaximumKey]
func (g *Generator) Key() uint64 {
	return MinimumKey + g.r.Uint64N(MaximumKey-MinimumKey+1)
}

// String - random alphanumeric string of exactly length characters
func (g *Generator) String(length int) string {
	if length <= 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[g.r.IntN(len(alphabet))]
	}
	return string(b)
}

// UniqueKeys - n distinct keys in generation order
func (g *Generator) UniqueKeys(n int) []uint64 {
	if n <= 0 {
		return nil
	}
	seen := make(map[uint64]struct{}, n)
	keys := make([]uint64, 0, n)
	for len(keys) < n {
		k := g.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}
