// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package benchmark

import (
	"fmt"
	"strconv"

	"github.com/NVIDIA/sortedmap"
	"github.com/google/btree"
	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/bintree/bst"
	"github.com/bitmark-inc/bintree/fault"
)

// names of the maps
const (
	TreeName   = "bst"
	BTreeName  = "btree"
	LLRBName   = "llrb"
	CacheName  = "cache"
	NativeName = "map"
)

//go:generate mockgen -destination=mocks/map.go -package=mocks github.com/bitmark-inc/bintree/benchmark Map

// Map - a key/value store that can be benchmarked
type Map interface {
	Name() string
	Put(key uint64, value string) error
	Get(key uint64) (string, bool)
	Len() int
	Range(fn func(key uint64, value string) bool)
}

// BaselineNames - all maps that can be compared with the tree
func BaselineNames() []string {
	return []string{BTreeName, LLRBName, CacheName, NativeName}
}

// NewBaseline - create an empty map by name
func NewBaseline(name string) (Map, error) {
	switch name {
	case TreeName:
		return NewTreeMap(), nil
	case BTreeName:
		return NewBTreeMap(), nil
	case LLRBName:
		return NewLLRBMap(), nil
	case CacheName:
		return NewCacheMap(), nil
	case NativeName:
		return NewNativeMap(), nil
	default:
		return nil, fmt.Errorf("%w: %q", fault.ErrUnknownBaseline, name)
	}
}

// TreeMap - the binary search tree
type TreeMap struct {
	tree *bst.Tree[uint64, string]
}

// NewTreeMap - empty tree
func NewTreeMap() *TreeMap {
	return &TreeMap{
		tree: bst.New[uint64, string](),
	}
}

// Tree - the underlying tree
func (m *TreeMap) Tree() *bst.Tree[uint64, string] {
	return m.tree
}

// Name - for reports
func (m *TreeMap) Name() string { return TreeName }

// Put - insert or overwrite
func (m *TreeMap) Put(key uint64, value string) error {
	m.tree.Insert(key, value)
	return nil
}

// Get - lookup a key
func (m *TreeMap) Get(key uint64) (string, bool) {
	return m.tree.Get(key)
}

// Len - number of items
func (m *TreeMap) Len() int {
	return m.tree.Count()
}

// Range - visit items in ascending key order until fn returns false
func (m *TreeMap) Range(fn func(key uint64, value string) bool) {
	for key, value := range m.tree.All() {
		if !fn(key, value) {
			return
		}
	}
}

// degree of the B-tree nodes
const btreeDegree = 32

type btreeItem struct {
	key   uint64
	value string
}

// Less - ordering for the B-tree
func (a btreeItem) Less(b btree.Item) bool {
	return a.key < b.(btreeItem).key
}

// BTreeMap - in-memory B-tree
type BTreeMap struct {
	tree *btree.BTree
}

// NewBTreeMap - empty B-tree
func NewBTreeMap() *BTreeMap {
	return &BTreeMap{
		tree: btree.New(btreeDegree),
	}
}

func (m *BTreeMap) Name() string { return BTreeName }

func (m *BTreeMap) Put(key uint64, value string) error {
	m.tree.ReplaceOrInsert(btreeItem{key: key, value: value})
	return nil
}

func (m *BTreeMap) Get(key uint64) (string, bool) {
	item := m.tree.Get(btreeItem{key: key})
	if nil == item {
		return "", false
	}
	return item.(btreeItem).value, true
}

func (m *BTreeMap) Len() int {
	return m.tree.Len()
}

func (m *BTreeMap) Range(fn func(key uint64, value string) bool) {
	m.tree.Ascend(func(i btree.Item) bool {
		item := i.(btreeItem)
		return fn(item.key, item.value)
	})
}

// LLRBMap - left leaning red-black tree
type LLRBMap struct {
	tree sortedmap.LLRBTree
}

// NewLLRBMap - empty red-black tree
func NewLLRBMap() *LLRBMap {
	return &LLRBMap{
		tree: sortedmap.NewLLRBTree(sortedmap.CompareUint64, nil),
	}
}

func (m *LLRBMap) Name() string { return LLRBName }

// Put - the red-black tree refuses duplicates so existing keys are
// patched instead
func (m *LLRBMap) Put(key uint64, value string) error {
	ok, err := m.tree.Put(key, value)
	if nil != err {
		return err
	}
	if ok {
		return nil
	}
	ok, err = m.tree.PatchByKey(key, value)
	if nil != err {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: llrb: %d", fault.ErrPatchFailed, key)
	}
	return nil
}

func (m *LLRBMap) Get(key uint64) (string, bool) {
	value, ok, err := m.tree.GetByKey(key)
	if nil != err || !ok {
		return "", false
	}
	return value.(string), true
}

func (m *LLRBMap) Len() int {
	n, err := m.tree.Len()
	if nil != err {
		return 0
	}
	return n
}

func (m *LLRBMap) Range(fn func(key uint64, value string) bool) {
	n := m.Len()
	for i := 0; i < n; i += 1 {
		key, value, ok, err := m.tree.GetByIndex(i)
		if nil != err || !ok {
			return
		}
		if !fn(key.(uint64), value.(string)) {
			return
		}
	}
}

// CacheMap - unordered in-memory cache without expiry
type CacheMap struct {
	cache *cache.Cache
}

// NewCacheMap - empty cache
func NewCacheMap() *CacheMap {
	return &CacheMap{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (m *CacheMap) Name() string { return CacheName }

func (m *CacheMap) Put(key uint64, value string) error {
	m.cache.Set(strconv.FormatUint(key, 10), value, cache.NoExpiration)
	return nil
}

func (m *CacheMap) Get(key uint64) (string, bool) {
	obj, found := m.cache.Get(strconv.FormatUint(key, 10))
	if !found {
		return "", false
	}
	return obj.(string), true
}

func (m *CacheMap) Len() int {
	return m.cache.ItemCount()
}

// Range - items are visited in no particular order
func (m *CacheMap) Range(fn func(key uint64, value string) bool) {
	for k, item := range m.cache.Items() {
		key, err := strconv.ParseUint(k, 10, 64)
		if nil != err {
			continue
		}
		if !fn(key, item.Object.(string)) {
			return
		}
	}
}

// NativeMap - the built-in map
type NativeMap struct {
	items map[uint64]string
}

// NewNativeMap - empty map
func NewNativeMap() *NativeMap {
	return &NativeMap{
		items: make(map[uint64]string),
	}
}

func (m *NativeMap) Name() string { return NativeName }

func (m *NativeMap) Put(key uint64, value string) error {
	m.items[key] = value
	return nil
}

func (m *NativeMap) Get(key uint64) (string, bool) {
	value, ok := m.items[key]
	return value, ok
}

func (m *NativeMap) Len() int {
	return len(m.items)
}

// Range - items are visited in no particular order
func (m *NativeMap) Range(fn func(key uint64, value string) bool) {
	for key, value := range m.items {
		if !fn(key, value) {
			return
		}
	}
}
