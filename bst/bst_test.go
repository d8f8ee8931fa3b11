// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2021 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/bitmark-inc/bintree/bst"
)

type stringItem struct {
	s string
}

func (s stringItem) String() string {
	return s.s
}

func compareItems(a stringItem, b stringItem) int {
	return strings.Compare(a.s, b.s)
}

func TestListShort(t *testing.T) {
	addList := []stringItem{
		{"4201"}, {"1254"}, {"8608"}, {"1639"}, {"8950"},
		{"6740"},
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []stringItem{
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1247"},
		{"1250"}, {"1264"}, {"1258"}, {"1255"}, {"2247"},
		{"2004"}, {"2194"}, {"2644"}, {"2169"}, {"8133"},
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []stringItem{
		{"8133"}, {"2136"}, {"9651"}, {"4079"}, {"1042"},
		{"3579"}, {"3630"}, {"1427"}, {"5843"}, {"9549"},
		{"5433"}, {"1274"}, {"9034"}, {"4724"}, {"6179"},
		{"5072"}, {"9272"}, {"4030"}, {"4205"}, {"3363"},
		{"8582"}, {"1720"}, {"0506"}, {"8382"}, {"6774"},
		{"3088"}, {"2329"}, {"9039"}, {"6703"}, {"1027"},
		{"7297"}, {"6063"}, {"4156"}, {"1005"}, {"0982"},
		{"3065"}, {"2553"}, {"0795"}, {"8426"}, {"2377"},
		{"0877"}, {"9085"}, {"5918"}, {"2581"}, {"7797"},
		{"3028"}, {"5880"}, {"3061"}, {"5212"}, {"6539"},
		{"1320"}, {"3581"}, {"3334"}, {"4348"}, {"2934"},
		{"8342"}, {"8814"}, {"8736"}, {"1353"}, {"3082"},
		{"9620"}, {"0056"}, {"5063"}, {"1245"}, {"7066"},
		{"7435"}, {"2999"}, {"7803"}, {"1303"}, {"1697"},
		{"0017"}, {"4314"}, {"9926"}, {"7587"}, {"2531"},
		{"8123"}, {"5693"}, {"7495"}, {"9975"}, {"5465"},
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// insert everything, then delete every prefix of the list followed
// by the remainder, checking the tree after each phase
func doList(t *testing.T, addList []stringItem) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[stringItem]struct{})

		tree := bst.NewFunc[stringItem, string](compareItems)
		for _, key := range addList {
			tree.Insert(key, "data:"+key.String())
		}

		if err := tree.Check(); nil != err {
			var b bytes.Buffer
			depth := tree.Print(&b, true)
			t.Logf("depth: %d\n%s", depth, b.String())
			t.Fatalf("add: inconsistent tree: %s", err)
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			dv, removed := tree.Remove(key)
			ev := "data:" + key.String()
			if !removed || dv != ev {
				t.Fatalf("delete returned: %q, %v  expected: %q", dv, removed, ev)
			}
		}

		if err := tree.Check(); nil != err {
			var b bytes.Buffer
			depth := tree.Print(&b, true)
			t.Logf("depth: %d\n%s", depth, b.String())
			t.Fatalf("delete: inconsistent tree: %s", err)
		}

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			dv, removed := tree.Remove(key)
			ev := "data:" + key.String()
			if !removed || dv != ev {
				t.Fatalf("delete returned: %q, %v  expected: %q", dv, removed, ev)
			}
		}
		if !tree.IsEmpty() || 0 != tree.Count() {
			var b bytes.Buffer
			depth := tree.Print(&b, true)
			t.Logf("depth: %d\n%s", depth, b.String())
			t.Fatalf("remainder: remaining nodes: %d", tree.Count())
		}
	}
}

// traverse the tree with a cursor and with All to check iteration
func doTraverse(t *testing.T, addList []stringItem) {

	unique := make(map[string]struct{})
	tree := bst.NewFunc[stringItem, string](compareItems)
	for _, key := range addList {
		unique[key.String()] = struct{}{}
		tree.Insert(key, "data:"+key.String())
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	if len(expected) != tree.Count() {
		t.Fatalf("count: %d  expected: %d", tree.Count(), len(expected))
	}

	i := 0
	for c := tree.Begin(); c != tree.End(); c = c.Next() {
		if i >= len(expected) {
			t.Fatalf("cursor went past: %d items", len(expected))
		}
		if c.Key().String() != expected[i] {
			t.Errorf("cursor: %d: actual: %q  expected: %q", i, c.Key(), expected[i])
		}
		if c.Value() != "data:"+expected[i] {
			t.Errorf("cursor: %d: value: %q", i, c.Value())
		}
		i += 1
	}
	if i != len(expected) {
		t.Errorf("cursor stopped after: %d  expected: %d", i, len(expected))
	}

	i = 0
	for key, value := range tree.All() {
		if key.String() != expected[i] || value != "data:"+expected[i] {
			t.Errorf("all: %d: actual: %q -> %q  expected: %q", i, key, value, expected[i])
		}
		i += 1
	}
	if i != len(expected) {
		t.Errorf("all stopped after: %d  expected: %d", i, len(expected))
	}
}

// keys of a tree in traversal order
func keysOf[V any](tree *bst.Tree[int, V]) []int {
	keys := []int{}
	for key := range tree.All() {
		keys = append(keys, key)
	}
	return keys
}

func makeRemovalTree() *bst.Tree[int, int] {
	tree := bst.New[int, int]()
	for _, k := range []int{10, 6, 16, 14, 18, 4, 2, 19} {
		tree.Insert(k, 1)
	}
	return tree
}

func TestRemoveAbsentAndOneChild(t *testing.T) {
	tree := makeRemovalTree()

	if 3 != tree.Height() {
		t.Errorf("height: %d  expected: 3", tree.Height())
	}

	var before bytes.Buffer
	tree.Print(&before, true)

	if _, removed := tree.Remove(212); removed {
		t.Errorf("removed absent key 212")
	}
	var after bytes.Buffer
	tree.Print(&after, true)
	if before.String() != after.String() {
		t.Errorf("structure changed by removing absent key:\n%s\n%s", before.String(), after.String())
	}
	if 8 != tree.Count() {
		t.Errorf("count: %d  expected: 8", tree.Count())
	}

	if _, removed := tree.Remove(18); !removed {
		t.Fatalf("key 18 not removed")
	}
	if 7 != tree.Count() {
		t.Errorf("count: %d  expected: 7", tree.Count())
	}
	expected := []int{2, 4, 6, 10, 14, 16, 19}
	if actual := keysOf(tree); fmt.Sprint(actual) != fmt.Sprint(expected) {
		t.Errorf("keys: %v  expected: %v", actual, expected)
	}
	n := tree.Find(19).Node()
	if nil == n || 16 != n.Parent().Key() || n != n.Parent().Right() {
		t.Errorf("19 was not moved under 16")
	}
	if 3 != tree.Height() {
		t.Errorf("height changed by remove: %d", tree.Height())
	}
	if err := tree.Check(); nil != err {
		t.Errorf("check: %s", err)
	}
}

func TestRemoveTwoChildren(t *testing.T) {
	// successor deeper in the right sub-tree
	tree := makeRemovalTree()
	tree.Remove(10)
	if 14 != tree.Root().Key() {
		t.Errorf("root: %d  expected: 14", tree.Root().Key())
	}
	if nil != tree.Root().Parent() {
		t.Errorf("root has a parent")
	}
	if expected := []int{2, 4, 6, 14, 16, 18, 19}; fmt.Sprint(keysOf(tree)) != fmt.Sprint(expected) {
		t.Errorf("keys: %v  expected: %v", keysOf(tree), expected)
	}
	if err := tree.Check(); nil != err {
		t.Errorf("check: %s", err)
	}

	// successor is the right child itself
	tree = makeRemovalTree()
	tree.Remove(16)
	n := tree.Find(18).Node()
	if n != tree.Root().Right() || 14 != n.Left().Key() || 19 != n.Right().Key() {
		t.Errorf("18 did not replace 16")
	}
	if err := tree.Check(); nil != err {
		t.Errorf("check: %s", err)
	}

	// only a left child
	tree = makeRemovalTree()
	tree.Remove(4)
	n = tree.Find(2).Node()
	if n != tree.Find(6).Node().Left() || 6 != n.Parent().Key() {
		t.Errorf("2 did not replace 4")
	}
	if err := tree.Check(); nil != err {
		t.Errorf("check: %s", err)
	}
}

func TestRemoveRoot(t *testing.T) {
	tree := bst.New[int, string]()
	tree.Insert(5, "five")
	if v, removed := tree.Remove(5); !removed || "five" != v {
		t.Errorf("remove sole root: %q, %v", v, removed)
	}
	if !tree.IsEmpty() || !tree.Begin().IsEnd() {
		t.Errorf("tree not empty")
	}

	// root with a single left child
	tree.Insert(5, "five")
	tree.Insert(3, "three")
	tree.Remove(5)
	if 3 != tree.Root().Key() || nil != tree.Root().Parent() {
		t.Errorf("left child did not become root")
	}

	// root with a single right child
	tree.Insert(8, "eight")
	tree.Remove(3)
	if 8 != tree.Root().Key() || nil != tree.Root().Parent() {
		t.Errorf("right child did not become root")
	}
	if err := tree.Check(); nil != err {
		t.Errorf("check: %s", err)
	}
}

func TestOverwrite(t *testing.T) {
	tree := bst.New[int, string]()
	if !tree.Insert(1, "one") {
		t.Errorf("first insert did not add a node")
	}
	if tree.Insert(1, "uno") {
		t.Errorf("second insert added a node")
	}
	tree.Insert(1, "ein")
	if 1 != tree.Count() {
		t.Errorf("count: %d  expected: 1", tree.Count())
	}
	if v := tree.Find(1).Value(); "ein" != v {
		t.Errorf("value: %q  expected: %q", v, "ein")
	}
	if v, ok := tree.Get(1); !ok || "ein" != v {
		t.Errorf("get: %q, %v", v, ok)
	}
}

func TestFind(t *testing.T) {
	tree := bst.New[int, string]()
	if !tree.Find(3).IsEnd() {
		t.Errorf("find in empty tree is not end")
	}
	for i := 0; i < 20; i += 1 {
		tree.Insert(i*3, fmt.Sprintf("v%d", i))
	}
	for i := 0; i < 20; i += 1 {
		c := tree.Find(i * 3)
		if c.IsEnd() || c.Key() != i*3 || c.Value() != fmt.Sprintf("v%d", i) {
			t.Errorf("find: %d failed", i*3)
		}
		if !tree.Find(i*3 + 1).Equal(tree.End()) {
			t.Errorf("found absent key: %d", i*3+1)
		}
	}
	if _, ok := tree.Get(100); ok {
		t.Errorf("get returned absent key")
	}
}

func TestCursor(t *testing.T) {
	tree := bst.New[int, string]()
	if tree.Begin() != tree.End() {
		t.Errorf("begin of empty tree is not end")
	}
	for _, k := range []int{20, 10, 30, 5, 15, 25, 35, 12} {
		tree.Insert(k, "")
	}

	// walk from a found key up to the end
	expected := []int{12, 15, 20, 25, 30, 35}
	i := 0
	for c := tree.Find(12); !c.IsEnd(); c = c.Next() {
		if c.Key() != expected[i] {
			t.Errorf("%d: key: %d  expected: %d", i, c.Key(), expected[i])
		}
		i += 1
	}

	// values may be changed through a cursor
	c := tree.Find(25)
	c.SetValue("twenty-five")
	if v, _ := tree.Get(25); "twenty-five" != v {
		t.Errorf("set value: %q", v)
	}

	if 5 != tree.First().Key() || 35 != tree.Last().Key() {
		t.Errorf("first/last: %d/%d", tree.First().Key(), tree.Last().Key())
	}
	if 2 != tree.Find(15).Node().Depth() {
		t.Errorf("depth of 15: %d", tree.Find(15).Node().Depth())
	}

	defer func() {
		if r := recover(); nil == r {
			t.Errorf("advancing end cursor did not panic")
		}
	}()
	tree.End().Next()
}

func TestCursorKeyAtEndPanics(t *testing.T) {
	defer func() {
		if r := recover(); nil == r {
			t.Errorf("key of end cursor did not panic")
		}
	}()
	bst.New[int, int]().End().Key()
}

func TestWriteTo(t *testing.T) {
	tree := bst.New[int, string]()
	if "" != tree.String() {
		t.Errorf("empty tree rendered: %q", tree.String())
	}
	tree.Insert(10, "ten")
	tree.Insert(2, "two")
	tree.Insert(300, "three hundred")

	expected := "2           :two\n" +
		"10          :ten\n" +
		"300         :three hundred\n"

	var b bytes.Buffer
	n, err := tree.WriteTo(&b)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	if int64(len(expected)) != n || expected != b.String() {
		t.Errorf("actual: %q  expected: %q", b.String(), expected)
	}
	if expected != tree.String() {
		t.Errorf("string: %q", tree.String())
	}
}

func TestDestroy(t *testing.T) {
	tree := makeRemovalTree()
	tree.Destroy()
	if !tree.IsEmpty() || 0 != tree.Count() {
		t.Errorf("tree not empty after destroy")
	}
	if 3 != tree.Height() {
		t.Errorf("destroy changed height: %d", tree.Height())
	}
	tree.Insert(1, 1)
	if 1 != tree.Count() {
		t.Errorf("count after reuse: %d", tree.Count())
	}
}
