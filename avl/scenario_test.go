// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

func build(keys ...int) *avl.Node[int] {
	var root *avl.Node[int]
	for _, k := range keys {
		root = avl.Insert(root, k)
	}
	return root
}

func inOrder(root *avl.Node[int]) []int {
	keys := []int{}
	root.Walk(func(p *avl.Node[int]) bool {
		keys = append(keys, p.Key())
		return true
	})
	return keys
}

// structural fingerprint: keys, shape and stored heights
func shape(root *avl.Node[int]) string {
	var b bytes.Buffer
	avl.Print(&b, root, true)
	return b.String()
}

func TestInsertRotations(t *testing.T) {
	root := build(10, 20, 30, 40, 50, 25)

	assert.Equal(t, 30, root.Key(), "wrong root key")
	assert.Equal(t, 3, avl.Height(root), "wrong height")
	assert.Equal(t, []int{10, 20, 25, 30, 40, 50}, inOrder(root), "wrong order")
	assert.NoError(t, avl.Check(root), "inconsistent tree")

	expected := "Root: 30\n" +
		"\tL--- 20\n" +
		"\t\tL--- 10\n" +
		"\t\tR--- 25\n" +
		"\tR--- 40\n" +
		"\t\tR--- 50\n"
	assert.Equal(t, expected, avl.String(root), "wrong dump")
}

func TestMinimumKey(t *testing.T) {
	root := build(50, 30, 20, 40, 70, 60, 80)

	n, err := avl.MinValueNode(root)
	assert.NoError(t, err, "minimum of non-empty tree")
	assert.Equal(t, 20, n.Key(), "wrong minimum")

	n, err = avl.MaxValueNode(root)
	assert.NoError(t, err, "maximum of non-empty tree")
	assert.Equal(t, 80, n.Key(), "wrong maximum")
}

func TestDeleteTwoChildNode(t *testing.T) {
	root := build(10, 20, 30, 40, 50, 25)
	node := root

	root = avl.Delete(root, 30)

	assert.Equal(t, []int{10, 20, 25, 40, 50}, inOrder(root), "wrong order")
	assert.NoError(t, avl.Check(root), "inconsistent tree")
	assert.Same(t, node, root, "root node was replaced")
	assert.Equal(t, 40, root.Key(), "successor key not promoted")
}

func TestEmptyTree(t *testing.T) {
	var root *avl.Node[int]

	assert.Equal(t, 0, avl.Height(root), "height of empty tree")
	assert.Equal(t, 0, avl.Balance(root), "balance of empty tree")
	assert.Equal(t, 0, root.Height(), "height method on nil node")
	assert.NoError(t, avl.Check(root), "empty tree is consistent")
	assert.Nil(t, avl.Delete(root, 1), "delete from empty tree")
	assert.Nil(t, avl.Search(root, 1), "search in empty tree")
	assert.Equal(t, "", avl.String(root), "dump of empty tree")

	n, err := avl.MinValueNode(root)
	assert.Nil(t, n, "minimum node of empty tree")
	assert.Equal(t, fault.ErrEmptyTree, err, "wrong error")

	_, err = avl.MaxValueNode(root)
	assert.Equal(t, fault.ErrEmptyTree, err, "wrong error")

	root = avl.Insert(root, 7)
	assert.Equal(t, 1, avl.Height(root), "height of single node")
	assert.Nil(t, root.Left(), "leaf has left child")
	assert.Nil(t, root.Right(), "leaf has right child")

	root, removed := avl.DeleteReport(root, 7)
	assert.True(t, removed, "last key not reported removed")
	assert.Nil(t, root, "tree not empty after last delete")
}

func TestDuplicateInsertIsNoOp(t *testing.T) {
	root := build(8, 4, 12, 2, 6, 10, 14, 1)
	before := shape(root)

	root, added := avl.InsertReport(root, 6)
	assert.False(t, added, "duplicate reported as added")
	assert.Equal(t, before, shape(root), "duplicate insert changed the tree")

	root = avl.Insert(root, 1)
	assert.Equal(t, before, shape(root), "duplicate insert changed the tree")
}

func TestMissingDeleteIsNoOp(t *testing.T) {
	root := build(8, 4, 12, 2, 6, 10, 14, 1)
	before := shape(root)
	node := root

	root, removed := avl.DeleteReport(root, 5)
	assert.False(t, removed, "missing key reported as removed")
	assert.Same(t, node, root, "root changed")
	assert.Equal(t, before, shape(root), "missing delete changed the tree")

	root = avl.Delete(root, 100)
	assert.Equal(t, before, shape(root), "missing delete changed the tree")
}

func TestRoundTrip(t *testing.T) {
	root := build(15, 3, 27, 9, 21, 33, 1, 5)
	keys := inOrder(root)

	for _, k := range []int{0, 2, 4, 10, 16, 40} {
		root = avl.Insert(root, k)
		assert.NoError(t, avl.Check(root), "inconsistent tree after insert")
		root = avl.Delete(root, k)
		assert.NoError(t, avl.Check(root), "inconsistent tree after delete")
		assert.Equal(t, keys, inOrder(root), "key set changed")
	}
}

func TestRotationCases(t *testing.T) {
	cases := []struct {
		name   string
		insert []int
		delete []int
		root   int
	}{
		{"insert left-left", []int{3, 2, 1}, nil, 2},
		{"insert left-right", []int{3, 1, 2}, nil, 2},
		{"insert right-right", []int{1, 2, 3}, nil, 2},
		{"insert right-left", []int{1, 3, 2}, nil, 2},
		{"delete left-left", []int{4, 2, 5, 1}, []int{5}, 2},
		{"delete left-right", []int{4, 2, 5, 3}, []int{5}, 3},
		{"delete left balanced", []int{4, 2, 5, 1, 3}, []int{5}, 2},
		{"delete right-right", []int{2, 1, 4, 5}, []int{1}, 4},
		{"delete right-left", []int{2, 1, 4, 3}, []int{1}, 3},
		{"delete right balanced", []int{2, 1, 4, 3, 5}, []int{1}, 4},
	}

	for _, c := range cases {
		root := build(c.insert...)
		for _, k := range c.delete {
			root = avl.Delete(root, k)
		}
		assert.NoError(t, avl.Check(root), "%s: inconsistent tree", c.name)
		assert.Equal(t, c.root, root.Key(), "%s: wrong root", c.name)
	}
}

func TestRandomOperations(t *testing.T) {
	r := rand.New(rand.NewSource(1234))
	present := make(map[int]struct{})
	var root *avl.Node[int]

	for i := 0; i < 20000; i += 1 {
		k := r.Intn(500)
		_, exists := present[k]
		if 0 == r.Intn(3) {
			var removed bool
			root, removed = avl.DeleteReport(root, k)
			if removed != exists {
				t.Fatalf("delete: %d  removed: %v  present: %v", k, removed, exists)
			}
			delete(present, k)
		} else {
			var added bool
			root, added = avl.InsertReport(root, k)
			if added == exists {
				t.Fatalf("insert: %d  added: %v  present: %v", k, added, exists)
			}
			present[k] = struct{}{}
		}
		if err := avl.Check(root); nil != err {
			t.Fatalf("operation: %d  key: %d  error: %s", i, k, err)
		}
	}

	keys := inOrder(root)
	if len(keys) != len(present) {
		t.Fatalf("key count: actual: %d  expected: %d", len(keys), len(present))
	}
	for _, k := range keys {
		if _, ok := present[k]; !ok {
			t.Fatalf("unexpected key: %d", k)
		}
	}
}
