// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traverse_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/traverse"
)

func build[K cmp.Ordered](keys ...K) *avl.Node[K] {
	var root *avl.Node[K]
	for _, k := range keys {
		root = avl.Insert(root, k)
	}
	return root
}

func TestMax(t *testing.T) {
	root := build(10, 20, 30, 40, 50, 25)

	m, err := traverse.Max(root)
	assert.NoError(t, err, "max of non-empty tree")
	assert.Equal(t, 50, m, "wrong maximum")
}

func TestMin(t *testing.T) {
	root := build(50, 30, 20, 40, 70, 60, 80)

	m, err := traverse.Min(root)
	assert.NoError(t, err, "min of non-empty tree")
	assert.Equal(t, 20, m, "wrong minimum")
}

func TestSum(t *testing.T) {
	root := build(10, 5, 15, 3, 7, 12, 18)

	assert.Equal(t, 70, traverse.Sum(root), "wrong sum")
	assert.Equal(t, 7, traverse.Count(root), "wrong count")

	f := build(0.5, 1.25, 2.0)
	assert.Equal(t, 3.75, traverse.Sum(f), "wrong float sum")
}

func TestEmpty(t *testing.T) {
	var root *avl.Node[int]

	_, err := traverse.Max(root)
	assert.Equal(t, fault.ErrEmptyTree, err, "wrong max error")

	_, err = traverse.Min(root)
	assert.Equal(t, fault.ErrEmptyTree, err, "wrong min error")

	assert.Equal(t, 0, traverse.Sum(root), "wrong sum")
	assert.Equal(t, []int{}, traverse.Keys(root), "wrong keys")
}

func TestKeys(t *testing.T) {
	root := build("delta", "alpha", "echo", "charlie", "bravo")

	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta", "echo"}, traverse.Keys(root), "wrong keys")

	m, err := traverse.Max(root)
	assert.NoError(t, err, "max of non-empty tree")
	assert.Equal(t, "echo", m, "wrong maximum")
}

func TestWalkStops(t *testing.T) {
	root := build(1, 2, 3, 4, 5, 6, 7, 8)

	seen := []int{}
	traverse.Walk(root, func(k int) bool {
		seen = append(seen, k)
		return k < 3
	})
	assert.Equal(t, []int{1, 2, 3}, seen, "walk did not stop")
}
