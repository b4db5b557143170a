// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traverse

import (
	"cmp"

	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Number - key types that can be summed
type Number interface {
	constraints.Integer | constraints.Float
}

// Max - the highest key, found by following right links
func Max[K cmp.Ordered](root *avl.Node[K]) (K, error) {
	if nil == root {
		var zero K
		return zero, fault.ErrEmptyTree
	}
	for nil != root.Right() {
		root = root.Right()
	}
	return root.Key(), nil
}

// Min - the lowest key, found by following left links
func Min[K cmp.Ordered](root *avl.Node[K]) (K, error) {
	if nil == root {
		var zero K
		return zero, fault.ErrEmptyTree
	}
	for nil != root.Left() {
		root = root.Left()
	}
	return root.Key(), nil
}

// Sum - total of all keys, zero for an empty tree
func Sum[K Number](root *avl.Node[K]) K {
	if nil == root {
		return 0
	}
	return Sum(root.Left()) + root.Key() + Sum(root.Right())
}

// Count - number of nodes
func Count[K cmp.Ordered](root *avl.Node[K]) int {
	if nil == root {
		return 0
	}
	return Count(root.Left()) + 1 + Count(root.Right())
}

// Keys - all keys in ascending order
func Keys[K cmp.Ordered](root *avl.Node[K]) []K {
	keys := make([]K, 0, Count(root))
	Walk(root, func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Walk - visit keys in ascending order until f returns false
func Walk[K cmp.Ordered](root *avl.Node[K], f func(K) bool) {
	walk(root, f)
}

func walk[K cmp.Ordered](p *avl.Node[K], f func(K) bool) bool {
	if nil == p {
		return true
	}
	if !walk(p.Left(), f) {
		return false
	}
	if !f(p.Key()) {
		return false
	}
	return walk(p.Right(), f)
}
