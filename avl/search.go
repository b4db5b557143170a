// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avltree/fault"
)

// Search - find the node holding a specific key, nil if not present
func Search[K cmp.Ordered](root *Node[K], key K) *Node[K] {
	for nil != root {
		switch cmp.Compare(root.key, key) {
		case +1: // root.key > key
			root = root.left
		case -1: // root.key < key
			root = root.right
		default:
			return root
		}
	}
	return nil
}

// MinValueNode - the leftmost node of a sub-tree
// an absent sub-tree has no minimum and gives fault.ErrEmptyTree
func MinValueNode[K cmp.Ordered](root *Node[K]) (*Node[K], error) {
	if nil == root {
		return nil, fault.ErrEmptyTree
	}
	return root.first(), nil
}

// MaxValueNode - the rightmost node of a sub-tree
// an absent sub-tree has no maximum and gives fault.ErrEmptyTree
func MaxValueNode[K cmp.Ordered](root *Node[K]) (*Node[K], error) {
	if nil == root {
		return nil, fault.ErrEmptyTree
	}
	return root.last(), nil
}
