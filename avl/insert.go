// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Insert - insert a key into the tree rooted at root
// returns the possibly updated root, a duplicate key is ignored
func Insert[K cmp.Ordered](root *Node[K], key K) *Node[K] {
	root, _ = insert(key, root)
	return root
}

// InsertReport - as Insert but also report whether a node was added
func InsertReport[K cmp.Ordered](root *Node[K], key K) (*Node[K], bool) {
	return insert(key, root)
}

// internal routine for insert
func insert[K cmp.Ordered](key K, p *Node[K]) (*Node[K], bool) {
	if nil == p { // insert new node
		return newNode(key), true
	}

	added := false
	switch cmp.Compare(p.key, key) {
	case +1: // p.key > key
		p.left, added = insert(key, p.left)
	case -1: // p.key < key
		p.right, added = insert(key, p.right)
	default: // duplicate
		return p, false
	}

	// nothing below changed shape
	if !added {
		return p, false
	}

	p.fixHeight()
	balance := Balance(p)

	if balance > 1 {
		if cmp.Less(key, p.left.key) {
			// single LL rotation
			return rightRotate(p), true
		}
		// double LR rotation
		p.left = leftRotate(p.left)
		return rightRotate(p), true
	}

	if balance < -1 {
		if cmp.Less(p.right.key, key) {
			// single RR rotation
			return leftRotate(p), true
		}
		// double RL rotation
		p.right = rightRotate(p.right)
		return leftRotate(p), true
	}

	return p, true
}
