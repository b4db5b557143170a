// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Delete - removes a specific key from the tree rooted at root
// returns the possibly updated root, nil when the tree becomes empty
func Delete[K cmp.Ordered](root *Node[K], key K) *Node[K] {
	root, _ = delete(key, root)
	return root
}

// DeleteReport - as Delete but also report whether a key was removed
func DeleteReport[K cmp.Ordered](root *Node[K], key K) (*Node[K], bool) {
	return delete(key, root)
}

// internal delete routine
func delete[K cmp.Ordered](key K, p *Node[K]) (*Node[K], bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	switch cmp.Compare(p.key, key) {
	case +1: // p.key > key
		p.left, removed = delete(key, p.left)
	case -1: // p.key < key
		p.right, removed = delete(key, p.right)
	default: // found: delete p
		if nil == p.left {
			r := p.right
			p.right = nil
			return r, true
		}
		if nil == p.right {
			l := p.left
			p.left = nil
			return l, true
		}

		// two children: promote the in-order successor's key into
		// this node, then remove the successor from the right
		successor := p.right.first()
		p.key = successor.key
		p.right, _ = delete(successor.key, p.right)
		removed = true
	}

	if !removed {
		return p, false
	}

	p.fixHeight()
	balance := Balance(p)

	if balance > 1 {
		if Balance(p.left) >= 0 {
			// single LL rotation
			return rightRotate(p), true
		}
		// double LR rotation
		p.left = leftRotate(p.left)
		return rightRotate(p), true
	}

	if balance < -1 {
		if Balance(p.right) <= 0 {
			// single RR rotation
			return leftRotate(p), true
		}
		// double RL rotation
		p.right = rightRotate(p.right)
		return leftRotate(p), true
	}

	return p, true
}
