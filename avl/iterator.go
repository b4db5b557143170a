// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: lowest node in a sub-tree
func (tree *Node[K]) first() *Node[K] {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// internal: highest node in a sub-tree
func (tree *Node[K]) last() *Node[K] {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Walk - visit every node in ascending key order until f returns false
// returns false if the walk was stopped early
func (tree *Node[K]) Walk(f func(*Node[K]) bool) bool {
	if nil == tree {
		return true
	}
	if !tree.left.Walk(f) {
		return false
	}
	if !f(tree) {
		return false
	}
	return tree.right.Walk(f)
}
