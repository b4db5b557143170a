// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"io"
)

// Tree - type to hold the root node of a tree
type Tree[K cmp.Ordered] struct {
	root  *Node[K]
	count int
}

// New - create an initially empty tree
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Height - height of the whole tree
func (tree *Tree[K]) Height() int {
	return Height(tree.root)
}

// Insert - insert a new key, returns true if it was not already present
func (tree *Tree[K]) Insert(key K) bool {
	added := false
	tree.root, added = insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// Delete - removes a specific key, returns true if it was present
func (tree *Tree[K]) Delete(key K) bool {
	removed := false
	tree.root, removed = delete(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// Search - find a specific key
func (tree *Tree[K]) Search(key K) *Node[K] {
	return Search(tree.root, key)
}

// First - return the node with the lowest key value
func (tree *Tree[K]) First() *Node[K] {
	return tree.root.first()
}

// Last - return the node with the highest key value
func (tree *Tree[K]) Last() *Node[K] {
	return tree.root.last()
}

// Check - verify the structure of the whole tree
func (tree *Tree[K]) Check() error {
	return Check(tree.root)
}

// Print - display an ASCII graphic representation of the tree
func (tree *Tree[K]) Print(w io.Writer, printHeight bool) int {
	return Print(w, tree.root, printHeight)
}
