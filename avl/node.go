// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Node - a node in the tree, also the handle of the sub-tree below it
type Node[K cmp.Ordered] struct {
	left   *Node[K] // left sub-tree, all keys less than key
	right  *Node[K] // right sub-tree, all keys greater than key
	key    K        // key part for ordering
	height int      // height of this sub-tree, leaf is 1
}

// create a new leaf node
func newNode[K cmp.Ordered](key K) *Node[K] {
	return &Node[K]{
		key:    key,
		height: 1,
	}
}

// Key - read the key from a node
func (p *Node[K]) Key() K {
	return p.key
}

// Left - the left sub-tree or nil
func (p *Node[K]) Left() *Node[K] {
	return p.left
}

// Right - the right sub-tree or nil
func (p *Node[K]) Right() *Node[K] {
	return p.right
}

// Height - height of the sub-tree, zero for a nil node
func (p *Node[K]) Height() int {
	return Height(p)
}

// Balance - balance factor of the sub-tree, zero for a nil node
func (p *Node[K]) Balance() int {
	return Balance(p)
}

// Height - stored height of a sub-tree, zero if absent
func Height[K cmp.Ordered](p *Node[K]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// Balance - left height minus right height, zero if absent
func Balance[K cmp.Ordered](p *Node[K]) int {
	if nil == p {
		return 0
	}
	return Height(p.left) - Height(p.right)
}

// internal: recompute height from the already correct children
func (p *Node[K]) fixHeight() {
	p.height = 1 + max(Height(p.left), Height(p.right))
}

// ChildrenAtDepth - all nodes at a specific depth below p (0 is p itself)
func (p *Node[K]) ChildrenAtDepth(depth uint) []*Node[K] {
	if nil == p {
		return nil
	}
	if 0 == depth {
		return []*Node[K]{p}
	}
	nodes := []*Node[K]{}
	if nil != p.left {
		nodes = append(nodes, p.left.ChildrenAtDepth(depth-1)...)
	}
	if nil != p.right {
		nodes = append(nodes, p.right.ChildrenAtDepth(depth-1)...)
	}
	return nodes
}
