// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced binary search tree of unique ordered keys
//
// Each node records the height of its sub-tree (a leaf has height 1,
// an absent sub-tree has height 0) and the tree is re-balanced on the
// way back up from every insert or delete using at most one single or
// double rotation per ancestor.
//
// There is no separate tree object in the core API: a *Node is the
// root of a (sub-)tree, nil is the empty tree, and every mutating
// function returns the new root, which may be a different node after
// a rotation or deletion:
//
//	var root *avl.Node[int]
//	root = avl.Insert(root, 10)
//	root = avl.Delete(root, 10) // root == nil
//
// Tree is a small convenience handle that holds a root and a count.
//
// Note: a tree is not thread safe, so either access only in a single
// go routine or use mutex/rwmutex to restrict access.  Nodes have no
// parent pointers; ancestors are tracked by the recursion during
// descent.
//
// Duplicate keys are ignored by insert and deleting a missing key
// leaves the tree unchanged.  When a node with two children is
// deleted the key of its in-order successor is copied into it and
// the successor is removed from the right sub-tree instead, so the
// node itself survives.
package avl
