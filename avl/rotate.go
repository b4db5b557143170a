// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// right rotation around y, the left sub-tree is too tall
//
//	    y            x
//	   / \          / \
//	  x   c  ==>   a   y
//	 / \              / \
//	a   t            t   c
//
// y must be re-heighted before x as x now depends on it
func rightRotate[K cmp.Ordered](y *Node[K]) *Node[K] {
	x := y.left
	t := x.right

	x.right = y
	y.left = t

	y.fixHeight()
	x.fixHeight()

	return x
}

// left rotation around z, the right sub-tree is too tall (mirror of
// rightRotate)
func leftRotate[K cmp.Ordered](z *Node[K]) *Node[K] {
	y := z.right
	t := y.left

	y.left = z
	z.right = t

	z.fixHeight()
	y.fixHeight()

	return y
}
