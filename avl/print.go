// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Dump - write an indented listing of the tree, one line per node
// in depth first order, e.g.
//
//	Root: 30
//		L--- 20
//			L--- 10
//			R--- 25
//		R--- 40
//			R--- 50
func Dump[K cmp.Ordered](w io.Writer, tree *Node[K]) error {
	return dump(w, tree, 0, root)
}

// String - the Dump output as a string, empty for an empty tree
func String[K cmp.Ordered](tree *Node[K]) string {
	var b strings.Builder
	_ = Dump(&b, tree) // strings.Builder does not fail
	return b.String()
}

func dump[K cmp.Ordered](w io.Writer, tree *Node[K], level int, br branch) error {
	if nil == tree {
		return nil
	}
	prefix := "Root: "
	switch br {
	case left:
		prefix = "L--- "
	case right:
		prefix = "R--- "
	}
	if _, err := fmt.Fprintf(w, "%s%s%v\n", strings.Repeat("\t", level), prefix, tree.key); nil != err {
		return err
	}
	if err := dump(w, tree.left, level+1, left); nil != err {
		return err
	}
	return dump(w, tree.right, level+1, right)
}

// Print - display an ASCII graphic representation of the tree
// rotated a quarter turn, returns the maximum depth of the tree
func Print[K cmp.Ordered](w io.Writer, tree *Node[K], printHeight bool) int {
	return printTree(w, tree, "", root, printHeight)
}

// internal print - returns the maximum depth of the tree
func printTree[K cmp.Ordered](w io.Writer, tree *Node[K], prefix string, br branch, printHeight bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, printHeight)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printHeight {
		fmt.Fprintf(w, "%v h:%d %+2d\n", tree.key, tree.height, Balance(tree))
	} else {
		fmt.Fprintf(w, "%v\n", tree.key)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, printHeight)
	}
	return 1 + max(ld, rd)
}
