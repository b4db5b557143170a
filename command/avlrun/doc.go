// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// AVL tree scenario runner
//
// This program reads a Lua configuration file containing lists of
// keys to insert into and delete from an AVL tree, runs each list on
// a fresh tree verifying the tree structure after every step and
// prints a summary of the final tree.  With --watch the scenarios are
// run again each time the configuration file is written.
package main
