// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package traverse - read-only queries over an AVL tree
//
// These only use the public node accessors (Key, Left, Right) so
// they work on any sub-tree and never modify it.
package traverse
