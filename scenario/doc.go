// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package scenario - replay a list of insert and delete operations
// on a fresh AVL tree
//
// The tree structure is verified after every operation and the final
// tree is summarised (root, height, extremes, sum and keys).  Optional
// expectations are compared against that summary.  Progress goes to a
// Reporter so the caller decides how to log or print it.
package scenario

//go:generate mockgen -destination=mocks/reporter.go -package=mocks github.com/bitmark-inc/avltree/scenario Reporter
