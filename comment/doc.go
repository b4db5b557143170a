// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package comment - a thread of comments and nested replies
//
// Removing a comment does not unlink it: the text is replaced by a
// fixed notice and the comment is marked deleted so that its
// replies remain in place.
package comment
