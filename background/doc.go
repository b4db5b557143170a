// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run a set of long lived go routines
//
// each process runs until its shutdown channel is closed; Stop
// closes every channel and waits for all processes to return.
package background
