// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify ordering, stored heights and balance factors of
// every node, returns the first violation found
func Check[K cmp.Ordered](tree *Node[K]) error {
	_, err := check(tree, nil, nil)
	return err
}

// internal: consistency checker, low and high are exclusive bounds
// (nil for unbounded), returns the computed height
func check[K cmp.Ordered](p *Node[K], low *K, high *K) (int, error) {
	if nil == p {
		return 0, nil
	}
	if nil != low && !cmp.Less(*low, p.key) {
		return 0, fmt.Errorf("%w: key: %v  lower bound: %v", fault.ErrOrderViolation, p.key, *low)
	}
	if nil != high && !cmp.Less(p.key, *high) {
		return 0, fmt.Errorf("%w: key: %v  upper bound: %v", fault.ErrOrderViolation, p.key, *high)
	}

	lh, err := check(p.left, low, &p.key)
	if nil != err {
		return 0, err
	}
	rh, err := check(p.right, &p.key, high)
	if nil != err {
		return 0, err
	}

	h := 1 + max(lh, rh)
	if h != p.height {
		return 0, fmt.Errorf("%w: key: %v  actual: %d  stored: %d", fault.ErrHeightMismatch, p.key, h, p.height)
	}
	if b := lh - rh; b < -1 || b > 1 {
		return 0, fmt.Errorf("%w: key: %v  balance: %d", fault.ErrBalanceViolation, p.key, b)
	}
	return h, nil
}
