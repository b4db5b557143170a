// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

// Demo - the built-in scenarios
//
//	A: rotations on insert, root 30 height 3
//	B: minimum key
//	C: sum of all keys
//	D: A followed by deleting the two-child root
func Demo() []Scenario {
	return []Scenario{
		{
			Name:         "A",
			Insert:       []int{10, 20, 30, 40, 50, 25},
			Dump:         true,
			ExpectKeys:   []int{10, 20, 25, 30, 40, 50},
			ExpectRoot:   intPtr(30),
			ExpectHeight: intPtr(3),
			ExpectMax:    intPtr(50),
		},
		{
			Name:      "B",
			Insert:    []int{50, 30, 20, 40, 70, 60, 80},
			Dump:      true,
			ExpectMin: intPtr(20),
		},
		{
			Name:      "C",
			Insert:    []int{10, 5, 15, 3, 7, 12, 18},
			Dump:      true,
			ExpectSum: intPtr(70),
		},
		{
			Name:       "D",
			Insert:     []int{10, 20, 30, 40, 50, 25},
			Delete:     []int{30},
			Dump:       true,
			ExpectKeys: []int{10, 20, 25, 40, 50},
			ExpectRoot: intPtr(40),
		},
	}
}

func intPtr(i int) *int {
	return &i
}
