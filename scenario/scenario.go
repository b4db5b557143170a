// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/traverse"
)

// Op - kind of tree operation
type Op string

// the operations
const (
	OpInsert Op = "insert"
	OpDelete Op = "delete"
)

// Scenario - one sequence of operations, all inserts are applied
// first then all deletes
type Scenario struct {
	Name         string `gluamapper:"name" json:"name"`
	Insert       []int  `gluamapper:"insert" json:"insert"`
	Delete       []int  `gluamapper:"delete" json:"delete"`
	Dump         bool   `gluamapper:"dump" json:"dump"`
	ExpectKeys   []int  `gluamapper:"expect_keys" json:"expect_keys"`
	ExpectRoot   *int   `gluamapper:"expect_root" json:"expect_root"`
	ExpectHeight *int   `gluamapper:"expect_height" json:"expect_height"`
	ExpectMin    *int   `gluamapper:"expect_min" json:"expect_min"`
	ExpectMax    *int   `gluamapper:"expect_max" json:"expect_max"`
	ExpectSum    *int   `gluamapper:"expect_sum" json:"expect_sum"`
}

// Result - summary of the final tree
type Result struct {
	Name   string `json:"name"`
	Empty  bool   `json:"empty"`
	Root   int    `json:"root"`
	Height int    `json:"height"`
	Count  int    `json:"count"`
	Min    int    `json:"min"`
	Max    int    `json:"max"`
	Sum    int    `json:"sum"`
	Keys   []int  `json:"keys"`
	Levels []int  `json:"levels"` // number of nodes at each depth from the root
	Dump   string `json:"dump,omitempty"`
}

// Reporter - receives the progress of a scenario
type Reporter interface {
	Begin(name string)
	Operation(name string, op Op, key int, changed bool)
	Failure(name string, err error)
	Finish(result *Result)
}

// Run - execute a scenario on an empty tree
//
// any structural fault or failed expectation is passed to
// Reporter.Failure and returned; Finish is only called on success
func Run(s *Scenario, reporter Reporter) (*Result, error) {

	reporter.Begin(s.Name)

	var root *avl.Node[int]

	apply := func(op Op, key int) error {
		changed := false
		switch op {
		case OpInsert:
			root, changed = avl.InsertReport(root, key)
		case OpDelete:
			root, changed = avl.DeleteReport(root, key)
		}
		reporter.Operation(s.Name, op, key, changed)
		if err := avl.Check(root); nil != err {
			return fmt.Errorf("%w  after: %s %d", err, op, key)
		}
		return nil
	}

	for _, key := range s.Insert {
		if err := apply(OpInsert, key); nil != err {
			reporter.Failure(s.Name, err)
			return nil, err
		}
	}
	for _, key := range s.Delete {
		if err := apply(OpDelete, key); nil != err {
			reporter.Failure(s.Name, err)
			return nil, err
		}
	}

	result := summarise(s.Name, root, s.Dump)

	if err := verify(s, result); nil != err {
		reporter.Failure(s.Name, err)
		return result, err
	}

	reporter.Finish(result)
	return result, nil
}

// RunAll - execute every scenario, continuing after failures
// returns the number of failed scenarios
func RunAll(scenarios []Scenario, reporter Reporter) int {
	failed := 0
	for i := range scenarios {
		if _, err := Run(&scenarios[i], reporter); nil != err {
			failed += 1
		}
	}
	return failed
}

// Select - pick scenarios by name, all of them if no names are given
func Select(scenarios []Scenario, names []string) ([]Scenario, error) {
	if 0 == len(names) {
		return scenarios, nil
	}
	selected := make([]Scenario, 0, len(names))
search:
	for _, name := range names {
		for _, s := range scenarios {
			if s.Name == name {
				selected = append(selected, s)
				continue search
			}
		}
		return nil, fmt.Errorf("%w: %q", fault.ErrScenarioNotFound, name)
	}
	return selected, nil
}

// Validate - every scenario needs a unique name
func Validate(scenarios []Scenario) error {
	names := make(map[string]struct{}, len(scenarios))
	for i, s := range scenarios {
		if "" == s.Name {
			return fmt.Errorf("%w: scenario[%d]", fault.ErrScenarioNameRequired, i)
		}
		if _, ok := names[s.Name]; ok {
			return fmt.Errorf("%w: %q", fault.ErrScenarioNameDuplicated, s.Name)
		}
		names[s.Name] = struct{}{}
	}
	return nil
}

func summarise(name string, root *avl.Node[int], dump bool) *Result {
	result := &Result{
		Name:   name,
		Empty:  nil == root,
		Height: avl.Height(root),
		Count:  traverse.Count(root),
		Sum:    traverse.Sum(root),
		Keys:   traverse.Keys(root),
	}
	if nil != root {
		result.Root = root.Key()
		result.Min, _ = traverse.Min(root)
		result.Max, _ = traverse.Max(root)
	}
	for depth := 0; depth < result.Height; depth += 1 {
		result.Levels = append(result.Levels, len(root.ChildrenAtDepth(uint(depth))))
	}
	if dump {
		result.Dump = avl.String(root)
	}
	return result
}

func verify(s *Scenario, r *Result) error {
	if nil != s.ExpectKeys && !equalKeys(s.ExpectKeys, r.Keys) {
		return fmt.Errorf("%w: keys: %v  expected: %v", fault.ErrExpectationFailed, r.Keys, s.ExpectKeys)
	}

	// the remaining expectations need at least one key
	checks := []struct {
		title    string
		expected *int
		actual   int
	}{
		{"root", s.ExpectRoot, r.Root},
		{"min", s.ExpectMin, r.Min},
		{"max", s.ExpectMax, r.Max},
	}
	for _, c := range checks {
		if nil == c.expected {
			continue
		}
		if r.Empty {
			return fmt.Errorf("%w: %s: tree is empty  expected: %d", fault.ErrExpectationFailed, c.title, *c.expected)
		}
		if *c.expected != c.actual {
			return fmt.Errorf("%w: %s: %d  expected: %d", fault.ErrExpectationFailed, c.title, c.actual, *c.expected)
		}
	}

	if nil != s.ExpectHeight && *s.ExpectHeight != r.Height {
		return fmt.Errorf("%w: height: %d  expected: %d", fault.ErrExpectationFailed, r.Height, *s.ExpectHeight)
	}
	if nil != s.ExpectSum && *s.ExpectSum != r.Sum {
		return fmt.Errorf("%w: sum: %d  expected: %d", fault.ErrExpectationFailed, r.Sum, *s.ExpectSum)
	}
	return nil
}

func equalKeys(a []int, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
