// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/bitmark-inc/avltree/scenario"
	"github.com/bitmark-inc/logger"
)

const (
	reporterLoggerPrefix = "scenario"
)

// writes scenario progress to the console and the log
type textReporter struct {
	log     *logger.L
	out     io.Writer
	verbose bool
}

// out may be nil to suppress console output
func newTextReporter(log *logger.L, out io.Writer, verbose bool) *textReporter {
	if nil == out {
		out = ioutil.Discard
	}
	return &textReporter{
		log:     log,
		out:     out,
		verbose: verbose,
	}
}

func (r *textReporter) Begin(name string) {
	r.log.Infof("begin: %q", name)
	fmt.Fprintf(r.out, "scenario: %s\n", name)
}

func (r *textReporter) Operation(name string, op scenario.Op, key int, changed bool) {
	r.log.Debugf("%q: %s %d  changed: %v", name, op, key, changed)
	if !r.verbose {
		return
	}
	if changed {
		fmt.Fprintf(r.out, "  %s %d\n", op, key)
	} else {
		fmt.Fprintf(r.out, "  %s %d (no change)\n", op, key)
	}
}

func (r *textReporter) Failure(name string, err error) {
	r.log.Errorf("%q: failed: %s", name, err)
	fmt.Fprintf(r.out, "  FAILED: %s\n", err)
}

func (r *textReporter) Finish(result *scenario.Result) {
	r.log.Infof("finish: %q  count: %d  height: %d", result.Name, result.Count, result.Height)

	if result.Empty {
		fmt.Fprintf(r.out, "  empty tree\n")
	} else {
		fmt.Fprintf(r.out, "  root: %d  height: %d  count: %d\n", result.Root, result.Height, result.Count)
		fmt.Fprintf(r.out, "  min: %d  max: %d  sum: %d\n", result.Min, result.Max, result.Sum)
		fmt.Fprintf(r.out, "  keys: %v\n", result.Keys)
		if r.verbose {
			fmt.Fprintf(r.out, "  levels: %v\n", result.Levels)
		}
	}
	if "" != result.Dump {
		for _, line := range strings.Split(strings.TrimSuffix(result.Dump, "\n"), "\n") {
			fmt.Fprintf(r.out, "  | %s\n", line)
		}
	}
	fmt.Fprintf(r.out, "  OK\n")
}
