// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/scenario"
)

const (
	rerunLoggerPrefix = "rerun"
)

// background process: run the scenarios again on every change of the
// configuration file
type rerunner struct {
	log      *logger.L
	fileName string
	names    []string
	channel  WatcherChannel
	reporter scenario.Reporter
	removed  chan<- struct{} // closed when the file goes away
	runs     chan<- int      // optional: failure count of each run
}

func (r *rerunner) Run(args interface{}, shutdown <-chan struct{}) {
	r.log.Info("starting…")
loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-r.channel.remove:
			r.log.Warnf("configuration: %q removed", r.fileName)
			close(r.removed)
			break loop

		case <-r.channel.change:
			failed, err := runFromFile(r.fileName, r.names, r.reporter)
			if nil != err {
				r.log.Errorf("configuration: %q  error: %s", r.fileName, err)
				failed = -1
			} else {
				r.log.Infof("configuration: %q  failed scenarios: %d", r.fileName, failed)
			}
			if nil != r.runs {
				select {
				case r.runs <- failed:
				case <-shutdown:
					break loop
				}
			}
		}
	}
	r.log.Info("stopped")
}

// read the configuration again and run the selected scenarios
func runFromFile(fileName string, names []string, reporter scenario.Reporter) (int, error) {
	configuration, err := getConfiguration(fileName)
	if nil != err {
		return 0, err
	}
	selected, err := scenario.Select(configuration.Scenarios, names)
	if nil != err {
		return 0, err
	}
	return scenario.RunAll(selected, reporter), nil
}
