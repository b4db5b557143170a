// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/scenario"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	quiet := len(options["quiet"]) > 0
	verbose := len(options["verbose"]) > 0
	watch := len(options["watch"]) > 0

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"}, quiet)
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"}, quiet)
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments, quiet) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands only inspect the configuration
	if processConfigCommand(os.Stdout, arguments, theConfiguration) {
		return
	}

	// start logging
	if err = os.MkdirAll(theConfiguration.Logging.Directory, 0770); nil != err {
		exitwithstatus.Message("%s: cannot create log directory: %q  error: %s", program, theConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	out := io.Writer(os.Stdout)
	if quiet {
		out = nil
	}
	reporter := newTextReporter(logger.New(reporterLoggerPrefix), out, verbose)

	names := scenarioNames(arguments)
	selected, err := scenario.Select(theConfiguration.Scenarios, names)
	if nil != err {
		fault.Criticalf("select scenarios error: %s", err)
		exitwithstatus.Message("%s: %s", program, err)
	}

	log.Infof("scenarios: %d", len(selected))
	failed := scenario.RunAll(selected, reporter)
	log.Infof("failed scenarios: %d", failed)

	if !watch {
		if 0 != failed {
			exitwithstatus.Message("%s: %d scenarios failed", program, failed)
		}
		return
	}

	// watch mode: run again on each change until interrupted or
	// the configuration file is removed
	watcherChannel := WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	watcher, err := newFileWatcher(configurationFile, logger.New(fileWatcherLoggerPrefix), watcherChannel)
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	if err = watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}
	defer watcher.Stop()

	removed := make(chan struct{})
	processes := background.Processes{
		&rerunner{
			log:      logger.New(rerunLoggerPrefix),
			fileName: configurationFile,
			names:    names,
			channel:  watcherChannel,
			reporter: reporter,
			removed:  removed,
		},
	}
	p := background.Start(processes, nil)
	defer p.Stop()

	if !quiet {
		fmt.Printf("\n\nWatching: %q  waiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…\n", configurationFile)
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
		if !quiet {
			fmt.Printf("\nreceived signal: %v\n", sig)
		}
	case <-removed:
		log.Info("configuration file removed")
		if !quiet {
			fmt.Printf("\nconfiguration file removed\n")
		}
	}
	if !quiet {
		fmt.Printf("\nshutting down...\n")
	}
}
