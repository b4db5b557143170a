// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/comment"
	"github.com/bitmark-inc/avltree/scenario"
)

// setup command handler
//
// commands that do not need the configuration file
// returns false if the command needs the configuration
func processSetupCommand(program string, arguments []string, quiet bool) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "run", "r", "list", "l":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	case "demo", "d":
		runDemo(program, quiet)

	case "comments", "c":
		if err := demoThread().Display(os.Stdout); nil != err {
			exitwithstatus.Message("%s: display error: %s", program, err)
		}

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %v\n", command)
		}

		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--watch] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")
		fmt.Printf("  demo                       (d)      - run the built-in scenarios, no configuration needed\n\n")
		fmt.Printf("  comments                   (c)      - display a sample comment thread with a removed comment\n\n")
		fmt.Printf("  list                       (l)      - list the scenarios of the configuration file\n\n")
		fmt.Printf("  run [NAME...]              (r)      - run all or the named scenarios (default)\n\n")
	}

	return true
}

// run the built-in scenarios logging to the temporary directory
func runDemo(program string, quiet bool) {
	logging := logger.Configuration{
		Directory: os.TempDir(),
		File:      defaultLogFile,
		Size:      defaultLogSize,
		Count:     defaultLogCount,
		Levels:    defaultLogLevels,
	}
	if err := logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	out := io.Writer(os.Stdout)
	if quiet {
		out = nil
	}
	reporter := newTextReporter(logger.New(reporterLoggerPrefix), out, !quiet)
	failed := scenario.RunAll(scenario.Demo(), reporter)
	if 0 != failed {
		exitwithstatus.Message("%s: %d scenarios failed", program, failed)
	}
}

// a short thread where the first reply was removed after being answered
func demoThread() *comment.Comment {
	root := comment.New("What a great book!", "Bodya")

	reply1 := comment.New("The book is a complete disappointment :(", "Andriy")
	reply2 := comment.New("What is so great about it?", "Maryna")
	root.AddReply(reply1)
	root.AddReply(reply2)

	reply1.AddReply(comment.New("Not a book, just a waste of paper...", "Serhiy"))
	reply1.Remove()

	return root
}

// configuration command handler
//
// commands that only inspect the configuration
// returns false if the scenarios should be run
func processConfigCommand(out io.Writer, arguments []string, theConfiguration *Configuration) bool {

	if 0 == len(arguments) {
		return false
	}

	switch arguments[0] {
	case "list", "l":
		for _, s := range theConfiguration.Scenarios {
			fmt.Fprintf(out, "%s  insert: %d  delete: %d\n", s.Name, len(s.Insert), len(s.Delete))
		}
		return true

	default:
		return false
	}
}

// the scenario names following the run command, nil selects all
func scenarioNames(arguments []string) []string {
	if len(arguments) > 0 {
		switch arguments[0] {
		case "run", "r":
			return arguments[1:]
		}
	}
	return nil
}
