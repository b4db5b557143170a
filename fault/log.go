// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// tag of the last-chance log channel
const panicTag = "PANIC"

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
// the logger package must already be initialised
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New(panicTag)
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and release the channel
func Finalise() {
	if nil != log {
		log.Flush()
	}
	log = nil
}

// Criticalf - log a formatted string with the caller's position
func Criticalf(format string, arguments ...interface{}) {
	internalCriticalf(1, format, arguments...)
}

// Panicf - log then panic with a formatted message
func Panicf(format string, arguments ...interface{}) {
	internalCriticalf(1, format, arguments...)
	panicNow(fmt.Sprintf(format, arguments...))
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	internalCriticalf(1, "%s", s)
	panicNow(s)
}

// final panic
func panicNow(message string) {
	if nil != log {
		time.Sleep(100 * time.Millisecond) // to allow logging output
	}
	panic(message)
}

// internal routine to handle an uninitialised logger channel
func internalCriticalf(skip int, format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		format = "(%q:%d) " + format
		arguments = a
	}
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush() // make sure log file is saved
}
