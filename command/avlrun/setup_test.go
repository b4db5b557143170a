// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/bitmark-inc/logger"
)

const (
	logDirectory     = "log"
	logFileName      = "test.log"
	logSizeOfFiles   = 30000
	logNumberOfFiles = 10
)

var testLevelMap = map[string]string{
	logger.DefaultTag: "debug",
}

func loggerConfiguration() logger.Configuration {
	return logger.Configuration{
		Directory: logDirectory,
		File:      logFileName,
		Size:      logSizeOfFiles,
		Count:     logNumberOfFiles,
		Levels:    testLevelMap,
	}
}

func setupLogger(t *testing.T) {
	removeTestFiles()
	_ = os.Mkdir(logDirectory, 0770)
	if err := logger.Initialise(loggerConfiguration()); nil != err {
		t.Fatalf("logger initialise error: %s", err)
	}
}

func teardown() {
	logger.Finalise()
	removeTestFiles()
}

func removeTestFiles() {
	logFilePath := path.Join(logDirectory, logFileName)
	os.Remove(logFilePath)
	for i := 0; i <= logNumberOfFiles; i += 1 {
		os.Remove(logFilePath + "." + strconv.Itoa(i))
	}
	os.Remove(logDirectory)
}

const testConfiguration = `
local M = {}

M.data_directory = "."

M.scenarios = {
   {
      name = "A",
      insert = { 10, 20, 30, 40, 50, 25 },
      expect_root = 30,
      expect_height = 3,
   },
   {
      name = "D",
      insert = { 10, 20, 30, 40, 50, 25 },
      delete = { 30 },
      dump = true,
      expect_keys = { 10, 20, 25, 40, 50 },
   },
}

M.logging = {
   directory = "log",
   file = "avlrun.log",
   size = 4096,
   count = 3,
   levels = {
      DEFAULT = "debug",
   },
}

return M
`

// write a configuration file into a fresh temporary directory
func writeConfiguration(t *testing.T, content string) string {
	fileName := filepath.Join(t.TempDir(), "avlrun.conf")
	if err := ioutil.WriteFile(fileName, []byte(content), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName
}
