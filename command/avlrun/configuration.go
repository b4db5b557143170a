// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/scenario"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avlrun.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Scenarios     []scenario.Scenario  `gluamapper:"scenarios" json:"scenarios"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(configurationFileName); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %q", fault.ErrConfigurationFileAbsent, configurationFileName)
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	variables := map[string]string{
		"config_directory": dataDirectory,
	}
	if err := configuration.ParseConfigurationFileWithVariables(configurationFileName, variables, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("%w: %q", fault.ErrInvalidDataDirectory, options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", fault.ErrInvalidDataDirectory, options.DataDirectory)
	}

	// make log directory absolute
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(options.DataDirectory, options.Logging.Directory)
	}

	if err := scenario.Validate(options.Scenarios); nil != err {
		return nil, err
	}

	return options, nil
}
