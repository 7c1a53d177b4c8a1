// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlstep/avl"
	"github.com/bitmark-inc/avlstep/configuration"
	"github.com/bitmark-inc/avlstep/fault"
	"github.com/bitmark-inc/avlstep/gate"
	"github.com/bitmark-inc/avlstep/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avlview.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultStepMode = "manual"
	defaultRate     = 1.0 // steps per second in autoplay
	defaultQueue    = 1000
)

const (
	defaultLogLevel = "info"
)

// PacingType - how the algorithm pauses
type PacingType struct {
	Mode string  `gluamapper:"mode" json:"mode"`
	Rate float64 `gluamapper:"rate" json:"rate"`
}

// DisplayType - how the tree is drawn
type DisplayType struct {
	Plain    bool   `gluamapper:"plain" json:"plain"`
	Details  bool   `gluamapper:"details" json:"details"`
	Inserted string `gluamapper:"inserted" json:"inserted"`
	Pivot    string `gluamapper:"pivot" json:"pivot"`
	Removed  string `gluamapper:"removed" json:"removed"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	QueueSize     int                  `gluamapper:"queue_size" json:"queue_size"`
	InitialKeys   []int                `gluamapper:"initial_keys" json:"initial_keys"`
	Pacing        PacingType           `gluamapper:"pacing" json:"pacing"`
	Display       DisplayType          `gluamapper:"display" json:"display"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`

	mode gate.Mode
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		QueueSize:     defaultQueue,
		InitialKeys:   []int{},
		Pacing: PacingType{
			Mode: defaultStepMode,
			Rate: defaultRate,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: defaultLogLevel,
			},
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := util.AbsoluteFile(configurationFileName)
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration()

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// the log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory, err = util.MakeDirectory(options.DataDirectory, options.Logging.Directory)
	if nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// re-read only the pacing, for a running program
func getPacing(configurationFileName string) (gate.Mode, float64, error) {
	options := defaultConfiguration()
	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return gate.Off, 0, err
	}
	if err := options.validate(); nil != err {
		return gate.Off, 0, err
	}
	return options.mode, options.Pacing.Rate, nil
}

// check and convert values that are not paths
func (c *Configuration) validate() error {
	mode, err := gate.ParseMode(c.Pacing.Mode)
	if nil != err {
		return err
	}
	c.mode = mode

	if c.Pacing.Rate <= 0 {
		return fault.ErrInvalidAutoplayRate
	}
	if c.QueueSize <= 0 {
		c.QueueSize = defaultQueue
	}
	return nil
}

// highlight colours for the display, unset entries keep the defaults
func (c *Configuration) colours() map[avl.Tag]string {
	colours := map[avl.Tag]string{}
	for tag, colour := range map[avl.Tag]string{
		avl.TagInserted: c.Display.Inserted,
		avl.TagPivot:    c.Display.Pivot,
		avl.TagRemoved:  c.Display.Removed,
	} {
		if "" != colour {
			colours[tag] = colour
		}
	}
	return colours
}
