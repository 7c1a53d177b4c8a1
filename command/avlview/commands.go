// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/avlstep/util"
)

const (
	defaultConfigurationFilename = "avlview.conf"
)

// the configuration written by gen-config
const configurationTemplate = `-- avlview.conf  -*- mode: lua -*-

local M = {}

-- directory for the log directory, "." is the directory of this file
M.data_directory = "."

-- keys inserted, without pauses, before the display starts
M.initial_keys = { 30, 20, 40, 10, 25 }

-- pauses: "manual" waits for next, "auto" continues at rate steps
-- per second, "off" never pauses
M.pacing = {
    mode = "manual",
    rate = 1.5,
}

-- colours are lipgloss colours: ANSI numbers or "#rrggbb"
M.display = {
    plain = false,
    details = false,
    inserted = "2",
    pivot = "3",
    removed = "1",
}

M.logging = {
    size = 1048576,
    count = 10,

    -- set to true to log to console
    console = false,

    -- set the logging level for various modules
    -- modules not overridden with get the value from "*"
    -- the default value for "*" is "critical"
    levels = {
        ["*"] = "info",
        main = "info",
        tree = "debug",
        session = "info",
        watcher = "info",
    }
}

return M
`

// setup command handler
//
// commands that run before the configuration file is read
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-config", "config":
		fileName := defaultConfigurationFilename
		if len(arguments) > 0 && "" != arguments[0] {
			fileName = arguments[0]
		}

		if util.FileExists(fileName) {
			fmt.Printf("generate configuration: %q error: file already exists\n", fileName)
			exitwithstatus.Exit(1)
		}
		if err := os.WriteFile(fileName, []byte(configurationTemplate), 0600); nil != err {
			fmt.Printf("generate configuration: %q error: %s\n", fileName, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated configuration: %q\n", fileName)

	case "start", "run":
		return false // continue processing

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--version] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-config [FILE]          (config) - create a configuration file: %q\n", defaultConfigurationFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}
