// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bitmark-inc/avlstep/avl"
	"github.com/bitmark-inc/avlstep/background"
	"github.com/bitmark-inc/avlstep/display"
	"github.com/bitmark-inc/avlstep/fault"
	"github.com/bitmark-inc/avlstep/gate"
	"github.com/bitmark-inc/avlstep/messagebus"
	"github.com/bitmark-inc/avlstep/observer"
	"github.com/bitmark-inc/avlstep/session"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	sessionName = "session"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] --config-file=FILE [[command|help] arguments...]", program)
	}

	// these commands don't require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// the terminal belongs to the display
	masterConfiguration.Logging.Console = false

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	verbose := len(options["verbose"]) > 0
	if verbose {
		log.Infof("mode: %s  rate: %g", masterConfiguration.mode, masterConfiguration.Pacing.Rate)
	}

	stepper, err := gate.NewStepper(masterConfiguration.mode, masterConfiguration.Pacing.Rate)
	if nil != err {
		exitwithstatus.Message("%s: pacing error: %s", program, err)
	}

	queue := messagebus.New(masterConfiguration.QueueSize)

	observers := []avl.Observer{observer.NewBus(queue, nil)}
	if verbose {
		observers = append(observers, observer.NewLogging(logger.New("tree"), nil))
	}

	s := session.New(logger.New("session"), stepper, func(result session.Result) {
		queue.Send(sessionName, result)
	}, observers...)

	displayOptions := display.Options{
		Plain:   masterConfiguration.Display.Plain,
		Details: masterConfiguration.Display.Details,
		Colours: masterConfiguration.colours(),
	}
	ui := tea.NewProgram(
		newModel(s, masterConfiguration.mode, masterConfiguration.InitialKeys, displayOptions),
		tea.WithAltScreen(),
	)

	processes := background.Processes{
		&pump{
			log:   logger.New("pump"),
			queue: queue,
			to:    ui,
		},
	}

	watcher, err := newFileWatcher(configurationFile, logger.New(watcherLoggerPrefix), stepper, queue)
	if nil != err {
		log.Warnf("configuration will not be reloaded: %s", err)
	} else {
		processes = append(processes, watcher)
	}

	// start background processes
	log.Info("start background")
	bg := background.Start(processes, nil)

	if _, err := ui.Run(); nil != err {
		fault.Criticalf("display error: %s", err)
	}

	// release any pause so the worker can finish
	s.Close()

	log.Info("stop background")
	bg.Stop()
	queue.Close()
}
