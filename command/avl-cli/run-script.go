// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlstep/avl"
	"github.com/bitmark-inc/avlstep/display"
	"github.com/bitmark-inc/avlstep/fault"
	"github.com/bitmark-inc/avlstep/gate"
	"github.com/bitmark-inc/avlstep/observer"
	"github.com/bitmark-inc/avlstep/session"
)

func runScript(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if 1 != len(c.Args()) {
		return fault.ErrMissingFileName
	}
	fileName := c.Args()[0]

	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()

	stepper, err := gate.NewStepper(gate.Off, 1)
	if nil != err {
		return err
	}

	observers := []avl.Observer{}
	if m.verbose {
		observers = append(observers, observer.NewLogging(logger.New("tree"), nil))
	}

	// Execute waits for the worker so results arrive in order
	report := func(r session.Result) {
		switch r.Command.Operation {
		case session.Contains:
			fmt.Fprintf(m.w, "%s: %t\n", r.Command, r.Found)
		case session.Print:
			fmt.Fprint(m.w, display.Sideways(r.Tree, false))
		default:
			fmt.Fprintf(m.w, "%s: changed: %t\n", r.Command, r.Changed)
		}
	}

	s := session.New(logger.New("session"), stepper, report, observers...)
	defer s.Close()

	n, err := session.RunScript(s, f)
	if m.verbose {
		fmt.Fprintf(m.e, "commands: %d\n", n)
	}
	return err
}
