// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlstep/fault"
)

type metadata struct {
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	stopLogging()
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "build, trace and check AVL trees"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "log-directory, l",
			Value: filepath.Join(os.TempDir(), "avl-cli"),
			Usage: " write the log file to `DIR`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "build",
			Usage:     "insert keys and print the tree",
			ArgsUsage: "KEY...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "json, j",
					Usage: " print a JSON structure",
				},
				cli.BoolFlag{
					Name:  "details, d",
					Usage: " include heights and balance factors",
				},
				cli.BoolFlag{
					Name:  "levels",
					Usage: " draw one row per level instead of sideways",
				},
				cli.BoolFlag{
					Name:  "unbalanced, u",
					Usage: " use a plain binary search tree",
				},
			},
			Action: runBuild,
		},
		{
			Name:      "trace",
			Usage:     "insert keys and list every algorithm step",
			ArgsUsage: "KEY...",
			Flags: []cli.Flag{
				cli.IntSliceFlag{
					Name:  "delete, d",
					Usage: " delete `KEY` after the inserts, may be repeated",
				},
				cli.BoolFlag{
					Name:  "json, j",
					Usage: " print a JSON structure",
				},
			},
			Action: runTrace,
		},
		{
			Name:      "run",
			Usage:     "execute a file of commands: +N -N ?N print clear",
			ArgsUsage: "FILE",
			Flags:     []cli.Flag{},
			Action:    runScript,
		},
		{
			Name:      "check",
			Usage:     "random insert and delete workload verified after every step",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 10000,
					Usage: " number of operations `N`",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 1,
					Usage: " random `SEED`",
				},
				cli.IntFlag{
					Name:  "range, r",
					Value: 1000,
					Usage: " keys are drawn from 0 to `MAX`-1",
				},
			},
			Action: runCheck,
		},
		{
			Name:      "version",
			Usage:     "display avl-cli version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		directory := c.GlobalString("log-directory")
		if err := os.MkdirAll(directory, 0700); nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "log directory: %q\n", directory)
		}
		if err := startLogging(directory, verbose); nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			verbose: verbose,
			log:     logger.New("avl-cli"),
			e:       e,
			w:       w,
		}
		return nil
	}

	return app
}

// the logger refuses fewer than ten rotated files
const (
	logFile  = "avl-cli.log"
	logSize  = 1048576
	logCount = 10
)

func logConfiguration(directory string, verbose bool) logger.Configuration {
	level := "critical"
	if verbose {
		level = "info"
	}
	return logger.Configuration{
		Directory: directory,
		File:      logFile,
		Size:      logSize,
		Count:     logCount,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}
}

// logging is started once per process, the first command to run
// chooses the directory
var logging struct {
	sync.Mutex
	started bool
}

func startLogging(directory string, verbose bool) error {
	logging.Lock()
	defer logging.Unlock()

	if logging.started {
		return nil
	}

	if err := logger.Initialise(logConfiguration(directory, verbose)); nil != err {
		return err
	}
	if err := fault.Initialise(); nil != err {
		logger.Finalise()
		return err
	}
	logging.started = true
	return nil
}

func stopLogging() {
	logging.Lock()
	defer logging.Unlock()

	if logging.started {
		fault.Finalise()
		logger.Finalise()
		logging.started = false
	}
}

func runVersion(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	fmt.Fprintf(m.w, "%s\n", version)
	return nil
}
