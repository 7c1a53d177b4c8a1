// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"testing"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	if err := startLogging(testingDirName, true); nil != err {
		panic(err)
	}

	rc := m.Run()

	stopLogging()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

// run the application as if from the command line, returning what
// it wrote to each stream
func run(arguments ...string) (string, string, error) {
	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	app := newApp(w, e)
	args := append([]string{"avl-cli", "--log-directory", testingDirName}, arguments...)
	err := app.Run(args)
	return w.String(), e.String(), err
}
