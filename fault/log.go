// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel
var (
	m   sync.Mutex
	log *logger.L
)

// Initialise - setup a log channel for last attempt to log something
//
// logger.Initialise must already have been called
func Initialise() error {
	m.Lock()
	defer m.Unlock()

	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the logger
func Finalise() {
	m.Lock()
	defer m.Unlock()

	if nil != log {
		log.Flush()
		log = nil
	}
}

// Criticalf - log a formatted string with arguments like
// fmt.Sprintf() prefixed by the caller's location
func Criticalf(format string, arguments ...interface{}) {
	f, a := withCaller(format, arguments)
	internalCriticalf(f, a...)
}

// Panicf - log then panic with a formatted message, for conditions
// that can only be a programming error
func Panicf(format string, arguments ...interface{}) {
	f, a := withCaller(format, arguments)
	internalCriticalf(f, a...)
	panic(fmt.Sprintf(format, arguments...))
}

// prefix the location two frames up: the caller of the exported function
func withCaller(format string, arguments []interface{}) (string, []interface{}) {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return format, arguments
	}
	a := make([]interface{}, 2, 2+len(arguments))
	a[0] = file
	a[1] = line
	return "(%q:%d) " + format, append(a, arguments...)
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	m.Lock()
	defer m.Unlock()

	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush() // make sure log file is saved
}
