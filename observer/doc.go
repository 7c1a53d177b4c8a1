// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package observer - implementations of avl.Observer
//
// Recorder keeps a text log of every call, Logging writes them to a
// logger channel, Bus publishes immutable snapshots to a message queue
// for a consumer on another go routine and List fans a call out to
// several of these.
//
// None of the observers blocks on its own: WaitForContinue is passed
// to an optional Pacer, normally a *gate.Stepper.
package observer

import (
	"strconv"

	"github.com/bitmark-inc/avlstep/avl"
)

// Pacer - something that can hold the mutating go routine
type Pacer interface {
	WaitForContinue(explanation string)
}

// PauseNotifier - record a pause without blocking, used by List so
// that only its own pacer blocks
type PauseNotifier interface {
	NotifyPause(explanation string)
}

// format a possibly nil node for a message
func keyString(p *avl.Node) string {
	if nil == p {
		return "nil"
	}
	return strconv.Itoa(p.Key())
}
