// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package observer

import (
	"strings"
	"sync"

	"github.com/bitmark-inc/avlstep/avl"
)

// event prefixes
const (
	StepPrefix       = "step:"
	HighlightPrefix  = "highlight:"
	CheckpointPrefix = "checkpoint:"
	PausePrefix      = "pause:"
)

// Recorder - keeps every call as a line of text
type Recorder struct {
	sync.Mutex
	events []string
	pacer  Pacer
}

// NewRecorder - create a recorder, a nil pacer never blocks
func NewRecorder(pacer Pacer) *Recorder {
	return &Recorder{
		events: make([]string, 0, 64),
		pacer:  pacer,
	}
}

func (r *Recorder) add(event string) {
	r.Lock()
	r.events = append(r.events, event)
	r.Unlock()
}

// NotifyStep - record "step:<message>"
func (r *Recorder) NotifyStep(root *avl.Node, message string) {
	r.add(StepPrefix + message)
}

// NotifyHighlight - record "highlight:<key>:<tag>" or "highlight:nil"
func (r *Recorder) NotifyHighlight(node *avl.Node, tag avl.Tag) {
	if nil == node {
		r.add(HighlightPrefix + "nil")
		return
	}
	r.add(HighlightPrefix + keyString(node) + ":" + string(tag))
}

// NotifyCheckpoint - record "checkpoint:<label>"
func (r *Recorder) NotifyCheckpoint(label string) {
	r.add(CheckpointPrefix + label)
}

// NotifyPause - record "pause:<explanation>"
func (r *Recorder) NotifyPause(explanation string) {
	r.add(PausePrefix + explanation)
}

// WaitForContinue - record the pause then hand it to the pacer
func (r *Recorder) WaitForContinue(explanation string) {
	r.NotifyPause(explanation)
	if nil != r.pacer {
		r.pacer.WaitForContinue(explanation)
	}
}

// Events - copy of all events so far
func (r *Recorder) Events() []string {
	r.Lock()
	defer r.Unlock()
	return append([]string(nil), r.events...)
}

// Filter - events with the given prefix, prefix removed
func (r *Recorder) Filter(prefix string) []string {
	r.Lock()
	defer r.Unlock()

	matched := []string{}
	for _, e := range r.events {
		if strings.HasPrefix(e, prefix) {
			matched = append(matched, strings.TrimPrefix(e, prefix))
		}
	}
	return matched
}

// Reset - discard the events
func (r *Recorder) Reset() {
	r.Lock()
	r.events = r.events[:0]
	r.Unlock()
}
