// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package observer

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlstep/avl"
	"github.com/bitmark-inc/avlstep/util"
)

// Logging - writes every call to a logger channel
type Logging struct {
	log   *logger.L
	pacer Pacer
}

// NewLogging - create a logging observer
func NewLogging(log *logger.L, pacer Pacer) *Logging {
	return &Logging{
		log:   log,
		pacer: pacer,
	}
}

// NotifyStep - info level, includes the sub-tree root and height
func (l *Logging) NotifyStep(root *avl.Node, message string) {
	util.LogInfo(l.log, util.CoGreen, fmt.Sprintf("step: %s [root: %s height: %d]", message, keyString(root), root.Height()))
}

// NotifyHighlight - debug level
func (l *Logging) NotifyHighlight(node *avl.Node, tag avl.Tag) {
	if nil == node {
		l.log.Debugf("highlight: cleared")
		return
	}
	l.log.Debugf("highlight: %d as %s", node.Key(), tag)
}

// NotifyCheckpoint - debug level
func (l *Logging) NotifyCheckpoint(label string) {
	util.LogDebug(l.log, util.CoCyan, "checkpoint: "+label)
}

// NotifyPause - info level
func (l *Logging) NotifyPause(explanation string) {
	util.LogInfo(l.log, util.CoYellow, "pause: "+explanation)
}

// WaitForContinue - log then hand the pause to the pacer
func (l *Logging) WaitForContinue(explanation string) {
	l.NotifyPause(explanation)
	if nil != l.pacer {
		l.pacer.WaitForContinue(explanation)
	}
}
