// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bitmark-inc/avlstep/messagebus"
)

// anything that can deliver a message to the display
type sender interface {
	Send(msg tea.Msg)
}

// move queued items to the display in order
type pump struct {
	log   *logger.L
	queue *messagebus.Queue
	to    sender
}

// Run - background process loop
func (p *pump) Run(args interface{}, shutdown <-chan struct{}) {
	log := p.log
	log.Info("starting…")

	n := 0
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item, ok := <-p.queue.Chan():
			if !ok {
				break loop
			}
			n += 1
			log.Tracef("from: %s  item: %T", item.From, item.Item)
			p.to.Send(item.Item)
		}
	}
	log.Infof("stopped after: %d items", n)
}
