// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package observer

import (
	"github.com/bitmark-inc/avlstep/avl"
	"github.com/bitmark-inc/avlstep/messagebus"
)

// BusName - the From field of every message published by a Bus
const BusName = "avl"

// Kind - which observer call produced an event
type Kind int

// event kinds
const (
	KindStep Kind = iota
	KindHighlight
	KindCheckpoint
	KindPause
)

// String - name of the kind
func (k Kind) String() string {
	switch k {
	case KindStep:
		return "step"
	case KindHighlight:
		return "highlight"
	case KindCheckpoint:
		return "checkpoint"
	case KindPause:
		return "pause"
	default:
		return "unknown"
	}
}

// Event - the item type of every Bus message
type Event struct {
	Kind    Kind
	Tree    *Snapshot // step only: the sub-tree reported
	Message string    // step message, checkpoint label or pause explanation
	Tag     avl.Tag   // highlight only, TagNone when cleared
	Key     int       // highlight only
	Cleared bool      // highlight only: no node
}

// Bus - publishes each call onto a queue
//
// nodes are copied before they are queued, the consumer never sees
// the live tree
type Bus struct {
	queue *messagebus.Queue
	pacer Pacer
}

// NewBus - create a bus observer, a nil pacer never blocks
func NewBus(queue *messagebus.Queue, pacer Pacer) *Bus {
	return &Bus{
		queue: queue,
		pacer: pacer,
	}
}

func (bus *Bus) publish(e Event) {
	bus.queue.Send(BusName, e)
}

// NotifyStep - publish a snapshot of the reported sub-tree
func (bus *Bus) NotifyStep(root *avl.Node, message string) {
	bus.publish(Event{
		Kind:    KindStep,
		Tree:    Take(root),
		Message: message,
	})
}

// NotifyHighlight - publish the highlighted key
func (bus *Bus) NotifyHighlight(node *avl.Node, tag avl.Tag) {
	e := Event{
		Kind:    KindHighlight,
		Tag:     tag,
		Cleared: nil == node,
	}
	if nil != node {
		e.Key = node.Key()
	} else {
		e.Tag = avl.TagNone
	}
	bus.publish(e)
}

// NotifyCheckpoint - publish the label
func (bus *Bus) NotifyCheckpoint(label string) {
	bus.publish(Event{
		Kind:    KindCheckpoint,
		Message: label,
	})
}

// NotifyPause - publish the explanation
func (bus *Bus) NotifyPause(explanation string) {
	bus.publish(Event{
		Kind:    KindPause,
		Message: explanation,
	})
}

// WaitForContinue - publish then hand the pause to the pacer
func (bus *Bus) WaitForContinue(explanation string) {
	bus.NotifyPause(explanation)
	if nil != bus.pacer {
		bus.pacer.WaitForContinue(explanation)
	}
}
