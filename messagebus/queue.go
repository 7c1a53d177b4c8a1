// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// internal constants
const (
	defaultQueueSize = 1000
)

// Message - an item with the name of its producer
type Message struct {
	From string
	Item interface{}
}

// Queue - buffered single consumer queue
type Queue struct {
	sync.RWMutex
	c      chan Message
	closed bool
}

// New - create a queue, zero size selects the default
func New(size int) *Queue {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue an item, blocks while the queue is full; items sent
// after Close are dropped and false is returned
func (queue *Queue) Send(from string, item interface{}) bool {
	queue.RLock()
	defer queue.RUnlock()

	if queue.closed {
		return false
	}
	queue.c <- Message{
		From: from,
		Item: item,
	}
	return true
}

// Chan - channel to read from, closed after Close once drained
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Close - stop accepting items
func (queue *Queue) Close() {
	queue.Lock()
	defer queue.Unlock()

	if !queue.closed {
		queue.closed = true
		close(queue.c)
	}
}
