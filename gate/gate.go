// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gate

import (
	"sync"
)

// Gate - single use rendezvous
type Gate struct {
	once sync.Once
	open chan struct{}
}

// New - create a closed gate
func New() *Gate {
	return &Gate{
		open: make(chan struct{}),
	}
}

// Wait - block until the gate is released, returns immediately
// once it has been
func (g *Gate) Wait() {
	<-g.open
}

// Release - open the gate, further calls do nothing
func (g *Gate) Release() {
	g.once.Do(func() {
		close(g.open)
	})
}

// Done - a channel that is closed when the gate is released
func (g *Gate) Done() <-chan struct{} {
	return g.open
}

// IsReleased - true once Release has been called
func (g *Gate) IsReleased() bool {
	select {
	case <-g.open:
		return true
	default:
		return false
	}
}
