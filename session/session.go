// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package session - serialises commands onto one observed tree
//
// insert and delete run on a worker go routine so that the caller
// stays responsive while the algorithm is paused; only one of them
// may be in flight and "next" releases the current pause
package session

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlstep/avl"
	"github.com/bitmark-inc/avlstep/fault"
	"github.com/bitmark-inc/avlstep/gate"
	"github.com/bitmark-inc/avlstep/observer"
)

// State - what the session is doing
type State int

// all states
const (
	Idle State = iota
	Running
	Closed
)

// String - name of the state
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Result - reported once for every accepted command except next
type Result struct {
	Command Command
	Changed bool               // insert or delete altered the tree
	Found   bool               // contains only
	Tree    *observer.Snapshot // the whole tree after the command
	Stats   avl.Statistics
}

// Callback - receives results, insert and delete report from the
// worker go routine
type Callback func(Result)

// Session - one tree, one stepper, one command at a time
type Session struct {
	sync.Mutex
	log      *logger.L
	tree     *avl.Tree
	stepper  *gate.Stepper
	callback Callback
	busy     bool
	closed   bool
	worker   sync.WaitGroup
}

// New - create a session
//
// the observers are combined so that only the stepper pauses
func New(log *logger.L, stepper *gate.Stepper, callback Callback, observers ...avl.Observer) *Session {
	if nil == callback {
		callback = func(Result) {}
	}
	tree := avl.NewObserved(observer.NewList(stepper, observers...))
	tree.Verify(true)

	return &Session{
		log:      log,
		tree:     tree,
		stepper:  stepper,
		callback: callback,
	}
}

// State - current state
func (s *Session) State() State {
	s.Lock()
	defer s.Unlock()
	switch {
	case s.closed:
		return Closed
	case s.busy:
		return Running
	default:
		return Idle
	}
}

// Stepper - the pacer of this session
func (s *Session) Stepper() *gate.Stepper {
	return s.stepper
}

// Submit - run a command
//
// next is handled at once in any state; insert and delete start
// the worker and return; the rest complete before returning
func (s *Session) Submit(cmd Command) error {
	if Next == cmd.Operation {
		if Closed == s.State() {
			return fault.ErrSessionClosed
		}
		if s.stepper.Continue() {
			s.log.Debug("next: released")
		}
		return nil
	}

	s.Lock()
	if s.closed {
		s.Unlock()
		return fault.ErrSessionClosed
	}
	if s.busy {
		s.Unlock()
		s.log.Warnf("rejected: %s: operation in progress", cmd)
		return fault.ErrOperationInProgress
	}

	result := Result{
		Command: cmd,
	}
	switch cmd.Operation {
	case Insert, Delete:
		s.busy = true
		s.worker.Add(1)
		s.Unlock()
		s.log.Infof("start: %s", cmd)
		go s.run(cmd)
		return nil
	case Contains:
		result.Found = s.tree.Contains(cmd.Key)
	case Clear:
		result.Changed = !s.tree.IsEmpty()
		s.tree.Clear()
	case Print:
	default:
		s.Unlock()
		return fault.ErrInvalidCommand
	}
	result.Tree = observer.Take(s.tree.Root())
	result.Stats = s.tree.Stats()
	s.Unlock()

	s.log.Infof("done: %s", cmd)
	s.callback(result)
	return nil
}

// worker: the only go routine that mutates the tree while busy
func (s *Session) run(cmd Command) {
	defer s.worker.Done()

	result := Result{
		Command: cmd,
	}
	if Insert == cmd.Operation {
		result.Changed = s.tree.Insert(cmd.Key)
	} else {
		result.Changed = s.tree.Delete(cmd.Key)
	}
	result.Tree = observer.Take(s.tree.Root())
	result.Stats = s.tree.Stats()

	s.Lock()
	s.busy = false
	s.Unlock()

	s.log.Infof("done: %s changed: %t", cmd, result.Changed)
	s.callback(result)
}

// Wait - block until no operation is running
func (s *Session) Wait() {
	s.worker.Wait()
}

// Snapshot - copy of the tree, only while idle
func (s *Session) Snapshot() (*observer.Snapshot, error) {
	s.Lock()
	defer s.Unlock()
	if s.busy {
		return nil, fault.ErrOperationInProgress
	}
	return observer.Take(s.tree.Root()), nil
}

// Close - release any pause, wait for the worker and refuse further
// commands
func (s *Session) Close() {
	s.Lock()
	if s.closed {
		s.Unlock()
		return
	}
	s.closed = true
	s.Unlock()

	s.stepper.Close()
	s.worker.Wait()
	s.log.Info("closed")
}

// Execute - Submit then wait for the worker, for callers that do not
// need to stay responsive
func (s *Session) Execute(cmd Command) error {
	if err := s.Submit(cmd); nil != err {
		return err
	}
	s.Wait()
	return nil
}
