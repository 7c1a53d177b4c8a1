// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gate

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avlstep/fault"
)

// Mode - how pauses are released
type Mode int

// possible modes
const (
	Manual Mode = iota // wait for Continue
	Auto               // released by the autoplay clock, Continue also works
	Off                // never pause
)

// ParseMode - convert a configuration string to a mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manual", "step":
		return Manual, nil
	case "auto", "autoplay":
		return Auto, nil
	case "off", "none", "":
		return Off, nil
	default:
		return Off, fault.ErrInvalidStepMode
	}
}

// String - name of the mode
func (m Mode) String() string {
	switch m {
	case Manual:
		return "manual"
	case Auto:
		return "auto"
	case Off:
		return "off"
	default:
		return "unknown"
	}
}

// Stepper - provides WaitForContinue for an observer
type Stepper struct {
	sync.Mutex
	mode        Mode
	limiter     *rate.Limiter
	pending     *Gate
	explanation string
	changed     chan struct{} // closed and replaced on every setting change
	closed      bool
}

// NewStepper - create a stepper, the rate is in steps per second and
// only used in Auto mode
func NewStepper(mode Mode, stepsPerSecond float64) (*Stepper, error) {
	if stepsPerSecond <= 0 {
		return nil, fault.ErrInvalidAutoplayRate
	}
	return &Stepper{
		mode:    mode,
		limiter: rate.NewLimiter(rate.Limit(stepsPerSecond), 1),
		changed: make(chan struct{}),
	}, nil
}

// WaitForContinue - pause until released according to the mode
func (s *Stepper) WaitForContinue(explanation string) {
	g := s.begin(explanation)
	if nil == g {
		return
	}
	defer s.end(g)

	for {
		s.Lock()
		mode, limiter, changed := s.mode, s.limiter, s.changed
		s.Unlock()

		if Off == mode {
			return
		}

		var tick <-chan time.Time
		var timer *time.Timer
		var reservation *rate.Reservation
		if Auto == mode {
			reservation = limiter.Reserve()
			timer = time.NewTimer(reservation.Delay())
			tick = timer.C
		}

		select {
		case <-g.Done():
			stop(timer, reservation)
			return
		case <-tick:
			return
		case <-changed:
			stop(timer, reservation)
		}
	}
}

// give back an unused autoplay slot
func stop(timer *time.Timer, reservation *rate.Reservation) {
	if nil != timer {
		timer.Stop()
	}
	if nil != reservation {
		reservation.Cancel()
	}
}

func (s *Stepper) begin(explanation string) *Gate {
	s.Lock()
	defer s.Unlock()

	if s.closed || Off == s.mode {
		return nil
	}
	s.pending = New()
	s.explanation = explanation
	return s.pending
}

func (s *Stepper) end(g *Gate) {
	s.Lock()
	defer s.Unlock()

	if g == s.pending {
		s.pending = nil
		s.explanation = ""
	}
}

// Continue - release the current pause, false if nothing was waiting
func (s *Stepper) Continue() bool {
	s.Lock()
	g := s.pending
	s.Unlock()

	if nil == g || g.IsReleased() {
		return false
	}
	g.Release()
	return true
}

// Waiting - true if a pause is pending, with its explanation
func (s *Stepper) Waiting() (bool, string) {
	s.Lock()
	defer s.Unlock()
	return nil != s.pending, s.explanation
}

// Mode - current mode
func (s *Stepper) Mode() Mode {
	s.Lock()
	defer s.Unlock()
	return s.mode
}

// SetMode - change the mode, a pending pause re-evaluates it
func (s *Stepper) SetMode(mode Mode) {
	s.Lock()
	defer s.Unlock()
	s.mode = mode
	s.signal()
}

// SetRate - change the autoplay rate in steps per second
func (s *Stepper) SetRate(stepsPerSecond float64) error {
	if stepsPerSecond <= 0 {
		return fault.ErrInvalidAutoplayRate
	}
	s.Lock()
	defer s.Unlock()
	s.limiter = rate.NewLimiter(rate.Limit(stepsPerSecond), 1)
	s.signal()
	return nil
}

// Close - release any pause and never pause again
func (s *Stepper) Close() {
	s.Lock()
	defer s.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if nil != s.pending {
		s.pending.Release()
	}
	s.signal()
}

// must hold lock
func (s *Stepper) signal() {
	close(s.changed)
	s.changed = make(chan struct{})
}
