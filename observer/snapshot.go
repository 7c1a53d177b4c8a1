// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package observer

import (
	"github.com/bitmark-inc/avlstep/avl"
)

// Snapshot - an immutable copy of a sub-tree
type Snapshot struct {
	Key     int       `json:"key"`
	Height  int       `json:"height"`
	Balance int       `json:"balance"`
	Left    *Snapshot `json:"left,omitempty"`
	Right   *Snapshot `json:"right,omitempty"`
}

// Take - copy the sub-tree rooted at p, nil for an empty sub-tree
func Take(p *avl.Node) *Snapshot {
	if nil == p {
		return nil
	}
	return &Snapshot{
		Key:     p.Key(),
		Height:  p.Height(),
		Balance: p.Balance(),
		Left:    Take(p.Left()),
		Right:   Take(p.Right()),
	}
}

// Count - number of nodes
func (s *Snapshot) Count() int {
	if nil == s {
		return 0
	}
	return 1 + s.Left.Count() + s.Right.Count()
}

// Keys - keys in ascending order
func (s *Snapshot) Keys() []int {
	k := make([]int, 0, s.Count())
	s.Walk(func(n *Snapshot) {
		k = append(k, n.Key)
	})
	return k
}

// Find - the node holding key or nil
func (s *Snapshot) Find(key int) *Snapshot {
	for p := s; nil != p; {
		switch {
		case key < p.Key:
			p = p.Left
		case key > p.Key:
			p = p.Right
		default:
			return p
		}
	}
	return nil
}

// Walk - visit every node in key order
func (s *Snapshot) Walk(f func(*Snapshot)) {
	if nil == s {
		return
	}
	s.Left.Walk(f)
	f(s)
	s.Right.Walk(f)
}
