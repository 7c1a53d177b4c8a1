// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package observer

import (
	"github.com/bitmark-inc/avlstep/avl"
)

// List - fan out to several observers
//
// a pause is announced to every member that is a PauseNotifier and
// then held once by the list's own pacer; members' WaitForContinue
// is never called
type List struct {
	observers []avl.Observer
	pacer     Pacer
}

// NewList - create a fan out list, a nil pacer never blocks
func NewList(pacer Pacer, observers ...avl.Observer) *List {
	list := &List{
		observers: make([]avl.Observer, 0, len(observers)),
		pacer:     pacer,
	}
	for _, o := range observers {
		if nil != o {
			list.observers = append(list.observers, o)
		}
	}
	return list
}

// NotifyStep - to every member
func (list *List) NotifyStep(root *avl.Node, message string) {
	for _, o := range list.observers {
		o.NotifyStep(root, message)
	}
}

// NotifyHighlight - to every member
func (list *List) NotifyHighlight(node *avl.Node, tag avl.Tag) {
	for _, o := range list.observers {
		o.NotifyHighlight(node, tag)
	}
}

// NotifyCheckpoint - to every member
func (list *List) NotifyCheckpoint(label string) {
	for _, o := range list.observers {
		o.NotifyCheckpoint(label)
	}
}

// NotifyPause - to every member that accepts it
func (list *List) NotifyPause(explanation string) {
	for _, o := range list.observers {
		if n, ok := o.(PauseNotifier); ok {
			n.NotifyPause(explanation)
		}
	}
}

// WaitForContinue - announce then block on the single pacer
func (list *List) WaitForContinue(explanation string) {
	list.NotifyPause(explanation)
	if nil != list.pacer {
		list.pacer.WaitForContinue(explanation)
	}
}
