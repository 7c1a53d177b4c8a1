// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tag - the reason a node is highlighted
type Tag string

// highlight tags
const (
	TagNone     Tag = ""         // clears any highlight
	TagInserted Tag = "inserted" // newly placed leaf
	TagPivot    Tag = "pivot"    // node being rotated
	TagRemoved  Tag = "removed"  // node being deleted
)

// Observer - receives the steps of the algorithm as they happen
//
// all calls are made on the go routine performing the mutation, an
// implementation that hands nodes to another go routine must copy
// them first since the tree continues to change once the call returns
type Observer interface {
	// a structurally significant change, root is the sub-tree affected
	NotifyStep(root *Node, message string)

	// mark a node of interest, a nil node clears the mark
	NotifyHighlight(node *Node, tag Tag)

	// an internal logic point for tracing
	NotifyCheckpoint(label string)

	// block until released, used to single step the algorithm
	WaitForContinue(explanation string)
}

// NopObserver - ignores everything and never blocks
type NopObserver struct{}

// NotifyStep - ignored
func (NopObserver) NotifyStep(*Node, string) {}

// NotifyHighlight - ignored
func (NopObserver) NotifyHighlight(*Node, Tag) {}

// NotifyCheckpoint - ignored
func (NopObserver) NotifyCheckpoint(string) {}

// WaitForContinue - returns immediately
func (NopObserver) WaitForContinue(string) {}
