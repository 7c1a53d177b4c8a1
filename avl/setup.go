// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlstep/counter"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	root     *Node
	count    int
	observer Observer
	verify   bool

	inserts        counter.Counter
	deletes        counter.Counter
	leftRotations  counter.Counter
	rightRotations counter.Counter
}

// Statistics - totals since the tree was created
type Statistics struct {
	Inserts        uint64 `json:"inserts"`
	Deletes        uint64 `json:"deletes"`
	LeftRotations  uint64 `json:"left_rotations"`
	RightRotations uint64 `json:"right_rotations"`
}

// New - create an initially empty tree with no observer
func New() *Tree {
	return NewObserved(nil)
}

// NewObserved - create an initially empty tree reporting to an observer
func NewObserved(observer Observer) *Tree {
	tree := &Tree{
		root:  nil,
		count: 0,
	}
	tree.SetObserver(observer)
	return tree
}

// SetObserver - replace the observer, nil restores the default
//
// must not be called while a mutation is in progress
func (tree *Tree) SetObserver(observer Observer) {
	if nil == observer {
		observer = NopObserver{}
	}
	tree.observer = observer
}

// Verify - when enabled every completed insert or delete is followed
// by a full invariant check and a failure is fatal
func (tree *Tree) Verify(enable bool) {
	tree.verify = enable
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - height of the whole tree
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Clear - drop all nodes, statistics are kept
func (tree *Tree) Clear() {
	tree.root = nil
	tree.count = 0
}

// Stats - read the operation counters
//
// safe to call from any go routine
func (tree *Tree) Stats() Statistics {
	return Statistics{
		Inserts:        tree.inserts.Uint64(),
		Deletes:        tree.deletes.Uint64(),
		LeftRotations:  tree.leftRotations.Uint64(),
		RightRotations: tree.rightRotations.Uint64(),
	}
}
