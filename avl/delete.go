// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// Delete - removes a key from the tree and rebalances every node on
// the path back to the root, returns false if the key was not present
func (tree *Tree) Delete(key int) bool {
	root, removed := remove(tree.root, key, tree)
	if !removed {
		return false
	}

	tree.root = root
	tree.count -= 1
	tree.deletes.Increment()

	message := fmt.Sprintf("removed %d", key)
	tree.observer.NotifyHighlight(nil, TagNone)
	tree.observer.NotifyStep(tree.root, message)
	tree.observer.WaitForContinue(fmt.Sprintf("%s, all ancestors rebalanced", message))
	tree.check()
	return true
}

// hook: p is about to be spliced out, or is the successor donor
func (tree *Tree) found(p *Node) {
	tree.observer.NotifyHighlight(p, TagRemoved)
	switch {
	case nil == p.left && nil == p.right:
		tree.observer.NotifyCheckpoint(fmt.Sprintf("remove leaf %d", p.key))
	case nil == p.left || nil == p.right:
		tree.observer.NotifyCheckpoint(fmt.Sprintf("splice out %d", p.key))
	}
}

// hook: two children, the in-order successor key moves up
func (tree *Tree) replaced(p *Node, successor int) {
	tree.observer.NotifyCheckpoint(fmt.Sprintf("replace %d with in-order successor %d", p.key, successor))
}
