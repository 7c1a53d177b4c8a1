// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// Insert - insert a new key into the tree and rebalance every
// ancestor of the new leaf, returns false for a duplicate key, which
// leaves the tree untouched
func (tree *Tree) Insert(key int) bool {
	root, added := insert(tree.root, key, tree)
	if !added {
		return false
	}

	// an empty tree has no parent frame to report the placement
	if nil == tree.root {
		tree.root = root
		tree.announcePlacement(root, fmt.Sprintf("placed %d as the root", key))
	}

	tree.root = root
	tree.count += 1
	tree.inserts.Increment()

	tree.observer.NotifyHighlight(nil, TagNone)
	tree.observer.NotifyStep(tree.root, fmt.Sprintf("inserted %d", key))
	tree.check()
	return true
}

// hook: a new leaf is linked, the path above it is not yet rebalanced
// but the tree is consistent so it can be shown whole
func (tree *Tree) placed(parent *Node, leaf *Node) {
	side := "left"
	if leaf == parent.right {
		side = "right"
	}
	tree.announcePlacement(leaf, fmt.Sprintf("placed %d to the %s of %d", leaf.key, side, parent.key))
}

func (tree *Tree) announcePlacement(leaf *Node, message string) {
	tree.observer.NotifyHighlight(leaf, TagInserted)
	tree.observer.NotifyStep(tree.root, message)
	tree.observer.WaitForContinue(fmt.Sprintf("%s, next: rebalance towards the root", message))
}
