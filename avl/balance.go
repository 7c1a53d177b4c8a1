// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avlstep/fault"
)

// hook: applied to every node on the unwind of insert and delete
func (tree *Tree) settle(p *Node) *Node {
	return tree.rebalance(p)
}

// right height minus left height
func (tree *Tree) balanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	tree.observer.NotifyCheckpoint(fmt.Sprintf("balance check at %d", p.key))
	return height(p.right) - height(p.left)
}

// restore the balance of p, whose children are already balanced and
// whose height is current, returns the new sub-tree root
func (tree *Tree) rebalance(p *Node) *Node {
	switch bf := tree.balanceFactor(p); bf {
	case -1, 0, +1:
		return p

	case -2: // left heavy
		if tree.balanceFactor(p.left) > 0 {
			// left-right: straighten the left child first
			p.left = tree.rotateLeft(p.left)
		}
		return tree.rotateRight(p)

	case +2: // right heavy
		if tree.balanceFactor(p.right) < 0 {
			// right-left: straighten the right child first
			p.right = tree.rotateRight(p.right)
		}
		return tree.rotateLeft(p)

	default:
		fault.Panicf("avl: balance factor: %d at key: %d", bf, p.key)
	}
	return p
}

// single right rotation, the left child becomes the sub-tree root
func (tree *Tree) rotateRight(pivot *Node) *Node {
	tree.observer.NotifyHighlight(pivot, TagPivot)

	newRoot := pivot.left
	pivot.left = newRoot.right
	newRoot.right = pivot

	fixHeight(pivot)
	fixHeight(newRoot)
	tree.rightRotations.Increment()

	message := fmt.Sprintf("rotated right at %d", pivot.key)
	tree.observer.NotifyStep(newRoot, message)
	tree.observer.WaitForContinue(fmt.Sprintf("%s, %d is the new sub-tree root", message, newRoot.key))
	return newRoot
}

// single left rotation, the right child becomes the sub-tree root
func (tree *Tree) rotateLeft(pivot *Node) *Node {
	tree.observer.NotifyHighlight(pivot, TagPivot)

	newRoot := pivot.right
	pivot.right = newRoot.left
	newRoot.left = pivot

	fixHeight(pivot)
	fixHeight(newRoot)
	tree.leftRotations.Increment()

	message := fmt.Sprintf("rotated left at %d", pivot.key)
	tree.observer.NotifyStep(newRoot, message)
	tree.observer.WaitForContinue(fmt.Sprintf("%s, %d is the new sub-tree root", message, newRoot.key))
	return newRoot
}
