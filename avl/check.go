// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlstep/fault"
)

// Check - verify the ordering, height, balance and count invariants
func (tree *Tree) Check() error {
	return checkTree(tree.root, tree.count, true)
}

// internal: fatal check after a mutation, only when enabled
func (tree *Tree) check() {
	if !tree.verify {
		return
	}
	if err := tree.Check(); nil != err {
		fault.Panicf("avl: invariant broken after mutation: %s", err)
	}
}

func checkTree(root *Node, count int, balanced bool) error {
	n, err := checkNode(root, nil, nil, balanced)
	if nil != err {
		return err
	}
	if n != count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker, keys must lie strictly between the
// bounds, returns the number of nodes in the sub-tree
func checkNode(p *Node, low *int, high *int, balanced bool) (int, error) {
	if nil == p {
		return 0, nil
	}
	if (nil != low && p.key <= *low) || (nil != high && p.key >= *high) {
		return 0, fault.ErrOrderViolation
	}
	nl, err := checkNode(p.left, low, &p.key, balanced)
	if nil != err {
		return 0, err
	}
	nr, err := checkNode(p.right, &p.key, high, balanced)
	if nil != err {
		return 0, err
	}
	if p.height != 1+max(height(p.left), height(p.right)) {
		return 0, fault.ErrHeightMismatch
	}
	if balanced {
		if bf := height(p.right) - height(p.left); bf < -1 || bf > 1 {
			return 0, fault.ErrUnbalanced
		}
	}
	return 1 + nl + nr, nil
}
