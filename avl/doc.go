// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of integer keys that reports
// each step of its algorithm to an injected observer
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or serialise the mutations; an observer pause
// blocks the mutating go routine until it is released.
//
// Nodes carry a cached height rather than a balance field, there are
// no parent pointers: every recursive step returns the replacement
// sub-tree and the caller relinks it.
//
// The unbalanced binary search tree primitive is shared: BST uses it
// directly and Tree uses it with a rebalancing hook that is applied
// to every node on the unwind of the search path.
package avl
