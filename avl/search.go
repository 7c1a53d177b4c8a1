// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific key, nil if not present
func (tree *Tree) Search(key int) *Node {
	return search(key, tree.root)
}

// Contains - true if the key is present
func (tree *Tree) Contains(key int) bool {
	return nil != search(key, tree.root)
}
