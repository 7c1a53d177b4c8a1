// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// hooks - called by the recursive primitives so that a balancing
// engine can observe the search path and restructure each level of
// it as the recursion unwinds
type hooks interface {
	placed(parent *Node, leaf *Node) // new leaf linked below parent
	found(p *Node)                   // node about to be spliced out or overwritten
	replaced(p *Node, successor int) // two child case: key about to be overwritten
	settle(p *Node) *Node            // p.height is current, return the replacement
}

// internal: insert key into the sub-tree p, returns the possibly
// new sub-tree root and whether a node was added.
//
// a duplicate key changes nothing and fires no hooks
func insert(p *Node, key int, h hooks) (*Node, bool) {
	if nil == p {
		return newNode(key), true
	}

	added := false
	switch {
	case key < p.key:
		fresh := nil == p.left
		p.left, added = insert(p.left, key, h)
		if added && fresh {
			h.placed(p, p.left)
		}
	case key > p.key:
		fresh := nil == p.right
		p.right, added = insert(p.right, key, h)
		if added && fresh {
			h.placed(p, p.right)
		}
	default:
		return p, false
	}
	if !added {
		return p, false
	}
	fixHeight(p)
	return h.settle(p), true
}

// internal: delete key from the sub-tree p, returns the possibly new
// sub-tree root and whether a node was removed
//
// a node with two children takes the key of its in-order successor
// and the successor is then removed from the right sub-tree, so the
// unwind passes through the successor's ancestors too
func remove(p *Node, key int, h hooks) (*Node, bool) {
	if nil == p {
		return nil, false
	}

	removed := false
	switch {
	case key < p.key:
		p.left, removed = remove(p.left, key, h)
	case key > p.key:
		p.right, removed = remove(p.right, key, h)
	default:
		h.found(p)
		if nil == p.left {
			return p.right, true
		}
		if nil == p.right {
			return p.left, true
		}
		successor := p.right.first().key
		h.replaced(p, successor)
		p.key = successor
		p.right, removed = remove(p.right, successor, h)
	}
	if !removed {
		return p, false
	}
	fixHeight(p)
	return h.settle(p), true
}

// internal: find the node holding key
func search(key int, p *Node) *Node {
	if nil == p {
		return nil
	}
	switch {
	case key < p.key:
		return search(key, p.left)
	case key > p.key:
		return search(key, p.right)
	default:
		return p
	}
}

// hooks for the unbalanced tree: heights are maintained by the
// primitives, nothing else happens
type plain struct{}

func (plain) placed(*Node, *Node)  {}
func (plain) found(*Node)          {}
func (plain) replaced(*Node, int)  {}
func (plain) settle(p *Node) *Node { return p }

// BST - an unbalanced binary search tree sharing the node layout and
// the recursive primitives of the AVL tree
type BST struct {
	root  *Node
	count int
}

// NewBST - create an initially empty unbalanced tree
func NewBST() *BST {
	return &BST{}
}

// Insert - add a key, false if it was already present
func (tree *BST) Insert(key int) bool {
	added := false
	tree.root, added = insert(tree.root, key, plain{})
	if added {
		tree.count += 1
	}
	return added
}

// Delete - remove a key, false if it was not present
func (tree *BST) Delete(key int) bool {
	removed := false
	tree.root, removed = remove(tree.root, key, plain{})
	if removed {
		tree.count -= 1
	}
	return removed
}

// Contains - true if the key is present
func (tree *BST) Contains(key int) bool {
	return nil != search(key, tree.root)
}

// Root - return the root node of the tree
func (tree *BST) Root() *Node {
	return tree.root
}

// Count - number of nodes currently in the tree
func (tree *BST) Count() int {
	return tree.count
}

// IsEmpty - true if tree contains no data
func (tree *BST) IsEmpty() bool {
	return nil == tree.root
}

// Height - height of the whole tree
func (tree *BST) Height() int {
	return height(tree.root)
}

// Keys - all keys in ascending order
func (tree *BST) Keys() []int {
	return keys(tree.root, tree.count)
}

// Check - verify ordering, heights and count, balance is not required
func (tree *BST) Check() error {
	return checkTree(tree.root, tree.count, false)
}
