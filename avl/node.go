// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	key    int   // key part for ordering
	height int   // height of the sub-tree rooted here, a leaf is 1
}

// allocate a new leaf
func newNode(key int) *Node {
	return &Node{
		key:    key,
		height: 1,
	}
}

// Key - read the key from a node item
func (p *Node) Key() int {
	return p.key
}

// Left - left child or nil
func (p *Node) Left() *Node {
	if nil == p {
		return nil
	}
	return p.left
}

// Right - right child or nil
func (p *Node) Right() *Node {
	if nil == p {
		return nil
	}
	return p.right
}

// Height - cached height of the sub-tree, zero for a nil node
func (p *Node) Height() int {
	return height(p)
}

// Balance - right height minus left height, zero for a nil node
func (p *Node) Balance() int {
	if nil == p {
		return 0
	}
	return height(p.right) - height(p.left)
}

// ChildrenAtDepth - returns all nodes at a specific depth below this one
func (p *Node) ChildrenAtDepth(depth uint) []*Node {
	if nil == p {
		return nil
	}
	if 0 == depth {
		return []*Node{p}
	}
	nodes := []*Node{}
	if nil != p.left {
		nodes = append(nodes, p.left.ChildrenAtDepth(depth-1)...)
	}
	if nil != p.right {
		nodes = append(nodes, p.right.ChildrenAtDepth(depth-1)...)
	}
	return nodes
}

// the height of an absent sub-tree is zero
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute from the children, which must already be current
func fixHeight(p *Node) {
	p.height = 1 + max(height(p.left), height(p.right))
}
