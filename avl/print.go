// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"os"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree on
// stdout, the tree grows to the right with the right sub-tree on top
func (tree *Tree) Print(details bool) int {
	return printTree(os.Stdout, tree.root, "", root, details)
}

// Fprint - as Print but to any writer
func (tree *Tree) Fprint(w io.Writer, details bool) int {
	return printTree(w, tree.root, "", root, details)
}

// Fprint - the unbalanced tree in the same format
func (tree *BST) Fprint(w io.Writer, details bool) int {
	return printTree(w, tree.root, "", root, details)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, p *Node, prefix string, br branch, details bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right, details)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if details {
		fmt.Fprintf(w, "%d h:%d %+2d\n", p.key, p.height, p.Balance())
	} else {
		fmt.Fprintf(w, "%d\n", p.key)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left, details)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
