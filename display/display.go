// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package display - render a tree snapshot as rows of text, one row
// per level with the edges between them
package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bitmark-inc/avlstep/avl"
	"github.com/bitmark-inc/avlstep/observer"
)

// Empty - rendering of a tree with no nodes
const Empty = "(empty)"

// Highlight - the node to mark
type Highlight struct {
	Key    int
	Tag    avl.Tag
	Active bool
}

// Options - rendering choices
type Options struct {
	Plain   bool               // no styling, the highlight is bracketed
	Details bool               // append the balance factor to each key
	Colours map[avl.Tag]string // lipgloss colour per tag, missing uses the default
}

// default colours per tag
var defaultColours = map[avl.Tag]string{
	avl.TagInserted: "2", // green
	avl.TagPivot:    "3", // yellow
	avl.TagRemoved:  "1", // red
}

// positioned node
type cell struct {
	node  *observer.Snapshot
	label string
	x     int // centre column
}

// Render - lay out the snapshot
//
// every node sits in its own column band in key order so parents are
// always between their children
func Render(s *observer.Snapshot, h Highlight, options Options) string {
	if nil == s {
		return Empty
	}

	labels := make(map[*observer.Snapshot]string)
	width := 0
	s.Walk(func(n *observer.Snapshot) {
		l := label(n, h, options)
		labels[n] = l
		if len(l) > width {
			width = len(l)
		}
	})
	width += 1

	position := make(map[*observer.Snapshot]int)
	index := 0
	s.Walk(func(n *observer.Snapshot) {
		position[n] = index*width + width/2
		index += 1
	})
	total := index * width

	rows := []string{}
	level := []*observer.Snapshot{s}
	for 0 != len(level) {
		cells := make([]cell, 0, len(level))
		next := []*observer.Snapshot{}
		for _, n := range level {
			cells = append(cells, cell{node: n, label: labels[n], x: position[n]})
			if nil != n.Left {
				next = append(next, n.Left)
			}
			if nil != n.Right {
				next = append(next, n.Right)
			}
		}
		rows = append(rows, nodeRow(cells, h, options))
		if 0 != len(next) {
			rows = append(rows, edgeRow(level, position, total))
		}
		level = next
	}
	return strings.Join(rows, "\n")
}

func label(n *observer.Snapshot, h Highlight, options Options) string {
	l := strconv.Itoa(n.Key)
	if options.Details {
		l = fmt.Sprintf("%s%+d", l, n.Balance)
	}
	if options.Plain && h.Active && h.Key == n.Key {
		l = "[" + l + "]"
	}
	return l
}

// one row of keys, each centred on its column
func nodeRow(cells []cell, h Highlight, options Options) string {
	var b strings.Builder
	column := 0
	for _, c := range cells {
		start := c.x - len(c.label)/2
		if start < column {
			start = column
		}
		b.WriteString(strings.Repeat(" ", start-column))
		b.WriteString(styled(c, h, options))
		column = start + len(c.label)
	}
	return strings.TrimRight(b.String(), " ")
}

func styled(c cell, h Highlight, options Options) string {
	if options.Plain || !h.Active || h.Key != c.node.Key {
		return c.label
	}
	colour, ok := options.Colours[h.Tag]
	if !ok {
		colour = defaultColours[h.Tag]
	}
	style := lipgloss.NewStyle().Bold(true)
	if "" != colour {
		style = style.Foreground(lipgloss.Color(colour))
	}
	return style.Render(c.label)
}

// the edges below one level, each edge half way between parent and child
func edgeRow(level []*observer.Snapshot, position map[*observer.Snapshot]int, total int) string {
	row := []rune(strings.Repeat(" ", total))
	for _, n := range level {
		x := position[n]
		if nil != n.Left {
			row[(x+position[n.Left])/2] = '/'
		}
		if nil != n.Right {
			row[(x+position[n.Right]+1)/2] = '\\'
		}
	}
	return strings.TrimRight(string(row), " ")
}

// Sideways - the snapshot in the same sideways format as avl.Tree.Print
func Sideways(s *observer.Snapshot, details bool) string {
	var b strings.Builder
	sideways(&b, s, "", 0, details)
	return b.String()
}

func sideways(b *strings.Builder, s *observer.Snapshot, prefix string, branch int, details bool) {
	if nil == s {
		return
	}
	if nil != s.Right {
		t := "       "
		if 1 == branch {
			t = "|      "
		}
		sideways(b, s.Right, prefix+t, 2, details)
	}
	switch branch {
	case 0:
		b.WriteString(prefix + "|------+ ")
	case 1:
		b.WriteString(prefix + "\\------+ ")
	case 2:
		b.WriteString(prefix + "/------+ ")
	}
	if details {
		fmt.Fprintf(b, "%d h:%d %+2d\n", s.Key, s.Height, s.Balance)
	} else {
		fmt.Fprintf(b, "%d\n", s.Key)
	}
	if nil != s.Left {
		t := "       "
		if 2 == branch {
			t = "|      "
		}
		sideways(b, s.Left, prefix+t, 1, details)
	}
}
