// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlstep/avl"
	"github.com/bitmark-inc/avlstep/display"
	"github.com/bitmark-inc/avlstep/observer"
)

type buildReply struct {
	Keys     []int              `json:"keys"`
	Count    int                `json:"count"`
	Height   int                `json:"height"`
	Balanced bool               `json:"balanced"`
	Stats    *avl.Statistics    `json:"stats,omitempty"`
	Tree     *observer.Snapshot `json:"tree"`
}

func runBuild(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	keys, err := keysFromArguments(c.Args())
	if nil != err {
		return err
	}

	reply := buildReply{
		Balanced: !c.Bool("unbalanced"),
	}
	var root *avl.Node
	if c.Bool("unbalanced") {
		tree := avl.NewBST()
		for _, key := range keys {
			tree.Insert(key)
		}
		if err := tree.Check(); nil != err {
			return err
		}
		reply.Keys = tree.Keys()
		reply.Count = tree.Count()
		reply.Height = tree.Height()
		root = tree.Root()
	} else {
		tree := avl.New()
		for _, key := range keys {
			tree.Insert(key)
		}
		if err := tree.Check(); nil != err {
			return err
		}
		stats := tree.Stats()
		reply.Keys = tree.Keys()
		reply.Count = tree.Count()
		reply.Height = tree.Height()
		reply.Stats = &stats
		root = tree.Root()
	}
	reply.Tree = observer.Take(root)

	if m.verbose {
		m.log.Infof("build: keys: %d  height: %d", reply.Count, reply.Height)
	}

	if c.Bool("json") {
		return printJson(m.w, reply)
	}

	if c.Bool("levels") {
		fmt.Fprintf(m.w, "%s\n", display.Render(reply.Tree, display.Highlight{}, display.Options{
			Plain:   true,
			Details: c.Bool("details"),
		}))
	} else {
		fmt.Fprint(m.w, display.Sideways(reply.Tree, c.Bool("details")))
	}
	if nil != reply.Stats {
		fmt.Fprintf(m.w, "count: %d  height: %d  rotations: left: %d  right: %d\n",
			reply.Count, reply.Height, reply.Stats.LeftRotations, reply.Stats.RightRotations)
	} else {
		fmt.Fprintf(m.w, "count: %d  height: %d\n", reply.Count, reply.Height)
	}
	return nil
}
