// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlstep/avl"
	"github.com/bitmark-inc/avlstep/observer"
)

type traceOperation struct {
	Operation string   `json:"operation"`
	Key       int      `json:"key"`
	Changed   bool     `json:"changed"`
	Events    []string `json:"events"`
}

type traceReply struct {
	Operations []traceOperation `json:"operations"`
	Keys       []int            `json:"keys"`
	Stats      avl.Statistics   `json:"stats"`
}

func runTrace(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	keys, err := keysFromArguments(c.Args())
	if nil != err {
		return err
	}

	recorder := observer.NewRecorder(nil)
	var o avl.Observer = recorder
	if m.verbose {
		o = observer.NewList(nil, recorder, observer.NewLogging(m.log, nil))
	}
	tree := avl.NewObserved(o)
	tree.Verify(true)

	reply := traceReply{
		Operations: make([]traceOperation, 0, len(keys)),
	}
	trace := func(operation string, key int, f func(int) bool) {
		recorder.Reset()
		changed := f(key)
		reply.Operations = append(reply.Operations, traceOperation{
			Operation: operation,
			Key:       key,
			Changed:   changed,
			Events:    recorder.Events(),
		})
	}

	for _, key := range keys {
		trace("insert", key, tree.Insert)
	}
	for _, key := range c.IntSlice("delete") {
		trace("delete", key, tree.Delete)
	}
	reply.Keys = tree.Keys()
	reply.Stats = tree.Stats()

	if c.Bool("json") {
		return printJson(m.w, reply)
	}

	for _, op := range reply.Operations {
		fmt.Fprintf(m.w, "%s %d:", op.Operation, op.Key)
		if !op.Changed {
			fmt.Fprintf(m.w, " no change\n")
			continue
		}
		fmt.Fprintf(m.w, "\n")
		for _, e := range op.Events {
			fmt.Fprintf(m.w, "  %s\n", e)
		}
	}
	fmt.Fprintf(m.w, "keys: %v\n", reply.Keys)
	return nil
}
