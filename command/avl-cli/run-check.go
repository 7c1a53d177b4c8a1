// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlstep/avl"
	"github.com/bitmark-inc/avlstep/fault"
)

type checkReply struct {
	Operations int            `json:"operations"`
	Seed       int64          `json:"seed"`
	Count      int            `json:"count"`
	Height     int            `json:"height"`
	Stats      avl.Statistics `json:"stats"`
}

func runCheck(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	seed := c.Int64("seed")
	keyRange := c.Int("range")
	if count <= 0 || keyRange <= 0 {
		return fault.ErrInvalidCount
	}

	r := rand.New(rand.NewSource(seed))
	tree := avl.New()
	present := make(map[int]struct{})

	for i := 0; i < count; i += 1 {
		key := r.Intn(keyRange)
		_, found := present[key]
		if r.Intn(3) < 2 {
			if tree.Insert(key) == found {
				return fmt.Errorf("operation: %d insert: %d: %w", i, key, fault.ErrCountMismatch)
			}
			present[key] = struct{}{}
		} else {
			if tree.Delete(key) != found {
				return fmt.Errorf("operation: %d delete: %d: %w", i, key, fault.ErrCountMismatch)
			}
			delete(present, key)
		}
		if err := tree.Check(); nil != err {
			return fmt.Errorf("operation: %d key: %d: %w", i, key, err)
		}
	}

	if tree.Count() != len(present) {
		return fault.ErrCountMismatch
	}

	reply := checkReply{
		Operations: count,
		Seed:       seed,
		Count:      tree.Count(),
		Height:     tree.Height(),
		Stats:      tree.Stats(),
	}
	m.log.Infof("check: %+v", reply)
	return printJson(m.w, reply)
}
