// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/bitmark-inc/avlstep/avl"
)

type operation struct {
	insert bool
	key    int
}

func operationGenerator() *rapid.Generator[operation] {
	return rapid.Custom(func(t *rapid.T) operation {
		return operation{
			insert: rapid.Float64Range(0, 1).Draw(t, "p") < 0.65,
			key:    rapid.IntRange(-64, 64).Draw(t, "key"),
		}
	})
}

// in-order keys of the reference set
func referenceKeys(set map[int]struct{}) []int {
	k := make([]int, 0, len(set))
	for key := range set {
		k = append(k, key)
	}
	sort.Ints(k)
	return k
}

// recompute the height and balance of every node independently of
// the cached values
func checkShape(t *rapid.T, p *avl.Node) int {
	if nil == p {
		return 0
	}
	lh := checkShape(t, p.Left())
	rh := checkShape(t, p.Right())
	if nil != p.Left() && p.Left().Key() >= p.Key() {
		t.Fatalf("order: left: %d  >= %d", p.Left().Key(), p.Key())
	}
	if nil != p.Right() && p.Right().Key() <= p.Key() {
		t.Fatalf("order: right: %d  <= %d", p.Right().Key(), p.Key())
	}
	h := 1 + max(lh, rh)
	if h != p.Height() {
		t.Fatalf("height at: %d  cached: %d  actual: %d", p.Key(), p.Height(), h)
	}
	if bf := rh - lh; bf < -1 || bf > 1 {
		t.Fatalf("balance at: %d  is: %d", p.Key(), bf)
	}
	return h
}

func TestTreeMatchesReferenceSet(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ops := rapid.SliceOfN(operationGenerator(), 0, 200).Draw(t, "ops")

		tree := avl.New()
		tree.Verify(true)
		set := make(map[int]struct{})

		for _, op := range ops {
			_, present := set[op.key]
			if op.insert {
				assert.Equal(t, !present, tree.Insert(op.key), "insert: %d", op.key)
				set[op.key] = struct{}{}
			} else {
				assert.Equal(t, present, tree.Delete(op.key), "delete: %d", op.key)
				delete(set, op.key)
			}
			checkShape(t, tree.Root())
		}

		assert.Equal(t, referenceKeys(set), tree.Keys(), "in-order keys")
		assert.Equal(t, len(set), tree.Count(), "count")
		for key := -64; key <= 64; key += 1 {
			_, present := set[key]
			assert.Equal(t, present, tree.Contains(key), "contains: %d", key)
		}
	})
}

func TestDuplicateInsertKeepsShape(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOfNDistinct(rapid.IntRange(0, 1000), 1, 100, rapid.ID[int]).Draw(t, "keys")
		index := rapid.IntRange(0, len(keys)-1).Draw(t, "index")

		tree := avl.New()
		for _, key := range keys {
			tree.Insert(key)
		}
		before := observeShape(tree.Root())
		assert.False(t, tree.Insert(keys[index]), "duplicate")
		assert.Equal(t, before, observeShape(tree.Root()), "shape")
	})
}

// pre-order key:height pairs
func observeShape(p *avl.Node) [][2]int {
	if nil == p {
		return nil
	}
	s := [][2]int{{p.Key(), p.Height()}}
	s = append(s, observeShape(p.Left())...)
	return append(s, observeShape(p.Right())...)
}

// the unbalanced tree follows the reference set too, its shape is
// only ordered
func TestBSTMatchesReferenceSet(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ops := rapid.SliceOfN(operationGenerator(), 0, 200).Draw(t, "ops")

		tree := avl.NewBST()
		set := make(map[int]struct{})

		for _, op := range ops {
			_, present := set[op.key]
			if op.insert {
				assert.Equal(t, !present, tree.Insert(op.key), "insert: %d", op.key)
				set[op.key] = struct{}{}
			} else {
				assert.Equal(t, present, tree.Delete(op.key), "delete: %d", op.key)
				delete(set, op.key)
			}
			if err := tree.Check(); nil != err {
				t.Fatalf("check: %s", err)
			}
		}
		assert.Equal(t, referenceKeys(set), tree.Keys(), "in-order keys")
	})
}
