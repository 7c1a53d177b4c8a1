// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package observer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlstep/avl"
	"github.com/bitmark-inc/avlstep/observer"
)

func TestRecorderRootInsert(t *testing.T) {
	r := observer.NewRecorder(nil)
	tree := avl.NewObserved(r)

	tree.Insert(10)

	expected := []string{
		"highlight:10:inserted",
		"step:placed 10 as the root",
		"pause:placed 10 as the root, next: rebalance towards the root",
		"highlight:nil",
		"step:inserted 10",
	}
	assert.Equal(t, expected, r.Events(), "root insert events")
}

func TestRecorderLeftRotation(t *testing.T) {
	r := observer.NewRecorder(nil)
	tree := avl.NewObserved(r)

	tree.Insert(10)
	tree.Insert(20)
	r.Reset()
	tree.Insert(30)

	expected := []string{
		"highlight:30:inserted",
		"step:placed 30 to the right of 20",
		"pause:placed 30 to the right of 20, next: rebalance towards the root",
		"checkpoint:balance check at 20",
		"checkpoint:balance check at 10",
		"checkpoint:balance check at 20",
		"highlight:10:pivot",
		"step:rotated left at 10",
		"pause:rotated left at 10, 20 is the new sub-tree root",
		"highlight:nil",
		"step:inserted 30",
	}
	assert.Equal(t, expected, r.Events(), "left rotation events")
	assert.Equal(t, []string{"placed 30 to the right of 20", "rotated left at 10", "inserted 30"}, r.Filter(observer.StepPrefix), "steps")
}

func TestRecorderDuplicateAndAbsent(t *testing.T) {
	r := observer.NewRecorder(nil)
	tree := avl.NewObserved(r)
	tree.Insert(5)
	r.Reset()

	assert.False(t, tree.Insert(5), "duplicate")
	assert.False(t, tree.Delete(7), "absent")
	assert.Empty(t, r.Events(), "no events")
}

func TestRecorderDeleteTwoChildren(t *testing.T) {
	r := observer.NewRecorder(nil)
	tree := avl.NewObserved(r)
	for _, k := range []int{20, 10, 30, 25} {
		tree.Insert(k)
	}
	r.Reset()

	assert.True(t, tree.Delete(20), "delete root")

	checkpoints := r.Filter(observer.CheckpointPrefix)
	assert.Contains(t, checkpoints, "replace 20 with in-order successor 25", "successor")
	assert.Contains(t, checkpoints, "remove leaf 25", "donor removal")
	assert.Contains(t, r.Events(), "highlight:20:removed", "target highlight")
	assert.Equal(t, []string{"removed 20, all ancestors rebalanced"}, r.Filter(observer.PausePrefix), "final pause")
	assert.Equal(t, 25, tree.Root().Key(), "new root")
}

func TestRecorderPacer(t *testing.T) {
	pacer := &countingPacer{}
	r := observer.NewRecorder(pacer)
	tree := avl.NewObserved(r)
	for _, k := range []int{10, 20, 30} {
		tree.Insert(k)
	}
	assert.Equal(t, len(r.Filter(observer.PausePrefix)), pacer.count(), "every pause reaches the pacer")
	assert.Equal(t, 4, pacer.count(), "three placements and one rotation")
}
