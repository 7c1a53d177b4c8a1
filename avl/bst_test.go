// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlstep/avl"
)

func TestBSTDegenerates(t *testing.T) {
	tree := avl.NewBST()
	for i := 1; i <= 10; i += 1 {
		assert.True(t, tree.Insert(i), "insert: %d", i)
	}
	assert.Equal(t, 10, tree.Height(), "a chain")
	assert.Equal(t, 10, tree.Count(), "count")
	assert.Equal(t, 1, tree.Root().Key(), "root never moves")
	assert.NoError(t, tree.Check(), "check")

	balanced := avl.New()
	for i := 1; i <= 10; i += 1 {
		balanced.Insert(i)
	}
	assert.Equal(t, 4, balanced.Height(), "balanced height")
	assert.Equal(t, tree.Keys(), balanced.Keys(), "same keys")
}

func TestBSTDelete(t *testing.T) {
	tree := avl.NewBST()
	for _, key := range []int{50, 30, 70, 20, 40, 60, 80, 65} {
		tree.Insert(key)
	}

	assert.False(t, tree.Insert(40), "duplicate")
	assert.False(t, tree.Delete(99), "absent")

	// two children: the successor 60 takes the place of 50
	assert.True(t, tree.Delete(50), "delete root")
	assert.Equal(t, 60, tree.Root().Key(), "successor")
	assert.Equal(t, 65, tree.Root().Right().Left().Key(), "successor's child spliced up")
	assert.NoError(t, tree.Check(), "check")

	assert.True(t, tree.Delete(20), "leaf")
	assert.True(t, tree.Delete(30), "one child")
	assert.Equal(t, 40, tree.Root().Left().Key(), "spliced")
	assert.Equal(t, []int{40, 60, 65, 70, 80}, tree.Keys(), "keys")
	assert.NoError(t, tree.Check(), "check")

	for _, key := range tree.Keys() {
		assert.True(t, tree.Delete(key), "delete: %d", key)
	}
	assert.True(t, tree.IsEmpty(), "empty")
	assert.False(t, tree.Contains(40), "contains")
}

func TestBSTPrint(t *testing.T) {
	tree := avl.NewBST()
	tree.Insert(1)
	tree.Insert(2)

	buffer := bytes.Buffer{}
	assert.Equal(t, 2, tree.Fprint(&buffer, true), "depth")
	expected := "       /------+ 2 h:1 +0\n" +
		"|------+ 1 h:2 +1\n"
	assert.Equal(t, expected, buffer.String(), "output")
}
