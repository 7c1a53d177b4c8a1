// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlstep/util"
)

func TestAbsoluteFile(t *testing.T) {
	name, err := util.AbsoluteFile("a/../b/avlview.conf")
	assert.Nil(t, err, "absolute")
	assert.True(t, filepath.IsAbs(name), "is absolute: %q", name)
	assert.Equal(t, "avlview.conf", filepath.Base(name), "base")
	assert.Equal(t, "b", filepath.Base(filepath.Dir(name)), "cleaned")
}

func TestMakeDirectory(t *testing.T) {
	base := t.TempDir()

	relative, err := util.MakeDirectory(base, "log/")
	assert.Nil(t, err, "relative")
	assert.Equal(t, filepath.Join(base, "log"), relative, "below base")
	assert.True(t, util.FileExists(relative), "created")

	absolute := filepath.Join(t.TempDir(), "other")
	made, err := util.MakeDirectory(base, absolute)
	assert.Nil(t, err, "absolute")
	assert.Equal(t, absolute, made, "base ignored")

	// a plain file blocks the directory
	blocker := filepath.Join(base, "file")
	assert.Nil(t, os.WriteFile(blocker, []byte("x"), 0600), "write")
	_, err = util.MakeDirectory(blocker, "sub")
	assert.Error(t, err, "below a file")
}

func TestFileExists(t *testing.T) {
	name := filepath.Join(t.TempDir(), "present")
	assert.False(t, util.FileExists(name), "before")
	assert.Nil(t, os.WriteFile(name, nil, 0600), "write")
	assert.True(t, util.FileExists(name), "after")
}
