// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlstep/fault"
)

func TestKeysFromArguments(t *testing.T) {
	keys, err := keysFromArguments([]string{"3", "-1", "7"})
	assert.Nil(t, err, "valid keys")
	assert.Equal(t, []int{3, -1, 7}, keys, "keys")

	_, err = keysFromArguments(nil)
	assert.Equal(t, fault.ErrMissingKey, err, "no keys")

	_, err = keysFromArguments([]string{"3", "x"})
	assert.Equal(t, fault.ErrInvalidKey, err, "bad key")
}

func TestLogConfiguration(t *testing.T) {
	c := logConfiguration(testingDirName, false)
	assert.Equal(t, testingDirName, c.Directory, "directory")
	assert.GreaterOrEqual(t, c.Count, 10, "rotated file count")
	assert.False(t, c.Console, "console")
	assert.Equal(t, "critical", c.Levels[logger.DefaultTag], "quiet level")

	c = logConfiguration(testingDirName, true)
	assert.Equal(t, "info", c.Levels[logger.DefaultTag], "verbose level")
}

// every command passes through app.Before, which starts logging
func TestEveryCommandStarts(t *testing.T) {
	for _, args := range [][]string{
		{"version"},
		{"build", "10", "20", "30"},
		{"trace", "1"},
		{"check", "--count", "100"},
	} {
		_, _, err := run(args...)
		assert.NoError(t, err, "command: %v", args)
	}
}

func TestBuild(t *testing.T) {
	out, _, err := run("build", "2", "1", "3")
	assert.Nil(t, err, "build")

	expected := "       /------+ 3\n" +
		"|------+ 2\n" +
		"       \\------+ 1\n" +
		"count: 3  height: 2  rotations: left: 0  right: 0\n"
	assert.Equal(t, expected, out, "sideways output")
}

func TestBuildLevels(t *testing.T) {
	out, _, err := run("build", "--levels", "2", "1", "3")
	assert.Nil(t, err, "build")
	assert.True(t, strings.HasPrefix(out, "   2\n  / \\\n 1   3\n"), "levels output: %q", out)
}

func TestBuildJSON(t *testing.T) {
	out, _, err := run("build", "--json", "1", "2", "3", "4", "5", "6", "7")
	assert.Nil(t, err, "build")

	reply := buildReply{}
	assert.Nil(t, json.Unmarshal([]byte(out), &reply), "decode")
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, reply.Keys, "keys")
	assert.Equal(t, 7, reply.Count, "count")
	assert.Equal(t, 3, reply.Height, "height")
	assert.True(t, reply.Balanced, "balanced")
	assert.Equal(t, 4, reply.Tree.Key, "root")
	if assert.NotNil(t, reply.Stats, "stats") {
		assert.Equal(t, uint64(7), reply.Stats.Inserts, "inserts")
		assert.Equal(t, uint64(4), reply.Stats.LeftRotations, "left rotations")
	}
}

func TestBuildUnbalanced(t *testing.T) {
	out, _, err := run("build", "--json", "--unbalanced", "1", "2", "3", "4")
	assert.Nil(t, err, "build")

	reply := buildReply{}
	assert.Nil(t, json.Unmarshal([]byte(out), &reply), "decode")
	assert.False(t, reply.Balanced, "balanced")
	assert.Equal(t, 4, reply.Height, "degenerate height")
	assert.Equal(t, 1, reply.Tree.Key, "root")
	assert.Nil(t, reply.Stats, "no rotation statistics")
}

func TestBuildBadKey(t *testing.T) {
	_, _, err := run("build", "1", "two")
	assert.Equal(t, fault.ErrInvalidKey, err, "bad key")
}

func TestTrace(t *testing.T) {
	out, _, err := run("trace", "--delete", "99", "10", "20", "30")
	assert.Nil(t, err, "trace")

	assert.Contains(t, out, "insert 30:\n", "insert heading")
	assert.Contains(t, out, "  highlight:10:pivot\n", "pivot highlight")
	assert.Contains(t, out, "  pause:rotated left at 10, 20 is the new sub-tree root\n", "rotation pause")
	assert.Contains(t, out, "delete 99: no change\n", "absent key")
	assert.True(t, strings.HasSuffix(out, "keys: [10 20 30]\n"), "final keys: %q", out)
}

func TestTraceJSON(t *testing.T) {
	out, _, err := run("trace", "--json", "--delete", "10", "10", "20")
	assert.Nil(t, err, "trace")

	reply := traceReply{}
	assert.Nil(t, json.Unmarshal([]byte(out), &reply), "decode")
	if assert.Len(t, reply.Operations, 3, "operations") {
		assert.Equal(t, "insert", reply.Operations[0].Operation, "first")
		assert.Equal(t, "delete", reply.Operations[2].Operation, "last")
		assert.True(t, reply.Operations[2].Changed, "deleted")
		assert.NotEmpty(t, reply.Operations[2].Events, "delete events")
	}
	assert.Equal(t, []int{20}, reply.Keys, "keys")
	assert.Equal(t, uint64(1), reply.Stats.Deletes, "deletes")
}

func TestRunScript(t *testing.T) {
	fileName := filepath.Join(testingDirName, "script.txt")
	script := "# sample\n+2\n+1\n\n+3\n?1\n-1\n?1\n+2\n"
	assert.Nil(t, os.WriteFile(fileName, []byte(script), 0600), "write script")

	out, _, err := run("run", fileName)
	assert.Nil(t, err, "run")

	expected := "insert 2: changed: true\n" +
		"insert 1: changed: true\n" +
		"insert 3: changed: true\n" +
		"contains 1: true\n" +
		"delete 1: changed: true\n" +
		"contains 1: false\n" +
		"insert 2: changed: false\n"
	assert.Equal(t, expected, out, "results")
}

func TestRunScriptError(t *testing.T) {
	fileName := filepath.Join(testingDirName, "bad-script.txt")
	assert.Nil(t, os.WriteFile(fileName, []byte("+1\njump 3\n"), 0600), "write script")

	_, _, err := run("run", fileName)
	assert.Error(t, err, "bad line")
	assert.Contains(t, err.Error(), "line 2", "line number")
}

func TestRunScriptNoFile(t *testing.T) {
	_, _, err := run("run")
	assert.Equal(t, fault.ErrMissingFileName, err, "no file")
}

func TestCheck(t *testing.T) {
	out, _, err := run("check", "--count", "2000", "--range", "100", "--seed", "7")
	assert.Nil(t, err, "check")

	reply := checkReply{}
	assert.Nil(t, json.Unmarshal([]byte(out), &reply), "decode")
	assert.Equal(t, 2000, reply.Operations, "operations")
	assert.Equal(t, int64(7), reply.Seed, "seed")
	assert.LessOrEqual(t, reply.Count, 100, "count within range")
	assert.Equal(t, reply.Stats.Inserts-reply.Stats.Deletes, uint64(reply.Count), "count from statistics")
}

func TestCheckBadCount(t *testing.T) {
	_, _, err := run("check", "--count", "0")
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}

func TestVersion(t *testing.T) {
	out, _, err := run("version")
	assert.Nil(t, err, "version")
	assert.Equal(t, version+"\n", out, "version text")
}
