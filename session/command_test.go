// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlstep/fault"
	"github.com/bitmark-inc/avlstep/session"
)

func TestParseCommand(t *testing.T) {
	items := []struct {
		text     string
		expected session.Command
	}{
		{"insert 5", session.Command{Operation: session.Insert, Key: 5}},
		{"  I   12 ", session.Command{Operation: session.Insert, Key: 12}},
		{"+7", session.Command{Operation: session.Insert, Key: 7}},
		{"+-7", session.Command{Operation: session.Insert, Key: -7}},
		{"insert -3", session.Command{Operation: session.Insert, Key: -3}},
		{"delete 5", session.Command{Operation: session.Delete, Key: 5}},
		{"remove 9", session.Command{Operation: session.Delete, Key: 9}},
		{"d 1", session.Command{Operation: session.Delete, Key: 1}},
		{"-5", session.Command{Operation: session.Delete, Key: 5}},
		{"contains 4", session.Command{Operation: session.Contains, Key: 4}},
		{"c 4", session.Command{Operation: session.Contains, Key: 4}},
		{"?4", session.Command{Operation: session.Contains, Key: 4}},
		{"print", session.Command{Operation: session.Print}},
		{"CLEAR", session.Command{Operation: session.Clear}},
		{"next", session.Command{Operation: session.Next}},
		{"n", session.Command{Operation: session.Next}},
	}

	for i, item := range items {
		cmd, err := session.ParseCommand(item.text)
		assert.Nil(t, err, "%d: %q: error", i, item.text)
		assert.Equal(t, item.expected, cmd, "%d: %q", i, item.text)
	}
}

func TestParseCommandErrors(t *testing.T) {
	items := []struct {
		text     string
		expected error
	}{
		{"", fault.ErrInvalidCommand},
		{"   ", fault.ErrInvalidCommand},
		{"jump 5", fault.ErrInvalidCommand},
		{"insert", fault.ErrMissingKey},
		{"+", fault.ErrMissingKey},
		{"insert five", fault.ErrInvalidKey},
		{"?x", fault.ErrInvalidKey},
		{"insert 1 2", fault.ErrInvalidCommand},
		{"print 3", fault.ErrInvalidCommand},
		{"+ 5", fault.ErrInvalidCommand},
		{"insert 99999999999999999999999", fault.ErrInvalidKey},
	}

	for i, item := range items {
		_, err := session.ParseCommand(item.text)
		assert.Equal(t, item.expected, err, "%d: %q", i, item.text)
		assert.True(t, fault.IsErrInvalid(err), "%d: class", i)
	}
}

func TestCommandString(t *testing.T) {
	for _, text := range []string{"insert 5", "delete -2", "contains 0", "print", "clear", "next"} {
		cmd, err := session.ParseCommand(text)
		assert.NoError(t, err, text)
		assert.Equal(t, text, cmd.String(), "round trip")
	}
}
