// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlstep/configuration"
	"github.com/bitmark-inc/avlstep/fault"
)

type pacing struct {
	Mode string  `gluamapper:"mode"`
	Rate float64 `gluamapper:"rate"`
}

type settings struct {
	Name    string   `gluamapper:"name"`
	Keys    []int    `gluamapper:"initial_keys"`
	Pacing  pacing   `gluamapper:"pacing"`
	Unused  string   `gluamapper:"unused"`
	Aliases []string `gluamapper:"aliases"`
}

const source = `
local M = {}
M.name = arg[0]
M.initial_keys = { 30, 20, 40 }
M.pacing = {
    mode = "auto",
    rate = 2.5,
}
M.aliases = { "a", "b" }
return M
`

func TestParseString(t *testing.T) {
	s := settings{
		Unused: "default",
	}
	err := configuration.ParseConfigurationString("inline", source, &s)
	assert.NoError(t, err, "parse")
	assert.Equal(t, "inline", s.Name, "arg[0]")
	assert.Equal(t, []int{30, 20, 40}, s.Keys, "keys")
	assert.Equal(t, "auto", s.Pacing.Mode, "mode")
	assert.Equal(t, 2.5, s.Pacing.Rate, "rate")
	assert.Equal(t, "default", s.Unused, "default kept")
	assert.Equal(t, []string{"a", "b"}, s.Aliases, "aliases")
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "test.conf")
	err := os.WriteFile(fileName, []byte(source), 0600)
	assert.NoError(t, err, "write")

	s := settings{}
	err = configuration.ParseConfigurationFile(fileName, &s)
	assert.NoError(t, err, "parse")
	assert.Equal(t, fileName, s.Name, "arg[0]")
}

func TestParseErrors(t *testing.T) {
	s := settings{}

	err := configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "absent.conf"), &s)
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file")

	err = configuration.ParseConfigurationString("bad", "return {", &s)
	assert.Error(t, err, "syntax")

	err = configuration.ParseConfigurationString("scalar", "return 42", &s)
	assert.Equal(t, fault.ErrConfigurationNotATable, err, "not a table")
}
