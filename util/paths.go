// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// AbsoluteFile - clean a file name and make it absolute with respect
// to the current directory
func AbsoluteFile(name string) (string, error) {
	return filepath.Abs(filepath.Clean(name))
}

// MakeDirectory - a relative directory is taken to be below base,
// the result is created if missing and returned as a clean path
func MakeDirectory(base string, directory string) (string, error) {
	if !filepath.IsAbs(directory) {
		directory = filepath.Join(base, directory)
	}
	directory = filepath.Clean(directory)
	if err := os.MkdirAll(directory, 0700); nil != err {
		return "", err
	}
	return directory, nil
}

// FileExists - true for an existing file or directory
func FileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
