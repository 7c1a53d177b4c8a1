// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/bitmark-inc/avlstep/fault"
)

// all arguments must be integer keys
func keysFromArguments(arguments []string) ([]int, error) {
	if 0 == len(arguments) {
		return nil, fault.ErrMissingKey
	}
	keys := make([]int, 0, len(arguments))
	for _, a := range arguments {
		key, err := strconv.Atoi(a)
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		keys = append(keys, key)
	}
	return keys, nil
}
