// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queue carrying algorithm events from the go
// routine mutating a tree to the go routine displaying it
package messagebus
