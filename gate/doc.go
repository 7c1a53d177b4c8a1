// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package gate - cooperative pauses for single stepping an algorithm
//
// A Gate is a single use rendezvous: any number of Wait calls block
// until one Release.  A Stepper hands out a fresh gate for every pause
// and decides how it is released: by an explicit Continue, by a rate
// limited clock, or immediately.
package gate
