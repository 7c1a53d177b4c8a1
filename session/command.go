// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package session

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/avlstep/fault"
)

// Operation - what a command does
type Operation int

// all operations
const (
	Insert Operation = iota
	Delete
	Contains
	Print
	Clear
	Next
)

// String - name of the operation
func (op Operation) String() string {
	switch op {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Contains:
		return "contains"
	case Print:
		return "print"
	case Clear:
		return "clear"
	case Next:
		return "next"
	default:
		return "unknown"
	}
}

// HasKey - true if the operation takes a key
func (op Operation) HasKey() bool {
	return Insert == op || Delete == op || Contains == op
}

// Command - a parsed line of input
type Command struct {
	Operation Operation
	Key       int
}

// String - canonical text form, accepted by ParseCommand
func (c Command) String() string {
	if c.Operation.HasKey() {
		return c.Operation.String() + " " + strconv.Itoa(c.Key)
	}
	return c.Operation.String()
}

var words = map[string]Operation{
	"insert":   Insert,
	"add":      Insert,
	"i":        Insert,
	"delete":   Delete,
	"remove":   Delete,
	"d":        Delete,
	"contains": Contains,
	"find":     Contains,
	"c":        Contains,
	"print":    Print,
	"p":        Print,
	"clear":    Clear,
	"next":     Next,
	"n":        Next,
}

var prefixes = map[byte]Operation{
	'+': Insert,
	'-': Delete,
	'?': Contains,
}

// ParseCommand - convert one line of input
//
// accepts "insert 5", "i 5", "+5", "delete 5", "remove 5", "d 5",
// "-5", "contains 5", "c 5", "?5", "print", "clear" and "next";
// "+-5" inserts minus five
func ParseCommand(text string) (Command, error) {
	fields := strings.Fields(text)
	if 0 == len(fields) {
		return Command{}, fault.ErrInvalidCommand
	}

	word := strings.ToLower(fields[0])
	if op, ok := words[word]; ok {
		if !op.HasKey() {
			if 1 != len(fields) {
				return Command{}, fault.ErrInvalidCommand
			}
			return Command{Operation: op}, nil
		}
		switch len(fields) {
		case 1:
			return Command{}, fault.ErrMissingKey
		case 2:
			return withKey(op, fields[1])
		default:
			return Command{}, fault.ErrInvalidCommand
		}
	}

	if op, ok := prefixes[word[0]]; ok && 1 == len(fields) {
		if 1 == len(word) {
			return Command{}, fault.ErrMissingKey
		}
		return withKey(op, word[1:])
	}
	return Command{}, fault.ErrInvalidCommand
}

func withKey(op Operation, s string) (Command, error) {
	key, err := strconv.Atoi(s)
	if nil != err {
		return Command{}, fault.ErrInvalidKey
	}
	return Command{Operation: op, Key: key}, nil
}
