// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrConfigurationNotATable = InvalidError("configuration must return a table")
	ErrCountMismatch          = ProcessError("node count does not match tree")
	ErrHeightMismatch         = ProcessError("cached height does not match children")
	ErrInvalidAutoplayRate    = InvalidError("autoplay rate must be positive")
	ErrInvalidCommand         = InvalidError("invalid command")
	ErrInvalidCount           = InvalidError("count must be positive")
	ErrInvalidKey             = InvalidError("key is not an integer")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidStepMode        = InvalidError("step mode must be one of: manual, auto, off")
	ErrMissingFileName        = InvalidError("a file name is required")
	ErrMissingKey             = InvalidError("command requires a key")
	ErrNotFoundConfigFile     = NotFoundError("config file is not found")
	ErrOperationInProgress    = ExistsError("another operation is in progress")
	ErrOrderViolation         = ProcessError("keys are out of order")
	ErrSessionClosed          = ProcessError("session is closed")
	ErrUnbalanced             = ProcessError("balance factor out of range")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
