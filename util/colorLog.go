// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"strings"

	"github.com/bitmark-inc/logger"
)

// ANSI colour codes
const (
	CoReset  = "\x1b[0m"
	CoBright = "\x1b[1m"
	CoDim    = "\x1b[2m"

	CoRed     = "\x1b[31m"
	CoGreen   = "\x1b[32m"
	CoYellow  = "\x1b[33m"
	CoBlue    = "\x1b[34m"
	CoMagenta = "\x1b[35m"
	CoCyan    = "\x1b[36m"
	CoWhite   = "\x1b[37m"
)

var colourNames = map[string]string{
	"red":     CoRed,
	"green":   CoGreen,
	"yellow":  CoYellow,
	"blue":    CoBlue,
	"magenta": CoMagenta,
	"cyan":    CoCyan,
	"white":   CoWhite,
}

// ColourByName - ANSI code for a colour name, empty if unknown
func ColourByName(name string) string {
	return colourNames[strings.ToLower(strings.TrimSpace(name))]
}

// Colourise - wrap a message in a colour, no colour leaves it unchanged
func Colourise(colour string, message string) string {
	if "" == colour {
		return message
	}
	return colour + message + CoReset
}

// LogDebug - print message in Debug level with assigned colour
func LogDebug(log *logger.L, colour string, message string) {
	log.Debugf("%s", Colourise(colour, message))
}

// LogInfo - print message in Info level with assigned colour
func LogInfo(log *logger.L, colour string, message string) {
	log.Infof("%s", Colourise(colour, message))
}

// LogWarn - print message in Warn level with assigned colour
func LogWarn(log *logger.L, colour string, message string) {
	log.Warnf("%s", Colourise(colour, message))
}
