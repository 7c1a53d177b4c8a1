// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ScriptError - a failing line of a script
type ScriptError struct {
	Line int
	Text string
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("line %d: %q: %s", e.Line, e.Text, e.Err)
}

// Unwrap - the underlying fault
func (e *ScriptError) Unwrap() error {
	return e.Err
}

// RunScript - execute one command per line, blank lines and lines
// starting with # are skipped; returns the number of commands run
func RunScript(s *Session, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	n := 0
	line := 0
	for scanner.Scan() {
		line += 1
		text := strings.TrimSpace(scanner.Text())
		if "" == text || strings.HasPrefix(text, "#") {
			continue
		}
		cmd, err := ParseCommand(text)
		if nil != err {
			return n, &ScriptError{Line: line, Text: text, Err: err}
		}
		if err := s.Execute(cmd); nil != err {
			return n, &ScriptError{Line: line, Text: text, Err: err}
		}
		n += 1
	}
	return n, scanner.Err()
}
