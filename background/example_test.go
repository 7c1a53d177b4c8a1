// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"

	"github.com/bitmark-inc/avlstep/background"
)

type theState struct {
	name string
}

func Example() {
	proc := &theState{
		name: "pump",
	}

	p := background.Start(background.Processes{proc}, nil)
	p.Stop()

	// Output:
	// pump: initialise
	// pump: finalise
}

func (state *theState) Run(args interface{}, shutdown <-chan struct{}) {
	fmt.Printf("%s: initialise\n", state.name)
	<-shutdown
	fmt.Printf("%s: finalise\n", state.name)
}
