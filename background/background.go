// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

import (
	"sync"
)

// Process - a background process, Run must return soon after
// shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a started set of processes
type T struct {
	shutdown chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make(chan struct{}),
	}

	// start each background
	for _, p := range processes {
		register.wg.Add(1)
		go func(p Process) {
			defer register.wg.Done()
			p.Run(args, register.shutdown)
		}(p)
	}
	return register
}

// Stop - stop a set of background processes and wait for them to finish
// calling Stop more than once is harmless
func (t *T) Stop() {
	t.once.Do(func() {
		close(t.shutdown)
	})
	t.wg.Wait()
}
