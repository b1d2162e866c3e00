// Copyright 2026 The Eventum Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import "sync"

// DoneSignal is a per-stage one-shot latch: initially not set, set once
// by the owning stage on exit (success or failure), never cleared.
// Set is idempotent; Wait and IsSet may be called any number of times
// by any number of observers.
type DoneSignal struct {
	once sync.Once
	ch   chan struct{}
	code int
}

// NewDoneSignal creates an unset done signal.
func NewDoneSignal() *DoneSignal {
	return &DoneSignal{ch: make(chan struct{})}
}

// Set latches the signal with the stage's exit code. Only the first
// call has any effect.
func (d *DoneSignal) Set(exitCode int) {
	d.once.Do(func() {
		d.code = exitCode
		close(d.ch)
	})
}

// Wait blocks until Set has been called and returns the exit code.
func (d *DoneSignal) Wait() int {
	<-d.ch
	return d.code
}

// Done returns a channel that is closed once Set has been called, for
// use in select statements alongside other done signals.
func (d *DoneSignal) Done() <-chan struct{} {
	return d.ch
}

// IsSet reports whether Set has already been called, without blocking.
func (d *DoneSignal) IsSet() bool {
	select {
	case <-d.ch:
		return true
	default:
		return false
	}
}
