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

import "sync/atomic"

// ProcessedEventsCounter is a monotonically increasing count of events
// that reached the output stage. It is written only by the output
// stage (ingress semantics: the full batch length is added regardless
// of how many events any individual sink actually wrote) and may be
// read by any number of observers, e.g. the supervisor or a metrics
// exporter.
type ProcessedEventsCounter struct {
	value int64
}

// Add increments the counter by n and returns the new value.
func (c *ProcessedEventsCounter) Add(n int64) int64 {
	return atomic.AddInt64(&c.value, n)
}

// Load returns the current value.
func (c *ProcessedEventsCounter) Load() int64 {
	return atomic.LoadInt64(&c.value)
}
