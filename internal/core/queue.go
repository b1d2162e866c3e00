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

// Package core holds the primitive types shared by every pipeline stage:
// the bounded inter-stage queue, the one-shot done signal and the
// process-wide processed-events counter.
package core

import "sync"

// Queue is a bounded, FIFO channel of batches with a single sentinel.
// Put blocks when the queue is full; this is the pipeline's only
// backpressure path. Close is the sentinel: it may be called more than
// once (e.g. from a deferred cleanup after an explicit send), but only
// the first call actually closes the underlying channel, so exactly one
// "no more data" signal is ever observed by Get.
type Queue[T any] struct {
	ch        chan T
	closeOnce sync.Once
}

// NewQueue creates a queue with the given capacity (the configured
// batch-queue depth).
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{ch: make(chan T, capacity)}
}

// Put enqueues a batch, blocking while the queue is full.
func (q *Queue[T]) Put(item T) {
	q.ch <- item
}

// Get dequeues a batch. ok is false once the queue has been closed and
// drained — the sentinel condition.
func (q *Queue[T]) Get() (item T, ok bool) {
	item, ok = <-q.ch
	return
}

// Close sends the sentinel. Safe to call multiple times or concurrently;
// only the first caller closes the channel.
func (q *Queue[T]) Close() {
	q.closeOnce.Do(func() {
		close(q.ch)
	})
}
