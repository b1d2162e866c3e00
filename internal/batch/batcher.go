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

// Package batch implements the scoped size/timeout accumulator used by
// the input and event stages to group items before handing them to a
// (possibly blocking) downstream callback.
package batch

import (
	"sync"
	"time"
)

// Callback receives one flushed batch. It may block — the intended
// backpressure path when the downstream queue is full. If it returns an
// error the batch is still considered delivered; the batcher never
// retries.
type Callback[T any] func(batch []T) error

// Batcher accumulates items of type T and flushes them to callback
// either when size items have been added, or when timeout has elapsed
// since the oldest item currently pending, whichever happens first.
//
// A Batcher is owned by a single producer goroutine for Add/Flush, but
// Close may race with an in-flight timer-triggered flush; both paths
// take the same mutex so a batch is never delivered twice and no items
// are lost.
type Batcher[T any] struct {
	size     int
	timeout  time.Duration
	callback Callback[T]

	mu      sync.Mutex
	pending []T
	timer   *time.Timer
	closed  bool
}

// New creates a batcher; its timeout timer is armed by the first Add of
// each batch. Callers must Close it (typically via defer) to guarantee
// the final flush on scope exit.
func New[T any](size int, timeout time.Duration, callback Callback[T]) *Batcher[T] {
	return &Batcher[T]{
		size:     size,
		timeout:  timeout,
		callback: callback,
		pending:  make([]T, 0, size),
	}
}

// Add appends item to the current batch, flushing immediately if size
// is reached.
func (b *Batcher[T]) Add(item T) error {
	b.mu.Lock()

	b.pending = append(b.pending, item)
	if len(b.pending) == 1 {
		b.armTimerLocked()
	}

	var err error
	if len(b.pending) >= b.size {
		err = b.flushLocked()
	}
	b.mu.Unlock()
	return err
}

// Flush delivers the current batch if non-empty, and is a no-op
// otherwise.
func (b *Batcher[T]) Flush() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flushLocked()
}

// Close stops the timer and performs the final flush. Safe to call more
// than once.
func (b *Batcher[T]) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	return b.flushLocked()
}

// flushLocked must be called with b.mu held. It never flushes an empty
// batch, matching the "timer must not flush empty batches" invariant.
func (b *Batcher[T]) flushLocked() error {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	if len(b.pending) == 0 {
		return nil
	}
	out := b.pending
	b.pending = make([]T, 0, b.size)
	return b.callback(out)
}

// armTimerLocked starts the flush-on-timeout watchdog for the oldest
// pending item. Must be called with b.mu held, and only while the
// batch was empty before this call (so the timeout is measured from
// the first element's arrival).
func (b *Batcher[T]) armTimerLocked() {
	if b.timeout <= 0 || b.closed {
		return
	}
	b.timer = time.AfterFunc(b.timeout, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		// The timer may fire after a concurrent size-triggered flush
		// already emptied the batch (flushLocked clears b.timer under
		// the same lock) or after Close; flushLocked's empty-batch
		// no-op makes this race harmless either way.
		_ = b.flushLocked()
	})
}
