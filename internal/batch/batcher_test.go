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

package batch

import (
	"sync"
	"testing"
	"time"
)

func collector[T any]() (Callback[T], func() [][]T) {
	var mu sync.Mutex
	var batches [][]T
	cb := func(batch []T) error {
		mu.Lock()
		defer mu.Unlock()
		batches = append(batches, batch)
		return nil
	}
	get := func() [][]T {
		mu.Lock()
		defer mu.Unlock()
		out := make([][]T, len(batches))
		copy(out, batches)
		return out
	}
	return cb, get
}

func TestBatcherFlushesAtSize(t *testing.T) {
	cb, get := collector[int]()
	b := New(3, time.Hour, cb)
	defer b.Close()

	for i := 0; i < 3; i++ {
		if err := b.Add(i); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	batches := get()
	if len(batches) != 1 || len(batches[0]) != 3 {
		t.Fatalf("expected one batch of 3, got %v", batches)
	}
}

func TestBatcherFlushesOnTimeout(t *testing.T) {
	cb, get := collector[int]()
	b := New(100, 20*time.Millisecond, cb)
	defer b.Close()

	if err := b.Add(1); err != nil {
		t.Fatalf("Add: %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	batches := get()
	if len(batches) != 1 || len(batches[0]) != 1 {
		t.Fatalf("expected one batch of 1 after timeout, got %v", batches)
	}
}

func TestBatcherTimerDoesNotFlushEmptyBatch(t *testing.T) {
	cb, get := collector[int]()
	b := New(10, 10*time.Millisecond, cb)
	defer b.Close()

	time.Sleep(50 * time.Millisecond)

	if batches := get(); len(batches) != 0 {
		t.Fatalf("expected no batches from an empty accumulator, got %v", batches)
	}
}

func TestBatcherCloseFlushesPartialBatch(t *testing.T) {
	cb, get := collector[int]()
	b := New(10, time.Hour, cb)

	if err := b.Add(1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := b.Add(2); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	batches := get()
	if len(batches) != 1 || len(batches[0]) != 2 {
		t.Fatalf("expected final partial flush of 2, got %v", batches)
	}

	// Close is idempotent and must not re-flush.
	if err := b.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if batches := get(); len(batches) != 1 {
		t.Fatalf("expected no extra flush from second Close, got %v", batches)
	}
}

func TestBatcherNoDoubleDeliveryOnRace(t *testing.T) {
	cb, get := collector[int]()
	// Size large enough to never trigger, timeout short so we race
	// Close against the timer firing.
	b := New(1000, 5*time.Millisecond, cb)

	if err := b.Add(1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	time.Sleep(10 * time.Millisecond) // let the timer win the race
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	batches := get()
	total := 0
	for _, bt := range batches {
		total += len(bt)
	}
	if total != 1 {
		t.Fatalf("expected exactly 1 item delivered exactly once, got %d across %v", total, batches)
	}
}
