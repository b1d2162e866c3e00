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

import "testing"

func TestDoneSignalIsSetBeforeSet(t *testing.T) {
	d := NewDoneSignal()
	if d.IsSet() {
		t.Fatal("expected IsSet false before Set")
	}
}

func TestDoneSignalSetLatchesFirstExitCode(t *testing.T) {
	d := NewDoneSignal()
	d.Set(7)
	d.Set(9)

	if !d.IsSet() {
		t.Fatal("expected IsSet true after Set")
	}
	if code := d.Wait(); code != 7 {
		t.Fatalf("expected latched exit code 7, got %d", code)
	}
}

func TestDoneSignalDoneChannelClosesOnSet(t *testing.T) {
	d := NewDoneSignal()
	select {
	case <-d.Done():
		t.Fatal("expected Done channel open before Set")
	default:
	}

	d.Set(0)

	select {
	case <-d.Done():
	default:
		t.Fatal("expected Done channel closed after Set")
	}
}
