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

// Package input implements the input stage: it drives a configured
// time-pattern plugin in either LIVE or SAMPLE mode and feeds emitted
// timestamps through a batcher into the input->event queue.
package input

import (
	"time"

	"github.com/eventum/eventum/internal/config"
)

// OnTimestamp receives one emitted timestamp. Plugins call it once per
// point in their time pattern; the driver supplies an implementation
// that forwards into the stage's batcher.
type OnTimestamp func(time.Time) error

// Plugin is the input family's capability contract: a plugin supports
// Live, Sample, or both, and reports which through Capabilities. The
// registry does not check that at least one is set; a plugin reporting
// neither fails either mode in the driver with UnsupportedModeError.
type Plugin interface {
	// Live emits timestamps in real time, indefinitely. Returns only
	// when onTimestamp or the plugin itself reports an error.
	Live(onTimestamp OnTimestamp) error
	// Sample emits a bounded, pre-computable sequence of timestamps and
	// returns once exhausted.
	Sample(onTimestamp OnTimestamp) error
}

// Capabilities reports which of Live/Sample a plugin actually
// implements, since Plugin must expose both methods in Go but may
// reject calls to the one it doesn't support. A driver that requests
// an unsupported mode fails at run time with a distinguished error.
type Capabilities struct {
	Live   bool
	Sample bool
}

// Constructor builds a Plugin from its options document, returning a
// core.ConfigurationError on any validation failure.
type Constructor func(options config.Options) (Plugin, Capabilities, error)
