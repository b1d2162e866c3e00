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

// Package event implements the event stage: it renders timestamp
// batches into event batches through a configured event plugin,
// preserving arrival order across batch boundaries.
package event

import (
	"time"

	"github.com/eventum/eventum/internal/config"
)

// Plugin is the event family's capability contract: a pure-ish
// function of a timestamp to zero-or-more events, with internal state
// private to the stage permitted across calls.
type Plugin interface {
	// Render produces the ordered, possibly empty, sequence of events
	// for one timestamp.
	Render(timestamp time.Time) ([]string, error)
}

// Constructor builds a Plugin from its options document, returning a
// core.ConfigurationError on any validation failure.
type Constructor func(options config.Options) (Plugin, error)
