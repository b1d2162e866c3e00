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

package input

import (
	"time"

	"github.com/eventum/eventum/internal/config"
	"github.com/eventum/eventum/internal/core"
)

func init() {
	Register("interval", newIntervalPlugin)
}

// intervalPlugin emits timestamps at a fixed period, supporting both
// Live and Sample modes.
type intervalPlugin struct {
	start time.Time
	every time.Duration
	count int
}

func newIntervalPlugin(options config.Options) (Plugin, Capabilities, error) {
	reader := config.NewOptionsReader("interval", options)
	every := reader.GetDuration("Every", 0)
	if every <= 0 {
		return nil, Capabilities{}, core.NewConfigurationError("interval", "Every must be a positive duration")
	}

	start := time.Now()
	if raw := reader.GetString("Start", ""); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, Capabilities{}, core.NewConfigurationError("interval", "invalid Start %q: %v", raw, err)
		}
		start = parsed
	}

	count := reader.GetInt("Count", 0)

	p := &intervalPlugin{start: start, every: every, count: count}
	return p, Capabilities{Live: true, Sample: count > 0}, nil
}

// Sample emits p.count timestamps spaced p.every apart starting at
// p.start — a pure function of configuration.
func (p *intervalPlugin) Sample(onTimestamp OnTimestamp) error {
	t := p.start
	for i := 0; i < p.count; i++ {
		if err := onTimestamp(t); err != nil {
			return err
		}
		t = t.Add(p.every)
	}
	return nil
}

// Live emits timestamps on a ticker, indefinitely, until onTimestamp
// reports an error.
func (p *intervalPlugin) Live(onTimestamp OnTimestamp) error {
	ticker := time.NewTicker(p.every)
	defer ticker.Stop()
	for t := range ticker.C {
		if err := onTimestamp(t); err != nil {
			return err
		}
	}
	return nil
}
