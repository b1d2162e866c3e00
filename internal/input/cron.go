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

	"github.com/robfig/cron/v3"

	"github.com/eventum/eventum/internal/config"
	"github.com/eventum/eventum/internal/core"
)

func init() {
	Register("cron", newCronPlugin)
}

// cronPlugin emits timestamps along a standard 5-field cron schedule,
// grounded on streamspace's scheduler.go use of robfig/cron/v3 for the
// same "next fire time" computation.
type cronPlugin struct {
	schedule cron.Schedule
	start    time.Time
	count    int // SAMPLE mode only; 0 means unset/LIVE-only
}

func newCronPlugin(options config.Options) (Plugin, Capabilities, error) {
	reader := config.NewOptionsReader("cron", options)
	expr := reader.Require("Expression")
	if reader.Errors.Len() > 0 {
		return nil, Capabilities{}, core.NewConfigurationError("cron", "missing required option Expression")
	}

	schedule, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, Capabilities{}, core.NewConfigurationError("cron", "invalid Expression %q: %v", expr, err)
	}

	start := time.Now()
	if raw := reader.GetString("Start", ""); raw != "" {
		parsed, parseErr := time.Parse(time.RFC3339, raw)
		if parseErr != nil {
			return nil, Capabilities{}, core.NewConfigurationError("cron", "invalid Start %q: %v", raw, parseErr)
		}
		start = parsed
	}

	count := reader.GetInt("Count", 0)

	p := &cronPlugin{schedule: schedule, start: start, count: count}
	return p, Capabilities{Live: true, Sample: count > 0}, nil
}

// Sample computes the first p.count fire times after p.start by
// repeated Schedule.Next — a pure function of the plugin's
// configuration.
func (p *cronPlugin) Sample(onTimestamp OnTimestamp) error {
	t := p.start
	for i := 0; i < p.count; i++ {
		t = p.schedule.Next(t)
		if err := onTimestamp(t); err != nil {
			return err
		}
	}
	return nil
}

// Live arms a timer for each successive Schedule.Next call,
// indefinitely, until onTimestamp reports an error. On SIGINT the
// driver exits the process directly; Live is not told.
func (p *cronPlugin) Live(onTimestamp OnTimestamp) error {
	next := p.schedule.Next(time.Now())
	for {
		timer := time.NewTimer(time.Until(next))
		<-timer.C
		if err := onTimestamp(next); err != nil {
			return err
		}
		next = p.schedule.Next(next)
	}
}
