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

package supervisor

import (
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eventum/eventum/internal/config"
	"github.com/eventum/eventum/internal/event"
	"github.com/eventum/eventum/internal/input"
	"github.com/eventum/eventum/internal/output"
)

// sampleInput emits a fixed, known sequence in SAMPLE mode, exercising
// an end-to-end run without depending on wall-clock timing.
type sampleInput struct{ timestamps []time.Time }

func (p *sampleInput) Sample(onTimestamp input.OnTimestamp) error {
	for _, ts := range p.timestamps {
		if err := onTimestamp(ts); err != nil {
			return err
		}
	}
	return nil
}
func (p *sampleInput) Live(onTimestamp input.OnTimestamp) error { panic("not used") }

// stringifyEvent renders each timestamp to "e:<RFC3339>".
type stringifyEvent struct{}

func (stringifyEvent) Render(ts time.Time) ([]string, error) {
	return []string{fmt.Sprintf("e:%s", ts.Format(time.RFC3339))}, nil
}

// captureOutput records every event it receives, exercising end-to-end
// scenario 1's single STDOUT-equivalent sink.
type captureOutput struct {
	mu  sync.Mutex
	got []string
}

func (p *captureOutput) Open() error { return nil }
func (p *captureOutput) Write(event string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.got = append(p.got, event)
	return 1, nil
}
func (p *captureOutput) WriteMany(events []string) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.got = append(p.got, events...)
	return len(events), nil
}
func (p *captureOutput) Close() error { return nil }

func TestEndToEndMinimalSample(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	timestamps := []time.Time{base, base.Add(time.Second), base.Add(2 * time.Second)}

	input.Register("e2e-sample-minimal", func(options config.Options) (input.Plugin, input.Capabilities, error) {
		return &sampleInput{timestamps: timestamps}, input.Capabilities{Sample: true}, nil
	})
	event.Register("e2e-stringify-minimal", func(options config.Options) (event.Plugin, error) {
		return stringifyEvent{}, nil
	})
	capture := &captureOutput{}
	output.Register("e2e-capture-minimal", func(options config.Options) (output.Plugin, error) {
		return capture, nil
	})

	cfg := &config.Config{
		Input:    config.PluginEntry{Kind: "e2e-sample-minimal"},
		TimeMode: config.TimeModeSample,
		Event:    config.PluginEntry{Kind: "e2e-stringify-minimal"},
		Outputs:  []config.PluginEntry{{Kind: "e2e-capture-minimal"}},
		Settings: config.DefaultSettings(),
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	pipeline := New(cfg)
	code := pipeline.Run(logger, cfg)

	if code != 0 {
		t.Fatalf("expected clean exit, got %d", code)
	}
	want := []string{
		"e:" + timestamps[0].Format(time.RFC3339),
		"e:" + timestamps[1].Format(time.RFC3339),
		"e:" + timestamps[2].Format(time.RFC3339),
	}
	if len(capture.got) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(capture.got), capture.got)
	}
	for i := range want {
		if capture.got[i] != want[i] {
			t.Fatalf("event %d: got %q want %q", i, capture.got[i], want[i])
		}
	}
	if pipeline.Counter.Load() != int64(len(timestamps)) {
		t.Fatalf("expected counter %d, got %d", len(timestamps), pipeline.Counter.Load())
	}
	if !pipeline.InputDone.IsSet() || !pipeline.EventDone.IsSet() || !pipeline.OutputDone.IsSet() {
		t.Fatal("expected all three done signals set")
	}
}

func TestEndToEndEmptySample(t *testing.T) {
	input.Register("e2e-sample-empty", func(options config.Options) (input.Plugin, input.Capabilities, error) {
		return &sampleInput{}, input.Capabilities{Sample: true}, nil
	})
	event.Register("e2e-stringify-empty", func(options config.Options) (event.Plugin, error) {
		return stringifyEvent{}, nil
	})
	capture := &captureOutput{}
	output.Register("e2e-capture-empty", func(options config.Options) (output.Plugin, error) {
		return capture, nil
	})

	cfg := &config.Config{
		Input:    config.PluginEntry{Kind: "e2e-sample-empty"},
		TimeMode: config.TimeModeSample,
		Event:    config.PluginEntry{Kind: "e2e-stringify-empty"},
		Outputs:  []config.PluginEntry{{Kind: "e2e-capture-empty"}},
		Settings: config.DefaultSettings(),
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	pipeline := New(cfg)
	code := pipeline.Run(logger, cfg)

	if code != 0 {
		t.Fatalf("expected clean exit on empty sample, got %d", code)
	}
	if pipeline.Counter.Load() != 0 {
		t.Fatalf("expected counter 0, got %d", pipeline.Counter.Load())
	}
	if len(capture.got) != 0 {
		t.Fatalf("expected no events, got %v", capture.got)
	}
}
