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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleDoc = `
Input:
  cron:
    Expression: "*/5 * * * *"
    Mode: sample
    Count: 10
Event:
  template:
    Templates:
      - "{{.Sequence}}: {{.Timestamp}}"
Output:
  stdout:
    Format: raw
  file:
    Path: /tmp/eventum-events.log
    Format: json
Settings:
  EventsBatchSize: 64
  OutputBatchTimeoutMS: 250
`

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "eventum.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestLoadParsesAllSections(t *testing.T) {
	path := writeTemp(t, sampleDoc)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Input.Kind != "cron" {
		t.Fatalf("expected input kind cron, got %q", cfg.Input.Kind)
	}
	if cfg.TimeMode != TimeModeSample {
		t.Fatalf("expected sample mode, got %q", cfg.TimeMode)
	}
	if cfg.Event.Kind != "template" {
		t.Fatalf("expected event kind template, got %q", cfg.Event.Kind)
	}
	if len(cfg.Outputs) != 2 {
		t.Fatalf("expected 2 outputs, got %d", len(cfg.Outputs))
	}
	if cfg.Settings.EventsBatchSize != 64 {
		t.Fatalf("expected EventsBatchSize 64, got %d", cfg.Settings.EventsBatchSize)
	}
	if cfg.Settings.OutputBatchTimeout != 250*time.Millisecond {
		t.Fatalf("expected OutputBatchTimeout 250ms, got %v", cfg.Settings.OutputBatchTimeout)
	}
	// Untouched tunable keeps its default.
	if cfg.Settings.EventsBatchTimeout != DefaultSettings().EventsBatchTimeout {
		t.Fatalf("expected default EventsBatchTimeout, got %v", cfg.Settings.EventsBatchTimeout)
	}
}

func TestLoadRejectsMultipleInputEntries(t *testing.T) {
	path := writeTemp(t, `
Input:
  cron:
    Expression: "* * * * *"
  interval:
    Every: 1s
Event:
  template:
    Templates: ["x"]
Output:
  stdout:
    Format: raw
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for multiple input entries")
	}
}

func TestLoadRejectsEmptyOutputs(t *testing.T) {
	path := writeTemp(t, `
Input:
  cron:
    Expression: "* * * * *"
Event:
  template:
    Templates: ["x"]
Output: {}
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty Output mapping")
	}
}
