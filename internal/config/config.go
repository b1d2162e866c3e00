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
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// TimeMode selects how the input stage drives its plugin.
type TimeMode string

const (
	// TimeModeLive runs the input plugin in real time, indefinitely.
	TimeModeLive TimeMode = "live"
	// TimeModeSample runs the input plugin over a bounded, pre-computable
	// sequence of timestamps.
	TimeModeSample TimeMode = "sample"
)

// PluginEntry pairs a plugin kind discriminant with its options
// document.
type PluginEntry struct {
	Kind    string
	Options Options
}

// Settings holds the process-wide batching tunables.
type Settings struct {
	EventsBatchSize    int
	EventsBatchTimeout time.Duration
	OutputBatchSize    int
	OutputBatchTimeout time.Duration
}

// DefaultSettings returns the tunables used when a document omits the
// Settings section or individual keys within it.
func DefaultSettings() Settings {
	return Settings{
		EventsBatchSize:    256,
		EventsBatchTimeout: 500 * time.Millisecond,
		OutputBatchSize:    256,
		OutputBatchTimeout: 500 * time.Millisecond,
	}
}

// Config is the parsed, not-yet-re-validated PluginConfiguration for an
// entire run: exactly one input plugin, exactly one event plugin, one
// or more output plugins, and the shared tunables.
type Config struct {
	Input    PluginEntry
	TimeMode TimeMode
	Event    PluginEntry
	Outputs  []PluginEntry
	Settings Settings
}

// document mirrors the on-disk YAML configuration shape.
type document struct {
	Input    map[string]map[interface{}]interface{} `yaml:"Input"`
	Event    map[string]map[interface{}]interface{} `yaml:"Event"`
	Output   map[string]map[interface{}]interface{} `yaml:"Output"`
	Settings map[string]interface{}                 `yaml:"Settings"`
}

// Load reads and parses a YAML configuration file from path. The
// pipeline core trusts the result and never re-validates it.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg := &Config{Settings: DefaultSettings()}

	input, mode, err := parseInput(doc.Input)
	if err != nil {
		return nil, err
	}
	cfg.Input = input
	cfg.TimeMode = mode

	event, err := parseSingle("Event", doc.Event)
	if err != nil {
		return nil, err
	}
	cfg.Event = event

	outputs, err := parseOutputs(doc.Output)
	if err != nil {
		return nil, err
	}
	cfg.Outputs = outputs

	if err := applySettings(&cfg.Settings, doc.Settings); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseInput(raw map[string]map[interface{}]interface{}) (PluginEntry, TimeMode, error) {
	entry, err := parseSingle("Input", raw)
	if err != nil {
		return PluginEntry{}, "", err
	}

	reader := NewOptionsReader(entry.Kind, entry.Options)
	mode := TimeMode(reader.GetString("Mode", string(TimeModeSample)))
	if mode != TimeModeLive && mode != TimeModeSample {
		return PluginEntry{}, "", fmt.Errorf("input %q: unknown Mode %q", entry.Kind, mode)
	}
	return entry, mode, nil
}

func parseSingle(section string, raw map[string]map[interface{}]interface{}) (PluginEntry, error) {
	if len(raw) != 1 {
		return PluginEntry{}, fmt.Errorf("%s: expected exactly one plugin entry, found %d", section, len(raw))
	}
	for kind, values := range raw {
		options, err := toMarshalMap(values)
		if err != nil {
			return PluginEntry{}, fmt.Errorf("%s %q: %w", section, kind, err)
		}
		return PluginEntry{Kind: kind, Options: options}, nil
	}
	panic("unreachable")
}

func parseOutputs(raw map[string]map[interface{}]interface{}) ([]PluginEntry, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("Output: at least one plugin entry is required")
	}
	entries := make([]PluginEntry, 0, len(raw))
	for kind, values := range raw {
		options, err := toMarshalMap(values)
		if err != nil {
			return nil, fmt.Errorf("Output %q: %w", kind, err)
		}
		entries = append(entries, PluginEntry{Kind: kind, Options: options})
	}
	return entries, nil
}

func applySettings(s *Settings, raw map[string]interface{}) error {
	if raw == nil {
		return nil
	}
	options, err := toMarshalMap(raw)
	if err != nil {
		return fmt.Errorf("Settings: %w", err)
	}
	reader := NewOptionsReader("Settings", options)
	s.EventsBatchSize = reader.GetInt("EventsBatchSize", s.EventsBatchSize)
	s.OutputBatchSize = reader.GetInt("OutputBatchSize", s.OutputBatchSize)
	if ms := reader.GetInt("EventsBatchTimeoutMS", -1); ms >= 0 {
		s.EventsBatchTimeout = time.Duration(ms) * time.Millisecond
	}
	if ms := reader.GetInt("OutputBatchTimeoutMS", -1); ms >= 0 {
		s.OutputBatchTimeout = time.Duration(ms) * time.Millisecond
	}
	return nil
}
