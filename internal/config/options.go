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

// Package config loads plugin configuration documents: a validated
// mapping from plugin kind to a plugin-specific options document, read
// once per stage at startup and never re-validated by the pipeline
// itself.
package config

import (
	"time"

	"github.com/trivago/tgo"
	"github.com/trivago/tgo/tcontainer"
)

// Options is a single plugin's options document.
type Options = tcontainer.MarshalMap

// OptionsReader provides typed, defaulted access to an Options document.
// GetDuration and Require push their failures onto Errors instead of
// returning them inline; the other getters fall back to their default
// without recording anything.
type OptionsReader struct {
	Plugin string
	values Options
	Errors *tgo.ErrorStack
}

// NewOptionsReader wraps values for the named plugin kind.
func NewOptionsReader(plugin string, values Options) *OptionsReader {
	errorStack := tgo.NewErrorStack()
	if values == nil {
		values = tcontainer.NewMarshalMap()
	}
	return &OptionsReader{Plugin: plugin, values: values, Errors: &errorStack}
}

// GetString returns values[key] as a string, or defaultValue if unset
// or of the wrong type. Nothing is pushed onto Errors.
func (r *OptionsReader) GetString(key, defaultValue string) string {
	value, err := r.values.String(key)
	if err != nil {
		return defaultValue
	}
	return value
}

// GetInt returns values[key] as an int, or defaultValue if unset.
func (r *OptionsReader) GetInt(key string, defaultValue int) int {
	value, err := r.values.Int(key)
	if err != nil {
		return defaultValue
	}
	return value
}

// GetBool returns values[key] as a bool, or defaultValue if unset.
func (r *OptionsReader) GetBool(key string, defaultValue bool) bool {
	value, err := r.values.Bool(key)
	if err != nil {
		return defaultValue
	}
	return value
}

// GetStringSlice returns values[key] as a []string, or defaultValue if
// unset.
func (r *OptionsReader) GetStringSlice(key string, defaultValue []string) []string {
	value, err := r.values.StringArray(key)
	if err != nil {
		return defaultValue
	}
	return value
}

// GetDuration returns values[key] parsed as a duration string (e.g.
// "500ms"), or defaultValue if unset or unparsable.
func (r *OptionsReader) GetDuration(key string, defaultValue time.Duration) time.Duration {
	raw, err := r.values.String(key)
	if err != nil {
		return defaultValue
	}
	d, parseErr := time.ParseDuration(raw)
	if parseErr != nil {
		r.Errors.Push(parseErr)
		return defaultValue
	}
	return d
}

// HasValue reports whether key is present in the options document.
func (r *OptionsReader) HasValue(key string) bool {
	_, exists := r.values.Value(key)
	return exists
}

// Require returns values[key] as a string. If key is missing or not a
// string it pushes the lookup error onto Errors and returns "" (used
// for options with no sensible default, e.g. a FILE output's Path).
func (r *OptionsReader) Require(key string) string {
	value, err := r.values.String(key)
	if err != nil {
		r.Errors.Push(err)
		return ""
	}
	return value
}

// toMarshalMap recursively converts a yaml.v2-decoded
// map[interface{}]interface{} document into tcontainer.MarshalMap,
// lower-casing no keys — config keys are taken verbatim and are
// case-sensitive.
func toMarshalMap(value interface{}) (Options, error) {
	return tcontainer.ConvertToMarshalMap(value, nil)
}
