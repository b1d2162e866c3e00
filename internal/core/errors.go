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

import "fmt"

// ConfigurationError is raised by a plugin's CreateFromConfig. It is
// always fatal at stage startup, before any batch flows.
type ConfigurationError struct {
	Plugin  string
	message string
}

// NewConfigurationError creates a ConfigurationError for the named
// plugin kind.
func NewConfigurationError(plugin string, format string, args ...interface{}) ConfigurationError {
	return ConfigurationError{Plugin: plugin, message: fmt.Sprintf(format, args...)}
}

func (err ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", err.Plugin, err.message)
}

// RuntimeError is raised by a plugin's operational calls (Live, Sample,
// Render, Write, WriteMany, Open, Close). It is fatal for input and
// event stages; for the output stage a write-time RuntimeError is
// logged and the batch is considered complete.
type RuntimeError struct {
	Plugin  string
	message string
}

// NewRuntimeError creates a RuntimeError for the named plugin kind.
func NewRuntimeError(plugin string, format string, args ...interface{}) RuntimeError {
	return RuntimeError{Plugin: plugin, message: fmt.Sprintf(format, args...)}
}

func (err RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", err.Plugin, err.message)
}

// UnsupportedModeError is returned when a requested time mode (LIVE or
// SAMPLE) is not implemented by the chosen input plugin.
type UnsupportedModeError struct {
	Plugin string
	Mode   string
}

// NewUnsupportedModeError creates an UnsupportedModeError for the named
// plugin kind and requested mode.
func NewUnsupportedModeError(plugin, mode string) UnsupportedModeError {
	return UnsupportedModeError{Plugin: plugin, Mode: mode}
}

func (err UnsupportedModeError) Error() string {
	return fmt.Sprintf("%s: does not support %q mode", err.Plugin, err.Mode)
}
