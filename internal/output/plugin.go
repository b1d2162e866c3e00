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

// Package output implements the output stage: it fans each event
// batch out to every configured output plugin concurrently, accounts
// for partial writes, and opens/closes plugin connections
// deterministically.
package output

import "github.com/eventum/eventum/internal/config"

// Plugin is the output family's capability contract.
// Write and WriteMany each return the count of events actually
// written (0 <= count <= len(batch)); a count short of the batch size
// is a partial write, not an error.
type Plugin interface {
	Open() error
	Write(event string) (int, error)
	WriteMany(events []string) (int, error)
	Close() error
}

// Constructor builds a Plugin from its options document, returning a
// core.ConfigurationError on any validation failure.
type Constructor func(options config.Options) (Plugin, error)
