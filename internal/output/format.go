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

package output

import (
	"encoding/json"

	"github.com/eventum/eventum/internal/core"
)

// eventFormatter renders one event string to its on-the-wire form,
// shared by every sink that supports the `raw`/`json` Format option.
type eventFormatter func(event string) (string, error)

func newFormatter(plugin, format string) (eventFormatter, error) {
	switch format {
	case "", "raw":
		return func(event string) (string, error) { return event, nil }, nil
	case "json":
		return func(event string) (string, error) {
			encoded, err := json.Marshal(struct {
				Event string `json:"event"`
			}{Event: event})
			if err != nil {
				return "", err
			}
			return string(encoded), nil
		}, nil
	default:
		return nil, core.NewConfigurationError(plugin, "unknown Format %q", format)
	}
}
