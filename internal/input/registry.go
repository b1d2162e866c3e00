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
	"fmt"
	"sync"
)

// registry is the static kind -> constructor mapping populated by each
// plugin's init() function.
var (
	registryMu sync.RWMutex
	registry   = map[string]Constructor{}
)

// Register adds a constructor under kind. Intended to be called from
// plugin init() functions; panics on duplicate registration since that
// indicates a build-time wiring mistake, not a runtime condition.
func Register(kind string, ctor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[kind]; exists {
		panic(fmt.Sprintf("input: duplicate registration for kind %q", kind))
	}
	registry[kind] = ctor
}

// Lookup resolves kind to its constructor, or reports ok == false if
// no plugin of that kind is registered.
func Lookup(kind string) (Constructor, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ctor, ok := registry[kind]
	return ctor, ok
}
