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
	"testing"

	"github.com/trivago/tgo/tcontainer"
)

func mustMarshalMap(t *testing.T, values map[string]interface{}) tcontainer.MarshalMap {
	t.Helper()
	raw := make(map[interface{}]interface{}, len(values))
	for k, v := range values {
		raw[k] = v
	}
	mm, err := tcontainer.ConvertToMarshalMap(raw, nil)
	if err != nil {
		t.Fatalf("ConvertToMarshalMap: %v", err)
	}
	return mm
}

func TestStdoutRejectsUnknownFormat(t *testing.T) {
	opts := mustMarshalMap(t, map[string]interface{}{"Format": "bogus"})
	if _, err := newStdoutPlugin(opts); err == nil {
		t.Fatal("expected error for unknown Format")
	}
}

func TestStdoutWriteManyCountsAllEvents(t *testing.T) {
	opts := mustMarshalMap(t, map[string]interface{}{"Format": "raw"})
	plugin, err := newStdoutPlugin(opts)
	if err != nil {
		t.Fatalf("newStdoutPlugin: %v", err)
	}
	if err := plugin.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer plugin.Close()

	count, err := plugin.WriteMany([]string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("WriteMany: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected count 3, got %d", count)
	}
}

func TestJSONFormatterWrapsEvent(t *testing.T) {
	formatter, err := newFormatter("stdout", "json")
	if err != nil {
		t.Fatalf("newFormatter: %v", err)
	}
	got, err := formatter("hello")
	if err != nil {
		t.Fatalf("formatter: %v", err)
	}
	if got != `{"event":"hello"}` {
		t.Fatalf("unexpected json output: %s", got)
	}
}
