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

package event

import (
	"bytes"
	"strings"
	"sync/atomic"
	"text/template"
	"time"

	"github.com/eventum/eventum/internal/config"
	"github.com/eventum/eventum/internal/core"
)

func init() {
	Register("template", newTemplatePlugin)
}

// TemplateData is the fixed view of a timestamp exposed to Templates.
type TemplateData struct {
	Timestamp time.Time
	Sequence  uint64
}

// templatePlugin renders one timestamp through one or more
// text/template strings, one event per non-blank rendered template.
type templatePlugin struct {
	templates []*template.Template
	sequence  uint64
}

func newTemplatePlugin(options config.Options) (Plugin, error) {
	reader := config.NewOptionsReader("template", options)
	raw := reader.GetStringSlice("Templates", nil)
	if len(raw) == 0 {
		return nil, core.NewConfigurationError("template", "at least one entry is required in Templates")
	}

	templates := make([]*template.Template, 0, len(raw))
	for i, text := range raw {
		tpl, err := template.New("template").Parse(text)
		if err != nil {
			return nil, core.NewConfigurationError("template", "Templates[%d]: %v", i, err)
		}
		templates = append(templates, tpl)
	}

	return &templatePlugin{templates: templates}, nil
}

// Render evaluates every configured template against timestamp, one
// rendered event per template. A template that renders to only
// whitespace produces no event, letting configuration express
// conditional emission without a separate filtering concept.
func (p *templatePlugin) Render(timestamp time.Time) ([]string, error) {
	data := TemplateData{
		Timestamp: timestamp,
		Sequence:  atomic.AddUint64(&p.sequence, 1) - 1,
	}

	events := make([]string, 0, len(p.templates))
	for i, tpl := range p.templates {
		var buf bytes.Buffer
		if err := tpl.Execute(&buf, data); err != nil {
			return nil, core.NewRuntimeError("template", "Templates[%d]: %v", i, err)
		}
		if rendered := strings.TrimSpace(buf.String()); rendered == "" {
			continue
		}
		events = append(events, buf.String())
	}
	return events, nil
}
