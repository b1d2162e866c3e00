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
	"bufio"
	"os"

	"github.com/eventum/eventum/internal/config"
	"github.com/eventum/eventum/internal/core"
)

func init() {
	Register("file", newFilePlugin)
}

// filePlugin appends formatted events to a file at Path. It does not
// rotate or compress the file.
type filePlugin struct {
	path      string
	formatter eventFormatter

	file   *os.File
	writer *bufio.Writer
}

func newFilePlugin(options config.Options) (Plugin, error) {
	reader := config.NewOptionsReader("file", options)
	path := reader.Require("Path")
	if reader.Errors.Len() > 0 {
		return nil, core.NewConfigurationError("file", "missing required option Path")
	}

	formatter, err := newFormatter("file", reader.GetString("Format", "raw"))
	if err != nil {
		return nil, err
	}

	return &filePlugin{path: path, formatter: formatter}, nil
}

func (p *filePlugin) Open() error {
	file, err := os.OpenFile(p.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return core.NewRuntimeError("file", "opening %q: %v", p.path, err)
	}
	p.file = file
	p.writer = bufio.NewWriter(file)
	return nil
}

func (p *filePlugin) Write(event string) (int, error) {
	line, err := p.formatter(event)
	if err != nil {
		return 0, err
	}
	if _, err := p.writer.WriteString(line + "\n"); err != nil {
		return 0, core.NewRuntimeError("file", "writing to %q: %v", p.path, err)
	}
	return 1, p.writer.Flush()
}

func (p *filePlugin) WriteMany(events []string) (int, error) {
	written := 0
	for _, event := range events {
		line, err := p.formatter(event)
		if err != nil {
			return written, err
		}
		if _, err := p.writer.WriteString(line + "\n"); err != nil {
			return written, core.NewRuntimeError("file", "writing to %q: %v", p.path, err)
		}
		written++
	}
	return written, p.writer.Flush()
}

func (p *filePlugin) Close() error {
	if p.writer != nil {
		if err := p.writer.Flush(); err != nil {
			return err
		}
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}
