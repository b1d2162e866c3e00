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
	"io"
	"os"
	"strings"

	"github.com/eventum/eventum/internal/config"
)

func init() {
	Register("stdout", newStdoutPlugin)
}

// stdoutPlugin writes formatted events to os.Stdout or os.Stderr, one
// per line.
type stdoutPlugin struct {
	stream    io.Writer
	writer    *bufio.Writer
	formatter eventFormatter
}

func newStdoutPlugin(options config.Options) (Plugin, error) {
	reader := config.NewOptionsReader("stdout", options)

	stream := os.Stdout
	if strings.EqualFold(reader.GetString("Stream", "stdout"), "stderr") {
		stream = os.Stderr
	}

	formatter, err := newFormatter("stdout", reader.GetString("Format", "raw"))
	if err != nil {
		return nil, err
	}

	return &stdoutPlugin{stream: stream, formatter: formatter}, nil
}

func (p *stdoutPlugin) Open() error {
	p.writer = bufio.NewWriter(p.stream)
	return nil
}

func (p *stdoutPlugin) Write(event string) (int, error) {
	line, err := p.formatter(event)
	if err != nil {
		return 0, err
	}
	if _, err := p.writer.WriteString(line + "\n"); err != nil {
		return 0, err
	}
	return 1, p.writer.Flush()
}

func (p *stdoutPlugin) WriteMany(events []string) (int, error) {
	written := 0
	for _, event := range events {
		line, err := p.formatter(event)
		if err != nil {
			return written, err
		}
		if _, err := p.writer.WriteString(line + "\n"); err != nil {
			return written, err
		}
		written++
	}
	return written, p.writer.Flush()
}

func (p *stdoutPlugin) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Flush()
}
