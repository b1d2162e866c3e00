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
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eventum/eventum/internal/batch"
	"github.com/eventum/eventum/internal/config"
	"github.com/eventum/eventum/internal/core"
)

// Driver runs the event stage: dequeue timestamp batches, render each
// timestamp through the configured plugin preserving order, and
// forward rendered events through a per-input-batch batcher scope into
// the event->output queue.
type Driver struct {
	Logger       *logrus.Entry
	Input        *core.Queue[[]time.Time]
	Output       *core.Queue[[]string]
	Done         *core.DoneSignal
	BatchSize    int
	BatchTimeout time.Duration
}

// NewDriver builds an event stage driver.
func NewDriver(logger *logrus.Entry, input *core.Queue[[]time.Time], output *core.Queue[[]string], done *core.DoneSignal, batchSize int, batchTimeout time.Duration) *Driver {
	return &Driver{Logger: logger, Input: input, Output: output, Done: done, BatchSize: batchSize, BatchTimeout: batchTimeout}
}

// Run executes the full event stage lifecycle and returns the process
// exit code for this stage.
func (d *Driver) Run(entry config.PluginEntry) (exitCode int) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; ok {
			d.Logger.Warn("received SIGINT, exiting immediately")
			os.Exit(0)
		}
	}()

	defer core.RecoverStage("event", d.Logger, func(err error) {
		exitCode = d.terminate(1)
	})

	ctor, ok := Lookup(entry.Kind)
	if !ok {
		d.Logger.WithField("kind", entry.Kind).Error("unknown event plugin kind")
		return d.terminate(1)
	}

	plugin, err := ctor(entry.Options)
	if err != nil {
		d.Logger.WithError(err).Error("event plugin configuration failed")
		return d.terminate(1)
	}

	for {
		timestamps, ok := d.Input.Get()
		if !ok {
			break
		}

		batcher := batch.New(d.BatchSize, d.BatchTimeout, func(items []string) error {
			d.Output.Put(items)
			return nil
		})

		var renderErr error
		for _, ts := range timestamps {
			events, err := plugin.Render(ts)
			if err != nil {
				renderErr = err
				break
			}
			for _, evt := range events {
				if err := batcher.Add(evt); err != nil {
					renderErr = err
					break
				}
			}
			if renderErr != nil {
				break
			}
		}

		_ = batcher.Close()

		if renderErr != nil {
			d.Logger.WithError(renderErr).Error("event stage terminated with error")
			return d.terminate(1)
		}
	}

	return d.terminate(0)
}

// terminate closes the outbound queue, signals completion, and returns
// the exit code.
func (d *Driver) terminate(code int) int {
	d.Output.Close()
	d.Done.Set(code)
	return code
}
