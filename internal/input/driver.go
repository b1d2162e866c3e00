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
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eventum/eventum/internal/batch"
	"github.com/eventum/eventum/internal/config"
	"github.com/eventum/eventum/internal/core"
)

// Driver resolves and constructs the configured plugin, drives it in
// the requested time mode through a batcher, and guarantees the
// sentinel + done-signal termination protocol on every exit path.
type Driver struct {
	Logger       *logrus.Entry
	Queue        *core.Queue[[]time.Time]
	Done         *core.DoneSignal
	BatchSize    int
	BatchTimeout time.Duration
}

// NewDriver builds an input stage driver. logger should already carry
// a "stage" field (see internal/supervisor).
func NewDriver(logger *logrus.Entry, queue *core.Queue[[]time.Time], done *core.DoneSignal, batchSize int, batchTimeout time.Duration) *Driver {
	return &Driver{Logger: logger, Queue: queue, Done: done, BatchSize: batchSize, BatchTimeout: batchTimeout}
}

// Run executes the full input stage lifecycle and returns the process
// exit code for this stage (0 clean, non-zero on error).
func (d *Driver) Run(entry config.PluginEntry, mode config.TimeMode) (exitCode int) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; ok {
			d.Logger.Warn("received SIGINT, exiting immediately")
			os.Exit(0)
		}
	}()

	defer core.RecoverStage("input", d.Logger, func(err error) {
		exitCode = d.terminate(1)
	})

	ctor, ok := Lookup(entry.Kind)
	if !ok {
		d.Logger.WithField("kind", entry.Kind).Error("unknown input plugin kind")
		return d.terminate(1)
	}

	plugin, caps, err := ctor(entry.Options)
	if err != nil {
		d.Logger.WithError(err).Error("input plugin configuration failed")
		return d.terminate(1)
	}

	batcher := batch.New(d.BatchSize, d.BatchTimeout, func(items []time.Time) error {
		d.Queue.Put(items)
		return nil
	})

	onTimestamp := func(t time.Time) error {
		return batcher.Add(t)
	}

	var runErr error
	switch mode {
	case config.TimeModeLive:
		if !caps.Live {
			runErr = core.NewUnsupportedModeError(entry.Kind, string(mode))
		} else {
			runErr = plugin.Live(onTimestamp)
		}
	case config.TimeModeSample:
		if !caps.Sample {
			runErr = core.NewUnsupportedModeError(entry.Kind, string(mode))
		} else {
			runErr = plugin.Sample(onTimestamp)
		}
	default:
		runErr = core.NewConfigurationError(entry.Kind, "unknown time mode %q", mode)
	}

	_ = batcher.Close()

	if runErr != nil {
		d.Logger.WithError(runErr).Error("input stage terminated with error")
		return d.terminate(1)
	}
	return d.terminate(0)
}

// terminate closes the outbound queue (the sentinel, see
// internal/core.Queue), signals completion, then returns the exit
// code. Queue.Close and DoneSignal.Set are both idempotent, so a
// repeated call leaves the queue and the latched exit code unchanged.
func (d *Driver) terminate(code int) int {
	d.Queue.Close()
	d.Done.Set(code)
	return code
}
