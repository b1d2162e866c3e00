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
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/eventum/eventum/internal/config"
	"github.com/eventum/eventum/internal/core"
)

// Driver constructs and opens every configured plugin, fans each event
// batch out to all of them concurrently, accounts for partial writes,
// and closes deterministically.
type Driver struct {
	Logger  *logrus.Entry
	Input   *core.Queue[[]string]
	Done    *core.DoneSignal
	Counter *core.ProcessedEventsCounter
}

// NewDriver builds an output stage driver.
func NewDriver(logger *logrus.Entry, input *core.Queue[[]string], done *core.DoneSignal, counter *core.ProcessedEventsCounter) *Driver {
	return &Driver{Logger: logger, Input: input, Done: done, Counter: counter}
}

type namedPlugin struct {
	kind   string
	plugin Plugin
}

// Run executes the full output stage lifecycle and returns the
// process exit code for this stage. Unlike the input and event
// drivers, the output stage has no outbound queue, so its failure
// paths never attempt to emit a sentinel — harmless since there are no
// downstream consumers of the output stage.
func (d *Driver) Run(entries []config.PluginEntry) (exitCode int) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; ok {
			d.Logger.Warn("received SIGINT, exiting immediately")
			os.Exit(0)
		}
	}()

	defer core.RecoverStage("output", d.Logger, func(err error) {
		exitCode = d.terminate(1)
	})

	kinds := make([]string, 0, len(entries))
	for _, entry := range entries {
		kinds = append(kinds, entry.Kind)
	}
	d.Logger.Infof("Initializing [%s] output plugins", strings.Join(kinds, ", "))

	plugins := make([]namedPlugin, 0, len(entries))
	for _, entry := range entries {
		ctor, ok := Lookup(entry.Kind)
		if !ok {
			d.Logger.WithField("kind", entry.Kind).Error("unknown output plugin kind")
			return d.terminate(1)
		}
		plugin, err := ctor(entry.Options)
		if err != nil {
			d.Logger.WithError(err).Error("output plugin configuration failed")
			return d.terminate(1)
		}
		plugins = append(plugins, namedPlugin{kind: entry.Kind, plugin: plugin})
	}

	if !d.openAll(plugins) {
		return d.terminate(1)
	}

	for {
		batch, ok := d.Input.Get()
		if !ok {
			break
		}
		d.writeBatch(plugins, batch)
	}

	d.closeAll(plugins)
	return d.terminate(0)
}

// openAll initializes every plugin concurrently. If any fails, the
// ones that did open are closed before returning false.
func (d *Driver) openAll(plugins []namedPlugin) bool {
	errs := make([]error, len(plugins))
	opened := make([]bool, len(plugins))

	var wg sync.WaitGroup
	for i, np := range plugins {
		wg.Add(1)
		go func(i int, np namedPlugin) {
			defer wg.Done()
			if err := np.plugin.Open(); err != nil {
				errs[i] = err
				return
			}
			opened[i] = true
		}(i, np)
	}
	wg.Wait()

	failed := false
	for i, err := range errs {
		if err != nil {
			d.Logger.WithField("kind", plugins[i].kind).WithError(err).Error("output plugin failed to open")
			failed = true
		}
	}
	if !failed {
		return true
	}

	var closeWg sync.WaitGroup
	for i, np := range plugins {
		if !opened[i] {
			continue
		}
		closeWg.Add(1)
		go func(np namedPlugin) {
			defer closeWg.Done()
			_ = np.plugin.Close()
		}(np)
	}
	closeWg.Wait()
	return false
}

// writeBatch fans batch out to every plugin concurrently, logs a
// warning for any partial write, and increments the shared counter by
// the batch's full length once every plugin has returned (ingress
// semantics: the counter tracks events handed to the stage, not events
// a sink actually persisted).
func (d *Driver) writeBatch(plugins []namedPlugin, batch []string) {
	n := len(batch)

	var wg sync.WaitGroup
	for _, np := range plugins {
		wg.Add(1)
		go func(np namedPlugin) {
			defer wg.Done()

			var count int
			var err error
			if n == 1 {
				count, err = np.plugin.Write(batch[0])
			} else {
				count, err = np.plugin.WriteMany(batch)
			}

			if err != nil {
				d.Logger.WithField("kind", np.kind).WithError(err).Error("output plugin write failed")
				return
			}
			if count < n {
				d.Logger.WithField("kind", np.kind).Warnf("partial write: wrote %d of %d events", count, n)
			}
		}(np)
	}
	wg.Wait()

	d.Counter.Add(int64(n))
}

// closeAll closes every plugin concurrently, best-effort.
func (d *Driver) closeAll(plugins []namedPlugin) {
	var wg sync.WaitGroup
	for _, np := range plugins {
		wg.Add(1)
		go func(np namedPlugin) {
			defer wg.Done()
			if err := np.plugin.Close(); err != nil {
				d.Logger.WithField("kind", np.kind).WithError(err).Warn("output plugin failed to close")
			}
		}(np)
	}
	wg.Wait()
}

// terminate sets the done signal and returns the stage exit code.
func (d *Driver) terminate(code int) int {
	d.Done.Set(code)
	return code
}
