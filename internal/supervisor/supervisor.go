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

// Package supervisor launches the three pipeline stages as goroutines,
// wires the queues and done signals between them, and aggregates their
// exit codes.
package supervisor

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eventum/eventum/internal/config"
	"github.com/eventum/eventum/internal/core"
	"github.com/eventum/eventum/internal/event"
	"github.com/eventum/eventum/internal/input"
	"github.com/eventum/eventum/internal/output"
)

// Pipeline wires the two bounded queues, the shared counter and the
// three per-stage done signals, and runs all three stages to
// completion.
type Pipeline struct {
	InputToEvent  *core.Queue[[]time.Time]
	EventToOutput *core.Queue[[]string]
	InputDone     *core.DoneSignal
	EventDone     *core.DoneSignal
	OutputDone    *core.DoneSignal
	Counter       *core.ProcessedEventsCounter
}

// New wires fresh queues, done signals and counter. Both queues have
// capacity queueDepth; cfg does not affect their size.
func New(cfg *config.Config) *Pipeline {
	return &Pipeline{
		InputToEvent:  core.NewQueue[[]time.Time](queueDepth),
		EventToOutput: core.NewQueue[[]string](queueDepth),
		InputDone:     core.NewDoneSignal(),
		EventDone:     core.NewDoneSignal(),
		OutputDone:    core.NewDoneSignal(),
		Counter:       &core.ProcessedEventsCounter{},
	}
}

// queueDepth is the bounded queue capacity; queues provide
// backpressure, not unlimited buffering.
const queueDepth = 16

// Run starts the three stages as goroutines and blocks until all
// three have reported completion via their done signals, returning
// the aggregate exit code: 0 only if every stage exited cleanly.
func (p *Pipeline) Run(logger *logrus.Logger, cfg *config.Config) int {
	go func() {
		driver := input.NewDriver(
			logger.WithField("stage", "input"),
			p.InputToEvent, p.InputDone,
			cfg.Settings.EventsBatchSize, cfg.Settings.EventsBatchTimeout,
		)
		driver.Run(cfg.Input, cfg.TimeMode)
	}()

	go func() {
		driver := event.NewDriver(
			logger.WithField("stage", "event"),
			p.InputToEvent, p.EventToOutput, p.EventDone,
			cfg.Settings.OutputBatchSize, cfg.Settings.OutputBatchTimeout,
		)
		driver.Run(cfg.Event)
	}()

	go func() {
		driver := output.NewDriver(
			logger.WithField("stage", "output"),
			p.EventToOutput, p.OutputDone, p.Counter,
		)
		driver.Run(cfg.Outputs)
	}()

	inputCode := p.InputDone.Wait()
	eventCode := p.EventDone.Wait()
	outputCode := p.OutputDone.Wait()

	if inputCode != 0 || eventCode != 0 || outputCode != 0 {
		logger.WithFields(logrus.Fields{
			"input": inputCode, "event": eventCode, "output": outputCode,
		}).Error("pipeline finished with at least one failing stage")
		return 1
	}
	return 0
}
