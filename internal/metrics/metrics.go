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

// Package metrics exposes a Prometheus /metrics endpoint over the
// shared processed-events counter and per-stage done-state. It is
// ambient observability: its absence never affects pipeline
// correctness.
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/eventum/eventum/internal/core"
)

// processedEventsCollector adapts a *core.ProcessedEventsCounter to
// prometheus.Collector so its value is scraped live, without a
// separate polling goroutine copying it into a prometheus.Counter.
type processedEventsCollector struct {
	counter *core.ProcessedEventsCounter
	desc    *prometheus.Desc
}

func (c *processedEventsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *processedEventsCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.CounterValue, float64(c.counter.Load()))
}

// doneSignalCollector exposes a stage's done-state as a 0/1 gauge.
type doneSignalCollector struct {
	done *core.DoneSignal
	desc *prometheus.Desc
}

func (c *doneSignalCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *doneSignalCollector) Collect(ch chan<- prometheus.Metric) {
	value := 0.0
	if c.done.IsSet() {
		value = 1.0
	}
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, value)
}

// Server serves a Prometheus /metrics endpoint over a dedicated registry.
type Server struct {
	httpServer *http.Server
}

// StageDoneSignals names the three per-stage done signals to expose as
// gauges, keyed by stage name.
type StageDoneSignals struct {
	Input  *core.DoneSignal
	Event  *core.DoneSignal
	Output *core.DoneSignal
}

// NewServer builds (but does not start) a metrics HTTP server on addr,
// registering the processed-events counter and the three stage gauges
// against a dedicated registry (never the global default, so tests can
// construct more than one Server without collector-already-registered
// panics).
func NewServer(addr string, counter *core.ProcessedEventsCounter, signals StageDoneSignals) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(&processedEventsCollector{
		counter: counter,
		desc: prometheus.NewDesc("eventum_processed_events_total",
			"Total number of events that reached the output stage.", nil, nil),
	})
	registry.MustRegister(
		&doneSignalCollector{done: signals.Input, desc: prometheus.NewDesc(
			"eventum_stage_done", "Whether a pipeline stage has exited.", nil, prometheus.Labels{"stage": "input"})},
		&doneSignalCollector{done: signals.Event, desc: prometheus.NewDesc(
			"eventum_stage_done", "Whether a pipeline stage has exited.", nil, prometheus.Labels{"stage": "event"})},
		&doneSignalCollector{done: signals.Output, desc: prometheus.NewDesc(
			"eventum_stage_done", "Whether a pipeline stage has exited.", nil, prometheus.Labels{"stage": "output"})},
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog:      logrus.StandardLogger(),
		ErrorHandling: promhttp.ContinueOnError,
	}))

	return &Server{httpServer: &http.Server{Addr: addr, Handler: mux}}
}

// Start runs the server in the background. Errors other than a clean
// shutdown are logged, not returned.
func (s *Server) Start() {
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("metrics server stopped unexpectedly")
		}
	}()
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
