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

// Command eventum runs the event generation pipeline: load a
// configuration file, wire up the three stages, and optionally serve
// a Prometheus /metrics endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	_ "go.uber.org/automaxprocs"

	_ "github.com/eventum/eventum/internal/event"
	_ "github.com/eventum/eventum/internal/input"
	_ "github.com/eventum/eventum/internal/output"

	"github.com/eventum/eventum/internal/config"
	"github.com/eventum/eventum/internal/metrics"
	"github.com/eventum/eventum/internal/supervisor"
)

const (
	versionMajor = 0
	versionMinor = 1
	versionPatch = 0
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "Path to the pipeline configuration file.")
	logLevel := flag.String("loglevel", "info", "Log level: panic|fatal|error|warn|info|debug|trace.")
	metricsPort := flag.Int("metrics", 0, "Port to serve /metrics on. 0 disables the metrics server.")
	version := flag.Bool("version", false, "Print version information and exit.")
	flag.Parse()

	if *version {
		fmt.Printf("eventum v%d.%d.%d\n", versionMajor, versionMinor, versionPatch)
		return 0
	}

	logger := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		fmt.Printf("invalid -loglevel %q: %v\n", *logLevel, err)
		return 1
	}
	logger.SetLevel(level)

	if *configPath == "" {
		fmt.Println("usage: eventum -config <path> [-loglevel LEVEL] [-metrics PORT]")
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.WithError(err).Error("failed to load configuration")
		return 1
	}

	pipeline := supervisor.New(cfg)

	if *metricsPort > 0 {
		addr := fmt.Sprintf(":%d", *metricsPort)
		server := metrics.NewServer(addr, pipeline.Counter, metrics.StageDoneSignals{
			Input:  pipeline.InputDone,
			Event:  pipeline.EventDone,
			Output: pipeline.OutputDone,
		})
		server.Start()
		defer server.Stop(context.Background())
		logger.WithField("address", addr).Info("started metrics server")
	}

	return pipeline.Run(logger, cfg)
}
