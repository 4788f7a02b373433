// Copyright 2022 Arvid Ryndal <arvid@ryndal.dev>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"context"
	"errors"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/ryndalv/skein/internal/config"
	"github.com/ryndalv/skein/internal/handler/fxlcm"
)

var Module = fx.Invoke( // nolint: gochecknoglobals
	fx.Annotate(
		newLifecycleManager,
		fx.OnStart(func(ctx context.Context, lcm lifecycleManager) error { return lcm.Start(ctx) }),
		fx.OnStop(func(ctx context.Context, lcm lifecycleManager) error { return lcm.Stop(ctx) }),
	),
)

type lifecycleManager interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

type noopManager struct{}

func (noopManager) Start(context.Context) error { return nil }
func (noopManager) Stop(context.Context) error  { return nil }

func newLifecycleManager(conf *config.Configuration, logger zerolog.Logger) lifecycleManager {
	value := os.Getenv("OTEL_METRICS_EXPORTER")
	if len(value) == 0 {
		value = "prometheus"
	}

	exporters := strings.Split(value, ",")

	if !conf.Metrics.Enabled || slices.Contains(exporters, "none") || !slices.Contains(exporters, "prometheus") {
		logger.Info().Msg("Metrics service disabled")

		return noopManager{}
	}

	if err := prometheus.Register(collectors.NewBuildInfoCollector()); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError

		if !errors.As(err, &alreadyRegistered) {
			logger.Warn().Err(err).Msg("Failed registering build info collector")
		}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.InstrumentMetricHandler(
		prometheus.DefaultRegisterer,
		promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
			MaxRequestsInFlight: 1,
		}),
	))

	return &fxlcm.LifecycleManager{
		ServiceName:    "Metrics",
		ServiceAddress: conf.Metrics.Address(),
		Server: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second, // nolint: mnd
		},
		Logger: logger,
	}
}
