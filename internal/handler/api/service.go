// Copyright 2025 Arvid Ryndal <arvid@ryndal.dev>
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

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/ryndalv/skein/internal/cache"
	"github.com/ryndalv/skein/internal/config"
	"github.com/ryndalv/skein/internal/handler/middleware/http/cachemiddleware"
	"github.com/ryndalv/skein/internal/handler/middleware/http/dump"
	"github.com/ryndalv/skein/internal/handler/middleware/http/errorhandler"
	"github.com/ryndalv/skein/internal/handler/middleware/http/logger"
	prometheus2 "github.com/ryndalv/skein/internal/handler/middleware/http/prometheus"
	"github.com/ryndalv/skein/internal/handler/middleware/http/recovery"
	"github.com/ryndalv/skein/internal/handler/middleware/http/trustedproxy"
	"github.com/ryndalv/skein/internal/patterns/pattern"
	"github.com/ryndalv/skein/internal/x"
	"github.com/ryndalv/skein/internal/x/httpx"
	"github.com/ryndalv/skein/internal/x/loggeradapter"
)

func passThrough(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) { next.ServeHTTP(rw, req) })
}

func newService(
	conf *config.Configuration,
	reg prometheus.Registerer,
	cch cache.Cache,
	log zerolog.Logger,
	repo pattern.Repository,
) *http.Server {
	cfg := conf.Serve
	eh := errorhandler.New(errorhandler.WithVerboseErrors(true))

	hc := alice.New(
		trustedproxy.New(log, cfg.TrustedProxies...),
		func(next http.Handler) http.Handler {
			return otelhttp.NewHandler(
				next,
				"",
				otelhttp.WithTracerProvider(otel.GetTracerProvider()),
				otelhttp.WithServerName("api"),
				otelhttp.WithSpanNameFormatter(func(_ string, req *http.Request) string {
					return fmt.Sprintf("EntryPoint %s %s%s",
						strings.ToLower(req.URL.Scheme), httpx.LocalAddress(req), req.URL.Path)
				}),
			)
		},
		logger.New(log, logger.WithAccessStatusEnabled(true)),
		dump.New(),
		recovery.New(eh),
		x.IfThenElseExec(conf.Metrics.Enabled,
			func() func(http.Handler) http.Handler {
				return prometheus2.New(
					prometheus2.WithServiceName("api"),
					prometheus2.WithRegisterer(reg),
				)
			},
			func() func(http.Handler) http.Handler { return passThrough },
		),
		cachemiddleware.New(cch),
		x.IfThenElseExec(cfg.CORS != nil,
			func() func(http.Handler) http.Handler {
				return cors.New(
					cors.Options{
						AllowedOrigins:   cfg.CORS.AllowedOrigins,
						AllowedMethods:   cfg.CORS.AllowedMethods,
						AllowedHeaders:   cfg.CORS.AllowedHeaders,
						AllowCredentials: cfg.CORS.AllowCredentials,
						ExposedHeaders:   cfg.CORS.ExposedHeaders,
						MaxAge:           int(cfg.CORS.MaxAge.Seconds()),
					},
				).Handler
			},
			func() func(http.Handler) http.Handler { return passThrough },
		),
	).Then(newAPIHandler(repo, eh))

	return &http.Server{
		Handler:        hc,
		Addr:           cfg.Address(),
		ReadTimeout:    cfg.Timeout.Read,
		WriteTimeout:   cfg.Timeout.Write,
		IdleTimeout:    cfg.Timeout.Idle,
		MaxHeaderBytes: int(cfg.BufferLimit.Read),
		ErrorLog:       loggeradapter.NewStdLogger(log),
	}
}
