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

package config

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultReadTimeout  = time.Second * 5
	defaultWriteTimeout = time.Second * 10
	defaultIdleTimeout  = time.Second * 120

	defaultServicePort    = 4456
	defaultManagementPort = 4457
)

// nolint: gochecknoglobals
var defaultConfig = Configuration{
	Serve: ServeConfig{
		Port: defaultServicePort,
		Timeout: Timeout{
			Read:  defaultReadTimeout,
			Write: defaultWriteTimeout,
			Idle:  defaultIdleTimeout,
		},
	},
	Management: ManagementConfig{
		Port: defaultManagementPort,
		Timeout: Timeout{
			Read:  defaultReadTimeout,
			Write: defaultWriteTimeout,
			Idle:  defaultIdleTimeout,
		},
	},
	Log: LoggingConfig{
		Level:  zerolog.ErrorLevel,
		Format: LogTextFormat,
	},
	Tracing: TracingConfig{
		Enabled:           true,
		SpanProcessorType: SpanProcessorBatch,
	},
	Metrics: MetricsConfig{
		Enabled: true,
	},
	Cache: CacheConfig{
		Type: "in-memory",
	},
	Patterns: PatternsConfig{},
}
