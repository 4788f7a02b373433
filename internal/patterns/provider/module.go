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

package provider

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/ryndalv/skein/internal/config"
	"github.com/ryndalv/skein/internal/patterns/provider/filesystem"
	"github.com/ryndalv/skein/internal/patterns/provider/httpendpoint"
)

// Module is used on app bootstrap.
// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Invoke(checkPatternProvider),
	filesystem.Module,
	httpendpoint.Module,
)

func checkPatternProvider(logger zerolog.Logger, conf *config.Configuration) {
	var patternProviderConfigured bool

	switch {
	case conf.Patterns.Providers.FileSystem != nil:
		patternProviderConfigured = true
	case conf.Patterns.Providers.HTTPEndpoint != nil:
		patternProviderConfigured = true
	}

	if !patternProviderConfigured {
		logger.Warn().Msg("No pattern provider configured. The index will start empty.")
	}
}
