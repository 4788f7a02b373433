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

package filesystem

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/ryndalv/skein/internal/config"
	"github.com/ryndalv/skein/internal/patterns/pattern"
	"github.com/ryndalv/skein/internal/skein"
	"github.com/ryndalv/skein/internal/x/errorchain"
)

type registrationArguments struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Configuration
	Processor pattern.SetProcessor
}

func registerProvider(args registrationArguments, logger zerolog.Logger) error {
	if args.Config.Patterns.Providers.FileSystem == nil {
		return nil
	}

	provider, err := newProvider(args.Config.Patterns.Providers.FileSystem, args.Processor, logger)
	if err != nil {
		return errorchain.NewWithMessage(skein.ErrInternal, "failed to create file_system provider").
			CausedBy(err)
	}

	logger.Info().
		Str("_pattern_provider_type", "file_system").
		Msg("Pattern provider configured.")

	args.Lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error { return provider.Start(ctx) },
			OnStop:  func(ctx context.Context) error { return provider.Stop(ctx) },
		},
	)

	return nil
}
