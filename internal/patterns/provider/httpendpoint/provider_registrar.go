// Copyright 2023 Arvid Ryndal <arvid@ryndal.dev>
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

package httpendpoint

import (
	"context"

	"go.uber.org/fx"

	"github.com/ryndalv/skein/internal/app"
	"github.com/ryndalv/skein/internal/cache"
	"github.com/ryndalv/skein/internal/patterns/pattern"
	"github.com/ryndalv/skein/internal/skein"
	"github.com/ryndalv/skein/internal/x/errorchain"
)

type registrationArguments struct {
	fx.In

	Lifecycle fx.Lifecycle
	Context   app.Context
	Cache     cache.Cache
	Processor pattern.SetProcessor
}

func registerProvider(args registrationArguments) error {
	conf := args.Context.Config()
	logger := args.Context.Logger()

	if conf.Patterns.Providers.HTTPEndpoint == nil {
		return nil
	}

	provider, err := newProvider(args.Context, conf.Patterns.Providers.HTTPEndpoint, args.Cache, args.Processor)
	if err != nil {
		return errorchain.NewWithMessage(skein.ErrInternal, "failed to create http_endpoint provider").
			CausedBy(err)
	}

	logger.Info().
		Str("_pattern_provider_type", "http_endpoint").
		Msg("Pattern provider configured.")

	args.Lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error { return provider.Start(ctx) },
			OnStop:  func(ctx context.Context) error { return provider.Stop(ctx) },
		},
	)

	return nil
}
