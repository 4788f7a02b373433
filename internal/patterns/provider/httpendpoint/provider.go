// Copyright 2023-2025 Arvid Ryndal <arvid@ryndal.dev>
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
	"bytes"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"

	"github.com/ryndalv/skein/internal/app"
	"github.com/ryndalv/skein/internal/cache"
	"github.com/ryndalv/skein/internal/patterns/config"
	"github.com/ryndalv/skein/internal/patterns/pattern"
	"github.com/ryndalv/skein/internal/skein"
	"github.com/ryndalv/skein/internal/x"
	"github.com/ryndalv/skein/internal/x/errorchain"
)

type provider struct {
	p      pattern.SetProcessor
	l      zerolog.Logger
	s      gocron.Scheduler
	cancel context.CancelFunc

	mu     sync.Mutex
	states map[string][]byte // endpoint id -> hash of the pattern set applied from it
}

func newProvider(
	appCtx app.Context,
	rawConf map[string]any,
	cch cache.Cache,
	processor pattern.SetProcessor,
) (*provider, error) {
	type Config struct {
		Endpoints     []*patternSetEndpoint `mapstructure:"endpoints"`
		WatchInterval *time.Duration        `mapstructure:"watch_interval"`
	}

	logger := appCtx.Logger()

	var conf Config
	if err := decodeConfig(appCtx, rawConf, &conf); err != nil {
		return nil, errorchain.
			NewWithMessage(skein.ErrConfiguration, "failed to decode http_endpoint pattern provider config").
			CausedBy(err)
	}

	if len(conf.Endpoints) == 0 {
		return nil, errorchain.
			NewWithMessage(skein.ErrConfiguration,
				"no endpoints configured for the http_endpoint pattern provider")
	}

	for idx, ep := range conf.Endpoints {
		if err := ep.init(); err != nil {
			return nil, errorchain.
				NewWithMessagef(skein.ErrConfiguration,
					"failed to initialize #%d http_endpoint pattern provider endpoint", idx).
				CausedBy(err)
		}
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, errorchain.
			NewWithMessage(skein.ErrInternal, "failed creating scheduler for the http_endpoint pattern provider").
			CausedBy(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ctx = logger.With().
		Str("_pattern_provider_type", "http_endpoint").
		Logger().
		WithContext(cache.WithContext(ctx, cch))

	prov := &provider{
		p:      processor,
		l:      logger,
		s:      scheduler,
		cancel: cancel,
		states: make(map[string][]byte),
	}

	for idx, ep := range conf.Endpoints {
		definition := gocron.OneTimeJob(gocron.OneTimeJobStartImmediately())
		options := []gocron.JobOption{
			gocron.WithName(ep.ID()),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		}

		if conf.WatchInterval != nil && *conf.WatchInterval > 0 {
			definition = gocron.DurationJob(*conf.WatchInterval)
			options = append(options, gocron.WithStartAt(gocron.WithStartImmediately()))
		}

		if _, err = prov.s.NewJob(definition, gocron.NewTask(prov.watchChanges, ctx, ep), options...); err != nil {
			cancel()

			return nil, errorchain.
				NewWithMessagef(skein.ErrInternal,
					"failed to schedule fetching of pattern sets from #%d http_endpoint", idx).
				CausedBy(err)
		}
	}

	return prov, nil
}

func (p *provider) Start(_ context.Context) error {
	p.l.Info().
		Str("_pattern_provider_type", "http_endpoint").
		Msg("Starting pattern definitions provider")

	p.s.Start()

	return nil
}

func (p *provider) Stop(_ context.Context) error {
	p.l.Info().
		Str("_pattern_provider_type", "http_endpoint").
		Msg("Tearing down pattern provider")

	p.cancel()

	return p.s.Shutdown()
}

func (p *provider) watchChanges(ctx context.Context, e *patternSetEndpoint) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("_endpoint", e.ID()).
		Msg("Retrieving pattern set")

	patternSet, err := e.FetchPatternSet(ctx)

	switch {
	case errors.Is(err, config.ErrEmptyPatternSet):
		return p.onPatternSetEmpty(ctx, e)
	case err != nil:
		logger.Warn().Err(err).
			Str("_endpoint", e.ID()).
			Msg("Failed to fetch pattern set")

		// communication problems are expected to be transient, so the state
		// applied from the last successful fetch is kept
		return x.IfThenElse(
			errors.Is(err, skein.ErrInternal) || errors.Is(err, skein.ErrConfiguration),
			err, nil)
	default:
		return p.onPatternSetReceived(ctx, patternSet, e)
	}
}

func (p *provider) onPatternSetReceived(ctx context.Context, patternSet *config.PatternSet, e *patternSetEndpoint) error {
	p.mu.Lock()
	oldHash, known := p.states[e.ID()]
	p.states[e.ID()] = patternSet.Hash
	p.mu.Unlock()

	var err error

	switch {
	case !known:
		p.patternSetChanged(ctx, patternSet.Source, "created")

		err = p.p.OnCreated(ctx, patternSet)
	case bytes.Equal(oldHash, patternSet.Hash):
		zerolog.Ctx(ctx).Debug().
			Str("_src", patternSet.Source).
			Msg("No updates received")

		return nil
	default:
		p.patternSetChanged(ctx, patternSet.Source, "updated")

		err = p.p.OnUpdated(ctx, patternSet)
	}

	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).
			Str("_src", patternSet.Source).
			Msg("Failed to apply pattern set")

		p.mu.Lock()
		if known {
			p.states[e.ID()] = oldHash
		} else {
			delete(p.states, e.ID())
		}
		p.mu.Unlock()

		return err
	}

	return nil
}

func (p *provider) onPatternSetEmpty(ctx context.Context, e *patternSetEndpoint) error {
	src := "http_endpoint:" + e.ID()

	p.mu.Lock()
	oldHash, known := p.states[e.ID()]
	delete(p.states, e.ID())
	p.mu.Unlock()

	if !known {
		zerolog.Ctx(ctx).Debug().
			Str("_src", src).
			Msg("No updates received")

		return nil
	}

	p.patternSetChanged(ctx, src, "deleted")

	patternSet := &config.PatternSet{
		MetaData: config.MetaData{Source: src},
	}

	if err := p.p.OnDeleted(ctx, patternSet); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).
			Str("_src", src).
			Msg("Failed to apply pattern set")

		// the next watch tick shall retry the removal
		p.mu.Lock()
		p.states[e.ID()] = oldHash
		p.mu.Unlock()

		return err
	}

	return nil
}

func (p *provider) patternSetChanged(ctx context.Context, source, changeType string) {
	zerolog.Ctx(ctx).Info().
		Str("_src", source).
		Str("_type", changeType).
		Msg("Pattern set changed")
}
