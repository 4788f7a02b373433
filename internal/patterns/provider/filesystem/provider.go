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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/ryndalv/skein/internal/patterns/config"
	"github.com/ryndalv/skein/internal/patterns/pattern"
	"github.com/ryndalv/skein/internal/skein"
	"github.com/ryndalv/skein/internal/x/errorchain"
)

type provider struct {
	src string
	w   *fsnotify.Watcher
	p   pattern.SetProcessor
	l   zerolog.Logger

	mu     sync.Mutex
	states map[string][]byte // file path -> hash of the pattern set applied from it
}

func newProvider(
	rawConf map[string]any,
	processor pattern.SetProcessor,
	logger zerolog.Logger,
) (*provider, error) {
	type Config struct {
		Src   string `mapstructure:"src"`
		Watch bool   `mapstructure:"watch"`
	}

	var conf Config
	if err := decodeConfig(rawConf, &conf); err != nil {
		return nil, errorchain.
			NewWithMessage(skein.ErrConfiguration, "failed to decode file_system pattern provider config").
			CausedBy(err)
	}

	if len(conf.Src) == 0 {
		return nil, errorchain.
			NewWithMessage(skein.ErrConfiguration, "no src configured for file_system pattern provider")
	}

	absPath, err := filepath.Abs(conf.Src)
	if err != nil {
		return nil, errorchain.
			NewWithMessage(skein.ErrInternal, "failed to get the absolute path for the configured src").
			CausedBy(err)
	}

	if _, err = os.Stat(absPath); err != nil {
		return nil, errorchain.
			NewWithMessage(skein.ErrInternal,
				"failed to get information about configured src from the file system").
			CausedBy(err)
	}

	var watcher *fsnotify.Watcher
	if conf.Watch {
		watcher, err = fsnotify.NewWatcher()
		if err != nil {
			return nil, errorchain.
				NewWithMessage(skein.ErrInternal, "failed to instantiating new file watcher").
				CausedBy(err)
		}
	}

	return &provider{
		src:    absPath,
		w:      watcher,
		p:      processor,
		l:      logger,
		states: make(map[string][]byte),
	}, nil
}

func (p *provider) Start(_ context.Context) error {
	p.l.Info().
		Str("_pattern_provider_type", "file_system").
		Msg("Starting pattern definitions provider")

	// the start context is done once bootstrapping finished, the loaded
	// sets and the watcher outlive it
	ctx := p.l.WithContext(context.Background())

	if err := p.loadInitialPatternSets(ctx); err != nil {
		p.l.Error().Err(err).
			Str("_pattern_provider_type", "file_system").
			Msg("Failed loading initial pattern sets")

		return err
	}

	if p.w == nil {
		p.l.Warn().
			Str("_pattern_provider_type", "file_system").
			Msg("Watcher for file_system provider is not configured. Updates to pattern sets will have no effect.")

		return nil
	}

	if err := p.w.Add(p.src); err != nil {
		p.l.Error().Err(err).
			Str("_pattern_provider_type", "file_system").
			Msg("Failed to start pattern definitions provider")

		return err
	}

	go p.watchFiles(ctx)

	return nil
}

func (p *provider) Stop(_ context.Context) error {
	p.l.Info().
		Str("_pattern_provider_type", "file_system").
		Msg("Tearing down pattern provider")

	if p.w != nil {
		return p.w.Close()
	}

	return nil
}

func (p *provider) watchFiles(ctx context.Context) {
	p.l.Debug().
		Str("_pattern_provider_type", "file_system").
		Msg("Watching pattern set files for changes")

	for {
		select {
		case evt, ok := <-p.w.Events:
			if !ok {
				p.l.Debug().
					Str("_pattern_provider_type", "file_system").
					Msg("Watcher events channel closed")

				return
			}

			p.l.Debug().
				Str("_pattern_provider_type", "file_system").
				Str("_event", evt.String()).
				Str("_src", evt.Name).
				Msg("Pattern set update event received")

			if !hasPatternSetSuffix(evt.Name) {
				continue
			}

			switch {
			case evt.Has(fsnotify.Create), evt.Has(fsnotify.Write):
				_ = p.onFileChanged(ctx, evt.Name)
			case evt.Has(fsnotify.Remove), evt.Has(fsnotify.Rename):
				_ = p.onFileDeleted(ctx, evt.Name)
			}
		case err, ok := <-p.w.Errors:
			if !ok {
				p.l.Debug().
					Str("_pattern_provider_type", "file_system").
					Msg("Watcher error channel closed")

				return
			}

			p.l.Warn().Err(err).
				Str("_pattern_provider_type", "file_system").
				Msg("Watcher error received")
		}
	}
}

func (p *provider) loadInitialPatternSets(ctx context.Context) error {
	p.l.Info().
		Str("_pattern_provider_type", "file_system").
		Msg("Loading initial pattern sets")

	var sources []string

	fInfo, err := os.Stat(p.src)
	if err != nil {
		return err
	}

	if fInfo.IsDir() {
		dirEntries, err := os.ReadDir(p.src)
		if err != nil {
			return err
		}

		for _, entry := range dirEntries {
			path := filepath.Join(p.src, entry.Name())

			if entry.IsDir() {
				p.l.Warn().
					Str("_pattern_provider_type", "file_system").
					Str("_path", path).
					Msg("Ignoring directory")

				continue
			}

			if !hasPatternSetSuffix(path) {
				p.l.Debug().
					Str("_pattern_provider_type", "file_system").
					Str("_path", path).
					Msg("Ignoring file with unsupported extension")

				continue
			}

			sources = append(sources, path)
		}
	} else {
		sources = append(sources, p.src)
	}

	for _, src := range sources {
		if err := p.onFileChanged(ctx, src); err != nil {
			return err
		}
	}

	return nil
}

func (p *provider) onFileChanged(ctx context.Context, file string) error {
	fInfo, err := os.Stat(file)
	if err != nil {
		p.l.Error().Err(err).
			Str("_pattern_provider_type", "file_system").
			Str("_file", file).
			Msg("Failed reading")

		return err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		p.l.Error().Err(err).
			Str("_pattern_provider_type", "file_system").
			Str("_file", file).
			Msg("Failed reading")

		return err
	}

	if len(data) == 0 {
		p.l.Warn().
			Str("_pattern_provider_type", "file_system").
			Str("_file", file).
			Msg("File is empty")

		// a truncated file drops the set loaded from it earlier
		return p.onFileDeleted(ctx, file)
	}

	patternSet, err := config.ParsePatternSet(contentTypeFor(file), bytes.NewBuffer(data))
	if err != nil {
		p.l.Warn().Err(err).
			Str("_pattern_provider_type", "file_system").
			Str("_file", file).
			Msg("Failed to parse pattern set definition")

		return err
	}

	patternSet.Source = "file_system:" + file
	patternSet.ModTime = fInfo.ModTime()

	p.mu.Lock()
	oldHash, known := p.states[file]
	p.states[file] = patternSet.Hash
	p.mu.Unlock()

	switch {
	case !known:
		p.patternSetChanged(patternSet.Source, "created")

		err = p.p.OnCreated(ctx, patternSet)
	case bytes.Equal(oldHash, patternSet.Hash):
		p.l.Debug().
			Str("_pattern_provider_type", "file_system").
			Str("_src", patternSet.Source).
			Msg("No updates received")

		return nil
	default:
		p.patternSetChanged(patternSet.Source, "updated")

		err = p.p.OnUpdated(ctx, patternSet)
	}

	if err != nil {
		p.l.Warn().Err(err).
			Str("_pattern_provider_type", "file_system").
			Str("_src", patternSet.Source).
			Msg("Failed to apply pattern set")

		p.mu.Lock()
		if known {
			p.states[file] = oldHash
		} else {
			delete(p.states, file)
		}
		p.mu.Unlock()

		return err
	}

	return nil
}

func (p *provider) onFileDeleted(ctx context.Context, file string) error {
	p.mu.Lock()
	_, known := p.states[file]
	delete(p.states, file)
	p.mu.Unlock()

	if !known {
		return nil
	}

	patternSet := &config.PatternSet{
		MetaData: config.MetaData{Source: "file_system:" + file},
	}

	p.patternSetChanged(patternSet.Source, "deleted")

	if err := p.p.OnDeleted(ctx, patternSet); err != nil {
		p.l.Warn().Err(err).
			Str("_pattern_provider_type", "file_system").
			Str("_src", patternSet.Source).
			Msg("Failed to apply pattern set")

		return err
	}

	return nil
}

func (p *provider) patternSetChanged(source, changeType string) {
	p.l.Info().
		Str("_pattern_provider_type", "file_system").
		Str("_src", source).
		Str("_type", changeType).
		Msg("Pattern set changed")
}

func hasPatternSetSuffix(file string) bool {
	switch filepath.Ext(file) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

func contentTypeFor(file string) string {
	if filepath.Ext(file) == ".json" {
		return "application/json"
	}

	return "application/yaml"
}
