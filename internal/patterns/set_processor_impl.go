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

package patterns

import (
	"context"
	"errors"

	"github.com/ryndalv/skein/internal/patterns/config"
	"github.com/ryndalv/skein/internal/patterns/pattern"
	"github.com/ryndalv/skein/internal/skein"
	"github.com/ryndalv/skein/internal/x/errorchain"
)

var ErrUnsupportedPatternSetVersion = errors.New("unsupported pattern set version")

type patternSetProcessor struct {
	r pattern.Repository
	f pattern.Factory
}

func NewPatternSetProcessor(repo pattern.Repository, factory pattern.Factory) pattern.SetProcessor {
	return &patternSetProcessor{r: repo, f: factory}
}

func (p *patternSetProcessor) isVersionSupported(version string) bool {
	return version == config.CurrentVersion
}

func (p *patternSetProcessor) loadPatterns(set *config.PatternSet) ([]pattern.Pattern, error) {
	patterns := make([]pattern.Pattern, len(set.Patterns))

	for idx, pc := range set.Patterns {
		pat, err := p.f.CreatePattern(set.Source, pc)
		if err != nil {
			return nil, errorchain.NewWithMessagef(skein.ErrInternal, "loading pattern ID='%s' failed", pc.ID).
				CausedBy(err)
		}

		patterns[idx] = pat
	}

	return patterns, nil
}

func (p *patternSetProcessor) OnCreated(ctx context.Context, set *config.PatternSet) error {
	if !p.isVersionSupported(set.Version) {
		return errorchain.NewWithMessage(ErrUnsupportedPatternSetVersion, set.Version)
	}

	patterns, err := p.loadPatterns(set)
	if err != nil {
		return err
	}

	return p.r.AddPatternSet(ctx, set.Source, patterns)
}

func (p *patternSetProcessor) OnUpdated(ctx context.Context, set *config.PatternSet) error {
	if !p.isVersionSupported(set.Version) {
		return errorchain.NewWithMessage(ErrUnsupportedPatternSetVersion, set.Version)
	}

	patterns, err := p.loadPatterns(set)
	if err != nil {
		return err
	}

	return p.r.UpdatePatternSet(ctx, set.Source, patterns)
}

func (p *patternSetProcessor) OnDeleted(ctx context.Context, set *config.PatternSet) error {
	return p.r.DeletePatternSet(ctx, set.Source)
}
