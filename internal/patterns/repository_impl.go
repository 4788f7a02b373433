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
	"slices"
	"strings"
	"sync"

	"github.com/DmitriyVTitov/size"
	"github.com/ccoveille/go-safecast"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/wI2L/jsondiff"

	"github.com/ryndalv/skein/internal/patterns/pattern"
	"github.com/ryndalv/skein/internal/seqtrie"
	"github.com/ryndalv/skein/internal/skein"
	"github.com/ryndalv/skein/internal/stream"
	"github.com/ryndalv/skein/internal/x/errorchain"
	"github.com/ryndalv/skein/internal/x/slicex"
)

var ErrConflictingSequence = errors.New("sequence already used by another pattern set")

type repository struct {
	l zerolog.Logger

	knownPatterns      []pattern.Pattern
	knownPatternsMutex sync.Mutex

	index      *seqtrie.Trie[string, []pattern.Pattern]
	revision   string
	indexMutex sync.RWMutex
}

func newRepository(logger zerolog.Logger) pattern.Repository {
	return &repository{
		l:        logger,
		index:    seqtrie.New[string, []pattern.Pattern](seqtrie.WithLogger[string, []pattern.Pattern](logger)),
		revision: uuid.NewString(),
	}
}

// snapshot returns the currently published index. Published tries are never
// mutated again, mutations swap in a fresh clone.
func (r *repository) snapshot() *seqtrie.Trie[string, []pattern.Pattern] {
	r.indexMutex.RLock()
	defer r.indexMutex.RUnlock()

	return r.index
}

func (r *repository) publish(index *seqtrie.Trie[string, []pattern.Pattern]) {
	r.indexMutex.Lock()
	r.index = index
	r.revision = uuid.NewString()
	r.indexMutex.Unlock()
}

func (r *repository) Match(_ context.Context, tokens []string) []pattern.Pattern {
	var matches []pattern.Pattern

	for _, stored := range r.snapshot().Match(tokens) {
		matches = append(matches, stored...)
	}

	return matches
}

func (r *repository) MatchStream(
	ctx context.Context, src stream.Source[string], yield func(pattern.Pattern) bool,
) error {
	return r.snapshot().MatchStream(ctx, src, func(stored []pattern.Pattern) bool {
		for _, pat := range stored {
			if !yield(pat) {
				return false
			}
		}

		return true
	})
}

func (r *repository) Get(id string) (pattern.Pattern, error) {
	r.knownPatternsMutex.Lock()
	defer r.knownPatternsMutex.Unlock()

	for _, pat := range r.knownPatterns {
		if pat.ID() == id {
			return pat, nil
		}
	}

	return nil, errorchain.NewWithMessagef(skein.ErrNoPatternFound, "no pattern with ID='%s' loaded", id)
}

func (r *repository) Has(id string) bool {
	_, err := r.Get(id)

	return err == nil
}

func (r *repository) Patterns() []pattern.Pattern {
	r.knownPatternsMutex.Lock()
	defer r.knownPatternsMutex.Unlock()

	return slices.Clone(r.knownPatterns)
}

func (r *repository) Size() int {
	r.knownPatternsMutex.Lock()
	defer r.knownPatternsMutex.Unlock()

	return len(r.knownPatterns)
}

func (r *repository) Revision() string {
	r.indexMutex.RLock()
	defer r.indexMutex.RUnlock()

	return r.revision
}

func (r *repository) Stats() pattern.Stats {
	r.indexMutex.RLock()
	index := r.index
	revision := r.revision
	r.indexMutex.RUnlock()

	indexBytes, err := safecast.ToUint64(size.Of(index))
	if err != nil {
		indexBytes = 0
	}

	r.knownPatternsMutex.Lock()
	defer r.knownPatternsMutex.Unlock()

	var sources []string

	for _, pat := range r.knownPatterns {
		if !slices.Contains(sources, pat.SrcID()) {
			sources = append(sources, pat.SrcID())
		}
	}

	return pattern.Stats{
		Patterns:   len(r.knownPatterns),
		Sequences:  index.Size(),
		Sources:    sources,
		Revision:   revision,
		IndexBytes: indexBytes,
	}
}

func (r *repository) AddPatternSet(_ context.Context, _ string, patterns []pattern.Pattern) error {
	r.knownPatternsMutex.Lock()
	defer r.knownPatternsMutex.Unlock()

	tmp := r.index.Clone()

	if err := r.addPatternsTo(tmp, patterns); err != nil {
		return err
	}

	r.knownPatterns = append(r.knownPatterns, patterns...)

	r.publish(tmp)

	return nil
}

func (r *repository) UpdatePatternSet(_ context.Context, srcID string, patterns []pattern.Pattern) error {
	r.knownPatternsMutex.Lock()
	defer r.knownPatternsMutex.Unlock()

	// find all patterns for the given src id
	applicable := slicex.Filter(r.knownPatterns, func(p pattern.Pattern) bool { return p.SrcID() == srcID })

	// find new patterns - these are completely new ones, as well as those, which have their
	// sequences updated, so that the old ones must be removed and the updated ones must be
	// inserted into the index.
	newPatterns := slicex.Filter(patterns, func(loaded pattern.Pattern) bool {
		isNew := !slices.ContainsFunc(applicable, func(existing pattern.Pattern) bool {
			return existing.ID() == loaded.ID()
		})

		sequenceChanged := slices.ContainsFunc(applicable, func(existing pattern.Pattern) bool {
			return existing.ID() == loaded.ID() && existing.Expression() != loaded.Expression()
		})

		return isNew || sequenceChanged
	})

	// find updated patterns - those, which have the same ID and the same sequence. These can
	// be just replaced in their index slot without the need to remove the old ones first and
	// insert the updated ones afterward.
	updatedPatterns := slicex.Filter(patterns, func(loaded pattern.Pattern) bool {
		return slices.ContainsFunc(applicable, func(existing pattern.Pattern) bool {
			return existing.ID() == loaded.ID() &&
				!existing.EqualTo(loaded) &&
				existing.Expression() == loaded.Expression()
		})
	})

	// find deleted patterns - those, which are gone, or still present, but have a different
	// sequence. Latter means, the old ones need to be removed and the updated ones inserted.
	deletedPatterns := slicex.Filter(applicable, func(existing pattern.Pattern) bool {
		gone := !slices.ContainsFunc(patterns, func(loaded pattern.Pattern) bool {
			return loaded.ID() == existing.ID()
		})

		sequenceChanged := slices.ContainsFunc(patterns, func(loaded pattern.Pattern) bool {
			return existing.ID() == loaded.ID() && existing.Expression() != loaded.Expression()
		})

		return gone || sequenceChanged
	})

	tmp := r.index.Clone()

	// remove deleted patterns
	if err := r.removePatternsFrom(tmp, deletedPatterns); err != nil {
		return err
	}

	// replace updated patterns
	if err := r.replacePatternsIn(tmp, updatedPatterns); err != nil {
		return err
	}

	// add new patterns
	if err := r.addPatternsTo(tmp, newPatterns); err != nil {
		return err
	}

	r.knownPatterns = slices.DeleteFunc(r.knownPatterns, func(loaded pattern.Pattern) bool {
		return slices.Contains(deletedPatterns, loaded)
	})

	for idx, existing := range r.knownPatterns {
		for _, updated := range updatedPatterns {
			if updated.SameAs(existing) {
				r.knownPatterns[idx] = updated

				break
			}
		}
	}

	r.knownPatterns = append(r.knownPatterns, newPatterns...)

	r.publish(tmp)

	r.logPatternSetDiff(srcID, applicable, patterns)

	return nil
}

func (r *repository) DeletePatternSet(_ context.Context, srcID string) error {
	r.knownPatternsMutex.Lock()
	defer r.knownPatternsMutex.Unlock()

	// find all patterns for the given src id
	applicable := slicex.Filter(r.knownPatterns, func(p pattern.Pattern) bool { return p.SrcID() == srcID })
	if len(applicable) == 0 {
		return nil
	}

	tmp := r.index.Clone()

	// remove them
	if err := r.removePatternsFrom(tmp, applicable); err != nil {
		return err
	}

	r.knownPatterns = slices.DeleteFunc(r.knownPatterns, func(p pattern.Pattern) bool {
		return slices.Contains(applicable, p)
	})

	r.publish(tmp)

	return nil
}

type patternChange struct {
	ID         string `json:"id"`
	Expression string `json:"expression"`
	Value      any    `json:"value,omitempty"`
}

func describePatterns(patterns []pattern.Pattern) []patternChange {
	changes := make([]patternChange, len(patterns))

	for idx, pat := range patterns {
		changes[idx] = patternChange{ID: pat.ID(), Expression: pat.Expression(), Value: pat.Value()}
	}

	slices.SortFunc(changes, func(a, b patternChange) int { return strings.Compare(a.ID, b.ID) })

	return changes
}

// logPatternSetDiff logs the applied changes as a JSON patch. Diffing is
// not exactly cheap, so it happens only if debug logging is enabled.
func (r *repository) logPatternSetDiff(srcID string, before, after []pattern.Pattern) {
	if r.l.GetLevel() > zerolog.DebugLevel {
		return
	}

	patch, err := jsondiff.Compare(describePatterns(before), describePatterns(after))
	if err != nil || len(patch) == 0 {
		return
	}

	data, err := json.Marshal(patch)
	if err != nil {
		return
	}

	r.l.Debug().Str("_src", srcID).RawJSON("_changes", data).Msg("Pattern set changed")
}

func (r *repository) addPatternsTo(
	index *seqtrie.Trie[string, []pattern.Pattern], patterns []pattern.Pattern,
) error {
	for _, pat := range patterns {
		stored, _ := index.Get(pat.Sequence())

		// patterns sharing one sequence must come from the same pattern set
		if len(stored) != 0 && stored[0].SrcID() != pat.SrcID() {
			return errorchain.NewWithMessagef(skein.ErrInternal, "failed adding pattern ID='%s'", pat.ID()).
				CausedBy(ErrConflictingSequence)
		}

		index.Set(pat.Sequence(), append(slices.Clone(stored), pat))
	}

	return nil
}

func (r *repository) removePatternsFrom(
	index *seqtrie.Trie[string, []pattern.Pattern], tbdPatterns []pattern.Pattern,
) error {
	for _, pat := range tbdPatterns {
		stored, ok := index.Get(pat.Sequence())

		rest := slicex.Filter(stored, func(existing pattern.Pattern) bool { return !existing.SameAs(pat) })
		if !ok || len(rest) == len(stored) {
			return errorchain.NewWithMessagef(skein.ErrInternal, "failed deleting pattern ID='%s'", pat.ID())
		}

		if len(rest) == 0 {
			index.Delete(pat.Sequence())
		} else {
			index.Set(pat.Sequence(), rest)
		}
	}

	return nil
}

func (r *repository) replacePatternsIn(
	index *seqtrie.Trie[string, []pattern.Pattern], patterns []pattern.Pattern,
) error {
	for _, updated := range patterns {
		stored, ok := index.Get(updated.Sequence())

		idx := slices.IndexFunc(stored, func(existing pattern.Pattern) bool { return existing.SameAs(updated) })
		if !ok || idx < 0 {
			return errorchain.NewWithMessagef(skein.ErrInternal, "failed replacing pattern ID='%s'", updated.ID())
		}

		replaced := slices.Clone(stored)
		replaced[idx] = updated

		index.Set(updated.Sequence(), replaced)
	}

	return nil
}
