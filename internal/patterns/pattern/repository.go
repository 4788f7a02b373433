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

package pattern

import (
	"context"

	"github.com/ryndalv/skein/internal/stream"
)

// Stats is a point-in-time snapshot of the repository contents.
type Stats struct {
	Patterns   int      `json:"patterns"`
	Sequences  int      `json:"sequences"`
	Sources    []string `json:"sources"`
	Revision   string   `json:"revision"`
	IndexBytes uint64   `json:"index_bytes"`
}

//go:generate mockery --name Repository --structname RepositoryMock

type Repository interface {
	// Match returns the patterns whose sequences cover the given tokens,
	// in index traversal order.
	Match(ctx context.Context, tokens []string) []Pattern

	// MatchStream matches against tokens pulled lazily from src, calling
	// yield for every discovered pattern until yield returns false or the
	// source is exhausted.
	MatchStream(ctx context.Context, src stream.Source[string], yield func(Pattern) bool) error

	// Get returns the pattern with the given id.
	Get(id string) (Pattern, error)

	// Has reports whether a pattern with the given id is loaded.
	Has(id string) bool

	// Patterns returns a snapshot of all loaded patterns.
	Patterns() []Pattern

	// Size returns the number of loaded patterns.
	Size() int

	// Revision identifies the currently published index state. It changes
	// with every successful mutation.
	Revision() string

	// Stats returns a snapshot of the repository contents.
	Stats() Stats

	AddPatternSet(ctx context.Context, srcID string, patterns []Pattern) error
	UpdatePatternSet(ctx context.Context, srcID string, patterns []Pattern) error
	DeletePatternSet(ctx context.Context, srcID string) error
}
