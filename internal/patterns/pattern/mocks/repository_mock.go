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

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ryndalv/skein/internal/patterns/pattern"
	"github.com/ryndalv/skein/internal/stream"
)

type RepositoryMock struct {
	mock.Mock
}

func (m *RepositoryMock) Match(ctx context.Context, tokens []string) []pattern.Pattern {
	args := m.Called(ctx, tokens)

	if val := args.Get(0); val != nil {
		return val.([]pattern.Pattern) // nolint: forcetypeassert
	}

	return nil
}

func (m *RepositoryMock) MatchStream(
	ctx context.Context, src stream.Source[string], yield func(pattern.Pattern) bool,
) error {
	return m.Called(ctx, src, yield).Error(0)
}

func (m *RepositoryMock) Get(id string) (pattern.Pattern, error) {
	args := m.Called(id)

	if val := args.Get(0); val != nil {
		return val.(pattern.Pattern), nil // nolint: forcetypeassert
	}

	return nil, args.Error(1)
}

func (m *RepositoryMock) Has(id string) bool { return m.Called(id).Bool(0) }

func (m *RepositoryMock) Patterns() []pattern.Pattern {
	args := m.Called()

	if val := args.Get(0); val != nil {
		return val.([]pattern.Pattern) // nolint: forcetypeassert
	}

	return nil
}

func (m *RepositoryMock) Size() int { return m.Called().Int(0) }

func (m *RepositoryMock) Revision() string { return m.Called().String(0) }

func (m *RepositoryMock) Stats() pattern.Stats {
	args := m.Called()

	return args.Get(0).(pattern.Stats) // nolint: forcetypeassert
}

func (m *RepositoryMock) AddPatternSet(ctx context.Context, srcID string, patterns []pattern.Pattern) error {
	return m.Called(ctx, srcID, patterns).Error(0)
}

func (m *RepositoryMock) UpdatePatternSet(ctx context.Context, srcID string, patterns []pattern.Pattern) error {
	return m.Called(ctx, srcID, patterns).Error(0)
}

func (m *RepositoryMock) DeletePatternSet(ctx context.Context, srcID string) error {
	return m.Called(ctx, srcID).Error(0)
}
