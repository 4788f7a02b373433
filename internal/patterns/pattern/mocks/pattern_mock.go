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
	"github.com/stretchr/testify/mock"

	"github.com/ryndalv/skein/internal/patterns/pattern"
	"github.com/ryndalv/skein/internal/seqtrie"
)

type PatternMock struct {
	mock.Mock
}

func (m *PatternMock) ID() string { return m.Called().String(0) }

func (m *PatternMock) SrcID() string { return m.Called().String(0) }

func (m *PatternMock) Sequence() seqtrie.Path[string] {
	args := m.Called()

	if val := args.Get(0); val != nil {
		// nolint: forcetypeassert
		return val.(seqtrie.Path[string])
	}

	return nil
}

func (m *PatternMock) Expression() string { return m.Called().String(0) }

func (m *PatternMock) Value() any { return m.Called().Get(0) }

func (m *PatternMock) SameAs(other pattern.Pattern) bool { return m.Called(other).Bool(0) }

func (m *PatternMock) EqualTo(other pattern.Pattern) bool { return m.Called(other).Bool(0) }
