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

	"github.com/ryndalv/skein/internal/patterns/config"
)

type SetProcessorMock struct {
	mock.Mock
}

func (m *SetProcessorMock) OnCreated(ctx context.Context, set *config.PatternSet) error {
	return m.Called(ctx, set).Error(0)
}

func (m *SetProcessorMock) OnUpdated(ctx context.Context, set *config.PatternSet) error {
	return m.Called(ctx, set).Error(0)
}

func (m *SetProcessorMock) OnDeleted(ctx context.Context, set *config.PatternSet) error {
	return m.Called(ctx, set).Error(0)
}
