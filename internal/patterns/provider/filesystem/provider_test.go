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
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ryndalv/skein/internal/patterns/config"
	"github.com/ryndalv/skein/internal/patterns/pattern/mocks"
	"github.com/ryndalv/skein/internal/skein"
	"github.com/ryndalv/skein/internal/x/testsupport"
)

func TestNewProvider(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		conf   func(t *testing.T) map[string]any
		assert func(t *testing.T, err error, prov *provider)
	}{
		{
			uc: "with unknown field",
			conf: func(t *testing.T) map[string]any {
				t.Helper()

				return map[string]any{"foo": "bar"}
			},
			assert: func(t *testing.T, err error, _ *provider) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, skein.ErrConfiguration)
				assert.Contains(t, err.Error(), "failed to decode")
			},
		},
		{
			uc: "without src",
			conf: func(t *testing.T) map[string]any {
				t.Helper()

				return map[string]any{"watch": true}
			},
			assert: func(t *testing.T, err error, _ *provider) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, skein.ErrConfiguration)
				assert.Contains(t, err.Error(), "no src configured")
			},
		},
		{
			uc: "with not existing src",
			conf: func(t *testing.T) map[string]any {
				t.Helper()

				return map[string]any{"src": "foo.bar"}
			},
			assert: func(t *testing.T, err error, _ *provider) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, skein.ErrInternal)
				assert.Contains(t, err.Error(), "failed to get information")
			},
		},
		{
			uc: "with existing src and without watcher",
			conf: func(t *testing.T) map[string]any {
				t.Helper()

				return map[string]any{"src": t.TempDir()}
			},
			assert: func(t *testing.T, err error, prov *provider) {
				t.Helper()

				require.NoError(t, err)
				require.NotNil(t, prov)
				assert.True(t, filepath.IsAbs(prov.src))
				assert.Nil(t, prov.w)
				assert.NotNil(t, prov.states)
			},
		},
		{
			uc: "with existing src and with watcher",
			conf: func(t *testing.T) map[string]any {
				t.Helper()

				return map[string]any{"src": t.TempDir(), "watch": true}
			},
			assert: func(t *testing.T, err error, prov *provider) {
				t.Helper()

				require.NoError(t, err)
				require.NotNil(t, prov)
				assert.True(t, filepath.IsAbs(prov.src))
				assert.NotNil(t, prov.w)
				assert.NotNil(t, prov.states)
			},
		},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// GIVEN
			processor := &mocks.SetProcessorMock{}

			// WHEN
			prov, err := newProvider(tc.conf(t), processor, log.Logger)

			// THEN
			tc.assert(t, err, prov)
			processor.AssertExpectations(t)
		})
	}
}

// nolint: maintidx
func TestStartProvider(t *testing.T) {
	t.Parallel()

	validPatternSet := `
version: "1alpha1"
name: test
patterns:
- id: pattern:1
  sequence:
  - token: alpha
  - wildcard: 2
  - token: omega
  value: 42
`

	updatedPatternSet := strings.ReplaceAll(validPatternSet, "value: 42", "value: 43")

	for _, tc := range []struct {
		uc             string
		createProvider func(t *testing.T, file string, dir string, processor *mocks.SetProcessorMock) *provider
		setupProcessor func(t *testing.T, processor *mocks.SetProcessorMock)
		writeContents  func(t *testing.T, file string, dir string)
		assert         func(t *testing.T, err error, processor *mocks.SetProcessorMock)
	}{
		{
			uc: "start provider using not existing file",
			createProvider: func(t *testing.T, _ string, _ string, processor *mocks.SetProcessorMock) *provider {
				t.Helper()

				return &provider{
					src:    "foo.bar",
					p:      processor,
					l:      log.Logger,
					states: make(map[string][]byte),
				}
			},
			assert: func(t *testing.T, err error, _ *mocks.SetProcessorMock) {
				t.Helper()

				require.Error(t, err)
				assert.Contains(t, err.Error(), "no such file")
			},
		},
		{
			uc: "successfully start provider without watcher using empty file",
			createProvider: func(t *testing.T, file string, _ string, processor *mocks.SetProcessorMock) *provider {
				t.Helper()

				return &provider{
					src:    file,
					p:      processor,
					l:      log.Logger,
					states: make(map[string][]byte),
				}
			},
			assert: func(t *testing.T, err error, _ *mocks.SetProcessorMock) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		{
			uc: "start provider using file with invalid pattern set",
			createProvider: func(t *testing.T, file string, _ string, processor *mocks.SetProcessorMock) *provider {
				t.Helper()

				require.NoError(t, os.WriteFile(file, []byte(`foo: bar`), 0o600))

				return &provider{
					src:    file,
					p:      processor,
					l:      log.Logger,
					states: make(map[string][]byte),
				}
			},
			assert: func(t *testing.T, err error, _ *mocks.SetProcessorMock) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, skein.ErrConfiguration)
			},
		},
		{
			uc: "successfully start provider without watcher using file with valid pattern set",
			createProvider: func(t *testing.T, file string, _ string, processor *mocks.SetProcessorMock) *provider {
				t.Helper()

				require.NoError(t, os.WriteFile(file, []byte(validPatternSet), 0o600))

				return &provider{
					src:    file,
					p:      processor,
					l:      log.Logger,
					states: make(map[string][]byte),
				}
			},
			setupProcessor: func(t *testing.T, processor *mocks.SetProcessorMock) {
				t.Helper()

				processor.On("OnCreated", mock.Anything, mock.MatchedBy(
					func(set *config.PatternSet) bool {
						return strings.HasPrefix(set.Source, "file_system:") &&
							set.Version == config.CurrentVersion &&
							set.Name == "test" &&
							len(set.Patterns) == 1 &&
							set.Patterns[0].ID == "pattern:1" &&
							len(set.Hash) != 0 &&
							!set.ModTime.IsZero()
					},
				)).Return(nil).Once()
			},
			assert: func(t *testing.T, err error, processor *mocks.SetProcessorMock) {
				t.Helper()

				require.NoError(t, err)
				processor.AssertNumberOfCalls(t, "OnCreated", 1)
			},
		},
		{
			uc: "start provider using file with valid pattern set and failing processor",
			createProvider: func(t *testing.T, file string, _ string, processor *mocks.SetProcessorMock) *provider {
				t.Helper()

				require.NoError(t, os.WriteFile(file, []byte(validPatternSet), 0o600))

				return &provider{
					src:    file,
					p:      processor,
					l:      log.Logger,
					states: make(map[string][]byte),
				}
			},
			setupProcessor: func(t *testing.T, processor *mocks.SetProcessorMock) {
				t.Helper()

				processor.On("OnCreated", mock.Anything, mock.Anything).
					Return(testsupport.ErrTestPurpose).Once()
			},
			assert: func(t *testing.T, err error, _ *mocks.SetProcessorMock) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, testsupport.ErrTestPurpose)
			},
		},
		{
			uc: "successfully start provider without watcher using empty dir",
			createProvider: func(t *testing.T, _ string, dir string, processor *mocks.SetProcessorMock) *provider {
				t.Helper()

				return &provider{
					src:    dir,
					p:      processor,
					l:      log.Logger,
					states: make(map[string][]byte),
				}
			},
			assert: func(t *testing.T, err error, _ *mocks.SetProcessorMock) {
				t.Helper()

				require.NoError(t, err)
			},
		},
		{
			uc: "successfully start provider without watcher using dir with pattern set file, " +
				"file with unsupported extension and subdirectory",
			createProvider: func(t *testing.T, _ string, dir string, processor *mocks.SetProcessorMock) *provider {
				t.Helper()

				require.NoError(t, os.WriteFile(
					filepath.Join(dir, "patterns.yaml"), []byte(validPatternSet), 0o600))
				require.NoError(t, os.WriteFile(
					filepath.Join(dir, "readme.txt"), []byte(`Hi Foo`), 0o600))
				require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o700))
				require.NoError(t, os.WriteFile(
					filepath.Join(dir, "nested", "more.yaml"), []byte(validPatternSet), 0o600))

				return &provider{
					src:    dir,
					p:      processor,
					l:      log.Logger,
					states: make(map[string][]byte),
				}
			},
			setupProcessor: func(t *testing.T, processor *mocks.SetProcessorMock) {
				t.Helper()

				processor.On("OnCreated", mock.Anything, mock.MatchedBy(
					func(set *config.PatternSet) bool {
						return strings.HasSuffix(set.Source, "patterns.yaml")
					},
				)).Return(nil).Once()
			},
			assert: func(t *testing.T, err error, processor *mocks.SetProcessorMock) {
				t.Helper()

				require.NoError(t, err)
				processor.AssertNumberOfCalls(t, "OnCreated", 1)
			},
		},
		{
			uc: "successfully start provider with watcher using initially empty dir, adding a pattern " +
				"set file, updating and deleting it then",
			createProvider: func(t *testing.T, _ string, dir string, processor *mocks.SetProcessorMock) *provider {
				t.Helper()

				prov, err := newProvider(
					map[string]any{"src": dir, "watch": true}, processor, log.Logger)
				require.NoError(t, err)

				return prov
			},
			setupProcessor: func(t *testing.T, processor *mocks.SetProcessorMock) {
				t.Helper()

				processor.On("OnCreated", mock.Anything, mock.MatchedBy(
					func(set *config.PatternSet) bool { return set.Name == "test" },
				)).Return(nil).Once()
				processor.On("OnUpdated", mock.Anything, mock.MatchedBy(
					func(set *config.PatternSet) bool { return set.Name == "test" },
				)).Return(nil).Once()
				processor.On("OnDeleted", mock.Anything, mock.MatchedBy(
					func(set *config.PatternSet) bool {
						return strings.HasPrefix(set.Source, "file_system:")
					},
				)).Return(nil).Once()
			},
			writeContents: func(t *testing.T, _ string, dir string) {
				t.Helper()

				file := filepath.Join(dir, "patterns.yaml")

				require.NoError(t, os.WriteFile(file, []byte(validPatternSet), 0o600))
				time.Sleep(500 * time.Millisecond)

				// same contents again must not result in any update
				require.NoError(t, os.WriteFile(file, []byte(validPatternSet), 0o600))
				time.Sleep(500 * time.Millisecond)

				require.NoError(t, os.WriteFile(file, []byte(updatedPatternSet), 0o600))
				time.Sleep(500 * time.Millisecond)

				require.NoError(t, os.Remove(file))
				time.Sleep(500 * time.Millisecond)
			},
			assert: func(t *testing.T, err error, processor *mocks.SetProcessorMock) {
				t.Helper()

				require.NoError(t, err)

				processor.AssertNumberOfCalls(t, "OnCreated", 1)
				processor.AssertNumberOfCalls(t, "OnUpdated", 1)
				processor.AssertNumberOfCalls(t, "OnDeleted", 1)
			},
		},
		{
			uc: "successfully start provider with watcher using file truncated afterwards",
			createProvider: func(t *testing.T, file string, _ string, processor *mocks.SetProcessorMock) *provider {
				t.Helper()

				require.NoError(t, os.WriteFile(file, []byte(validPatternSet), 0o600))

				prov, err := newProvider(
					map[string]any{"src": file, "watch": true}, processor, log.Logger)
				require.NoError(t, err)

				return prov
			},
			setupProcessor: func(t *testing.T, processor *mocks.SetProcessorMock) {
				t.Helper()

				processor.On("OnCreated", mock.Anything, mock.Anything).Return(nil).Once()
				processor.On("OnDeleted", mock.Anything, mock.Anything).Return(nil).Once()
			},
			writeContents: func(t *testing.T, file string, _ string) {
				t.Helper()

				// an emptied file drops the pattern set loaded from it
				require.NoError(t, os.WriteFile(file, []byte(``), 0o600))
				time.Sleep(500 * time.Millisecond)
			},
			assert: func(t *testing.T, err error, processor *mocks.SetProcessorMock) {
				t.Helper()

				require.NoError(t, err)

				processor.AssertNumberOfCalls(t, "OnCreated", 1)
				processor.AssertNumberOfCalls(t, "OnDeleted", 1)
			},
		},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			dir := t.TempDir()
			file := filepath.Join(t.TempDir(), "test-patterns.yaml")

			require.NoError(t, os.WriteFile(file, []byte(``), 0o600))

			processor := &mocks.SetProcessorMock{}
			if tc.setupProcessor != nil {
				tc.setupProcessor(t, processor)
			}

			// GIVEN
			prov := tc.createProvider(t, file, dir, processor)

			// WHEN
			err := prov.Start(t.Context())

			if tc.writeContents != nil {
				tc.writeContents(t, file, dir)
			}

			defer prov.Stop(t.Context()) // nolint: errcheck

			// THEN
			tc.assert(t, err, processor)
			processor.AssertExpectations(t)
		})
	}
}
