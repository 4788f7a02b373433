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

package recovery

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ryndalv/skein/internal/handler/middleware/http/errorhandler/mocks"
	"github.com/ryndalv/skein/internal/skein"
)

func TestHandlerExecution(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc    string
		next  http.Handler
		setup func(t *testing.T, eh *mocks.ErrorHandlerMock)
	}{
		{
			uc: "no panic",
			next: http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
				rw.WriteHeader(http.StatusNoContent)
			}),
			setup: func(t *testing.T, _ *mocks.ErrorHandlerMock) { t.Helper() },
		},
		{
			uc: "panic with error",
			next: http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
				panic(errors.New("test error"))
			}),
			setup: func(t *testing.T, eh *mocks.ErrorHandlerMock) {
				t.Helper()

				eh.EXPECT().HandleError(mock.Anything, mock.Anything, mock.Anything).Run(
					func(_ http.ResponseWriter, _ *http.Request, err error) {
						require.ErrorIs(t, err, skein.ErrInternal)
						assert.Contains(t, err.Error(), "runtime error occurred")
						assert.Contains(t, err.Error(), "test error")
					})
			},
		},
		{
			uc: "panic with arbitrary value",
			next: http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
				panic("whatever")
			}),
			setup: func(t *testing.T, eh *mocks.ErrorHandlerMock) {
				t.Helper()

				eh.EXPECT().HandleError(mock.Anything, mock.Anything, mock.Anything).Run(
					func(_ http.ResponseWriter, _ *http.Request, err error) {
						require.ErrorIs(t, err, skein.ErrInternal)
						assert.Contains(t, err.Error(), "whatever")
					})
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			eh := mocks.NewErrorHandlerMock(t)
			tc.setup(t, eh)

			handler := alice.New(New(eh)).Then(tc.next)

			// WHEN
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

			// THEN mock expectations are verified on cleanup
		})
	}
}
