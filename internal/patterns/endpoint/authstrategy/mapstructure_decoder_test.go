// Copyright 2022 Arvid Ryndal <arvid@ryndal.dev>
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

package authstrategy

import (
	"testing"

	"github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryndalv/skein/internal/app/mocks"
	"github.com/ryndalv/skein/internal/patterns/endpoint"
	"github.com/ryndalv/skein/internal/skein"
	"github.com/ryndalv/skein/internal/validation"
	"github.com/ryndalv/skein/internal/x/testsupport"
)

func TestDecodeAuthenticationStrategyHookFuncForBasicAuthStrategy(t *testing.T) {
	t.Parallel()

	type Type struct {
		AuthStrategy endpoint.AuthenticationStrategy `mapstructure:"auth"`
	}

	for uc, tc := range map[string]struct {
		config []byte
		assert func(t *testing.T, err error, as endpoint.AuthenticationStrategy)
	}{
		"all required properties configured": {
			config: []byte(`
auth:
  type: basic_auth
  config:
    user: foo
    password: bar`),
			assert: func(t *testing.T, err error, as endpoint.AuthenticationStrategy) {
				t.Helper()

				require.NoError(t, err)
				assert.IsType(t, &BasicAuth{}, as)
				bas := as.(*BasicAuth) // nolint: forcetypeassert
				assert.Equal(t, "foo", bas.User)
				assert.Equal(t, "bar", bas.Password)
			},
		},
		"with unsupported properties": {
			config: []byte(`
auth:
  type: basic_auth
  config:
    user: foo
    password: bar
    foo: bar
`),
			assert: func(t *testing.T, err error, _ endpoint.AuthenticationStrategy) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, skein.ErrConfiguration)
				require.ErrorContains(t, err, "invalid keys: foo")
			},
		},
		"without user property": {
			config: []byte(`
auth:
  type: basic_auth
  config:
    password: bar
`),
			assert: func(t *testing.T, err error, _ endpoint.AuthenticationStrategy) {
				t.Helper()

				require.Error(t, err)
				require.ErrorContains(t, err, "'user' is a required field")
			},
		},
		"without password property": {
			config: []byte(`
auth:
  type: basic_auth
  config:
    user: foo
`),
			assert: func(t *testing.T, err error, _ endpoint.AuthenticationStrategy) {
				t.Helper()

				require.Error(t, err)
				require.ErrorContains(t, err, "'password' is a required field")
			},
		},
		"without config property": {
			config: []byte(`
auth:
  type: basic_auth
`),
			assert: func(t *testing.T, err error, _ endpoint.AuthenticationStrategy) {
				t.Helper()

				require.Error(t, err)
				require.ErrorContains(t, err, "'config' property to be set")
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			validator, err := validation.NewValidator()
			require.NoError(t, err)

			appCtx := mocks.NewContextMock(t)
			appCtx.EXPECT().Validator().Return(validator)

			var typ Type

			dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				DecodeHook: mapstructure.ComposeDecodeHookFunc(
					DecodeAuthenticationStrategyHookFunc(appCtx),
				),
				Result: &typ,
			})
			require.NoError(t, err)

			conf, err := testsupport.DecodeTestConfig(tc.config)
			require.NoError(t, err)

			// WHEN
			err = dec.Decode(conf)

			// THEN
			tc.assert(t, err, typ.AuthStrategy)
		})
	}
}

func TestDecodeAuthenticationStrategyHookFuncForAPIKeyStrategy(t *testing.T) {
	t.Parallel()

	type Type struct {
		AuthStrategy endpoint.AuthenticationStrategy `mapstructure:"auth"`
	}

	for uc, tc := range map[string]struct {
		config []byte
		assert func(t *testing.T, err error, as endpoint.AuthenticationStrategy)
	}{
		"all required properties, with in=header": {
			config: []byte(`
auth:
  type: api_key
  config:
    name: foo
    value: bar
    in: header
`),
			assert: func(t *testing.T, err error, as endpoint.AuthenticationStrategy) {
				t.Helper()

				require.NoError(t, err)
				assert.IsType(t, &APIKey{}, as)
				aks := as.(*APIKey) // nolint: forcetypeassert
				assert.Equal(t, "foo", aks.Name)
				assert.Equal(t, "bar", aks.Value)
				assert.Equal(t, "header", aks.In)
			},
		},
		"with unsupported properties": {
			config: []byte(`
auth:
  type: api_key
  config:
    name: foo
    value: bar
    in: header
    foo: bar
`),
			assert: func(t *testing.T, err error, _ endpoint.AuthenticationStrategy) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, skein.ErrConfiguration)
				require.ErrorContains(t, err, "invalid keys: foo")
			},
		},
		"all required properties, with in=cookie": {
			config: []byte(`
auth:
  type: api_key
  config:
    name: foo
    value: bar
    in: cookie
`),
			assert: func(t *testing.T, err error, as endpoint.AuthenticationStrategy) {
				t.Helper()

				require.NoError(t, err)
				assert.IsType(t, &APIKey{}, as)
				aks := as.(*APIKey) // nolint: forcetypeassert
				assert.Equal(t, "foo", aks.Name)
				assert.Equal(t, "bar", aks.Value)
				assert.Equal(t, "cookie", aks.In)
			},
		},
		"all required properties, with in=query": {
			config: []byte(`
auth:
  type: api_key
  config:
    name: foo
    value: bar
    in: query
`),
			assert: func(t *testing.T, err error, as endpoint.AuthenticationStrategy) {
				t.Helper()

				require.NoError(t, err)
				assert.IsType(t, &APIKey{}, as)
				aks := as.(*APIKey) // nolint: forcetypeassert
				assert.Equal(t, "foo", aks.Name)
				assert.Equal(t, "bar", aks.Value)
				assert.Equal(t, "query", aks.In)
			},
		},
		"all required properties, with in=foobar": {
			config: []byte(`
auth:
  type: api_key
  config:
    name: foo
    value: bar
    in: foobar
`),
			assert: func(t *testing.T, err error, _ endpoint.AuthenticationStrategy) {
				t.Helper()

				require.Error(t, err)
				require.ErrorContains(t, err, "'in' must be one of [cookie header query]")
			},
		},
		"without in property": {
			config: []byte(`
auth:
  type: api_key
  config:
    name: foo
    value: bar
`),
			assert: func(t *testing.T, err error, _ endpoint.AuthenticationStrategy) {
				t.Helper()

				require.Error(t, err)
				require.ErrorContains(t, err, "'in' is a required field")
			},
		},
		"without name property": {
			config: []byte(`
auth:
  type: api_key
  config:
    value: bar
    in: header
`),
			assert: func(t *testing.T, err error, _ endpoint.AuthenticationStrategy) {
				t.Helper()

				require.Error(t, err)
				require.ErrorContains(t, err, "'name' is a required field")
			},
		},
		"without value property": {
			config: []byte(`
auth:
  type: api_key
  config:
    name: foo
    in: header
`),
			assert: func(t *testing.T, err error, _ endpoint.AuthenticationStrategy) {
				t.Helper()

				require.Error(t, err)
				require.ErrorContains(t, err, "'value' is a required field")
			},
		},
		"without config property": {
			config: []byte(`
auth:
  type: api_key
`),
			assert: func(t *testing.T, err error, _ endpoint.AuthenticationStrategy) {
				t.Helper()

				require.Error(t, err)
				require.ErrorContains(t, err, "'config' property to be set")
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			validator, err := validation.NewValidator()
			require.NoError(t, err)

			appCtx := mocks.NewContextMock(t)
			appCtx.EXPECT().Validator().Return(validator)

			var typ Type

			dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				DecodeHook: mapstructure.ComposeDecodeHookFunc(
					DecodeAuthenticationStrategyHookFunc(appCtx),
				),
				Result: &typ,
			})
			require.NoError(t, err)

			conf, err := testsupport.DecodeTestConfig(tc.config)
			require.NoError(t, err)

			// WHEN
			err = dec.Decode(conf)

			// THEN
			tc.assert(t, err, typ.AuthStrategy)
		})
	}
}

func TestDecodeAuthenticationStrategyHookFuncForUnsupportedStrategy(t *testing.T) {
	t.Parallel()

	type Type struct {
		AuthStrategy endpoint.AuthenticationStrategy `mapstructure:"auth"`
	}

	// GIVEN
	appCtx := mocks.NewContextMock(t)

	var typ Type

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			DecodeAuthenticationStrategyHookFunc(appCtx),
		),
		Result: &typ,
	})
	require.NoError(t, err)

	conf, err := testsupport.DecodeTestConfig([]byte(`
auth:
  type: foobar
  config:
    user: foo
`))
	require.NoError(t, err)

	// WHEN
	err = dec.Decode(conf)

	// THEN
	require.Error(t, err)
	require.ErrorIs(t, err, skein.ErrConfiguration)
	require.ErrorContains(t, err, "unsupported authentication type: 'foobar'")
}
