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

package config

import (
	"crypto/tls"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/inhies/go-bytesize"

	"github.com/ryndalv/skein/internal/skein"
	"github.com/ryndalv/skein/internal/x/errorchain"
)

func StringToByteSizeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		if to != reflect.TypeOf(bytesize.B) {
			return data, nil
		}

		// nolint: forcetypeassert
		return bytesize.Parse(data.(string))
	}
}

// nolint: gochecknoglobals
var DecodeTLSMinVersionHookFunc mapstructure.DecodeHookFunc = func(
	from reflect.Type, to reflect.Type, data any,
) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}

	if to != reflect.TypeOf(TLSMinVersion(0)) {
		return data, nil
	}

	switch data {
	case "TLS1.2":
		return TLSMinVersion(tls.VersionTLS12), nil
	case "TLS1.3":
		return TLSMinVersion(tls.VersionTLS13), nil
	default:
		return nil, errorchain.NewWithMessagef(skein.ErrConfiguration,
			"unsupported tls version: %s", data)
	}
}

// nolint: gochecknoglobals
var DecodeTLSCipherSuiteHookFunc mapstructure.DecodeHookFunc = func(
	from reflect.Type, to reflect.Type, data any,
) (any, error) {
	if from.Kind() != reflect.Slice {
		return data, nil
	}

	if to != reflect.TypeOf(TLSCipherSuites{}) {
		return data, nil
	}

	values := reflect.ValueOf(data)
	suites := make(TLSCipherSuites, values.Len())

	for idx := range values.Len() {
		name, ok := values.Index(idx).Interface().(string)
		if !ok {
			return nil, errorchain.NewWithMessagef(skein.ErrConfiguration,
				"invalid cipher suite: %v", values.Index(idx).Interface())
		}

		id, found := cipherSuiteID(name)
		if !found {
			return nil, errorchain.NewWithMessagef(skein.ErrConfiguration,
				"unsupported cipher suite: %s", name)
		}

		suites[idx] = id
	}

	return suites, nil
}

func cipherSuiteID(name string) (uint16, bool) {
	for _, suite := range tls.CipherSuites() {
		if suite.Name == name {
			return suite.ID, true
		}
	}

	return 0, false
}
