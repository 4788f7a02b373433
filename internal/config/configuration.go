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

package config

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/ryndalv/skein/internal/config/parser"
	"github.com/ryndalv/skein/internal/skein"
	"github.com/ryndalv/skein/internal/validation"
	"github.com/ryndalv/skein/internal/x/errorchain"
)

type (
	EnvVarPrefix      string
	ConfigurationPath string
)

type Configuration struct {
	Serve      ServeConfig      `koanf:"serve"`
	Management ManagementConfig `koanf:"management"`
	Log        LoggingConfig    `koanf:"log"`
	Tracing    TracingConfig    `koanf:"tracing"`
	Metrics    MetricsConfig    `koanf:"metrics"`
	Cache      CacheConfig      `koanf:"cache"`
	Patterns   PatternsConfig   `koanf:"patterns"`
}

func NewConfiguration(
	envPrefix EnvVarPrefix,
	configPath ConfigurationPath,
	validator validation.Validator,
) (*Configuration, error) {
	// copy defaults
	result := defaultConfig

	err := parser.New(
		parser.WithDefaultConfigFilename("skein.yaml"),
		parser.WithConfigFile(string(configPath)),
		parser.WithEnvPrefix(string(envPrefix)),
		parser.WithConfigValidator(ValidateConfig),
		parser.WithDecodeHookFunc(mapstructure.StringToTimeDurationHookFunc()),
		parser.WithDecodeHookFunc(mapstructure.StringToSliceHookFunc(",")),
		parser.WithDecodeHookFunc(mapstructure.TextUnmarshallerHookFunc()),
		parser.WithDecodeHookFunc(StringToByteSizeHookFunc()),
	).Load(&result)
	if err != nil {
		return nil, errorchain.NewWithMessage(skein.ErrConfiguration,
			"failed to load configuration").CausedBy(err)
	}

	if err = validator.ValidateStruct(result); err != nil {
		return nil, errorchain.NewWithMessage(skein.ErrConfiguration,
			"failed to validate configuration").CausedBy(err)
	}

	return &result, nil
}
