// Copyright 2024 Arvid Ryndal <arvid@ryndal.dev>
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

package memory

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/ryndalv/skein/internal/config"
	"github.com/ryndalv/skein/internal/skein"
	"github.com/ryndalv/skein/internal/validation"
	"github.com/ryndalv/skein/internal/x/errorchain"
)

func decodeConfig(validator validation.Validator, input any, output any) error {
	dec, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			DecodeHook:  config.StringToByteSizeHookFunc(),
			Result:      output,
			ErrorUnused: true,
		})
	if err != nil {
		return errorchain.NewWithMessage(skein.ErrConfiguration,
			"failed decoding in-memory cache config").CausedBy(err)
	}

	if err = dec.Decode(input); err != nil {
		return errorchain.NewWithMessage(skein.ErrConfiguration,
			"failed decoding in-memory cache config").CausedBy(err)
	}

	if err = validator.ValidateStruct(output); err != nil {
		return errorchain.NewWithMessage(skein.ErrConfiguration,
			"failed validating in-memory cache config").CausedBy(err)
	}

	return nil
}
