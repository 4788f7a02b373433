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

package encoding

import (
	"github.com/go-viper/mapstructure/v2"
)

type Validator interface {
	Validate(entity any) error
}

type ValidatorFunc func(entity any) error

func (f ValidatorFunc) Validate(entity any) error { return f(entity) }

type noopValidator struct{}

func (noopValidator) Validate(_ any) error { return nil }

type decoderOpts struct {
	contentType       string
	validator         Validator
	tagName           string
	decodeHooks       mapstructure.DecodeHookFunc
	errorOnUnused     bool
	substituteEnvVars bool
}

type DecoderOption func(*decoderOpts)

func WithSourceContentType(contentType string) DecoderOption {
	return func(o *decoderOpts) {
		if len(contentType) != 0 {
			o.contentType = contentType
		}
	}
}

func WithValidator(validator Validator) DecoderOption {
	return func(o *decoderOpts) {
		if validator != nil {
			o.validator = validator
		}
	}
}

func WithErrorOnUnused(flag bool) DecoderOption {
	return func(o *decoderOpts) {
		o.errorOnUnused = flag
	}
}

func WithEnvVarsSubstitution(flag bool) DecoderOption {
	return func(o *decoderOpts) {
		o.substituteEnvVars = flag
	}
}

func WithDecodeHooks(hooks ...mapstructure.DecodeHookFunc) DecoderOption {
	return func(o *decoderOpts) {
		o.decodeHooks = mapstructure.ComposeDecodeHookFunc(hooks...)
	}
}

func WithTagName(name string) DecoderOption {
	return func(o *decoderOpts) {
		if len(name) != 0 {
			o.tagName = name
		}
	}
}

type encoderOpts struct {
	contentType string
}

type EncoderOption func(*encoderOpts)

func WithTargetContentType(contentType string) EncoderOption {
	return func(o *encoderOpts) {
		if len(contentType) != 0 {
			o.contentType = contentType
		}
	}
}
