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

package config

import (
	"crypto"
	"errors"
	"io"

	"github.com/goccy/go-json"

	"github.com/ryndalv/skein/internal/encoding"
	"github.com/ryndalv/skein/internal/skein"
	"github.com/ryndalv/skein/internal/validation"
	"github.com/ryndalv/skein/internal/x/errorchain"
)

var ErrEmptyPatternSet = errors.New("empty pattern set")

// ParsePatternSet decodes and validates a pattern set document. The returned
// set carries the hash of its declared content; source and modification time
// are left for the caller to fill in.
func ParsePatternSet(contentType string, reader io.Reader) (*PatternSet, error) {
	switch contentType {
	case "application/json", "application/yaml":
		return parsePatternSet(contentType, reader)
	default:
		// check if the contents are empty. in that case nothing needs to be decoded anyway
		b := make([]byte, 1)
		if _, err := reader.Read(b); err != nil && errors.Is(err, io.EOF) {
			return nil, ErrEmptyPatternSet
		}

		// otherwise
		return nil, errorchain.NewWithMessagef(skein.ErrInternal,
			"unsupported '%s' content type", contentType)
	}
}

func parsePatternSet(contentType string, reader io.Reader) (*PatternSet, error) {
	var patternSet PatternSet

	dec := encoding.NewDecoder(
		encoding.WithSourceContentType(contentType),
		encoding.WithValidator(encoding.ValidatorFunc(validation.DefaultValidator.ValidateStruct)),
		encoding.WithErrorOnUnused(true),
		encoding.WithEnvVarsSubstitution(true),
	)

	if err := dec.Decode(&patternSet, reader); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyPatternSet
		}

		return nil, err
	}

	rawContents, err := json.Marshal(&patternSet)
	if err != nil {
		return nil, errorchain.NewWithMessage(skein.ErrInternal,
			"failed to create pattern set hash").CausedBy(err)
	}

	md := crypto.SHA256.New()
	md.Write(rawContents)

	patternSet.Hash = md.Sum(nil)

	return &patternSet, nil
}
