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
	"fmt"

	"github.com/goccy/go-json"

	"github.com/ryndalv/skein/internal/skein"
)

type Pattern struct {
	ID       string    `json:"id"       yaml:"id"       validate:"required"`
	Sequence []Segment `json:"sequence" yaml:"sequence" validate:"required,gt=0,dive"`
	Value    any       `json:"value"    yaml:"value"`
}

func (p *Pattern) Hash() ([]byte, error) {
	rawPatternConfig, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create hash", skein.ErrInternal)
	}

	md := crypto.SHA256.New()
	md.Write(rawPatternConfig)

	return md.Sum(nil), nil
}
